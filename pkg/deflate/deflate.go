// Package deflate implements the legacy draw.io text compression:
// percent-encode, raw DEFLATE, base64.
//
// The editor historically stored page bodies as
// base64(rawDeflate(encodeURIComponent(xml))). Both directions are
// stateless and synchronous; Decompress(Compress(x)) == x for all valid
// text, including reserved characters and multi-byte sequences. The
// forward composition is not byte-stable because compression parameters
// may vary between producers.
package deflate

import (
	"bytes"
	"compress/flate"
	"encoding/base64"
	"fmt"
	"io"
	"net/url"
	"strings"
)

// Compress encodes text in the editor's legacy on-disk convention.
func Compress(s string) (string, error) {
	encoded := encodeURIComponent(s)

	var buf bytes.Buffer
	w, err := flate.NewWriter(&buf, flate.DefaultCompression)
	if err != nil {
		return "", fmt.Errorf("deflate init: %w", err)
	}
	if _, err := w.Write([]byte(encoded)); err != nil {
		return "", fmt.Errorf("deflate write: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("deflate close: %w", err)
	}

	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// Decompress reverses Compress. Corrupt base64 or deflate streams are
// unrecoverable locally and propagate as wrapped decode failures.
func Decompress(b64 string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(b64))
	if err != nil {
		return "", fmt.Errorf("base64 decode: %w", err)
	}

	r := flate.NewReader(bytes.NewReader(raw))
	defer r.Close()
	inflated, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("inflate: %w", err)
	}

	decoded, err := url.PathUnescape(string(inflated))
	if err != nil {
		return "", fmt.Errorf("percent decode: %w", err)
	}
	return decoded, nil
}

// encodeURIComponent percent-encodes s the way JavaScript's
// encodeURIComponent does: everything except ASCII alphanumerics and
// "-_.!~*'()" becomes %XX UTF-8 escapes. Go's net/url escapers treat a
// different reserved set (and encode spaces as '+'), so the encoder is
// spelled out here; url.PathUnescape is the exact inverse.
func encodeURIComponent(s string) string {
	const hex = "0123456789ABCDEF"
	var b strings.Builder
	b.Grow(len(s))
	for _, c := range []byte(s) {
		if uriComponentSafe(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(hex[c>>4])
		b.WriteByte(hex[c&0x0F])
	}
	return b.String()
}

func uriComponentSafe(c byte) bool {
	switch {
	case c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z', c >= '0' && c <= '9':
		return true
	}
	switch c {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return true
	}
	return false
}
