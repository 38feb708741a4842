package deflate

import (
	"strings"
	"testing"
)

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"plain ascii", "hello world"},
		{"xml fragment", `<mxGraphModel dx="800"><root><mxCell id="0"/></root></mxGraphModel>`},
		{"all reserved xml chars", `value="&<>'"`},
		{"percent signs", "100% of 50%"},
		{"multi-byte", "Grüße, 世界 — ééé"},
		{"emoji", "🙂🙃"},
		{"newlines and tabs", "a\n\tb\r\nc"},
		{"uri component safe set", "-_.!~*'()"},
		{"plus signs stay plus", "a+b+c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			compressed, err := Compress(tt.input)
			if err != nil {
				t.Fatalf("Compress: %v", err)
			}
			got, err := Decompress(compressed)
			if err != nil {
				t.Fatalf("Decompress: %v", err)
			}
			if got != tt.input {
				t.Errorf("round trip = %q, want %q", got, tt.input)
			}
		})
	}
}

func TestCompressProducesBase64(t *testing.T) {
	out, err := Compress("<mxGraphModel/>")
	if err != nil {
		t.Fatalf("Compress: %v", err)
	}
	if out == "" {
		t.Fatal("Compress returned empty string")
	}
	for _, r := range out {
		if !strings.ContainsRune("ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/=", r) {
			t.Fatalf("output contains non-base64 byte %q", r)
		}
	}
}

func TestDecompressRejectsCorruptInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"not base64", "!!!not-base64!!!"},
		{"base64 but not deflate", "aGVsbG8gd29ybGQ="},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Decompress(tt.input); err == nil {
				t.Error("Decompress succeeded on corrupt input, want error")
			}
		})
	}
}

func TestDecompressToleratesSurroundingWhitespace(t *testing.T) {
	compressed, err := Compress("payload")
	if err != nil {
		t.Fatalf("Compress: %v", err)
	}
	got, err := Decompress("\n  " + compressed + "  \n")
	if err != nil {
		t.Fatalf("Decompress: %v", err)
	}
	if got != "payload" {
		t.Errorf("got %q, want payload", got)
	}
}
