// Package style manipulates draw.io style strings.
//
// A draw.io style is an opaque semicolon-delimited token list such as
// "rounded=0;whiteSpace=wrap;html=1;". Tokens are either bare flags
// ("group") or key=value pairs ("fillColor=#dae8fc"). The model treats
// styles as opaque at the boundary; this package is the single place
// that inspects or edits individual tokens.
//
// Token matching is deliberately substring-tolerant where the draw.io
// format is: Contains reports raw substring presence, matching how the
// editor itself detects markers like "swimlane" inside composed styles.
package style

import "strings"

// Tokens is an ordered list of style tokens parsed from a style string.
// Order is preserved through edits so that round-tripping a style never
// reorders what the editor wrote.
type Tokens []string

// Parse splits a style string into its ordered tokens.
// Empty segments (from doubled or trailing semicolons) are dropped.
func Parse(s string) Tokens {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ";")
	out := make(Tokens, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// String reassembles the tokens into a style string.
// Non-empty styles keep a trailing semicolon, matching draw.io output.
func (t Tokens) String() string {
	if len(t) == 0 {
		return ""
	}
	return strings.Join(t, ";") + ";"
}

// Has reports whether the exact token is present.
func (t Tokens) Has(token string) bool {
	for _, tok := range t {
		if tok == token {
			return true
		}
	}
	return false
}

// HasKey reports whether any token has the given key ("image" matches
// "image=data:...").
func (t Tokens) HasKey(key string) bool {
	prefix := key + "="
	for _, tok := range t {
		if strings.HasPrefix(tok, prefix) {
			return true
		}
	}
	return false
}

// Append adds the token unless it is already present, returning the
// (possibly extended) list. Appending is idempotent so markers are never
// duplicated.
func (t Tokens) Append(token string) Tokens {
	if t.Has(token) {
		return t
	}
	return append(t, token)
}

// Remove deletes every occurrence of the exact token.
func (t Tokens) Remove(token string) Tokens {
	out := t[:0]
	for _, tok := range t {
		if tok != token {
			out = append(out, tok)
		}
	}
	return out
}

// RemoveKey deletes every key=value token with the given key.
func (t Tokens) RemoveKey(key string) Tokens {
	prefix := key + "="
	out := t[:0]
	for _, tok := range t {
		if !strings.HasPrefix(tok, prefix) {
			out = append(out, tok)
		}
	}
	return out
}

// Contains reports raw substring presence in the reassembled style.
// This preserves the editor's substring-matching semantics for markers
// like "swimlane" that can appear inside composed shape names.
func Contains(s, marker string) bool {
	return strings.Contains(s, marker)
}

// ContainsFold is Contains with case-insensitive matching.
func ContainsFold(s, marker string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(marker))
}

// AppendToken appends a token to a raw style string, once.
// Redundant delimiters in the input are collapsed.
func AppendToken(s, token string) string {
	return Parse(s).Append(token).String()
}

// RemoveToken removes an exact token from a raw style string,
// collapsing redundant delimiters.
func RemoveToken(s, token string) string {
	return Parse(s).Remove(token).String()
}

// StripKey removes every key=value token with the given key from a raw
// style string, collapsing redundant delimiters. Used to drop image
// payloads: StripKey("shape=x;image=data;html=1;", "image") returns
// "shape=x;html=1;".
func StripKey(s, key string) string {
	return Parse(s).RemoveKey(key).String()
}
