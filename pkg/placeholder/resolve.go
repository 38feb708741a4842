package placeholder

import (
	"encoding/xml"
	"fmt"
	"regexp"
	"strings"
)

// Placeholder is one stand-in found in serialized XML.
type Placeholder struct {
	ID        string
	ShapeName string
}

// Failure records one shape that could not be resolved.
type Failure struct {
	ID        string
	ShapeName string
	Err       error
}

// ResolveError aggregates every resolution failure from one pass. When
// any shape fails, the exported text is returned unchanged and the whole
// pass reports this error; successfully resolved shapes stay placeholders
// so a later retry sees a consistent document.
type ResolveError struct {
	Failures []Failure
}

// Error implements the error interface.
func (e *ResolveError) Error() string {
	names := make([]string, len(e.Failures))
	for i, f := range e.Failures {
		if f.Err != nil {
			names[i] = fmt.Sprintf("%s (%s): %v", f.ShapeName, f.ID, f.Err)
		} else {
			names[i] = fmt.Sprintf("%s (%s): no resolution", f.ShapeName, f.ID)
		}
	}
	return fmt.Sprintf("%d placeholder(s) failed to resolve: %s", len(e.Failures), strings.Join(names, "; "))
}

// Element start tags that can carry a placeholder. Attribute order
// varies between producers, so the id and style attributes are extracted
// separately from the matched tag.
var (
	tagPattern   = regexp.MustCompile(`<(?:mxCell|object|UserObject)\b[^>]*>`)
	idPattern    = regexp.MustCompile(`\bid="([^"]*)"`)
	stylePattern = regexp.MustCompile(`\bstyle="([^"]*)"`)
)

// FindInXML scans serialized XML for placeholder elements: an id with
// the reserved prefix plus the marker token in the style. Elements whose
// shape name cannot be parsed back out of the id are skipped silently.
func FindInXML(text string) []Placeholder {
	var out []Placeholder
	for _, tag := range tagPattern.FindAllString(text, -1) {
		id, style, ok := tagAttrs(tag)
		if !ok || !strings.Contains(style, Marker) {
			continue
		}
		name, err := ShapeNameFromID(id)
		if err != nil {
			continue
		}
		out = append(out, Placeholder{ID: id, ShapeName: name})
	}
	return out
}

// ResolveInXML rewrites every placeholder's style in the exported text
// with the resolver's final content. The resolver is called once per
// placeholder; failures are recorded and processing continues. If any
// failure occurred the original text is returned together with a
// *ResolveError listing all of them. On full success the returned text
// has every placeholder's style replaced (marker removed, XML-escaped)
// with ids untouched.
func ResolveInXML(text string, resolve Resolver) (string, error) {
	found := FindInXML(text)
	if len(found) == 0 {
		return text, nil
	}

	resolved := make(map[string]string, len(found))
	var failures []Failure
	for _, p := range found {
		res, err := resolve(p.ShapeName, p.ID)
		if err != nil || res == nil {
			failures = append(failures, Failure{ID: p.ID, ShapeName: p.ShapeName, Err: err})
			continue
		}
		resolved[p.ID] = finalStyle(res)
	}
	if len(failures) > 0 {
		return text, &ResolveError{Failures: failures}
	}

	out := tagPattern.ReplaceAllStringFunc(text, func(tag string) string {
		id, _, ok := tagAttrs(tag)
		if !ok {
			return tag
		}
		final, ok := resolved[id]
		if !ok {
			return tag
		}
		replacement := `style="` + escapeAttr(final) + `"`
		return stylePattern.ReplaceAllStringFunc(tag, func(string) string { return replacement })
	})
	return out, nil
}

// tagAttrs extracts the id and style attribute values from one start
// tag, tolerating any attribute order.
func tagAttrs(tag string) (id, style string, ok bool) {
	idMatch := idPattern.FindStringSubmatch(tag)
	if idMatch == nil {
		return "", "", false
	}
	styleMatch := stylePattern.FindStringSubmatch(tag)
	if styleMatch == nil {
		return idMatch[1], "", true
	}
	return idMatch[1], styleMatch[1], true
}

// escapeAttr escapes an attribute value for direct text substitution.
func escapeAttr(s string) string {
	var b strings.Builder
	if err := xml.EscapeText(&b, []byte(s)); err != nil {
		return s
	}
	return b.String()
}
