// Package placeholder implements stand-in cells for deferred shape
// resolution.
//
// During multi-step construction, looking up a shape's full style (and
// possibly image data) per cell is expensive. In transactional mode the
// model instead records a lightweight placeholder vertex; after export,
// [ResolveInXML] rewrites the serialized XML with the final styles in a
// single pass. Resolution never touches live model state - it patches
// exported text only.
//
// A placeholder is a vertex whose style carries the reserved
// "placeholder=1" token and whose id has the form
//
//	placeholder-{hyphenated-shape-name}-{8 hex chars}
//
// The suffix only disambiguates and is never semantic. The shape name is
// always derived from the id, never from the label, so relabeling a
// placeholder cannot break resolution.
package placeholder

import (
	"strings"

	"github.com/google/uuid"

	"github.com/simonkurtz-MSFT/drawio-go/pkg/errors"
	"github.com/simonkurtz-MSFT/drawio-go/pkg/model"
	"github.com/simonkurtz-MSFT/drawio-go/pkg/style"
)

// Marker is the reserved style token identifying placeholder cells.
const Marker = "placeholder=1"

// IDPrefix starts every placeholder id.
const IDPrefix = "placeholder-"

// Resolution is the final content for one shape: a complete style
// string and optional image data. Image data, when present, is embedded
// as an image= token in the rewritten style.
type Resolution struct {
	Style string
	Image string
}

// Resolver supplies final style data for a shape name. Returning
// (nil, nil) means the shape could not be resolved.
type Resolver func(shapeName, placeholderID string) (*Resolution, error)

// NewCell builds a placeholder vertex for the named shape. The id
// embeds the lower-cased, hyphenated shape name plus a random 8-hex-char
// suffix; the marker token is appended to the base style once.
func NewCell(shapeName, baseStyle string, x, y float64) *model.Cell {
	return &model.Cell{
		ID:    NewID(shapeName),
		Kind:  model.KindVertex,
		Label: shapeName,
		Style: style.AppendToken(baseStyle, Marker),
		Vertex: &model.VertexData{
			X:      x,
			Y:      y,
			Width:  model.DefaultWidth,
			Height: model.DefaultHeight,
		},
	}
}

// NewID generates a placeholder id for the shape name.
func NewID(shapeName string) string {
	slug := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(shapeName)), " ", "-")
	suffix := uuid.NewString()[:8]
	return IDPrefix + slug + "-" + suffix
}

// IsPlaceholder reports whether the id carries the reserved prefix.
func IsPlaceholder(id string) bool {
	return strings.HasPrefix(id, IDPrefix)
}

// ShapeNameFromID inverts the id construction: it verifies the final
// hyphen segment looks like the random 8-hex-char suffix, drops it, and
// rejoins the remaining segments. The name always comes from the id,
// never the label.
func ShapeNameFromID(id string) (string, error) {
	if !IsPlaceholder(id) {
		return "", errors.New(errors.ErrCodeResolveFailed, "id %q is not a placeholder id", id)
	}
	body := strings.TrimPrefix(id, IDPrefix)
	segments := strings.Split(body, "-")
	if len(segments) < 2 {
		return "", errors.New(errors.ErrCodeResolveFailed, "placeholder id %q has no suffix", id)
	}
	suffix := segments[len(segments)-1]
	if !isHexSuffix(suffix) {
		return "", errors.New(errors.ErrCodeResolveFailed, "placeholder id %q has a malformed suffix %q", id, suffix)
	}
	name := strings.Join(segments[:len(segments)-1], "-")
	if name == "" {
		return "", errors.New(errors.ErrCodeResolveFailed, "placeholder id %q has an empty shape name", id)
	}
	return name, nil
}

func isHexSuffix(s string) bool {
	if len(s) != 8 {
		return false
	}
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f':
		default:
			return false
		}
	}
	return true
}

// StripImageFromStyle removes any image= token from a style string,
// collapsing redundant and trailing delimiters.
func StripImageFromStyle(s string) string {
	return style.StripKey(s, "image")
}

// AddShape creates a shape-backed cell on the model. In transactional
// mode the cell is always created as a placeholder, to be resolved after
// export. Otherwise the resolver runs immediately and the cell carries
// its final style from the start; resolution failure falls back to a
// placeholder so the shape can be retried later.
func AddShape(m *model.Model, shapeName, baseStyle string, x, y float64, transactional bool, resolve Resolver) *model.Cell {
	stand := NewCell(shapeName, baseStyle, x, y)

	if !transactional && resolve != nil {
		if res, err := resolve(shapeName, stand.ID); err == nil && res != nil {
			stand.Style = finalStyle(res)
		}
	}

	m.InsertCell(stand)
	return stand
}

// finalStyle builds the resolved style: marker removed, image payload
// embedded as a token when present.
func finalStyle(res *Resolution) string {
	toks := style.Parse(res.Style).Remove(Marker)
	if res.Image != "" {
		toks = toks.RemoveKey("image")
		toks = append(toks, "image="+res.Image)
	}
	return toks.String()
}
