// Package shapes provides a named shape library backing placeholder
// resolution.
//
// A library maps shape names to complete style strings (and optional
// image payloads). Libraries load from TOML files and merge, so a
// built-in set can be extended or overridden per project:
//
//	[shapes.cloud]
//	style = "shape=cloud;whiteSpace=wrap;html=1;"
//	aliases = ["internet"]
//
// Names are matched by slug: lower-cased, spaces collapsed to hyphens.
// "Front Doors", "front doors", and "front-doors" all name one shape.
package shapes

import (
	"os"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/simonkurtz-MSFT/drawio-go/pkg/errors"
	"github.com/simonkurtz-MSFT/drawio-go/pkg/placeholder"
)

// Shape is one library entry: a full style string plus optional image
// data embedded into the style on resolution.
type Shape struct {
	Style   string   `toml:"style"`
	Image   string   `toml:"image"`
	Aliases []string `toml:"aliases"`
}

// libraryFile mirrors the on-disk TOML layout.
type libraryFile struct {
	Shapes map[string]Shape `toml:"shapes"`
}

// Library holds shapes keyed by slug. Aliases index into the same
// entries as canonical names.
type Library struct {
	shapes map[string]Shape
	canon  []string // canonical slugs, insertion order
}

// New returns an empty library.
func New() *Library {
	return &Library{shapes: make(map[string]Shape)}
}

// Load reads a TOML shape file.
func Load(path string) (*Library, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse decodes TOML shape data.
func Parse(data []byte) (*Library, error) {
	var file libraryFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "invalid shape library")
	}
	lib := New()
	names := make([]string, 0, len(file.Shapes))
	for name := range file.Shapes {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		lib.Add(name, file.Shapes[name])
	}
	return lib, nil
}

// Add registers a shape under its name and every alias. Later entries
// replace earlier ones for the same slug.
func (l *Library) Add(name string, s Shape) {
	slug := Slug(name)
	if _, exists := l.shapes[slug]; !exists {
		l.canon = append(l.canon, slug)
	}
	l.shapes[slug] = s
	for _, alias := range s.Aliases {
		l.shapes[Slug(alias)] = s
	}
}

// Merge copies every shape from other into l, overriding collisions.
func (l *Library) Merge(other *Library) {
	for _, slug := range other.canon {
		l.Add(slug, other.shapes[slug])
	}
}

// Lookup finds a shape by name or alias.
func (l *Library) Lookup(name string) (Shape, bool) {
	s, ok := l.shapes[Slug(name)]
	return s, ok
}

// Names returns the canonical shape slugs in insertion order.
func (l *Library) Names() []string {
	return slices.Clone(l.canon)
}

// Search returns canonical slugs containing the query substring,
// case-insensitively. An empty query matches everything.
func (l *Library) Search(query string) []string {
	q := strings.ToLower(strings.TrimSpace(query))
	var out []string
	for _, slug := range l.canon {
		if strings.Contains(slug, q) {
			out = append(out, slug)
		}
	}
	return out
}

// Len returns the number of canonical shapes.
func (l *Library) Len() int { return len(l.canon) }

// Resolver adapts the library to placeholder resolution. Unknown
// shapes report RESOLVE_FAILED.
func (l *Library) Resolver() placeholder.Resolver {
	return func(shapeName, placeholderID string) (*placeholder.Resolution, error) {
		s, ok := l.Lookup(shapeName)
		if !ok {
			return nil, errors.New(errors.ErrCodeResolveFailed, "shape %q is not in the library", shapeName).
				WithCell(placeholderID).
				WithSuggestion("list known shapes with the shapes command")
		}
		return &placeholder.Resolution{Style: s.Style, Image: s.Image}, nil
	}
}

// Slug normalizes a shape name for lookup: lower-cased with spaces
// collapsed to hyphens. Matches the placeholder id construction.
func Slug(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "-")
}
