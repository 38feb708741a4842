package mxfile

import (
	"encoding/xml"
	"fmt"

	"github.com/simonkurtz-MSFT/drawio-go/pkg/deflate"
	"github.com/simonkurtz-MSFT/drawio-go/pkg/model"
)

// ExportOptions control serialization.
type ExportOptions struct {
	// Compress routes the page body through the legacy deflate codec.
	Compress bool
	// PageName overrides the default page name ("Page-1").
	PageName string
	// Host identifies the producing application in the mxfile root.
	Host string
}

// Export serializes the model to interchange XML: one page containing
// the non-default layer declarations followed by the cell elements. The
// document records the active layer id so a later import restores it.
func Export(m *model.Model, opts ExportOptions) (string, error) {
	graph := newGraphModel()
	graph.Root = buildRoot(m)

	name := opts.PageName
	if name == "" {
		name = "Page-1"
	}
	host := opts.Host
	if host == "" {
		host = "drawio-go"
	}

	page := Diagram{ID: "page-1", Name: name}
	if opts.Compress {
		inner, err := xml.Marshal(graph)
		if err != nil {
			return "", fmt.Errorf("marshal graph: %w", err)
		}
		compressed, err := deflate.Compress(string(inner))
		if err != nil {
			return "", fmt.Errorf("compress page: %w", err)
		}
		page.Content = compressed
	} else {
		page.Model = &graph
	}

	doc := MxFile{
		Host:        host,
		ActiveLayer: m.ActiveLayer(),
		Diagrams:    []Diagram{page},
	}

	out, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal document: %w", err)
	}
	return string(out), nil
}

// buildRoot lays out the page root: bookkeeping cells, non-default
// layers, then model cells in id order.
func buildRoot(m *model.Model) MxRoot {
	root := MxRoot{
		Cells: []MxCell{
			{ID: model.RootID},
			{ID: model.DefaultLayerID, Parent: model.RootID},
		},
	}

	for _, l := range m.Layers() {
		if l.ID == model.DefaultLayerID {
			continue
		}
		root.Cells = append(root.Cells, MxCell{
			ID:     l.ID,
			Value:  l.Name,
			Parent: model.RootID,
		})
	}

	for _, c := range m.ListCells() {
		root.Cells = append(root.Cells, cellToXML(c))
	}
	return root
}

// cellToXML converts one model cell to its lean XML form.
func cellToXML(c *model.Cell) MxCell {
	out := MxCell{
		ID:     c.ID,
		Value:  c.Label,
		Style:  c.Style,
		Parent: c.Parent,
	}

	switch {
	case c.IsEdge():
		out.Edge = "1"
		out.Source = c.Edge.Source
		out.Target = c.Edge.Target
		// Edges carry a relative geometry marker with no coordinates.
		out.Geometry = &MxGeometry{Relative: "1", As: "geometry"}
	default:
		out.Vertex = "1"
		if c.IsGroup() {
			out.Connectable = "0"
			out.Style = model.EnsureContainerStyle(c.Style)
		}
		v := c.Vertex
		x, y, w, h := v.X, v.Y, v.Width, v.Height
		out.Geometry = &MxGeometry{X: &x, Y: &y, Width: &w, Height: &h, As: "geometry"}
	}
	return out
}
