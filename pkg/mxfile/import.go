package mxfile

import (
	"encoding/xml"
	"strings"

	"github.com/simonkurtz-MSFT/drawio-go/pkg/deflate"
	"github.com/simonkurtz-MSFT/drawio-go/pkg/errors"
	"github.com/simonkurtz-MSFT/drawio-go/pkg/model"
)

// ImportResult summarizes a successful import.
type ImportResult struct {
	Pages  int `json:"pages"`
	Cells  int `json:"cells"`
	Layers int `json:"layers"`
}

// Import parses interchange XML (single- or multi-page, compressed or
// plain) and fully replaces the model's state with the merged result.
//
// Pages parse independently and merge into one flat model; on cell-id
// collision across pages, the later page wins. Layers merge by id, so
// two pages declaring the same layer yield one layer. The preferred
// active layer recorded in the document is honored only if that layer
// exists after the merge.
func Import(m *model.Model, text string) (*ImportResult, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, errors.New(errors.ErrCodeEmptyXML, "input is empty").
			WithSuggestion("pass a draw.io document or an mxGraphModel element")
	}

	var pages []Diagram
	var preferredActive string

	switch {
	case strings.Contains(trimmed, "<mxfile"):
		var doc MxFile
		if err := xml.Unmarshal([]byte(trimmed), &doc); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidXML, err, "malformed mxfile document")
		}
		pages = doc.Diagrams
		preferredActive = doc.ActiveLayer
	case strings.Contains(trimmed, "<mxGraphModel"):
		var graph MxGraphModel
		if err := xml.Unmarshal([]byte(trimmed), &graph); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidXML, err, "malformed mxGraphModel element")
		}
		pages = []Diagram{{Model: &graph}}
	default:
		return nil, errors.New(errors.ErrCodeInvalidXML, "input has neither an mxfile nor an mxGraphModel root").
			WithSuggestion("export the diagram as uncompressed XML from the editor")
	}

	merged := newMerge()
	for i, page := range pages {
		graph, err := pageGraph(page)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidXML, err, "page %d cannot be parsed", i)
		}
		if graph == nil {
			continue // blank page
		}
		merged.addPage(graph)
	}

	m.Restore(merged.cells, merged.layers, preferredActive)

	return &ImportResult{
		Pages:  len(pages),
		Cells:  m.Len(),
		Layers: len(m.Layers()),
	}, nil
}

// pageGraph extracts a page's graph: either the direct element, or an
// opaque compressed blob routed through the deflate codec first.
func pageGraph(page Diagram) (*MxGraphModel, error) {
	if page.Model != nil {
		return page.Model, nil
	}
	blob := strings.TrimSpace(page.Content)
	if blob == "" {
		return nil, nil
	}
	plain, err := deflate.Decompress(blob)
	if err != nil {
		return nil, err
	}
	var graph MxGraphModel
	if err := xml.Unmarshal([]byte(plain), &graph); err != nil {
		return nil, err
	}
	return &graph, nil
}

// =============================================================================
// Page Merging
// =============================================================================

// merge accumulates cells and layers across pages. Cells overwrite by
// id (later page wins); layers keep their first declaration in order.
type merge struct {
	cells     []*model.Cell
	cellIndex map[string]int
	layers    []*model.Layer
	layerSeen map[string]bool
}

func newMerge() *merge {
	return &merge{
		cellIndex: make(map[string]int),
		layerSeen: make(map[string]bool),
	}
}

func (mg *merge) addPage(graph *MxGraphModel) {
	for _, rec := range normalizeCells(graph.Root) {
		if rec.id == model.RootID || rec.id == model.DefaultLayerID {
			continue // reserved bookkeeping ids, never model cells
		}
		if rec.isLayer() {
			mg.addLayer(&model.Layer{ID: rec.id, Name: rec.value})
			continue
		}
		mg.addCell(recordToCell(rec))
	}
}

func (mg *merge) addCell(c *model.Cell) {
	if i, ok := mg.cellIndex[c.ID]; ok {
		mg.cells[i] = c
		return
	}
	mg.cellIndex[c.ID] = len(mg.cells)
	mg.cells = append(mg.cells, c)
}

func (mg *merge) addLayer(l *model.Layer) {
	if mg.layerSeen[l.ID] {
		return
	}
	mg.layerSeen[l.ID] = true
	mg.layers = append(mg.layers, l)
}

// =============================================================================
// Cell Normalization
// =============================================================================

// cellRecord is the common shape both source encodings normalize to.
type cellRecord struct {
	id       string
	value    string
	style    string
	parent   string
	vertex   bool
	edge     bool
	source   string
	target   string
	geometry *MxGeometry
}

// isLayer applies the layer-detection rule: any element parented to the
// root id that is not marked vertex or edge is a layer.
func (r cellRecord) isLayer() bool {
	return r.parent == model.RootID && !r.vertex && !r.edge
}

// normalizeCells flattens both cell encodings into records. For the
// richer object form, outer attributes win; unset ones adopt the nested
// cell's values (the wrapper's label maps onto the cell's value).
func normalizeCells(root MxRoot) []cellRecord {
	out := make([]cellRecord, 0, len(root.Cells)+len(root.Objects)+len(root.UserObjects))
	for _, c := range root.Cells {
		out = append(out, leanRecord(c))
	}
	for _, o := range root.Objects {
		out = append(out, wrappedRecord(o))
	}
	for _, o := range root.UserObjects {
		out = append(out, wrappedRecord(o))
	}
	return out
}

func leanRecord(c MxCell) cellRecord {
	return cellRecord{
		id:       c.ID,
		value:    c.Value,
		style:    c.Style,
		parent:   c.Parent,
		vertex:   c.Vertex == "1",
		edge:     c.Edge == "1",
		source:   c.Source,
		target:   c.Target,
		geometry: c.Geometry,
	}
}

func wrappedRecord(o MxObject) cellRecord {
	inner := o.Cell
	if inner == nil {
		inner = &MxCell{}
	}
	rec := leanRecord(*inner)
	rec.id = firstNonEmpty(o.ID, inner.ID)
	rec.value = firstNonEmpty(o.Label, inner.Value)
	rec.style = firstNonEmpty(o.Style, inner.Style)
	return rec
}

// recordToCell builds the model cell. Missing vertex geometry defaults
// to x=0 y=0 w=200 h=100; styles carrying a container token or a
// case-insensitive "swimlane" substring import as groups.
func recordToCell(rec cellRecord) *model.Cell {
	c := &model.Cell{
		ID:     rec.id,
		Label:  rec.value,
		Style:  rec.style,
		Parent: rec.parent,
	}

	if rec.edge {
		c.Kind = model.KindEdge
		c.Edge = &model.EdgeData{Source: rec.source, Target: rec.target}
		return c
	}

	c.Kind = model.KindVertex
	v := &model.VertexData{X: 0, Y: 0, Width: 200, Height: 100}
	if g := rec.geometry; g != nil {
		if g.X != nil {
			v.X = *g.X
		}
		if g.Y != nil {
			v.Y = *g.Y
		}
		if g.Width != nil {
			v.Width = *g.Width
		}
		if g.Height != nil {
			v.Height = *g.Height
		}
	}
	v.IsGroup = model.IsGroupStyle(rec.style)
	c.Vertex = v
	return c
}

func firstNonEmpty(a, b string) string {
	if a != "" {
		return a
	}
	return b
}
