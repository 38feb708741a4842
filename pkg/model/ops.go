package model

import (
	"slices"

	"github.com/simonkurtz-MSFT/drawio-go/pkg/errors"
	"github.com/simonkurtz-MSFT/drawio-go/pkg/style"
)

// =============================================================================
// Cell Creation
// =============================================================================

// AddRectangle creates a vertex on the active layer. Unset fields use
// the fixed defaults; width and height are floored at 1.
func (m *Model) AddRectangle(r Rectangle) *Cell {
	c := &Cell{
		ID:     m.nextCellID(),
		Kind:   KindVertex,
		Label:  strOr(r.Text, ""),
		Style:  strOr(r.Style, DefaultVertexStyle),
		Parent: m.activeLayer,
		Vertex: &VertexData{
			X:      floatOr(r.X, DefaultX),
			Y:      floatOr(r.Y, DefaultY),
			Width:  floorAtOne(floatOr(r.Width, DefaultWidth)),
			Height: floorAtOne(floatOr(r.Height, DefaultHeight)),
		},
	}
	m.cells[c.ID] = c
	return c
}

// AddEdge creates an edge between two existing cells on the active layer.
// Returns SOURCE_NOT_FOUND or TARGET_NOT_FOUND when an endpoint does not
// exist; nothing is created on failure.
func (m *Model) AddEdge(source, target string, opts EdgeOptions) (*Cell, *errors.Error) {
	if m.cells[source] == nil {
		return nil, errors.New(errors.ErrCodeSourceNotFound, "source cell %s does not exist", source).
			WithCell(source).
			WithSuggestion("list existing cells with ListCells")
	}
	if m.cells[target] == nil {
		return nil, errors.New(errors.ErrCodeTargetNotFound, "target cell %s does not exist", target).
			WithCell(target).
			WithSuggestion("list existing cells with ListCells")
	}

	c := &Cell{
		ID:     m.nextCellID(),
		Kind:   KindEdge,
		Label:  strOr(opts.Text, ""),
		Style:  strOr(opts.Style, DefaultEdgeStyle),
		Parent: m.activeLayer,
		Edge:   &EdgeData{Source: source, Target: target},
	}
	m.cells[c.ID] = c
	return c, nil
}

// CreateGroup creates an empty group vertex on the active layer with the
// container default style.
func (m *Model) CreateGroup(label string) *Cell {
	c := &Cell{
		ID:     m.nextCellID(),
		Kind:   KindVertex,
		Label:  label,
		Style:  DefaultGroupStyle,
		Parent: m.activeLayer,
		Vertex: &VertexData{
			X:       DefaultX,
			Y:       DefaultY,
			Width:   200,
			Height:  200,
			IsGroup: true,
		},
	}
	m.cells[c.ID] = c
	return c
}

// =============================================================================
// Deletion
// =============================================================================

// DeleteCell removes a cell. Deleting a vertex first cascades to every
// edge referencing it, atomically with the vertex delete; the cascaded
// edge ids are reported in the result. Unknown ids are a no-op with
// Deleted=false.
func (m *Model) DeleteCell(id string) DeleteResult {
	c := m.cells[id]
	if c == nil {
		return DeleteResult{}
	}

	var cascaded []string
	if c.IsVertex() {
		for _, other := range m.ListCells() {
			if other.IsEdge() && (other.Edge.Source == id || other.Edge.Target == id) {
				cascaded = append(cascaded, other.ID)
			}
		}
		for _, eid := range cascaded {
			m.removeCell(eid)
		}
	}
	m.removeCell(id)

	return DeleteResult{Deleted: true, CascadedEdgeIDs: cascaded}
}

// removeCell deletes one cell and detaches it from a group parent.
func (m *Model) removeCell(id string) {
	c := m.cells[id]
	if c == nil {
		return
	}
	if g := m.cells[c.Parent]; g != nil && g.IsGroup() {
		g.Vertex.Children = slices.DeleteFunc(g.Vertex.Children, func(cid string) bool { return cid == id })
	}
	delete(m.cells, id)
}

// =============================================================================
// Editing
// =============================================================================

// EditCell applies a partial update to a vertex. Only non-nil patch
// fields are applied. Returns CELL_NOT_FOUND for unknown ids and
// WRONG_CELL_TYPE when the target is an edge.
func (m *Model) EditCell(id string, patch CellPatch) (*Cell, *errors.Error) {
	c := m.cells[id]
	if c == nil {
		return nil, errors.New(errors.ErrCodeCellNotFound, "cell %s does not exist", id).WithCell(id)
	}
	if !c.IsVertex() {
		return nil, errors.New(errors.ErrCodeWrongCellType, "cell %s is an edge, not a vertex", id).
			WithCell(id).
			WithSuggestion("use EditEdge for edges")
	}

	if patch.Label != nil {
		c.Label = *patch.Label
	}
	if patch.Style != nil {
		c.Style = *patch.Style
	}
	if patch.X != nil {
		c.Vertex.X = *patch.X
	}
	if patch.Y != nil {
		c.Vertex.Y = *patch.Y
	}
	if patch.Width != nil {
		c.Vertex.Width = floorAtOne(*patch.Width)
	}
	if patch.Height != nil {
		c.Vertex.Height = floorAtOne(*patch.Height)
	}
	return c, nil
}

// EditEdge applies a partial update to an edge. New endpoints are
// validated before any field is touched; an invalid endpoint aborts the
// whole mutation.
func (m *Model) EditEdge(id string, patch EdgePatch) (*Cell, *errors.Error) {
	c := m.cells[id]
	if c == nil {
		return nil, errors.New(errors.ErrCodeCellNotFound, "cell %s does not exist", id).WithCell(id)
	}
	if !c.IsEdge() {
		return nil, errors.New(errors.ErrCodeWrongCellType, "cell %s is a vertex, not an edge", id).
			WithCell(id).
			WithSuggestion("use EditCell for vertices")
	}

	// Validate endpoints before mutating anything.
	if patch.Source != nil && m.cells[*patch.Source] == nil {
		return nil, errors.New(errors.ErrCodeSourceNotFound, "source cell %s does not exist", *patch.Source).
			WithCell(*patch.Source)
	}
	if patch.Target != nil && m.cells[*patch.Target] == nil {
		return nil, errors.New(errors.ErrCodeTargetNotFound, "target cell %s does not exist", *patch.Target).
			WithCell(*patch.Target)
	}

	if patch.Label != nil {
		c.Label = *patch.Label
	}
	if patch.Style != nil {
		c.Style = *patch.Style
	}
	if patch.Source != nil {
		c.Edge.Source = *patch.Source
	}
	if patch.Target != nil {
		c.Edge.Target = *patch.Target
	}
	return c, nil
}

// =============================================================================
// Grouping
// =============================================================================

// AddCellToGroup reparents a cell into a group and appends it to the
// group's child list. Adding a cell that is already in the group is
// idempotent.
func (m *Model) AddCellToGroup(cellID, groupID string) *errors.Error {
	c := m.cells[cellID]
	if c == nil {
		return errors.New(errors.ErrCodeCellNotFound, "cell %s does not exist", cellID).WithCell(cellID)
	}
	g := m.cells[groupID]
	if g == nil {
		return errors.New(errors.ErrCodeGroupNotFound, "group %s does not exist", groupID).WithCell(groupID)
	}
	if !g.IsGroup() {
		return errors.New(errors.ErrCodeNotAGroup, "cell %s is not a group", groupID).
			WithCell(groupID).
			WithSuggestion("create a group first with CreateGroup")
	}
	if cellID == groupID {
		return errors.New(errors.ErrCodeSelfReference, "cell %s cannot be added to itself", cellID).WithCell(cellID)
	}

	c.Parent = groupID
	if !slices.Contains(g.Vertex.Children, cellID) {
		g.Vertex.Children = append(g.Vertex.Children, cellID)
	}
	return nil
}

// RemoveCellFromGroup detaches a cell from its group and reparents it to
// the current active layer.
func (m *Model) RemoveCellFromGroup(cellID string) *errors.Error {
	c := m.cells[cellID]
	if c == nil {
		return errors.New(errors.ErrCodeCellNotFound, "cell %s does not exist", cellID).WithCell(cellID)
	}
	g := m.cells[c.Parent]
	if g == nil || !g.IsGroup() {
		return errors.New(errors.ErrCodeNotInGroup, "cell %s is not in a group", cellID).WithCell(cellID)
	}

	g.Vertex.Children = slices.DeleteFunc(g.Vertex.Children, func(cid string) bool { return cid == cellID })
	c.Parent = m.activeLayer
	return nil
}

// =============================================================================
// Layers
// =============================================================================

// AddLayer creates a new named layer and returns it.
func (m *Model) AddLayer(name string) *Layer {
	l := &Layer{ID: m.nextLayerID(), Name: name}
	m.layers = append(m.layers, l)
	return l
}

// SetActiveLayer switches the active layer. The id must name an
// existing layer.
func (m *Model) SetActiveLayer(id string) *errors.Error {
	if m.LayerByID(id) == nil {
		return errors.New(errors.ErrCodeLayerNotFound, "layer %s does not exist", id)
	}
	m.activeLayer = id
	return nil
}

// MoveCellToLayer reparents a cell onto a layer. A cell leaving a group
// is detached from the group's child list.
func (m *Model) MoveCellToLayer(cellID, layerID string) *errors.Error {
	c := m.cells[cellID]
	if c == nil {
		return errors.New(errors.ErrCodeCellNotFound, "cell %s does not exist", cellID).WithCell(cellID)
	}
	if m.LayerByID(layerID) == nil {
		return errors.New(errors.ErrCodeLayerNotFound, "layer %s does not exist", layerID)
	}

	if g := m.cells[c.Parent]; g != nil && g.IsGroup() {
		g.Vertex.Children = slices.DeleteFunc(g.Vertex.Children, func(cid string) bool { return cid == cellID })
	}
	c.Parent = layerID
	return nil
}

// DeleteLayer removes a non-default layer. Cells on the layer are
// reparented to the default layer; if the deleted layer was active, the
// default layer becomes active.
func (m *Model) DeleteLayer(id string) *errors.Error {
	if id == DefaultLayerID {
		return errors.New(errors.ErrCodeDefaultLayer, "the default layer cannot be removed")
	}
	if m.LayerByID(id) == nil {
		return errors.New(errors.ErrCodeLayerNotFound, "layer %s does not exist", id)
	}

	for _, c := range m.cells {
		if c.Parent == id {
			c.Parent = DefaultLayerID
		}
	}
	m.layers = slices.DeleteFunc(m.layers, func(l *Layer) bool { return l.ID == id })
	if m.activeLayer == id {
		m.activeLayer = DefaultLayerID
	}
	return nil
}

// =============================================================================
// Helpers
// =============================================================================

// EnsureContainerStyle appends the container token to a style once.
// Used at export time so group vertices always carry it.
func EnsureContainerStyle(s string) string {
	return style.AppendToken(s, ContainerToken)
}

// IsGroupStyle reports whether a style marks a cell as a group: either
// the container token or a case-insensitive "swimlane" substring.
func IsGroupStyle(s string) bool {
	return style.Contains(s, ContainerToken) || style.ContainsFold(s, "swimlane")
}

func strOr(p *string, def string) string {
	if p != nil {
		return *p
	}
	return def
}

func floatOr(p *float64, def float64) float64 {
	if p != nil {
		return *p
	}
	return def
}

func floorAtOne(v float64) float64 {
	if v < 1 {
		return 1
	}
	return v
}
