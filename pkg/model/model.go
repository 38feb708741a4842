package model

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/simonkurtz-MSFT/drawio-go/pkg/errors"
)

// Model owns all cell and layer records for one diagram instance.
//
// A Model is single-threaded: each operation runs to completion before
// the next is accepted, and separate instances share no state. Callers
// that serve one model to multiple goroutines must synchronize at their
// own layer.
//
// The zero value is not usable - use New to create a valid instance with
// the permanent default layer in place.
type Model struct {
	cells       map[string]*Cell
	layers      []*Layer
	activeLayer string

	// Monotonic id counters. Never reused, even after deletion.
	cellSeq  int
	layerSeq int
}

// New creates an empty model containing only the permanent default layer.
// Cell ids start at 2 because draw.io reserves "0" and "1".
func New() *Model {
	m := &Model{}
	m.reset()
	return m
}

// reset restores the bootstrap state: default layer only, counters at 2.
func (m *Model) reset() {
	m.cells = make(map[string]*Cell)
	m.layers = []*Layer{{ID: DefaultLayerID, Name: DefaultLayerName}}
	m.activeLayer = DefaultLayerID
	m.cellSeq = 2
	m.layerSeq = 2
}

// Clear fully replaces the model with the bootstrap state. All prior
// cells, layers, and counters are discarded.
func (m *Model) Clear() {
	m.reset()
}

// nextCellID allocates the next cell id ("cell-2", "cell-3", ...).
func (m *Model) nextCellID() string {
	id := CellIDPrefix + strconv.Itoa(m.cellSeq)
	m.cellSeq++
	return id
}

// nextLayerID allocates the next layer id ("layer-2", "layer-3", ...).
func (m *Model) nextLayerID() string {
	id := LayerIDPrefix + strconv.Itoa(m.layerSeq)
	m.layerSeq++
	return id
}

// =============================================================================
// Read Access
// =============================================================================

// CellByID returns the cell with the given id, or nil.
func (m *Model) CellByID(id string) *Cell {
	return m.cells[id]
}

// GetCell returns the cell with the given id, or CELL_NOT_FOUND.
func (m *Model) GetCell(id string) (*Cell, *errors.Error) {
	c := m.cells[id]
	if c == nil {
		return nil, errors.New(errors.ErrCodeCellNotFound, "cell %s does not exist", id).WithCell(id)
	}
	return c, nil
}

// ListCells returns all cells ordered by their embedded numeric token
// (cell-2 before cell-10), with non-numeric ids sorted lexically after.
func (m *Model) ListCells() []*Cell {
	out := make([]*Cell, 0, len(m.cells))
	for _, c := range m.cells {
		out = append(out, c)
	}
	slices.SortFunc(out, func(a, b *Cell) int { return compareIDs(a.ID, b.ID) })
	return out
}

// Len returns the number of cells in the model.
func (m *Model) Len() int { return len(m.cells) }

// Layers returns the ordered layer list. The default layer is always
// first.
func (m *Model) Layers() []*Layer {
	return slices.Clone(m.layers)
}

// LayerByID returns the layer with the given id, or nil.
func (m *Model) LayerByID(id string) *Layer {
	for _, l := range m.layers {
		if l.ID == id {
			return l
		}
	}
	return nil
}

// ActiveLayer returns the id of the current active layer. It always
// names an existing layer.
func (m *Model) ActiveLayer() string { return m.activeLayer }

// InsertCell registers an externally constructed cell, parenting it to
// the active layer when no parent is set. Used by the placeholder layer,
// which builds its own cells with namespaced ids outside the cell-N
// counter.
func (m *Model) InsertCell(c *Cell) {
	if c.Parent == "" {
		c.Parent = m.activeLayer
	}
	m.cells[c.ID] = c
}

// =============================================================================
// Restore - Full State Replacement
// =============================================================================

// Restore fully replaces the model with imported state. Prior cells,
// layers, and counters are discarded.
//
// Restore enforces the model invariants on the incoming data:
//   - the default layer is always present (inserted first if missing)
//   - every group's child list is rebuilt from parent pointers
//   - the active layer falls back to the default when preferred does not
//     name an existing layer
//   - id counters reseed to one more than the highest numeric token
//     embedded in any imported cell or layer id
func (m *Model) Restore(cells []*Cell, layers []*Layer, preferredActive string) {
	m.reset()

	for _, l := range layers {
		if l.ID == DefaultLayerID || l.ID == RootID {
			continue
		}
		if m.LayerByID(l.ID) != nil {
			continue
		}
		m.layers = append(m.layers, &Layer{ID: l.ID, Name: l.Name})
	}

	for _, c := range cells {
		if c.ID == RootID || c.ID == DefaultLayerID {
			continue
		}
		m.cells[c.ID] = c
	}

	m.rebuildGroupChildren()

	if preferredActive != "" && m.LayerByID(preferredActive) != nil {
		m.activeLayer = preferredActive
	}

	m.cellSeq = maxInt(2, highestNumericToken(mapKeys(m.cells))+1)
	layerIDs := make([]string, 0, len(m.layers))
	for _, l := range m.layers {
		layerIDs = append(layerIDs, l.ID)
	}
	m.layerSeq = maxInt(2, highestNumericToken(layerIDs)+1)
}

// rebuildGroupChildren repopulates every group's child list by scanning
// for cells whose parent equals that group's id. Runs after import so
// the child lists mirror the parent pointers exactly.
func (m *Model) rebuildGroupChildren() {
	for _, c := range m.cells {
		if c.IsGroup() {
			c.Vertex.Children = nil
		}
	}
	for _, c := range m.ListCells() {
		if g := m.cells[c.Parent]; g != nil && g.IsGroup() {
			g.Vertex.Children = append(g.Vertex.Children, c.ID)
		}
	}
}

// =============================================================================
// ID Helpers
// =============================================================================

// numericToken extracts the trailing numeric token embedded in an id
// ("cell-17" → 17, "layer-3" → 3). Returns -1 when no digits are found.
func numericToken(id string) int {
	end := len(id)
	for end > 0 && !isDigit(id[end-1]) {
		end--
	}
	start := end
	for start > 0 && isDigit(id[start-1]) {
		start--
	}
	if start == end {
		return -1
	}
	n, err := strconv.Atoi(id[start:end])
	if err != nil {
		return -1
	}
	return n
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// highestNumericToken returns the largest numeric token across ids, or
// 0 when none embed a number.
func highestNumericToken(ids []string) int {
	max := 0
	for _, id := range ids {
		if n := numericToken(id); n > max {
			max = n
		}
	}
	return max
}

// compareIDs orders ids by embedded numeric token first, then lexically,
// so generated ids list in creation order.
func compareIDs(a, b string) int {
	na, nb := numericToken(a), numericToken(b)
	switch {
	case na >= 0 && nb >= 0 && na != nb:
		if na < nb {
			return -1
		}
		return 1
	default:
		return strings.Compare(a, b)
	}
}

func mapKeys[V any](m map[string]V) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// String returns a short debug summary of the model.
func (m *Model) String() string {
	return fmt.Sprintf("model{cells: %d, layers: %d, active: %s}", len(m.cells), len(m.layers), m.activeLayer)
}
