package model

import (
	"fmt"

	"github.com/simonkurtz-MSFT/drawio-go/pkg/errors"
)

// =============================================================================
// Batch Cell Creation - Validate Then Apply
// =============================================================================

// Batch request kinds.
const (
	BatchKindRectangle = "rectangle"
	BatchKindEdge      = "edge"
)

// BatchCellRequest is one entry of a batchAddCells call. TempID is an
// optional caller-supplied name that later entries in the same batch can
// use as an edge endpoint. Edge entries resolve Source/Target against
// existing cell ids or temp ids declared by *earlier* entries only.
type BatchCellRequest struct {
	Kind   string
	TempID string

	// Rectangle fields
	X, Y          *float64
	Width, Height *float64
	Text          *string
	Style         *string

	// Edge fields
	Source string
	Target string
}

// BatchAddCells validates the entire batch before applying anything.
// Any validation failure returns every error found (each carrying its
// zero-based entry index) and leaves the model untouched. Once the batch
// validates, all entries apply; validation precludes runtime failures so
// no partial-application branch exists.
//
// With dryRun set, validation runs as usual but nothing mutates; the
// returned cells are synthetic previews with ids "temp-cell-{index}".
func (m *Model) BatchAddCells(reqs []BatchCellRequest, dryRun bool) ([]*Cell, []*errors.Error) {
	if errs := m.validateBatch(reqs); len(errs) > 0 {
		return nil, errs
	}

	if dryRun {
		return m.previewBatch(reqs), nil
	}

	// Apply. Temp ids map to real ids as entries materialize.
	temps := make(map[string]string)
	out := make([]*Cell, 0, len(reqs))
	for _, r := range reqs {
		var c *Cell
		switch r.Kind {
		case BatchKindEdge:
			src := resolveRef(r.Source, temps)
			dst := resolveRef(r.Target, temps)
			c, _ = m.AddEdge(src, dst, EdgeOptions{Text: r.Text, Style: r.Style})
		default:
			c = m.AddRectangle(Rectangle{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height, Text: r.Text, Style: r.Style})
		}
		if r.TempID != "" {
			temps[r.TempID] = c.ID
		}
		out = append(out, c)
	}
	return out, nil
}

// validateBatch checks every entry and collects all failures. Edge
// endpoint references are forward-only: a temp id resolves only if an
// earlier entry declared it.
func (m *Model) validateBatch(reqs []BatchCellRequest) []*errors.Error {
	var errs []*errors.Error
	declared := make(map[string]bool)

	for i, r := range reqs {
		switch r.Kind {
		case BatchKindRectangle, "", "vertex":
			// Rectangles have no cross-references to validate.
		case BatchKindEdge:
			if !m.refResolves(r.Source, declared) {
				errs = append(errs, errors.New(errors.ErrCodeInvalidSource,
					"entry %d: source %q is neither an existing cell nor an earlier temp id", i, r.Source).
					WithIndex(i).
					WithSuggestion("declare the temp id in an earlier batch entry"))
			}
			if !m.refResolves(r.Target, declared) {
				errs = append(errs, errors.New(errors.ErrCodeInvalidTarget,
					"entry %d: target %q is neither an existing cell nor an earlier temp id", i, r.Target).
					WithIndex(i).
					WithSuggestion("declare the temp id in an earlier batch entry"))
			}
		default:
			errs = append(errs, errors.New(errors.ErrCodeInvalidKind,
				"entry %d: unknown kind %q", i, r.Kind).
				WithIndex(i).
				WithSuggestion("use %q or %q", BatchKindRectangle, BatchKindEdge))
		}

		if r.TempID != "" {
			declared[r.TempID] = true
		}
	}
	return errs
}

// refResolves reports whether an endpoint reference names an existing
// cell or a temp id declared earlier in the batch.
func (m *Model) refResolves(ref string, declared map[string]bool) bool {
	if ref == "" {
		return false
	}
	return m.cells[ref] != nil || declared[ref]
}

// previewBatch builds the dry-run result: synthetic cells that show what
// the batch would create, without touching the model or its counters.
func (m *Model) previewBatch(reqs []BatchCellRequest) []*Cell {
	temps := make(map[string]string)
	out := make([]*Cell, 0, len(reqs))
	for i, r := range reqs {
		id := fmt.Sprintf("temp-cell-%d", i)
		var c *Cell
		switch r.Kind {
		case BatchKindEdge:
			c = &Cell{
				ID:     id,
				Kind:   KindEdge,
				Label:  strOr(r.Text, ""),
				Style:  strOr(r.Style, DefaultEdgeStyle),
				Parent: m.activeLayer,
				Edge: &EdgeData{
					Source: resolveRef(r.Source, temps),
					Target: resolveRef(r.Target, temps),
				},
			}
		default:
			c = &Cell{
				ID:     id,
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
		}
		if r.TempID != "" {
			temps[r.TempID] = id
		}
		out = append(out, c)
	}
	return out
}

// resolveRef maps a temp id to its materialized id, passing real cell
// ids through unchanged.
func resolveRef(ref string, temps map[string]string) string {
	if real, ok := temps[ref]; ok {
		return real
	}
	return ref
}

// =============================================================================
// Independent-Entry Batches
// =============================================================================

// BatchEntryResult reports one entry's outcome in an independent-entry
// batch. Entries succeed or fail in isolation; one failure never blocks
// the others.
type BatchEntryResult struct {
	Index int
	Cell  *Cell
	Err   *errors.Error
}

// BatchAddCellsToGroup applies AddCellToGroup per entry independently.
func (m *Model) BatchAddCellsToGroup(cellIDs []string, groupID string) []BatchEntryResult {
	out := make([]BatchEntryResult, len(cellIDs))
	for i, id := range cellIDs {
		res := BatchEntryResult{Index: i}
		if err := m.AddCellToGroup(id, groupID); err != nil {
			res.Err = err.WithIndex(i)
		} else {
			res.Cell = m.cells[id]
		}
		out[i] = res
	}
	return out
}

// CellEdit pairs a cell id with the patch to apply.
type CellEdit struct {
	ID    string
	Patch CellPatch
}

// BatchEditCells applies EditCell per entry independently.
func (m *Model) BatchEditCells(edits []CellEdit) []BatchEntryResult {
	out := make([]BatchEntryResult, len(edits))
	for i, e := range edits {
		res := BatchEntryResult{Index: i}
		c, err := m.EditCell(e.ID, e.Patch)
		if err != nil {
			res.Err = err.WithIndex(i)
		} else {
			res.Cell = c
		}
		out[i] = res
	}
	return out
}

// EdgeEdit pairs an edge id with the patch to apply.
type EdgeEdit struct {
	ID    string
	Patch EdgePatch
}

// BatchEditEdges applies EditEdge per entry independently.
func (m *Model) BatchEditEdges(edits []EdgeEdit) []BatchEntryResult {
	out := make([]BatchEntryResult, len(edits))
	for i, e := range edits {
		res := BatchEntryResult{Index: i}
		c, err := m.EditEdge(e.ID, e.Patch)
		if err != nil {
			res.Err = err.WithIndex(i)
		} else {
			res.Cell = c
		}
		out[i] = res
	}
	return out
}
