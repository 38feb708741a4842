package model

import (
	"testing"

	"github.com/simonkurtz-MSFT/drawio-go/pkg/errors"
)

func TestBatchAddCellsAppliesAll(t *testing.T) {
	m := New()

	cells, errs := m.BatchAddCells([]BatchCellRequest{
		{Kind: BatchKindRectangle, TempID: "a", Text: strp("A")},
		{Kind: BatchKindRectangle, TempID: "b", Text: strp("B")},
		{Kind: BatchKindEdge, Source: "a", Target: "b"},
	}, false)

	if len(errs) != 0 {
		t.Fatalf("errs = %v, want none", errs)
	}
	if len(cells) != 3 {
		t.Fatalf("created %d cells, want 3", len(cells))
	}

	edge := cells[2]
	if !edge.IsEdge() {
		t.Fatal("third entry is not an edge")
	}
	if edge.Edge.Source != cells[0].ID || edge.Edge.Target != cells[1].ID {
		t.Errorf("edge endpoints = %s->%s, want temp ids resolved to %s->%s",
			edge.Edge.Source, edge.Edge.Target, cells[0].ID, cells[1].ID)
	}
	if m.Len() != 3 {
		t.Errorf("model has %d cells, want 3", m.Len())
	}
}

func TestBatchAddCellsFailFast(t *testing.T) {
	m := New()
	existing := m.AddRectangle(Rectangle{})
	before := m.Len()

	tests := []struct {
		name      string
		reqs      []BatchCellRequest
		wantCodes []errors.Code
		wantIndex []int
	}{
		{
			name: "unknown source",
			reqs: []BatchCellRequest{
				{Kind: BatchKindEdge, Source: "ghost", Target: existing.ID},
			},
			wantCodes: []errors.Code{errors.ErrCodeInvalidSource},
			wantIndex: []int{0},
		},
		{
			name: "temp id declared later",
			reqs: []BatchCellRequest{
				{Kind: BatchKindEdge, Source: existing.ID, Target: "late"},
				{Kind: BatchKindRectangle, TempID: "late"},
			},
			wantCodes: []errors.Code{errors.ErrCodeInvalidTarget},
			wantIndex: []int{0},
		},
		{
			name: "multiple failures all reported",
			reqs: []BatchCellRequest{
				{Kind: BatchKindRectangle, TempID: "ok"},
				{Kind: BatchKindEdge, Source: "ghost", Target: "phantom"},
				{Kind: "triangle"},
			},
			wantCodes: []errors.Code{errors.ErrCodeInvalidSource, errors.ErrCodeInvalidTarget, errors.ErrCodeInvalidKind},
			wantIndex: []int{1, 1, 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cells, errs := m.BatchAddCells(tt.reqs, false)
			if cells != nil {
				t.Error("cells returned despite validation failure")
			}
			if len(errs) != len(tt.wantCodes) {
				t.Fatalf("got %d errors, want %d: %v", len(errs), len(tt.wantCodes), errs)
			}
			for i, err := range errs {
				if err.Code != tt.wantCodes[i] {
					t.Errorf("errs[%d].Code = %s, want %s", i, err.Code, tt.wantCodes[i])
				}
				if err.Index != tt.wantIndex[i] {
					t.Errorf("errs[%d].Index = %d, want %d", i, err.Index, tt.wantIndex[i])
				}
			}
			if m.Len() != before {
				t.Error("failed batch mutated the model")
			}
		})
	}
}

func TestBatchAddCellsDryRun(t *testing.T) {
	m := New()

	cells, errs := m.BatchAddCells([]BatchCellRequest{
		{Kind: BatchKindRectangle, TempID: "a"},
		{Kind: BatchKindEdge, Source: "a", Target: "a"},
	}, true)

	if len(errs) != 0 {
		t.Fatalf("errs = %v, want none", errs)
	}
	if m.Len() != 0 {
		t.Error("dry run mutated the model")
	}
	if cells[0].ID != "temp-cell-0" || cells[1].ID != "temp-cell-1" {
		t.Errorf("preview ids = %s, %s, want temp-cell-{index}", cells[0].ID, cells[1].ID)
	}
	if cells[1].Edge.Source != "temp-cell-0" {
		t.Errorf("preview edge source = %s, want temp-cell-0", cells[1].Edge.Source)
	}

	// Counters untouched: next real cell still starts at 2.
	if c := m.AddRectangle(Rectangle{}); c.ID != "cell-2" {
		t.Errorf("id after dry run = %s, want cell-2", c.ID)
	}
}

func TestBatchAddCellsToGroupIsolation(t *testing.T) {
	m := New()
	g := m.CreateGroup("box")
	a := m.AddRectangle(Rectangle{})
	b := m.AddRectangle(Rectangle{})

	results := m.BatchAddCellsToGroup([]string{a.ID, "ghost", b.ID}, g.ID)

	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}
	if results[0].Err != nil || results[2].Err != nil {
		t.Errorf("valid entries failed: %v, %v", results[0].Err, results[2].Err)
	}
	if results[1].Err == nil || results[1].Err.Code != errors.ErrCodeCellNotFound {
		t.Errorf("results[1].Err = %v, want CELL_NOT_FOUND", results[1].Err)
	}
	if len(g.Vertex.Children) != 2 {
		t.Errorf("children = %v, want the two valid cells", g.Vertex.Children)
	}
}

func TestBatchEditCellsIsolation(t *testing.T) {
	m := New()
	a := m.AddRectangle(Rectangle{})

	results := m.BatchEditCells([]CellEdit{
		{ID: a.ID, Patch: CellPatch{Label: strp("renamed")}},
		{ID: "ghost", Patch: CellPatch{Label: strp("x")}},
	})

	if results[0].Err != nil {
		t.Errorf("valid edit failed: %v", results[0].Err)
	}
	if results[1].Err == nil {
		t.Error("invalid edit did not fail")
	}
	if a.Label != "renamed" {
		t.Errorf("label = %q, want renamed despite sibling failure", a.Label)
	}
}

func TestBatchEditEdgesIsolation(t *testing.T) {
	m := New()
	a := m.AddRectangle(Rectangle{})
	b := m.AddRectangle(Rectangle{})
	e1, _ := m.AddEdge(a.ID, b.ID, EdgeOptions{})
	e2, _ := m.AddEdge(b.ID, a.ID, EdgeOptions{})

	results := m.BatchEditEdges([]EdgeEdit{
		{ID: e1.ID, Patch: EdgePatch{Label: strp("ok")}},
		{ID: e2.ID, Patch: EdgePatch{Source: strp("ghost")}},
	})

	if results[0].Err != nil {
		t.Errorf("valid edit failed: %v", results[0].Err)
	}
	if results[1].Err == nil || results[1].Err.Code != errors.ErrCodeSourceNotFound {
		t.Errorf("results[1].Err = %v, want SOURCE_NOT_FOUND", results[1].Err)
	}
	if e1.Label != "ok" {
		t.Error("valid entry did not apply")
	}
	if e2.Edge.Source != b.ID {
		t.Error("failed entry mutated its edge")
	}
}
