package placeholder

import (
	"strings"
	"testing"

	"github.com/simonkurtz-MSFT/drawio-go/pkg/model"
)

func TestNewCell(t *testing.T) {
	c := NewCell("Front Doors", "rounded=0;", 10, 20)

	if !strings.HasPrefix(c.ID, "placeholder-front-doors-") {
		t.Errorf("id = %s, want placeholder-front-doors-{suffix}", c.ID)
	}
	if c.Label != "Front Doors" {
		t.Errorf("label = %q, want original shape name", c.Label)
	}
	if !strings.Contains(c.Style, Marker) {
		t.Errorf("style = %q, missing marker", c.Style)
	}
	if c.Vertex == nil || c.Vertex.X != 10 || c.Vertex.Y != 20 {
		t.Errorf("geometry = %+v, want position (10, 20)", c.Vertex)
	}
}

func TestNewCellMarkerAppendedOnce(t *testing.T) {
	c := NewCell("Box", "rounded=0;"+Marker+";", 0, 0)
	if got := strings.Count(c.Style, Marker); got != 1 {
		t.Errorf("marker count = %d, want 1 in %q", got, c.Style)
	}
}

func TestNewIDSuffixesDiffer(t *testing.T) {
	a := NewID("Box")
	b := NewID("Box")
	if a == b {
		t.Errorf("two ids for the same shape are identical: %s", a)
	}
}

func TestIsPlaceholder(t *testing.T) {
	if !IsPlaceholder("placeholder-box-0a1b2c3d") {
		t.Error("IsPlaceholder = false for placeholder id")
	}
	if IsPlaceholder("cell-2") {
		t.Error("IsPlaceholder = true for model cell id")
	}
}

func TestShapeNameFromID(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		want    string
		wantErr bool
	}{
		{"simple", "placeholder-box-0a1b2c3d", "box", false},
		{"hyphenated name", "placeholder-front-doors-deadbeef", "front-doors", false},
		{"numeric suffix", "placeholder-box-12345678", "box", false},
		{"wrong prefix", "cell-2", "", true},
		{"no suffix", "placeholder-box", "", true},
		{"short suffix", "placeholder-box-abc", "", true},
		{"non-hex suffix", "placeholder-box-zzzzzzzz", "", true},
		{"uppercase suffix rejected", "placeholder-box-DEADBEEF", "", true},
		{"empty name", "placeholder--deadbeef", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ShapeNameFromID(tt.id)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ShapeNameFromID(%q) error = %v, wantErr %v", tt.id, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ShapeNameFromID(%q) = %q, want %q", tt.id, got, tt.want)
			}
		})
	}
}

func TestNameDerivationStableUnderRelabel(t *testing.T) {
	m := model.New()
	c := AddShape(m, "Front Doors", "rounded=0;", 0, 0, true, nil)

	// Relabeling must not affect name derivation: the name comes from
	// the id, never the label.
	if _, err := m.EditCell(c.ID, patchLabel("Renamed Completely")); err != nil {
		t.Fatalf("EditCell: %v", err)
	}

	name, err := ShapeNameFromID(c.ID)
	if err != nil {
		t.Fatalf("ShapeNameFromID: %v", err)
	}
	if name != "front-doors" {
		t.Errorf("name = %q, want front-doors", name)
	}
}

func patchLabel(s string) model.CellPatch {
	return model.CellPatch{Label: &s}
}

func TestAddShapeTransactional(t *testing.T) {
	m := model.New()
	calls := 0
	resolver := func(name, id string) (*Resolution, error) {
		calls++
		return &Resolution{Style: "shape=door;"}, nil
	}

	c := AddShape(m, "Door", "rounded=0;", 0, 0, true, resolver)
	if calls != 0 {
		t.Errorf("resolver called %d times in transactional mode, want 0", calls)
	}
	if !strings.Contains(c.Style, Marker) {
		t.Error("transactional cell is not a placeholder")
	}
	if c.Parent != m.ActiveLayer() {
		t.Errorf("parent = %s, want active layer", c.Parent)
	}
}

func TestAddShapeImmediate(t *testing.T) {
	m := model.New()
	resolver := func(name, id string) (*Resolution, error) {
		return &Resolution{Style: "shape=door;", Image: "data:image/png,abc"}, nil
	}

	c := AddShape(m, "Door", "rounded=0;", 0, 0, false, resolver)
	if strings.Contains(c.Style, Marker) {
		t.Errorf("style = %q, want resolved style without marker", c.Style)
	}
	if !strings.Contains(c.Style, "image=data:image/png,abc") {
		t.Errorf("style = %q, want embedded image token", c.Style)
	}
}

func TestAddShapeImmediateFallsBackOnFailure(t *testing.T) {
	m := model.New()
	resolver := func(name, id string) (*Resolution, error) {
		return nil, nil // shape unknown
	}

	c := AddShape(m, "Door", "rounded=0;", 0, 0, false, resolver)
	if !strings.Contains(c.Style, Marker) {
		t.Error("unresolvable shape did not stay a placeholder")
	}
}

func TestStripImageFromStyle(t *testing.T) {
	got := StripImageFromStyle("shape=door;image=data:x;html=1;")
	if got != "shape=door;html=1;" {
		t.Errorf("StripImageFromStyle = %q", got)
	}
}
