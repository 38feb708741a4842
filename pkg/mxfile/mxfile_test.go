package mxfile

import (
	"strings"
	"testing"

	"github.com/simonkurtz-MSFT/drawio-go/pkg/deflate"
	"github.com/simonkurtz-MSFT/drawio-go/pkg/errors"
	"github.com/simonkurtz-MSFT/drawio-go/pkg/model"
)

func strp(s string) *string { return &s }
func fp(f float64) *float64 { return &f }

// buildSample assembles a model exercising layers, groups, and edges.
func buildSample(t *testing.T) *model.Model {
	t.Helper()
	m := model.New()

	a := m.AddRectangle(model.Rectangle{X: fp(10), Y: fp(20), Width: fp(100), Height: fp(50), Text: strp("Alpha")})
	b := m.AddRectangle(model.Rectangle{X: fp(200), Y: fp(20), Text: strp(`Quote " & <tag>`)})
	if _, err := m.AddEdge(a.ID, b.ID, model.EdgeOptions{Text: strp("flows")}); err != nil {
		t.Fatalf("AddEdge: %v", err)
	}

	g := m.CreateGroup("Cluster")
	if err := m.AddCellToGroup(b.ID, g.ID); err != nil {
		t.Fatalf("AddCellToGroup: %v", err)
	}

	l := m.AddLayer("Annotations")
	if err := m.SetActiveLayer(l.ID); err != nil {
		t.Fatalf("SetActiveLayer: %v", err)
	}
	m.AddRectangle(model.Rectangle{Text: strp("note")})

	return m
}

// assertEquivalent checks that two models agree on cells, layers, and
// the active layer.
func assertEquivalent(t *testing.T, want, got *model.Model) {
	t.Helper()

	if got.ActiveLayer() != want.ActiveLayer() {
		t.Errorf("active layer = %s, want %s", got.ActiveLayer(), want.ActiveLayer())
	}

	wl, gl := want.Layers(), got.Layers()
	if len(gl) != len(wl) {
		t.Fatalf("layers = %d, want %d", len(gl), len(wl))
	}
	for i := range wl {
		if gl[i].ID != wl[i].ID || gl[i].Name != wl[i].Name {
			t.Errorf("layer[%d] = %+v, want %+v", i, gl[i], wl[i])
		}
	}

	wc, gc := want.ListCells(), got.ListCells()
	if len(gc) != len(wc) {
		t.Fatalf("cells = %d, want %d", len(gc), len(wc))
	}
	for i := range wc {
		w, g := wc[i], gc[i]
		if g.ID != w.ID || g.Kind != w.Kind || g.Label != w.Label || g.Parent != w.Parent {
			t.Errorf("cell[%d] = %+v, want %+v", i, g, w)
			continue
		}
		if w.IsVertex() {
			if g.Vertex.X != w.Vertex.X || g.Vertex.Y != w.Vertex.Y ||
				g.Vertex.Width != w.Vertex.Width || g.Vertex.Height != w.Vertex.Height {
				t.Errorf("cell[%d] geometry = %+v, want %+v", i, g.Vertex, w.Vertex)
			}
			if g.Vertex.IsGroup != w.Vertex.IsGroup {
				t.Errorf("cell[%d] IsGroup = %v, want %v", i, g.Vertex.IsGroup, w.Vertex.IsGroup)
			}
		}
		if w.IsEdge() && (g.Edge.Source != w.Edge.Source || g.Edge.Target != w.Edge.Target) {
			t.Errorf("cell[%d] endpoints = %+v, want %+v", i, g.Edge, w.Edge)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	for _, compress := range []bool{false, true} {
		name := "plain"
		if compress {
			name = "compressed"
		}
		t.Run(name, func(t *testing.T) {
			want := buildSample(t)

			text, err := Export(want, ExportOptions{Compress: compress})
			if err != nil {
				t.Fatalf("Export: %v", err)
			}

			got := model.New()
			res, err := Import(got, text)
			if err != nil {
				t.Fatalf("Import: %v", err)
			}
			if res.Pages != 1 {
				t.Errorf("Pages = %d, want 1", res.Pages)
			}
			assertEquivalent(t, want, got)
		})
	}
}

func TestExportEscapesAttributes(t *testing.T) {
	m := model.New()
	m.AddRectangle(model.Rectangle{Text: strp(`a<b>&"c"`)})

	text, err := Export(m, ExportOptions{})
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	for _, raw := range []string{`value="a<`, `>&"`} {
		if strings.Contains(text, raw) {
			t.Errorf("output contains unescaped fragment %q:\n%s", raw, text)
		}
	}
	if !strings.Contains(text, "&lt;") || !strings.Contains(text, "&amp;") || !strings.Contains(text, "&#34;") {
		t.Errorf("expected escaped entities in output:\n%s", text)
	}
}

func TestExportGroupMarkers(t *testing.T) {
	m := model.New()
	g := m.CreateGroup("box")

	text, err := Export(m, ExportOptions{})
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if !strings.Contains(text, `connectable="0"`) {
		t.Error("group missing non-connectable marker")
	}
	if strings.Count(text, model.ContainerToken) != 1 {
		t.Errorf("container token count = %d, want exactly 1:\n%s", strings.Count(text, model.ContainerToken), text)
	}
	_ = g
}

func TestExportEdgeGeometryIsRelative(t *testing.T) {
	m := model.New()
	a := m.AddRectangle(model.Rectangle{})
	b := m.AddRectangle(model.Rectangle{})
	if _, err := m.AddEdge(a.ID, b.ID, model.EdgeOptions{}); err != nil {
		t.Fatalf("AddEdge: %v", err)
	}

	text, err := Export(m, ExportOptions{})
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if !strings.Contains(text, `relative="1"`) {
		t.Error("edge geometry missing relative marker")
	}
}

func TestImportStructuralErrors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantCode errors.Code
	}{
		{"empty", "", errors.ErrCodeEmptyXML},
		{"whitespace", "  \n\t ", errors.ErrCodeEmptyXML},
		{"no marker", "<svg><g/></svg>", errors.ErrCodeInvalidXML},
		{"mangled mxfile", "<mxfile><diagram></mxfile>", errors.ErrCodeInvalidXML},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := model.New()
			_, err := Import(m, tt.input)
			if !errors.Is(err, tt.wantCode) {
				t.Errorf("Import error = %v, want code %s", err, tt.wantCode)
			}
		})
	}
}

func TestImportBareGraphModel(t *testing.T) {
	input := `<mxGraphModel dx="800" dy="600" grid="1" gridSize="10" guides="1" tooltips="1" connect="1" arrows="1" fold="1" page="1" pageScale="1" pageWidth="850" pageHeight="1100" math="0" shadow="0">
  <root>
    <mxCell id="0"/>
    <mxCell id="1" parent="0"/>
    <mxCell id="cell-2" value="Solo" style="rounded=0;" vertex="1" parent="1">
      <mxGeometry x="5" y="6" width="70" height="30" as="geometry"/>
    </mxCell>
  </root>
</mxGraphModel>`

	m := model.New()
	res, err := Import(m, input)
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if res.Cells != 1 {
		t.Errorf("Cells = %d, want 1", res.Cells)
	}
	c := m.CellByID("cell-2")
	if c == nil || c.Label != "Solo" || c.Vertex.X != 5 {
		t.Errorf("imported cell = %+v", c)
	}
}

func TestImportMissingGeometryDefaults(t *testing.T) {
	input := `<mxGraphModel><root>
    <mxCell id="0"/><mxCell id="1" parent="0"/>
    <mxCell id="cell-2" vertex="1" parent="1"/>
  </root></mxGraphModel>`

	m := model.New()
	if _, err := Import(m, input); err != nil {
		t.Fatalf("Import: %v", err)
	}
	v := m.CellByID("cell-2").Vertex
	if v.X != 0 || v.Y != 0 || v.Width != 200 || v.Height != 100 {
		t.Errorf("geometry = %+v, want defaults 0,0,200,100", v)
	}
}

func TestImportObjectFormMergesAttributes(t *testing.T) {
	input := `<mxfile><diagram><mxGraphModel><root>
    <mxCell id="0"/><mxCell id="1" parent="0"/>
    <object id="cell-2" label="Outer wins">
      <mxCell id="ignored" value="Inner loses" style="rounded=1;" vertex="1" parent="1">
        <mxGeometry x="1" y="2" width="30" height="40" as="geometry"/>
      </mxCell>
    </object>
    <object id="cell-3">
      <mxCell value="Adopted inner" style="rounded=0;" vertex="1" parent="1"/>
    </object>
  </root></mxGraphModel></diagram></mxfile>`

	m := model.New()
	if _, err := Import(m, input); err != nil {
		t.Fatalf("Import: %v", err)
	}

	outer := m.CellByID("cell-2")
	if outer == nil {
		t.Fatal("object id not used as cell id")
	}
	if outer.Label != "Outer wins" {
		t.Errorf("label = %q, want outer attribute", outer.Label)
	}
	if outer.Style != "rounded=1;" || outer.Vertex.Width != 30 {
		t.Errorf("nested style/geometry not adopted: %+v", outer)
	}

	adopted := m.CellByID("cell-3")
	if adopted == nil || adopted.Label != "Adopted inner" {
		t.Errorf("unset outer label did not adopt nested value: %+v", adopted)
	}
}

func TestImportMultiPageMerge(t *testing.T) {
	input := `<mxfile>
  <diagram name="P1"><mxGraphModel><root>
    <mxCell id="0"/><mxCell id="1" parent="0"/>
    <mxCell id="2" value="Shared" parent="0"/>
    <mxCell id="cell-5" value="first" vertex="1" parent="2">
      <mxGeometry x="1" y="1" width="10" height="10" as="geometry"/>
    </mxCell>
  </root></mxGraphModel></diagram>
  <diagram name="P2"><mxGraphModel><root>
    <mxCell id="0"/><mxCell id="1" parent="0"/>
    <mxCell id="2" value="Shared" parent="0"/>
    <mxCell id="cell-5" value="second" vertex="1" parent="2">
      <mxGeometry x="9" y="9" width="10" height="10" as="geometry"/>
    </mxCell>
    <mxCell id="cell-6" value="only-p2" vertex="1" parent="1">
      <mxGeometry width="10" height="10" as="geometry"/>
    </mxCell>
  </root></mxGraphModel></diagram>
</mxfile>`

	m := model.New()
	res, err := Import(m, input)
	if err != nil {
		t.Fatalf("Import: %v", err)
	}

	if res.Pages != 2 {
		t.Errorf("Pages = %d, want 2", res.Pages)
	}
	// Both pages declare layer "2" identically: exactly one layer "2".
	if got := len(m.Layers()); got != 2 {
		t.Errorf("layers = %d (%v), want default plus one merged layer", got, m.Layers())
	}
	if m.LayerByID("2") == nil {
		t.Fatal("merged layer 2 missing")
	}
	// Later page wins the cell-id collision.
	if c := m.CellByID("cell-5"); c.Label != "second" || c.Vertex.X != 9 {
		t.Errorf("cell-5 = %+v, want the second page's version", c)
	}
	if m.CellByID("cell-6") == nil {
		t.Error("cell present only on page 2 missing after merge")
	}
	// Counter reseeds past the highest numeric token (6).
	if c := m.AddRectangle(model.Rectangle{}); c.ID != "cell-7" {
		t.Errorf("next id = %s, want cell-7", c.ID)
	}
}

func TestImportCompressedPage(t *testing.T) {
	inner := `<mxGraphModel><root>
    <mxCell id="0"/><mxCell id="1" parent="0"/>
    <mxCell id="cell-2" value="Grüße &amp; more" vertex="1" parent="1">
      <mxGeometry x="3" y="4" width="50" height="25" as="geometry"/>
    </mxCell>
  </root></mxGraphModel>`
	blob, err := deflate.Compress(inner)
	if err != nil {
		t.Fatalf("Compress: %v", err)
	}

	m := model.New()
	res, err := Import(m, "<mxfile><diagram>"+blob+"</diagram></mxfile>")
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if res.Cells != 1 {
		t.Errorf("Cells = %d, want 1", res.Cells)
	}
	if c := m.CellByID("cell-2"); c == nil || c.Label != "Grüße & more" {
		t.Errorf("compressed page cell = %+v", c)
	}
}

func TestImportGroupDetection(t *testing.T) {
	input := `<mxGraphModel><root>
    <mxCell id="0"/><mxCell id="1" parent="0"/>
    <mxCell id="g1" style="group;container=1;" vertex="1" parent="1">
      <mxGeometry width="200" height="200" as="geometry"/>
    </mxCell>
    <mxCell id="g2" style="shape=mxgraph.SwimLane;html=1;" vertex="1" parent="1">
      <mxGeometry width="200" height="200" as="geometry"/>
    </mxCell>
    <mxCell id="child" vertex="1" parent="g1">
      <mxGeometry width="10" height="10" as="geometry"/>
    </mxCell>
  </root></mxGraphModel>`

	m := model.New()
	if _, err := Import(m, input); err != nil {
		t.Fatalf("Import: %v", err)
	}

	for _, id := range []string{"g1", "g2"} {
		if c := m.CellByID(id); c == nil || !c.IsGroup() {
			t.Errorf("%s not detected as group: %+v", id, c)
		}
	}
	g1 := m.CellByID("g1")
	if len(g1.Vertex.Children) != 1 || g1.Vertex.Children[0] != "child" {
		t.Errorf("g1 children = %v, want [child]", g1.Vertex.Children)
	}
}

func TestImportReplacesExistingState(t *testing.T) {
	m := model.New()
	m.AddRectangle(model.Rectangle{Text: strp("stale")})
	m.AddLayer("stale layer")

	input := `<mxGraphModel><root>
    <mxCell id="0"/><mxCell id="1" parent="0"/>
  </root></mxGraphModel>`
	if _, err := Import(m, input); err != nil {
		t.Fatalf("Import: %v", err)
	}

	if m.Len() != 0 || len(m.Layers()) != 1 {
		t.Errorf("import did not fully replace state: %s", m)
	}
}
