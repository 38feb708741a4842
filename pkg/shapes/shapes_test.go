package shapes

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/simonkurtz-MSFT/drawio-go/pkg/errors"
)

const testLibrary = `
[shapes."front doors"]
style = "shape=mxgraph.doors.double_door;html=1;"

[shapes.router]
style = "shape=mxgraph.networks.router;html=1;"
aliases = ["gateway"]

[shapes.logo]
style = "shape=image;html=1;"
image = "data:image/png;base64,abc123"
`

func TestParse(t *testing.T) {
	lib, err := Parse([]byte(testLibrary))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if lib.Len() != 3 {
		t.Fatalf("Len = %d, want 3", lib.Len())
	}

	s, ok := lib.Lookup("Front Doors")
	if !ok {
		t.Fatal("Lookup(Front Doors) = not found")
	}
	if !strings.Contains(s.Style, "double_door") {
		t.Errorf("style = %q", s.Style)
	}
}

func TestParseInvalidTOML(t *testing.T) {
	if _, err := Parse([]byte("[shapes\nnope")); err == nil {
		t.Fatal("Parse accepted malformed TOML")
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shapes.toml")
	if err := os.WriteFile(path, []byte(testLibrary), 0o644); err != nil {
		t.Fatal(err)
	}

	lib, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if _, ok := lib.Lookup("router"); !ok {
		t.Error("router missing after Load")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Fatal("Load succeeded for a missing file")
	}
}

func TestLookupByAlias(t *testing.T) {
	lib, err := Parse([]byte(testLibrary))
	if err != nil {
		t.Fatal(err)
	}
	s, ok := lib.Lookup("gateway")
	if !ok {
		t.Fatal("alias lookup failed")
	}
	if !strings.Contains(s.Style, "router") {
		t.Errorf("alias resolved to %q", s.Style)
	}
}

func TestMergeOverrides(t *testing.T) {
	base := Builtin()
	override, err := Parse([]byte("[shapes.cloud]\nstyle = \"shape=custom_cloud;\"\n"))
	if err != nil {
		t.Fatal(err)
	}
	base.Merge(override)

	s, _ := base.Lookup("cloud")
	if s.Style != "shape=custom_cloud;" {
		t.Errorf("merged style = %q, want override", s.Style)
	}
	// Merging must not duplicate canonical names.
	count := 0
	for _, name := range base.Names() {
		if name == "cloud" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("cloud listed %d times after merge", count)
	}
}

func TestSearch(t *testing.T) {
	lib := Builtin()
	hits := lib.Search("RECT")
	if len(hits) != 2 {
		t.Fatalf("Search(RECT) = %v, want rectangle and rounded-rectangle", hits)
	}
	if all := lib.Search(""); len(all) != lib.Len() {
		t.Errorf("empty query returned %d of %d shapes", len(all), lib.Len())
	}
}

func TestResolver(t *testing.T) {
	lib, err := Parse([]byte(testLibrary))
	if err != nil {
		t.Fatal(err)
	}
	resolve := lib.Resolver()

	res, err := resolve("logo", "placeholder-logo-0a1b2c3d")
	if err != nil {
		t.Fatalf("resolve(logo): %v", err)
	}
	if res.Image != "data:image/png;base64,abc123" {
		t.Errorf("image = %q", res.Image)
	}

	_, err = resolve("unknown-shape", "placeholder-unknown-shape-0a1b2c3d")
	if !errors.Is(err, errors.ErrCodeResolveFailed) {
		t.Errorf("unknown shape error = %v, want RESOLVE_FAILED", err)
	}
}

func TestBuiltinAliases(t *testing.T) {
	lib := Builtin()
	for _, alias := range []string{"database", "user", "internet", "circle"} {
		if _, ok := lib.Lookup(alias); !ok {
			t.Errorf("builtin alias %q not found", alias)
		}
	}
}
