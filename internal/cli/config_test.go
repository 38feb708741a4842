package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) {
	t.Helper()
	base := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", base)
	dir := filepath.Join(base, appName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Serve.Addr != "" || cfg.Shapes != "" {
		t.Errorf("missing config produced non-zero values: %+v", cfg)
	}
}

func TestLoadConfig(t *testing.T) {
	writeConfig(t, "shapes = \"/etc/drawio/shapes.toml\"\n\n[serve]\naddr = \":9090\"\nstore = \"file\"\n")

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Serve.Addr != ":9090" || cfg.Serve.Store != "file" {
		t.Errorf("serve config = %+v", cfg.Serve)
	}
	if cfg.Shapes != "/etc/drawio/shapes.toml" {
		t.Errorf("shapes = %q", cfg.Shapes)
	}
}

func TestLoadConfigMalformed(t *testing.T) {
	writeConfig(t, "[serve\naddr=")
	if _, err := loadConfig(); err == nil {
		t.Fatal("loadConfig accepted malformed TOML")
	}
}

func TestApplyConfigRespectsFlags(t *testing.T) {
	cfg := &Config{}
	cfg.Serve.Addr = ":9090"
	cfg.Serve.Store = "file"

	opts := serveOpts{addr: ":8080", backend: "memory"}
	changed := map[string]bool{"addr": true}
	opts.applyConfig(cfg, func(name string) bool { return changed[name] })

	if opts.addr != ":8080" {
		t.Errorf("addr = %q, explicit flag must win", opts.addr)
	}
	if opts.backend != "file" {
		t.Errorf("backend = %q, config must fill unset flag", opts.backend)
	}
}
