// Package cli implements the drawio command-line interface.
//
// This package provides commands for importing and exporting draw.io
// diagram files, inspecting diagram statistics, running the legacy
// compression codec directly, resolving placeholder shapes, browsing a
// diagram interactively, and serving the HTTP API. The CLI is built
// using cobra and supports verbose logging via the charmbracelet/log
// library.
//
// # Commands
//
// The main commands are:
//   - import: Parse a diagram file and report what was loaded
//   - export: Re-serialize a diagram (plain or compressed pages)
//   - stats: Show cell, edge, group, and layer statistics
//   - compress/decompress: Run the legacy page codec directly
//   - resolve: Substitute placeholder shapes with library styles
//   - browse: Interactive cell browser
//   - serve: Run the HTTP API
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging.
package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/simonkurtz-MSFT/drawio-go/pkg/buildinfo"
	"github.com/simonkurtz-MSFT/drawio-go/pkg/shapes"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "drawio"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "drawio reads, edits, and writes draw.io diagram files",
		Long:         `drawio is a CLI tool for working with draw.io interchange files: importing and exporting diagrams, inspecting their structure, handling the legacy page compression, and resolving placeholder shapes.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.importCommand())
	root.AddCommand(c.exportCommand())
	root.AddCommand(c.statsCommand())
	root.AddCommand(c.compressCommand())
	root.AddCommand(c.decompressCommand())
	root.AddCommand(c.resolveCommand())
	root.AddCommand(c.browseCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Shape Library
// =============================================================================

// loadShapes builds the shape library: the built-in set, extended by
// the user's config-dir library when present, then by the config file's
// shapes path, then by an explicit --shapes file.
func (c *CLI) loadShapes(explicit string) (*shapes.Library, error) {
	lib := shapes.Builtin()

	if path, err := defaultShapesPath(); err == nil {
		if _, statErr := os.Stat(path); statErr == nil {
			user, err := shapes.Load(path)
			if err != nil {
				return nil, fmt.Errorf("load %s: %w", path, err)
			}
			lib.Merge(user)
		}
	}

	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	for _, path := range []string{cfg.Shapes, explicit} {
		if path == "" {
			continue
		}
		extra, err := shapes.Load(path)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
		lib.Merge(extra)
	}
	return lib, nil
}

// =============================================================================
// Paths
// =============================================================================

// configDir returns the config directory using XDG standard
// (~/.config/drawio/).
func configDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}

// defaultShapesPath is the user shape library location.
func defaultShapesPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "shapes.toml"), nil
}

// =============================================================================
// I/O Helpers
// =============================================================================

// readInput reads a file argument, with "-" meaning stdin.
func readInput(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// writeOutput writes to a file, or stdout when path is empty.
func writeOutput(path, content string) error {
	if path == "" {
		_, err := io.WriteString(os.Stdout, content)
		return err
	}
	return os.WriteFile(path, []byte(content), 0o644)
}
