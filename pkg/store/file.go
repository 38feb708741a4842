package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"
)

// FileStore keeps diagrams as JSON files in a config directory, one
// file per diagram.
type FileStore struct {
	mu      sync.RWMutex
	baseDir string
}

// NewFile creates a file-based store. If baseDir is empty, defaults to
// ~/.config/drawio-go/diagrams/
func NewFile(baseDir string) (*FileStore, error) {
	if baseDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("get home dir: %w", err)
		}
		baseDir = filepath.Join(home, ".config", "drawio-go", "diagrams")
	}
	if err := os.MkdirAll(baseDir, 0700); err != nil {
		return nil, fmt.Errorf("create diagram dir: %w", err)
	}
	return &FileStore{baseDir: baseDir}, nil
}

func (s *FileStore) recordPath(name string) string {
	return filepath.Join(s.baseDir, name+".json")
}

func (s *FileStore) Get(ctx context.Context, name string) (*Record, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.recordPath(name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, NotFound(name)
		}
		return nil, fmt.Errorf("read diagram file: %w", err)
	}

	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("parse diagram record: %w", err)
	}
	return &rec, nil
}

func (s *FileStore) Put(ctx context.Context, rec *Record) error {
	if err := ValidateName(rec.Name); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec.UpdatedAt = time.Now()
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal diagram record: %w", err)
	}
	if err := os.WriteFile(s.recordPath(rec.Name), data, 0600); err != nil {
		return fmt.Errorf("write diagram file: %w", err)
	}
	return nil
}

func (s *FileStore) Delete(ctx context.Context, name string) error {
	if err := ValidateName(name); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.recordPath(name)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove diagram file: %w", err)
	}
	return nil
}

func (s *FileStore) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		return nil, fmt.Errorf("read diagram dir: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), ".json"))
	}
	slices.Sort(names)
	return names, nil
}

func (s *FileStore) Close() error { return nil }

// Path returns the base directory for diagram files.
func (s *FileStore) Path() string {
	return s.baseDir
}

var _ Store = (*FileStore)(nil)
