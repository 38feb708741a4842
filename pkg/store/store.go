// Package store provides named persistence for serialized diagrams.
//
// A Store keeps exported mxfile XML under a diagram name, with
// implementations for different backends:
//   - memory: in-process storage for development/testing
//   - file: JSON files in a config directory for CLI usage
//   - redis: Redis-backed storage for multi-instance deployments
//   - mongo: MongoDB-backed storage for durable server deployments
//
// Records hold serialized XML, never live model state. Callers export
// a model before Put and import after Get, so every backend stores the
// same self-contained representation.
//
// # Usage
//
//	s := store.NewMemory()                 // development
//	s, err := store.NewFile("")            // CLI, ~/.config/drawio-go/diagrams/
//	s, err := store.NewRedis(ctx, store.RedisConfig{Addr: "localhost:6379"})
//
//	err = s.Put(ctx, &store.Record{Name: "network", XML: xml})
//	rec, err := s.Get(ctx, "network")
package store

import (
	"context"
	"strings"
	"time"

	"github.com/simonkurtz-MSFT/drawio-go/pkg/errors"
)

// Record is one stored diagram: its name, the serialized mxfile XML,
// and the time of the last write.
type Record struct {
	Name      string    `json:"name" bson:"_id"`
	XML       string    `json:"xml" bson:"xml"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

// Store is the interface for diagram storage backends.
type Store interface {
	// Get retrieves a diagram by name. Returns a DIAGRAM_NOT_FOUND
	// error when no diagram has that name.
	Get(ctx context.Context, name string) (*Record, error)

	// Put stores a diagram, replacing any prior record with the same
	// name. UpdatedAt is stamped on write.
	Put(ctx context.Context, rec *Record) error

	// Delete removes a diagram. Deleting an absent name is not an
	// error.
	Delete(ctx context.Context, name string) error

	// List returns every stored diagram name, sorted.
	List(ctx context.Context) ([]string, error)

	// Close releases backend resources.
	Close() error
}

// NotFound builds the standard missing-diagram error.
func NotFound(name string) error {
	return errors.New(errors.ErrCodeDiagramNotFound, "diagram %q does not exist", name).
		WithSuggestion("list stored diagrams to see available names")
}

// ValidateName rejects names that cannot serve as storage keys across
// backends: empty strings and path separators.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errors.New(errors.ErrCodeInternal, "diagram name must not be empty")
	}
	if strings.ContainsAny(name, "/\\") {
		return errors.New(errors.ErrCodeInternal, "diagram name %q must not contain path separators", name)
	}
	return nil
}
