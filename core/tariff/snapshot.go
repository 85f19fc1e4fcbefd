// Package tariff - Sealed, content-hashed table snapshots
package tariff

import (
	"context"
	"sync/atomic"
	"time"

	"motor-premium/core/determinism"
	"motor-premium/internal/errors"
)

var snapshotIDs = determinism.NewIDGenerator("tariff")

// Snapshot is IMMUTABLE after creation.
// It is a point-in-time capture of the tariff tables with a content hash,
// so two snapshots of equal tables carry the same ID.
type Snapshot struct {
	ID          determinism.StableID
	ContentHash determinism.ContentHash
	Source      string
	LoadedAt    time.Time

	tables Tables
}

// NewSnapshot validates and seals tables
func NewSnapshot(tables Tables, source string, loadedAt time.Time) (*Snapshot, error) {
	if err := tables.Validate(); err != nil {
		return nil, err
	}
	hash, err := determinism.HashJSON(tables)
	if err != nil {
		return nil, errors.Internal("failed to hash tariff tables", err)
	}
	return &Snapshot{
		ID:          snapshotIDs.Generate(hash.Hex()),
		ContentHash: hash,
		Source:      source,
		LoadedAt:    loadedAt,
		tables:      tables,
	}, nil
}

// MustDefaultSnapshot seals the built-in tariff. It panics only if the
// built-in tables are invalid.
func MustDefaultSnapshot() *Snapshot {
	s, err := NewSnapshot(Default(), "builtin", time.Time{})
	if err != nil {
		panic("tariff: built-in tables are invalid: " + err.Error())
	}
	return s
}

// Tables returns the sealed tables. Callers must not modify them.
func (s *Snapshot) Tables() Tables {
	return s.tables
}

// Loader produces a complete set of tables, e.g. from a tariff file
type Loader interface {
	Load(ctx context.Context) (Tables, error)
	Source() string
}

// Store holds the current snapshot. Reloads swap the whole snapshot
// atomically, never mutating the one in use.
type Store struct {
	current atomic.Pointer[Snapshot]
}

// NewStore creates a store serving initial
func NewStore(initial *Snapshot) *Store {
	s := &Store{}
	s.current.Store(initial)
	return s
}

// Current returns the snapshot in effect
func (s *Store) Current() *Snapshot {
	return s.current.Load()
}

// Swap installs next and returns the snapshot it replaced
func (s *Store) Swap(next *Snapshot) *Snapshot {
	return s.current.Swap(next)
}

// Reload loads, seals and installs new tables. On any error the current
// snapshot stays in effect.
func (s *Store) Reload(ctx context.Context, loader Loader, now time.Time) (*Snapshot, error) {
	tables, err := loader.Load(ctx)
	if err != nil {
		return nil, err
	}
	next, err := NewSnapshot(tables, loader.Source(), now)
	if err != nil {
		return nil, err
	}
	s.Swap(next)
	return next, nil
}
