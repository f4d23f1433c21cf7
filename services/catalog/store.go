package catalog

import (
	"fmt"
	"sync"
	"sync/atomic"

	"courtcredits/models"

	"go.uber.org/zap"
)

type versioned struct {
	snap    *Snapshot
	version uint64
}

// Store publishes the current catalog snapshot. Readers never observe a partially
// loaded catalog: a reload builds a new snapshot and swaps the reference.
type Store struct {
	current  atomic.Pointer[versioned]
	reloadMu sync.Mutex

	path     string
	fallback models.FallbackPolicy
	logger   *zap.Logger
}

// NewStore publishes initial as version 1. path is re-read by Reload; an empty path
// reloads the built-in catalog.
func NewStore(initial *Snapshot, path string, fallback models.FallbackPolicy, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Store{path: path, fallback: fallback, logger: logger}
	s.current.Store(&versioned{snap: initial, version: 1})
	return s
}

// Open loads the catalog at path (or the built-in one when path is empty) into a new Store.
func Open(path string, fallback models.FallbackPolicy, logger *zap.Logger) (*Store, error) {
	snap, err := load(path, fallback)
	if err != nil {
		return nil, err
	}
	return NewStore(snap, path, fallback, logger), nil
}

// Current returns the published snapshot.
func (s *Store) Current() *Snapshot {
	return s.current.Load().snap
}

// Version returns the number of the published snapshot.
func (s *Store) Version() uint64 {
	return s.current.Load().version
}

// Swap publishes next and returns its version.
func (s *Store) Swap(next *Snapshot) uint64 {
	s.reloadMu.Lock()
	defer s.reloadMu.Unlock()
	return s.swapLocked(next)
}

func (s *Store) swapLocked(next *Snapshot) uint64 {
	v := s.current.Load().version + 1
	s.current.Store(&versioned{snap: next, version: v})
	return v
}

// Reload re-reads the catalog source. The published snapshot is left untouched on error.
func (s *Store) Reload() (uint64, error) {
	s.reloadMu.Lock()
	defer s.reloadMu.Unlock()

	snap, err := load(s.path, s.fallback)
	if err != nil {
		s.logger.Error("catalog reload failed, keeping current snapshot",
			zap.String("path", s.path), zap.Uint64("version", s.current.Load().version), zap.Error(err))
		return 0, err
	}
	v := s.swapLocked(snap)
	s.logger.Info("catalog reloaded", zap.String("path", s.path), zap.Uint64("version", v),
		zap.Strings("locations", snap.Locations()))
	return v, nil
}

func load(path string, fallback models.FallbackPolicy) (*Snapshot, error) {
	if path == "" {
		snap, err := Parse([]byte(defaultCatalog), fallback)
		if err != nil {
			return nil, fmt.Errorf("built-in catalog: %w", err)
		}
		return snap, nil
	}
	return Load(path, fallback)
}
