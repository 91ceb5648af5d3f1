// Package session owns the MakerHub session state and every operation that
// changes it.
//
// A Store serialises operations behind a mutex, so callers on many
// goroutines still observe one intent at a time. Each operation works on a
// private clone of the snapshot and swaps it in only once complete; a
// rejected operation leaves no trace. Every committed change is written
// through to the persistence slot before the lock is released.
package session

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/MrSnakeDoc/makerhub/internal/catalog"
	"github.com/MrSnakeDoc/makerhub/internal/domain"
	"github.com/MrSnakeDoc/makerhub/internal/logger"
)

// Persistence saves and restores snapshots. *persist.Adapter implements it.
type Persistence interface {
	Save(ctx context.Context, s domain.Snapshot) error
	Load(ctx context.Context, defaults domain.Snapshot) (domain.Snapshot, bool)
}

// IDFunc returns a fresh id starting with prefix.
type IDFunc func(prefix string) string

// Store is the single source of truth for a session.
type Store struct {
	mu      sync.Mutex
	state   domain.Snapshot
	catalog catalog.Provider
	persist Persistence
	logger  logger.Logger
	newID   IDFunc
	saves   int
	lastErr error
}

// Option configures a Store.
type Option func(*Store)

// WithIDFunc overrides thread and idea id generation.
func WithIDFunc(fn IDFunc) Option {
	return func(s *Store) { s.newID = fn }
}

// New creates a store holding the catalog's default session. Call Restore
// to pick up saved state. p may be nil for a store that never persists.
func New(cat catalog.Provider, p Persistence, log logger.Logger, opts ...Option) *Store {
	s := &Store{
		state:   cat.Current().NewSession(),
		catalog: cat,
		persist: p,
		logger:  log,
		newID:   uuidID,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func uuidID(prefix string) string {
	return prefix + uuid.NewString()
}

// Restore loads the saved session. It returns false, keeping the default
// session, when nothing usable was stored.
func (s *Store) Restore(ctx context.Context) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	defaults := s.catalog.Current().NewSession()
	if s.persist == nil {
		s.state = defaults
		return false
	}

	restored, ok := s.persist.Load(ctx, defaults)
	if !ok {
		s.state = defaults
		return false
	}
	s.state = restored

	s.logger.Info("session restored",
		logger.String("page", restored.Page),
		logger.Int("points", restored.Profile.Points),
		logger.Int("badges", len(restored.Profile.Badges)),
		logger.Int("cart_lines", len(restored.Cart)))
	return true
}

// Reset replaces the session with the catalog default and persists it.
func (s *Store) Reset(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = s.catalog.Current().NewSession()
	s.save(ctx, "Reset")
	s.logger.Info("session reset")
}

// Snapshot returns a deep copy of the current state.
func (s *Store) Snapshot() domain.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// PersistStats reports how many saves succeeded and the last save error.
func (s *Store) PersistStats() (saves int, lastErr error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saves, s.lastErr
}

// Flush writes the session again if the last save failed. It reports
// whether a write was attempted.
func (s *Store) Flush(ctx context.Context) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.persist == nil || s.lastErr == nil {
		return false, nil
	}
	s.save(ctx, "Flush")
	return true, s.lastErr
}

// mutation edits next in place. It returns an award whose Changed flag
// decides whether next is committed.
type mutation func(next *domain.Snapshot, cat *catalog.Catalog) (Award, error)

func (s *Store) apply(ctx context.Context, op string, fn mutation) (Award, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.state.Clone()
	award, err := fn(&next, s.catalog.Current())
	if err != nil {
		s.logger.Debug("operation rejected", logger.String("op", op), logger.Error(err))
		return Award{}, err
	}
	if !award.Changed {
		s.logger.Debug("operation was a no-op", logger.String("op", op))
		return award, nil
	}

	s.state = next
	if award.Points != 0 || award.NewBadge {
		s.logger.Info("award granted",
			logger.String("op", op),
			logger.Int("points", award.Points),
			logger.String("badge", award.Badge),
			logger.Bool("new_badge", award.NewBadge),
			logger.Int("total", next.Profile.Points))
	}
	s.save(ctx, op)
	return award, nil
}

// save writes the committed state. Must be called with mu held. A failed
// write only leaves the slot stale.
func (s *Store) save(ctx context.Context, op string) {
	if s.persist == nil {
		return
	}
	if err := s.persist.Save(ctx, s.state); err != nil {
		s.lastErr = err
		s.logger.Warn("failed to persist session",
			logger.String("op", op),
			logger.Error(err))
		return
	}
	s.saves++
	s.lastErr = nil
}
