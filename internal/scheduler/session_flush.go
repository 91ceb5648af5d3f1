package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/MrSnakeDoc/makerhub/internal/logger"
)

// DefaultFlushInterval is how often a stale persistence slot is retried.
const DefaultFlushInterval = 30 * time.Second

// Flusher re-persists a session whose last save failed.
type Flusher interface {
	Flush(ctx context.Context) (bool, error)
}

// SessionFlusher retries failed session writes until the slot is back in
// sync. Every successful operation also resyncs it, so this only matters
// for sessions that go quiet right after a failed save.
type SessionFlusher struct {
	session  Flusher
	logger   logger.Logger
	interval time.Duration
	stopCh   chan struct{}
	stopOnce sync.Once
}

// NewSessionFlusher creates a new flusher
func NewSessionFlusher(session Flusher, log logger.Logger, interval time.Duration) *SessionFlusher {
	if interval <= 0 {
		interval = DefaultFlushInterval
	}

	return &SessionFlusher{
		session:  session,
		logger:   log,
		interval: interval,
		stopCh:   make(chan struct{}),
	}
}

// Start begins the periodic retry loop
func (sf *SessionFlusher) Start(ctx context.Context) {
	ticker := time.NewTicker(sf.interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				sf.Run(ctx)
			case <-sf.stopCh:
				return
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Stop stops the flusher. Safe to call more than once.
func (sf *SessionFlusher) Stop() {
	sf.stopOnce.Do(func() { close(sf.stopCh) })
}

// Run performs one retry and reports whether the slot is in sync afterwards.
func (sf *SessionFlusher) Run(ctx context.Context) bool {
	attempted, err := sf.session.Flush(ctx)
	switch {
	case !attempted:
		return true
	case err != nil:
		sf.logger.Warn("session still not persisted", logger.Error(err))
		return false
	default:
		sf.logger.Info("session persisted after earlier failure")
		return true
	}
}
