package persist

import (
	"context"
	"errors"
	"fmt"

	"github.com/MrSnakeDoc/makerhub/internal/domain"
	"github.com/MrSnakeDoc/makerhub/internal/logger"
)

// Adapter saves and restores session snapshots through a Slot.
type Adapter struct {
	slot   Slot
	logger logger.Logger
}

// NewAdapter creates an adapter writing to slot.
func NewAdapter(slot Slot, log logger.Logger) *Adapter {
	return &Adapter{slot: slot, logger: log}
}

// Slot returns the underlying slot.
func (a *Adapter) Slot() Slot {
	return a.slot
}

// Save overwrites the slot with the full snapshot.
func (a *Adapter) Save(ctx context.Context, s domain.Snapshot) error {
	data, err := Encode(s)
	if err != nil {
		return err
	}
	if err := a.slot.Write(ctx, data); err != nil {
		return fmt.Errorf("failed to write snapshot to %s: %w", a.slot.Name(), err)
	}
	return nil
}

// Load restores the saved snapshot. It reports false when nothing usable is
// stored; read and decode failures are logged, never returned.
func (a *Adapter) Load(ctx context.Context, defaults domain.Snapshot) (domain.Snapshot, bool) {
	data, err := a.slot.Read(ctx)
	if err != nil {
		if errors.Is(err, ErrEmpty) {
			a.logger.Info("no saved session found", logger.String("store", a.slot.Name()))
		} else {
			a.logger.Warn("failed to read saved session, starting fresh",
				logger.String("store", a.slot.Name()),
				logger.Error(err))
		}
		return domain.Snapshot{}, false
	}

	s, err := Decode(data, defaults)
	if err != nil {
		a.logger.Warn("saved session is corrupt, starting fresh",
			logger.String("store", a.slot.Name()),
			logger.Int("bytes", len(data)),
			logger.Error(err))
		return domain.Snapshot{}, false
	}
	return s, true
}
