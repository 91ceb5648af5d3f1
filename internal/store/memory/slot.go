// Package memory provides a process-local persistence slot.
package memory

import (
	"context"
	"sync"

	"github.com/MrSnakeDoc/makerhub/internal/persist"
)

// Slot keeps the record in memory. Everything is lost on restart.
type Slot struct {
	mu     sync.RWMutex
	data   []byte
	writes int
}

// NewSlot returns an empty slot.
func NewSlot() *Slot {
	return &Slot{}
}

func (s *Slot) Read(_ context.Context) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.data == nil {
		return nil, persist.ErrEmpty
	}
	return append([]byte(nil), s.data...), nil
}

func (s *Slot) Write(_ context.Context, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data = append([]byte(nil), data...)
	s.writes++
	return nil
}

func (s *Slot) Name() string { return "memory" }

// Writes returns how many times the slot was written.
func (s *Slot) Writes() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.writes
}

// Set replaces the raw record, bypassing the write counter.
func (s *Slot) Set(data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = data
}
