// Package persist mirrors the session snapshot to a durable key-value slot.
//
// A Slot stores one opaque record. The Adapter owns the record format
// (JSON, compatible with the browser app's saved state) and turns every
// read problem into "no saved state" so a corrupt slot never blocks startup.
package persist

import (
	"context"
	"errors"
)

// ErrEmpty is returned by a Slot that holds no record.
var ErrEmpty = errors.New("slot is empty")

// Slot is a single named durable record.
type Slot interface {
	// Read returns the stored record, or ErrEmpty.
	Read(ctx context.Context) ([]byte, error)
	// Write replaces the stored record.
	Write(ctx context.Context, data []byte) error
	// Name describes the backend for logs and status pages.
	Name() string
}

// Pinger is implemented by slots that can report backend health.
type Pinger interface {
	Ping(ctx context.Context) error
}
