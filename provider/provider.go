// Package provider defines the byte store tricache persists term snapshots to.
//
// Implementations MUST be byte-for-byte transparent: Load must return exactly the
// bytes previously passed to Save for a key. Snapshots are validated on Restore, so
// a store that transforms values causes every snapshot to be rejected and deleted.
//
// The keyspace "terms:<ns>:" is owned by tricache.
package provider

import (
	"context"
	"errors"
	"time"
)

// ErrRejected is returned by Save when the store declined the write
// (admission policy, memory pressure).
var ErrRejected = errors.New("provider: write rejected")

// Provider is a minimal byte store. Must be safe for concurrent use.
type Provider interface {
	// Load returns (value, true, nil) on hit; (nil, false, nil) on miss.
	// If an IO/remote error happens, return (nil, false, err).
	Load(ctx context.Context, key string) ([]byte, bool, error)

	// Save stores value; ttl <= 0 means no expiry where supported.
	// A Save that returns nil must be visible to the next Load.
	Save(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases resources.
	Close(ctx context.Context) error
}
