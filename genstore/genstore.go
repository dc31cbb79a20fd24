// Package genstore tracks snapshot generations. Cache.Reset bumps the generation
// of its snapshot key, and Restore rejects any snapshot written under an older one.
package genstore

import (
	"context"
)

// GenStore abstracts where generations live.
// Use Local (default) for in-process gens, or Redis for gens shared across replicas.
type GenStore interface {
	// Snapshot returns the current generation; missing => 0.
	Snapshot(ctx context.Context, key string) (uint64, error)
	// Bump atomically increments and returns the new generation.
	Bump(ctx context.Context, key string) (uint64, error)
	// Close releases resources (no-op ok).
	Close(context.Context) error
}
