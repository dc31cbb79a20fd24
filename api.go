package tricache

import (
	"time"

	c "github.com/unkn0wn-root/tricache/codec"
	gen "github.com/unkn0wn-root/tricache/genstore"
	pr "github.com/unkn0wn-root/tricache/provider"
)

// DefaultCapacityBound is the maximum number of materialized terms when
// Options.CapacityBound is zero.
const DefaultCapacityBound = 1024

// TermSource is the part of a Cache an Iterator depends on.
type TermSource interface {
	// Len returns the number of materialized terms.
	Len() int
	// Bound returns the capacity bound.
	Bound() int
	// Term returns the term at 0-based index. Panics when index >= Len().
	Term(index int) int
	// EnsureLength grows the source to at least n terms.
	EnsureLength(n int) error
}

var _ TermSource = (*Cache)(nil)

// Options configure a Cache. The zero value is usable: an in-memory cache
// bounded at DefaultCapacityBound with persistence disabled.
type Options struct {
	Namespace     string // snapshot namespace; "" => "triangular"
	CapacityBound int    // max materialized terms; 0 => 1024
	Logger        Logger // if nil, NopLogger is used
	Hooks         Hooks  // if nil, NopHooks is used

	// Persistence. Provider nil disables Persist/Restore.
	Provider    pr.Provider
	Codec       c.Codec[[]int] // nil => codec.JSON
	GenStore    gen.GenStore   // nil => genstore.Local
	SnapshotTTL time.Duration  // 0 => no expiry
}
