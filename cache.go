package tricache

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"sync"
	"time"

	c "github.com/unkn0wn-root/tricache/codec"
	gen "github.com/unkn0wn-root/tricache/genstore"
	"github.com/unkn0wn-root/tricache/internal/util"
	pr "github.com/unkn0wn-root/tricache/provider"
)

// Cache is an append-only store of materialized triangular numbers.
// Index i holds term i+1. The zero value is not usable; construct with New.
type Cache struct {
	ns    string
	bound int
	key   string
	log   Logger
	hooks Hooks

	mu    sync.RWMutex
	terms []int

	provider pr.Provider
	codec    c.Codec[[]int]
	gen      gen.GenStore
	ttl      time.Duration
}

// New returns an empty cache configured by opts.
func New(opts Options) (*Cache, error) {
	if opts.CapacityBound < 0 {
		return nil, fmt.Errorf("tricache: negative capacity bound %d", opts.CapacityBound)
	}

	cc := &Cache{
		provider: opts.Provider,
		ttl:      opts.SnapshotTTL,
	}

	// defaults
	cc.ns = coalesce[string](opts.Namespace, defaultNamespace)
	cc.bound = coalesce[int](opts.CapacityBound, DefaultCapacityBound)
	cc.log = coalesce[Logger](opts.Logger, NopLogger{})
	cc.hooks = coalesce[Hooks](opts.Hooks, NopHooks{})
	cc.codec = coalesce[c.Codec[[]int]](opts.Codec, c.JSON{})
	if opts.GenStore != nil {
		cc.gen = opts.GenStore
	} else {
		cc.gen = gen.NewLocal()
	}
	cc.key = util.SnapshotKey(cc.ns, cc.bound)

	return cc, nil
}

var (
	defaultOnce  sync.Once
	defaultCache *Cache
)

// Default returns the process-wide cache used by the package-level helpers.
// It is created on first use with zero Options.
func Default() *Cache {
	defaultOnce.Do(func() {
		defaultCache, _ = New(Options{})
	})
	return defaultCache
}

// IsElement reports whether v is a triangular number, using the Default cache.
func IsElement(v int) bool { return Default().IsElement(v) }

// Display writes terms offset..offset+length-1 of the Default cache to w.
func Display(w io.Writer, length, offset int) error { return Default().Display(w, length, offset) }

// term returns the k-th triangular number (k >= 1).
func term(k int) int { return k * (k + 1) / 2 }

func (cc *Cache) Bound() int { return cc.bound }

func (cc *Cache) Len() int {
	cc.mu.RLock()
	defer cc.mu.RUnlock()
	return len(cc.terms)
}

// Term returns the term at 0-based index. Reading past the materialized length
// is a caller bug: EnsureLength must come first.
func (cc *Cache) Term(index int) int {
	cc.mu.RLock()
	defer cc.mu.RUnlock()
	if index < 0 || index >= len(cc.terms) {
		panic(fmt.Sprintf("tricache: term index %d out of range [0,%d)", index, len(cc.terms)))
	}
	return cc.terms[index]
}

// Terms returns a copy of the materialized terms.
func (cc *Cache) Terms() []int {
	cc.mu.RLock()
	defer cc.mu.RUnlock()
	out := make([]int, len(cc.terms))
	copy(out, cc.terms)
	return out
}

// EnsureLength grows the cache to at least n terms. A target outside [0, Bound()]
// is rejected with a *BoundError (ErrInvalidSize) and the cache is left unchanged.
func (cc *Cache) EnsureLength(n int) error {
	if n < 0 || n > cc.bound {
		cc.log.Warn("invalid size", Fields{"requested": n, "max": cc.bound})
		cc.hooks.InvalidSize(n, cc.bound)
		return &BoundError{Kind: ErrInvalidSize, Value: n, Max: cc.bound}
	}
	if cc.Len() >= n {
		return nil
	}

	cc.mu.Lock()
	from := len(cc.terms)
	for k := from + 1; k <= n; k++ {
		cc.terms = append(cc.terms, term(k))
	}
	to := len(cc.terms)
	cc.mu.Unlock()

	cc.grown(from, to)
	return nil
}

// EnsureValue appends terms until the last one is >= v or the bound is reached.
// Hitting the bound first returns a *BoundError (ErrValueTooLarge); the cache
// stays at its maximum length and Contains(v) reports false.
func (cc *Cache) EnsureValue(v int) error {
	cc.mu.Lock()
	from := len(cc.terms)
	for n := len(cc.terms); (n == 0 || cc.terms[n-1] < v) && n < cc.bound; n = len(cc.terms) {
		cc.terms = append(cc.terms, term(n+1))
	}
	to := len(cc.terms)
	short := to == 0 || cc.terms[to-1] < v
	cc.mu.Unlock()

	cc.grown(from, to)
	if short {
		cc.log.Warn("value too large", Fields{"value": v, "max": cc.bound})
		cc.hooks.ValueTooLarge(v, cc.bound)
		return &BoundError{Kind: ErrValueTooLarge, Value: v, Max: cc.bound}
	}
	return nil
}

// Contains reports whether v is among the materialized terms.
func (cc *Cache) Contains(v int) bool {
	cc.mu.RLock()
	defer cc.mu.RUnlock()
	for _, t := range cc.terms {
		if t == v {
			return true
		}
	}
	return false
}

// IsElement reports whether v is a triangular number within the capacity bound,
// growing the cache only as far as needed to decide.
func (cc *Cache) IsElement(v int) bool {
	cc.mu.RLock()
	n := len(cc.terms)
	need := n == 0 || cc.terms[n-1] < v
	cc.mu.RUnlock()
	if need {
		_ = cc.EnsureValue(v) // logged; Contains answers false
	}
	return cc.Contains(v)
}

// Display writes terms offset..offset+length-1 (1-based positions) to w,
// space-separated. A non-positive length or offset writes nothing and returns
// a *ParamsError.
func (cc *Cache) Display(w io.Writer, length, offset int) error {
	if length <= 0 || offset <= 0 {
		cc.log.Warn("invalid parameters", Fields{"length": length, "offset": offset})
		cc.hooks.InvalidParameters(length, offset)
		return &ParamsError{Length: length, Offset: offset}
	}
	last := offset + length - 1
	if err := cc.EnsureLength(last); err != nil {
		return err
	}

	buf := make([]byte, 0, length*7)
	cc.mu.RLock()
	for ix := offset - 1; ix < last; ix++ {
		if ix > offset-1 {
			buf = append(buf, ' ')
		}
		buf = strconv.AppendInt(buf, int64(cc.terms[ix]), 10)
	}
	cc.mu.RUnlock()

	_, err := w.Write(buf)
	return err
}

// Reset drops every materialized term and bumps the snapshot generation so
// snapshots persisted before the reset are rejected by Restore.
func (cc *Cache) Reset() {
	cc.mu.Lock()
	cc.terms = nil
	cc.mu.Unlock()

	ctx := context.Background()
	g, err := cc.gen.Bump(ctx, cc.key)
	if err != nil {
		cc.log.Error("gen bump error", Fields{"key": cc.key, "err": err})
		return
	}
	if cc.provider != nil {
		_ = cc.provider.Delete(ctx, cc.key)
	}
	cc.log.Debug("cache reset", Fields{"key": cc.key, "newGen": g})
}

// Close releases the generation store and the provider.
func (cc *Cache) Close(ctx context.Context) error {
	// gen store first (best effort)
	if cc.gen != nil {
		_ = cc.gen.Close(ctx)
	}
	if cc.provider != nil {
		return cc.provider.Close(ctx)
	}
	return nil
}

func (cc *Cache) grown(from, to int) {
	if to == from {
		return
	}
	cc.log.Debug("cache grown", Fields{"from": from, "to": to})
	cc.hooks.Grown(from, to)
}

func (cc *Cache) reportOverflow(index int) {
	cc.log.Warn("iterator overflow", Fields{"index": index, "max": cc.bound})
	cc.hooks.IteratorOverflow(index)
}
