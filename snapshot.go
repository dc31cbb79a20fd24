package tricache

import (
	"context"

	"github.com/unkn0wn-root/tricache/internal/wire"
)

// SnapshotKey is the provider key this cache persists to.
func (cc *Cache) SnapshotKey() string { return cc.key }

// Persist writes the materialized terms to the provider under the current
// snapshot generation.
func (cc *Cache) Persist(ctx context.Context) error {
	if cc.provider == nil {
		return ErrNoProvider
	}
	g, err := cc.gen.Snapshot(ctx, cc.key)
	if err != nil {
		cc.log.Warn("gen snapshot error", Fields{"key": cc.key, "err": err})
		return err
	}
	terms := cc.Terms()
	payload, err := cc.codec.Encode(terms)
	if err != nil {
		return err
	}
	if err := cc.provider.Save(ctx, cc.key, wire.EncodeSnapshot(g, len(terms), payload), cc.ttl); err != nil {
		return err
	}
	cc.log.Debug("snapshot persisted", Fields{"key": cc.key, "terms": len(terms), "gen": g})
	return nil
}

// Restore adopts a stored snapshot that is longer than the cache and returns
// the number of terms it added. A miss or a shorter snapshot adds nothing.
//
// Snapshots that are corrupt, written under an older generation, or contain
// anything but the leading triangular numbers are deleted from the provider and
// ignored (0, nil). Provider and generation store failures are returned.
func (cc *Cache) Restore(ctx context.Context) (int, error) {
	if cc.provider == nil {
		return 0, ErrNoProvider
	}
	raw, ok, err := cc.provider.Load(ctx, cc.key)
	if err != nil || !ok {
		return 0, err
	}
	g, count, payload, err := wire.DecodeSnapshot(raw)
	if err != nil {
		return 0, cc.reject(ctx, "corrupt")
	}
	cur, err := cc.gen.Snapshot(ctx, cc.key)
	if err != nil {
		cc.log.Warn("gen snapshot error", Fields{"key": cc.key, "err": err})
		return 0, err
	}
	if g != cur {
		return 0, cc.reject(ctx, "gen_mismatch")
	}
	terms, err := cc.codec.Decode(payload)
	if err != nil {
		return 0, cc.reject(ctx, "value_decode")
	}
	if len(terms) != count || !cc.canonical(terms) {
		return 0, cc.reject(ctx, "invalid_terms")
	}

	cc.mu.Lock()
	from := len(cc.terms)
	if len(terms) > from {
		cc.terms = append(cc.terms, terms[from:]...)
	}
	to := len(cc.terms)
	cc.mu.Unlock()

	cc.grown(from, to)
	if to > from {
		cc.log.Debug("snapshot restored", Fields{"key": cc.key, "added": to - from, "gen": g})
	}
	return to - from, nil
}

// canonical reports whether terms is a prefix of the sequence within the bound.
func (cc *Cache) canonical(terms []int) bool {
	if len(terms) > cc.bound {
		return false
	}
	for i, t := range terms {
		if t != term(i+1) {
			return false
		}
	}
	return true
}

// reject self-heals a bad snapshot. It always returns nil so Restore reports a miss.
func (cc *Cache) reject(ctx context.Context, reason string) error {
	_ = cc.provider.Delete(ctx, cc.key)
	cc.log.Warn("snapshot rejected", Fields{"key": cc.key, "reason": reason})
	cc.hooks.SnapshotRejected(cc.key, reason)
	return nil
}
