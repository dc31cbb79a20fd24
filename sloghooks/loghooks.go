// Package sloghooks reports tricache events through log/slog.
package sloghooks

import (
	"log/slog"
	"sync/atomic"

	"github.com/unkn0wn-root/tricache"
)

type Options struct {
	// Sampling to avoid floods; 0/1 = log all.
	GrownEvery    uint64
	OverflowEvery uint64
}

type Hooks struct {
	l    *slog.Logger
	opts Options

	grownCtr    atomic.Uint64
	overflowCtr atomic.Uint64
}

var _ tricache.Hooks = (*Hooks)(nil)

func New(l *slog.Logger, opts Options) *Hooks {
	return &Hooks{l: l, opts: opts}
}

func sample(n uint64, ctr *atomic.Uint64) bool {
	if n == 0 || n == 1 {
		return true
	}
	return ctr.Add(1)%n == 0
}

func (h *Hooks) InvalidSize(requested, max int) {
	if h.l == nil {
		return
	}
	h.l.Warn("tricache.invalid_size",
		"requested", requested,
		"max", max)
}

func (h *Hooks) ValueTooLarge(value, max int) {
	if h.l == nil {
		return
	}
	h.l.Warn("tricache.value_too_large",
		"value", value,
		"max", max)
}

func (h *Hooks) InvalidParameters(length, offset int) {
	if h.l == nil {
		return
	}
	h.l.Warn("tricache.invalid_parameters",
		"length", length,
		"offset", offset)
}

func (h *Hooks) Grown(from, to int) {
	if h.l == nil || !sample(h.opts.GrownEvery, &h.grownCtr) {
		return
	}
	h.l.Debug("tricache.grown",
		"from", from,
		"to", to)
}

func (h *Hooks) IteratorOverflow(index int) {
	if h.l == nil || !sample(h.opts.OverflowEvery, &h.overflowCtr) {
		return
	}
	h.l.Error("tricache.iterator_overflow",
		"index", index)
}

func (h *Hooks) SnapshotRejected(key, reason string) {
	if h.l == nil {
		return
	}
	h.l.Info("tricache.snapshot_rejected",
		"key", key,
		"reason", reason)
}
