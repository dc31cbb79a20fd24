package tricache

// Hooks are callbacks for cache events. Implementations MUST be cheap and
// non-blocking; growth hooks run on read paths.
type Hooks interface {
	// EnsureLength was asked for n < 0 or n > max.
	InvalidSize(requested, max int)

	// EnsureValue hit the bound before reaching value.
	ValueTooLarge(value, max int)

	// Display was called with a non-positive length or offset.
	InvalidParameters(length, offset int)

	// The materialized length went from -> to.
	Grown(from, to int)

	// An Iterator moved to index > bound.
	IteratorOverflow(index int)

	// A stored snapshot was dropped on Restore.
	// reason ∈ {"corrupt", "gen_mismatch", "value_decode", "invalid_terms"}
	SnapshotRejected(key, reason string)
}

// NopHooks is the default no-op
type NopHooks struct{}

func (NopHooks) InvalidSize(int, int)            {}
func (NopHooks) ValueTooLarge(int, int)          {}
func (NopHooks) InvalidParameters(int, int)      {}
func (NopHooks) Grown(int, int)                  {}
func (NopHooks) IteratorOverflow(int)            {}
func (NopHooks) SnapshotRejected(string, string) {}
