// Package tricache implements a lazily grown, shared cache of triangular numbers
// (term k = k*(k+1)/2) together with bounded windows into the sequence.
//
// Components:
//   - Cache: append-only store of materialized terms, capped at a capacity bound
//     (1024 by default). Safe for concurrent use.
//   - Window: a value describing (offset, length) over the sequence. It owns no data;
//     every read goes through its Cache, which grows on demand.
//   - Iterator: a checked cursor over an absolute 0-based term index. Walking past the
//     capacity bound yields ErrIteratorOverflow.
//
// Access paths (all read the same cache and never shrink it):
//
//	w := tricache.NewWindow(c, 20, 12)         // length 20 starting at term 12
//	for it, end := w.Begin(), w.End(); !it.Equal(end); {
//		v, err := it.Value()
//		...
//		err = it.Next()
//	}
//	w.Rewind(); for v, ok := w.Next(); ok; v, ok = w.Next() { ... }
//	c.IsElement(21)                            // true
//	c.Display(os.Stdout, 6, 3)                 // 6 10 15 21 28 36
//
// Persistence (optional):
//
//	Provider: byte store (Ristretto, BigCache, Redis) holding the framed snapshot.
//	Codec:    []int <-> []byte (JSON, CBOR, msgpack, protobuf).
//	GenStore: snapshot generation; Reset bumps it so stale snapshots are rejected.
//
//	_ = c.Persist(ctx)      // write materialized prefix
//	n, _ := c.Restore(ctx)  // adopt a valid, longer snapshot
package tricache
