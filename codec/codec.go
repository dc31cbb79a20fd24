// Package codec serializes materialized term snapshots for storage.
// Every codec in this package implements Codec[[]int].
package codec

// Codec encodes/decodes values V to []byte for storage.
type Codec[V any] interface {
	Encode(V) ([]byte, error)
	Decode([]byte) (V, error)
}
