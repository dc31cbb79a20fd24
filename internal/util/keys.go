package util

import "strconv"

// SnapshotKey returns the storage key of a namespace's term snapshot.
// The bound is part of the key so caches with different bounds never share a snapshot.
func SnapshotKey(ns string, bound int) string {
	return "terms:" + ns + ":" + strconv.Itoa(bound)
}
