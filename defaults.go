package tricache

// defaultNamespace keys the snapshot when Options.Namespace is empty.
const defaultNamespace = "triangular"

// coalesce returns def when v is the zero value of T - otherwise v.
func coalesce[T comparable](v, def T) T {
	var zero T
	if v == zero {
		return def
	}
	return v
}
