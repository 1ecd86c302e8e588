package seq

import (
	"iter"
	"slices"

	"github.com/ib-77/extkit/pkg/ext"
)

// DistinctBy yields the elements of s whose key has not been seen before, in
// original order. Keys are compared with ==.
func DistinctBy[T any, K comparable](s iter.Seq[T], key func(T) K) iter.Seq[T] {
	if key == nil {
		panic(ext.NewArgumentError("DistinctBy", "key", nil, "key function is nil"))
	}

	return func(yield func(T) bool) {
		if s == nil {
			return
		}

		seen := make(map[K]struct{})
		for v := range s {
			k := key(v)
			if _, ok := seen[k]; ok {
				continue
			}
			seen[k] = struct{}{}

			if !yield(v) {
				return
			}
		}
	}
}

func DistinctSliceBy[T any, K comparable](items []T, key func(T) K) []T {
	return slices.Collect(DistinctBy(slices.Values(items), key))
}
