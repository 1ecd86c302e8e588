package seq

import (
	"iter"
	"slices"

	"github.com/ib-77/extkit/pkg/ext"
)

// TakeUntil yields elements of s up to, but not including, the first one for
// which end returns true. Nothing past that element is pulled from s.
func TakeUntil[T any](s iter.Seq[T], end func(T) bool) iter.Seq[T] {
	if end == nil {
		panic(ext.NewArgumentError("TakeUntil", "end", nil, "end condition is nil"))
	}

	return func(yield func(T) bool) {
		if s == nil {
			return
		}

		for v := range s {
			if end(v) || !yield(v) {
				return
			}
		}
	}
}

func TakeSliceUntil[T any](items []T, end func(T) bool) []T {
	return slices.Collect(TakeUntil(slices.Values(items), end))
}
