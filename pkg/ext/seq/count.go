package seq

import (
	"iter"
	"slices"

	"github.com/ib-77/extkit/pkg/ext"
)

// CountInstances maps every non-nil element of s to the number of times it occurs.
// A nil sequence is an invalid argument, and so is an element whose dynamic
// value cannot be a map key (a slice held in an any, for example).
func CountInstances[T comparable](s iter.Seq[T]) (map[T]int, error) {
	if s == nil {
		return nil, ext.NewArgumentError("CountInstances", "s", nil, "sequence is nil")
	}

	result := make(map[T]int)
	for v := range s {
		if ext.IsNil(v) {
			continue
		}
		if !ext.IsHashable(v) {
			return nil, ext.NewArgumentError("CountInstances", "s", v, "element is not hashable")
		}
		result[v]++
	}
	return result, nil
}

func CountSlice[T comparable](items []T) (map[T]int, error) {
	return CountInstances(slices.Values(items))
}
