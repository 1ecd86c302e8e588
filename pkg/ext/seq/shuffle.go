package seq

import (
	"cmp"
	"encoding/binary"
	"iter"
	"math/rand/v2"
	"slices"

	"github.com/google/uuid"
)

type ranked[T any] struct {
	token uint64
	item  T
}

// NewEntropySource returns a fresh PCG generator seeded from a random UUID.
// Every call yields an independent source.
func NewEntropySource() rand.Source {
	id := uuid.New()
	return rand.NewPCG(binary.BigEndian.Uint64(id[:8]), binary.BigEndian.Uint64(id[8:]))
}

// Shuffle returns the elements of s in random order, or nil when s is nil.
func Shuffle[T any](s iter.Seq[T]) []T {
	return ShuffleWith(s, nil)
}

// ShuffleWith pairs every element of s with a token drawn from src and sorts
// by it. A nil src is replaced by NewEntropySource.
func ShuffleWith[T any](s iter.Seq[T], src rand.Source) []T {
	if s == nil {
		return nil
	}
	if src == nil {
		src = NewEntropySource()
	}

	r := rand.New(src)
	pairs := make([]ranked[T], 0)
	for v := range s {
		pairs = append(pairs, ranked[T]{token: r.Uint64(), item: v})
	}

	slices.SortStableFunc(pairs, func(a, b ranked[T]) int {
		return cmp.Compare(a.token, b.token)
	})

	out := make([]T, len(pairs))
	for i, p := range pairs {
		out[i] = p.item
	}
	return out
}

// ShuffleSlice returns a shuffled copy of items; items itself is untouched.
func ShuffleSlice[T any](items []T) []T {
	if items == nil {
		return nil
	}
	return Shuffle(slices.Values(items))
}
