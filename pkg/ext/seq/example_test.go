package seq_test

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"

	"github.com/ib-77/extkit/pkg/ext/seq"
)

func ExampleCountInstances() {
	counts, err := seq.CountInstances(slices.Values([]string{"a", "b", "a", "a", "b"}))
	if err != nil {
		panic(err)
	}
	fmt.Println(counts["a"], counts["b"])
	// Output: 3 2
}

func ExampleDistinctBy() {
	langs := []string{"Go", "go", "Rust", "GO", "rust", "Zig"}
	for l := range seq.DistinctBy(slices.Values(langs), strings.ToLower) {
		fmt.Println(l)
	}
	// Output:
	// Go
	// Rust
	// Zig
}

func ExampleTakeUntil() {
	fmt.Println(slices.Collect(seq.TakeUntil(slices.Values([]int{1, 2, 3, 4, 5}), func(v int) bool { return v == 3 })))
	// Output: [1 2]
}

func ExampleShuffleWith() {
	shuffled := seq.ShuffleWith(slices.Values([]int{1, 2, 3, 4}), rand.NewPCG(1, 2))
	slices.Sort(shuffled)
	fmt.Println(shuffled)
	// Output: [1 2 3 4]
}
