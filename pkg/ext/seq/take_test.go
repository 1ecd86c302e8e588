package seq

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTakeUntil(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input []int
		stop  int
		want  []int
	}{
		{"stops before match", []int{1, 2, 3, 4, 5}, 3, []int{1, 2}},
		{"match on first", []int{3, 4}, 3, nil},
		{"never matches", []int{1, 2, 3}, 9, []int{1, 2, 3}},
		{"empty input", []int{}, 1, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TakeSliceUntil(tt.input, func(v int) bool { return v == tt.stop })
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTakeUntil_ByField(t *testing.T) {
	t.Parallel()

	input := []person{
		{ID: 1, Name: "William"},
		{ID: 2, Name: "Bob"},
		{ID: 3, Name: "Khal"},
		{ID: 4, Name: "Christie"},
		{ID: 5, Name: "Me"},
	}

	got := slices.Collect(TakeUntil(slices.Values(input), func(p person) bool { return p.Name == "Khal" }))
	assert.Len(t, got, 2)
	assert.Equal(t, input[:2], got)
}

func TestTakeUntil_IsLazy(t *testing.T) {
	t.Parallel()

	var pulled, checked []int
	naturals := func(yield func(int) bool) {
		for i := 1; ; i++ {
			pulled = append(pulled, i)
			if !yield(i) {
				return
			}
		}
	}

	got := slices.Collect(TakeUntil(naturals, func(v int) bool {
		checked = append(checked, v)
		return v == 3
	}))

	assert.Equal(t, []int{1, 2}, got)
	assert.Equal(t, []int{1, 2, 3}, pulled, "nothing beyond the stop element is pulled")
	assert.Equal(t, []int{1, 2, 3}, checked)
}

func TestTakeUntil_NilInputs(t *testing.T) {
	t.Parallel()

	assert.Empty(t, slices.Collect(TakeUntil[int](nil, func(int) bool { return false })))
	assert.Panics(t, func() { TakeUntil(slices.Values([]int{1}), nil) })
}
