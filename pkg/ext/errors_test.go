package ext

import (
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArgumentError(t *testing.T) {
	t.Parallel()

	err := NewArgumentError("ReduceForDisplay", "displayLength", 1, "too small")
	assert.Equal(t, "ReduceForDisplay: parameter displayLength (value: 1): invalid argument: too small", err.Error())
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.NotErrorIs(t, err, ErrTypeMismatch)

	wrapped := fmt.Errorf("render: %w", err)
	var argErr *ArgumentError
	require.True(t, errors.As(wrapped, &argErr))
	assert.Equal(t, "displayLength", argErr.Param)
}

func TestTypeError(t *testing.T) {
	t.Parallel()

	mismatch := &TypeError{Op: "EnumToList", Want: reflect.TypeFor[int8](), Got: reflect.TypeFor[string](), Err: ErrTypeMismatch}
	assert.Equal(t, "EnumToList: want int8, got string: type mismatch", mismatch.Error())
	assert.ErrorIs(t, mismatch, ErrTypeMismatch)

	notEnum := &TypeError{Op: "EnumToDictionary", Got: reflect.TypeFor[string](), Err: ErrTypeMismatch}
	assert.Equal(t, "EnumToDictionary: string is not an enumeration: type mismatch", notEnum.Error())
}

func TestIsNil(t *testing.T) {
	t.Parallel()

	var (
		ptr   *int
		m     map[string]int
		s     []int
		ch    chan int
		fn    func()
		iface error
	)

	assert.True(t, IsNil(nil))
	assert.True(t, IsNil(ptr))
	assert.True(t, IsNil(m))
	assert.True(t, IsNil(s))
	assert.True(t, IsNil(ch))
	assert.True(t, IsNil(fn))
	assert.True(t, IsNil(iface))

	n := 0
	assert.False(t, IsNil(&n))
	assert.False(t, IsNil(0))
	assert.False(t, IsNil(""))
	assert.False(t, IsNil([]int{}))
	assert.False(t, IsNil(struct{}{}))
}

func TestIsHashable(t *testing.T) {
	t.Parallel()

	assert.True(t, IsHashable(nil))
	assert.True(t, IsHashable(1))
	assert.True(t, IsHashable("a"))
	assert.True(t, IsHashable([2]int{1, 2}))
	assert.True(t, IsHashable(struct{ V any }{V: 1}))

	assert.False(t, IsHashable([]int{1}))
	assert.False(t, IsHashable(map[string]int{}))
	assert.False(t, IsHashable(func() {}))
	assert.False(t, IsHashable(struct{ V any }{V: []int{}}))
}

func TestIsBlank(t *testing.T) {
	t.Parallel()

	assert.True(t, IsBlank(""))
	assert.True(t, IsBlank(" \t\n"))
	assert.False(t, IsBlank(" . "))
}
