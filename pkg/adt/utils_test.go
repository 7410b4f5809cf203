package adt

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsNil(t *testing.T) {
	t.Parallel()

	var p *int
	var m map[string]int
	var s []int
	var f func()
	var e error

	assert.True(t, IsNil(nil))
	assert.True(t, IsNil(p))
	assert.True(t, IsNil(m))
	assert.True(t, IsNil(s))
	assert.True(t, IsNil(f))
	assert.True(t, IsNil(e))

	assert.False(t, IsNil(0))
	assert.False(t, IsNil(""))
	assert.False(t, IsNil([]int{}))
	assert.False(t, IsNil(struct{}{}))
}

func TestGetErrorsAndJoinErrors(t *testing.T) {
	t.Parallel()

	e1 := errors.New("e1")
	e2 := errors.New("e2")

	assert.Empty(t, GetErrors(nil))
	assert.Equal(t, []error{e1}, GetErrors(e1))
	assert.Equal(t, []error{e1, e2}, GetErrors(errors.Join(e1, e2)))

	assert.NoError(t, JoinErrors())
	assert.Same(t, e1, JoinErrors(e1))

	joined := JoinErrors(e1, e2)
	assert.ErrorIs(t, joined, e1)
	assert.ErrorIs(t, joined, e2)
}

func TestRequireNonNil(t *testing.T) {
	t.Parallel()

	var f func(int) int
	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(error)
		require.True(t, ok)
		assert.ErrorIs(t, err, ErrNilArgument)

		var argErr *ArgumentError
		require.ErrorAs(t, err, &argErr)
		assert.Equal(t, "mapper", argErr.Name)
	}()
	RequireNonNil("mapper", f)
}

func TestConditionErrors(t *testing.T) {
	t.Parallel()

	assert.ErrorIs(t, NoSuchElement("x"), ErrNoSuchElement)
	err := IndexOutOfBounds(5, 3)
	assert.ErrorIs(t, err, ErrIndexOutOfBounds)
	assert.Contains(t, err.Error(), "index 5, size 3")
	assert.Equal(t, "panic: boom", (&PanicError{Value: "boom"}).Error())
}
