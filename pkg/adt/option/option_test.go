package option

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/sumtype/pkg/adt"
	"github.com/ib-77/sumtype/pkg/adt/tuple"
)

func TestOfNilIsNone(t *testing.T) {
	t.Parallel()

	assert.Equal(t, None[*int](), Of[*int](nil))
	assert.True(t, Of[error](nil).IsEmpty())
	assert.True(t, Of(5).IsPresent())
}

func TestSomeNilIsPresent(t *testing.T) {
	t.Parallel()

	some := Some[*int](nil)
	assert.NotEqual(t, None[*int](), some)
	assert.True(t, some.IsPresent())

	v, err := some.Get()
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestNoneIsZeroValue(t *testing.T) {
	t.Parallel()

	var zero Option[string]
	assert.True(t, Equal(zero, None[string]()))
	assert.Equal(t, "None", zero.String())
}

func TestGet(t *testing.T) {
	t.Parallel()

	_, err := None[int]().Get()
	assert.ErrorIs(t, err, adt.ErrNoSuchElement)
	assert.Panics(t, func() { None[int]().MustGet() })
	assert.Equal(t, 3, Some(3).MustGet())
}

func TestMap(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Some("7"), Map(Some(7), strconv.Itoa))
	assert.Equal(t, None[string](), Map(None[int](), strconv.Itoa))
	assert.Equal(t, Some(7), Map(Some(7), func(i int) int { return i }))
}

func TestFlatMap(t *testing.T) {
	t.Parallel()

	parse := func(s string) Option[int] {
		i, err := strconv.Atoi(s)
		return FromPair(i, err == nil)
	}
	assert.Equal(t, Some(12), FlatMap(Some("12"), parse))
	assert.Equal(t, None[int](), FlatMap(Some("x"), parse))
	assert.Equal(t, None[int](), FlatMap(None[string](), parse))
}

func TestFilter(t *testing.T) {
	t.Parallel()

	even := func(i int) bool { return i%2 == 0 }
	assert.Equal(t, Some(2), Some(2).Filter(even))
	assert.Equal(t, None[int](), Some(3).Filter(even))
	assert.Equal(t, None[int](), None[int]().Filter(even))
}

func TestFold(t *testing.T) {
	t.Parallel()

	onNone := func() string { return "none" }
	onSome := func(i int) string { return "some " + strconv.Itoa(i) }

	assert.Equal(t, "some 1", Fold(Some(1), onNone, onSome))
	assert.Equal(t, "none", Fold(None[int](), onNone, onSome))
}

func TestZip(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Some(tuple.Of(1, "a")), Zip(Some(1), Some("a")))
	assert.True(t, Zip(None[int](), Some("a")).IsEmpty())
	assert.True(t, Zip(Some(1), None[string]()).IsEmpty())
}

func TestFallbacks(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Some(1), Some(1).OrElse(Some(2)))
	assert.Equal(t, Some(2), None[int]().OrElse(Some(2)))
	assert.Equal(t, 1, Some(1).GetOrElse(2))
	assert.Equal(t, 2, None[int]().GetOrElse(2))

	called := false
	assert.Equal(t, 1, Some(1).GetOrElseGet(func() int { called = true; return 2 }))
	assert.False(t, called)
	assert.Equal(t, 2, None[int]().GetOrElseGet(func() int { return 2 }))
	assert.Equal(t, Some(3), None[int]().OrElseGet(func() Option[int] { return Some(3) }))
}

func TestWhenPeekToList(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Some(1), When(true, func() int { return 1 }))
	assert.Equal(t, None[int](), When(false, func() int { panic("not called") }))

	var seen []int
	Some(4).Peek(func(i int) { seen = append(seen, i) })
	None[int]().Peek(func(i int) { seen = append(seen, i) })
	assert.Equal(t, []int{4}, seen)

	assert.Equal(t, []int{4}, Some(4).ToList().ToSlice())
	assert.True(t, None[int]().ToList().IsEmpty())
}

func TestValueCombinators(t *testing.T) {
	t.Parallel()

	positive := func(i int) bool { return i > 0 }
	assert.True(t, adt.Exists[int](Some(1), positive))
	assert.False(t, adt.Exists[int](None[int](), positive))
	assert.True(t, adt.ForAll[int](None[int](), positive))
	assert.True(t, adt.Contains[int](Some(1), 1))
}

func TestNilArgumentsFailFast(t *testing.T) {
	t.Parallel()

	for name, f := range map[string]func(){
		"map":          func() { Map[int, int](Some(1), nil) },
		"flatMap":      func() { FlatMap[int, int](None[int](), nil) },
		"filter":       func() { Some(1).Filter(nil) },
		"getOrElseGet": func() { Some(1).GetOrElseGet(nil) },
		"fold":         func() { Fold[int, int](Some(1), nil, func(i int) int { return i }) },
	} {
		assert.PanicsWithError(t, adt.ErrNilArgument.Error()+": "+argName(name)+" is nil", f, name)
	}
}

func argName(op string) string {
	switch op {
	case "filter":
		return "predicate"
	case "getOrElseGet":
		return "supplier"
	case "fold":
		return "onNone"
	}
	return "mapper"
}
