package nel

import (
	"fmt"
	"iter"
	"strings"

	"github.com/ib-77/sumtype/pkg/adt"
	"github.com/ib-77/sumtype/pkg/adt/flist"
)

type NonEmptyList[T any] struct {
	head T
	tail flist.FList[T]
}

// New builds a list from a head and an existing tail; it cannot fail.
func New[T any](head T, tail flist.FList[T]) NonEmptyList[T] {
	return NonEmptyList[T]{head: head, tail: tail}
}

func Of[T any](values ...T) (NonEmptyList[T], error) {
	if len(values) == 0 {
		return NonEmptyList[T]{}, fmt.Errorf("%w: no values for a non-empty list", adt.ErrIllegalArgument)
	}
	return FromSlice(values)
}

// MustOf is Of for callers that pass at least one literal value.
func MustOf[T any](values ...T) NonEmptyList[T] {
	l, err := Of(values...)
	if err != nil {
		panic(err)
	}
	return l
}

// FromSlice copies values; later changes to the slice are not seen.
func FromSlice[T any](values []T) (NonEmptyList[T], error) {
	if len(values) == 0 {
		return NonEmptyList[T]{}, fmt.Errorf("%w: empty or nil slice", adt.ErrIllegalArgument)
	}
	return NonEmptyList[T]{head: values[0], tail: flist.FromSlice(values[1:])}, nil
}

func FromList[T any](l flist.FList[T]) (NonEmptyList[T], error) {
	head, err := l.Head()
	if err != nil {
		return NonEmptyList[T]{}, fmt.Errorf("%w: empty list", adt.ErrIllegalArgument)
	}
	tail, _ := l.Tail()
	return NonEmptyList[T]{head: head, tail: tail}, nil
}

func (l NonEmptyList[T]) Head() T {
	return l.head
}

func (l NonEmptyList[T]) Tail() flist.FList[T] {
	return l.tail
}

func (l NonEmptyList[T]) Size() int {
	return 1 + l.tail.Size()
}

func (l NonEmptyList[T]) Get(i int) (T, error) {
	if i == 0 {
		return l.head, nil
	}
	if i < 0 {
		var zero T
		return zero, adt.IndexOutOfBounds(i, l.Size())
	}
	v, err := l.tail.Get(i - 1)
	if err != nil {
		var zero T
		return zero, adt.IndexOutOfBounds(i, l.Size())
	}
	return v, nil
}

func (l NonEmptyList[T]) Append(v T) NonEmptyList[T] {
	return NonEmptyList[T]{head: l.head, tail: l.tail.Append(v)}
}

func (l NonEmptyList[T]) Concat(other NonEmptyList[T]) NonEmptyList[T] {
	return NonEmptyList[T]{head: l.head, tail: l.tail.AppendList(other.ToList())}
}

func (l NonEmptyList[T]) ToList() flist.FList[T] {
	return l.tail.Prepend(l.head)
}

func (l NonEmptyList[T]) ToSlice() []T {
	return l.ToList().ToSlice()
}

func (l NonEmptyList[T]) All() iter.Seq2[int, T] {
	return l.ToList().All()
}

func (l NonEmptyList[T]) String() string {
	var sb strings.Builder
	sb.WriteString("NonEmptyList(")
	for i, v := range l.All() {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprint(&sb, v)
	}
	sb.WriteString(")")
	return sb.String()
}

func Map[T, U any](l NonEmptyList[T], f func(T) U) NonEmptyList[U] {
	adt.RequireNonNil("mapper", f)
	return NonEmptyList[U]{head: f(l.head), tail: flist.Map(l.tail, f)}
}

// FlatMap keeps the head of f(head) as the new head, so the result is never
// empty.
func FlatMap[T, U any](l NonEmptyList[T], f func(T) NonEmptyList[U]) NonEmptyList[U] {
	adt.RequireNonNil("mapper", f)
	first := f(l.head)
	rest := flist.FlatMap(l.tail, func(v T) flist.FList[U] {
		return f(v).ToList()
	})
	return NonEmptyList[U]{head: first.head, tail: first.tail.AppendList(rest)}
}

func Equal[T comparable](a, b NonEmptyList[T]) bool {
	return a.head == b.head && flist.Equal(a.tail, b.tail)
}

// ToError joins a list of errors with errors.Join semantics.
func ToError(l NonEmptyList[error]) error {
	return adt.JoinErrors(l.ToSlice()...)
}

// FromError splits a (possibly joined) error into its parts.
func FromError(err error) (NonEmptyList[error], error) {
	return FromSlice(adt.GetErrors(err))
}
