package flist

import (
	"fmt"
	"iter"
	"strings"

	"github.com/ib-77/sumtype/pkg/adt"
)

type cell[T any] struct {
	head T
	tail *cell[T]
}

// FList is a persistent list. The zero value is the empty list.
type FList[T any] struct {
	first *cell[T]
}

func Empty[T any]() FList[T] {
	return FList[T]{}
}

func Of[T any](values ...T) FList[T] {
	return FromSlice(values)
}

func FromSlice[T any](values []T) FList[T] {
	var first *cell[T]
	for i := len(values) - 1; i >= 0; i-- {
		first = &cell[T]{head: values[i], tail: first}
	}
	return FList[T]{first: first}
}

func (l FList[T]) IsEmpty() bool {
	return l.first == nil
}

func (l FList[T]) Head() (T, error) {
	if l.first == nil {
		var zero T
		return zero, adt.NoSuchElement("head of empty list")
	}
	return l.first.head, nil
}

func (l FList[T]) Tail() (FList[T], error) {
	if l.first == nil {
		return l, adt.NoSuchElement("tail of empty list")
	}
	return FList[T]{first: l.first.tail}, nil
}

// Size walks the whole list.
func (l FList[T]) Size() int {
	n := 0
	for c := l.first; c != nil; c = c.tail {
		n++
	}
	return n
}

func (l FList[T]) Prepend(v T) FList[T] {
	return FList[T]{first: &cell[T]{head: v, tail: l.first}}
}

// Append rebuilds the whole spine.
func (l FList[T]) Append(v T) FList[T] {
	return l.AppendList(Of(v))
}

// AppendList copies the receiver's cells and shares other as the tail.
func (l FList[T]) AppendList(other FList[T]) FList[T] {
	if l.first == nil {
		return other
	}
	if other.first == nil {
		return l
	}
	return l.rebuild(l.Size(), other.first)
}

func (l FList[T]) Get(i int) (T, error) {
	if size := l.Size(); i < 0 || i >= size {
		var zero T
		return zero, adt.IndexOutOfBounds(i, size)
	}
	c := l.first
	for ; i > 0; i-- {
		c = c.tail
	}
	return c.head, nil
}

// Update returns a list with the i-th element replaced. Cells after i are
// shared with the receiver.
func (l FList[T]) Update(i int, v T) (FList[T], error) {
	size := l.Size()
	if i < 0 || i >= size {
		return l, adt.IndexOutOfBounds(i, size)
	}
	c := l.first
	for j := 0; j < i; j++ {
		c = c.tail
	}
	return l.rebuild(i, &cell[T]{head: v, tail: c.tail}), nil
}

// rebuild copies the first n cells in front of rest.
func (l FList[T]) rebuild(n int, rest *cell[T]) FList[T] {
	prefix := make([]T, 0, n)
	for c := l.first; c != nil && len(prefix) < n; c = c.tail {
		prefix = append(prefix, c.head)
	}
	for i := len(prefix) - 1; i >= 0; i-- {
		rest = &cell[T]{head: prefix[i], tail: rest}
	}
	return FList[T]{first: rest}
}

func (l FList[T]) Filter(predicate func(T) bool) FList[T] {
	adt.RequireNonNil("predicate", predicate)
	kept := make([]T, 0)
	for c := l.first; c != nil; c = c.tail {
		if predicate(c.head) {
			kept = append(kept, c.head)
		}
	}
	return FromSlice(kept)
}

func (l FList[T]) Reverse() FList[T] {
	var out FList[T]
	for c := l.first; c != nil; c = c.tail {
		out = out.Prepend(c.head)
	}
	return out
}

func (l FList[T]) ToSlice() []T {
	out := make([]T, 0)
	for c := l.first; c != nil; c = c.tail {
		out = append(out, c.head)
	}
	return out
}

// All yields index/value pairs from head to tail.
func (l FList[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := 0
		for c := l.first; c != nil; c = c.tail {
			if !yield(i, c.head) {
				return
			}
			i++
		}
	}
}

func (l FList[T]) String() string {
	var sb strings.Builder
	sb.WriteString("FList(")
	for c := l.first; c != nil; c = c.tail {
		if c != l.first {
			sb.WriteString(", ")
		}
		fmt.Fprint(&sb, c.head)
	}
	sb.WriteString(")")
	return sb.String()
}
