package option

import (
	"fmt"

	"github.com/ib-77/sumtype/pkg/adt"
	"github.com/ib-77/sumtype/pkg/adt/flist"
	"github.com/ib-77/sumtype/pkg/adt/tuple"
)

type Option[T any] struct {
	value   T
	present bool
}

var _ adt.Value[int] = Option[int]{}

// Of returns None when v is nil-like, Some(v) otherwise.
func Of[T any](v T) Option[T] {
	if adt.IsNil(v) {
		return None[T]()
	}
	return Some(v)
}

func Some[T any](v T) Option[T] {
	return Option[T]{value: v, present: true}
}

func None[T any]() Option[T] {
	return Option[T]{}
}

// FromPair adapts the comma-ok idiom: FromPair(m[k]).
func FromPair[T any](v T, ok bool) Option[T] {
	if !ok {
		return None[T]()
	}
	return Some(v)
}

func When[T any](condition bool, supplier func() T) Option[T] {
	adt.RequireNonNil("supplier", supplier)
	if !condition {
		return None[T]()
	}
	return Some(supplier())
}

func (o Option[T]) IsPresent() bool {
	return o.present
}

func (o Option[T]) IsEmpty() bool {
	return !o.present
}

func (o Option[T]) Get() (T, error) {
	if !o.present {
		var zero T
		return zero, adt.NoSuchElement("get on None")
	}
	return o.value, nil
}

func (o Option[T]) MustGet() T {
	v, err := o.Get()
	if err != nil {
		panic(err)
	}
	return v
}

func (o Option[T]) GetOrElse(other T) T {
	if o.present {
		return o.value
	}
	return other
}

func (o Option[T]) GetOrElseGet(supplier func() T) T {
	adt.RequireNonNil("supplier", supplier)
	if o.present {
		return o.value
	}
	return supplier()
}

func (o Option[T]) OrElse(other Option[T]) Option[T] {
	if o.present {
		return o
	}
	return other
}

func (o Option[T]) OrElseGet(supplier func() Option[T]) Option[T] {
	adt.RequireNonNil("supplier", supplier)
	if o.present {
		return o
	}
	return supplier()
}

func (o Option[T]) Filter(predicate func(T) bool) Option[T] {
	adt.RequireNonNil("predicate", predicate)
	if o.present && predicate(o.value) {
		return o
	}
	return None[T]()
}

// Peek runs action on the value, if any, and returns the receiver.
func (o Option[T]) Peek(action func(T)) Option[T] {
	adt.RequireNonNil("action", action)
	if o.present {
		action(o.value)
	}
	return o
}

func (o Option[T]) ToList() flist.FList[T] {
	if !o.present {
		return flist.Empty[T]()
	}
	return flist.Of(o.value)
}

func (o Option[T]) String() string {
	if !o.present {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.value)
}

func Map[T, U any](o Option[T], f func(T) U) Option[U] {
	adt.RequireNonNil("mapper", f)
	if !o.present {
		return None[U]()
	}
	return Some(f(o.value))
}

func FlatMap[T, U any](o Option[T], f func(T) Option[U]) Option[U] {
	adt.RequireNonNil("mapper", f)
	if !o.present {
		return None[U]()
	}
	return f(o.value)
}

func Fold[T, U any](o Option[T], onNone func() U, onSome func(T) U) U {
	adt.RequireNonNil("onNone", onNone)
	adt.RequireNonNil("onSome", onSome)
	if !o.present {
		return onNone()
	}
	return onSome(o.value)
}

// Zip is Some only when both sides are.
func Zip[A, B any](a Option[A], b Option[B]) Option[tuple.Pair[A, B]] {
	if !a.present || !b.present {
		return None[tuple.Pair[A, B]]()
	}
	return Some(tuple.Of(a.value, b.value))
}

// Equal compares presence, then values.
func Equal[T comparable](a, b Option[T]) bool {
	if a.present != b.present {
		return false
	}
	return !a.present || a.value == b.value
}
