package flist

import "github.com/ib-77/sumtype/pkg/adt"

func Map[T, U any](l FList[T], f func(T) U) FList[U] {
	adt.RequireNonNil("mapper", f)
	mapped := make([]U, 0)
	for c := l.first; c != nil; c = c.tail {
		mapped = append(mapped, f(c.head))
	}
	return FromSlice(mapped)
}

// FoldRight combines from the last element back to the first; the empty list
// folds to identity.
func FoldRight[T, U any](l FList[T], identity U, combine func(T, U) U) U {
	adt.RequireNonNil("combine", combine)
	items := l.ToSlice()
	acc := identity
	for i := len(items) - 1; i >= 0; i-- {
		acc = combine(items[i], acc)
	}
	return acc
}

func FoldLeft[T, U any](l FList[T], identity U, combine func(U, T) U) U {
	adt.RequireNonNil("combine", combine)
	acc := identity
	for c := l.first; c != nil; c = c.tail {
		acc = combine(acc, c.head)
	}
	return acc
}

func FlatMap[T, U any](l FList[T], f func(T) FList[U]) FList[U] {
	adt.RequireNonNil("mapper", f)
	return FoldRight(l, Empty[U](), func(elem T, acc FList[U]) FList[U] {
		return f(elem).AppendList(acc)
	})
}

func Equal[T comparable](a, b FList[T]) bool {
	ca, cb := a.first, b.first
	for ca != nil && cb != nil {
		if ca == cb {
			return true
		}
		if ca.head != cb.head {
			return false
		}
		ca, cb = ca.tail, cb.tail
	}
	return ca == nil && cb == nil
}
