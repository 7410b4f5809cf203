// Package tuple provides the generic Pair used by option.Zip.
package tuple

import (
	"fmt"

	"github.com/ib-77/sumtype/pkg/adt"
)

type Pair[A, B any] struct {
	first  A
	second B
}

func Of[A, B any](a A, b B) Pair[A, B] {
	return Pair[A, B]{first: a, second: b}
}

func (p Pair[A, B]) First() A {
	return p.first
}

func (p Pair[A, B]) Second() B {
	return p.second
}

// Unpack returns both elements, for use on the left of :=.
func (p Pair[A, B]) Unpack() (A, B) {
	return p.first, p.second
}

func (p Pair[A, B]) Swap() Pair[B, A] {
	return Pair[B, A]{first: p.second, second: p.first}
}

func (p Pair[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", p.first, p.second)
}

func Map[A, B, C, D any](p Pair[A, B], f func(A) C, g func(B) D) Pair[C, D] {
	adt.RequireNonNil("firstMapper", f)
	adt.RequireNonNil("secondMapper", g)
	return Pair[C, D]{first: f(p.first), second: g(p.second)}
}
