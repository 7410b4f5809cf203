// Package lazy provides Lazy[T], a value computed on first read and cached.
//
// The supplier runs at most once, even when the first reads race; every
// reader sees the same value. Lazy values serialize through JSON and YAML by
// evaluating first, so a supplier is never part of the encoded form.
package lazy

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/atomic"
	"gopkg.in/yaml.v3"

	"github.com/ib-77/sumtype/pkg/adt"
)

var ErrEvaluated = errors.New("lazy value already evaluated")

// Lazy must not be copied after first use.
type Lazy[T any] struct {
	once      sync.Once
	supplier  func() T
	value     T
	panicked  any
	evaluated atomic.Bool
}

func New[T any](supplier func() T) *Lazy[T] {
	adt.RequireNonNil("supplier", supplier)
	return &Lazy[T]{supplier: supplier}
}

// Value returns an already evaluated Lazy.
func Value[T any](v T) *Lazy[T] {
	l := &Lazy[T]{}
	l.resolve(v)
	return l
}

// Get evaluates the supplier on the first call. If the supplier panicked,
// every call panics with the same value.
func (l *Lazy[T]) Get() T {
	l.once.Do(l.evaluate)
	if l.panicked != nil {
		panic(l.panicked)
	}
	return l.value
}

func (l *Lazy[T]) evaluate() {
	defer func() {
		if r := recover(); r != nil {
			l.panicked = r
		}
		l.supplier = nil
		l.evaluated.Store(true)
	}()
	if l.supplier != nil {
		l.value = l.supplier()
	}
}

// resolve reports false when the value was already fixed.
func (l *Lazy[T]) resolve(v T) bool {
	resolved := false
	l.once.Do(func() {
		l.value = v
		l.supplier = nil
		l.evaluated.Store(true)
		resolved = true
	})
	return resolved
}

func (l *Lazy[T]) IsEvaluated() bool {
	return l.evaluated.Load()
}

func (l *Lazy[T]) String() string {
	if !l.IsEvaluated() {
		return "Lazy(?)"
	}
	if l.panicked != nil {
		return fmt.Sprintf("Lazy(panic: %v)", l.panicked)
	}
	return fmt.Sprintf("Lazy(%v)", l.value)
}

func (l *Lazy[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.Get())
}

func (l *Lazy[T]) UnmarshalJSON(data []byte) error {
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	if !l.resolve(v) {
		return ErrEvaluated
	}
	return nil
}

func (l *Lazy[T]) MarshalYAML() (interface{}, error) {
	return l.Get(), nil
}

func (l *Lazy[T]) UnmarshalYAML(node *yaml.Node) error {
	var v T
	if err := node.Decode(&v); err != nil {
		return err
	}
	if !l.resolve(v) {
		return ErrEvaluated
	}
	return nil
}

func Map[T, U any](l *Lazy[T], f func(T) U) *Lazy[U] {
	adt.RequireNonNil("mapper", f)
	return New(func() U { return f(l.Get()) })
}
