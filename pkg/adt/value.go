package adt

// Value is implemented by the containers that hold at most one value:
// Option, Either (right side) and Try (success side).
type Value[T any] interface {
	// Get returns the held value, or an error wrapping ErrNoSuchElement
	Get() (T, error)
	// IsEmpty reports whether there is no value to get
	IsEmpty() bool
}

func Exists[T any](v Value[T], predicate func(T) bool) bool {
	RequireNonNil("predicate", predicate)
	if v.IsEmpty() {
		return false
	}
	t, _ := v.Get()
	return predicate(t)
}

// ForAll is vacuously true for an empty value.
func ForAll[T any](v Value[T], predicate func(T) bool) bool {
	RequireNonNil("predicate", predicate)
	if v.IsEmpty() {
		return true
	}
	t, _ := v.Get()
	return predicate(t)
}

func GetOrElse[T any](v Value[T], other T) T {
	if t, err := v.Get(); err == nil {
		return t
	}
	return other
}

func Contains[T comparable](v Value[T], element T) bool {
	t, err := v.Get()
	return err == nil && t == element
}
