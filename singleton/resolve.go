package singleton

import (
	"fmt"
	"reflect"
)

// Put registers instance under T's type identity.
//
// Example:
//
//	singleton.Put(reg, &Database{...})
func Put[T any](r *Registry, instance T) {
	r.Set(instance)
}

// Lookup retrieves the instance registered under T's type identity.
//
// Example:
//
//	db, ok := singleton.Lookup[*Database](reg)
func Lookup[T any](r *Registry) (T, bool) {
	var zero T
	instance, ok := r.Get(keyFor[T]())
	if !ok {
		return zero, false
	}
	result, ok := instance.(T)
	if !ok {
		return zero, false
	}
	return result, true
}

// MustLookup retrieves the instance registered under T's type identity,
// panicking if it is absent. Use in test setup where absence is a bug.
func MustLookup[T any](r *Registry) T {
	result, ok := Lookup[T](r)
	if !ok {
		panic(fmt.Sprintf("singleton: no instance registered for %s", keyFor[T]()))
	}
	return result
}

func keyFor[T any]() reflect.Type {
	t := reflect.TypeFor[T]()
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}
