package access

import (
	"reflect"
	"unsafe"

	"github.com/kbukum/testkit/errors"
)

// Field reads the named field from a struct or pointer to struct, exported
// or not.
func Field(target any, name string) (any, error) {
	v, err := structOf(target)
	if err != nil {
		return nil, err
	}

	f := v.FieldByName(name)
	if !f.IsValid() {
		return nil, errors.MemberNotFound("field", v.Type().String(), name)
	}
	if f.CanInterface() {
		return f.Interface(), nil
	}

	// Unexported fields need an addressable home before the visibility
	// bypass below; values passed by copy don't have one.
	if !f.CanAddr() {
		tmp := reflect.New(v.Type()).Elem()
		tmp.Set(v)
		f = tmp.FieldByName(name)
	}
	f = reflect.NewAt(f.Type(), unsafe.Pointer(f.UnsafeAddr())).Elem()
	return f.Interface(), nil
}

// SetField writes the named field on a pointer to struct, bypassing
// visibility. A nil value sets the field to its zero value.
func SetField(target any, name string, value any) error {
	v := reflect.ValueOf(target)
	if !v.IsValid() {
		return errors.InvalidTarget("target is nil")
	}
	if v.Kind() != reflect.Pointer || v.IsNil() {
		return errors.InvalidTarget("writes require a non-nil pointer to struct, got " + v.Type().String())
	}
	v = v.Elem()
	if v.Kind() != reflect.Struct {
		return errors.InvalidTarget("expected pointer to struct, got pointer to " + v.Kind().String())
	}

	f := v.FieldByName(name)
	if !f.IsValid() {
		return errors.MemberNotFound("field", v.Type().String(), name)
	}

	dst := f
	if !f.CanSet() {
		dst = reflect.NewAt(f.Type(), unsafe.Pointer(f.UnsafeAddr())).Elem()
	}

	if value == nil {
		dst.Set(reflect.Zero(f.Type()))
		return nil
	}
	rv := reflect.ValueOf(value)
	if !rv.Type().AssignableTo(f.Type()) {
		return errors.TypeMismatch(name, f.Type().String(), rv.Type().String())
	}
	dst.Set(rv)
	return nil
}

// Alloc returns a freshly allocated, initializer-bypassed (zero value)
// instance of T.
func Alloc[T any]() *T {
	return new(T)
}

// New returns a pointer to a freshly allocated, initializer-bypassed zero
// value of the given type. Pointer types are unwrapped so New(TypeOf(&T{}))
// and New(TypeOf(T{})) both yield a *T.
func New(t reflect.Type) (any, error) {
	if t == nil {
		return nil, errors.InvalidTarget("type is nil")
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return reflect.New(t).Interface(), nil
}

// structOf unwraps pointers down to a struct value.
func structOf(target any) (reflect.Value, error) {
	v := reflect.ValueOf(target)
	if !v.IsValid() {
		return reflect.Value{}, errors.InvalidTarget("target is nil")
	}
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return reflect.Value{}, errors.InvalidTarget("target is a nil pointer")
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return reflect.Value{}, errors.InvalidTarget("expected struct or pointer to struct, got " + v.Kind().String())
	}
	return v, nil
}
