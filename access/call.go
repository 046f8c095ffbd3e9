package access

import (
	"fmt"
	"go/token"
	"reflect"

	"github.com/kbukum/testkit/errors"
)

// Call invokes the named method on target and returns its results. Pass a
// pointer to reach pointer-receiver methods on the original instance; on a
// plain value they run against an addressable copy. Nil arguments become
// the parameter's zero value.
//
// Unexported methods are invisible to Go reflection and are reported as
// inaccessible members.
func Call(target any, method string, args ...any) ([]any, error) {
	v := reflect.ValueOf(target)
	if !v.IsValid() {
		return nil, errors.InvalidTarget("target is nil")
	}
	if v.Kind() == reflect.Pointer && v.IsNil() {
		return nil, errors.InvalidTarget("target is a nil pointer")
	}

	m := v.MethodByName(method)
	if !m.IsValid() && v.Kind() != reflect.Pointer {
		// Pointer-receiver methods aren't in a value's method set.
		pv := reflect.New(v.Type())
		pv.Elem().Set(v)
		m = pv.MethodByName(method)
	}
	if !m.IsValid() {
		typeName := indirectType(v.Type()).String()
		if !token.IsExported(method) {
			return nil, errors.MemberInaccessible("method", typeName, method,
				"unexported methods cannot be invoked through reflection")
		}
		return nil, errors.MemberNotFound("method", typeName, method)
	}

	in, err := buildArgs(m.Type(), method, args)
	if err != nil {
		return nil, err
	}

	out := m.Call(in)
	results := make([]any, len(out))
	for i, r := range out {
		results[i] = r.Interface()
	}
	return results, nil
}

// Construct invokes an initializer-style method on an existing instance,
// discarding non-error results. If the initializer's last result is a
// non-nil error it is propagated. Combine with Alloc or New to initialize a
// freshly allocated instance.
func Construct(target any, initializer string, args ...any) error {
	results, err := Call(target, initializer, args...)
	if err != nil {
		return err
	}
	if len(results) > 0 {
		if e, ok := results[len(results)-1].(error); ok && e != nil {
			return e
		}
	}
	return nil
}

func buildArgs(mt reflect.Type, method string, args []any) ([]reflect.Value, error) {
	if mt.IsVariadic() {
		if len(args) < mt.NumIn()-1 {
			return nil, errors.InvalidArgument(method,
				fmt.Sprintf("expected at least %d arguments, got %d", mt.NumIn()-1, len(args)))
		}
	} else if len(args) != mt.NumIn() {
		return nil, errors.InvalidArgument(method,
			fmt.Sprintf("expected %d arguments, got %d", mt.NumIn(), len(args)))
	}

	in := make([]reflect.Value, len(args))
	for i, arg := range args {
		pt := paramType(mt, i)
		if arg == nil {
			in[i] = reflect.Zero(pt)
			continue
		}
		rv := reflect.ValueOf(arg)
		if !rv.Type().AssignableTo(pt) {
			return nil, errors.InvalidArgument(method,
				fmt.Sprintf("argument %d: %s is not assignable to %s", i, rv.Type(), pt))
		}
		in[i] = rv
	}
	return in, nil
}

func paramType(mt reflect.Type, i int) reflect.Type {
	if mt.IsVariadic() && i >= mt.NumIn()-1 {
		return mt.In(mt.NumIn() - 1).Elem()
	}
	return mt.In(i)
}

func indirectType(t reflect.Type) reflect.Type {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}
