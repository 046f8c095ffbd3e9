package access

import (
	"reflect"
	"testing"

	"github.com/kbukum/testkit/errors"
)

type widget struct {
	Label string
	count int
	limit *int
	tags  []string
}

func TestField_Exported(t *testing.T) {
	w := widget{Label: "a"}
	got, err := Field(w, "Label")
	if err != nil {
		t.Fatalf("Field() failed: %v", err)
	}
	if got != "a" {
		t.Errorf("expected 'a', got %v", got)
	}
}

func TestField_Unexported(t *testing.T) {
	tests := []struct {
		name   string
		target any
	}{
		{"by value", widget{count: 7}},
		{"by pointer", &widget{count: 7}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Field(tc.target, "count")
			if err != nil {
				t.Fatalf("Field() failed: %v", err)
			}
			if got != 7 {
				t.Errorf("expected 7, got %v", got)
			}
		})
	}
}

func TestField_UnexportedReference(t *testing.T) {
	w := &widget{tags: []string{"x", "y"}}
	got, err := Field(w, "tags")
	if err != nil {
		t.Fatalf("Field() failed: %v", err)
	}
	if !reflect.DeepEqual(got, []string{"x", "y"}) {
		t.Errorf("expected [x y], got %v", got)
	}
}

func TestField_NotFound(t *testing.T) {
	_, err := Field(widget{}, "nope")
	if !errors.IsCode(err, errors.ErrCodeMemberNotFound) {
		t.Errorf("expected MEMBER_NOT_FOUND, got %v", err)
	}
}

func TestField_InvalidTargets(t *testing.T) {
	tests := []struct {
		name   string
		target any
	}{
		{"nil", nil},
		{"nil pointer", (*widget)(nil)},
		{"non-struct", 42},
		{"string", "text"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Field(tc.target, "count")
			if !errors.IsCode(err, errors.ErrCodeInvalidTarget) {
				t.Errorf("expected INVALID_TARGET, got %v", err)
			}
		})
	}
}

func TestSetField_Unexported(t *testing.T) {
	w := &widget{}
	if err := SetField(w, "count", 42); err != nil {
		t.Fatalf("SetField() failed: %v", err)
	}
	if w.count != 42 {
		t.Errorf("expected count=42, got %d", w.count)
	}
}

func TestSetField_Exported(t *testing.T) {
	w := &widget{}
	if err := SetField(w, "Label", "renamed"); err != nil {
		t.Fatalf("SetField() failed: %v", err)
	}
	if w.Label != "renamed" {
		t.Errorf("expected Label=renamed, got %s", w.Label)
	}
}

func TestSetField_NilZeroes(t *testing.T) {
	n := 3
	w := &widget{limit: &n, count: 9}
	if err := SetField(w, "limit", nil); err != nil {
		t.Fatalf("SetField() failed: %v", err)
	}
	if w.limit != nil {
		t.Error("expected limit zeroed to nil")
	}
	if err := SetField(w, "count", nil); err != nil {
		t.Fatalf("SetField() failed: %v", err)
	}
	if w.count != 0 {
		t.Errorf("expected count zeroed, got %d", w.count)
	}
}

func TestSetField_TypeMismatch(t *testing.T) {
	w := &widget{}
	err := SetField(w, "count", "not an int")
	if !errors.IsCode(err, errors.ErrCodeTypeMismatch) {
		t.Errorf("expected TYPE_MISMATCH, got %v", err)
	}
}

func TestSetField_NotFound(t *testing.T) {
	err := SetField(&widget{}, "nope", 1)
	if !errors.IsCode(err, errors.ErrCodeMemberNotFound) {
		t.Errorf("expected MEMBER_NOT_FOUND, got %v", err)
	}
}

func TestSetField_RequiresPointer(t *testing.T) {
	err := SetField(widget{}, "count", 1)
	if !errors.IsCode(err, errors.ErrCodeInvalidTarget) {
		t.Errorf("expected INVALID_TARGET for value target, got %v", err)
	}
}

func TestAlloc_ZeroInstance(t *testing.T) {
	w := Alloc[widget]()
	if w == nil {
		t.Fatal("expected an allocated instance")
	}
	if w.count != 0 || w.Label != "" {
		t.Errorf("expected zero value, got %+v", *w)
	}
}

func TestNew_FromType(t *testing.T) {
	tests := []struct {
		name string
		typ  reflect.Type
	}{
		{"struct type", reflect.TypeOf(widget{})},
		{"pointer type", reflect.TypeOf(&widget{})},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := New(tc.typ)
			if err != nil {
				t.Fatalf("New() failed: %v", err)
			}
			w, ok := got.(*widget)
			if !ok {
				t.Fatalf("expected *widget, got %T", got)
			}
			if !reflect.DeepEqual(*w, widget{}) {
				t.Errorf("expected zero value, got %+v", *w)
			}
		})
	}
}

func TestNew_NilType(t *testing.T) {
	_, err := New(nil)
	if !errors.IsCode(err, errors.ErrCodeInvalidTarget) {
		t.Errorf("expected INVALID_TARGET, got %v", err)
	}
}
