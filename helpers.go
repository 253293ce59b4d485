package appctx

import (
	"fmt"
	"reflect"
	"strings"
)

// argumentError is raised by the typed factory adapters when a resolved dependency
// cannot be converted to the constructor's parameter type. The container maps it to
// a TypeMismatchError for the dependency id at that position.
type argumentError struct {
	index    int
	expected reflect.Type
	actual   reflect.Type
}

func (e *argumentError) Error() string {
	return fmt.Sprintf("argument %d: expected %s, got %s", e.index, typeName(e.expected), typeName(e.actual))
}

func argAs[T any](deps []any, index int) (T, error) {
	var zero T
	if index >= len(deps) {
		return zero, fmt.Errorf("factory expects at least %d dependencies, got %d", index+1, len(deps))
	}
	v := deps[index]
	x, ok := v.(T)
	if !ok {
		return zero, &argumentError{index: index, expected: typeOf[T](), actual: reflect.TypeOf(v)}
	}
	return x, nil
}

func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

func typeName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	return t.String()
}

// isNil also catches typed nils (a nil *T stored in an interface).
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}

func joinPath(p []string) string {
	return strings.Join(p, pathSep)
}
