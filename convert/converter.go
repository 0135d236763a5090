// Package convert provides the Converter abstraction produced by resolution
// strategies, and the container and map building blocks they are made of.
package convert

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	ErrUnexpectedValue = errors.New("value does not match its descriptor")
	ErrNullElement     = errors.New("null cannot be stored in a non-nullable slot")
)

// Converter transforms a single value. A nil Converter is never returned by
// a successful resolution.
type Converter func(src any) (any, error)

// Identity returns its input unchanged.
func Identity(src any) (any, error) {
	return src, nil
}

// NullSafe wraps c so that a null source yields nil without invoking c.
func NullSafe(c Converter) Converter {
	return func(src any) (any, error) {
		if IsNull(src) {
			return nil, nil
		}

		return c(src)
	}
}

// Then composes c with next, applying c first. Nulls short-circuit.
func (c Converter) Then(next Converter) Converter {
	return NullSafe(func(src any) (any, error) {
		mid, err := c(src)
		if err != nil {
			return nil, err
		}

		if IsNull(mid) {
			return nil, nil
		}

		return next(mid)
	})
}

// IsNull reports whether v is nil or a nil pointer, slice, map, interface,
// channel or function.
func IsNull(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Slice, reflect.Map, reflect.Interface, reflect.Chan, reflect.Func:
		return rv.IsNil()
	default:
		return false
	}
}

// Box returns a pointer to a copy of v.
func Box(v any) (any, error) {
	if v == nil {
		return nil, fmt.Errorf("%w: cannot box untyped nil", ErrUnexpectedValue)
	}

	rv := reflect.ValueOf(v)
	ptr := reflect.New(rv.Type())
	ptr.Elem().Set(rv)

	return ptr.Interface(), nil
}

// Unbox dereferences the pointer v.
func Unbox(v any) (any, error) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer {
		return nil, fmt.Errorf("%w: %T is not a boxed value", ErrUnexpectedValue, v)
	}

	if rv.IsNil() {
		return nil, nil
	}

	return rv.Elem().Interface(), nil
}

// valueOf returns v as a value assignable to t. Null becomes the zero value
// of nullable types and fails for every other type.
func valueOf(t reflect.Type, v any) (reflect.Value, error) {
	if IsNull(v) {
		switch t.Kind() {
		case reflect.Pointer, reflect.Slice, reflect.Map, reflect.Interface, reflect.Chan, reflect.Func:
			return reflect.Zero(t), nil
		default:
			return reflect.Value{}, fmt.Errorf("%w: %s", ErrNullElement, t)
		}
	}

	rv := reflect.ValueOf(v)
	if !rv.Type().AssignableTo(t) {
		return reflect.Value{}, fmt.Errorf("%w: %s is not assignable to %s", ErrUnexpectedValue, rv.Type(), t)
	}

	return rv, nil
}
