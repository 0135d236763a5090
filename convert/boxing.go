package convert

import (
	"fmt"
	"reflect"
)

// BoxSlice turns a slice of values into a slice of pointers to copies of them,
// e.g. []int32 into []*int32.
func BoxSlice(src any) (any, error) {
	if IsNull(src) {
		return nil, nil
	}

	rv := reflect.ValueOf(src)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, fmt.Errorf("%w: %T is not a slice", ErrUnexpectedValue, src)
	}

	elemType := rv.Type().Elem()
	res := reflect.MakeSlice(reflect.SliceOf(reflect.PointerTo(elemType)), rv.Len(), rv.Len())
	for i := range rv.Len() {
		ptr := reflect.New(elemType)
		ptr.Elem().Set(rv.Index(i))
		res.Index(i).Set(ptr)
	}

	return res.Interface(), nil
}

// UnboxSlice turns a slice of pointers into a slice of the pointed values,
// e.g. []*int32 into []int32. A nil element fails with ErrNullElement.
func UnboxSlice(src any) (any, error) {
	if IsNull(src) {
		return nil, nil
	}

	rv := reflect.ValueOf(src)
	if (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) || rv.Type().Elem().Kind() != reflect.Pointer {
		return nil, fmt.Errorf("%w: %T is not a slice of pointers", ErrUnexpectedValue, src)
	}

	res := reflect.MakeSlice(reflect.SliceOf(rv.Type().Elem().Elem()), rv.Len(), rv.Len())
	for i := range rv.Len() {
		ptr := rv.Index(i)
		if ptr.IsNil() {
			return nil, fmt.Errorf("element %d: %w", i, ErrNullElement)
		}

		res.Index(i).Set(ptr.Elem())
	}

	return res.Interface(), nil
}
