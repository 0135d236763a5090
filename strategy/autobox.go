package strategy

import (
	"fmt"
	"reflect"

	"type-caster/chain"
	"type-caster/convert"
	"type-caster/descriptor"
	"type-caster/primitive"
)

// Autobox converts between a primitive kind and its boxed counterpart. The
// value itself is unchanged: boxing stores it behind a fresh pointer and
// unboxing dereferences it, a nil pointer becoming null.
type Autobox struct{}

func (Autobox) Name() string { return NameAutobox }

func (Autobox) Resolve(src, dst descriptor.Descriptor, cur chain.Cursor) (convert.Converter, bool) {
	switch {
	case descriptor.IsPrimitiveCounterpartOf(src, dst):
		return box(src.Kind()), true
	case descriptor.IsBoxedCounterpartOf(src, dst):
		return unbox(src.Kind()), true
	default:
		return cur.Next(src, dst)
	}
}

func box(k primitive.KindEnum) convert.Converter {
	want := k.GoType()

	return convert.NullSafe(func(src any) (any, error) {
		if reflect.TypeOf(src) != want {
			return nil, fmt.Errorf("%w: got %T, want %s", convert.ErrUnexpectedValue, src, want)
		}

		return convert.Box(src)
	})
}

func unbox(k primitive.KindEnum) convert.Converter {
	want := reflect.PointerTo(k.GoType())

	return convert.NullSafe(func(src any) (any, error) {
		if reflect.TypeOf(src) != want {
			return nil, fmt.Errorf("%w: got %T, want %s", convert.ErrUnexpectedValue, src, want)
		}

		return convert.Unbox(src)
	})
}
