package descriptor

import (
	"reflect"

	"type-caster/primitive"
)

var (
	stringType      = reflect.TypeFor[string]()
	anyType         = reflect.TypeFor[any]()
	emptyStructType = reflect.TypeFor[struct{}]()
)

// For captures the descriptor of the type argument.
func For[T any]() Descriptor {
	return Of(reflect.TypeFor[T]())
}

// Of captures the descriptor of a Go type. Slices and arrays become arrays,
// map[K]struct{} becomes a set, pointers to primitive kinds become boxed
// descriptors, and anything else not decomposable is a named type.
func Of(t reflect.Type) Descriptor {
	if t == nil {
		return Descriptor{}
	}

	switch t {
	case stringType:
		return Str()
	case anyType:
		return Any()
	}

	if k := primitive.FromReflectType(t); k != 0 {
		if k.HasPrimitive() {
			return Primitive(k)
		}

		return Boxed(k)
	}

	switch t.Kind() {
	case reflect.Pointer:
		if k := primitive.FromReflectType(t.Elem()); k.HasPrimitive() {
			return Boxed(k)
		}
	case reflect.Slice, reflect.Array:
		return Array(Of(t.Elem()))
	case reflect.Map:
		if t.Elem() == emptyStructType {
			return Set(Of(t.Key()))
		}

		return Map(Of(t.Key()), Of(t.Elem()))
	}

	return NamedType(t)
}

// GoType returns the Go type values of d are built as. It reports false for
// generic descriptors, named descriptors without a bound type, and maps or
// sets whose keys are not comparable.
func GoType(d Descriptor) (reflect.Type, bool) {
	switch d.shape {
	default:
		return nil, false
	case ShapePrimitive:
		return d.kind.GoType(), true
	case ShapeBoxed:
		if d.kind.HasPrimitive() {
			return reflect.PointerTo(d.kind.GoType()), true
		}

		return d.kind.GoType(), true
	case ShapeArray:
		elem, ok := GoType(*d.elem)
		if !ok {
			return nil, false
		}

		return reflect.SliceOf(elem), true
	case ShapeContainer:
		elem, ok := GoType(*d.elem)
		if !ok {
			return nil, false
		}

		if d.container == ContainerSet {
			if !elem.Comparable() {
				return nil, false
			}

			return reflect.MapOf(elem, emptyStructType), true
		}

		return reflect.SliceOf(elem), true
	case ShapeMap:
		key, ok := GoType(*d.key)
		if !ok || !key.Comparable() {
			return nil, false
		}

		value, ok := GoType(*d.elem)
		if !ok {
			return nil, false
		}

		return reflect.MapOf(key, value), true
	case ShapeNamed:
		return d.goType, d.goType != nil
	}
}
