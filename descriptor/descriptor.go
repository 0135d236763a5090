package descriptor

import (
	"reflect"
	"strings"

	"type-caster/primitive"
)

// Shape is the variant tag of a Descriptor.
type Shape int

const (
	ShapeInvalid   Shape = iota
	ShapePrimitive       // bool, i8 ... f64, char
	ShapeBoxed           // nullable counterpart of a primitive, or a big number
	ShapeArray           // ordered, fixed length once built
	ShapeContainer       // list or set
	ShapeMap             // key -> value
	ShapeNamed           // opaque nominal type
	ShapeGeneric         // type parameter or wildcard
)

// String returns a human-readable representation of the Shape.
func (s Shape) String() string {
	switch s {
	case ShapePrimitive:
		return "primitive"
	case ShapeBoxed:
		return "boxed"
	case ShapeArray:
		return "array"
	case ShapeContainer:
		return "container"
	case ShapeMap:
		return "map"
	case ShapeNamed:
		return "named"
	case ShapeGeneric:
		return "generic"
	default:
		return "invalid"
	}
}

// ContainerKind distinguishes ordered lists from unordered sets.
type ContainerKind int

const (
	ContainerList ContainerKind = iota + 1
	ContainerSet
)

func (k ContainerKind) String() string {
	switch k {
	case ContainerList:
		return "list"
	case ContainerSet:
		return "set"
	default:
		return "invalid"
	}
}

// Well known identities of named descriptors.
const (
	IdentityString = "string"
	IdentityAny    = "any"
)

// Descriptor is an immutable structural description of a value's shape.
// The zero value is invalid. Compare descriptors with Equal, not ==.
type Descriptor struct {
	shape     Shape
	kind      primitive.KindEnum
	container ContainerKind
	elem      *Descriptor // array/container element, map value, wildcard upper bound
	key       *Descriptor // map key, wildcard lower bound
	name      string      // named identity, placeholder name
	goType    reflect.Type
}

func Primitive(k primitive.KindEnum) Descriptor {
	if !k.HasPrimitive() {
		panic("kind has no primitive form: " + k.String())
	}

	return Descriptor{shape: ShapePrimitive, kind: k}
}

func Boxed(k primitive.KindEnum) Descriptor {
	if !k.IsValid() {
		panic("invalid kind: " + k.String())
	}

	return Descriptor{shape: ShapeBoxed, kind: k}
}

func Array(elem Descriptor) Descriptor {
	return Descriptor{shape: ShapeArray, elem: &elem}
}

func List(elem Descriptor) Descriptor {
	return Descriptor{shape: ShapeContainer, container: ContainerList, elem: &elem}
}

func Set(elem Descriptor) Descriptor {
	return Descriptor{shape: ShapeContainer, container: ContainerSet, elem: &elem}
}

func Container(kind ContainerKind, elem Descriptor) Descriptor {
	if kind != ContainerList && kind != ContainerSet {
		panic("invalid container kind")
	}

	return Descriptor{shape: ShapeContainer, container: kind, elem: &elem}
}

func Map(key, value Descriptor) Descriptor {
	return Descriptor{shape: ShapeMap, key: &key, elem: &value}
}

// Named returns an opaque nominal descriptor without a Go runtime type.
// The identities "string" and "any" are bound to their Go types.
func Named(identity string) Descriptor {
	d := Descriptor{shape: ShapeNamed, name: identity}
	switch identity {
	case IdentityString:
		d.goType = reflect.TypeFor[string]()
	case IdentityAny:
		d.goType = reflect.TypeFor[any]()
	}

	return d
}

// NamedType returns a nominal descriptor bound to a Go type. Its identity is
// the package qualified type name.
func NamedType(t reflect.Type) Descriptor {
	if t == nil {
		panic("named type cannot be nil")
	}

	return Descriptor{shape: ShapeNamed, name: typeIdentity(t), goType: t}
}

func Str() Descriptor { return Named(IdentityString) }

func Any() Descriptor { return Named(IdentityAny) }

// Placeholder returns an unresolved type parameter.
func Placeholder(name string) Descriptor {
	return Descriptor{shape: ShapeGeneric, name: name}
}

// Wildcard returns an unbounded wildcard.
func Wildcard() Descriptor {
	return Descriptor{shape: ShapeGeneric, name: "?"}
}

// WildcardExtends returns a wildcard bounded from above.
func WildcardExtends(upper Descriptor) Descriptor {
	return Descriptor{shape: ShapeGeneric, name: "?", elem: &upper}
}

// WildcardSuper returns a wildcard bounded from below.
func WildcardSuper(lower Descriptor) Descriptor {
	return Descriptor{shape: ShapeGeneric, name: "?", key: &lower}
}

func (d Descriptor) Shape() Shape { return d.shape }

// Kind returns the primitive kind of primitive and boxed descriptors, zero otherwise.
func (d Descriptor) Kind() primitive.KindEnum { return d.kind }

// ContainerKind returns the container kind of container descriptors, zero otherwise.
func (d Descriptor) ContainerKind() ContainerKind { return d.container }

// Identity returns the nominal identity of named descriptors, or the
// placeholder name of generic ones.
func (d Descriptor) Identity() string { return d.name }

// Bounds returns the upper and lower bounds of a wildcard.
func (d Descriptor) Bounds() (upper, lower *Descriptor) {
	if d.shape != ShapeGeneric {
		return nil, nil
	}

	return d.elem, d.key
}

func (d Descriptor) IsValid() bool { return d.shape != ShapeInvalid }

// Equal reports structural equality. Named descriptors are equal when their
// identities are.
func (d Descriptor) Equal(o Descriptor) bool {
	if d.shape != o.shape || d.kind != o.kind || d.container != o.container || d.name != o.name {
		return false
	}

	return equalRef(d.elem, o.elem) && equalRef(d.key, o.key)
}

func equalRef(a, b *Descriptor) bool {
	if a == nil || b == nil {
		return a == b
	}

	return a.Equal(*b)
}

// String returns the canonical textual form, which Parse accepts back.
func (d Descriptor) String() string {
	var sb strings.Builder
	d.write(&sb)

	return sb.String()
}

func (d Descriptor) write(sb *strings.Builder) {
	switch d.shape {
	default:
		sb.WriteString("<invalid>")
	case ShapePrimitive:
		sb.WriteString(d.kind.ShortName())
	case ShapeBoxed:
		if d.kind.HasPrimitive() {
			sb.WriteByte('*')
		}
		sb.WriteString(d.kind.ShortName())
	case ShapeArray:
		sb.WriteString("[]")
		d.elem.write(sb)
	case ShapeContainer:
		sb.WriteString(d.container.String())
		sb.WriteByte('<')
		d.elem.write(sb)
		sb.WriteByte('>')
	case ShapeMap:
		sb.WriteString("map<")
		d.key.write(sb)
		sb.WriteByte(',')
		d.elem.write(sb)
		sb.WriteByte('>')
	case ShapeNamed:
		switch d.name {
		case IdentityString, IdentityAny:
			sb.WriteString(d.name)
		default:
			sb.WriteString("named:")
			sb.WriteString(d.name)
		}
	case ShapeGeneric:
		if d.name != "?" {
			sb.WriteByte('$')
			sb.WriteString(d.name)
			return
		}
		sb.WriteByte('?')
		if d.elem != nil {
			sb.WriteString(" extends ")
			d.elem.write(sb)
		}
		if d.key != nil {
			sb.WriteString(" super ")
			d.key.write(sb)
		}
	}
}

func typeIdentity(t reflect.Type) string {
	if t == reflect.TypeFor[any]() {
		return IdentityAny
	}

	if t.Name() != "" && t.PkgPath() != "" {
		return t.PkgPath() + "." + t.Name()
	}

	return t.String()
}
