package strategy

import (
	"reflect"

	"type-caster/chain"
	"type-caster/convert"
	"type-caster/descriptor"
)

// Containers converts between any combination of arrays, lists and sets.
// Elements are converted in source order by a converter resolved by
// restarting the chain, and appended to a new target container.
type Containers struct{}

func (Containers) Name() string { return NameContainer }

func (Containers) Resolve(src, dst descriptor.Descriptor, cur chain.Cursor) (convert.Converter, bool) {
	srcElem, ok := descriptor.ElementOf(src)
	if !ok {
		return cur.Next(src, dst)
	}

	dstElem, ok := descriptor.ElementOf(dst)
	if !ok {
		return cur.Next(src, dst)
	}

	dstType, ok := descriptor.GoType(dst)
	if !ok {
		return cur.Next(src, dst)
	}

	elem, ok := cur.Restart(srcElem, dstElem)
	if !ok {
		return cur.Next(src, dst)
	}

	return convert.ContainerConverter(handlerOf(src, nil), handlerOf(dst, dstType), elem), true
}

// handlerOf selects the container handler by descriptor tag. t is the Go
// type to build and is nil for source-only handlers.
func handlerOf(d descriptor.Descriptor, t reflect.Type) convert.Handler {
	if descriptor.IsContainer(d) && d.ContainerKind() == descriptor.ContainerSet {
		return convert.HashSet{Type: t}
	}

	return convert.Sequence{Type: t}
}
