package strategy

import (
	"type-caster/chain"
	"type-caster/convert"
	"type-caster/descriptor"
)

// PrimitiveArrays decorates conversions of primitive arrays. The pair is
// rewritten to its boxed array form and passed on; the converter found for
// it is wrapped with a bulk boxing step before it (primitive source) and a
// bulk unboxing step after it (primitive target). It is not part of
// Defaults and is meant to run first.
type PrimitiveArrays struct{}

func (PrimitiveArrays) Name() string { return NamePrimitiveArray }

func (PrimitiveArrays) Resolve(src, dst descriptor.Descriptor, cur chain.Cursor) (convert.Converter, bool) {
	boxSrc, boxDst := primitiveArray(src), primitiveArray(dst)
	if !boxSrc && !boxDst {
		return cur.Next(src, dst)
	}

	inner, ok := cur.Next(boxedArrayOf(src), boxedArrayOf(dst))
	if !ok {
		return nil, false
	}

	conv := inner
	if boxSrc {
		conv = convert.Converter(convert.BoxSlice).Then(conv)
	}

	if boxDst {
		conv = conv.Then(convert.UnboxSlice)
	}

	return conv, true
}

func primitiveArray(d descriptor.Descriptor) bool {
	elem, ok := descriptor.ElementOf(d)
	return ok && descriptor.IsArray(d) && descriptor.IsPrimitive(elem)
}

func boxedArrayOf(d descriptor.Descriptor) descriptor.Descriptor {
	if !primitiveArray(d) {
		return d
	}

	elem, _ := descriptor.ElementOf(d)

	return descriptor.Array(descriptor.BoxedFormOf(elem))
}
