package strategy

import (
	"type-caster/chain"
	"type-caster/convert"
	"type-caster/descriptor"
	"type-caster/primitive"
)

// Widening converts a numeric kind to a strictly larger one along a widening
// edge. Either side may be primitive or boxed; boxed sources are unboxed
// before widening and boxed targets receive a fresh pointer.
type Widening struct{}

func (Widening) Name() string { return NameWidening }

func (Widening) Resolve(src, dst descriptor.Descriptor, cur chain.Cursor) (convert.Converter, bool) {
	if !scalar(src) || !scalar(dst) {
		return cur.Next(src, dst)
	}

	widen, ok := primitive.Widen(src.Kind(), dst.Kind())
	if !ok {
		return cur.Next(src, dst)
	}

	conv := convert.Converter(widen)
	if descriptor.IsBoxed(src) {
		conv = unbox(src.Kind()).Then(conv)
	}

	if descriptor.IsBoxed(dst) {
		conv = conv.Then(convert.Box)
	}

	return convert.NullSafe(conv), true
}

// scalar reports whether d is a primitive or boxed form of a kind that has a
// primitive form.
func scalar(d descriptor.Descriptor) bool {
	return (descriptor.IsPrimitive(d) || descriptor.IsBoxed(d)) && d.Kind().HasPrimitive()
}
