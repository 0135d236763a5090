package strategy

import (
	"type-caster/chain"
	"type-caster/convert"
	"type-caster/descriptor"
)

// Identical passes values through unchanged when both descriptors are equal
// and fully resolved. It is not part of Defaults.
type Identical struct{}

func (Identical) Name() string { return NameIdentical }

func (Identical) Resolve(src, dst descriptor.Descriptor, cur chain.Cursor) (convert.Converter, bool) {
	if !src.Equal(dst) || descriptor.IsGeneric(src) {
		return cur.Next(src, dst)
	}

	return convert.NullSafe(convert.Identity), true
}
