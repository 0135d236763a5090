package strategy

import (
	"type-caster/chain"
	"type-caster/convert"
	"type-caster/descriptor"
)

// Maps converts map shapes entry by entry. Key and value converters are
// resolved by restarting the chain; the pair is passed on when either is
// missing or the target map cannot be built.
type Maps struct{}

func (Maps) Name() string { return NameMap }

func (Maps) Resolve(src, dst descriptor.Descriptor, cur chain.Cursor) (convert.Converter, bool) {
	srcKey, srcValue, ok := descriptor.KeyValueOf(src)
	if !ok {
		return cur.Next(src, dst)
	}

	dstKey, dstValue, ok := descriptor.KeyValueOf(dst)
	if !ok {
		return cur.Next(src, dst)
	}

	mapType, ok := descriptor.GoType(dst)
	if !ok {
		return cur.Next(src, dst)
	}

	key, ok := cur.Restart(srcKey, dstKey)
	if !ok {
		return cur.Next(src, dst)
	}

	value, ok := cur.Restart(srcValue, dstValue)
	if !ok {
		return cur.Next(src, dst)
	}

	return convert.MapConverter(key, value, mapType), true
}
