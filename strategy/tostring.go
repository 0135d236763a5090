package strategy

import (
	"fmt"

	"type-caster/chain"
	"type-caster/convert"
	"type-caster/descriptor"
)

// ToString converts anything to the string named type using the value's
// canonical text. Boxed values are formatted as the value they point to.
type ToString struct{}

func (ToString) Name() string { return NameString }

func (ToString) Resolve(src, dst descriptor.Descriptor, cur chain.Cursor) (convert.Converter, bool) {
	if !descriptor.IsString(dst) {
		return cur.Next(src, dst)
	}

	unboxed := descriptor.IsBoxed(src) && src.Kind().HasPrimitive()

	return convert.NullSafe(func(v any) (any, error) {
		if unboxed {
			var err error
			if v, err = convert.Unbox(v); err != nil {
				return nil, err
			}
		}

		return text(v), nil
	}), true
}

func text(v any) string {
	switch v := v.(type) {
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}
