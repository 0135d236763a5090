package primitive_test

import (
	"fmt"
	"math/big"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"type-caster/primitive"
)

func Example() {
	type IntEnum int32
	type Empty struct{}

	fmt.Println(primitive.FromReflectType(reflect.TypeOf(int32(0))))
	fmt.Println(primitive.FromReflectType(reflect.TypeOf(primitive.Char('x'))))
	fmt.Println(primitive.FromReflectType(reflect.TypeOf(big.NewInt(1))))
	fmt.Println(primitive.FromReflectType(reflect.TypeOf(IntEnum(0))))
	fmt.Println(primitive.FromReflectType(reflect.TypeOf(Empty{})))
	// Output:
	// KindInt32
	// KindChar
	// KindBigInteger
	// KindEnum(0)
	// KindEnum(0)
}

func TestRank(t *testing.T) {
	t.Parallel()

	ordered := []primitive.KindEnum{
		primitive.KindInt8, primitive.KindInt16, primitive.KindInt32,
		primitive.KindInt64, primitive.KindFloat32, primitive.KindFloat64,
	}

	prev := 0
	for _, k := range ordered {
		rank, err := primitive.Rank(k)
		require.NoError(t, err, k.String())
		assert.Greater(t, rank, prev, k.String())
		prev = rank
	}

	for _, k := range []primitive.KindEnum{
		0, primitive.KindBool, primitive.KindChar, primitive.KindBigInteger, primitive.KindBigDecimal,
	} {
		_, err := primitive.Rank(k)
		assert.ErrorIs(t, err, primitive.ErrNotRanked, k.String())
	}
}

func TestParseKind(t *testing.T) {
	t.Parallel()

	for _, name := range primitive.Names() {
		k, err := primitive.ParseKind(name)
		require.NoError(t, err)
		assert.Equal(t, name, k.ShortName())
	}

	_, err := primitive.ParseKind("int")
	assert.ErrorIs(t, err, primitive.ErrUnknownKind)
}

func TestKindPredicates(t *testing.T) {
	t.Parallel()

	assert.True(t, primitive.KindBigInteger.IsNumber())
	assert.False(t, primitive.KindBigInteger.HasPrimitive())
	assert.True(t, primitive.KindChar.HasPrimitive())
	assert.False(t, primitive.KindChar.IsNumber())
	assert.False(t, primitive.KindBool.IsNumber())
	assert.True(t, primitive.KindFloat32.IsFloat())
	assert.Equal(t, 16, primitive.KindInt16.Bits())
	assert.Equal(t, reflect.TypeFor[primitive.Char](), primitive.KindChar.GoType())
	assert.Panics(t, func() { primitive.KindBigDecimal.Bits() })
}

func TestChar_String(t *testing.T) {
	assert.Equal(t, "ж", primitive.Char('ж').String())
}
