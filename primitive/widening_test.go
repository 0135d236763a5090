package primitive_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"type-caster/primitive"
)

func TestWiden_Edges(t *testing.T) {
	t.Parallel()

	tests := []struct {
		from, to primitive.KindEnum
		in, want any
	}{
		{primitive.KindInt8, primitive.KindInt16, int8(-7), int16(-7)},
		{primitive.KindInt8, primitive.KindInt32, int8(-7), int32(-7)},
		{primitive.KindInt8, primitive.KindInt64, int8(-7), int64(-7)},
		{primitive.KindInt8, primitive.KindFloat32, int8(-7), float32(-7)},
		{primitive.KindInt8, primitive.KindFloat64, int8(-7), float64(-7)},
		{primitive.KindInt16, primitive.KindInt32, int16(300), int32(300)},
		{primitive.KindInt16, primitive.KindInt64, int16(300), int64(300)},
		{primitive.KindInt16, primitive.KindFloat32, int16(300), float32(300)},
		{primitive.KindInt16, primitive.KindFloat64, int16(300), float64(300)},
		{primitive.KindChar, primitive.KindInt32, primitive.Char('a'), int32(97)},
		{primitive.KindChar, primitive.KindFloat32, primitive.Char('a'), float32(97)},
		{primitive.KindChar, primitive.KindFloat64, primitive.Char('a'), float64(97)},
		{primitive.KindInt32, primitive.KindInt64, int32(1 << 30), int64(1 << 30)},
		{primitive.KindInt32, primitive.KindFloat32, int32(16777217), float32(16777216)},
		{primitive.KindInt32, primitive.KindFloat64, int32(16777217), float64(16777217)},
		{primitive.KindInt64, primitive.KindFloat32, int64(3), float32(3)},
		{primitive.KindInt64, primitive.KindFloat64, int64(1) << 40, float64(int64(1) << 40)},
		{primitive.KindFloat32, primitive.KindFloat64, float32(0.5), float64(0.5)},
	}

	require.Len(t, primitive.WideningPairs(), len(tests))

	for _, tt := range tests {
		pair := primitive.ConversionPair{From: tt.from, To: tt.to}
		t.Run(pair.String(), func(t *testing.T) {
			fn, ok := primitive.Widen(tt.from, tt.to)
			require.True(t, ok)
			assert.True(t, primitive.IsWidening(tt.from, tt.to))

			got, err := fn(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWiden_NoEdge(t *testing.T) {
	t.Parallel()

	missing := []primitive.ConversionPair{
		{From: primitive.KindInt32, To: primitive.KindInt32},
		{From: primitive.KindInt64, To: primitive.KindInt32},
		{From: primitive.KindChar, To: primitive.KindInt64},
		{From: primitive.KindChar, To: primitive.KindInt16},
		{From: primitive.KindInt16, To: primitive.KindChar},
		{From: primitive.KindBool, To: primitive.KindInt32},
		{From: primitive.KindInt32, To: primitive.KindBool},
		{From: primitive.KindFloat64, To: primitive.KindFloat32},
	}

	for _, pair := range missing {
		_, ok := primitive.Widen(pair.From, pair.To)
		assert.False(t, ok, pair.String())
	}
}

func TestWiden_UnexpectedValue(t *testing.T) {
	fn, ok := primitive.Widen(primitive.KindInt8, primitive.KindInt64)
	require.True(t, ok)

	_, err := fn(int16(1))
	assert.ErrorIs(t, err, primitive.ErrUnexpectedValue)
}
