package primitive

import (
	"errors"
	"fmt"
	"maps"
)

type ConversionPair struct {
	From, To KindEnum
}

func (p ConversionPair) String() string {
	return p.From.ShortName() + "->" + p.To.ShortName()
}

var ErrUnexpectedValue = errors.New("unexpected value for kind")

type WidenFunc func(v any) (any, error)

var widenings map[ConversionPair]WidenFunc

func init() {
	widenings = map[ConversionPair]WidenFunc{
		{KindInt8, KindInt16}:   widen[int8, int16],
		{KindInt8, KindInt32}:   widen[int8, int32],
		{KindInt8, KindInt64}:   widen[int8, int64],
		{KindInt8, KindFloat32}: widen[int8, float32],
		{KindInt8, KindFloat64}: widen[int8, float64],

		{KindInt16, KindInt32}:   widen[int16, int32],
		{KindInt16, KindInt64}:   widen[int16, int64],
		{KindInt16, KindFloat32}: widen[int16, float32],
		{KindInt16, KindFloat64}: widen[int16, float64],

		// char widens to numeric kinds only, never to the other integrals
		{KindChar, KindInt32}:   widen[Char, int32],
		{KindChar, KindFloat32}: widen[Char, float32],
		{KindChar, KindFloat64}: widen[Char, float64],

		{KindInt32, KindInt64}:   widen[int32, int64],
		{KindInt32, KindFloat32}: widen[int32, float32], // may round, as the language widening does
		{KindInt32, KindFloat64}: widen[int32, float64],

		{KindInt64, KindFloat32}: widen[int64, float32],
		{KindInt64, KindFloat64}: widen[int64, float64],

		{KindFloat32, KindFloat64}: widen[float32, float64],
	}
}

type number interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

func widen[F, T number](v any) (any, error) {
	from, ok := v.(F)
	if !ok {
		return nil, fmt.Errorf("%w: got %T, want %T", ErrUnexpectedValue, v, from)
	}

	return T(from), nil
}

// IsWidening reports whether a widening edge exists from one kind to another.
// Edges are not transitive: every pair is listed explicitly.
func IsWidening(from, to KindEnum) bool {
	_, ok := widenings[ConversionPair{from, to}]
	return ok
}

// Widen returns the conversion applying the exact widening semantics for the pair.
func Widen(from, to KindEnum) (WidenFunc, bool) {
	fn, ok := widenings[ConversionPair{from, to}]
	return fn, ok
}

// WideningPairs returns a copy of the widening edge set.
func WideningPairs() map[ConversionPair]struct{} {
	res := make(map[ConversionPair]struct{}, len(widenings))
	for pair := range maps.Keys(widenings) {
		res[pair] = struct{}{}
	}

	return res
}
