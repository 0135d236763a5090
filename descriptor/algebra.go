package descriptor

import (
	"errors"
	"fmt"

	"type-caster/primitive"
)

// ErrNotNumeric is returned when a numeric size operation receives a
// descriptor outside the ordered numeric set.
var ErrNotNumeric = errors.New("descriptor is not numeric")

func IsPrimitive(d Descriptor) bool { return d.shape == ShapePrimitive }

func IsBoxed(d Descriptor) bool { return d.shape == ShapeBoxed }

func IsArray(d Descriptor) bool { return d.shape == ShapeArray }

func IsContainer(d Descriptor) bool { return d.shape == ShapeContainer }

func IsMapShape(d Descriptor) bool { return d.shape == ShapeMap }

func IsNamed(d Descriptor) bool { return d.shape == ShapeNamed }

// IsSequence reports whether d is an array or a container.
func IsSequence(d Descriptor) bool { return IsArray(d) || IsContainer(d) }

// IsString reports whether d is the string named type.
func IsString(d Descriptor) bool { return d.shape == ShapeNamed && d.name == IdentityString }

// IsPlaceholder reports whether d itself is a type parameter or wildcard.
func IsPlaceholder(d Descriptor) bool { return d.shape == ShapeGeneric }

// IsGeneric reports whether d is unresolved: a placeholder, or a composite
// with a placeholder nested at any depth.
func IsGeneric(d Descriptor) bool {
	return IsPlaceholder(d) || HasUnresolvedPlaceholder(d)
}

// HasUnresolvedPlaceholder reports whether any descriptor nested in d
// (elements, keys, values, wildcard bounds) is a placeholder.
func HasUnresolvedPlaceholder(d Descriptor) bool {
	for _, nested := range []*Descriptor{d.elem, d.key} {
		if nested != nil && IsGeneric(*nested) {
			return true
		}
	}

	return false
}

// IsNumeric reports whether d is a primitive or boxed numeric kind,
// big numbers included.
func IsNumeric(d Descriptor) bool {
	return (d.shape == ShapePrimitive || d.shape == ShapeBoxed) && d.kind.IsNumber()
}

// ElementOf returns the element descriptor of arrays and containers.
func ElementOf(d Descriptor) (Descriptor, bool) {
	if !IsSequence(d) {
		return Descriptor{}, false
	}

	return *d.elem, true
}

// KeyValueOf returns the key and value descriptors of map shapes.
func KeyValueOf(d Descriptor) (key, value Descriptor, ok bool) {
	if !IsMapShape(d) {
		return Descriptor{}, Descriptor{}, false
	}

	return *d.key, *d.elem, true
}

// BoxedFormOf maps Primitive(k) to Boxed(k) and leaves every other descriptor unchanged.
func BoxedFormOf(d Descriptor) Descriptor {
	if d.shape != ShapePrimitive {
		return d
	}

	return Boxed(d.kind)
}

// PrimitiveFormOf maps Boxed(k) to Primitive(k) when the kind has a
// primitive form and leaves every other descriptor unchanged.
func PrimitiveFormOf(d Descriptor) Descriptor {
	if d.shape != ShapeBoxed || !d.kind.HasPrimitive() {
		return d
	}

	return Primitive(d.kind)
}

// IsPrimitiveCounterpartOf reports whether p is the primitive form of the boxed descriptor b.
func IsPrimitiveCounterpartOf(p, b Descriptor) bool {
	return p.shape == ShapePrimitive && b.shape == ShapeBoxed && p.kind == b.kind
}

// IsBoxedCounterpartOf reports whether b is the boxed form of the primitive descriptor p.
func IsBoxedCounterpartOf(b, p Descriptor) bool {
	return IsPrimitiveCounterpartOf(p, b)
}

// NumericRank returns the position of d in the size order
// i8 < i16 < i32 < i64 < f32 < f64, for primitive and boxed forms alike.
func NumericRank(d Descriptor) (int, error) {
	if d.shape != ShapePrimitive && d.shape != ShapeBoxed {
		return 0, fmt.Errorf("%w: %s", ErrNotNumeric, d)
	}

	rank, err := primitive.Rank(d.kind)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %w", ErrNotNumeric, d, err)
	}

	return rank, nil
}

// CompareNumericSize returns the difference of the numeric ranks of a and b:
// negative when a is smaller, zero when equal, positive when larger.
func CompareNumericSize(a, b Descriptor) (int, error) {
	rankA, err := NumericRank(a)
	if err != nil {
		return 0, err
	}

	rankB, err := NumericRank(b)
	if err != nil {
		return 0, err
	}

	return rankA - rankB, nil
}

// MustCompareNumericSize is like CompareNumericSize but panics on a
// non-numeric descriptor.
func MustCompareNumericSize(a, b Descriptor) int {
	res, err := CompareNumericSize(a, b)
	if err != nil {
		panic(err)
	}

	return res
}
