// Package primitive defines the scalar kinds and the widening edges between them.
package primitive

import (
	"errors"
	"fmt"
	"math/big"
	"reflect"
	"strings"
)

//go:generate go tool stringer -type=KindEnum -output=kind_string.go

type KindEnum int

const (
	_ KindEnum = iota // skip zero value, use it as a default (invalid) value for KindEnum

	KindBool
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindFloat32
	KindFloat64
	KindChar
	KindBigInteger // numeric, but has no primitive counterpart
	KindBigDecimal // numeric, but has no primitive counterpart

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

var (
	ErrNotRanked   = errors.New("kind has no numeric size rank")
	ErrUnknownKind = errors.New("unknown primitive kind")
)

// shortNames are the textual names used by descriptor syntax and config files.
var shortNames = [...]string{
	KindBool:       "bool",
	KindInt8:       "i8",
	KindInt16:      "i16",
	KindInt32:      "i32",
	KindInt64:      "i64",
	KindFloat32:    "f32",
	KindFloat64:    "f64",
	KindChar:       "char",
	KindBigInteger: "bigint",
	KindBigDecimal: "bigdec",
}

// ranks is the fixed numeric size order, zero means "not ranked".
var ranks = [...]int{
	KindInt8:    1,
	KindInt16:   2,
	KindInt32:   3,
	KindInt64:   4,
	KindFloat32: 5,
	KindFloat64: 6,
}

func (k KindEnum) IsValid() bool {
	return k > 0 && int(k) < KindTotal
}

func (k KindEnum) IsNumber() bool {
	switch k {
	default:
		return false
	case KindInt8, KindInt16, KindInt32, KindInt64,
		KindFloat32, KindFloat64, KindBigInteger, KindBigDecimal:
		return true
	}
}

func (k KindEnum) IsInteger() bool {
	switch k {
	default:
		return false
	case KindInt8, KindInt16, KindInt32, KindInt64, KindBigInteger:
		return true
	}
}

func (k KindEnum) IsFloat() bool {
	switch k {
	default:
		return false
	case KindFloat32, KindFloat64, KindBigDecimal:
		return true
	}
}

// HasPrimitive reports whether the kind exists in both primitive and boxed forms.
func (k KindEnum) HasPrimitive() bool {
	return k.IsValid() && k != KindBigInteger && k != KindBigDecimal
}

func (k KindEnum) Bits() int {
	switch k {
	default:
		panic("only fixed size kinds has meaningful bits amount, but requested for: " + k.String())
	case KindBool, KindInt8:
		return 8
	case KindInt16:
		return 16
	case KindInt32, KindFloat32, KindChar:
		return 32
	case KindInt64, KindFloat64:
		return 64
	}
}

// ShortName returns the textual name of the kind, e.g. "i32".
func (k KindEnum) ShortName() string {
	if !k.IsValid() {
		return k.String()
	}

	return shortNames[k]
}

// Rank returns the position of the kind in the numeric size order
// i8 < i16 < i32 < i64 < f32 < f64.
func Rank(k KindEnum) (int, error) {
	if !k.IsValid() || int(k) >= len(ranks) || ranks[k] == 0 {
		return 0, fmt.Errorf("%w: %s", ErrNotRanked, k)
	}

	return ranks[k], nil
}

// ParseKind resolves a short kind name (see ShortName).
func ParseKind(name string) (KindEnum, error) {
	name = strings.TrimSpace(name)
	for k := KindEnum(1); int(k) < KindTotal; k++ {
		if shortNames[k] == name {
			return k, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// Names returns all short kind names in declaration order.
func Names() []string {
	names := make([]string, 0, KindTotal-1)
	for k := KindEnum(1); int(k) < KindTotal; k++ {
		names = append(names, shortNames[k])
	}

	return names
}

// GoType returns the Go type holding values of the kind. Big kinds are pointers.
func (k KindEnum) GoType() reflect.Type {
	switch k {
	default:
		return nil
	case KindBool:
		return reflect.TypeFor[bool]()
	case KindInt8:
		return reflect.TypeFor[int8]()
	case KindInt16:
		return reflect.TypeFor[int16]()
	case KindInt32:
		return reflect.TypeFor[int32]()
	case KindInt64:
		return reflect.TypeFor[int64]()
	case KindFloat32:
		return reflect.TypeFor[float32]()
	case KindFloat64:
		return reflect.TypeFor[float64]()
	case KindChar:
		return reflect.TypeFor[Char]()
	case KindBigInteger:
		return reflect.TypeFor[*big.Int]()
	case KindBigDecimal:
		return reflect.TypeFor[*big.Float]()
	}
}

func FromReflectType(rtype reflect.Type) KindEnum {
	if rtype == nil {
		return 0
	}

	// check if true primitive type
	switch rtype {
	case reflect.TypeOf(false):
		return KindBool
	case reflect.TypeOf(int8(0)):
		return KindInt8
	case reflect.TypeOf(int16(0)):
		return KindInt16
	case reflect.TypeOf(int32(0)):
		return KindInt32
	case reflect.TypeOf(int64(0)):
		return KindInt64
	case reflect.TypeOf(float32(0)):
		return KindFloat32
	case reflect.TypeOf(float64(0)):
		return KindFloat64
	case reflect.TypeOf(Char(0)):
		return KindChar
	case reflect.TypeOf((*big.Int)(nil)):
		return KindBigInteger
	case reflect.TypeOf((*big.Float)(nil)):
		return KindBigDecimal
	}

	return 0
}
