package descriptor_test

import (
	"math/big"
	"reflect"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	d "type-caster/descriptor"
	"type-caster/primitive"
)

func TestParse_RoundTrip(t *testing.T) {
	t.Parallel()

	all := []d.Descriptor{
		i32, boxedI32, d.Boxed(primitive.KindBigDecimal), d.Primitive(primitive.KindChar),
		e, intArray, arrayOfListsOfWildcard, listOfBoundedWildcards, mapOfStringToSuper,
		mapOfStringToListsOfE, rawMap, d.Set(d.Str()), d.Named("math/big.Int"),
	}

	for _, want := range all {
		t.Run(want.String(), func(t *testing.T) {
			got, err := d.Parse(want.String())
			require.NoError(t, err)
			assert.Empty(t, cmp.Diff(want, got))
		})
	}
}

func TestParse_GoTypeIdentities(t *testing.T) {
	t.Parallel()

	all := []d.Descriptor{
		d.For[[]*string](),
		d.For[map[string]*customType](),
		d.For[[]map[string][]byte](),
		d.Map(d.Str(), d.For[func(int, string) (bool, error)]()),
		d.List(d.For[struct{ A, B int }]()),
		d.For[[]chan<- int](),
	}

	for _, want := range all {
		t.Run(want.String(), func(t *testing.T) {
			got, err := d.Parse(want.String())
			require.NoError(t, err)
			assert.Empty(t, cmp.Diff(want, got))
		})
	}

	got := d.MustParse("map< named:map[string]int , named:*pkg.T >")
	assert.Equal(t, "map<named:map[string]int,named:*pkg.T>", got.String())
}

func TestParse_Spacing(t *testing.T) {
	got, err := d.Parse(" list< map< string , *i32 > > ")
	require.NoError(t, err)
	assert.Equal(t, "list<map<string,*i32>>", got.String())
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in       string
		contains string
	}{
		{"", "unknown type"},
		{"i33", `did you mean "i32"`},
		{"*bigint", "already boxed"},
		{"list<i32", `expected ">"`},
		{"map<i32 i64>", `expected ","`},
		{"i32 i64", "unexpected"},
		{"$", "placeholder name"},
		{"list<named:>", "named type identity"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			_, err := d.Parse(tt.in)
			require.ErrorIs(t, err, d.ErrSyntax)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}

	assert.Panics(t, func() { d.MustParse("nope<") })
}

type customType struct{ ID int }

func TestOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		got  d.Descriptor
		want string
	}{
		{"int32", d.For[int32](), "i32"},
		{"pointer", d.For[*int64](), "*i64"},
		{"char", d.For[primitive.Char](), "char"},
		{"big", d.For[*big.Int](), "bigint"},
		{"slice", d.For[[]float32](), "[]f32"},
		{"go array", d.For[[4]bool](), "[]bool"},
		{"set", d.For[map[string]struct{}](), "set<string>"},
		{"map", d.For[map[string][]*int32](), "map<string,[]*i32>"},
		{"any", d.For[[]any](), "[]any"},
		{"named", d.For[customType](), "named:type-caster/descriptor_test.customType"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got.String())
		})
	}
}

func TestGoType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		desc string
		want reflect.Type
	}{
		{"i8", reflect.TypeFor[int8]()},
		{"*f64", reflect.TypeFor[*float64]()},
		{"bigdec", reflect.TypeFor[*big.Float]()},
		{"[]*i32", reflect.TypeFor[[]*int32]()},
		{"list<char>", reflect.TypeFor[[]primitive.Char]()},
		{"set<i64>", reflect.TypeFor[map[int64]struct{}]()},
		{"map<string,list<bool>>", reflect.TypeFor[map[string][]bool]()},
		{"any", reflect.TypeFor[any]()},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			got, ok := d.GoType(d.MustParse(tt.desc))
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	for _, desc := range []string{"$E", "list<?>", "map<[]i32,i32>", "set<[]i32>", "named:Opaque"} {
		_, ok := d.GoType(d.MustParse(desc))
		assert.False(t, ok, desc)
	}

	got, ok := d.GoType(d.For[customType]())
	require.True(t, ok)
	assert.Equal(t, reflect.TypeFor[customType](), got)
}
