package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"type-caster/chain"
	"type-caster/descriptor"
	"type-caster/internal/diagnostic"
	"type-caster/strategy"
)

func TestParse_YAML(t *testing.T) {
	data := `
version: "1"
strategies: [primitive-array, autobox, widening, map, container, string]
max_depth: 16
cache_size: 32
checks:
  - from: "[]i32"
    to: "list<*i32>"
  - from: f64
    to: i32
    unsupported: true
`

	cf, err := Parse([]byte(data), FormatYAML)
	require.NoError(t, err)

	assert.Equal(t, "1", cf.Version)
	assert.Equal(t, []string{"primitive-array", "autobox", "widening", "map", "container", "string"}, cf.Strategies)
	assert.Equal(t, 16, cf.MaxDepth)
	assert.Equal(t, 32, cf.CacheSize)
	require.Len(t, cf.Checks, 2)
	assert.Equal(t, "[]i32 -> list<*i32>", cf.Checks[0].String())
	assert.True(t, cf.Checks[1].Unsupported)
}

func TestParse_TOML(t *testing.T) {
	data := `
version = "1"
strategies = ["autobox", "widening"]
max_depth = 8

[[checks]]
from = "i8"
to = "*i8"
`

	cf, err := Parse([]byte(data), FormatTOML)
	require.NoError(t, err)

	assert.Equal(t, []string{"autobox", "widening"}, cf.Strategies)
	assert.Equal(t, 8, cf.MaxDepth)
	assert.Zero(t, cf.CacheSize)
	require.Len(t, cf.Checks, 1)
	assert.Equal(t, "*i8", cf.Checks[0].To)
}

func TestParse_TOMLUnknownField(t *testing.T) {
	_, err := Parse([]byte(`strategys = ["autobox"]`), FormatTOML)
	assert.Error(t, err)
}

func TestParse_Defaults(t *testing.T) {
	cf, err := Parse([]byte("{}"), FormatYAML)
	require.NoError(t, err)

	assert.Equal(t, CurrentVersion, cf.Version)
	assert.Equal(t, strategy.DefaultNames(), cf.Strategies)
	assert.Equal(t, Default(), cf)
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse([]byte("strategies: {"), FormatYAML)
	assert.Error(t, err)

	_, err = Parse(nil, Format(0))
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestFormatOf(t *testing.T) {
	for path, want := range map[string]Format{
		"chain.yaml":      FormatYAML,
		"dir/chain.YML":   FormatYAML,
		"/etc/chain.toml": FormatTOML,
	} {
		got, err := FormatOf(path)
		require.NoError(t, err, path)
		assert.Equal(t, want, got, path)
	}

	_, err := FormatOf("chain.json")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestWriteAndLoadFile(t *testing.T) {
	dir := t.TempDir()

	cf := Default()
	cf.MaxDepth = 12
	cf.Checks = []Check{{From: "i16", To: "f64"}}

	for _, name := range []string{"chain.yaml", "chain.toml"} {
		path := filepath.Join(dir, name)
		require.NoError(t, WriteFile(cf, path))

		loaded, err := LoadFile(path)
		require.NoError(t, err, name)
		assert.Equal(t, cf, loaded, name)
	}

	_, err := LoadFile(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		cf       *ChainFile
		errors   []string
		warnings []string
	}{
		{
			name: "default",
			cf:   Default(),
		},
		{
			name:   "nil",
			cf:     nil,
			errors: []string{"chain_file_is_nil"},
		},
		{
			name:   "unknown strategy",
			cf:     &ChainFile{Version: "1", Strategies: []string{"autobox", "widen"}},
			errors: []string{"unknown_strategy"},
		},
		{
			name:     "duplicate and misplaced",
			cf:       &ChainFile{Version: "1", Strategies: []string{"autobox", "primitive-array", "autobox"}},
			warnings: []string{"decorator_not_first", "duplicate_strategy"},
		},
		{
			name:   "limits and version",
			cf:     &ChainFile{Version: "2", Strategies: []string{"autobox"}, MaxDepth: -1, CacheSize: -1},
			errors: []string{"unsupported_version", "negative_max_depth", "negative_cache_size"},
		},
		{
			name:   "no strategies",
			cf:     &ChainFile{Version: "1"},
			errors: []string{"no_strategies"},
		},
		{
			name: "bad check",
			cf: &ChainFile{Version: "1", Strategies: []string{"autobox"}, Checks: []Check{
				{From: "i32", To: "lst<i32>"},
			}},
			errors: []string{"invalid_descriptor"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Validate(tt.cf)
			assert.Equal(t, tt.errors, codesOf(d.Errors))
			assert.Equal(t, tt.warnings, codesOf(d.Warnings))
		})
	}
}

func codesOf(ds []diagnostic.Diagnostic) []string {
	var res []string
	for _, d := range ds {
		res = append(res, d.Code)
	}

	return res
}

func TestValidate_Suggestion(t *testing.T) {
	d := Validate(&ChainFile{Version: "1", Strategies: []string{"widenning"}})
	require.Len(t, d.Errors, 1)
	assert.Equal(t, []string{strategy.NameWidening}, d.Errors[0].Suggestions)
	assert.Equal(t, "widenning", d.Errors[0].Subject)
}

func TestBuild(t *testing.T) {
	cf := &ChainFile{Version: "1", Strategies: []string{"autobox", "container"}, MaxDepth: 3}

	c, err := Build(cf)
	require.NoError(t, err)
	assert.Equal(t, []string{"autobox", "container"}, c.Names())

	_, ok := c.Resolve(descriptor.MustParse("[]i32"), descriptor.MustParse("list<*i32>"))
	assert.True(t, ok)

	// three nested restarts are allowed, a fourth is not
	_, ok = c.Resolve(descriptor.MustParse("[][][]i32"), descriptor.MustParse("[][][]*i32"))
	assert.True(t, ok)

	_, ok = c.Resolve(descriptor.MustParse("[][][][]i32"), descriptor.MustParse("[][][][]*i32"))
	assert.False(t, ok)

	_, err = Build(&ChainFile{Version: "1", Strategies: []string{"nope"}})
	assert.Error(t, err)
}

func TestNewResolver(t *testing.T) {
	r, err := NewResolver(Default())
	require.NoError(t, err)
	assert.IsType(t, &chain.Chain{}, r)

	cf := Default()
	cf.CacheSize = 4

	r, err = NewResolver(cf)
	require.NoError(t, err)
	require.IsType(t, &chain.Cached{}, r)

	_, ok := r.Resolve(descriptor.MustParse("i8"), descriptor.MustParse("i16"))
	assert.True(t, ok)
	assert.Equal(t, 1, r.(*chain.Cached).Len())
}
