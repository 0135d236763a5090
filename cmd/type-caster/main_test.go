package main

import (
	"bytes"
	"math/big"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"type-caster/chain"
	"type-caster/descriptor"
	"type-caster/internal/config"
	"type-caster/internal/diagnostic"
	"type-caster/strategy"
)

var plain = newPalette(false)

func TestWriteTrace(t *testing.T) {
	_, ok, trace := strategy.Default().Explain(
		descriptor.MustParse("[]i16"),
		descriptor.MustParse("list<i32>"))
	require.True(t, ok)

	var buf bytes.Buffer
	writeTrace(&buf, trace, plain)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, len(trace.Steps))
	assert.Regexp(t, `^autobox\s+\[\]i16 -> list<i32> passed$`, lines[0])
	assert.Regexp(t, `^container\s+\[\]i16 -> list<i32> matched$`, lines[3])
	assert.Regexp(t, `^  widening\s+i16 -> i32 matched$`, lines[len(lines)-1])
}

func TestDecodeValue(t *testing.T) {
	tests := []struct {
		src  string
		text string
		want any
	}{
		{"i32", "42", int32(42)},
		{"*f64", "1.5", ptr(1.5)},
		{"*i8", "null", (*int8)(nil)},
		{"[]i16", "[1, 2, 3]", []int16{1, 2, 3}},
		{"set<string>", "{a: {}, b: {}}", map[string]struct{}{"a": {}, "b": {}}},
		{"map<string,bool>", "{x: true}", map[string]bool{"x": true}},
		{"bigint", "123456789012345678901234567890", bigInt("123456789012345678901234567890")},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			typ, ok := descriptor.GoType(descriptor.MustParse(tt.src))
			require.True(t, ok)

			got, err := decodeValue(typ, tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := decodeValue(reflect.TypeFor[int32](), "nope")
	assert.Error(t, err)

	_, err = decodeValue(reflect.TypeFor[*big.Int](), "1.5")
	assert.Error(t, err)
}

func TestEncodeValue(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, encodeValue(&buf, map[string]int64{"a": 1}))
	assert.Equal(t, "a: 1\n", buf.String())

	buf.Reset()
	require.NoError(t, encodeValue(&buf, bigInt("99")))
	assert.Equal(t, "\"99\"\n", buf.String())
}

func TestRunChecks(t *testing.T) {
	checks := []config.Check{
		{From: "[]i32", To: "list<*i32>"},
		{From: "f64", To: "i32", Unsupported: true},
		{From: "i8", To: "f32", Unsupported: true},
		{From: "i8", To: "lst<i8>"},
	}

	var buf bytes.Buffer
	failed := runChecks(&buf, strategy.Default(), checks, plain)
	assert.Equal(t, 2, failed)

	out := buf.String()
	assert.Contains(t, out, "ok []i32 -> list<*i32>: supported")
	assert.Contains(t, out, "ok f64 -> i32: unsupported")
	assert.Contains(t, out, "FAIL i8 -> f32: expected unsupported")
	assert.Contains(t, out, "FAIL i8 -> lst<i8>")
}

func TestWriteDiagnostics(t *testing.T) {
	diags := config.Validate(&config.ChainFile{Version: "1", Strategies: []string{"autobx"}})

	var buf bytes.Buffer
	writeDiagnostics(&buf, diags, plain)
	assert.Equal(t, "error: autobx: [unknown_strategy] unknown strategy (did you mean \"autobox\"?)\n", buf.String())

	assert.Equal(t, diagnostic.SeverityError, diags.All()[0].Severity)
}

func TestWriteStrategies(t *testing.T) {
	var buf bytes.Buffer
	writeStrategies(&buf, []string{"widening", "autobox"}, plain)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, len(strategy.Names()))
	assert.Equal(t, " 2 autobox", lines[0])
	assert.Equal(t, " - container", lines[1])
	assert.Equal(t, " 1 widening", lines[len(lines)-1])
}

func TestMainConfig_Chain(t *testing.T) {
	cfg := &MainConfig{}

	var logs bytes.Buffer
	c, err := cfg.chain(&logs)
	require.NoError(t, err)
	assert.Equal(t, strategy.DefaultNames(), c.Names())

	_, ok := c.Resolve(descriptor.MustParse("i8"), descriptor.MustParse("i16"))
	assert.True(t, ok)
	assert.Empty(t, logs.String())

	cfg.Verbose = true
	c, err = cfg.chain(&logs)
	require.NoError(t, err)

	_, _ = c.Resolve(descriptor.MustParse("i8"), descriptor.MustParse("i16"))
	assert.Contains(t, logs.String(), "strategy=widening")
	assert.NotContains(t, logs.String(), "time=")

	cfg.Chain = "chain.json"
	_, err = cfg.chain(&logs)
	assert.ErrorIs(t, err, config.ErrUnknownFormat)
}

func TestMainConfig_Resolver(t *testing.T) {
	cfg := &MainConfig{}

	var logs bytes.Buffer
	r, err := cfg.resolver(config.Default(), &logs)
	require.NoError(t, err)
	assert.IsType(t, &chain.Chain{}, r)

	path := filepath.Join(t.TempDir(), "chain.yaml")
	require.NoError(t, os.WriteFile(path, []byte("version: \"1\"\nstrategies: [autobox, widening]\ncache_size: 8\n"), 0o644))

	cfg.Chain = path
	cf, err := cfg.chainFile()
	require.NoError(t, err)

	r, err = cfg.resolver(cf, &logs)
	require.NoError(t, err)
	require.IsType(t, &chain.Cached{}, r)

	for range 2 {
		_, ok := r.Resolve(descriptor.MustParse("i8"), descriptor.MustParse("*i8"))
		assert.True(t, ok)
	}
	assert.Equal(t, 1, r.(*chain.Cached).Len())

	failed := runChecks(&bytes.Buffer{}, r, []config.Check{{From: "i8", To: "i64"}}, plain)
	assert.Zero(t, failed)
	assert.Equal(t, 2, r.(*chain.Cached).Len())

	cf.Strategies = []string{"autobx"}
	_, err = cfg.resolver(cf, &logs)
	assert.ErrorContains(t, err, path)
}

func ptr[T any](v T) *T { return &v }

func bigInt(s string) *big.Int {
	n, _ := new(big.Int).SetString(s, 10)
	return n
}
