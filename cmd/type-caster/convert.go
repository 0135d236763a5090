package main

import (
	"fmt"
	"io"
	"math/big"
	"os"
	"reflect"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/scott-cotton/cli"
	"gopkg.in/yaml.v3"

	"type-caster/descriptor"
)

var (
	bigIntType   = reflect.TypeFor[*big.Int]()
	bigFloatType = reflect.TypeFor[*big.Float]()
)

func convertValue(cfg *ConvertConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Convert.Parse(cc, args)
	if err != nil {
		return err
	}

	if len(args) != 3 {
		return fmt.Errorf("%w: usage: type-caster convert <from> <to> <yaml-value>", cli.ErrUsage)
	}

	src, dst, err := parsePair(args[0], args[1])
	if err != nil {
		return err
	}

	srcType, ok := descriptor.GoType(src)
	if !ok {
		return fmt.Errorf("values of %s cannot be built", src)
	}

	value, err := decodeValue(srcType, args[2])
	if err != nil {
		return err
	}

	cf, err := cfg.chainFile()
	if err != nil {
		return err
	}

	r, err := cfg.resolver(cf, os.Stderr)
	if err != nil {
		return err
	}

	conv, ok := r.Resolve(src, dst)
	if !ok {
		return fmt.Errorf("%w: %s -> %s", errUnsupported, src, dst)
	}

	res, err := conv(value)
	if err != nil {
		return fmt.Errorf("convert %s -> %s: %w", src, dst, err)
	}

	if cfg.Dump {
		spew.Fdump(cc.Out, res)
		return nil
	}

	return encodeValue(cc.Out, res)
}

// decodeValue reads text as YAML into a new value of type t.
func decodeValue(t reflect.Type, text string) (any, error) {
	switch t {
	case bigIntType:
		n, ok := new(big.Int).SetString(strings.TrimSpace(text), 10)
		if !ok {
			return nil, fmt.Errorf("invalid big integer %q", text)
		}

		return n, nil
	case bigFloatType:
		f, ok := new(big.Float).SetString(strings.TrimSpace(text))
		if !ok {
			return nil, fmt.Errorf("invalid big decimal %q", text)
		}

		return f, nil
	}

	ptr := reflect.New(t)
	if err := yaml.Unmarshal([]byte(text), ptr.Interface()); err != nil {
		return nil, fmt.Errorf("decode %s value: %w", t, err)
	}

	return ptr.Elem().Interface(), nil
}

// encodeValue writes v as YAML. Big numbers are written as their decimal text.
func encodeValue(w io.Writer, v any) error {
	switch n := v.(type) {
	case *big.Int:
		v = n.String()
	case *big.Float:
		v = n.Text('g', -1)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode result: %w", err)
	}

	return enc.Close()
}
