// Package strategy holds the built-in resolution strategies and a registry
// to select them by name.
//
// The canonical order returned by Defaults is autobox, widening, map,
// container, string. Earlier strategies shadow later ones for pairs both
// support.
package strategy

import (
	"errors"
	"fmt"
	"slices"

	"type-caster/chain"
)

var ErrUnknownStrategy = errors.New("unknown strategy")

// Registered strategy names.
const (
	NameAutobox        = "autobox"
	NameWidening       = "widening"
	NameMap            = "map"
	NameContainer      = "container"
	NameString         = "string"
	NamePrimitiveArray = "primitive-array"
	NameIdentical      = "identical"
)

var registry = map[string]chain.Strategy{
	NameAutobox:        Autobox{},
	NameWidening:       Widening{},
	NameMap:            Maps{},
	NameContainer:      Containers{},
	NameString:         ToString{},
	NamePrimitiveArray: PrimitiveArrays{},
	NameIdentical:      Identical{},
}

// DefaultNames returns the names of the default strategies in chain order.
func DefaultNames() []string {
	return []string{NameAutobox, NameWidening, NameMap, NameContainer, NameString}
}

// Defaults returns the built-in strategies in canonical order.
func Defaults() []chain.Strategy {
	res, _ := Select(DefaultNames())
	return res
}

// Default builds a chain over Defaults.
func Default(opts ...chain.Option) *chain.Chain {
	return chain.New(Defaults(), opts...)
}

// Lookup returns the registered strategy with the given name.
func Lookup(name string) (chain.Strategy, bool) {
	s, ok := registry[name]
	return s, ok
}

// Select looks up every name in order.
func Select(names []string) ([]chain.Strategy, error) {
	res := make([]chain.Strategy, 0, len(names))
	for _, name := range names {
		s, ok := Lookup(name)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
		}

		res = append(res, s)
	}

	return res, nil
}

// Names returns every registered name, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}
