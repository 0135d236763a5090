package config

import (
	"fmt"

	"type-caster/chain"
	"type-caster/strategy"
)

// Build validates cf and builds its chain. Options are applied after the
// ones derived from the file.
func Build(cf *ChainFile, opts ...chain.Option) (*chain.Chain, error) {
	if err := Validate(cf).Error(); err != nil {
		return nil, fmt.Errorf("invalid chain file: %w", err)
	}

	strategies, err := strategy.Select(cf.Strategies)
	if err != nil {
		return nil, err
	}

	if cf.MaxDepth > 0 {
		opts = append([]chain.Option{chain.WithMaxDepth(cf.MaxDepth)}, opts...)
	}

	return chain.New(strategies, opts...), nil
}

// NewResolver is like Build and wraps the chain with a resolution cache
// when the file asks for one.
func NewResolver(cf *ChainFile, opts ...chain.Option) (chain.Resolver, error) {
	c, err := Build(cf, opts...)
	if err != nil {
		return nil, err
	}

	if cf.CacheSize == 0 {
		return c, nil
	}

	cached, err := chain.NewCached(c, cf.CacheSize)
	if err != nil {
		return nil, err
	}

	return cached, nil
}
