package config

import (
	"fmt"

	"type-caster/descriptor"
	"type-caster/internal/diagnostic"
	"type-caster/internal/suggest"
	"type-caster/strategy"
)

// Validate checks a chain file for unknown or misplaced strategies, invalid
// limits and malformed check descriptors.
func Validate(cf *ChainFile) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if cf == nil {
		res.AddError("chain_file_is_nil", "chain file is nil", "")
		return res
	}

	if cf.Version != CurrentVersion {
		res.AddError("unsupported_version", fmt.Sprintf("unsupported version %q, want %q", cf.Version, CurrentVersion), "version")
	}

	validateStrategies(res, cf.Strategies)

	if cf.MaxDepth < 0 {
		res.AddError("negative_max_depth", fmt.Sprintf("max_depth must not be negative, got %d", cf.MaxDepth), "max_depth")
	}

	if cf.CacheSize < 0 {
		res.AddError("negative_cache_size", fmt.Sprintf("cache_size must not be negative, got %d", cf.CacheSize), "cache_size")
	}

	for i, check := range cf.Checks {
		subject := fmt.Sprintf("checks[%d]", i)
		for _, text := range []string{check.From, check.To} {
			if _, err := descriptor.Parse(text); err != nil {
				res.AddError("invalid_descriptor", err.Error(), subject)
			}
		}
	}

	return res
}

func validateStrategies(res *diagnostic.Diagnostics, names []string) {
	if len(names) == 0 {
		res.AddError("no_strategies", "chain has no strategies", "strategies")
		return
	}

	known := strategy.Names()
	seen := map[string]struct{}{}

	for i, name := range names {
		if _, ok := strategy.Lookup(name); !ok {
			if best, ok := suggest.Closest(name, known); ok {
				res.AddError("unknown_strategy", "unknown strategy", name, best)
			} else {
				res.AddError("unknown_strategy", "unknown strategy", name)
			}

			continue
		}

		if _, ok := seen[name]; ok {
			res.AddWarning("duplicate_strategy", "strategy is listed more than once, later entries are unreachable for pairs it handles", name)
			continue
		}

		seen[name] = struct{}{}

		if name == strategy.NamePrimitiveArray && i > 0 {
			res.AddWarning("decorator_not_first",
				fmt.Sprintf("primitive-array only decorates strategies after it, found at position %d", i), name)
		}
	}
}
