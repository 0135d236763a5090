package config

// ChainFile is the root structure of a chain configuration file.
type ChainFile struct {
	Version string `yaml:"version" toml:"version"`
	// Strategies in chain order; empty means the default strategies.
	Strategies []string `yaml:"strategies,omitempty" toml:"strategies"`
	// MaxDepth bounds restart nesting; zero means the chain default.
	MaxDepth int `yaml:"max_depth,omitempty" toml:"max_depth"`
	// CacheSize is the number of resolved pairs to remember; zero disables caching.
	CacheSize int     `yaml:"cache_size,omitempty" toml:"cache_size"`
	Checks    []Check `yaml:"checks,omitempty" toml:"checks"`
}

// Check is a descriptor pair with its expected resolution outcome.
type Check struct {
	From string `yaml:"from" toml:"from"`
	To   string `yaml:"to" toml:"to"`
	// Unsupported expects the pair not to resolve.
	Unsupported bool `yaml:"unsupported,omitempty" toml:"unsupported"`
}

func (c Check) String() string {
	return c.From + " -> " + c.To
}

// Format is the encoding of a chain file.
type Format int

const (
	FormatYAML Format = iota + 1
	FormatTOML
)

func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatTOML:
		return "toml"
	default:
		return "unknown"
	}
}
