// Package config loads chain configuration files.
//
// A chain file names the strategies of a chain in order, bounds its restart
// depth and the size of its resolution cache, and may list pairs that are
// expected to resolve (or not). Files are YAML (.yaml, .yml) or TOML (.toml):
//
//	version: "1"
//	strategies: [primitive-array, autobox, widening, map, container, string]
//	max_depth: 32
//	cache_size: 256
//	checks:
//	  - from: "[]i32"
//	    to: "list<*i32>"
//	  - from: "f64"
//	    to: "i32"
//	    unsupported: true
package config
