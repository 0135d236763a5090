// Package chain implements the ordered, re-entrant resolution of converters.
//
// A Chain holds a fixed list of strategies. Resolution presents a pair of
// descriptors to the first strategy; each strategy either returns a
// converter, hands the same or a different pair to the strategy after it
// (Cursor.Next), or restarts the whole chain for an unrelated pair such as
// element types (Cursor.Restart). Falling off the end of the chain yields no
// converter, which is an ordinary outcome rather than an error.
package chain

import (
	"context"
	"log/slog"
	"strconv"

	"type-caster/convert"
	"type-caster/descriptor"
)

// DefaultMaxDepth bounds restart nesting.
const DefaultMaxDepth = 64

// Strategy is one rule of the chain.
type Strategy interface {
	// Resolve returns a converter for src -> dst, or delegates through cur
	// and returns whatever the delegation returns. It must not report a
	// mismatch any other way.
	Resolve(src, dst descriptor.Descriptor, cur Cursor) (convert.Converter, bool)
}

// StrategyFunc adapts a function to Strategy.
type StrategyFunc func(src, dst descriptor.Descriptor, cur Cursor) (convert.Converter, bool)

func (f StrategyFunc) Resolve(src, dst descriptor.Descriptor, cur Cursor) (convert.Converter, bool) {
	return f(src, dst, cur)
}

// Namer is implemented by strategies that want a readable name in traces.
type Namer interface {
	Name() string
}

// Named attaches a name to a strategy.
func Named(name string, s Strategy) Strategy {
	return named{name: name, Strategy: s}
}

type named struct {
	Strategy
	name string
}

func (n named) Name() string { return n.name }

// NameOf returns the name of a strategy, falling back to its position.
func NameOf(s Strategy, position int) string {
	if n, ok := s.(Namer); ok {
		return n.Name()
	}

	return "strategy#" + strconv.Itoa(position)
}

// Chain is immutable and safe for concurrent use.
type Chain struct {
	strategies []Strategy
	logger     *slog.Logger
	maxDepth   int
}

type Option func(*Chain)

// WithLogger emits a debug record for every strategy invocation.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Chain) {
		c.logger = logger
	}
}

// WithMaxDepth overrides DefaultMaxDepth. Non-positive values are ignored.
func WithMaxDepth(depth int) Option {
	return func(c *Chain) {
		if depth > 0 {
			c.maxDepth = depth
		}
	}
}

// New builds a chain over a copy of strategies, in the given order.
func New(strategies []Strategy, opts ...Option) *Chain {
	c := &Chain{
		strategies: append([]Strategy(nil), strategies...),
		maxDepth:   DefaultMaxDepth,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Single builds a chain holding one strategy.
func Single(s Strategy, opts ...Option) *Chain {
	return New([]Strategy{s}, opts...)
}

// Len returns the number of strategies.
func (c *Chain) Len() int { return len(c.strategies) }

// Names returns the strategy names in order.
func (c *Chain) Names() []string {
	names := make([]string, len(c.strategies))
	for i, s := range c.strategies {
		names[i] = NameOf(s, i)
	}

	return names
}

// Resolve finds a converter for src -> dst. It reports false when no
// strategy supports the pair.
func (c *Chain) Resolve(src, dst descriptor.Descriptor) (convert.Converter, bool) {
	res := &resolution{}
	if c.logger != nil {
		// steps are only recorded for the log records
		res.trace = &Trace{}
	}

	return c.invoke(src, dst, Cursor{chain: c, res: res})
}

// Explain is like Resolve and also returns every step the chain took.
func (c *Chain) Explain(src, dst descriptor.Descriptor) (convert.Converter, bool, Trace) {
	res := &resolution{trace: &Trace{}}
	conv, ok := c.invoke(src, dst, Cursor{chain: c, res: res})

	return conv, ok, *res.trace
}

// resolution is the state shared by all cursors of one Resolve call.
type resolution struct {
	trace *Trace
}

func (c *Chain) invoke(src, dst descriptor.Descriptor, cur Cursor) (convert.Converter, bool) {
	if cur.pos >= len(c.strategies) {
		return nil, false
	}

	strategy := c.strategies[cur.pos]
	cur.step = cur.res.begin(Step{
		Depth:    cur.depth,
		Position: cur.pos,
		Strategy: NameOf(strategy, cur.pos),
		From:     src,
		To:       dst,
	})

	conv, ok := strategy.Resolve(src, dst, cur)
	if conv == nil {
		ok = false
	}

	step := cur.res.end(cur.step, ok)
	if c.logger != nil {
		c.logger.LogAttrs(context.Background(), slog.LevelDebug, "resolution step",
			slog.String("strategy", step.Strategy),
			slog.Int("depth", step.Depth),
			slog.String("from", src.String()),
			slog.String("to", dst.String()),
			slog.String("outcome", step.Outcome.String()),
		)
	}

	if !ok {
		return nil, false
	}

	return conv, true
}
