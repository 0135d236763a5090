package chain

import (
	"context"
	"log/slog"

	"type-caster/convert"
	"type-caster/descriptor"
)

// Cursor is the position of one strategy invocation within a resolution.
// It is a value: strategies may keep and reuse it, and concurrent
// resolutions never share one.
type Cursor struct {
	chain *Chain
	res   *resolution
	pos   int
	depth int
	step  int
}

// Next hands the pair to the strategy after the current one. It reports
// false when the current strategy is the last one.
func (cur Cursor) Next(src, dst descriptor.Descriptor) (convert.Converter, bool) {
	cur.res.delegate(cur.step)

	next := cur
	next.pos++

	return cur.chain.invoke(src, dst, next)
}

// Restart resolves an unrelated pair, typically element, key or value
// types, from the first strategy with a fresh cursor one level deeper.
func (cur Cursor) Restart(src, dst descriptor.Descriptor) (convert.Converter, bool) {
	if cur.depth+1 > cur.chain.maxDepth {
		if cur.chain.logger != nil {
			cur.chain.logger.LogAttrs(context.Background(), slog.LevelWarn, "resolution depth exceeded",
				slog.Int("max_depth", cur.chain.maxDepth),
				slog.String("from", src.String()),
				slog.String("to", dst.String()),
			)
		}

		return nil, false
	}

	return cur.chain.invoke(src, dst, Cursor{
		chain: cur.chain,
		res:   cur.res,
		depth: cur.depth + 1,
	})
}

// Depth returns the restart nesting level, zero for the top-level pair.
func (cur Cursor) Depth() int { return cur.depth }

// Position returns the index of the strategy being invoked.
func (cur Cursor) Position() int { return cur.pos }
