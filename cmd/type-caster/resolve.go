package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/scott-cotton/cli"

	"type-caster/chain"
	"type-caster/descriptor"
)

var errUnsupported = errors.New("unsupported conversion")

func resolve(cfg *ResolveConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Resolve.Parse(cc, args)
	if err != nil {
		return err
	}

	if len(args) != 2 {
		return fmt.Errorf("%w: usage: type-caster resolve <from> <to>", cli.ErrUsage)
	}

	src, dst, err := parsePair(args[0], args[1])
	if err != nil {
		return err
	}

	c, err := cfg.chain(os.Stderr)
	if err != nil {
		return err
	}

	_, ok, trace := c.Explain(src, dst)

	p := cfg.palette(cc.Out)
	if !cfg.Quiet {
		writeTrace(cc.Out, trace, p)
	}

	if !ok {
		return fmt.Errorf("%w: %s -> %s", errUnsupported, src, dst)
	}

	fmt.Fprintln(cc.Out, p.ok("%s -> %s: supported", src, dst))

	return nil
}

func parsePair(from, to string) (src, dst descriptor.Descriptor, err error) {
	if src, err = descriptor.Parse(from); err != nil {
		return src, dst, fmt.Errorf("source: %w", err)
	}

	if dst, err = descriptor.Parse(to); err != nil {
		return src, dst, fmt.Errorf("target: %w", err)
	}

	return src, dst, nil
}

// writeTrace prints one line per strategy invocation, indented by restart depth.
func writeTrace(w io.Writer, trace chain.Trace, p *palette) {
	for _, step := range trace.Steps {
		outcome := step.Outcome.String()
		switch step.Outcome {
		case chain.OutcomeMatched:
			outcome = p.ok("%s", outcome)
		case chain.OutcomeDeclined:
			outcome = p.fail("%s", outcome)
		default:
			outcome = p.faint("%s", outcome)
		}

		fmt.Fprintf(w, "%s%s %s %s\n",
			strings.Repeat("  ", step.Depth),
			p.strategy("%-16s", step.Strategy),
			p.faint("%s -> %s", step.From, step.To),
			outcome)
	}
}
