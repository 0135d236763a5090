package main

import (
	"fmt"
	"io"
	"slices"

	"github.com/scott-cotton/cli"

	"type-caster/strategy"
)

func listStrategies(cfg *StrategiesConfig, cc *cli.Context, args []string) error {
	if _, err := cfg.Strategies.Parse(cc, args); err != nil {
		return err
	}

	cf, err := cfg.chainFile()
	if err != nil {
		return err
	}

	writeStrategies(cc.Out, cf.Strategies, cfg.palette(cc.Out))

	return nil
}

// writeStrategies lists every registered strategy with its position in the
// chain, or "-" when the chain does not use it.
func writeStrategies(w io.Writer, inChain []string, p *palette) {
	for _, name := range strategy.Names() {
		pos := "-"
		if i := slices.Index(inChain, name); i >= 0 {
			pos = fmt.Sprint(i + 1)
		}

		fmt.Fprintf(w, "%2s %s\n", pos, p.strategy("%s", name))
	}
}
