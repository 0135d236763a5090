package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"type-caster/chain"
	"type-caster/internal/config"
	"type-caster/internal/diagnostic"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	if _, err := cfg.Check.Parse(cc, args); err != nil {
		return err
	}

	cf, err := cfg.chainFile()
	if err != nil {
		return err
	}

	p := cfg.palette(cc.Out)

	diags := config.Validate(cf)
	writeDiagnostics(cc.Out, diags, p)

	if diags.HasErrors() {
		return fmt.Errorf("%s: %d errors", cfg.chainName(), len(diags.Errors))
	}

	r, err := cfg.resolver(cf, os.Stderr)
	if err != nil {
		return err
	}

	failed := runChecks(cc.Out, r, cf.Checks, p)
	if failed > 0 {
		return fmt.Errorf("%d of %d checks failed", failed, len(cf.Checks))
	}

	fmt.Fprintln(cc.Out, p.ok("%s: %d checks passed", cfg.chainName(), len(cf.Checks)))

	return nil
}

func writeDiagnostics(w io.Writer, diags *diagnostic.Diagnostics, p *palette) {
	for _, d := range diags.All() {
		severity := d.Severity.String()
		if d.Severity == diagnostic.SeverityError {
			severity = p.fail("%s", severity)
		}

		fmt.Fprintf(w, "%s: %s\n", severity, d)
	}
}

// runChecks resolves every check and returns how many did not behave as expected.
func runChecks(w io.Writer, r chain.Resolver, checks []config.Check, p *palette) int {
	failed := 0

	for _, c := range checks {
		src, dst, err := parsePair(c.From, c.To)
		if err != nil {
			failed++
			fmt.Fprintf(w, "%s %s: %v\n", p.fail("FAIL"), c, err)

			continue
		}

		_, ok := r.Resolve(src, dst)

		want := "supported"
		if c.Unsupported {
			want = "unsupported"
		}

		if ok == c.Unsupported {
			failed++
			fmt.Fprintf(w, "%s %s -> %s: expected %s\n", p.fail("FAIL"), src, dst, want)

			continue
		}

		fmt.Fprintf(w, "%s %s -> %s: %s\n", p.ok("ok"), src, dst, want)
	}

	return failed
}
