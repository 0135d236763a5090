package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"type-caster/chain"
	"type-caster/internal/config"
)

type MainConfig struct {
	Chain   string `cli:"name=chain desc='chain file (.yaml, .yml or .toml), default strategies otherwise'"`
	Verbose bool   `cli:"name=v aliases=verbose desc='log every resolution step'"`
	Color   bool   `cli:"name=color desc='color output even when not writing to a terminal'"`

	Main *cli.Command
}

type ResolveConfig struct {
	*MainConfig
	Quiet bool `cli:"name=q desc='only report whether the pair resolves'"`

	Resolve *cli.Command
}

type ConvertConfig struct {
	*MainConfig
	Dump bool `cli:"name=dump desc='dump the result with its Go types instead of YAML'"`

	Convert *cli.Command
}

type CheckConfig struct {
	*MainConfig

	Check *cli.Command
}

type StrategiesConfig struct {
	*MainConfig

	Strategies *cli.Command
}

// chainFile loads the configured chain file, or the default one.
func (cfg *MainConfig) chainFile() (*config.ChainFile, error) {
	if cfg.Chain == "" {
		return config.Default(), nil
	}

	return config.LoadFile(cfg.Chain)
}

func (cfg *MainConfig) chain(logOut io.Writer) (*chain.Chain, error) {
	cf, err := cfg.chainFile()
	if err != nil {
		return nil, err
	}

	c, err := config.Build(cf, chain.WithLogger(newLogger(logOut, cfg.Verbose)))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", cfg.chainName(), err)
	}

	return c, nil
}

// resolver is like chain, with the resolution cache of the chain file.
func (cfg *MainConfig) resolver(cf *config.ChainFile, logOut io.Writer) (chain.Resolver, error) {
	r, err := config.NewResolver(cf, chain.WithLogger(newLogger(logOut, cfg.Verbose)))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", cfg.chainName(), err)
	}

	return r, nil
}

func (cfg *MainConfig) chainName() string {
	if cfg.Chain == "" {
		return "default chain"
	}

	return cfg.Chain
}

// palette returns the output colors for w.
func (cfg *MainConfig) palette(w io.Writer) *palette {
	if cfg.Color {
		return newPalette(true)
	}

	f, ok := w.(*os.File)

	return newPalette(ok && isatty.IsTerminal(f.Fd()))
}

type palette struct {
	ok, fail, faint, strategy func(string, ...any) string
}

func newPalette(enabled bool) *palette {
	if !enabled {
		plain := fmt.Sprintf
		return &palette{ok: plain, fail: plain, faint: plain, strategy: plain}
	}

	return &palette{
		ok:       colorFunc(color.New(color.FgGreen)),
		fail:     colorFunc(color.New(color.FgRed)),
		faint:    colorFunc(color.New(color.Faint)),
		strategy: colorFunc(color.RGB(196, 96, 16)),
	}
}

// colorFunc forces c on, the terminal check has already been made.
func colorFunc(c *color.Color) func(string, ...any) string {
	c.EnableColor()
	return c.SprintfFunc()
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}

			return a
		},
	}))
}
