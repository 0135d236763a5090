package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}

	return cli.NewCommandAt(&cfg.Main, "type-caster").
		WithSynopsis("type-caster [opts] command [opts]").
		WithDescription("type-caster resolves converters between type descriptors.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return mainRun(cfg, cc, args)
		}).
		WithSubs(
			ResolveCommand(cfg),
			ConvertCommand(cfg),
			CheckCommand(cfg),
			StrategiesCommand(cfg))
}

func mainRun(cfg *MainConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}

	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}

	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}

	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}

	return err
}

func ResolveCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ResolveConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}

	return cli.NewCommandAt(&cfg.Resolve, "resolve").
		WithAliases("r").
		WithSynopsis("resolve [-q] <from> <to>").
		WithDescription(resolveDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return resolve(cfg, cc, args)
		})
}

const resolveDescription = `resolve looks up a converter for a pair of descriptors and prints
every strategy invocation of the resolution.

Descriptors:
  bool i8 i16 i32 i64 f32 f64 char   primitive kinds
  *i32 bigint bigdec                 boxed kinds and big numbers
  []T list<T> set<T> map<K,V>        arrays, containers and maps
  string any named:pkg.Type          named types`

func ConvertCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ConvertConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}

	return cli.NewCommandAt(&cfg.Convert, "convert").
		WithAliases("c").
		WithSynopsis("convert [-dump] <from> <to> <yaml-value>").
		WithDescription("convert decodes a YAML value as <from>, converts it to <to> and prints the result.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return convertValue(cfg, cc, args)
		})
}

func CheckCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CheckConfig{MainConfig: mainCfg}

	return cli.NewCommandAt(&cfg.Check, "check").
		WithSynopsis("check").
		WithDescription("check validates the chain file and resolves the pairs listed under its checks.").
		WithRun(func(cc *cli.Context, args []string) error {
			return check(cfg, cc, args)
		})
}

func StrategiesCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &StrategiesConfig{MainConfig: mainCfg}

	return cli.NewCommandAt(&cfg.Strategies, "strategies").
		WithAliases("s").
		WithSynopsis("strategies").
		WithDescription("strategies lists the registered strategies; those of the chain in use are marked.").
		WithRun(func(cc *cli.Context, args []string) error {
			return listStrategies(cfg, cc, args)
		})
}
