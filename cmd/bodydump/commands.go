package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "O",
		Aliases:     []string{"ofmt"},
		Description: "output format: json/j, yaml/y",
		Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
	})

	return cli.NewCommandAt(&cfg.Main, "bodydump").
		WithSynopsis("bodydump [opts] [command [opts]]").
		WithDescription("bodydump exports a star system to a dump document.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return bodydumpMain(cfg, cc, args)
		}).
		WithSubs(
			DumpCommand(cfg),
			ViewCommand(cfg),
			DiffCommand(cfg),
			DescribeCommand(cfg))
}

func DumpCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DumpConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Dump, "dump").
		WithAliases("d").
		WithSynopsis("dump [-o file]").
		WithDescription(dumpDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return dumpCmd(cfg, cc, args)
		})
}

const dumpDescription = `dump writes the dump of the system to a file, dump.json by default
or dump.yaml with -y.

The file is replaced only once the whole document has been produced; if
the system cannot be loaded or exported, no file is written.`

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.View, "view").
		WithAliases("v").
		WithSynopsis("view [objectpath]").
		WithDescription("print the dump, or the part of it at objectpath, such as $.Kerbin.orbit").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithSynopsis("diff [file]").
		WithDescription("compare file (default dump.json, dump.yaml with -y) to a fresh dump, exit 1 if they differ").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
}

func DescribeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DescribeConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Describe, "describe").
		WithSynopsis("describe [-o file]").
		WithDescription(describeDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return describe(cfg, cc, args)
		})
}

const describeDescription = `describe writes the system as a description file, system.yaml by
default, which -system can read back.  Edit it to seed a custom system.`
