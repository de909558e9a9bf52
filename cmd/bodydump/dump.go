package main

import (
	"fmt"

	"github.com/signadot/bodydump/dump"

	"github.com/scott-cotton/cli"
)

func dumpCmd(cfg *DumpConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Dump.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 0 {
		return fmt.Errorf("%w: dump takes no arguments", cli.ErrUsage)
	}
	dCfg := cfg.dumpConfig()
	dCfg.Path = cfg.dumpPath(cfg.Out)
	dCfg.Format = cfg.formatFor(dCfg.Path)
	hook := &dump.Hook{Source: cfg.source(), Config: dCfg}
	return hook.Start()
}
