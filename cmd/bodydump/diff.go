package main

import (
	"fmt"

	"github.com/signadot/bodydump/dump"

	"github.com/scott-cotton/cli"
	"github.com/spf13/afero"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	file := cfg.dumpPath("")
	switch len(args) {
	case 0:
	case 1:
		file = args[0]
	default:
		return fmt.Errorf("%w: diff takes at most one file", cli.ErrUsage)
	}
	old, err := afero.ReadFile(afero.NewOsFs(), file)
	if err != nil {
		return fmt.Errorf("could not read %q: %w", file, err)
	}
	dCfg := cfg.dumpConfig()
	dCfg.Format = cfg.formatFor(file)
	cur, err := dump.Render(cfg.source(), dCfg)
	if err != nil {
		return err
	}
	d := dump.Diff(old, cur)
	if d == "" {
		return nil
	}
	fmt.Fprint(cc.Out, d)
	return cli.ExitCodeErr(1)
}
