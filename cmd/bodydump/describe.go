package main

import (
	"fmt"
	"io"

	"github.com/signadot/bodydump/dump"
	"github.com/signadot/bodydump/format"
	"github.com/signadot/bodydump/host"

	"github.com/scott-cotton/cli"
	"github.com/spf13/afero"
)

// defaultDescription is where describe writes without -o.
var defaultDescription = "system" + format.YAMLFormat.Suffix()

func describe(cfg *DescribeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Describe.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 0 {
		return fmt.Errorf("%w: describe takes no arguments", cli.ErrUsage)
	}
	out := cfg.Out
	if out == "" {
		out = defaultDescription
	}
	return writeDescription(afero.NewOsFs(), cfg.source(), out, cc.Out)
}

// writeDescription writes the description of the system of src to path
// on fsys, or to w when path is "-".
func writeDescription(fsys afero.Fs, src host.Source, path string, w io.Writer) error {
	root, err := src.Root()
	if err != nil {
		return err
	}
	d, err := host.Describe(root)
	if err != nil {
		return err
	}
	if path == "-" {
		_, err := w.Write(d)
		return err
	}
	if err := dump.WriteFile(fsys, path, d); err != nil {
		return err
	}
	theLog.Info("description written", "path", path, "bytes", len(d))
	return nil
}
