package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/bodydump/dump"
	"github.com/signadot/bodydump/encode"
	"github.com/signadot/bodydump/export"
	"github.com/signadot/bodydump/format"
	"github.com/signadot/bodydump/host"

	"github.com/scott-cotton/cli"
	"github.com/spf13/afero"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	System string `cli:"name=system desc='system description file, yaml or json'"`
	Star   string `cli:"name=star desc='host name of the primary star'"`
	Color  bool   `cli:"name=color desc='encode with color'"`
	Indent string `cli:"name=indent desc='indent per nesting level, a tab by default'"`

	J bool `cli:"name=j aliases=json desc='output json'"`
	Y bool `cli:"name=y aliases=yaml desc='output yaml'"`

	OutFormat *format.Format

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

func (cfg *MainConfig) format() format.Format {
	fmat := format.JSONFormat
	if cfg.Y {
		fmat = format.YAMLFormat
	}
	if cfg.OutFormat != nil {
		fmat = *cfg.OutFormat
	}
	return fmat
}

// formatFor returns the format of the file at path: a format flag wins
// over the extension of path.
func (cfg *MainConfig) formatFor(path string) format.Format {
	if cfg.J || cfg.Y || cfg.OutFormat != nil {
		return cfg.format()
	}
	if f, ok := format.ForPath(path); ok {
		return f
	}
	return cfg.format()
}

func (cfg *MainConfig) source() host.Source {
	if cfg.System == "" {
		return host.Static(host.Kerbol())
	}
	return host.File(afero.NewOsFs(), cfg.System)
}

// dumpPath returns out, or the default dump file name for the output
// format when out is empty.
func (cfg *MainConfig) dumpPath(out string) string {
	if out != "" {
		return out
	}
	return dump.DefaultName + cfg.format().Suffix()
}

func (cfg *MainConfig) dumpConfig() *dump.Config {
	dCfg := &dump.Config{
		Format: cfg.format(),
		Export: []export.Option{export.WithStarName(cfg.Star)},
		Log:    theLog,
	}
	if cfg.Indent != "" {
		dCfg.Encode = append(dCfg.Encode, encode.EncodeIndent(cfg.Indent))
	}
	return dCfg
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	var opts []encode.EncodeOption
	if cfg.Indent != "" {
		opts = append(opts, encode.EncodeIndent(cfg.Indent))
	}
	return append(opts, cfg.colorOpts(w)...)
}

func (cfg *MainConfig) colorOpts(w io.Writer) []encode.EncodeOption {
	if cfg.Color {
		return []encode.EncodeOption{encode.EncodeColors(encode.NewColors())}
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return nil
	}
	f, ok := w.(*os.File)
	if !ok {
		return nil
	}
	if isatty.IsTerminal(f.Fd()) {
		return []encode.EncodeOption{encode.EncodeColors(encode.NewColors())}
	}
	return nil
}

type DumpConfig struct {
	*MainConfig
	Out string `cli:"name=o desc='output file'"`

	Dump *cli.Command
}

type DescribeConfig struct {
	*MainConfig
	Out string `cli:"name=o desc='output file, - for stdout'"`

	Describe *cli.Command
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}
