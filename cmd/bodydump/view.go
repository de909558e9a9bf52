package main

import (
	"bytes"
	"fmt"

	"github.com/signadot/bodydump/encode"
	"github.com/signadot/bodydump/export"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) > 1 {
		return fmt.Errorf("%w: view takes at most one object path", cli.ErrUsage)
	}
	dCfg := cfg.dumpConfig()
	root, err := cfg.source().Root()
	if err != nil {
		return err
	}
	doc, err := export.Export(root, append(dCfg.Export, export.WithLogger(dCfg.Log))...)
	if err != nil {
		return err
	}
	if len(args) == 1 {
		path := args[0]
		if path == "" || path[0] != '$' {
			path = "$." + path
		}
		doc, err = doc.GetPath(path)
		if err != nil {
			return fmt.Errorf("error getting %s: %w", path, err)
		}
		if doc == nil {
			// nothing there, say nothing
			return nil
		}
	}
	buf := bytes.NewBuffer(nil)
	opts := append(cfg.encOpts(cc.Out), encode.EncodeFormat(dCfg.Format))
	if err := encode.Encode(doc, buf, opts...); err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	_, err = cc.Out.Write(buf.Bytes())
	return err
}
