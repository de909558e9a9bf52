package dump

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/signadot/bodydump/encode"
	"github.com/signadot/bodydump/export"
	"github.com/signadot/bodydump/format"
	"github.com/signadot/bodydump/host"

	"github.com/spf13/afero"
)

const (
	// DefaultName is the dump file name without extension.
	DefaultName = "dump"
	// DefaultPath is where hosts expect the dump, relative to the working
	// directory.
	DefaultPath = DefaultName + ".json"
)

var ErrWriteFailure = errors.New("write failure")

type Config struct {
	// Fs defaults to the OS filesystem.
	Fs   afero.Fs
	Path string

	Format format.Format
	Encode []encode.EncodeOption
	Export []export.Option

	Log *slog.Logger
}

func (cfg *Config) fs() afero.Fs {
	if cfg.Fs == nil {
		return afero.NewOsFs()
	}
	return cfg.Fs
}

func (cfg *Config) path() string {
	if cfg.Path == "" {
		return DefaultPath
	}
	return cfg.Path
}

func (cfg *Config) log() *slog.Logger {
	if cfg.Log == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return cfg.Log
}

// Render exports the hierarchy of src and encodes it.
func Render(src host.Source, cfg *Config) ([]byte, error) {
	root, err := src.Root()
	if err != nil {
		return nil, err
	}
	if root == nil {
		return nil, fmt.Errorf("%w: no root body", host.ErrSourceDataUnavailable)
	}
	xOpts := append([]export.Option{export.WithLogger(cfg.log())}, cfg.Export...)
	doc, err := export.Export(root, xOpts...)
	if err != nil {
		return nil, err
	}
	buf := bytes.NewBuffer(nil)
	eOpts := append([]encode.EncodeOption{encode.EncodeFormat(cfg.Format)}, cfg.Encode...)
	if err := encode.Encode(doc, buf, eOpts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Run renders src completely and only then writes it to the configured
// path.  When Run fails nothing has been written.
func Run(src host.Source, cfg *Config) error {
	log := cfg.log()
	d, err := Render(src, cfg)
	if err != nil {
		log.Error("export failed", "error", err)
		return err
	}
	if err := WriteFile(cfg.fs(), cfg.path(), d); err != nil {
		log.Error("dump not written", "path", cfg.path(), "error", err)
		return err
	}
	log.Info("dump written", "path", cfg.path(), "bytes", len(d))
	return nil
}
