package host

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/signadot/bodydump/body"

	"github.com/spf13/afero"
)

var (
	ErrSourceDataUnavailable = errors.New("source data unavailable")
	ErrDescription           = errors.New("bad system description")
)

// Source provides the root of a body hierarchy.  Root fails with
// ErrSourceDataUnavailable when the host has not loaded one.
type Source interface {
	Root() (body.Body, error)
}

type SourceFunc func() (body.Body, error)

func (f SourceFunc) Root() (body.Body, error) { return f() }

// Static returns a Source for an in-memory hierarchy.
func Static(root body.Body) Source {
	return SourceFunc(func() (body.Body, error) {
		if body.IsNil(root) {
			return nil, fmt.Errorf("%w: no root body", ErrSourceDataUnavailable)
		}
		return root, nil
	})
}

// File returns a Source reading a system description from path on fsys
// each time Root is called.
func File(fsys afero.Fs, path string) Source {
	return SourceFunc(func() (body.Body, error) {
		root, err := LoadFile(fsys, path)
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %w", ErrSourceDataUnavailable, err)
		}
		if err != nil {
			return nil, err
		}
		return root, nil
	})
}
