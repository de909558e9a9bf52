package format

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"
)

type Format int

const (
	JSONFormat Format = iota
	YAMLFormat
)

var ErrBadFormat = errors.New("bad format")

type formatInfo struct {
	names    []string // first is canonical
	suffixes []string // first is preferred
}

var formats = [...]formatInfo{
	JSONFormat: {names: []string{"json", "j"}, suffixes: []string{".json"}},
	YAMLFormat: {names: []string{"yaml", "y", "yml"}, suffixes: []string{".yaml", ".yml"}},
}

func (f Format) info() (formatInfo, bool) {
	if f < 0 || int(f) >= len(formats) {
		return formatInfo{}, false
	}
	return formats[f], true
}

func ParseFormat(v string) (Format, error) {
	for _, f := range AllFormats() {
		if slices.Contains(formats[f].names, strings.ToLower(v)) {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

// ForPath returns the format a file name calls for by its extension.
func ForPath(path string) (Format, bool) {
	ext := strings.ToLower(filepath.Ext(path))
	for _, f := range AllFormats() {
		if slices.Contains(formats[f].suffixes, ext) {
			return f, true
		}
	}
	return 0, false
}

func (f Format) String() string {
	info, ok := f.info()
	if !ok {
		return fmt.Sprintf("Format(%d)", int(f))
	}
	return info.names[0]
}

func (f Format) MarshalText() ([]byte, error) {
	if _, ok := f.info(); !ok {
		return nil, fmt.Errorf("%w: %d", ErrBadFormat, int(f))
	}
	return []byte(f.String()), nil
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

func (f Format) IsJSON() bool { return f == JSONFormat }
func (f Format) IsYAML() bool { return f == YAMLFormat }

// Suffix returns the preferred file extension, with the dot.
func (f Format) Suffix() string {
	info, ok := f.info()
	if !ok {
		return ""
	}
	return info.suffixes[0]
}

func AllFormats() []Format {
	res := make([]Format, len(formats))
	for i := range formats {
		res[i] = Format(i)
	}
	return res
}
