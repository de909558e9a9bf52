package export

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"reflect"

	"github.com/signadot/bodydump/body"
	"github.com/signadot/bodydump/debug"
	"github.com/signadot/bodydump/ir"
)

var ErrMalformedHierarchy = errors.New("malformed hierarchy")

type Exporter struct {
	log     *slog.Logger
	renames map[string]string
}

type Option func(*Exporter)

func WithLogger(l *slog.Logger) Option {
	return func(x *Exporter) {
		if l != nil {
			x.log = l
		}
	}
}

// WithStarName makes a root named name export as StarName, in addition
// to HostStarName.
func WithStarName(name string) Option {
	return func(x *Exporter) {
		if name != "" {
			x.renames[name] = StarName
		}
	}
}

func New(opts ...Option) *Exporter {
	x := &Exporter{
		log:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		renames: rootRenames(),
	}
	for _, opt := range opts {
		opt(x)
	}
	return x
}

// Export returns the flattened document of the hierarchy rooted at root.
func Export(root body.Body, opts ...Option) (*ir.Node, error) {
	return New(opts...).Export(root)
}

func (x *Exporter) Export(root body.Body) (*ir.Node, error) {
	rec, err := x.Walk(root)
	if err != nil {
		return nil, err
	}
	doc := &ir.Node{Type: ir.ObjectType}
	for _, r := range rec.Flatten() {
		err := doc.Set(r.Name, r.Node())
		if errors.Is(err, ir.ErrDuplicate) {
			x.log.Warn("duplicate body name in dump", "body", r.Name)
			continue
		}
		if err != nil {
			return nil, err
		}
	}
	return doc, nil
}

type visit struct {
	b       body.Body
	primary string
	parent  *Record
	depth   int
}

// Walk builds the record tree of the hierarchy rooted at root, visiting
// bodies depth first in pre-order.
func (x *Exporter) Walk(root body.Body) (*Record, error) {
	if body.IsNil(root) {
		return nil, fmt.Errorf("%w: no root body", ErrMalformedHierarchy)
	}
	var (
		top   *Record
		seen  = map[body.Body]string{}
		stack = []visit{{b: root}}
	)
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if body.IsNil(v.b) {
			return nil, fmt.Errorf("%w: nil satellite of %q", ErrMalformedHierarchy, v.primary)
		}
		if reflect.TypeOf(v.b).Comparable() {
			if prev, ok := seen[v.b]; ok {
				return nil, fmt.Errorf("%w: %q reached again from %q, first from %q",
					ErrMalformedHierarchy, v.b.Name(), v.primary, prev)
			}
			seen[v.b] = v.primary
		}
		rec := x.record(v.b, v.parent == nil, v.primary)
		if debug.Export() {
			debug.Logf("record %s (depth %d):\n%v", rec.Name, v.depth, rec.Node())
		}
		if v.parent == nil {
			top = rec
		} else {
			v.parent.Satellites = append(v.parent.Satellites, rec)
		}
		sats := v.b.Satellites()
		for i := len(sats) - 1; i >= 0; i-- {
			stack = append(stack, visit{
				b:       sats[i],
				primary: rec.Name,
				parent:  rec,
				depth:   v.depth + 1,
			})
		}
	}
	return top, nil
}

func (x *Exporter) record(b body.Body, isRoot bool, primary string) *Record {
	rec := &Record{
		Name:          b.Name(),
		GravParameter: b.GravParameter(),
		Radius:        b.Radius(),
	}
	if isRoot {
		rec.Name = x.rootName(rec.Name)
	}
	if !b.TidallyLocked() {
		p := b.RotationPeriod()
		rec.RotationPeriod = &p
	}
	if b.HasAtmosphere() {
		rec.Atmosphere = &Atmosphere{
			PressureScaleHeight: b.AtmosphereScaleHeight() * ScaleHeightFactor,
			PressureAtSeaLevel:  b.AtmospherePressureMultiplier() * StandardAtmosphere,
		}
	}
	o := b.Orbit()
	switch {
	case o == nil:
		if !isRoot {
			x.log.Warn("satellite without orbit", "body", rec.Name, "primary", primary)
		}
	case isRoot:
		x.log.Warn("root body has an orbit, not exporting it", "body", rec.Name)
	default:
		rec.Orbit = &Orbit{
			Primary:                  primary,
			SemiMajorAxis:            o.SemiMajorAxis(),
			Eccentricity:             o.Eccentricity(),
			Inclination:              radians(o.InclinationDeg()),
			LongitudeOfAscendingNode: radians(o.LongitudeOfAscendingNodeDeg()),
			ArgumentOfPeriapsis:      radians(o.ArgumentOfPeriapsisDeg()),
			MeanAnomalyAtEpoch:       o.MeanAnomalyAtEpoch(),
		}
	}
	return rec
}
