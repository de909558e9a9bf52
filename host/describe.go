package host

import (
	"bytes"
	"fmt"
	"io"

	"github.com/signadot/bodydump/body"

	"github.com/goccy/go-yaml"
	"github.com/spf13/afero"
)

// Description is a system description: a body with its satellites nested
// below it.  It reads from yaml or json.
type Description struct {
	Name                   string                 `yaml:"name"`
	GravitationalParameter float64                `yaml:"gravitational_parameter"`
	Radius                 float64                `yaml:"radius"`
	RotationPeriod         float64                `yaml:"rotation_period,omitempty"`
	TidallyLocked          bool                   `yaml:"tidally_locked,omitempty"`
	Atmosphere             *AtmosphereDescription `yaml:"atmosphere,omitempty"`
	Orbit                  *OrbitDescription      `yaml:"orbit,omitempty"`
	Satellites             []*Description         `yaml:"satellites,omitempty"`
}

type AtmosphereDescription struct {
	ScaleHeight        float64 `yaml:"scale_height"`
	PressureMultiplier float64 `yaml:"pressure_multiplier"`
}

// OrbitDescription has angles in degrees; the mean anomaly at epoch is in
// radians.
type OrbitDescription struct {
	SemiMajorAxis               float64 `yaml:"semi_major_axis"`
	Eccentricity                float64 `yaml:"eccentricity"`
	InclinationDeg              float64 `yaml:"inclination_deg"`
	LongitudeOfAscendingNodeDeg float64 `yaml:"longitude_of_ascending_node_deg"`
	ArgumentOfPeriapsisDeg      float64 `yaml:"argument_of_periapsis_deg"`
	MeanAnomalyAtEpoch          float64 `yaml:"mean_anomaly_at_epoch"`
}

// descriptions nest no deeper than this
const maxDepth = 64

// Load reads a system description and returns its root body.
func Load(r io.Reader) (*body.CelestialBody, error) {
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	desc := &Description{}
	if err := yaml.UnmarshalWithOptions(d, desc, yaml.Strict()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDescription, err)
	}
	return desc.build("$", 0)
}

func LoadFile(fsys afero.Fs, path string) (*body.CelestialBody, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	root, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return root, nil
}

func (desc *Description) build(at string, depth int) (*body.CelestialBody, error) {
	if depth > maxDepth {
		return nil, fmt.Errorf("%w: nested deeper than %d at %s", ErrDescription, maxDepth, at)
	}
	if desc.Name == "" {
		return nil, fmt.Errorf("%w: missing name at %s", ErrDescription, at)
	}
	b := body.New(desc.Name, desc.GravitationalParameter, desc.Radius, desc.RotationPeriod)
	if desc.TidallyLocked {
		b.WithTidalLock()
	}
	if a := desc.Atmosphere; a != nil {
		b.WithAtmosphere(a.ScaleHeight, a.PressureMultiplier)
	}
	if o := desc.Orbit; o != nil {
		b.Elements = &body.Elements{
			A:            o.SemiMajorAxis,
			E:            o.Eccentricity,
			IncDeg:       o.InclinationDeg,
			LANDeg:       o.LongitudeOfAscendingNodeDeg,
			ArgPeDeg:     o.ArgumentOfPeriapsisDeg,
			MeanAnomaly0: o.MeanAnomalyAtEpoch,
		}
	}
	for i, sd := range desc.Satellites {
		sat := fmt.Sprintf("%s.satellites[%d]", at, i)
		if sd == nil {
			return nil, fmt.Errorf("%w: empty satellite at %s", ErrDescription, sat)
		}
		s, err := sd.build(sat, depth+1)
		if err != nil {
			return nil, err
		}
		b.Orbiting = append(b.Orbiting, s)
	}
	return b, nil
}

// Describe returns the system description of the hierarchy at root as
// yaml.
func Describe(root body.Body) ([]byte, error) {
	if body.IsNil(root) {
		return nil, fmt.Errorf("%w: no root body", ErrDescription)
	}
	desc, err := describe(root, 0)
	if err != nil {
		return nil, err
	}
	buf := bytes.NewBuffer(nil)
	if err := yaml.NewEncoder(buf).Encode(desc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func describe(b body.Body, depth int) (*Description, error) {
	if depth > maxDepth {
		return nil, fmt.Errorf("%w: %q nested deeper than %d", ErrDescription, b.Name(), maxDepth)
	}
	desc := &Description{
		Name:                   b.Name(),
		GravitationalParameter: b.GravParameter(),
		Radius:                 b.Radius(),
		RotationPeriod:         b.RotationPeriod(),
		TidallyLocked:          b.TidallyLocked(),
	}
	if b.HasAtmosphere() {
		desc.Atmosphere = &AtmosphereDescription{
			ScaleHeight:        b.AtmosphereScaleHeight(),
			PressureMultiplier: b.AtmospherePressureMultiplier(),
		}
	}
	if o := b.Orbit(); o != nil {
		desc.Orbit = &OrbitDescription{
			SemiMajorAxis:               o.SemiMajorAxis(),
			Eccentricity:                o.Eccentricity(),
			InclinationDeg:              o.InclinationDeg(),
			LongitudeOfAscendingNodeDeg: o.LongitudeOfAscendingNodeDeg(),
			ArgumentOfPeriapsisDeg:      o.ArgumentOfPeriapsisDeg(),
			MeanAnomalyAtEpoch:          o.MeanAnomalyAtEpoch(),
		}
	}
	for _, s := range b.Satellites() {
		if body.IsNil(s) {
			return nil, fmt.Errorf("%w: nil satellite of %q", ErrDescription, b.Name())
		}
		sd, err := describe(s, depth+1)
		if err != nil {
			return nil, err
		}
		desc.Satellites = append(desc.Satellites, sd)
	}
	return desc, nil
}
