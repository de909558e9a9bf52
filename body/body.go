package body

import "reflect"

// Body is read-only access to a celestial body owned by a host.
type Body interface {
	Name() string
	GravParameter() float64
	Radius() float64

	// TidallyLocked reports whether the rotation period equals the
	// orbital period, in which case RotationPeriod is not meaningful.
	TidallyLocked() bool
	RotationPeriod() float64

	HasAtmosphere() bool
	AtmosphereScaleHeight() float64
	AtmospherePressureMultiplier() float64

	// Orbit returns nil for the root of a hierarchy.
	Orbit() Orbit
	Satellites() []Body
}

// Orbit is read-only access to the orbital elements of a body around its
// primary. Angles are in degrees.
type Orbit interface {
	SemiMajorAxis() float64
	Eccentricity() float64
	InclinationDeg() float64
	LongitudeOfAscendingNodeDeg() float64
	ArgumentOfPeriapsisDeg() float64
	MeanAnomalyAtEpoch() float64
}

// Atmosphere describes a body atmosphere as hosts store it: the scale
// height in kilometers and the sea level pressure as a multiple of one
// standard atmosphere.
type Atmosphere struct {
	ScaleHeight        float64
	PressureMultiplier float64
}

// CelestialBody is an in-memory Body.
type CelestialBody struct {
	BodyName   string
	Mu         float64
	MeanRadius float64
	RotPeriod  float64
	Locked     bool
	Air        *Atmosphere
	Elements   *Elements
	Orbiting   []*CelestialBody
}

// New returns a body without orbit, atmosphere or satellites.
func New(name string, mu, radius, rotPeriod float64) *CelestialBody {
	return &CelestialBody{
		BodyName:   name,
		Mu:         mu,
		MeanRadius: radius,
		RotPeriod:  rotPeriod,
	}
}

func (b *CelestialBody) WithAtmosphere(scaleHeight, pressureMultiplier float64) *CelestialBody {
	b.Air = &Atmosphere{ScaleHeight: scaleHeight, PressureMultiplier: pressureMultiplier}
	return b
}

func (b *CelestialBody) WithTidalLock() *CelestialBody {
	b.Locked = true
	return b
}

// AddSatellite makes sat orbit b along e and appends it after the
// existing satellites of b.
func (b *CelestialBody) AddSatellite(sat *CelestialBody, e *Elements) *CelestialBody {
	sat.Elements = e
	b.Orbiting = append(b.Orbiting, sat)
	return sat
}

func (b *CelestialBody) Name() string            { return b.BodyName }
func (b *CelestialBody) GravParameter() float64  { return b.Mu }
func (b *CelestialBody) Radius() float64         { return b.MeanRadius }
func (b *CelestialBody) TidallyLocked() bool     { return b.Locked }
func (b *CelestialBody) RotationPeriod() float64 { return b.RotPeriod }
func (b *CelestialBody) HasAtmosphere() bool     { return b.Air != nil }

func (b *CelestialBody) AtmosphereScaleHeight() float64 {
	if b.Air == nil {
		return 0
	}
	return b.Air.ScaleHeight
}

func (b *CelestialBody) AtmospherePressureMultiplier() float64 {
	if b.Air == nil {
		return 0
	}
	return b.Air.PressureMultiplier
}

func (b *CelestialBody) Orbit() Orbit {
	// a typed nil would not compare equal to nil
	if b.Elements == nil {
		return nil
	}
	return b.Elements
}

func (b *CelestialBody) Satellites() []Body {
	res := make([]Body, len(b.Orbiting))
	for i, sat := range b.Orbiting {
		if sat != nil {
			res[i] = sat
		}
	}
	return res
}

// Elements are Keplerian orbital elements with angles in degrees and the
// mean anomaly at epoch in radians.
type Elements struct {
	A, E         float64
	IncDeg       float64
	LANDeg       float64
	ArgPeDeg     float64
	MeanAnomaly0 float64
}

func (e *Elements) SemiMajorAxis() float64               { return e.A }
func (e *Elements) Eccentricity() float64                { return e.E }
func (e *Elements) InclinationDeg() float64              { return e.IncDeg }
func (e *Elements) LongitudeOfAscendingNodeDeg() float64 { return e.LANDeg }
func (e *Elements) ArgumentOfPeriapsisDeg() float64      { return e.ArgPeDeg }
func (e *Elements) MeanAnomalyAtEpoch() float64          { return e.MeanAnomaly0 }

// IsNil reports whether b is nil or an interface holding a nil pointer,
// map, slice or func.
func IsNil(b Body) bool {
	if b == nil {
		return true
	}
	v := reflect.ValueOf(b)
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func:
		return v.IsNil()
	}
	return false
}
