package export

import (
	"math"

	"github.com/signadot/bodydump/format"
	"github.com/signadot/bodydump/ir"
)

const (
	// ScaleHeightFactor converts host scale heights (km) to meters.
	ScaleHeightFactor = 1000
	// StandardAtmosphere is one atmosphere in pascal.
	StandardAtmosphere = 101325
)

// Record is the exported form of one body.  Satellites hold the records
// of the bodies orbiting it, in host order.
type Record struct {
	Name           string
	GravParameter  float64
	Radius         float64
	RotationPeriod *float64
	Atmosphere     *Atmosphere
	Orbit          *Orbit
	Satellites     []*Record
}

type Atmosphere struct {
	PressureScaleHeight float64
	PressureAtSeaLevel  float64
}

// Orbit holds orbital elements with angles in radians.  Primary is the
// emitted name of the direct primary.
type Orbit struct {
	Primary                  string
	SemiMajorAxis            float64
	Eccentricity             float64
	Inclination              float64
	LongitudeOfAscendingNode float64
	ArgumentOfPeriapsis      float64
	MeanAnomalyAtEpoch       float64
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Flatten returns r and all records below it in pre-order.
func (r *Record) Flatten() []*Record {
	var res []*Record
	stack := []*Record{r}
	for len(stack) > 0 {
		x := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		res = append(res, x)
		for i := len(x.Satellites) - 1; i >= 0; i-- {
			stack = append(stack, x.Satellites[i])
		}
	}
	return res
}

// Node returns the fields of r as an object.  Satellites are not part of
// it; see Document.
func (r *Record) Node() *ir.Node {
	kvs := []ir.KeyVal{
		{Key: "gravitational_parameter", Val: high(r.GravParameter)},
		{Key: "radius", Val: high(r.Radius)},
	}
	if r.RotationPeriod != nil {
		kvs = append(kvs, ir.KeyVal{Key: "rotational_period", Val: high(*r.RotationPeriod)})
	}
	if a := r.Atmosphere; a != nil {
		kvs = append(kvs,
			ir.KeyVal{Key: "pressure_scale_height", Val: high(a.PressureScaleHeight)},
			ir.KeyVal{Key: "pressure_at_sea_level", Val: high(a.PressureAtSeaLevel)})
	}
	if o := r.Orbit; o != nil {
		kvs = append(kvs, ir.KeyVal{Key: "orbit", Val: ir.FromKeyVals([]ir.KeyVal{
			{Key: "primary", Val: ir.FromString(o.Primary)},
			{Key: "semi_major_axis", Val: high(o.SemiMajorAxis)},
			{Key: "eccentricity", Val: low(o.Eccentricity)},
			{Key: "inclination", Val: high(o.Inclination)},
			{Key: "longitude_of_ascending_node", Val: high(o.LongitudeOfAscendingNode)},
			{Key: "argument_of_periapsis", Val: high(o.ArgumentOfPeriapsis)},
			{Key: "mean_anomaly_at_epoch", Val: low(o.MeanAnomalyAtEpoch)},
		})})
	}
	return ir.FromKeyVals(kvs)
}

// Document returns the flattened document of the hierarchy at r: one
// top level field per record, keyed by name, in pre-order.
func Document(r *Record) *ir.Node {
	recs := r.Flatten()
	kvs := make([]ir.KeyVal, len(recs))
	for i, rec := range recs {
		kvs[i] = ir.KeyVal{Key: rec.Name, Val: rec.Node()}
	}
	return ir.FromKeyVals(kvs)
}

func high(v float64) *ir.Node {
	return ir.FromNumber(format.General(v, format.HighPrecision), v)
}

func low(v float64) *ir.Node {
	return ir.FromNumber(format.General(v, format.LowPrecision), v)
}
