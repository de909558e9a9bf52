package host

import (
	"math"

	"github.com/signadot/bodydump/body"
)

type stockBody struct {
	name   string
	parent string
	mu     float64 // m^3/s^2
	radius float64 // m
	rot    float64 // s
	locked bool

	// semi-major axis (m), eccentricity, then degrees: mean anomaly at
	// epoch, inclination, ascending node, argument of periapsis
	a, e, m0, inc, lan, argPe float64

	// scale height (km), pressure (atm); zero scale height for airless
	scaleHeight, pressure float64
}

// stock Kerbol system, parents before satellites
var stockBodies = []stockBody{
	// star
	{name: "Sun", mu: 1.1723328e18, radius: 261600e3, rot: 432000},

	// planets
	{
		name: "Moho", parent: "Sun", mu: 1.6860938e11, radius: 250e3, rot: 1210000,
		a: 5263138304, e: 0.20, m0: 180, inc: 7.000, lan: 70.0, argPe: 15,
	},
	{
		name: "Eve", parent: "Sun", mu: 8.1717302e12, radius: 700e3, rot: 80500,
		a: 9832684544, e: 0.01, m0: 180, inc: 2.100, lan: 15.0, argPe: 0,
		scaleHeight: 7, pressure: 5,
	},
	{
		name: "Kerbin", parent: "Sun", mu: 3.5316e12, radius: 600e3, rot: 21600,
		a: 13599840256, e: 0.00, m0: 180, inc: 0.000, lan: 0.0, argPe: 0,
		scaleHeight: 5, pressure: 1,
	},
	{
		name: "Duna", parent: "Sun", mu: 3.0136321e11, radius: 320e3, rot: 65517.859,
		a: 20726155264, e: 0.05, m0: 180, inc: 0.060, lan: 135.5, argPe: 0,
		scaleHeight: 3, pressure: 0.2,
	},
	{
		name: "Dres", parent: "Sun", mu: 2.1484489e10, radius: 138e3, rot: 34800,
		a: 40839348203, e: 0.14, m0: 180, inc: 5.000, lan: 280.0, argPe: 90,
	},
	{
		name: "Jool", parent: "Sun", mu: 2.82528e14, radius: 6000e3, rot: 36000,
		a: 68773560320, e: 0.05, m0: 6, inc: 1.304, lan: 52.0, argPe: 0,
		scaleHeight: 10, pressure: 15,
	},
	{
		name: "Eeloo", parent: "Sun", mu: 7.4410815e10, radius: 210e3, rot: 19460,
		a: 90118820000, e: 0.26, m0: 180, inc: 6.150, lan: 50.0, argPe: 260,
	},

	// moons
	{
		name: "Gilly", parent: "Eve", mu: 8289449.8, radius: 13e3, rot: 28255,
		a: 31500000, e: 0.55, m0: 52, inc: 12.000, lan: 80.0, argPe: 10,
	},
	{
		name: "Mun", parent: "Kerbin", mu: 6.5138398e10, radius: 200e3, rot: 138984.38, locked: true,
		a: 12000000, e: 0.00, m0: 97, inc: 0.000, lan: 0.0, argPe: 0,
	},
	{
		name: "Minmus", parent: "Kerbin", mu: 1.7658e9, radius: 60e3, rot: 40400,
		a: 47000000, e: 0.00, m0: 52, inc: 6.000, lan: 78.0, argPe: 38,
	},
	{
		name: "Ike", parent: "Duna", mu: 1.8568369e10, radius: 130e3, rot: 65517.862, locked: true,
		a: 3200000, e: 0.03, m0: 97, inc: 0.200, lan: 0.0, argPe: 0,
	},
	{
		name: "Laythe", parent: "Jool", mu: 1.962e12, radius: 500e3, rot: 52980.879, locked: true,
		a: 27184000, e: 0.00, m0: 180, inc: 0.000, lan: 0.0, argPe: 0,
		scaleHeight: 4, pressure: 0.8,
	},
	{
		name: "Vall", parent: "Jool", mu: 2.074815e11, radius: 300e3, rot: 105962.09, locked: true,
		a: 43152000, e: 0.00, m0: 52, inc: 0.000, lan: 0.0, argPe: 0,
	},
	{
		name: "Tylo", parent: "Jool", mu: 2.82528e12, radius: 600e3, rot: 211926.36, locked: true,
		a: 68500000, e: 0.00, m0: 180, inc: 0.025, lan: 0.0, argPe: 0,
	},
	{
		name: "Bop", parent: "Jool", mu: 2.4868349e9, radius: 65e3, rot: 544507.40, locked: true,
		a: 128500000, e: 0.24, m0: 52, inc: 15.000, lan: 10.0, argPe: 25,
	},
	{
		name: "Pol", parent: "Jool", mu: 7.2170208e8, radius: 44e3, rot: 901902.62, locked: true,
		a: 179890000, e: 0.17, m0: 52, inc: 4.250, lan: 2.0, argPe: 15,
	},
}

// Kerbol returns a fresh copy of the stock Kerbol system.  As in the
// game, the star is named "Sun".
func Kerbol() *body.CelestialBody {
	var (
		root   *body.CelestialBody
		byName = make(map[string]*body.CelestialBody, len(stockBodies))
	)
	for i := range stockBodies {
		sb := &stockBodies[i]
		b := body.New(sb.name, sb.mu, sb.radius, sb.rot)
		if sb.locked {
			b.WithTidalLock()
		}
		if sb.scaleHeight != 0 {
			b.WithAtmosphere(sb.scaleHeight, sb.pressure)
		}
		byName[sb.name] = b
		if sb.parent == "" {
			root = b
			continue
		}
		byName[sb.parent].AddSatellite(b, &body.Elements{
			A:            sb.a,
			E:            sb.e,
			IncDeg:       sb.inc,
			LANDeg:       sb.lan,
			ArgPeDeg:     sb.argPe,
			MeanAnomaly0: sb.m0 * math.Pi / 180,
		})
	}
	return root
}
