// Package body defines read-only access to a hierarchy of celestial bodies
// together with a simple in-memory implementation.
//
// A hierarchy has exactly one root, the primary star, whose Orbit is nil.
// Every other body has an Orbit around the body whose Satellites contain
// it. Satellites are ordered and hosts keep that order stable.
//
//	sun := body.New("Sun", 1.1723328e18, 261600e3, 432000)
//	kerbin := sun.AddSatellite(body.New("Kerbin", 3.5316e12, 600e3, 21549.425),
//	    &body.Elements{A: 13599840256})
//	kerbin.WithAtmosphere(5, 1)
package body
