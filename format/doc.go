// Package format names the output formats of a dump and formats the
// numbers that go into it.
//
// Numbers are written in general notation with a fixed number of
// significant digits: HighPrecision for physical and angular quantities,
// LowPrecision for eccentricity and mean anomaly.
//
//	format.General(math.Pi, format.HighPrecision) // "3.141592653589793"
//	format.General(0.2, format.LowPrecision)      // "0.2"
package format
