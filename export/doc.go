// Package export turns a hierarchy of celestial bodies into a flat dump
// document.
//
// # Records
//
// Walk visits the hierarchy depth first in pre-order and produces one
// Record per body:
//
//   - gravitational_parameter and radius as given
//   - rotational_period unless the body is tidally locked
//   - pressure_scale_height (scale height * 1000) and pressure_at_sea_level
//     (pressure multiplier * 101325) for bodies with an atmosphere
//   - an orbit block for every body but the root, naming the direct primary
//     and carrying the angles converted from degrees to radians
//
// The root is the only record without orbit.  A root that nevertheless
// carries an orbit is exported as if it had none and a warning is logged.
//
// # Names
//
// A root named HostStarName ("Sun") is exported as StarName ("Kerbol"),
// and its satellites name it so as their primary.  Other bodies keep their
// names, whatever they are.
//
// # Document
//
// The document is an object with one field per body, keyed by exported
// name, in pre-order: the satellites of a body, and theirs, come right
// after it and before its next sibling.  The hierarchy is only visible
// through orbit.primary.
//
// Numbers are written with format.HighPrecision significant digits, except
// eccentricity and mean anomaly at epoch which use format.LowPrecision.
//
// # Errors
//
// Walk fails with ErrMalformedHierarchy when there is no root, when a
// satellite is nil, or when a body is reached twice (a cycle or shared
// satellite).  Repeated names are only logged.
package export
