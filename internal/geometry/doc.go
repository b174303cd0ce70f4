// Package geometry loads and validates two-dimensional aerofoil surface
// geometry.
//
// A geometry file holds a reference point and two index-paired coordinate
// sequences, x_c and y_c, normalised by chord. Points trace the surface from
// the trailing edge, around the leading edge and back to the trailing edge.
//
// Loading happens in three stages, each with its own error type:
//
//   - reading the file ([ReadError])
//   - decoding JSON, YAML or TOML ([ParseError])
//   - validating the outline ([InvalidGeometryError])
//
// [Validate] applies its rules in a fixed order and reports only the first
// one that fails.
package geometry
