package slicer

// Scale is the process-wide fixed-point scale factor mapping millimeters to
// coord units: coord = round(mm * Scale). It is a named constant, never a
// runtime parameter, so that every coord produced anywhere in the process
// shares one fixed-point grid.
const Scale = 1e6

// PlaneEpsilonMM is the absolute epsilon, in millimeters, used to classify a
// mesh vertex as lying exactly on a slicing plane. zSign applies it
// directly against raw float32 vertex heights, before any coordinate is
// scaled into the coord domain, since vertex Z heights themselves are
// never converted to coord (only the 2D cross-section points are).
const PlaneEpsilonMM = 1e-6

// PlaneEpsilon is PlaneEpsilonMM expressed in coord units, for callers that
// need the tolerance in the scaled 2D domain instead.
const PlaneEpsilon coord = PlaneEpsilonMM * Scale

// EndpointTolerance is the Phase B tolerant-join search radius, in coord
// units, used by the ring stitcher when exact endpoint matching fails to
// close a chain.
const EndpointTolerance coord = 10

// DefaultMaxGapMM is the default maximum bridge length for gap closing, in
// millimeters.
const DefaultMaxGapMM = 2.0

// DefaultMaxAngleDeg is the default maximum angular deflection, in degrees,
// allowed at a gap-closing bridge.
const DefaultMaxAngleDeg = 45.0
