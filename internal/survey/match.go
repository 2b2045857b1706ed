package survey

import "math"

// Qualifies reports whether a system is eligible for body matching:
// uninhabited, with both a position and a body list present. Missing fields
// disqualify, they are never an error.
func Qualifies(s *StarSystem) bool {
	return s.Population == 0 && s.Coords != nil && s.Bodies != nil
}

// matches evaluates the body predicate. Rings are checked first: most bodies
// in a dump have none, so this short-circuits the common case before
// touching the other fields.
func matches(b *CelestialBody) bool {
	if len(b.Rings) == 0 {
		return false
	}
	return b.IsLandable && b.AtmosphereType != nil
}

// FirstMatch scans bodies in their original order and returns the first one
// that is ringed, landable and has an atmosphere. The boolean is false when
// no body qualifies; an empty slice is simply no match.
func FirstMatch(bodies []CelestialBody) (CelestialBody, bool) {
	for i := range bodies {
		if matches(&bodies[i]) {
			return bodies[i], true
		}
	}
	return CelestialBody{}, false
}

// NewMatchedSystem assembles the output record for a qualifying system and
// its matched body. Distance is the Euclidean norm of the coords; non-finite
// inputs propagate unchanged.
func NewMatchedSystem(s *StarSystem, body CelestialBody) MatchedSystem {
	c := s.Coords
	return MatchedSystem{
		SystemName:         s.Name,
		X:                  c.X,
		Y:                  c.Y,
		Z:                  c.Z,
		BodyCount:          s.BodyCount,
		DistanceFromOrigin: math.Sqrt(c.X*c.X + c.Y*c.Y + c.Z*c.Z),
		MatchedBodyName:    body.Name,
		MatchedBody:        body,
		SystemData:         s.Bodies,
	}
}
