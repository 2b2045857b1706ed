package survey

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strptr(s string) *string { return &s }

func ring() json.RawMessage { return json.RawMessage(`{"name":"A Ring"}`) }

func TestQualifies(t *testing.T) {
	base := func() *StarSystem {
		return &StarSystem{
			Name:   "Col 285 Sector",
			Coords: &Coords{X: 1, Y: 2, Z: 3},
			Bodies: []CelestialBody{},
		}
	}

	t.Run("uninhabited with coords and bodies", func(t *testing.T) {
		assert.True(t, Qualifies(base()))
	})

	t.Run("nonzero population disqualifies", func(t *testing.T) {
		s := base()
		s.Population = 5
		assert.False(t, Qualifies(s))
	})

	t.Run("nil coords disqualifies", func(t *testing.T) {
		s := base()
		s.Coords = nil
		assert.False(t, Qualifies(s))
	})

	t.Run("nil bodies disqualifies", func(t *testing.T) {
		s := base()
		s.Bodies = nil
		assert.False(t, Qualifies(s))
	})

	t.Run("empty body list still qualifies", func(t *testing.T) {
		// Filtering happens before matching; an empty list just yields
		// no match downstream.
		assert.True(t, Qualifies(base()))
	})
}

func TestFirstMatch(t *testing.T) {
	good := func(name string) CelestialBody {
		return CelestialBody{
			Name:           name,
			Rings:          []json.RawMessage{ring()},
			IsLandable:     true,
			AtmosphereType: strptr("Thin Argon"),
		}
	}

	t.Run("first qualifying body wins by order", func(t *testing.T) {
		bodies := []CelestialBody{
			{Name: "A 1"}, // no rings
			good("A 2"),
			good("A 3"),
		}
		body, ok := FirstMatch(bodies)
		require.True(t, ok)
		assert.Equal(t, "A 2", body.Name)
	})

	t.Run("empty rings slice is not ringed", func(t *testing.T) {
		b := good("B 1")
		b.Rings = []json.RawMessage{}
		_, ok := FirstMatch([]CelestialBody{b})
		assert.False(t, ok)
	})

	t.Run("not landable rejected despite rings", func(t *testing.T) {
		b := good("B 2")
		b.IsLandable = false
		_, ok := FirstMatch([]CelestialBody{b})
		assert.False(t, ok)
	})

	t.Run("nil atmosphere rejected", func(t *testing.T) {
		b := good("B 3")
		b.AtmosphereType = nil
		_, ok := FirstMatch([]CelestialBody{b})
		assert.False(t, ok)
	})

	t.Run("empty body list yields no match", func(t *testing.T) {
		_, ok := FirstMatch(nil)
		assert.False(t, ok)
		_, ok = FirstMatch([]CelestialBody{})
		assert.False(t, ok)
	})
}

func TestNewMatchedSystem(t *testing.T) {
	t.Run("pythagorean distance", func(t *testing.T) {
		s := &StarSystem{
			Name:      "Test",
			Coords:    &Coords{X: 3, Y: 4, Z: 0},
			BodyCount: 7,
		}
		m := NewMatchedSystem(s, CelestialBody{Name: "Test 1"})
		assert.Equal(t, 5.0, m.DistanceFromOrigin)
		assert.Equal(t, "Test 1", m.MatchedBodyName)
		assert.Equal(t, int64(7), m.BodyCount)
	})

	t.Run("negative coords are valid", func(t *testing.T) {
		s := &StarSystem{Coords: &Coords{X: -3, Y: -4, Z: 0}}
		m := NewMatchedSystem(s, CelestialBody{})
		assert.Equal(t, 5.0, m.DistanceFromOrigin)
		assert.Equal(t, -3.0, m.X)
	})

	t.Run("bodyCount copied without validation", func(t *testing.T) {
		// The dump's bodyCount is not required to equal len(bodies).
		s := &StarSystem{
			Coords:    &Coords{},
			BodyCount: 42,
			Bodies:    []CelestialBody{{Name: "only one"}},
		}
		m := NewMatchedSystem(s, s.Bodies[0])
		assert.Equal(t, int64(42), m.BodyCount)
		assert.Len(t, m.SystemData, 1)
	})
}

func TestCelestialBodyRawRoundTrip(t *testing.T) {
	raw := `{"name":"Eol Prou 1 a","isLandable":true,"atmosphereType":"Thin CO2","rings":[{"name":"A Ring"}],"subType":"Icy body"}`
	var b CelestialBody
	require.NoError(t, json.Unmarshal([]byte(raw), &b))

	assert.Equal(t, "Eol Prou 1 a", b.Name)
	assert.True(t, b.IsLandable)
	require.NotNil(t, b.AtmosphereType)
	assert.Equal(t, "Thin CO2", *b.AtmosphereType)
	// Fields the tool never inspects survive in the raw record.
	assert.JSONEq(t, raw, string(b.Raw))
}

func TestSystemDataJSON(t *testing.T) {
	input := `[{"name":"a"},{"name":"b","rings":[]}]`
	var bodies []CelestialBody
	require.NoError(t, json.Unmarshal([]byte(input), &bodies))

	m := MatchedSystem{SystemData: bodies}
	assert.JSONEq(t, input, string(m.SystemDataJSON()))

	empty := MatchedSystem{}
	assert.Equal(t, "[]", string(empty.SystemDataJSON()))
}
