package survey

import "encoding/json"

// Coords is a galactic position in light years relative to the origin (Sol).
type Coords struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// CelestialBody is one entry in a system's body list. Ring descriptors are
// kept opaque; only their presence matters to the match predicate. The raw
// JSON of the body is retained so the store can persist the full record,
// including fields this tool never inspects.
type CelestialBody struct {
	Name           string            `json:"name"`
	Rings          []json.RawMessage `json:"rings"`
	IsLandable     bool              `json:"isLandable"`
	AtmosphereType *string           `json:"atmosphereType"`

	Raw json.RawMessage `json:"-"`
}

func (b *CelestialBody) UnmarshalJSON(data []byte) error {
	type alias CelestialBody
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*b = CelestialBody(a)
	b.Raw = append(json.RawMessage(nil), data...)
	return nil
}

// StarSystem is one record of the galaxy dump. Coords and Bodies are nil
// when absent from the source record; BodyCount is copied as-is and is not
// checked against len(Bodies).
type StarSystem struct {
	Name       string          `json:"name"`
	Coords     *Coords         `json:"coords"`
	Population int64           `json:"population"`
	Bodies     []CelestialBody `json:"bodies"`
	BodyCount  int64           `json:"bodyCount"`
}

// MatchedSystem is the output row for one qualifying system. Built once by
// NewMatchedSystem and never mutated afterwards.
type MatchedSystem struct {
	SystemName         string
	X, Y, Z            float64
	BodyCount          int64
	DistanceFromOrigin float64
	MatchedBodyName    string
	MatchedBody        CelestialBody
	SystemData         []CelestialBody
}

// SystemDataJSON re-assembles the original bodies sequence as a JSON array
// from the raw per-body records.
func (m *MatchedSystem) SystemDataJSON() []byte {
	buf := []byte{'['}
	for i, b := range m.SystemData {
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = append(buf, b.Raw...)
	}
	return append(buf, ']')
}
