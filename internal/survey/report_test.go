package survey

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestReport(t *testing.T) {
	t.Run("match rate and throughput", func(t *testing.T) {
		r := Report{Considered: 5, Matched: 1, Elapsed: 2 * time.Second}
		assert.InDelta(t, 20.0, r.MatchRate(), 1e-9)
		assert.InDelta(t, 2.5, r.Throughput(), 1e-9)
		assert.Contains(t, r.String(), "Match rate: 20.000%")
		assert.Contains(t, r.String(), "Total time: 2.00s")
	})

	t.Run("zero considered does not divide", func(t *testing.T) {
		r := Report{Elapsed: time.Second}
		assert.Equal(t, 0.0, r.MatchRate())
		assert.Contains(t, r.String(), "0 systems processed")
	})

	t.Run("zero elapsed does not divide", func(t *testing.T) {
		r := Report{Considered: 3}
		assert.Equal(t, 0.0, r.Throughput())
	})

	t.Run("large counts are grouped", func(t *testing.T) {
		r := Report{Considered: 1234567, Matched: 89, Elapsed: time.Second}
		assert.Contains(t, r.String(), "1,234,567")
	})
}
