package ingest

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readAll(t *testing.T, input string) []string {
	t.Helper()
	r := NewReader(strings.NewReader(input))
	var names []string
	for {
		sys, err := r.Next()
		if err == io.EOF {
			return names
		}
		require.NoError(t, err)
		names = append(names, sys.Name)
	}
}

func TestReader(t *testing.T) {
	t.Run("json array", func(t *testing.T) {
		input := `[
  {"name":"Sol","population":17},
  {"name":"Alioth","population":0}
]`
		assert.Equal(t, []string{"Sol", "Alioth"}, readAll(t, input))
	})

	t.Run("newline delimited objects", func(t *testing.T) {
		input := `{"name":"Sol"}` + "\n" + `{"name":"Achenar"}` + "\n"
		assert.Equal(t, []string{"Sol", "Achenar"}, readAll(t, input))
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, readAll(t, ""))
	})

	t.Run("empty array", func(t *testing.T) {
		assert.Empty(t, readAll(t, "[]"))
	})

	t.Run("absent fields decode as nil", func(t *testing.T) {
		r := NewReader(strings.NewReader(`[{"name":"Nowhere"}]`))
		sys, err := r.Next()
		require.NoError(t, err)
		assert.Nil(t, sys.Coords)
		assert.Nil(t, sys.Bodies)
		assert.Zero(t, sys.Population)
	})

	t.Run("explicit nulls decode as nil", func(t *testing.T) {
		r := NewReader(strings.NewReader(`[{"name":"N","coords":null,"bodies":null}]`))
		sys, err := r.Next()
		require.NoError(t, err)
		assert.Nil(t, sys.Coords)
		assert.Nil(t, sys.Bodies)
	})

	t.Run("nested bodies decode with raw retained", func(t *testing.T) {
		input := `[{"name":"N","bodies":[{"name":"N 1","isLandable":true,"rings":[{"name":"A"}],"atmosphereType":"Thin"}]}]`
		r := NewReader(strings.NewReader(input))
		sys, err := r.Next()
		require.NoError(t, err)
		require.Len(t, sys.Bodies, 1)
		b := sys.Bodies[0]
		assert.Equal(t, "N 1", b.Name)
		assert.True(t, b.IsLandable)
		assert.Len(t, b.Rings, 1)
		assert.NotEmpty(t, b.Raw)
	})

	t.Run("malformed json is an error", func(t *testing.T) {
		r := NewReader(strings.NewReader(`[{"name":"ok"},{"name":`))
		_, err := r.Next()
		require.NoError(t, err)
		_, err = r.Next()
		assert.Error(t, err)
	})
}
