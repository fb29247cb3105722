package kernel_test

import (
	"testing"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustPoint(t *testing.T, lat, lng float64) kernel.GeoPoint {
	t.Helper()
	p, err := kernel.NewGeoPoint(lat, lng)
	require.NoError(t, err)
	return p
}

func square(t *testing.T) [][]float64 {
	t.Helper()
	return [][]float64{{10, 10}, {10, 20}, {20, 20}, {20, 10}}
}

func rotate(pairs [][]float64, k int) [][]float64 {
	out := make([][]float64, 0, len(pairs))
	out = append(out, pairs[k:]...)
	return append(out, pairs[:k]...)
}

func TestPolygon_Contains(t *testing.T) {
	polygon, err := kernel.NewPolygonFromPairs(square(t))
	require.NoError(t, err)

	tests := []struct {
		name   string
		lat    float64
		lng    float64
		inside bool
	}{
		{name: "interior_point", lat: 15, lng: 15, inside: true},
		{name: "far_outside", lat: 1, lng: 1, inside: false},
		{name: "outside_next_to_edge", lat: 20.0001, lng: 15, inside: false},
		{name: "on_vertical_edge", lat: 10, lng: 15, inside: true},
		{name: "on_horizontal_edge", lat: 15, lng: 20, inside: true},
		{name: "on_vertex", lat: 10, lng: 10, inside: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.inside, polygon.Contains(mustPoint(t, tt.lat, tt.lng)))
		})
	}
}

func TestPolygon_ContainsIsRotationInvariant(t *testing.T) {
	// Given
	pentagon := [][]float64{{0, 0}, {0, 10}, {6, 14}, {12, 10}, {12, 0}}
	probes := []kernel.GeoPoint{
		mustPoint(t, 6, 5),
		mustPoint(t, 6, 13),
		mustPoint(t, 13, 5),
		mustPoint(t, -1, -1),
		mustPoint(t, 11, 11.5),
	}
	base, err := kernel.NewPolygonFromPairs(pentagon)
	require.NoError(t, err)

	for k := 1; k < len(pentagon); k++ {
		// When
		rotated, err := kernel.NewPolygonFromPairs(rotate(pentagon, k))
		require.NoError(t, err)

		// Then
		for _, p := range probes {
			assert.Equal(t, base.Contains(p), rotated.Contains(p), "rotation %d, point %s", k, p)
		}
	}
}

func TestPolygon_ContainsConcaveShape(t *testing.T) {
	// U shape opening to the north
	u, err := kernel.NewPolygonFromPairs([][]float64{
		{0, 0}, {0, 30}, {30, 30}, {30, 20}, {10, 20}, {10, 10}, {30, 10}, {30, 0},
	})
	require.NoError(t, err)

	assert.True(t, u.Contains(mustPoint(t, 5, 15)))
	assert.False(t, u.Contains(mustPoint(t, 20, 15)))
	assert.True(t, u.Contains(mustPoint(t, 20, 25)))
}

func TestNewPolygon(t *testing.T) {
	t.Run("drops_explicit_closing_vertex", func(t *testing.T) {
		closed := append(square(t), []float64{10, 10})

		polygon, err := kernel.NewPolygonFromPairs(closed)

		require.NoError(t, err)
		assert.Len(t, polygon.Vertices(), 4)
		assert.True(t, polygon.Contains(mustPoint(t, 15, 15)))
	})

	t.Run("rejects_fewer_than_three_vertices", func(t *testing.T) {
		_, err := kernel.NewPolygonFromPairs([][]float64{{0, 0}, {1, 1}})

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects_closed_triangle_with_two_distinct_vertices", func(t *testing.T) {
		_, err := kernel.NewPolygonFromPairs([][]float64{{0, 0}, {1, 1}, {0, 0}})

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects_wrong_pair_arity", func(t *testing.T) {
		_, err := kernel.NewPolygonFromPairs([][]float64{{0, 0}, {1, 1, 1}, {2, 0}})

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects_out_of_range_vertex", func(t *testing.T) {
		_, err := kernel.NewPolygonFromPairs([][]float64{{0, 0}, {95, 1}, {2, 0}})

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("rejects_unconstructed_vertex", func(t *testing.T) {
		_, err := kernel.NewPolygon([]kernel.GeoPoint{{}, mustPoint(t, 1, 1), mustPoint(t, 2, 0)})

		require.ErrorIs(t, err, kernel.ErrGeoPointIsNotConstructed)
	})
}

func TestParsePolygon(t *testing.T) {
	t.Run("round_trips_storage_form", func(t *testing.T) {
		// Given
		original, err := kernel.NewPolygonFromPairs(square(t))
		require.NoError(t, err)

		// When
		encoded, err := original.Encode()
		require.NoError(t, err)
		parsed, err := kernel.ParsePolygon(encoded)

		// Then
		require.NoError(t, err)
		assert.Equal(t, "[[10,10],[10,20],[20,20],[20,10]]", encoded)
		assert.Equal(t, original.Pairs(), parsed.Pairs())
	})

	t.Run("rejects_malformed_json", func(t *testing.T) {
		for _, raw := range []string{"", "{}", `[["a","b"]]`, "[[1,2],[3,4]", "null"} {
			_, err := kernel.ParsePolygon(raw)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid, raw)
		}
	})
}

func TestPolygon_ZeroValue(t *testing.T) {
	var polygon kernel.Polygon

	require.ErrorIs(t, polygon.Validate(), kernel.ErrPolygonIsNotConstructed)
	assert.False(t, polygon.Contains(mustPoint(t, 0, 0)))
	_, err := polygon.Encode()
	require.Error(t, err)
}
