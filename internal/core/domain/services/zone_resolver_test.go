package services_test

import (
	"testing"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/zone"
	"logistics/internal/core/domain/services"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZoneResolver_Resolve(t *testing.T) {
	resolver := services.NewZoneResolver()

	t.Run("returns_containing_zone", func(t *testing.T) {
		a := zoneA(t)
		b := newZone(t, "B", [][]float64{{30, 30}, {30, 40}, {40, 40}, {40, 30}})

		res := resolver.Resolve(point(t, 35, 35), []*zone.Zone{a, b})

		require.True(t, res.Resolved())
		assert.Equal(t, "B", res.Zone.Name())
		assert.Empty(t, res.Skipped)
	})

	t.Run("first_match_wins_for_overlapping_zones", func(t *testing.T) {
		first := zoneA(t)
		second := newZone(t, "Overlap", [][]float64{{0, 0}, {0, 30}, {30, 30}, {30, 0}})

		res := resolver.Resolve(point(t, 15, 15), []*zone.Zone{first, second})

		require.True(t, res.Resolved())
		assert.True(t, res.Zone.ID().IsEqual(first.ID()))
	})

	t.Run("no_zone_is_not_an_error", func(t *testing.T) {
		res := resolver.Resolve(point(t, 1, 1), []*zone.Zone{zoneA(t)})

		assert.False(t, res.Resolved())
		assert.Nil(t, res.Zone)
	})

	t.Run("skips_zone_with_malformed_boundary", func(t *testing.T) {
		broken, err := zone.RestoreZone(kernel.NewUUID(), "Broken", `[[1,2],[3]`)
		require.NoError(t, err)
		a := zoneA(t)

		res := resolver.Resolve(point(t, 15, 15), []*zone.Zone{broken, a})

		require.True(t, res.Resolved())
		assert.Equal(t, "A", res.Zone.Name())
		require.Len(t, res.Skipped, 1)
		assert.Equal(t, "Broken", res.Skipped[0].Zone.Name())
		require.ErrorIs(t, res.Skipped[0].Err, errs.ErrValueIsInvalid)
	})

	t.Run("is_deterministic", func(t *testing.T) {
		zones := []*zone.Zone{
			zoneA(t),
			newZone(t, "Overlap", [][]float64{{0, 0}, {0, 30}, {30, 30}, {30, 0}}),
		}
		p := point(t, 12, 18)

		first := resolver.Resolve(p, zones)
		second := resolver.Resolve(p, zones)

		assert.Equal(t, first, second)
	})
}
