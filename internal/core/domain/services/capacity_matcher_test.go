package services_test

import (
	"testing"

	"logistics/internal/core/domain/model/vehicle"
	"logistics/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCapacityMatcher_Match(t *testing.T) {
	matcher := services.NewCapacityMatcher()
	a := zoneA(t)

	t.Run("first_fit_prefers_earlier_vehicle", func(t *testing.T) {
		v1 := newVehicle(t, "V1", 100, 1, a)
		v2 := newVehicle(t, "V2", 200, 2, a)

		got := matcher.Match(a.ID(), requiredLoad(t, 80, 0.5), []*vehicle.Vehicle{v1, v2})

		require.NotNil(t, got)
		assert.Equal(t, "V1", got.Number())
	})

	t.Run("skips_vehicles_too_small_on_either_axis", func(t *testing.T) {
		light := newVehicle(t, "LIGHT", 50, 10, a)
		small := newVehicle(t, "SMALL", 500, 0.1, a)
		big := newVehicle(t, "BIG", 500, 10, a)

		got := matcher.Match(a.ID(), requiredLoad(t, 80, 0.5), []*vehicle.Vehicle{light, small, big})

		require.NotNil(t, got)
		assert.Equal(t, "BIG", got.Number())
	})

	t.Run("ignores_vehicles_of_other_zones", func(t *testing.T) {
		other := newZone(t, "B", [][]float64{{30, 30}, {30, 40}, {40, 40}})
		elsewhere := newVehicle(t, "ELSEWHERE", 500, 10, other)
		unzoned := newVehicle(t, "UNZONED", 500, 10, nil)

		got := matcher.Match(a.ID(), requiredLoad(t, 80, 0.5), []*vehicle.Vehicle{elsewhere, unzoned})

		assert.Nil(t, got)
	})
}

func TestCapacityMatcher_Compatible(t *testing.T) {
	matcher := services.NewCapacityMatcher()
	a := zoneA(t)
	v1 := newVehicle(t, "V1", 100, 1, a)
	tiny := newVehicle(t, "TINY", 10, 0.01, a)
	v2 := newVehicle(t, "V2", 200, 2, a)

	got := matcher.Compatible(a.ID(), requiredLoad(t, 80, 0.5), []*vehicle.Vehicle{v1, tiny, v2})

	require.Len(t, got, 2)
	assert.Equal(t, "V1", got[0].Number())
	assert.Equal(t, "V2", got[1].Number())
}
