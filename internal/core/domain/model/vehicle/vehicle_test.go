package vehicle_test

import (
	"testing"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/vehicle"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func load(t *testing.T, weight, volume float64) kernel.Load {
	t.Helper()
	l, err := kernel.NewLoad(weight, volume)
	require.NoError(t, err)
	return l
}

func TestNewVehicle(t *testing.T) {
	t.Run("creates_vehicle_in_zone", func(t *testing.T) {
		id := kernel.NewUUID()
		zoneID := kernel.NewUUID()

		v, err := vehicle.NewVehicle(id, " KA-01-1234 ", load(t, 500, 2), &zoneID)

		require.NoError(t, err)
		require.NoError(t, v.Validate())
		assert.Equal(t, "KA-01-1234", v.Number())
		assert.InDelta(t, 500.0, v.MaxWeightKg(), 1e-12)
		assert.InDelta(t, 2.0, v.MaxVolumeM3(), 1e-12)
		assert.True(t, v.BelongsTo(zoneID))
		assert.False(t, v.BelongsTo(kernel.NewUUID()))
	})

	t.Run("creates_vehicle_without_zone", func(t *testing.T) {
		v, err := vehicle.NewVehicle(kernel.NewUUID(), "TRUCK-1", load(t, 500, 2), nil)

		require.NoError(t, err)
		assert.Nil(t, v.ZoneID())
		assert.False(t, v.BelongsTo(kernel.NewUUID()))
	})

	t.Run("copies_zone_id", func(t *testing.T) {
		zoneID := kernel.NewUUID()
		v, err := vehicle.NewVehicle(kernel.NewUUID(), "TRUCK-1", load(t, 500, 2), &zoneID)
		require.NoError(t, err)

		zoneID = kernel.NewUUID()

		assert.False(t, v.BelongsTo(zoneID))
	})

	t.Run("joins_validation_errors", func(t *testing.T) {
		_, err := vehicle.NewVehicle(kernel.UUID{}, "", kernel.Load{}, &kernel.UUID{})

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "vehicle_number")
		assert.Contains(t, err.Error(), "load must be created")
		assert.Contains(t, err.Error(), "zone_id")
	})
}

func TestVehicle_CanCarry(t *testing.T) {
	v, err := vehicle.NewVehicle(kernel.NewUUID(), "VAN-7", load(t, 500, 2), nil)
	require.NoError(t, err)

	assert.True(t, v.CanCarry(load(t, 500, 2)))
	assert.True(t, v.CanCarry(load(t, 1, 0.001)))
	assert.False(t, v.CanCarry(load(t, 501, 1)))
	assert.False(t, v.CanCarry(load(t, 1, 2.5)))
}
