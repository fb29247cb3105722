package services_test

import (
	"testing"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/vehicle"
	"logistics/internal/core/domain/model/zone"

	"github.com/stretchr/testify/require"
)

func newZone(t *testing.T, name string, pairs [][]float64) *zone.Zone {
	t.Helper()
	boundary, err := kernel.NewPolygonFromPairs(pairs)
	require.NoError(t, err)
	z, err := zone.NewZone(kernel.NewUUID(), name, boundary)
	require.NoError(t, err)
	return z
}

func zoneA(t *testing.T) *zone.Zone {
	t.Helper()
	return newZone(t, "A", [][]float64{{10, 10}, {10, 20}, {20, 20}, {20, 10}})
}

func newVehicle(t *testing.T, number string, weight, volume float64, z *zone.Zone) *vehicle.Vehicle {
	t.Helper()
	capacity, err := kernel.NewLoad(weight, volume)
	require.NoError(t, err)
	var zoneID *kernel.UUID
	if z != nil {
		id := z.ID()
		zoneID = &id
	}
	v, err := vehicle.NewVehicle(kernel.NewUUID(), number, capacity, zoneID)
	require.NoError(t, err)
	return v
}

func newOrder(t *testing.T, lat, lng, l, w, h, weight float64) *order.Order {
	t.Helper()
	dims, err := kernel.NewDimensions(l, w, h)
	require.NoError(t, err)
	pickup, err := kernel.NewGeoPoint(lat, lng)
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), "parcel", dims, weight, pickup)
	require.NoError(t, err)
	return o
}

func point(t *testing.T, lat, lng float64) kernel.GeoPoint {
	t.Helper()
	p, err := kernel.NewGeoPoint(lat, lng)
	require.NoError(t, err)
	return p
}

func requiredLoad(t *testing.T, weight, volume float64) kernel.Load {
	t.Helper()
	l, err := kernel.NewLoad(weight, volume)
	require.NoError(t, err)
	return l
}
