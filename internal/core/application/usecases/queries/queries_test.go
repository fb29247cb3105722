package queries_test

import (
	"testing"

	"logistics/internal/adapters/out/postgres/companyrepo"
	"logistics/internal/adapters/out/postgres/orderrepo"
	"logistics/internal/adapters/out/postgres/userrepo"
	"logistics/internal/adapters/out/postgres/vehiclerepo"
	"logistics/internal/adapters/out/postgres/zonerepo"
	"logistics/internal/core/domain/model/company"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/user"
	"logistics/internal/core/domain/model/vehicle"
	"logistics/internal/core/domain/model/zone"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := "file:queries_" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&companyrepo.CompanyDTO{},
		&userrepo.UserDTO{},
		&zonerepo.ZoneDTO{},
		&vehiclerepo.VehicleDTO{},
		&orderrepo.OrderDTO{},
	))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	return db
}

// square is a zone from (lo,lo) to (hi,hi).
func seedZone(t *testing.T, db *gorm.DB, name string, lo, hi float64) *zone.Zone {
	t.Helper()
	boundary, err := kernel.NewPolygonFromPairs([][]float64{{lo, lo}, {lo, hi}, {hi, hi}, {hi, lo}})
	require.NoError(t, err)
	z, err := zone.NewZone(kernel.NewUUID(), name, boundary)
	require.NoError(t, err)
	require.NoError(t, zonerepo.NewGormZoneRepository(db).Add(t.Context(), z))
	return z
}

func seedRawZone(t *testing.T, db *gorm.DB, name, coords string) kernel.UUID {
	t.Helper()
	id := kernel.NewUUID()
	require.NoError(t, db.Create(&zonerepo.ZoneDTO{ID: id.Bytes(), Name: name, GeometryCoords: coords}).Error)
	return id
}

func seedVehicle(t *testing.T, db *gorm.DB, number string, weightKg, volumeM3 float64, zoneID *kernel.UUID) *vehicle.Vehicle {
	t.Helper()
	capacity, err := kernel.NewLoad(weightKg, volumeM3)
	require.NoError(t, err)
	v, err := vehicle.NewVehicle(kernel.NewUUID(), number, capacity, zoneID)
	require.NoError(t, err)
	require.NoError(t, vehiclerepo.NewGormVehicleRepository(db).Add(t.Context(), v))
	return v
}

// seedOrder stores a 1 m3, 100 kg order picked up at (lat,lng), assigned when vehicleID is set.
func seedOrder(t *testing.T, db *gorm.DB, ownerID kernel.UUID, item string, lat, lng float64, vehicleID *kernel.UUID) *order.Order {
	t.Helper()
	dims, err := kernel.NewDimensions(100, 100, 100)
	require.NoError(t, err)
	pickup, err := kernel.NewGeoPoint(lat, lng)
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), ownerID, item, dims, 100, pickup)
	require.NoError(t, err)
	if vehicleID != nil {
		require.NoError(t, o.Assign(*vehicleID))
	}
	require.NoError(t, orderrepo.NewGormOrderRepository(db).Add(t.Context(), o))
	return o
}

func seedUser(t *testing.T, db *gorm.DB, email string, role user.Role, c *company.Company) *user.User {
	t.Helper()
	var companyID *kernel.UUID
	if c != nil {
		require.NoError(t, companyrepo.NewGormCompanyRepository(db).Add(t.Context(), c))
		id := c.ID()
		companyID = &id
	}
	u, err := user.NewUser(kernel.NewUUID(), email, "hash", role, companyID)
	require.NoError(t, err)
	require.NoError(t, userrepo.NewGormUserRepository(db).Add(t.Context(), u))
	return u
}

func actorOf(u *user.User) user.Actor {
	return user.NewActor(u)
}
