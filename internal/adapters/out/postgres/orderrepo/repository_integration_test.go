package orderrepo_test

import (
	"context"
	"testing"

	"logistics/internal/adapters/out/postgres/orderrepo"
	"logistics/internal/adapters/out/postgres/pgtest"
	"logistics/internal/adapters/out/postgres/userrepo"
	"logistics/internal/adapters/out/postgres/vehiclerepo"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/user"
	"logistics/internal/core/domain/model/vehicle"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

// OrderRepositoryIntegrationTestSuite verifies order persistence against PostgreSQL.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	database   *pgtest.Database
	repository *orderrepo.GormOrderRepository
	owner      *user.User
	vehicle    *vehicle.Vehicle
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Terminate(context.Background()))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	ctx := context.Background()
	db := suite.database.DB
	suite.Require().NoError(suite.database.Truncate())

	owner, err := user.NewUser(kernel.NewUUID(), "owner@acme.io", "hash", user.RoleShipper, nil)
	suite.Require().NoError(err)
	suite.Require().NoError(userrepo.NewGormUserRepository(db).Add(ctx, owner))
	suite.owner = owner

	capacity, err := kernel.NewLoad(500, 2)
	suite.Require().NoError(err)
	v, err := vehicle.NewVehicle(kernel.NewUUID(), "KA-01", capacity, nil)
	suite.Require().NoError(err)
	suite.Require().NoError(vehiclerepo.NewGormVehicleRepository(db).Add(ctx, v))
	suite.vehicle = v

	suite.repository = orderrepo.NewGormOrderRepository(db)
}

func (suite *OrderRepositoryIntegrationTestSuite) newOrder() *order.Order {
	dims, err := kernel.NewDimensions(50, 40, 30)
	suite.Require().NoError(err)
	pickup, err := kernel.NewGeoPoint(12.9716, 77.5946)
	suite.Require().NoError(err)
	o, err := order.NewOrder(kernel.NewUUID(), suite.owner.ID(), "books", dims, 12.5, pickup)
	suite.Require().NoError(err)
	return o
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_Get_RoundTrip() {
	ctx := context.Background()
	o := suite.newOrder()

	suite.Require().NoError(suite.repository.Add(ctx, o))

	got, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.True(o.IsEqual(got))
	suite.Equal("books", got.ItemName())
	suite.Equal(order.Pending, got.Status())
	suite.InDelta(0.06, got.VolumeM3(), 1e-9)
	equal, err := o.Pickup().IsEqual(got.Pickup())
	suite.Require().NoError(err)
	suite.True(equal)
	suite.Nil(got.VehicleID())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_AssignThenUnassign_ClearsVehicle() {
	ctx := context.Background()
	o := suite.newOrder()
	suite.Require().NoError(suite.repository.Add(ctx, o))

	suite.Require().NoError(o.Assign(suite.vehicle.ID()))
	suite.Require().NoError(suite.repository.Update(ctx, o))

	assigned, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Assigned, assigned.Status())
	suite.True(assigned.VehicleID().IsEqual(suite.vehicle.ID()))

	suite.Require().NoError(o.Unassign())
	suite.Require().NoError(suite.repository.Update(ctx, o))

	pending, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Pending, pending.Status())
	suite.Nil(pending.VehicleID())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_UnknownVehicle_IsInvalidInput() {
	ctx := context.Background()
	o := suite.newOrder()
	suite.Require().NoError(suite.repository.Add(ctx, o))

	suite.Require().NoError(o.Assign(kernel.NewUUID()))
	err := suite.repository.Update(ctx, o)

	suite.Require().Error(err)
	suite.True(errs.IsInvalidInput(err))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NonExistentOrder_ReturnsNotFound() {
	err := suite.repository.Update(context.Background(), suite.newOrder())

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestCountByVehicle_CountsEveryStatus() {
	ctx := context.Background()
	for _, ship := range []bool{false, true} {
		o := suite.newOrder()
		suite.Require().NoError(o.Assign(suite.vehicle.ID()))
		if ship {
			suite.Require().NoError(o.Ship())
		}
		suite.Require().NoError(suite.repository.Add(ctx, o))
	}
	suite.Require().NoError(suite.repository.Add(ctx, suite.newOrder()))

	count, err := suite.repository.CountByVehicle(ctx, suite.vehicle.ID())

	suite.Require().NoError(err)
	suite.Equal(int64(2), count)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetForUpdate_OutsideTransaction_ReadsRow() {
	ctx := context.Background()
	o := suite.newOrder()
	suite.Require().NoError(suite.repository.Add(ctx, o))

	got, err := suite.repository.GetForUpdate(ctx, o.ID())

	suite.Require().NoError(err)
	suite.True(o.IsEqual(got))
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration tests in short mode")
	}
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
