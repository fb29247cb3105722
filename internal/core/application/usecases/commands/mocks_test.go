package commands_test

import (
	"context"
	"testing"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/company"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/user"
	"logistics/internal/core/domain/model/vehicle"
	"logistics/internal/core/domain/model/zone"
	"logistics/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockZoneRepository struct{ mock.Mock }

func (m *MockZoneRepository) Add(ctx context.Context, z *zone.Zone) error {
	return m.Called(ctx, z).Error(0)
}

func (m *MockZoneRepository) Get(ctx context.Context, id kernel.UUID) (*zone.Zone, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*zone.Zone), args.Error(1)
}

func (m *MockZoneRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*zone.Zone, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*zone.Zone), args.Error(1)
}

func (m *MockZoneRepository) GetAll(ctx context.Context) ([]*zone.Zone, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*zone.Zone), args.Error(1)
}

func (m *MockZoneRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type MockVehicleRepository struct{ mock.Mock }

func (m *MockVehicleRepository) Add(ctx context.Context, v *vehicle.Vehicle) error {
	return m.Called(ctx, v).Error(0)
}

func (m *MockVehicleRepository) Get(ctx context.Context, id kernel.UUID) (*vehicle.Vehicle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*vehicle.Vehicle), args.Error(1)
}

func (m *MockVehicleRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*vehicle.Vehicle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*vehicle.Vehicle), args.Error(1)
}

func (m *MockVehicleRepository) GetAllInZone(ctx context.Context, zoneID kernel.UUID) ([]*vehicle.Vehicle, error) {
	args := m.Called(ctx, zoneID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*vehicle.Vehicle), args.Error(1)
}

func (m *MockVehicleRepository) CountInZone(ctx context.Context, zoneID kernel.UUID) (int64, error) {
	args := m.Called(ctx, zoneID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockVehicleRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) CountByVehicle(ctx context.Context, vehicleID kernel.UUID) (int64, error) {
	args := m.Called(ctx, vehicleID)
	return args.Get(0).(int64), args.Error(1)
}

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Add(ctx context.Context, u *user.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, u *user.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *MockUserRepository) Get(ctx context.Context, id kernel.UUID) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

type MockCompanyRepository struct{ mock.Mock }

func (m *MockCompanyRepository) Add(ctx context.Context, c *company.Company) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCompanyRepository) Update(ctx context.Context, c *company.Company) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCompanyRepository) Get(ctx context.Context, id kernel.UUID) (*company.Company, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*company.Company), args.Error(1)
}

// MockUoW serves both the fleet and the identity unit of work.
type MockUoW struct {
	mock.Mock

	zones     *MockZoneRepository
	vehicles  *MockVehicleRepository
	orders    *MockOrderRepository
	users     *MockUserRepository
	companies *MockCompanyRepository
}

func newMockUoW() *MockUoW {
	return &MockUoW{
		zones:     new(MockZoneRepository),
		vehicles:  new(MockVehicleRepository),
		orders:    new(MockOrderRepository),
		users:     new(MockUserRepository),
		companies: new(MockCompanyRepository),
	}
}

func (m *MockUoW) Begin(ctx context.Context) error    { return m.Called(ctx).Error(0) }
func (m *MockUoW) Commit(ctx context.Context) error   { return m.Called(ctx).Error(0) }
func (m *MockUoW) Rollback(ctx context.Context) error { return m.Called(ctx).Error(0) }

func (m *MockUoW) ZoneRepository() ports.ZoneRepository       { return m.zones }
func (m *MockUoW) VehicleRepository() ports.VehicleRepository { return m.vehicles }
func (m *MockUoW) OrderRepository() ports.OrderRepository     { return m.orders }
func (m *MockUoW) UserRepository() ports.UserRepository       { return m.users }
func (m *MockUoW) CompanyRepository() ports.CompanyRepository { return m.companies }

func (m *MockUoW) AssertAll(t *testing.T) {
	t.Helper()
	m.AssertExpectations(t)
	m.zones.AssertExpectations(t)
	m.vehicles.AssertExpectations(t)
	m.orders.AssertExpectations(t)
	m.users.AssertExpectations(t)
	m.companies.AssertExpectations(t)
}

// expectTx sets up Begin and the deferred Rollback. commit adds a successful Commit.
func (m *MockUoW) expectTx(ctx context.Context, commit bool) {
	m.On("Begin", ctx).Return(nil).Once()
	if commit {
		m.On("Commit", ctx).Return(nil).Once()
	}
	m.On("Rollback", ctx).Return(nil).Once()
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	return m.Called().Get(0).(commands.UoW)
}

type MockIdentityUoWFactory struct{ mock.Mock }

func (m *MockIdentityUoWFactory) Create() commands.IdentityUoW {
	return m.Called().Get(0).(commands.IdentityUoW)
}

func fleetFactory(uow *MockUoW) *MockUoWFactory {
	f := new(MockUoWFactory)
	f.On("Create").Return(uow).Once()
	return f
}

func identityFactory(uow *MockUoW) *MockIdentityUoWFactory {
	f := new(MockIdentityUoWFactory)
	f.On("Create").Return(uow).Once()
	return f
}

type MockPasswordHasher struct{ mock.Mock }

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)
	return args.String(0), args.Error(1)
}

func (m *MockPasswordHasher) Compare(hash, password string) error {
	return m.Called(hash, password).Error(0)
}

type MockTokenIssuer struct{ mock.Mock }

func (m *MockTokenIssuer) Issue(ctx context.Context, u *user.User) (ports.AccessToken, error) {
	args := m.Called(ctx, u)
	return args.Get(0).(ports.AccessToken), args.Error(1)
}

func (m *MockTokenIssuer) Parse(ctx context.Context, token string) (ports.TokenClaims, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(ports.TokenClaims), args.Error(1)
}

type MockAssignmentRecorder struct{ mock.Mock }

func (m *MockAssignmentRecorder) RecordOutcome(outcome string) { m.Called(outcome) }
func (m *MockAssignmentRecorder) RecordSkippedZone(zoneName string) {
	m.Called(zoneName)
}

func adminActor() user.Actor {
	return user.Actor{UserID: kernel.NewUUID(), Email: "admin@example.com", Role: user.RoleAdmin}
}

func shipperActor() user.Actor {
	return user.Actor{UserID: kernel.NewUUID(), Email: "msme@example.com", Role: user.RoleShipper}
}

func newZone(t *testing.T, name string, pairs [][]float64) *zone.Zone {
	t.Helper()
	boundary, err := kernel.NewPolygonFromPairs(pairs)
	require.NoError(t, err)
	z, err := zone.NewZone(kernel.NewUUID(), name, boundary)
	require.NoError(t, err)
	return z
}

func squareZone(t *testing.T) *zone.Zone {
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

func newOrderOwnedBy(t *testing.T, owner kernel.UUID) *order.Order {
	t.Helper()
	dims, err := kernel.NewDimensions(100, 100, 100)
	require.NoError(t, err)
	pickup, err := kernel.NewGeoPoint(15, 15)
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), owner, "parcel", dims, 100, pickup)
	require.NoError(t, err)
	return o
}

func newUser(t *testing.T, email string, role user.Role, companyID *kernel.UUID) *user.User {
	t.Helper()
	u, err := user.NewUser(kernel.NewUUID(), email, "hash:secret", role, companyID)
	require.NoError(t, err)
	return u
}
