package cmd

import (
	"fmt"
	"log/slog"

	apihttp "logistics/internal/adapters/in/http"
	"logistics/internal/adapters/out/metrics"
	"logistics/internal/adapters/out/postgres"
	"logistics/internal/adapters/out/security"
	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/jobs"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	hasher     *security.BcryptHasher
	tokens     *security.JWTIssuer
	registry   *prometheus.Registry
	assignment *metrics.AssignmentMetrics
	fleet      *metrics.FleetMetrics
	cronJobs   *metrics.CronJobMetrics
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	if logger == nil {
		logger = slog.Default()
	}

	hasher, err := security.NewBcryptHasher(config.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("password hasher: %w", err)
	}
	tokens, err := security.NewJWTIssuer(config.JWTSecret, config.TokenTTL)
	if err != nil {
		return nil, fmt.Errorf("token issuer: %w", err)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return &CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		hasher:     hasher,
		tokens:     tokens,
		registry:   registry,
		assignment: metrics.NewAssignmentMetrics(registry),
		fleet:      metrics.NewFleetMetrics(registry),
		cronJobs:   metrics.NewCronJobMetrics(registry),
		logger:     logger,
	}, nil
}

func (c *CompositionRoot) fleetUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) identityUoWFactory() commands.IdentityUoWFactory {
	return FuncIdentityUoWFactory(func() commands.IdentityUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.fleetUoWFactory(), c.assignment, c.logger)
}

func (c *CompositionRoot) CreateAssignOrderCommandHandler() commands.AssignOrderCommandHandler {
	return commands.NewAssignOrderCommandHandler(c.fleetUoWFactory())
}

func (c *CompositionRoot) CreateUnassignOrderCommandHandler() commands.UnassignOrderCommandHandler {
	return commands.NewUnassignOrderCommandHandler(c.fleetUoWFactory())
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.fleetUoWFactory())
}

func (c *CompositionRoot) CreateShipOrderCommandHandler() commands.ShipOrderCommandHandler {
	return commands.NewShipOrderCommandHandler(c.fleetUoWFactory())
}

func (c *CompositionRoot) CreateCreateZoneCommandHandler() commands.CreateZoneCommandHandler {
	return commands.NewCreateZoneCommandHandler(c.fleetUoWFactory())
}

func (c *CompositionRoot) CreateDeleteZoneCommandHandler() commands.DeleteZoneCommandHandler {
	return commands.NewDeleteZoneCommandHandler(c.fleetUoWFactory())
}

func (c *CompositionRoot) CreateCreateVehicleCommandHandler() commands.CreateVehicleCommandHandler {
	return commands.NewCreateVehicleCommandHandler(c.fleetUoWFactory())
}

func (c *CompositionRoot) CreateDeleteVehicleCommandHandler() commands.DeleteVehicleCommandHandler {
	return commands.NewDeleteVehicleCommandHandler(c.fleetUoWFactory())
}

func (c *CompositionRoot) CreateSignupShipperCommandHandler() commands.SignupShipperCommandHandler {
	return commands.NewSignupShipperCommandHandler(c.identityUoWFactory(), c.hasher)
}

func (c *CompositionRoot) CreateIssueTokenCommandHandler() commands.IssueTokenCommandHandler {
	return commands.NewIssueTokenCommandHandler(c.identityUoWFactory(), c.hasher, c.tokens)
}

func (c *CompositionRoot) CreateUpdateUserSettingsCommandHandler() commands.UpdateUserSettingsCommandHandler {
	return commands.NewUpdateUserSettingsCommandHandler(c.identityUoWFactory(), c.hasher)
}

func (c *CompositionRoot) CreateUpdateCompanySettingsCommandHandler() commands.UpdateCompanySettingsCommandHandler {
	return commands.NewUpdateCompanySettingsCommandHandler(c.identityUoWFactory())
}

func (c *CompositionRoot) CreateEnsureAdminCommandHandler() commands.EnsureAdminCommandHandler {
	return commands.NewEnsureAdminCommandHandler(c.identityUoWFactory(), c.hasher, c.logger)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListZonesQueryHandler() queries.ListZonesQueryHandler {
	return queries.NewListZonesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListVehiclesQueryHandler() queries.ListVehiclesQueryHandler {
	return queries.NewListVehiclesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCompatibleVehiclesQueryHandler() queries.GetCompatibleVehiclesQueryHandler {
	return queries.NewGetCompatibleVehiclesQueryHandler(c.uowFactory, c.CreateListVehiclesQueryHandler())
}

func (c *CompositionRoot) CreateGetCurrentUserQueryHandler() queries.GetCurrentUserQueryHandler {
	return queries.NewGetCurrentUserQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateResolveActorQueryHandler() queries.ResolveActorQueryHandler {
	return queries.NewResolveActorQueryHandler(c.tokens, c.gormDB)
}

func (c *CompositionRoot) CreateServer() *apihttp.Server {
	return apihttp.NewServer(
		apihttp.Commands{
			CreateOrder:           c.CreateCreateOrderCommandHandler(),
			AssignOrder:           c.CreateAssignOrderCommandHandler(),
			UnassignOrder:         c.CreateUnassignOrderCommandHandler(),
			CancelOrder:           c.CreateCancelOrderCommandHandler(),
			ShipOrder:             c.CreateShipOrderCommandHandler(),
			CreateZone:            c.CreateCreateZoneCommandHandler(),
			DeleteZone:            c.CreateDeleteZoneCommandHandler(),
			CreateVehicle:         c.CreateCreateVehicleCommandHandler(),
			DeleteVehicle:         c.CreateDeleteVehicleCommandHandler(),
			SignupShipper:         c.CreateSignupShipperCommandHandler(),
			IssueToken:            c.CreateIssueTokenCommandHandler(),
			UpdateUserSettings:    c.CreateUpdateUserSettingsCommandHandler(),
			UpdateCompanySettings: c.CreateUpdateCompanySettingsCommandHandler(),
		},
		apihttp.Queries{
			ListOrders:            c.CreateListOrdersQueryHandler(),
			ListZones:             c.CreateListZonesQueryHandler(),
			ListVehicles:          c.CreateListVehiclesQueryHandler(),
			GetCompatibleVehicles: c.CreateGetCompatibleVehiclesQueryHandler(),
			GetCurrentUser:        c.CreateGetCurrentUserQueryHandler(),
		},
	)
}

func (c *CompositionRoot) CreateRouter() (*echo.Echo, error) {
	return apihttp.NewRouter(c.CreateServer(), apihttp.RouterConfig{
		Resolver:     c.CreateResolveActorQueryHandler(),
		Gatherer:     c.registry,
		Logger:       c.logger,
		AllowOrigins: c.config.CORSAllowOrigins,
	})
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		jobs.NewFleetUtilizationJob(
			c.CreateListVehiclesQueryHandler(),
			c.fleet,
			c.cronJobs,
			c.config.FleetUtilizationSchedule,
			c.logger,
		),
	)
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

type FuncIdentityUoWFactory func() commands.IdentityUoW

func (f FuncIdentityUoWFactory) Create() commands.IdentityUoW {
	return f()
}
