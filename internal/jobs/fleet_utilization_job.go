package jobs

import (
	"context"
	"log/slog"
	"time"

	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/ports"

	"github.com/robfig/cron/v3"
)

const (
	FleetUtilizationJobName = "fleet_utilization"

	DefaultFleetUtilizationSchedule = "@every 1m"

	fleetUtilizationTimeout = 30 * time.Second
)

// VehicleLister reads the vehicle registry with committed loads.
type VehicleLister interface {
	Handle(ctx context.Context, query queries.ListVehiclesQuery) ([]queries.VehicleView, error)
}

// JobMetrics records job executions.
type JobMetrics interface {
	ObserveDuration(job string, d time.Duration)
	IncSuccess(job string)
	IncFailure(job string)
}

// FleetUtilizationJob periodically publishes the committed load of the fleet.
type FleetUtilizationJob struct {
	vehicles VehicleLister
	recorder ports.FleetRecorder
	metrics  JobMetrics
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewFleetUtilizationJob(
	vehicles VehicleLister,
	recorder ports.FleetRecorder,
	metrics JobMetrics,
	schedule string,
	logger *slog.Logger,
) *FleetUtilizationJob {
	if schedule == "" {
		schedule = DefaultFleetUtilizationSchedule
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &FleetUtilizationJob{
		vehicles: vehicles,
		recorder: recorder,
		metrics:  metrics,
		schedule: schedule,
		cron:     cron.New(),
		logger:   logger.With("component", "fleet_utilization_job"),
	}
}

// Start publishes a first snapshot and schedules the next ones.
func (j *FleetUtilizationJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { _ = j.Run(context.Background()) }); err != nil {
		return err
	}

	_ = j.Run(context.Background())

	j.cron.Start()
	j.logger.Info("Fleet utilization job started", "schedule", j.schedule)
	return nil
}

// Stop waits for a running snapshot to finish.
func (j *FleetUtilizationJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("Fleet utilization job stopped")
}

// Run takes one snapshot.
func (j *FleetUtilizationJob) Run(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, fleetUtilizationTimeout)
	defer cancel()

	started := time.Now()
	err := j.run(ctx)
	if j.metrics != nil {
		j.metrics.ObserveDuration(FleetUtilizationJobName, time.Since(started))
		if err != nil {
			j.metrics.IncFailure(FleetUtilizationJobName)
		} else {
			j.metrics.IncSuccess(FleetUtilizationJobName)
		}
	}
	if err != nil {
		j.logger.ErrorContext(ctx, "Fleet utilization job failed", "error", err)
	}
	return err
}

func (j *FleetUtilizationJob) run(ctx context.Context) error {
	views, err := j.vehicles.Handle(ctx, queries.NewListVehiclesQuery())
	if err != nil {
		return err
	}

	snapshot := make([]ports.VehicleUtilization, 0, len(views))
	for _, v := range views {
		u := ports.VehicleUtilization{
			VehicleNumber:         v.Number,
			CurrentVolumeM3:       v.CurrentVolumeM3,
			UtilizationPercentage: v.UtilizationPercentage,
		}
		if v.Zone != nil {
			u.ZoneName = v.Zone.Name
		}
		snapshot = append(snapshot, u)
	}

	j.recorder.RecordFleet(snapshot)
	j.logger.DebugContext(ctx, "Fleet utilization published", "vehicles", len(snapshot))
	return nil
}
