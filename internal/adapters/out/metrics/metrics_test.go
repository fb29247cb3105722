package metrics_test

import (
	"testing"
	"time"

	"logistics/internal/adapters/out/metrics"
	"logistics/internal/core/ports"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gather(t *testing.T, reg *prometheus.Registry) map[string]*dto.MetricFamily {
	t.Helper()
	mfs, err := reg.Gather()
	require.NoError(t, err)
	byName := make(map[string]*dto.MetricFamily, len(mfs))
	for _, mf := range mfs {
		byName[mf.GetName()] = mf
	}
	return byName
}

func labeled(mf *dto.MetricFamily, name, value string) *dto.Metric {
	if mf == nil {
		return nil
	}
	for _, m := range mf.GetMetric() {
		for _, l := range m.GetLabel() {
			if l.GetName() == name && l.GetValue() == value {
				return m
			}
		}
	}
	return nil
}

func TestAssignmentMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.NewAssignmentMetrics(reg)

	m.RecordOutcome("assigned")
	m.RecordOutcome("assigned")
	m.RecordOutcome("no_zone")
	m.RecordSkippedZone("broken")
	m.RecordSkippedZone("")

	mfs := gather(t, reg)
	outcomes := mfs["logistics_order_assignments_total"]
	require.NotNil(t, labeled(outcomes, "outcome", "assigned"))
	assert.InDelta(t, 2, labeled(outcomes, "outcome", "assigned").GetCounter().GetValue(), 1e-9)
	assert.InDelta(t, 1, labeled(outcomes, "outcome", "no_zone").GetCounter().GetValue(), 1e-9)

	skipped := mfs["logistics_zone_geometry_skipped_total"]
	require.NotNil(t, labeled(skipped, "zone", "broken"))
	require.NotNil(t, labeled(skipped, "zone", "unknown"))
}

func TestFleetMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.NewFleetMetrics(reg)

	m.RecordFleet([]ports.VehicleUtilization{
		{VehicleNumber: "KA-01", ZoneName: "north", CurrentVolumeM3: 1, UtilizationPercentage: 25},
		{VehicleNumber: "KA-02", CurrentVolumeM3: 0, UtilizationPercentage: 0},
	})
	m.RecordFleet([]ports.VehicleUtilization{
		{VehicleNumber: "KA-01", ZoneName: "north", CurrentVolumeM3: 2, UtilizationPercentage: 50},
	})

	mfs := gather(t, reg)
	utilization := mfs["logistics_vehicle_utilization_percent"]
	require.NotNil(t, labeled(utilization, "vehicle", "KA-01"))
	assert.InDelta(t, 50, labeled(utilization, "vehicle", "KA-01").GetGauge().GetValue(), 1e-9)
	assert.Nil(t, labeled(utilization, "vehicle", "KA-02"), "snapshot replaces previous vehicles")
	assert.InDelta(t, 1, mfs["logistics_fleet_vehicles"].GetMetric()[0].GetGauge().GetValue(), 1e-9)
}

func TestCronJobMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.NewCronJobMetrics(reg)

	m.ObserveDuration("fleet", 250*time.Millisecond)
	m.IncSuccess("fleet")
	m.IncFailure("fleet")

	mfs := gather(t, reg)
	assert.InDelta(t, 1, labeled(mfs["logistics_job_success_total"], "job", "fleet").GetCounter().GetValue(), 1e-9)
	assert.InDelta(t, 1, labeled(mfs["logistics_job_failure_total"], "job", "fleet").GetCounter().GetValue(), 1e-9)
	assert.Positive(t, labeled(mfs["logistics_job_duration_seconds"], "job", "fleet").GetHistogram().GetSampleSum())
}

func TestNilRegistererIsNoop(t *testing.T) {
	assert.NotPanics(t, func() {
		metrics.NewAssignmentMetrics(nil).RecordOutcome("assigned")
		metrics.NewFleetMetrics(nil).RecordFleet(nil)
		metrics.NewCronJobMetrics(nil).IncSuccess("fleet")

		var m *metrics.AssignmentMetrics
		m.RecordSkippedZone("x")
	})
}
