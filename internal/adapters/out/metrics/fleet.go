package metrics

import (
	"logistics/internal/core/ports"

	"github.com/prometheus/client_golang/prometheus"
)

// FleetMetrics publishes the committed load of every vehicle. Each snapshot
// replaces the previous one, so deleted vehicles disappear.
type FleetMetrics struct {
	volume      *prometheus.GaugeVec
	utilization *prometheus.GaugeVec
	vehicles    prometheus.Gauge
}

func NewFleetMetrics(reg prometheus.Registerer) *FleetMetrics {
	if reg == nil {
		return &FleetMetrics{}
	}
	labels := []string{"vehicle", "zone"}
	volume := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "vehicle_committed_volume_m3",
		Help:      "Summed volume of the ASSIGNED orders of a vehicle.",
	}, labels)
	utilization := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "vehicle_utilization_percent",
		Help:      "Committed volume as a percentage of the vehicle volume capacity.",
	}, labels)
	vehicles := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "fleet_vehicles",
		Help:      "Vehicles in the registry at the last snapshot.",
	})
	reg.MustRegister(volume, utilization, vehicles)
	return &FleetMetrics{volume: volume, utilization: utilization, vehicles: vehicles}
}

func (m *FleetMetrics) RecordFleet(snapshot []ports.VehicleUtilization) {
	if m == nil || m.volume == nil {
		return
	}
	m.volume.Reset()
	m.utilization.Reset()
	for _, v := range snapshot {
		zone := v.ZoneName
		if zone == "" {
			zone = "none"
		}
		m.volume.WithLabelValues(v.VehicleNumber, zone).Set(v.CurrentVolumeM3)
		m.utilization.WithLabelValues(v.VehicleNumber, zone).Set(v.UtilizationPercentage)
	}
	m.vehicles.Set(float64(len(snapshot)))
}
