package ports

// AssignmentRecorder receives auto-assignment telemetry.
type AssignmentRecorder interface {
	// RecordOutcome counts one auto-assignment attempt by outcome label.
	RecordOutcome(outcome string)

	// RecordSkippedZone counts a zone left out of resolution because of its geometry.
	RecordSkippedZone(zoneName string)
}

// VehicleUtilization is the committed load of one vehicle.
type VehicleUtilization struct {
	VehicleNumber         string
	ZoneName              string
	CurrentVolumeM3       float64
	UtilizationPercentage float64
}

// FleetRecorder publishes the fleet utilization snapshot.
type FleetRecorder interface {
	RecordFleet(snapshot []VehicleUtilization)
}
