// Package kernel holds the value objects shared by every aggregate of the
// logistics domain.
//
// The package includes:
//   - UUID: time-ordered (v7) identities; ascending order equals creation order
//   - GeoPoint: a validated (latitude, longitude) pair with its "lat,lng" storage form
//   - Polygon: a zone boundary with inclusive point containment
//   - Dimensions and Load: parcel measurements, weights and volumes
//
// All values are immutable and guarded: their zero values fail Validate, so
// they must be built through the New*/Parse* constructors.
package kernel
