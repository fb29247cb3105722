// Package services provides the domain services of order auto-assignment.
//
// The package includes:
//   - ZoneResolver: first zone, in registry order, whose boundary contains a point
//   - CapacityMatcher: first (or every) vehicle of a zone with enough weight and volume capacity
//   - OrderDispatcher: composes both and assigns the order when a vehicle is found
//
// The services are stateless and pure. Loading zones and vehicles, and
// persisting the decision, belong to the application layer.
package services
