// Package vehicle holds the Vehicle aggregate: a registered carrier with a
// weight and volume capacity, optionally stationed in a delivery zone.
package vehicle
