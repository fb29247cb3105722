// Package zone holds the Zone aggregate: a uniquely named delivery area bounded by a polygon.
package zone
