package services

import (
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/zone"
)

// SkippedZone records a zone left out of resolution because its stored
// boundary could not be parsed.
type SkippedZone struct {
	Zone *zone.Zone
	Err  error
}

// Resolution is the outcome of a zone lookup. Zone is nil when no zone
// contains the point.
type Resolution struct {
	Zone    *zone.Zone
	Skipped []SkippedZone
}

// Resolved reports whether a zone was found.
func (r Resolution) Resolved() bool {
	return r.Zone != nil
}

// ZoneResolver maps a point to at most one delivery zone.
//
// Zones are scanned in the order given (registry order) and the first zone
// whose boundary contains the point wins, even when later zones overlap it.
// A zone with an unparsable boundary is skipped and reported; it never stops
// the scan.
type ZoneResolver struct{}

func NewZoneResolver() ZoneResolver {
	return ZoneResolver{}
}

// Resolve returns the first zone containing point.
func (ZoneResolver) Resolve(point kernel.GeoPoint, zones []*zone.Zone) Resolution {
	var res Resolution
	for _, z := range zones {
		if z.Validate() != nil {
			continue
		}
		inside, err := z.Contains(point)
		if err != nil {
			res.Skipped = append(res.Skipped, SkippedZone{Zone: z, Err: err})
			continue
		}
		if inside {
			res.Zone = z
			return res
		}
	}
	return res
}
