package testdata

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/rotblauer/bestroute/types/trippoint"
)

// CorridorA and CorridorB are the default corridor ends.
var CorridorA = orb.Point{-77.68016333333334, 43.085848333333324}
var CorridorB = orb.Point{-77.43771166666667, 43.138343333333324}

// Segment is one leg of a synthetic drive.
type Segment struct {
	N       int     // points, one per second
	Speed   float64 // knots
	Heading float64 // degrees
}

// Drive builds a one-point-per-second trip starting at start. Each point moves
// along the segment's heading at the segment's speed.
func Drive(start orb.Point, t0 float64, segments ...Segment) trippoint.Trip {
	const knotsToMetersPerSecond = 0.514444
	trip := trippoint.Trip{}
	cur := start
	t := t0
	for _, s := range segments {
		for i := 0; i < s.N; i++ {
			trip = append(trip, trippoint.TripPoint{
				Lat:       cur.Lat(),
				Lon:       cur.Lon(),
				Speed:     s.Speed,
				Heading:   s.Heading,
				Timestamp: t,
				TimeRaw:   FormatTime(t),
			})
			cur = geo.PointAtBearingAndDistance(cur, s.Heading, s.Speed*knotsToMetersPerSecond)
			t++
		}
	}
	return trip
}

// Endpoints returns a copy of the trip whose first and last points sit on the given ends.
func Endpoints(trip trippoint.Trip, first, last orb.Point) trippoint.Trip {
	out := append(trippoint.Trip{}, trip...)
	out[0].Lon, out[0].Lat = first.Lon(), first.Lat()
	out[len(out)-1].Lon, out[len(out)-1].Lat = last.Lon(), last.Lat()
	return out
}

// Headings builds a stationary-position trip with the given headings and speed,
// one point per second. It is meant for turn detection, which looks only at headings.
func Headings(speed float64, headings ...float64) trippoint.Trip {
	trip := make(trippoint.Trip, 0, len(headings))
	for i, h := range headings {
		trip = append(trip, trippoint.TripPoint{
			Lat:       CorridorA.Lat(),
			Lon:       CorridorA.Lon(),
			Speed:     speed,
			Heading:   h,
			Timestamp: float64(i),
			TimeRaw:   FormatTime(float64(i)),
		})
	}
	return trip
}
