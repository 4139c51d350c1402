package trippoint

import (
	"fmt"
	"math"
	"time"

	"github.com/mitchellh/hashstructure/v2"
	"github.com/paulmach/orb"
	"github.com/rotblauer/bestroute/common"
)

// TripPoint is one valid position fix reconstructed from a receiver sentence.
// Speed and Heading are kept as the receiver reported them (knots, degrees).
type TripPoint struct {
	Lat     float64
	Lon     float64
	Speed   float64
	Heading float64

	// Timestamp is the sentence time in seconds of day (UTC).
	// It wraps at midnight; trips are never re-sorted by it.
	Timestamp float64

	// TimeRaw is the verbatim hhmmss.sss time field.
	TimeRaw string

	// Time is the full fix time when the sentence carried a usable date, else zero.
	Time time.Time `hash:"ignore"`
}

// Point returns the [lon, lat] orb point.
func (p TripPoint) Point() orb.Point {
	return orb.Point{p.Lon, p.Lat}
}

// SpeedMPH returns the speed converted from knots to miles per hour.
func (p TripPoint) SpeedMPH() float64 {
	return common.MPH(p.Speed)
}

func (p TripPoint) String() string {
	return fmt.Sprintf("(%.6f, %.6f) %.2fkn %.1f° @%s", p.Lat, p.Lon, p.Speed, p.Heading, p.TimeRaw)
}

// Trip is the ordered sequence of points from one log, in source line order.
type Trip []TripPoint

func (t Trip) First() TripPoint {
	return t[0]
}

func (t Trip) Last() TripPoint {
	return t[len(t)-1]
}

// Duration is the absolute difference between the first and last timestamps, in seconds.
func (t Trip) Duration() float64 {
	if len(t) < 2 {
		return 0
	}
	return math.Abs(t.Last().Timestamp - t.First().Timestamp)
}

// SpeedsMPH returns every point's speed in miles per hour.
func (t Trip) SpeedsMPH() []float64 {
	out := make([]float64, 0, len(t))
	for _, p := range t {
		out = append(out, p.SpeedMPH())
	}
	return out
}

func (t Trip) LineString() orb.LineString {
	ls := make(orb.LineString, 0, len(t))
	for _, p := range t {
		ls = append(ls, p.Point())
	}
	return ls
}

func (t Trip) Bound() orb.Bound {
	return t.LineString().Bound()
}

// Fingerprint hashes the trip's points.
// Equal trips have equal fingerprints across runs.
func (t Trip) Fingerprint() (uint64, error) {
	return hashstructure.Hash(t, hashstructure.FormatV2, nil)
}
