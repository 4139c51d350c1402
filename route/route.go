// Package route scores a batch of recorded trips along one corridor and picks the best of them.
package route

import (
	"errors"

	"github.com/rotblauer/bestroute/geo/geofence"
	"github.com/rotblauer/bestroute/nmea"
	"github.com/rotblauer/bestroute/score"
	"github.com/rotblauer/bestroute/types/event"
	"github.com/rotblauer/bestroute/types/trippoint"
)

// ErrEmptyBatch is returned when no trip in a batch was accepted.
var ErrEmptyBatch = errors.New("no accepted trips to select from")

// NamedLog is the content of one receiver log.
// Err is set when the log could not be read; Lines is then empty.
type NamedLog struct {
	Name  string
	Lines []string
	Err   error
}

// ScoredTrip is an accepted trip with its events and cost.
type ScoredTrip struct {
	Name        string
	Trip        trippoint.Trip
	Direction   geofence.Direction
	Events      event.Set
	Breakdown   score.Breakdown
	Cost        float64
	Fingerprint uint64
}

// TripResult is the outcome of analyzing one log.
type TripResult struct {
	Name     string
	Accepted bool
	// Err is nmea.ErrEmptyTrip, geofence.ErrOutOfCorridor or a read error for rejected logs.
	Err    error
	Stats  nmea.Stats
	Scored *ScoredTrip
}

// BatchResult holds every log's outcome, in input order, and the best trip.
type BatchResult struct {
	Trips []TripResult
	Best  ScoredTrip
}

// Scored returns the accepted trips in input order.
func (b *BatchResult) Scored() []ScoredTrip {
	out := []ScoredTrip{}
	for _, r := range b.Trips {
		if r.Accepted && r.Scored != nil {
			out = append(out, *r.Scored)
		}
	}
	return out
}

// Rejected returns the number of logs that were not accepted.
func (b *BatchResult) Rejected() int {
	n := 0
	for _, r := range b.Trips {
		if !r.Accepted {
			n++
		}
	}
	return n
}

// SelectBest returns the trip with the lowest cost.
// Ties go to the earliest trip.
func SelectBest(trips []ScoredTrip) (ScoredTrip, error) {
	if len(trips) == 0 {
		return ScoredTrip{}, ErrEmptyBatch
	}
	best := 0
	for i := range trips[1:] {
		if trips[i+1].Cost < trips[best].Cost {
			best = i + 1
		}
	}
	return trips[best], nil
}
