// Package motion finds where a trip starts moving.
package motion

import "github.com/rotblauer/bestroute/types/trippoint"

// StartIndex returns the index of the first point whose raw reported speed (knots)
// exceeds threshold, or len(trip) if the trip never moves.
// Turn and stop detection begin there; a parked receiver warming up is not a stop.
func StartIndex(trip trippoint.Trip, threshold float64) int {
	for i, p := range trip {
		if p.Speed > threshold {
			return i
		}
	}
	return len(trip)
}
