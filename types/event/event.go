// Package event defines the behaviorally significant events detected along a trip.
package event

import (
	"fmt"

	"github.com/paulmach/orb"
)

type Kind int

const (
	KindTurn Kind = iota
	KindStopSign
	KindTrafficSignal
	KindErrand
)

func (k Kind) String() string {
	switch k {
	case KindTurn:
		return "turn"
	case KindStopSign:
		return "stop_sign"
	case KindTrafficSignal:
		return "traffic_signal"
	case KindErrand:
		return "errand"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

type Direction int

const (
	DirectionNone Direction = iota
	DirectionLeft
	DirectionRight
)

func (d Direction) String() string {
	switch d {
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	}
	return ""
}

// Event is a detected turn or classified stop at a trip point.
type Event struct {
	Kind  Kind
	Index int // index of the point in the trip
	Lat   float64
	Lon   float64

	// Direction is set for turns.
	Direction Direction
	// Angle is the signed heading change across the turn window, degrees.
	Angle float64

	// Duration is the dwell time of a stop, in seconds.
	Duration float64
	// Displacement is the distance in miles covered during a stop's dwell.
	Displacement float64
}

// Set holds a trip's events by kind, in the order they were detected.
type Set struct {
	Turns          []Event
	StopSigns      []Event
	TrafficSignals []Event
	Errands        []Event

	// TimeAtStops is the total dwell time, in seconds, of all classified stops.
	TimeAtStops float64
}

// Total returns the number of events of every kind.
func (s Set) Total() int {
	return len(s.Turns) + len(s.StopSigns) + len(s.TrafficSignals) + len(s.Errands)
}

// Stops returns the number of classified stops.
func (s Set) Stops() int {
	return len(s.StopSigns) + len(s.TrafficSignals) + len(s.Errands)
}

// ByKind returns the events of one kind.
func (s Set) ByKind(k Kind) []Event {
	switch k {
	case KindTurn:
		return s.Turns
	case KindStopSign:
		return s.StopSigns
	case KindTrafficSignal:
		return s.TrafficSignals
	case KindErrand:
		return s.Errands
	}
	return nil
}

// Kinds lists every kind in export order.
var Kinds = []Kind{KindTurn, KindStopSign, KindTrafficSignal, KindErrand}

// Point returns the [lon, lat] orb point of the event.
func (e Event) Point() orb.Point {
	return orb.Point{e.Lon, e.Lat}
}
