// Package stops classifies the places a trip slows to a dwell as stop signs, traffic signals or errands.
//
// A dwell begins at a point whose speed is at or below the threshold and lasts until the
// first later point that leaves that band (or the end of the trip). A dwell that covered
// less than MaxDisplacement is an event, classified by how long it lasted.
package stops

import (
	"math"

	"github.com/rotblauer/bestroute/common"
	"github.com/rotblauer/bestroute/params"
	"github.com/rotblauer/bestroute/types/event"
	"github.com/rotblauer/bestroute/types/trippoint"
)

type State int

const (
	StateScanning State = iota
	StateInDwell
)

func (s State) String() string {
	if s == StateInDwell {
		return "in dwell"
	}
	return "scanning"
}

type Classifier struct {
	Config *params.StopConfig

	State State
	// dwellStart is the first point of the open dwell.
	dwellStart      trippoint.TripPoint
	dwellStartIndex int
}

func NewClassifier(config *params.StopConfig) *Classifier {
	if config == nil {
		config = params.DefaultStopConfig()
	}
	return &Classifier{Config: config, State: StateScanning}
}

func (c *Classifier) Reset() {
	c.State = StateScanning
	c.dwellStart = trippoint.TripPoint{}
	c.dwellStartIndex = 0
}

// slow reports a point at or below the dwell speed.
// Parsed speeds are never negative, so the same test opens and extends a dwell.
func (c *Classifier) slow(p trippoint.TripPoint) bool {
	return p.SpeedMPH() <= c.Config.SpeedThreshold
}

// Kind classifies a dwell by its duration in seconds.
func (c *Classifier) Kind(duration float64) event.Kind {
	switch {
	case duration <= c.Config.StopSignMax:
		return event.KindStopSign
	case duration <= c.Config.SignalMax:
		return event.KindTrafficSignal
	}
	return event.KindErrand
}

// Add feeds the point at index i. It returns an event when the point closes a dwell
// that stayed in place. The closing point never opens a dwell of its own.
func (c *Classifier) Add(p trippoint.TripPoint, i int) *event.Event {
	switch c.State {
	case StateScanning:
		if c.slow(p) {
			c.State = StateInDwell
			c.dwellStart, c.dwellStartIndex = p, i
		}
		return nil
	case StateInDwell:
		if c.slow(p) {
			return nil
		}
		return c.close(p)
	}
	return nil
}

// Finish closes a dwell still open at the last point of the trip.
// A dwell opened at the last point closes on itself.
func (c *Classifier) Finish(last trippoint.TripPoint) *event.Event {
	if c.State != StateInDwell {
		return nil
	}
	return c.close(last)
}

func (c *Classifier) close(end trippoint.TripPoint) *event.Event {
	start, index := c.dwellStart, c.dwellStartIndex
	c.Reset()
	displacement := common.GreatCircleMiles(start.Point(), end.Point())
	if displacement >= c.Config.MaxDisplacement {
		return nil
	}
	duration := math.Abs(start.Timestamp - end.Timestamp)
	return &event.Event{
		Kind:         c.Kind(duration),
		Index:        index,
		Lat:          start.Lat,
		Lon:          start.Lon,
		Duration:     duration,
		Displacement: displacement,
	}
}

// Detect classifies every dwell from start. The returned set has no turns.
func (c *Classifier) Detect(trip trippoint.Trip, start int) event.Set {
	set := event.Set{
		StopSigns:      []event.Event{},
		TrafficSignals: []event.Event{},
		Errands:        []event.Event{},
	}
	add := func(ev *event.Event) {
		if ev == nil {
			return
		}
		switch ev.Kind {
		case event.KindStopSign:
			set.StopSigns = append(set.StopSigns, *ev)
		case event.KindTrafficSignal:
			set.TrafficSignals = append(set.TrafficSignals, *ev)
		case event.KindErrand:
			set.Errands = append(set.Errands, *ev)
		}
		set.TimeAtStops += ev.Duration
	}
	c.Reset()
	for i := max(start, 0); i < len(trip); i++ {
		add(c.Add(trip[i], i))
	}
	if len(trip) > 0 {
		add(c.Finish(trip.Last()))
	}
	return set
}

// Detect runs a Classifier with the given config.
func Detect(trip trippoint.Trip, start int, config *params.StopConfig) event.Set {
	return NewClassifier(config).Detect(trip, start)
}
