// Package turns finds left and right turns from the change in reported heading across a fixed
// window of points.
package turns

import (
	"math"

	"github.com/rotblauer/bestroute/common"
	"github.com/rotblauer/bestroute/params"
	"github.com/rotblauer/bestroute/types/event"
	"github.com/rotblauer/bestroute/types/trippoint"
)

type Detector struct {
	Config *params.TurnConfig
}

func NewDetector(config *params.TurnConfig) *Detector {
	if config == nil {
		config = params.DefaultTurnConfig()
	}
	return &Detector{Config: config}
}

// Step compares the headings at i and i+Window.
// A heading that drops across north is only a turn with WrapClockwise set.
// When the change is a turn it returns the event and the index after the window,
// so the same turn is never counted twice. Otherwise it returns i+1 and nil.
// Callers stop once i+Window reaches the end of the trip.
func (d *Detector) Step(trip trippoint.Trip, i int) (int, *event.Event) {
	w := d.Config.Window
	cur, next := trip[i].Heading, trip[i+w].Heading
	if !d.Config.WrapClockwise && cur-next > 180 {
		return i + 1, nil
	}
	diff := common.SignedAngularDiff(cur, next)
	abs := math.Abs(diff)
	if abs <= d.Config.MinAngle || abs >= d.Config.MaxAngle {
		return i + 1, nil
	}
	dir := event.DirectionLeft
	if diff < 0 {
		dir = event.DirectionRight
	}
	return i + w, &event.Event{
		Kind:      event.KindTurn,
		Index:     i,
		Lat:       trip[i].Lat,
		Lon:       trip[i].Lon,
		Direction: dir,
		Angle:     diff,
	}
}

// Detect scans the trip from start and returns its turns in order.
func (d *Detector) Detect(trip trippoint.Trip, start int) []event.Event {
	out := []event.Event{}
	for i := max(start, 0); i+d.Config.Window < len(trip); {
		next, ev := d.Step(trip, i)
		if ev != nil {
			out = append(out, *ev)
		}
		i = next
	}
	return out
}

// Detect runs a Detector with the given config.
func Detect(trip trippoint.Trip, start int, config *params.TurnConfig) []event.Event {
	return NewDetector(config).Detect(trip, start)
}
