// Package score weighs a trip's duration, stops, turns and top speed into a single cost.
// Lower is better.
package score

import (
	"github.com/montanaflynn/stats"
	"github.com/rotblauer/bestroute/common"
	"github.com/rotblauer/bestroute/params"
	"github.com/rotblauer/bestroute/types/event"
	"github.com/rotblauer/bestroute/types/trippoint"
)

// Terms are the weighted, normalized components of a cost.
type Terms struct {
	Duration float64
	Dwell    float64
	Turns    float64
	Events   float64
	MaxSpeed float64
}

// Breakdown is a cost with the inputs and terms it was computed from.
type Breakdown struct {
	Mode string

	TripSeconds    float64
	StopMinutes    float64
	Turns          int
	Events         int
	MaxSpeedMPH    float64
	MeanSpeedMPH   float64
	MedianSpeedMPH float64

	Terms Terms
	Cost  float64
}

func (b Breakdown) TripMinutes() float64 {
	return b.TripSeconds / 60
}

func statsMustFloat(fn func() (float64, error), def float64) float64 {
	out, err := fn()
	if err != nil {
		return def
	}
	return out
}

func weigh(term params.CostTerm, v float64) float64 {
	return term.Weight * (v / term.Normalize)
}

// Cost scores a trip and its events.
// In legacy mode only the duration, dwell and turn terms are summed; the others are
// still reported in the breakdown.
func Cost(trip trippoint.Trip, set event.Set, config *params.CostConfig) Breakdown {
	if config == nil {
		config = params.DefaultCostConfig()
	}
	speeds := stats.Float64Data(trip.SpeedsMPH())
	b := Breakdown{
		Mode:           config.Mode,
		TripSeconds:    trip.Duration(),
		StopMinutes:    set.TimeAtStops / 60,
		Turns:          len(set.Turns),
		Events:         set.Total(),
		MaxSpeedMPH:    statsMustFloat(speeds.Max, 0),
		MeanSpeedMPH:   common.DecimalToFixed(statsMustFloat(speeds.Mean, 0), 2),
		MedianSpeedMPH: common.DecimalToFixed(statsMustFloat(speeds.Median, 0), 2),
	}
	b.Terms = Terms{
		Duration: weigh(config.Duration, b.TripMinutes()),
		Dwell:    weigh(config.Dwell, b.StopMinutes),
		Turns:    weigh(config.Turns, float64(b.Turns)),
		Events:   weigh(config.Events, float64(b.Events)),
		MaxSpeed: weigh(config.MaxSpeed, b.MaxSpeedMPH),
	}
	b.Cost = b.Terms.Duration + b.Terms.Dwell + b.Terms.Turns
	if config.Mode != params.CostModeLegacy {
		b.Cost += b.Terms.Events + b.Terms.MaxSpeed
	}
	return b
}

// Fields flattens the breakdown for line protocol and GeoJSON properties.
func (b Breakdown) Fields() map[string]interface{} {
	return map[string]interface{}{
		"cost":             b.Cost,
		"trip_minutes":     common.DecimalToFixed(b.TripMinutes(), 2),
		"stop_minutes":     common.DecimalToFixed(b.StopMinutes, 2),
		"turns":            b.Turns,
		"events":           b.Events,
		"max_speed_mph":    common.DecimalToFixed(b.MaxSpeedMPH, 2),
		"mean_speed_mph":   b.MeanSpeedMPH,
		"median_speed_mph": b.MedianSpeedMPH,
		"term_duration":    b.Terms.Duration,
		"term_dwell":       b.Terms.Dwell,
		"term_turns":       b.Terms.Turns,
		"term_events":      b.Terms.Events,
		"term_max_speed":   b.Terms.MaxSpeed,
	}
}
