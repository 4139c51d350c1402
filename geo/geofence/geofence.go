// Package geofence accepts only trips that run the known route, end to end, in either direction.
package geofence

import (
	"errors"
	"fmt"

	"github.com/golang/geo/s2"
	"github.com/paulmach/orb"
	"github.com/rotblauer/bestroute/common"
	"github.com/rotblauer/bestroute/params"
	"github.com/rotblauer/bestroute/types/trippoint"
)

var ErrOutOfCorridor = errors.New("trip does not start and end at the corridor ends")

type Direction int

const (
	DirectionNone Direction = iota
	DirectionAB
	DirectionBA
)

func (d Direction) String() string {
	switch d {
	case DirectionAB:
		return "A→B"
	case DirectionBA:
		return "B→A"
	}
	return "none"
}

// Corridor is a pair of spherical caps around the route ends.
type Corridor struct {
	A, B   orb.Point
	Radius float64 // meters

	capA, capB s2.Cap
}

func NewCorridor(config *params.CorridorConfig) *Corridor {
	if config == nil {
		config = params.DefaultCorridorConfig()
	}
	a := orb.Point{config.A.Lon, config.A.Lat}
	b := orb.Point{config.B.Lon, config.B.Lat}
	return &Corridor{
		A:      a,
		B:      b,
		Radius: config.Radius,
		capA:   capAround(a, config.Radius),
		capB:   capAround(b, config.Radius),
	}
}

func capAround(p orb.Point, meters float64) s2.Cap {
	return s2.CapFromCenterAngle(s2.PointFromLatLng(common.LatLng(p)), common.MetersToAngle(meters))
}

func within(c s2.Cap, p orb.Point) bool {
	return c.ContainsPoint(s2.PointFromLatLng(common.LatLng(p)))
}

// Direction reports which way the trip runs the corridor, if it does.
func (c *Corridor) Direction(trip trippoint.Trip) Direction {
	if len(trip) == 0 {
		return DirectionNone
	}
	first, last := trip.First().Point(), trip.Last().Point()
	switch {
	case within(c.capA, first) && within(c.capB, last):
		return DirectionAB
	case within(c.capB, first) && within(c.capA, last):
		return DirectionBA
	}
	return DirectionNone
}

// Contains is true when the trip starts within Radius of one end and finishes within Radius of the other.
func (c *Corridor) Contains(trip trippoint.Trip) bool {
	return c.Direction(trip) != DirectionNone
}

// Validate returns ErrOutOfCorridor, with the end distances, for trips the corridor does not contain.
func (c *Corridor) Validate(trip trippoint.Trip) error {
	if len(trip) == 0 {
		return fmt.Errorf("%w: no points", ErrOutOfCorridor)
	}
	if c.Contains(trip) {
		return nil
	}
	first, last := trip.First().Point(), trip.Last().Point()
	return fmt.Errorf("%w: first point %.0fm/%.0fm and last point %.0fm/%.0fm from A/B (radius %.0fm)",
		ErrOutOfCorridor,
		common.GreatCircleMeters(first, c.A), common.GreatCircleMeters(first, c.B),
		common.GreatCircleMeters(last, c.A), common.GreatCircleMeters(last, c.B),
		c.Radius)
}
