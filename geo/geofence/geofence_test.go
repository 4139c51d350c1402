package geofence

import (
	"errors"
	"slices"
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/rotblauer/bestroute/params"
	"github.com/rotblauer/bestroute/testing/testdata"
	"github.com/rotblauer/bestroute/types/trippoint"
)

func trip(first, last orb.Point) trippoint.Trip {
	drive := testdata.Drive(first, 0, testdata.Segment{N: 5, Speed: 20, Heading: 73})
	return testdata.Endpoints(drive, first, last)
}

func reversed(t trippoint.Trip) trippoint.Trip {
	out := slices.Clone(t)
	slices.Reverse(out)
	return out
}

// offset moves p by meters measured on orb's sphere, which is a few meters larger than ours.
func offset(p orb.Point, bearing, meters float64) orb.Point {
	return geo.PointAtBearingAndDistance(p, bearing, meters)
}

func TestCorridor_Contains(t *testing.T) {
	c := NewCorridor(nil)
	a, b := testdata.CorridorA, testdata.CorridorB
	cases := []struct {
		name string
		trip trippoint.Trip
		want Direction
	}{
		{"exact ends", trip(a, b), DirectionAB},
		{"near ends", trip(offset(a, 10, 170), offset(b, 200, 170)), DirectionAB},
		{"first too far", trip(offset(a, 10, 180), b), DirectionNone},
		{"last too far", trip(a, offset(b, 300, 180)), DirectionNone},
		{"same end", trip(a, offset(a, 90, 50)), DirectionNone},
		{"elsewhere", trip(offset(a, 180, 80_000), offset(b, 180, 80_000)), DirectionNone},
	}
	for _, cc := range cases {
		t.Run(cc.name, func(t *testing.T) {
			if got := c.Direction(cc.trip); got != cc.want {
				t.Errorf("got=%v want=%v", got, cc.want)
			}
			if got := c.Contains(cc.trip); got != (cc.want != DirectionNone) {
				t.Errorf("Contains got=%v", got)
			}
		})
	}
}

func TestCorridor_Symmetry(t *testing.T) {
	c := NewCorridor(nil)
	a, b := testdata.CorridorA, testdata.CorridorB
	for _, tr := range []trippoint.Trip{
		trip(a, b),
		trip(offset(a, 45, 100), offset(b, 135, 150)),
		trip(a, offset(b, 0, 500)),
		trip(offset(a, 270, 174), b),
	} {
		fwd, rev := c.Contains(tr), c.Contains(reversed(tr))
		if fwd != rev {
			t.Errorf("forward=%v reversed=%v", fwd, rev)
		}
		if fwd && c.Direction(reversed(tr)) != DirectionBA {
			t.Errorf("reversed direction got=%v", c.Direction(reversed(tr)))
		}
	}
}

func TestCorridor_Validate(t *testing.T) {
	c := NewCorridor(nil)
	if err := c.Validate(trip(testdata.CorridorB, testdata.CorridorA)); err != nil {
		t.Errorf("got=%v want nil", err)
	}
	err := c.Validate(trip(testdata.CorridorA, testdata.CorridorA))
	if !errors.Is(err, ErrOutOfCorridor) {
		t.Errorf("got=%v want=%v", err, ErrOutOfCorridor)
	}
	if err := c.Validate(nil); !errors.Is(err, ErrOutOfCorridor) {
		t.Errorf("got=%v want=%v", err, ErrOutOfCorridor)
	}
}

func TestCorridor_Radius(t *testing.T) {
	cfg := params.DefaultCorridorConfig()
	cfg.Radius = 1_000
	c := NewCorridor(cfg)
	if !c.Contains(trip(offset(testdata.CorridorA, 0, 900), testdata.CorridorB)) {
		t.Error("expected 900m to be within a 1km radius")
	}
}
