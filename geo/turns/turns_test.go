package turns

import (
	"testing"

	"github.com/rotblauer/bestroute/params"
	"github.com/rotblauer/bestroute/testing/testdata"
	"github.com/rotblauer/bestroute/types/event"
)

// headings returns n headings of before, then the rest of after, with the change at k.
func headings(n, k int, before, after float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = before
		if i >= k {
			out[i] = after
		}
	}
	return out
}

func TestDetect_WindowConsumption(t *testing.T) {
	// One 90° change at k=50. The first i with headings i and i+30 on either side is 20.
	trip := testdata.Headings(30, headings(200, 50, 0, 90)...)
	got := Detect(trip, 0, nil)
	if len(got) != 1 {
		t.Fatalf("got=%d turns want=1: %+v", len(got), got)
	}
	if got[0].Index != 20 {
		t.Errorf("index got=%d want=20", got[0].Index)
	}
	if got[0].Direction != event.DirectionRight || got[0].Angle != -90 {
		t.Errorf("got=%v %v want right -90", got[0].Direction, got[0].Angle)
	}

	// The cursor resumes at Index+Window.
	d := NewDetector(nil)
	next, ev := d.Step(trip, 20)
	if ev == nil || next != 50 {
		t.Errorf("step got=%d,%v want=50,turn", next, ev)
	}
	next, ev = d.Step(trip, 19)
	if ev != nil || next != 20 {
		t.Errorf("step got=%d,%v want=20,nil", next, ev)
	}
}

func TestDetect_Cases(t *testing.T) {
	cases := []struct {
		name   string
		h      []float64
		start  int
		want   int
		wantLR []event.Direction
	}{
		{"straight", headings(100, 50, 73, 73), 0, 0, nil},
		{"left", headings(100, 50, 90, 0), 0, 1, []event.Direction{event.DirectionLeft}},
		{"clockwise across north", headings(100, 50, 280, 10), 0, 0, nil},
		{"clockwise across north from 350", headings(100, 50, 350, 80), 0, 0, nil},
		{"counter-clockwise across north", headings(100, 50, 10, 280), 0, 1, []event.Direction{event.DirectionLeft}},
		{"counter-clockwise across north to 358", headings(100, 50, 0.16, 270.2), 0, 1, []event.Direction{event.DirectionLeft}},
		{"60 is exclusive", headings(100, 50, 0, 60), 0, 0, nil},
		{"120 is exclusive", headings(100, 50, 0, 120), 0, 0, nil},
		{"u-turn", headings(100, 50, 0, 180), 0, 0, nil},
		{"just over 60", headings(100, 50, 0, 60.5), 0, 1, []event.Direction{event.DirectionRight}},
		{"start after turn", headings(100, 50, 0, 90), 60, 0, nil},
		{"too short", headings(30, 10, 0, 90), 0, 0, nil},
		{
			"two turns",
			append(headings(100, 40, 0, 90), headings(100, 40, 90, 180)...),
			0, 2, []event.Direction{event.DirectionRight, event.DirectionRight},
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := Detect(testdata.Headings(30, c.h...), c.start, nil)
			if len(got) != c.want {
				t.Fatalf("got=%d turns want=%d: %+v", len(got), c.want, got)
			}
			for i, ev := range got {
				if ev.Direction != c.wantLR[i] {
					t.Errorf("%d: got=%v want=%v", i, ev.Direction, c.wantLR[i])
				}
				if ev.Kind != event.KindTurn || ev.Index < c.start {
					t.Errorf("%d: got=%+v", i, ev)
				}
			}
		})
	}
}

func TestDetect_Window(t *testing.T) {
	cfg := params.DefaultTurnConfig()
	cfg.Window = 5
	got := Detect(testdata.Headings(30, headings(20, 10, 0, 90)...), 0, cfg)
	if len(got) != 1 || got[0].Index != 5 {
		t.Errorf("got=%+v want one turn at 5", got)
	}
}

func TestDetect_WrapClockwise(t *testing.T) {
	cfg := params.DefaultTurnConfig()
	cfg.WrapClockwise = true
	cases := []struct {
		name   string
		before float64
		after  float64
	}{
		{"280 to 10", 280, 10},
		{"350 to 80", 350, 80},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			trip := testdata.Headings(30, headings(100, 50, c.before, c.after)...)
			if got := Detect(trip, 0, nil); len(got) != 0 {
				t.Errorf("default got=%d turns want=0", len(got))
			}
			got := Detect(trip, 0, cfg)
			if len(got) != 1 {
				t.Fatalf("got=%d turns want=1: %+v", len(got), got)
			}
			if got[0].Direction != event.DirectionRight || got[0].Angle != -90 {
				t.Errorf("got=%v %v want right -90", got[0].Direction, got[0].Angle)
			}
		})
	}
}
