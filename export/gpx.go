package export

import (
	"fmt"
	"io"

	"github.com/rotblauer/bestroute/route"
	"github.com/rotblauer/bestroute/types/event"
	"github.com/twpayne/go-gpx"
)

// GPX returns the trip as one track, with a waypoint per event.
// Points without a full fix time are written without one.
func GPX(st route.ScoredTrip) *gpx.GPX {
	pts := make([]*gpx.WptType, 0, len(st.Trip))
	for _, p := range st.Trip {
		pts = append(pts, &gpx.WptType{
			Lat:  p.Lat,
			Lon:  p.Lon,
			Time: p.Time,
		})
	}
	wpts := []*gpx.WptType{}
	for _, k := range event.Kinds {
		for _, ev := range st.Events.ByKind(k) {
			w := &gpx.WptType{
				Lat:  ev.Lat,
				Lon:  ev.Lon,
				Name: fmt.Sprintf("%s %d", k, ev.Index),
				Type: k.String(),
			}
			if ev.Index < len(st.Trip) {
				w.Time = st.Trip[ev.Index].Time
			}
			wpts = append(wpts, w)
		}
	}
	return &gpx.GPX{
		Version: "1.1",
		Creator: "bestroute",
		Wpt:     wpts,
		Trk: []*gpx.TrkType{{
			Name:   st.Name,
			Desc:   fmt.Sprintf("cost %.4f", st.Cost),
			TrkSeg: []*gpx.TrkSegType{{TrkPt: pts}},
		}},
	}
}

func WriteGPX(w io.Writer, st route.ScoredTrip) error {
	return GPX(st).WriteIndent(w, "", "  ")
}
