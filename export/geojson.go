// Package export renders scored trips for map tools: GeoJSON, KML and GPX.
package export

import (
	"io"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/rotblauer/bestroute/common"
	"github.com/rotblauer/bestroute/route"
	"github.com/rotblauer/bestroute/types/event"
)

// EventFeature returns an event as a GeoJSON point with its kind and measurements.
func EventFeature(ev event.Event) *geojson.Feature {
	pt := ev.Point()
	f := geojson.NewFeature(orb.Point{
		common.DecimalToFixed(pt.Lon(), common.GPSPrecision6),
		common.DecimalToFixed(pt.Lat(), common.GPSPrecision6),
	})
	f.Properties["kind"] = ev.Kind.String()
	f.Properties["index"] = ev.Index
	switch ev.Kind {
	case event.KindTurn:
		f.Properties["direction"] = ev.Direction.String()
		f.Properties["angle"] = ev.Angle
	default:
		f.Properties["duration"] = ev.Duration
		f.Properties["displacement"] = ev.Displacement
	}
	return f
}

// PathFeature returns the trip's path with its cost breakdown as properties.
func PathFeature(st route.ScoredTrip) *geojson.Feature {
	f := geojson.NewFeature(st.Trip.LineString())
	f.Properties["name"] = st.Name
	f.Properties["direction"] = st.Direction.String()
	for k, v := range st.Breakdown.Fields() {
		f.Properties[k] = v
	}
	return f
}

// FeatureCollection is the path followed by every event, by kind, bounded by the trip.
func FeatureCollection(st route.ScoredTrip) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	fc.BBox = geojson.NewBBox(st.Trip.Bound())
	fc.Append(PathFeature(st))
	for _, k := range event.Kinds {
		for _, ev := range st.Events.ByKind(k) {
			fc.Append(EventFeature(ev))
		}
	}
	return fc
}

func WriteGeoJSON(w io.Writer, st route.ScoredTrip) error {
	b, err := FeatureCollection(st).MarshalJSON()
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}
