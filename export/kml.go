package export

import (
	"fmt"
	"image/color"
	"io"

	"github.com/rotblauer/bestroute/route"
	"github.com/rotblauer/bestroute/types/event"
	"github.com/twpayne/go-kml/v3"
	"github.com/twpayne/go-kml/v3/icon"
)

const pathDescription = "Speed in knots, instead of altitude"

var pathColor = color.RGBA{R: 255, G: 255, B: 0, A: 255}

// kindIcons are the paddle icons of each event kind.
var kindIcons = map[event.Kind]string{
	event.KindTurn:          "purple-circle",
	event.KindStopSign:      "red-circle",
	event.KindTrafficSignal: "grn-circle",
	event.KindErrand:        "orange-circle",
}

// KMLFiles names the per-kind files written for the best trip.
var KMLFiles = map[event.Kind]string{
	event.KindTurn:          "left_right.kml",
	event.KindStopSign:      "stop_signs.kml",
	event.KindTrafficSignal: "traffic_signal.kml",
	event.KindErrand:        "errands.kml",
}

// HazardsKMLFile holds every event of the best trip in one file.
const HazardsKMLFile = "GPS_Hazards.kml"

func kindStyle(k event.Kind) *kml.StyleElement {
	return kml.SharedStyle(k.String(),
		kml.IconStyle(kml.Icon(kml.Href(icon.PaddleHref(kindIcons[k])))),
	)
}

func pathStyle() *kml.StyleElement {
	return kml.SharedStyle("path",
		kml.LineStyle(kml.Color(pathColor), kml.Width(4)),
	)
}

func eventPlacemark(ev event.Event) kml.Element {
	desc := fmt.Sprintf("%s, %.1fs", ev.Kind, ev.Duration)
	if ev.Kind == event.KindTurn {
		desc = fmt.Sprintf("%s turn, %.1f°", ev.Direction, ev.Angle)
	}
	return kml.Placemark(
		kml.Name(fmt.Sprintf("Point: %v, %v", ev.Lon, ev.Lat)),
		kml.Description(desc),
		kml.StyleURL("#"+ev.Kind.String()),
		kml.Point(
			kml.AltitudeMode(kml.AltitudeModeRelativeToGround),
			kml.Coordinates(kml.Coordinate{Lon: ev.Lon, Lat: ev.Lat}),
		),
	)
}

func kindFolder(st route.ScoredTrip, k event.Kind) kml.Element {
	children := []kml.Element{kml.Name(k.String())}
	for _, ev := range st.Events.ByKind(k) {
		children = append(children, eventPlacemark(ev))
	}
	return kml.Folder(children...)
}

// PathPlacemark draws the trip as a yellow line raised by its reported speed.
func PathPlacemark(st route.ScoredTrip) kml.Element {
	coords := make([]kml.Coordinate, 0, len(st.Trip))
	for _, p := range st.Trip {
		coords = append(coords, kml.Coordinate{Lon: p.Lon, Lat: p.Lat, Alt: p.Speed})
	}
	return kml.Placemark(
		kml.Name(st.Name),
		kml.Description(pathDescription),
		kml.StyleURL("#path"),
		kml.LineString(
			kml.Extrude(true),
			kml.Tessellate(true),
			kml.AltitudeMode(kml.AltitudeModeRelativeToGround),
			kml.Coordinates(coords...),
		),
	)
}

// PathKML is a document with only the trip's path.
func PathKML(st route.ScoredTrip) *kml.KMLElement {
	return kml.KML(kml.Document(
		kml.Name(st.Name),
		pathStyle(),
		PathPlacemark(st),
	))
}

// EventsKML is a document with the events of the given kinds, one folder per kind.
func EventsKML(st route.ScoredTrip, kinds ...event.Kind) *kml.KMLElement {
	children := []kml.Element{kml.Name(st.Name)}
	for _, k := range kinds {
		children = append(children, kindStyle(k))
	}
	for _, k := range kinds {
		children = append(children, kindFolder(st, k))
	}
	return kml.KML(kml.Document(children...))
}

// TripKML is the path and every event in one document.
func TripKML(st route.ScoredTrip) *kml.KMLElement {
	children := []kml.Element{kml.Name(st.Name), pathStyle()}
	for _, k := range event.Kinds {
		children = append(children, kindStyle(k))
	}
	children = append(children, PathPlacemark(st))
	for _, k := range event.Kinds {
		children = append(children, kindFolder(st, k))
	}
	return kml.KML(kml.Document(children...))
}

func WriteKML(w io.Writer, doc *kml.KMLElement) error {
	return doc.WriteIndent(w, "", "  ")
}
