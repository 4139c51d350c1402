package testdata

import (
	"fmt"
	"math"
	"strings"

	"github.com/rotblauer/bestroute/types/trippoint"
)

// Preamble is the five-line header receivers write at the top of each log.
var Preamble = []string{
	"Lat,Lon,Speed,Heading,Time",
	"GPS logger v2.1",
	"Baud 9600",
	"$GPGGA,000000.00,,,,,0,00,99.99,,,,,,*60",
	"",
}

// PackCoordinate encodes signed degrees as a ddmm.mmmm value and hemisphere.
// lonDigits is 3 for longitude, 2 for latitude.
func PackCoordinate(deg float64, lonDigits int, neg, pos string) (string, string) {
	h := pos
	if deg < 0 {
		h = neg
		deg = -deg
	}
	whole := math.Floor(deg)
	minutes := (deg - whole) * 60
	return fmt.Sprintf("%0*d%07.4f", lonDigits, int(whole), minutes), h
}

// FormatTime encodes seconds of day as hhmmss.ss.
func FormatTime(seconds float64) string {
	s := math.Mod(seconds, 86400)
	hh := int(s) / 3600
	mm := (int(s) % 3600) / 60
	ss := s - float64(hh*3600+mm*60)
	return fmt.Sprintf("%02d%02d%05.2f", hh, mm, ss)
}

// RMC returns a valid 13-field $GPRMC sentence for the point.
func RMC(p trippoint.TripPoint) string {
	lat, latH := PackCoordinate(p.Lat, 2, "S", "N")
	lon, lonH := PackCoordinate(p.Lon, 3, "W", "E")
	return fmt.Sprintf("$GPRMC,%s,A,%s,%s,%s,%s,%.2f,%.2f,150421,,,A*00",
		FormatTime(p.Timestamp), lat, latH, lon, lonH, p.Speed, p.Heading)
}

// GGA returns a fix-data sentence for the point, which the parser ignores.
func GGA(p trippoint.TripPoint) string {
	lat, latH := PackCoordinate(p.Lat, 2, "S", "N")
	lon, lonH := PackCoordinate(p.Lon, 3, "W", "E")
	return fmt.Sprintf("$GPGGA,%s,%s,%s,%s,%s,1,08,0.9,150.0,M,-34.0,M,,*47",
		FormatTime(p.Timestamp), lat, latH, lon, lonH)
}

// Log renders a trip as a receiver log: the preamble, then RMC and GGA pairs.
func Log(trip trippoint.Trip) []string {
	lines := append([]string{}, Preamble...)
	for _, p := range trip {
		lines = append(lines, RMC(p), GGA(p))
	}
	return lines
}

// LogText renders Log as newline-separated text.
func LogText(trip trippoint.Trip) string {
	return strings.Join(Log(trip), "\n") + "\n"
}
