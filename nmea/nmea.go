// Package nmea reconstructs trips from raw GPS receiver sentence logs.
//
// Only recommended-minimum sentences ($GPRMC) are used. A line becomes a trip point when
// it has the configured sentence type, a valid-fix status flag and exactly the configured
// number of fields; anything else is skipped without error.
//
//	$GPRMC,hhmmss.ss,A,ddmm.mmmm,N,dddmm.mmmm,W,speed,heading,ddmmyy,magvar,E,mode*cs
//	  0        1     2     3     4     5      6    7      8      9      10   11   12
package nmea

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"
)

// ErrEmptyTrip is returned for logs with fewer than two usable points.
var ErrEmptyTrip = errors.New("trip has fewer than 2 valid points")

// errMalformed marks a sentence dropped during parsing. It never leaves the package.
var errMalformed = errors.New("malformed sentence")

const (
	fieldType = iota
	fieldTime
	fieldStatus
	fieldLat
	fieldLatHemisphere
	fieldLon
	fieldLonHemisphere
	fieldSpeed
	fieldHeading
	fieldDate
)

// ConvertCoordinate decodes a packed degrees-and-minutes value (degrees*100 + minutes)
// into signed fractional degrees.
// Southern and western hemispheres are negative.
func ConvertCoordinate(raw float64, hemisphere string) float64 {
	degrees := math.Floor(raw / 100)
	minutes := raw - degrees*100
	v := degrees + minutes/60
	switch hemisphere {
	case "S", "W":
		return -v
	}
	return v
}

// SecondsOfDay converts an hhmmss[.sss] time field to seconds since midnight.
func SecondsOfDay(field string) (float64, error) {
	if len(field) < 6 {
		return 0, fmt.Errorf("%w: short time field %q", errMalformed, field)
	}
	hh, err := strconv.Atoi(field[0:2])
	if err != nil {
		return 0, fmt.Errorf("%w: time hours: %v", errMalformed, err)
	}
	mm, err := strconv.Atoi(field[2:4])
	if err != nil {
		return 0, fmt.Errorf("%w: time minutes: %v", errMalformed, err)
	}
	ss, err := strconv.ParseFloat(field[4:], 64)
	if err != nil {
		return 0, fmt.Errorf("%w: time seconds: %v", errMalformed, err)
	}
	if hh > 23 || mm > 59 || ss >= 61 {
		return 0, fmt.Errorf("%w: time out of range %q", errMalformed, field)
	}
	return float64(hh*3600+mm*60) + ss, nil
}

// fixTime joins the ddmmyy date field and the seconds of day into a UTC time.
// Two-digit years follow time.Parse: 69-99 are 19yy, the rest 20yy.
func fixTime(date string, secondsOfDay float64) (time.Time, bool) {
	if len(date) != 6 {
		return time.Time{}, false
	}
	day, err := time.Parse("020106", date)
	if err != nil {
		return time.Time{}, false
	}
	nanos := time.Duration(math.Round(secondsOfDay * float64(time.Second)))
	return day.Add(nanos).UTC(), true
}

func parseCoordinate(value, hemisphere string, negative, positive string) (float64, error) {
	if hemisphere != negative && hemisphere != positive {
		return 0, fmt.Errorf("%w: hemisphere %q", errMalformed, hemisphere)
	}
	raw, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: coordinate: %v", errMalformed, err)
	}
	return ConvertCoordinate(raw, hemisphere), nil
}
