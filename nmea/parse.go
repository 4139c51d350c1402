package nmea

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/rotblauer/bestroute/params"
	"github.com/rotblauer/bestroute/types/trippoint"
)

// Stats counts what happened to the lines of one log.
type Stats struct {
	Lines     int // all lines, preamble included
	Skipped   int // preamble lines
	Ignored   int // other sentence types and invalid fixes
	Malformed int // right type and status, but unusable fields
	Points    int
}

type Parser struct {
	Config *params.ParserConfig
	logger *slog.Logger
}

func NewParser(config *params.ParserConfig) *Parser {
	if config == nil {
		config = params.DefaultParserConfig()
	}
	return &Parser{
		Config: config,
		logger: slog.With("module", "nmea"),
	}
}

// Parse reconstructs a trip from the lines of one log, in line order.
// It returns ErrEmptyTrip, along with whatever points it found, when fewer than two
// lines were usable.
func (p *Parser) Parse(lines []string) (trippoint.Trip, Stats, error) {
	stats := Stats{Lines: len(lines)}
	trip := make(trippoint.Trip, 0, len(lines))
	heading := 0.0

	for i, line := range lines {
		if i < p.Config.SkipLines {
			stats.Skipped++
			continue
		}
		fields := strings.Split(strings.TrimSpace(line), ",")
		if fields[fieldType] != p.Config.SentenceType {
			stats.Ignored++
			continue
		}
		if len(fields) <= fieldStatus || fields[fieldStatus] != p.Config.ValidFlag {
			stats.Ignored++
			continue
		}
		if len(fields) != p.Config.FieldCount {
			stats.Malformed++
			p.logger.Debug("Dropped sentence", "line", i+1, "fields", len(fields))
			continue
		}
		pt, err := p.point(fields, heading)
		if err != nil {
			stats.Malformed++
			p.logger.Debug("Dropped sentence", "line", i+1, "error", err)
			continue
		}
		heading = pt.Heading
		trip = append(trip, pt)
	}

	stats.Points = len(trip)
	if len(trip) < 2 {
		return trip, stats, ErrEmptyTrip
	}
	return trip, stats, nil
}

// point decodes the fields of one accepted sentence.
// An empty heading field inherits lastHeading; receivers leave it blank when not moving.
func (p *Parser) point(fields []string, lastHeading float64) (trippoint.TripPoint, error) {
	lat, err := parseCoordinate(fields[fieldLat], fields[fieldLatHemisphere], "S", "N")
	if err != nil {
		return trippoint.TripPoint{}, err
	}
	lon, err := parseCoordinate(fields[fieldLon], fields[fieldLonHemisphere], "W", "E")
	if err != nil {
		return trippoint.TripPoint{}, err
	}
	speed, err := strconv.ParseFloat(fields[fieldSpeed], 64)
	if err != nil {
		return trippoint.TripPoint{}, errors.Join(errMalformed, err)
	}
	if speed < 0 || math.IsNaN(speed) || math.IsInf(speed, 0) {
		return trippoint.TripPoint{}, fmt.Errorf("%w: speed %q", errMalformed, fields[fieldSpeed])
	}
	heading := lastHeading
	if fields[fieldHeading] != "" {
		heading, err = strconv.ParseFloat(fields[fieldHeading], 64)
		if err != nil {
			return trippoint.TripPoint{}, errors.Join(errMalformed, err)
		}
	}
	seconds, err := SecondsOfDay(fields[fieldTime])
	if err != nil {
		return trippoint.TripPoint{}, err
	}
	pt := trippoint.TripPoint{
		Lat:       lat,
		Lon:       lon,
		Speed:     speed,
		Heading:   heading,
		Timestamp: seconds,
		TimeRaw:   fields[fieldTime],
	}
	if t, ok := fixTime(fields[fieldDate], seconds); ok {
		pt.Time = t
	}
	return pt, nil
}

// Parse reconstructs a trip using the default parser config.
func Parse(lines []string) (trippoint.Trip, error) {
	trip, _, err := NewParser(nil).Parse(lines)
	return trip, err
}
