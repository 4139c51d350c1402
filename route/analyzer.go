package route

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/ethereum/go-ethereum/event"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/mitchellh/hashstructure/v2"
	"github.com/rotblauer/bestroute/common"
	"github.com/rotblauer/bestroute/geo/geofence"
	"github.com/rotblauer/bestroute/geo/motion"
	"github.com/rotblauer/bestroute/geo/stops"
	"github.com/rotblauer/bestroute/geo/turns"
	"github.com/rotblauer/bestroute/nmea"
	"github.com/rotblauer/bestroute/params"
	"github.com/rotblauer/bestroute/score"
	"golang.org/x/sync/errgroup"
)

// Analyzer runs the per-trip pipeline: parse, check the corridor, detect events, score.
// It holds no per-run state; Run builds a fresh result every call.
type Analyzer struct {
	Config *params.Config
	// Feed receives every log's result as soon as it is known, in completion order.
	// Subscribers must keep up; a send blocks until every subscriber has received it.
	Feed event.FeedOf[TripResult]

	parser   *nmea.Parser
	corridor *geofence.Corridor
	turns    *turns.Detector
	logger   *slog.Logger
}

func NewAnalyzer(config *params.Config) *Analyzer {
	if config == nil {
		config = params.DefaultConfig()
	}
	return &Analyzer{
		Config:   config,
		parser:   nmea.NewParser(&config.Parser),
		corridor: geofence.NewCorridor(&config.Corridor),
		turns:    turns.NewDetector(&config.Turns),
		logger:   slog.With("module", "route"),
	}
}

func (a *Analyzer) Corridor() *geofence.Corridor {
	return a.corridor
}

// Analyze scores one log. Rejections are reported in the result, never as an error.
func (a *Analyzer) Analyze(log NamedLog) TripResult {
	res := TripResult{Name: log.Name}
	if log.Err != nil {
		res.Err = fmt.Errorf("read %s: %w", log.Name, log.Err)
		return res
	}
	trip, stats, err := a.parser.Parse(log.Lines)
	res.Stats = stats
	if err != nil {
		res.Err = err
		return res
	}
	if err := a.corridor.Validate(trip); err != nil {
		res.Err = err
		return res
	}

	start := motion.StartIndex(trip, a.Config.Motion.StartSpeed)
	set := stops.NewClassifier(&a.Config.Stops).Detect(trip, start)
	set.Turns = a.turns.Detect(trip, start)
	breakdown := score.Cost(trip, set, &a.Config.Cost)

	fp, err := trip.Fingerprint()
	if err != nil {
		// Points are plain values; this does not happen.
		a.logger.Warn("Failed to fingerprint trip", "name", log.Name, "error", err)
	}
	res.Accepted = true
	res.Scored = &ScoredTrip{
		Name:        log.Name,
		Trip:        trip,
		Direction:   a.corridor.Direction(trip),
		Events:      set,
		Breakdown:   breakdown,
		Cost:        breakdown.Cost,
		Fingerprint: fp,
	}
	return res
}

// contentKey hashes a log's lines. Logs with equal lines are analyzed once per run.
func contentKey(lines []string) (uint64, error) {
	return hashstructure.Hash(lines, hashstructure.FormatV2, nil)
}

// renamed copies a cached result for a log of identical content.
func renamed(r TripResult, name string) TripResult {
	r.Name = name
	if r.Scored != nil {
		s := *r.Scored
		s.Name = name
		r.Scored = &s
	}
	return r
}

// Run analyzes every log from in on a bounded pool of workers and selects the best trip.
// Results keep the order logs were received in, whatever order the workers finish.
// It returns ErrEmptyBatch, with the rejected results, when no trip was accepted,
// and ctx.Err() if ctx is canceled before in is drained.
func (a *Analyzer) Run(ctx context.Context, in <-chan NamedLog) (*BatchResult, error) {
	started := time.Now()
	cache, err := lru.New[uint64, TripResult](a.Config.Batch.CacheSize)
	if err != nil {
		return nil, err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.Config.Batch.Workers)

	var mu sync.Mutex
	slots := []*TripResult{}
	cacheHits := 0

dispatch:
	for {
		var log NamedLog
		var ok bool
		select {
		case <-gctx.Done():
			break dispatch
		case log, ok = <-in:
			if !ok {
				break dispatch
			}
		}
		slot := &TripResult{}
		slots = append(slots, slot)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			key, kerr := contentKey(log.Lines)
			if kerr == nil && log.Err == nil {
				if hit, ok := cache.Get(key); ok {
					*slot = renamed(hit, log.Name)
					mu.Lock()
					cacheHits++
					mu.Unlock()
					a.report(*slot)
					return nil
				}
			}
			*slot = a.Analyze(log)
			if kerr == nil && log.Err == nil {
				cache.Add(key, *slot)
			}
			a.report(*slot)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result := &BatchResult{Trips: make([]TripResult, 0, len(slots))}
	for _, slot := range slots {
		result.Trips = append(result.Trips, *slot)
	}
	a.logger.Info("Analyzed batch",
		"logs", humanize.Comma(int64(len(result.Trips))),
		"rejected", result.Rejected(),
		"duplicates", cacheHits,
		"elapsed", time.Since(started).Round(time.Millisecond))

	best, err := SelectBest(result.Scored())
	if err != nil {
		return result, err
	}
	result.Best = best
	a.logger.Info("File with minimum cost", "name", best.Name,
		"cost", common.DecimalToFixed(best.Cost, 4),
		"trip_minutes", common.DecimalToFixed(best.Breakdown.TripMinutes(), 1),
		"direction", best.Direction.String())
	return result, nil
}

func (a *Analyzer) report(r TripResult) {
	a.Feed.Send(r)
	if !r.Accepted {
		level := slog.LevelInfo
		if !errors.Is(r.Err, nmea.ErrEmptyTrip) && !errors.Is(r.Err, geofence.ErrOutOfCorridor) {
			level = slog.LevelWarn
		}
		a.logger.Log(context.Background(), level, "Rejected trip", "name", r.Name, "error", r.Err)
		return
	}
	a.logger.Info("Scored trip", "name", r.Name,
		"trip_minutes", common.DecimalToFixed(r.Scored.Breakdown.TripMinutes(), 1),
		"cost", common.DecimalToFixed(r.Scored.Cost, 4),
		"turns", len(r.Scored.Events.Turns),
		"stops", r.Scored.Events.Stops())
}
