// Package metrics meters an analysis run and logs its progress on an interval.
package metrics

import (
	"log/slog"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/ethereum/go-ethereum/metrics"
	"github.com/rotblauer/bestroute/common"
	"github.com/rotblauer/bestroute/nmea"
)

// TickMeter counts logs, their lines and points, and accepted trips, and logs the rates every interval.
// The zero value and nil are inert.
type TickMeter struct {
	interval time.Duration
	started  time.Time
	ticker   *time.Ticker
	done     chan struct{}
	stopOnce sync.Once

	mu   sync.Mutex
	last string // name of the last log marked

	reg        metrics.Registry
	logs       metrics.Counter
	lines      metrics.Counter
	points     metrics.Counter
	accepted   metrics.Counter
	rejected   metrics.Counter
	logMeter   metrics.Meter
	pointMeter metrics.Meter
}

// Totals are the counts marked so far.
// Points are the accepted position sentences. Lines counts every line of the logs, preamble included.
type Totals struct {
	Logs, Lines, Points, Accepted, Rejected int64
}

// NewTickMeter starts a meter. Interval zero disables the periodic log line.
func NewTickMeter(interval time.Duration) *TickMeter {
	// Enable metrics package.
	// Won't work without this global setting.
	metrics.Enabled = true

	reg := metrics.NewRegistry()
	m := &TickMeter{
		reg:        reg,
		interval:   interval,
		started:    time.Now(),
		done:       make(chan struct{}),
		logs:       metrics.NewCounter(),
		lines:      metrics.NewCounter(),
		points:     metrics.NewCounter(),
		accepted:   metrics.NewCounter(),
		rejected:   metrics.NewCounter(),
		logMeter:   metrics.NewMeter(),
		pointMeter: metrics.NewMeter(),
	}
	for name, metric := range map[string]interface{}{
		"logs.count":     m.logs,
		"lines.count":    m.lines,
		"points.count":   m.points,
		"accepted.count": m.accepted,
		"rejected.count": m.rejected,
		"logs.meter":     m.logMeter,
		"points.meter":   m.pointMeter,
	} {
		if err := reg.Register(name, metric); err != nil {
			panic(err)
		}
	}
	if interval > 0 {
		m.ticker = time.NewTicker(interval)
		go m.run()
	}
	return m
}

// Mark records one analyzed log with its parse stats.
func (m *TickMeter) Mark(name string, stats nmea.Stats, accepted bool) {
	if m == nil || m.reg == nil {
		return
	}
	m.mu.Lock()
	m.last = name
	m.mu.Unlock()
	m.logs.Inc(1)
	m.lines.Inc(int64(stats.Lines))
	m.points.Inc(int64(stats.Points))
	m.logMeter.Mark(1)
	m.pointMeter.Mark(int64(stats.Points))
	if accepted {
		m.accepted.Inc(1)
	} else {
		m.rejected.Inc(1)
	}
}

func (m *TickMeter) Totals() Totals {
	if m == nil || m.reg == nil {
		return Totals{}
	}
	return Totals{
		Logs:     m.logs.Snapshot().Count(),
		Lines:    m.lines.Snapshot().Count(),
		Points:   m.points.Snapshot().Count(),
		Accepted: m.accepted.Snapshot().Count(),
		Rejected: m.rejected.Snapshot().Count(),
	}
}

func (m *TickMeter) run() {
	for {
		select {
		case <-m.done:
			return
		case <-m.ticker.C:
			m.Log()
		}
	}
}

func (m *TickMeter) Log() {
	if m == nil || m.reg == nil {
		return
	}
	logSnap := m.logMeter.Snapshot()
	pointSnap := m.pointMeter.Snapshot()
	m.mu.Lock()
	last := m.last
	m.mu.Unlock()

	slog.Info("Analyzed logs", "n", humanize.Comma(logSnap.Count()),
		"lines", humanize.Comma(m.lines.Snapshot().Count()),
		"points", humanize.Comma(pointSnap.Count()),
		"accepted", humanize.Comma(m.accepted.Snapshot().Count()),
		"last", last,
		"lps", common.DecimalToFixed(logSnap.Rate1(), 1),
		"pps", common.DecimalToFixed(pointSnap.Rate1(), 0),
		"running", time.Since(m.started).Round(time.Millisecond))
}

func (m *TickMeter) Stop() {
	if m == nil || m.reg == nil {
		return
	}
	m.stopOnce.Do(func() {
		if m.ticker != nil {
			m.ticker.Stop()
			close(m.done)
		}
		m.logMeter.Stop()
		m.pointMeter.Stop()
	})
}
