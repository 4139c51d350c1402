package influxdb

import (
	"sync"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/rotblauer/bestroute/params"
	"github.com/rotblauer/bestroute/route"
)

const measurement = "bestroute_trip"

// ExportScoredTrips posts one point per trip, with its cost breakdown, to an InfluxDB Write API.
// The Write API will buffer and flush.
// The last error encountered is returned.
func ExportScoredTrips(config *params.InfluxConfig, trips []route.ScoredTrip, best string) error {
	opts := influxdb2.DefaultOptions()
	opts.SetPrecision(time.Second)
	client := influxdb2.NewClientWithOptions(config.URL, config.Token, opts)
	writeAPI := client.WriteAPI(config.Org, config.Bucket)

	// Errors returns a channel for reading errors which occurs during async writes.
	// Must be called before performing any writes for errors to be collected.
	// The chan is unbuffered and must be drained or the writer will block.
	// https://github.com/influxdata/influxdb-client-go?tab=readme-ov-file#reading-async-errors
	errorsCh := writeAPI.Errors()
	var err error
	wait := sync.WaitGroup{}
	wait.Add(1)
	go func() {
		defer wait.Done()
		for e := range errorsCh {
			if e != nil {
				err = e
			}
		}
	}()

	now := time.Now()
	for _, st := range trips {
		ts := now
		if len(st.Trip) > 0 && !st.Trip.First().Time.IsZero() {
			ts = st.Trip.First().Time
		}
		p := influxdb2.NewPointWithMeasurement(measurement).
			SetTime(ts).
			AddTag("name", st.Name).
			AddTag("direction", st.Direction.String()).
			AddTag("mode", st.Breakdown.Mode)
		for k, v := range st.Breakdown.Fields() {
			p.AddField(k, v)
		}
		p.AddField("stop_signs", len(st.Events.StopSigns))
		p.AddField("traffic_signals", len(st.Events.TrafficSignals))
		p.AddField("errands", len(st.Events.Errands))
		if st.Name == best {
			p.AddField("best", 1)
		}
		writeAPI.WritePoint(p)
	}
	writeAPI.Flush()
	client.Close()
	wait.Wait()
	return err
}
