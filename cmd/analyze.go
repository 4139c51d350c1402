/*
Copyright © 2024 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/rotblauer/bestroute/common"
	"github.com/rotblauer/bestroute/export"
	"github.com/rotblauer/bestroute/logdir"
	"github.com/rotblauer/bestroute/metrics"
	"github.com/rotblauer/bestroute/metrics/influxdb"
	"github.com/rotblauer/bestroute/params"
	"github.com/rotblauer/bestroute/route"
	"github.com/spf13/cobra"
)

var optNoExport bool
var optProgressInterval time.Duration

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze [DIR]",
	Short: "Score every trip log in a directory and export the best one",
	Long: `Reads every *.txt and *.txt.gz log in DIR (default: the current directory) in name order.

Each log is parsed into a trip. Trips that do not start at one corridor end and finish at the
other are rejected, as are logs with fewer than two valid fixes. Accepted trips are scored and
the cheapest one is written to the export directory:

  <name>.kml, left_right.kml, stop_signs.kml, traffic_signal.kml, errands.kml, GPS_Hazards.kml
  <name>.geojson
  <name>.gpx

Examples:

  bestroute analyze ./logs
  bestroute analyze ./logs --cost-mode legacy --format kml --format gpx --export-all
  BESTROUTE_INFLUX_URL=http://localhost:8086 BESTROUTE_INFLUX_BUCKET=trips bestroute analyze ./logs
`,
	Args: cobra.MaximumNArgs(1),
	PreRun: func(cmd *cobra.Command, args []string) {
		bindFlags(cmd.Flags(), map[string]string{
			"batch.workers":   "workers",
			"cost.mode":       "cost-mode",
			"corridor.radius": "radius",
			"export.dir":      "export-dir",
			"export.formats":  "format",
			"export.all":      "export-all",
			"influx.url":      "influx-url",
		})
	},
	Run: func(cmd *cobra.Command, args []string) {
		setDefaultSlog(cmd, args)

		dir := "."
		if len(args) > 0 {
			dir = args[0]
		}
		cfg, err := loadConfig()
		if err != nil {
			slog.Error("Bad configuration", "error", err)
			os.Exit(1)
		}

		ctx, cancel := common.Interrupted(context.Background())
		defer cancel()

		meter := metrics.NewTickMeter(optProgressInterval)
		defer meter.Stop()

		result, err := analyzeDir(ctx, cfg, dir, meter)
		if err != nil {
			if errors.Is(err, route.ErrEmptyBatch) {
				slog.Error("No trip ran the corridor", "dir", dir, "logs", len(resultTrips(result)))
			} else {
				slog.Error("Analysis failed", "error", err)
			}
			os.Exit(1)
		}
		fmt.Printf("%s\t%.4f\n", result.Best.Name, result.Best.Cost)
	},
}

func resultTrips(r *route.BatchResult) []route.TripResult {
	if r == nil {
		return nil
	}
	return r.Trips
}

// analyzeDir runs the batch over dir and hands the result to the configured exporters.
func analyzeDir(ctx context.Context, cfg *params.Config, dir string, meter *metrics.TickMeter) (*route.BatchResult, error) {
	started := time.Now()
	logs, err := logdir.Stream(ctx, dir)
	if err != nil {
		return nil, err
	}
	analyzer := route.NewAnalyzer(cfg)

	results := make(chan route.TripResult, cfg.Batch.Workers)
	sub := analyzer.Feed.Subscribe(results)
	metered := make(chan struct{})
	go func() {
		defer close(metered)
		mark := func(r route.TripResult) { meter.Mark(r.Name, r.Stats, r.Accepted) }
		for {
			select {
			case r := <-results:
				mark(r)
			case <-sub.Err():
				// Drain what was sent before unsubscribing.
				for {
					select {
					case r := <-results:
						mark(r)
					default:
						return
					}
				}
			}
		}
	}()
	result, err := analyzer.Run(ctx, logs)
	sub.Unsubscribe()
	<-metered
	if err != nil {
		return result, err
	}
	meter.Log()

	if !optNoExport {
		exp := export.NewExporter(&cfg.Export)
		if _, err := exp.Best(result.Best); err != nil {
			return result, err
		}
		if cfg.Export.All {
			if _, err := exp.All(result.Scored()); err != nil {
				return result, err
			}
		}
	}
	if cfg.Influx.URL != "" {
		if err := influxdb.ExportScoredTrips(&cfg.Influx, result.Scored(), result.Best.Name); err != nil {
			slog.Warn("Failed to export scores to InfluxDB", "error", err)
		}
	}
	totals := meter.Totals()
	slog.Info("Done", "logs", humanize.Comma(int64(len(result.Trips))),
		"accepted", len(result.Scored()),
		"lines", humanize.Comma(totals.Lines),
		"points", humanize.Comma(totals.Points),
		"best", result.Best.Name,
		"elapsed", time.Since(started).Round(time.Millisecond))
	return result, nil
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	defaults := params.DefaultConfig()
	analyzeCmd.Flags().Int("workers", defaults.Batch.Workers, "Number of trips to analyze in parallel")
	analyzeCmd.Flags().String("cost-mode", defaults.Cost.Mode, "Cost terms to sum: full (all five) or legacy (duration, dwell, turns)")
	analyzeCmd.Flags().Float64("radius", defaults.Corridor.Radius, "Corridor end radius in meters")
	analyzeCmd.Flags().String("export-dir", defaults.Export.Dir, "Directory to write exports to")
	analyzeCmd.Flags().StringSlice("format", defaults.Export.Formats, "Export formats: kml, geojson, gpx")
	analyzeCmd.Flags().Bool("export-all", defaults.Export.All, "Also export the path of every accepted trip")
	analyzeCmd.Flags().String("influx-url", "", "InfluxDB URL to push per-trip scores to")
	analyzeCmd.Flags().BoolVar(&optNoExport, "no-export", false, "Do not write export files")
	analyzeCmd.Flags().DurationVar(&optProgressInterval, "progress", 5*time.Second, "Interval between progress log lines (0 disables)")
}
