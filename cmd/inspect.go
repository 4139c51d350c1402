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
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/rotblauer/bestroute/common"
	"github.com/rotblauer/bestroute/export"
	"github.com/rotblauer/bestroute/logdir"
	"github.com/rotblauer/bestroute/params"
	"github.com/rotblauer/bestroute/route"
	"github.com/rotblauer/bestroute/types/event"
	"github.com/spf13/cobra"
)

var optInspectOutput string

// inspectCmd represents the inspect command
var inspectCmd = &cobra.Command{
	Use:   "inspect FILE",
	Short: "Analyze one trip log and print its events and cost breakdown",
	Long: `Analyze one trip log and print the result to stdout.

Output formats:

  text     events and cost terms, in columns (default)
  geojson  a FeatureCollection of the path and events
  kml      a document of the path and events

Examples:

  bestroute inspect logs/2021-04-15.txt
  bestroute inspect logs/2021-04-15.txt.gz --output geojson | jq .
`,
	Args: cobra.ExactArgs(1),
	PreRun: func(cmd *cobra.Command, args []string) {
		bindFlags(cmd.Flags(), map[string]string{
			"cost.mode":       "cost-mode",
			"corridor.radius": "radius",
		})
	},
	Run: func(cmd *cobra.Command, args []string) {
		setDefaultSlog(cmd, args)
		cfg, err := loadConfig()
		if err != nil {
			slog.Error("Bad configuration", "error", err)
			os.Exit(1)
		}
		ctx, cancel := common.Interrupted(context.Background())
		defer cancel()

		res, err := inspectFile(ctx, cfg, args[0])
		if err != nil {
			slog.Error("Failed to read log", "error", err)
			os.Exit(1)
		}
		if !res.Accepted {
			slog.Error("Trip rejected", "name", res.Name, "error", res.Err,
				"points", res.Stats.Points, "malformed", res.Stats.Malformed)
			os.Exit(1)
		}
		if err := writeInspection(os.Stdout, res, optInspectOutput); err != nil {
			slog.Error("Failed to write output", "error", err)
			os.Exit(1)
		}
	},
}

func inspectFile(ctx context.Context, cfg *params.Config, path string) (route.TripResult, error) {
	lines, err := logdir.ReadFile(ctx, path)
	if err != nil {
		return route.TripResult{}, err
	}
	return route.NewAnalyzer(cfg).Analyze(route.NamedLog{Name: filepath.Base(path), Lines: lines}), nil
}

func writeInspection(w io.Writer, res route.TripResult, output string) error {
	st := *res.Scored
	switch output {
	case params.ExportFormatGeoJSON:
		return export.WriteGeoJSON(w, st)
	case params.ExportFormatKML:
		return export.WriteKML(w, export.TripKML(st))
	case "text":
	default:
		return fmt.Errorf("unknown output %q", output)
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	b := st.Breakdown
	fmt.Fprintf(tw, "trip\t%s\t%s\n", st.Name, st.Direction)
	fmt.Fprintf(tw, "points\t%d\tmalformed %d, ignored %d\n", res.Stats.Points, res.Stats.Malformed, res.Stats.Ignored)
	fmt.Fprintf(tw, "trip time\t%.1f min\t%.4f\n", b.TripMinutes(), b.Terms.Duration)
	fmt.Fprintf(tw, "time at stops\t%.1f min\t%.4f\n", b.StopMinutes, b.Terms.Dwell)
	fmt.Fprintf(tw, "turns\t%d\t%.4f\n", b.Turns, b.Terms.Turns)
	fmt.Fprintf(tw, "events\t%d\t%.4f\n", b.Events, b.Terms.Events)
	fmt.Fprintf(tw, "max speed\t%.1f mph\t%.4f\n", b.MaxSpeedMPH, b.Terms.MaxSpeed)
	fmt.Fprintf(tw, "cost (%s)\t\t%.4f\n", b.Mode, b.Cost)
	fmt.Fprintln(tw)
	fmt.Fprintln(tw, "index\tkind\tlat\tlon\tdetail")
	for _, k := range event.Kinds {
		for _, ev := range st.Events.ByKind(k) {
			detail := fmt.Sprintf("%.1fs", ev.Duration)
			if k == event.KindTurn {
				detail = fmt.Sprintf("%s %.1f°", ev.Direction, ev.Angle)
			}
			fmt.Fprintf(tw, "%d\t%s\t%.6f\t%.6f\t%s\n", ev.Index, k, ev.Lat, ev.Lon, detail)
		}
	}
	return tw.Flush()
}

func init() {
	rootCmd.AddCommand(inspectCmd)

	defaults := params.DefaultConfig()
	inspectCmd.Flags().StringVarP(&optInspectOutput, "output", "o", "text", "Output format: text, geojson, kml")
	inspectCmd.Flags().String("cost-mode", defaults.Cost.Mode, "Cost terms to sum: full or legacy")
	inspectCmd.Flags().Float64("radius", defaults.Corridor.Radius, "Corridor end radius in meters")
}
