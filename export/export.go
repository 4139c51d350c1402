package export

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"slices"
	"strings"

	"github.com/rotblauer/bestroute/catz"
	"github.com/rotblauer/bestroute/params"
	"github.com/rotblauer/bestroute/route"
	"github.com/rotblauer/bestroute/types/event"
)

// Exporter writes export artifacts into a directory.
type Exporter struct {
	Config *params.ExportConfig
	dir    *catz.Flat
	logger *slog.Logger
}

func NewExporter(config *params.ExportConfig) *Exporter {
	if config == nil {
		config = params.DefaultExportConfig()
	}
	return &Exporter{
		Config: config,
		dir:    catz.NewFlatWithRoot(config.Dir),
		logger: slog.With("module", "export"),
	}
}

func (e *Exporter) enabled(format string) bool {
	return slices.Contains(e.Config.Formats, format)
}

func (e *Exporter) write(name string, fn func(io.Writer) error) (string, error) {
	f, err := e.dir.Create(name)
	if err != nil {
		return "", err
	}
	if err := fn(f); err != nil {
		_ = f.Close()
		return "", fmt.Errorf("export %s: %w", name, err)
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	return filepath.Join(e.dir.Path(), name), nil
}

// baseName strips log extensions from a trip name.
func baseName(name string) string {
	name = strings.TrimSuffix(name, ".gz")
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// Best writes the winning trip in every configured format.
// KML output adds the per-kind event files and the combined hazards file.
func (e *Exporter) Best(st route.ScoredTrip) ([]string, error) {
	written := []string{}
	add := func(name string, fn func(io.Writer) error) error {
		p, err := e.write(name, fn)
		if err != nil {
			return err
		}
		written = append(written, p)
		return nil
	}
	base := baseName(st.Name)
	if e.enabled(params.ExportFormatKML) {
		if err := add(base+".kml", func(w io.Writer) error { return WriteKML(w, PathKML(st)) }); err != nil {
			return written, err
		}
		for _, k := range event.Kinds {
			if err := add(KMLFiles[k], func(w io.Writer) error { return WriteKML(w, EventsKML(st, k)) }); err != nil {
				return written, err
			}
		}
		if err := add(HazardsKMLFile, func(w io.Writer) error { return WriteKML(w, EventsKML(st, event.Kinds...)) }); err != nil {
			return written, err
		}
	}
	if e.enabled(params.ExportFormatGeoJSON) {
		if err := add(base+".geojson", func(w io.Writer) error { return WriteGeoJSON(w, st) }); err != nil {
			return written, err
		}
	}
	if e.enabled(params.ExportFormatGPX) {
		if err := add(base+".gpx", func(w io.Writer) error { return WriteGPX(w, st) }); err != nil {
			return written, err
		}
	}
	e.logger.Info("Exported best trip", "name", st.Name, "files", len(written), "dir", e.dir.Path())
	return written, nil
}

// All writes the path of every accepted trip into a trips/ subdirectory, one file per
// trip and format. With GeoJSON enabled the paths are also collected in AllTripsFile.
// Event files are only written for the best trip.
func (e *Exporter) All(trips []route.ScoredTrip) ([]string, error) {
	sub := &Exporter{Config: e.Config, dir: e.dir.Joins("trips"), logger: e.logger}
	written := []string{}
	for _, st := range trips {
		base := baseName(st.Name)
		for _, format := range e.Config.Formats {
			var name string
			var fn func(io.Writer) error
			switch format {
			case params.ExportFormatKML:
				name, fn = base+".kml", func(w io.Writer) error { return WriteKML(w, PathKML(st)) }
			case params.ExportFormatGeoJSON:
				name, fn = base+".geojson", func(w io.Writer) error { return WriteGeoJSON(w, st) }
			case params.ExportFormatGPX:
				name, fn = base+".gpx", func(w io.Writer) error { return WriteGPX(w, st) }
			default:
				continue
			}
			p, err := sub.write(name, fn)
			if err != nil {
				return written, err
			}
			written = append(written, p)
		}
	}
	if e.enabled(params.ExportFormatGeoJSON) && len(trips) > 0 {
		p, err := sub.writePaths(AllTripsFile, trips)
		if err != nil {
			return written, err
		}
		written = append(written, p)
	}
	e.logger.Info("Exported trips", "trips", len(trips), "files", len(written), "dir", sub.dir.Path())
	return written, nil
}

// AllTripsFile holds every trip's path feature, one per line.
const AllTripsFile = "trips.geojson.gz"

func (e *Exporter) writePaths(name string, trips []route.ScoredTrip) (string, error) {
	gz, err := e.dir.CreateGZ(name)
	if err != nil {
		return "", err
	}
	enc := json.NewEncoder(gz)
	for _, st := range trips {
		if err := enc.Encode(PathFeature(st)); err != nil {
			_ = gz.Close()
			return "", fmt.Errorf("export %s: %w", name, err)
		}
	}
	if err := gz.Close(); err != nil {
		return "", err
	}
	return gz.Path(), nil
}
