package params

import (
	"os"
	"path/filepath"
	"runtime"
)

type BatchConfig struct {
	// Workers is the number of trips analyzed in parallel.
	Workers int `mapstructure:"workers" validate:"gt=0"`

	// CacheSize bounds the number of distinct log contents remembered in one run.
	// Logs with identical content are analyzed once.
	CacheSize int `mapstructure:"cache_size" validate:"gt=0"`
}

func DefaultBatchConfig() *BatchConfig {
	return &BatchConfig{
		Workers:   runtime.NumCPU(),
		CacheSize: 1_024,
	}
}

const (
	ExportFormatGeoJSON = "geojson"
	ExportFormatKML     = "kml"
	ExportFormatGPX     = "gpx"
)

type ExportConfig struct {
	// Dir is where export artifacts are written.
	Dir string `mapstructure:"dir" validate:"required"`

	Formats []string `mapstructure:"formats" validate:"dive,oneof=geojson kml gpx"`

	// All exports every accepted trip's path, not only the best trip.
	All bool `mapstructure:"all"`
}

func DefaultExportConfig() *ExportConfig {
	return &ExportConfig{
		Dir:     filepath.Join(DatadirRoot, "export"),
		Formats: []string{ExportFormatKML, ExportFormatGeoJSON},
		All:     false,
	}
}

type InfluxConfig struct {
	// URL enables the InfluxDB score export when set.
	URL    string `mapstructure:"url" validate:"omitempty,url"`
	Token  string `mapstructure:"token"`
	Org    string `mapstructure:"org"`
	Bucket string `mapstructure:"bucket" validate:"required_with=URL"`
}

var DatadirRoot = func() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "bestroute")
	}
	return filepath.Join(home, ".bestroute")
}()
