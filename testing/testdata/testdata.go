package testdata

import (
	"context"
	"os"
	"path/filepath"
	"runtime"

	"github.com/rotblauer/bestroute/catz"
)

// basepath is the root directory of this package.
var basepath string

func init() {
	_, currentFile, _, _ := runtime.Caller(0)
	basepath = filepath.Dir(currentFile)
}

// Path returns the absolute path the given relative file or directory path,
// relative to this testdata/ directory in the user's GOPATH.
// If rel is already absolute, it is returned unmodified.
// Taken from https://github.com/grpc/grpc-go/blob/master/testdata/testdata.go.
func Path(rel string) string {
	if filepath.IsAbs(rel) {
		return rel
	}

	return filepath.Join(basepath, rel)
}

// Source_LogsDir holds a handful of short receiver logs:
//   - commute_ab.txt runs from corridor end A to end B
//   - commute_ba.txt.gz is the same drive reversed, gzipped
//   - elsewhere.txt is a valid trip outside the corridor
//   - nofix.txt never gets a valid fix
var Source_LogsDir = "./logs"

var Source_CommuteAB = "./logs/commute_ab.txt"
var Source_CommuteBA = "./logs/commute_ba.txt.gz"
var Source_Elsewhere = "./logs/elsewhere.txt"
var Source_NoFix = "./logs/nofix.txt"

// ReadSourceLines reads the lines of a plain or gzipped log.
func ReadSourceLines(ctx context.Context, path string) ([]string, error) {
	if filepath.Ext(path) == ".gz" {
		gzr, err := catz.NewGZFileReader(path)
		if err != nil {
			return nil, err
		}
		defer gzr.MaybeClose()
		return catz.ReadLines(ctx, gzr)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return catz.ReadLines(ctx, f)
}
