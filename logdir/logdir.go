// Package logdir enumerates a directory of receiver logs.
// Logs are *.txt files, optionally gzipped as *.txt.gz, read in name order.
package logdir

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/rotblauer/bestroute/catz"
	"github.com/rotblauer/bestroute/route"
	"github.com/rotblauer/bestroute/stream"
)

// IsLog reports whether a file name looks like a receiver log.
func IsLog(name string) bool {
	name = strings.ToLower(name)
	return strings.HasSuffix(name, ".txt") || strings.HasSuffix(name, ".txt.gz")
}

// files returns the paths of the plain files in dir, sorted by name.
// Subdirectories are not searched.
func files(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("list logs: %w", err)
	}
	paths := []string{}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}
	slices.Sort(paths)
	return paths, nil
}

func isLogPath(path string) bool {
	return IsLog(filepath.Base(path))
}

// ReadFile reads one log, decompressing gzipped logs.
func ReadFile(ctx context.Context, path string) ([]string, error) {
	if strings.HasSuffix(strings.ToLower(path), ".gz") {
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

func load(ctx context.Context) func(string) route.NamedLog {
	return func(path string) route.NamedLog {
		lines, err := ReadFile(ctx, path)
		return route.NamedLog{Name: filepath.Base(path), Lines: lines, Err: err}
	}
}

// Stream emits the logs in dir one at a time, in name order.
// A log that cannot be read is emitted with its Err set.
func Stream(ctx context.Context, dir string) (<-chan route.NamedLog, error) {
	paths, err := files(dir)
	if err != nil {
		return nil, err
	}
	logs := stream.Filter(ctx, isLogPath, stream.Slice(ctx, paths))
	return stream.Transform(ctx, load(ctx), logs), nil
}

// Read reads every log in dir.
func Read(ctx context.Context, dir string) ([]route.NamedLog, error) {
	logs, err := Stream(ctx, dir)
	if err != nil {
		return nil, err
	}
	out := stream.Collect(ctx, logs)
	return out, ctx.Err()
}
