// Package catz reads and writes the plain and gzipped files around an analysis run:
// receiver logs in, export artifacts out.
package catz

import (
	"bufio"
	"compress/gzip"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"syscall"
)

type GZFileWriter struct {
	f      *os.File
	gzw    *gzip.Writer
	locked bool
	closed bool

	GZFileWriterConfig
}

type GZFileWriterConfig struct {
	CompressionLevel int
	Flag             int
	FilePerm         os.FileMode
	DirPerm          os.FileMode
}

func DefaultGZFileWriterConfig() *GZFileWriterConfig {
	return &GZFileWriterConfig{
		CompressionLevel: gzip.BestCompression,
		Flag:             os.O_WRONLY | os.O_TRUNC | os.O_CREATE,
		FilePerm:         0660,
		DirPerm:          0770,
	}
}

func NewGZFileWriter(path string, config *GZFileWriterConfig) (*GZFileWriter, error) {
	if config == nil {
		config = DefaultGZFileWriterConfig()
	}
	if err := os.MkdirAll(filepath.Dir(path), config.DirPerm); err != nil {
		return nil, err
	}
	fi, err := os.OpenFile(path, config.Flag, config.FilePerm)
	if err != nil {
		return nil, err
	}
	gzw, err := gzip.NewWriterLevel(fi, config.CompressionLevel)
	if err != nil {
		_ = fi.Close()
		return nil, err
	}
	return &GZFileWriter{
		f:                  fi,
		gzw:                gzw,
		GZFileWriterConfig: *config,
	}, nil
}

func (g *GZFileWriter) Write(p []byte) (int, error) {
	g.lock()
	return g.gzw.Write(p)
}

// lock locks the file for exclusive access.
// The lock will be invalidated if and when the file is closed.
func (g *GZFileWriter) lock() {
	if g.locked || g.closed || g.f == nil {
		return
	}
	_ = syscall.Flock(int(g.f.Fd()), syscall.LOCK_EX)
	g.locked = true
}

func (g *GZFileWriter) unlock() {
	if !g.locked || g.closed || g.f == nil {
		return
	}
	_ = syscall.Flock(int(g.f.Fd()), syscall.LOCK_UN)
	g.locked = false
}

func (g *GZFileWriter) Close() error {
	defer func() {
		g.closed = true
	}()
	defer g.unlock()
	if err := g.gzw.Close(); err != nil {
		_ = g.f.Close()
		return err
	}
	return g.f.Close()
}

func (g *GZFileWriter) Path() string {
	return g.f.Name()
}

type GZFileReader struct {
	f      *os.File
	gzr    *gzip.Reader
	closed bool
}

func NewGZFileReader(path string) (*GZFileReader, error) {
	fi, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	gzr, err := gzip.NewReader(fi)
	if err != nil {
		_ = fi.Close()
		return nil, err
	}
	return &GZFileReader{f: fi, gzr: gzr}, nil
}

func (g *GZFileReader) Path() string {
	return g.f.Name()
}

// Read satisfies the io.Reader interface.
func (g *GZFileReader) Read(p []byte) (int, error) {
	return g.gzr.Read(p)
}

// Close closes the gzip reader and the file.
func (g *GZFileReader) Close() error {
	if g.closed {
		return nil
	}
	g.closed = true
	if err := g.gzr.Close(); err != nil {
		_ = g.f.Close()
		return err
	}
	return g.f.Close()
}

func (g *GZFileReader) MaybeClose() {
	_ = g.Close()
}

// maxLineSize bounds a single log line. Sentences are under 100 bytes;
// anything near this is garbage, not a sentence.
const maxLineSize = 1 << 20

// ReadLines reads every line of r, without line terminators.
// Carriage returns left by CRLF logs are trimmed.
func ReadLines(ctx context.Context, r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	lines := []string{}
	for scanner.Scan() {
		if len(lines)%4096 == 0 {
			if err := ctx.Err(); err != nil {
				return lines, err
			}
		}
		lines = append(lines, strings.TrimRight(scanner.Text(), "\r"))
	}
	return lines, scanner.Err()
}
