package logdir

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/rotblauer/bestroute/catz"
	"github.com/rotblauer/bestroute/testing/testdata"
)

func TestIsLog(t *testing.T) {
	for name, want := range map[string]bool{
		"trip.txt":    true,
		"TRIP.TXT":    true,
		"trip.txt.gz": true,
		"trip.gz":     false,
		"trip.csv":    false,
		"txt":         false,
	} {
		if got := IsLog(name); got != want {
			t.Errorf("IsLog(%q) got=%v want=%v", name, got, want)
		}
	}
}

func TestRead_Fixtures(t *testing.T) {
	logs, err := Read(context.Background(), testdata.Path(testdata.Source_LogsDir))
	if err != nil {
		t.Fatal(err)
	}
	names := []string{}
	for _, l := range logs {
		if l.Err != nil {
			t.Errorf("%s: %v", l.Name, l.Err)
		}
		names = append(names, l.Name)
	}
	want := []string{"commute_ab.txt", "commute_ba.txt.gz", "elsewhere.txt", "nofix.txt"}
	if !slices.Equal(names, want) {
		t.Errorf("got=%v want=%v", names, want)
	}
	if len(logs[1].Lines) != 1822 {
		t.Errorf("gzipped lines got=%d want=1822", len(logs[1].Lines))
	}
	if len(logs[3].Lines) != 105 {
		t.Errorf("lines got=%d want=105", len(logs[3].Lines))
	}
}

func TestStream_SortedAndFiltered(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"c.txt", "a.txt", "notes.md", "b.TXT"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("line 1\nline 2\n"), 0600); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "sub.txt"), 0700); err != nil {
		t.Fatal(err)
	}
	w, err := catz.NewGZFileWriter(filepath.Join(dir, "d.txt.gz"), nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := w.Write([]byte("gz 1\n")); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	// Not gzip, despite the name.
	if err := os.WriteFile(filepath.Join(dir, "e.txt.gz"), []byte("plain"), 0600); err != nil {
		t.Fatal(err)
	}

	ch, err := Stream(context.Background(), dir)
	if err != nil {
		t.Fatal(err)
	}
	names := []string{}
	for l := range ch {
		names = append(names, l.Name)
		switch l.Name {
		case "d.txt.gz":
			if len(l.Lines) != 1 || l.Lines[0] != "gz 1" {
				t.Errorf("gz lines got=%q", l.Lines)
			}
		case "e.txt.gz":
			if l.Err == nil {
				t.Error("expected error for bad gzip")
			}
		default:
			if l.Err != nil || len(l.Lines) != 2 {
				t.Errorf("%s got=%q err=%v", l.Name, l.Lines, l.Err)
			}
		}
	}
	want := []string{"a.txt", "b.TXT", "c.txt", "d.txt.gz", "e.txt.gz"}
	if !slices.Equal(names, want) {
		t.Errorf("got=%v want=%v", names, want)
	}
}

func TestStream_MissingDir(t *testing.T) {
	_, err := Stream(context.Background(), filepath.Join(t.TempDir(), "missing"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("got=%v want=%v", err, fs.ErrNotExist)
	}
}
