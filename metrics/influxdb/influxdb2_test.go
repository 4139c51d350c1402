package influxdb

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/rotblauer/bestroute/params"
	"github.com/rotblauer/bestroute/route"
	"github.com/rotblauer/bestroute/score"
	"github.com/rotblauer/bestroute/types/trippoint"
)

func TestExportScoredTrips(t *testing.T) {
	var mu sync.Mutex
	bodies := []string{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v2/write" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		b, _ := io.ReadAll(r.Body)
		mu.Lock()
		bodies = append(bodies, string(b))
		mu.Unlock()
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	when := time.Date(2021, 4, 15, 13, 0, 0, 0, time.UTC)
	trip := trippoint.Trip{{Speed: 30, Time: when}, {Speed: 20, Timestamp: 600, Time: when.Add(10 * time.Minute)}}
	trips := []route.ScoredTrip{
		{Name: "a.txt", Trip: trip, Breakdown: score.Breakdown{Mode: "full", Cost: 0.5}, Cost: 0.5},
		{Name: "b.txt", Trip: trip, Breakdown: score.Breakdown{Mode: "full", Cost: 0.3}, Cost: 0.3},
	}
	cfg := &params.InfluxConfig{URL: srv.URL, Token: "token", Org: "org", Bucket: "bucket"}
	if err := ExportScoredTrips(cfg, trips, "b.txt"); err != nil {
		t.Fatal(err)
	}

	mu.Lock()
	defer mu.Unlock()
	all := strings.Join(bodies, "\n")
	if n := strings.Count(all, measurement+","); n != 2 {
		t.Errorf("points got=%d want=2: %s", n, all)
	}
	for _, want := range []string{"name=a.txt", "name=b.txt", "best=1i", "cost=0.3", "1618491600"} {
		if !strings.Contains(all, want) {
			t.Errorf("missing %q in %s", want, all)
		}
	}
}

func TestExportScoredTrips_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"code":"invalid","message":"bad"}`))
	}))
	defer srv.Close()

	cfg := &params.InfluxConfig{URL: srv.URL, Bucket: "bucket"}
	trips := []route.ScoredTrip{{Name: "a.txt"}}
	if err := ExportScoredTrips(cfg, trips, ""); err == nil {
		t.Error("expected error")
	}
}
