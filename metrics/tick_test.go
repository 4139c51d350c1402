package metrics

import (
	"sync"
	"testing"
	"time"

	"github.com/rotblauer/bestroute/nmea"
)

func TestTickMeter_Totals(t *testing.T) {
	m := NewTickMeter(0)
	defer m.Stop()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			m.Mark("log.txt", nmea.Stats{Lines: 100, Skipped: 5, Ignored: 55, Points: 40}, i%2 == 0)
		}(i)
	}
	wg.Wait()

	got := m.Totals()
	want := Totals{Logs: 10, Lines: 1_000, Points: 400, Accepted: 5, Rejected: 5}
	if got != want {
		t.Errorf("got=%+v want=%+v", got, want)
	}
}

func TestTickMeter_Nil(t *testing.T) {
	var m *TickMeter
	m.Mark("x", nmea.Stats{Lines: 1}, true)
	m.Log()
	m.Stop()
	if got := m.Totals(); got != (Totals{}) {
		t.Errorf("got=%+v want zero", got)
	}
}

func TestTickMeter_StopTwice(t *testing.T) {
	m := NewTickMeter(10 * time.Millisecond)
	m.Mark("a", nmea.Stats{Lines: 1, Points: 1}, true)
	time.Sleep(25 * time.Millisecond)
	m.Stop()
	m.Stop()
}
