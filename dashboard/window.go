package dashboard

import (
	"fmt"
	"time"
)

// Window selects how far back the balance history view reaches.
type Window string

const (
	Window1h  Window = "1h"
	Window12h Window = "12h"
	Window1d  Window = "1d"
	Window1w  Window = "1w"
	Window1m  Window = "1m"
	Window6m  Window = "6m"
	Window1y  Window = "1y"
)

// Month and year windows are calendar-approximate fixed durations.
var windowDurations = map[Window]time.Duration{
	Window1h:  time.Hour,
	Window12h: 12 * time.Hour,
	Window1d:  24 * time.Hour,
	Window1w:  7 * 24 * time.Hour,
	Window1m:  30 * 24 * time.Hour,
	Window6m:  180 * 24 * time.Hour,
	Window1y:  365 * 24 * time.Hour,
}

// Windows lists the selectable windows, shortest first.
func Windows() []Window {
	return []Window{Window1h, Window12h, Window1d, Window1w, Window1m, Window6m, Window1y}
}

func ParseWindow(s string) (Window, error) {
	w := Window(s)
	if _, ok := windowDurations[w]; !ok {
		return "", fmt.Errorf("unknown window %q (want one of %v)", s, Windows())
	}
	return w, nil
}

func (w Window) Duration() time.Duration {
	return windowDurations[w]
}

// Since returns the cutoff timestamp for the window relative to now.
func (w Window) Since(now time.Time) time.Time {
	return now.Add(-w.Duration())
}
