// Package honor computes honor changes over fixed lookback windows.
package honor

import (
	"time"

	"github.com/osse101/HonorBot_Go/internal/domain"
)

// Window is a fixed lookback period used to bound delta reporting and
// leaderboard eligibility.
type Window time.Duration

const (
	Day   = Window(24 * time.Hour)
	Week  = Window(7 * 24 * time.Hour)
	Month = Window(30 * 24 * time.Hour)
)

// Windows lists every reporting window, shortest first.
var Windows = []Window{Day, Week, Month}

// Duration returns the window length.
func (w Window) Duration() time.Duration {
	return time.Duration(w)
}

// Label is the short human name used in profile and leaderboard output.
func (w Window) Label() string {
	switch w {
	case Day:
		return "24h"
	case Week:
		return "7d"
	case Month:
		return "Month"
	default:
		return time.Duration(w).String()
	}
}

// Days is the window length in whole days.
func (w Window) Days() int {
	return int(time.Duration(w) / (24 * time.Hour))
}

// Delta is the signed difference between a later and an earlier honor reading.
func Delta(previous, current int) int {
	return current - previous
}

// Eligible reports whether a baseline taken at lastUpdated still falls inside
// window w at time now. The boundary is inclusive.
func Eligible(lastUpdated, now time.Time, w Window) bool {
	return now.Sub(lastUpdated) <= w.Duration()
}

// Changes holds the per-window honor change for one record. A window the
// record is not eligible for is absent.
type Changes struct {
	values map[Window]int
}

// Get returns the change for w and whether the record was eligible for it.
func (c Changes) Get(w Window) (int, bool) {
	v, ok := c.values[w]
	return v, ok
}

// Display returns the change for w, or 0 when the record is outside the window.
func (c Changes) Display(w Window) int {
	return c.values[w]
}

// Compute applies the window rule to a record's baseline and a freshly
// fetched honor value.
func Compute(record domain.UserRecord, current int, now time.Time) Changes {
	changes := Changes{values: make(map[Window]int, len(Windows))}
	delta := Delta(record.LastHonor, current)
	for _, w := range Windows {
		if Eligible(record.LastUpdated, now, w) {
			changes.values[w] = delta
		}
	}
	return changes
}
