// Package leaktest detects goroutines that outlive the code under test.
package leaktest

import (
	"runtime"
	"testing"
	"time"
)

// Settle timing for goroutine counts. Exited goroutines can take a few
// scheduler rounds to disappear from runtime.NumGoroutine.
const (
	settleTimeout  = 500 * time.Millisecond
	settleInterval = 10 * time.Millisecond
)

// GoroutineChecker compares goroutine counts before and after a block of work.
type GoroutineChecker struct {
	before int
	t      testing.TB
}

// NewGoroutineChecker records the current goroutine count once it is stable.
func NewGoroutineChecker(t testing.TB) *GoroutineChecker {
	t.Helper()
	return &GoroutineChecker{
		before: stableCount(settleTimeout),
		t:      t,
	}
}

// Check fails the test if more than tolerance goroutines are still running
// after the settle timeout.
func (g *GoroutineChecker) Check(tolerance int) {
	g.t.Helper()

	after, ok := waitAtMost(g.before+tolerance, settleTimeout)
	if !ok {
		g.t.Errorf("Potential goroutine leak: before=%d, after=%d, leaked=%d (tolerance=%d)",
			g.before, after, after-g.before, tolerance)
	}
}

// CheckNoGoroutineLeak runs fn and fails t if it leaves goroutines behind.
func CheckNoGoroutineLeak(t testing.TB, fn func()) {
	t.Helper()

	checker := NewGoroutineChecker(t)
	fn()
	checker.Check(0)
}

// waitAtMost polls until at most target goroutines run. It returns the last
// count seen and whether the target was reached before timeout.
func waitAtMost(target int, timeout time.Duration) (int, bool) {
	deadline := time.Now().Add(timeout)
	for {
		runtime.Gosched()
		n := runtime.NumGoroutine()
		if n <= target {
			return n, true
		}
		if time.Now().After(deadline) {
			return n, false
		}
		time.Sleep(settleInterval)
	}
}

// stableCount returns the goroutine count once two consecutive samples agree.
func stableCount(timeout time.Duration) int {
	deadline := time.Now().Add(timeout)
	prev := runtime.NumGoroutine()
	for time.Now().Before(deadline) {
		time.Sleep(settleInterval)
		n := runtime.NumGoroutine()
		if n == prev {
			return n
		}
		prev = n
	}
	return prev
}
