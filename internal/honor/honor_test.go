package honor

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/HonorBot_Go/internal/domain"
)

func TestDelta(t *testing.T) {
	tests := []struct {
		name     string
		prev     int
		curr     int
		expected int
	}{
		{"gain", 500, 650, 150},
		{"no change", 500, 500, 0},
		{"loss", 650, 500, -150},
		{"from zero", 0, 2, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Delta(tt.prev, tt.curr))
			assert.Equal(t, tt.curr-tt.prev, Delta(tt.prev, tt.curr))
		})
	}
}

func TestEligible_InclusiveBoundary(t *testing.T) {
	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	assert.True(t, Eligible(base, base, Day))
	assert.True(t, Eligible(base, base.Add(24*time.Hour), Day), "exactly one day is inside the 1-day window")
	assert.False(t, Eligible(base, base.Add(24*time.Hour+time.Nanosecond), Day))
	assert.True(t, Eligible(base, base.Add(7*24*time.Hour), Week))
	assert.False(t, Eligible(base, base.Add(30*24*time.Hour+time.Minute), Month))
}

func TestEligible_Monotonic(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	for elapsed := time.Duration(0); elapsed <= 40*24*time.Hour; elapsed += 90 * time.Minute {
		now := base.Add(elapsed)
		if Eligible(base, now, Day) {
			assert.True(t, Eligible(base, now, Week), "elapsed %s", elapsed)
		}
		if Eligible(base, now, Week) {
			assert.True(t, Eligible(base, now, Month), "elapsed %s", elapsed)
		}
	}
}

func TestCompute(t *testing.T) {
	base := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	record := domain.UserRecord{LastHonor: 500, LastUpdated: base}

	t.Run("same instant reports zero everywhere", func(t *testing.T) {
		changes := Compute(record, 500, base)
		for _, w := range Windows {
			v, ok := changes.Get(w)
			assert.True(t, ok)
			assert.Zero(t, v)
		}
	})

	t.Run("two days later only week and month are eligible", func(t *testing.T) {
		changes := Compute(record, 650, base.Add(48*time.Hour))

		_, ok := changes.Get(Day)
		assert.False(t, ok)
		assert.Equal(t, 0, changes.Display(Day))
		assert.Equal(t, 150, changes.Display(Week))
		assert.Equal(t, 150, changes.Display(Month))
	})

	t.Run("stale baseline is outside every window", func(t *testing.T) {
		changes := Compute(record, 900, base.Add(31*24*time.Hour))
		for _, w := range Windows {
			_, ok := changes.Get(w)
			assert.False(t, ok)
		}
	})
}

func TestWindowLabels(t *testing.T) {
	assert.Equal(t, "24h", Day.Label())
	assert.Equal(t, "7d", Week.Label())
	assert.Equal(t, "Month", Month.Label())
	assert.Equal(t, []int{1, 7, 30}, []int{Day.Days(), Week.Days(), Month.Days()})
}
