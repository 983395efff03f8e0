// Package leaderboard ranks registered users by honor gained per window.
package leaderboard

import (
	"context"
	"sort"
	"time"

	"github.com/osse101/HonorBot_Go/internal/domain"
	"github.com/osse101/HonorBot_Go/internal/honor"
	"github.com/osse101/HonorBot_Go/internal/logger"
	"github.com/osse101/HonorBot_Go/internal/metrics"
	"github.com/osse101/HonorBot_Go/internal/worker"
)

// DefaultSize is how many entries each window keeps.
const DefaultSize = 3

// LogMsgSkippedUser is logged when a user's profile could not be fetched.
const LogMsgSkippedUser = "Leaving user out of leaderboard"

// ProfileFetcher fetches a user's current profile.
type ProfileFetcher interface {
	Fetch(ctx context.Context, username string) (*domain.Profile, error)
}

// Entry is one ranked line.
type Entry struct {
	Username string
	Delta    int
}

// Board is a freshly computed leaderboard. It is never persisted.
type Board struct {
	rankings   map[honor.Window][]Entry
	Size       int // maximum entries per window
	Considered int
	Skipped    int
}

// Top returns the ranked entries for w, best first. The result may be empty.
func (b Board) Top(w honor.Window) []Entry {
	return b.rankings[w]
}

// Total is the number of records the board was built from.
func (b Board) Total() int {
	return b.Considered + b.Skipped
}

// Rank orders entries by delta descending and keeps at most n. Equal deltas
// keep their input order. The input slice is not modified.
func Rank(entries []Entry, n int) []Entry {
	ranked := make([]Entry, len(entries))
	copy(ranked, entries)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Delta > ranked[j].Delta
	})
	if n >= 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// Builder computes leaderboards by fetching every user's current honor.
type Builder struct {
	fetcher ProfileFetcher
	pool    *worker.Pool
	size    int
}

// NewBuilder creates a Builder. size <= 0 means DefaultSize.
func NewBuilder(fetcher ProfileFetcher, pool *worker.Pool, size int) *Builder {
	if size <= 0 {
		size = DefaultSize
	}
	if pool == nil {
		pool = worker.NewPool(worker.DefaultConcurrency)
	}
	return &Builder{fetcher: fetcher, pool: pool, size: size}
}

// Build ranks records for every window at time now. Records whose fetch
// fails are left out of every window. Records keep their given order for
// tie-breaking.
func (b *Builder) Build(ctx context.Context, records []domain.UserRecord, now time.Time) Board {
	log := logger.FromContext(ctx)

	results := worker.Map(ctx, b.pool, records, func(ctx context.Context, rec domain.UserRecord) (*domain.Profile, error) {
		return b.fetcher.Fetch(ctx, rec.ExternalUsername)
	})

	candidates := make(map[honor.Window][]Entry, len(honor.Windows))
	board := Board{
		rankings: make(map[honor.Window][]Entry, len(honor.Windows)),
		Size:     b.size,
	}

	for i, rec := range records {
		res := results[i]
		if res.Err != nil {
			board.Skipped++
			metrics.LeaderboardSkipped.Inc()
			log.Warn(LogMsgSkippedUser, "username", rec.ExternalUsername, "error", res.Err)
			continue
		}
		board.Considered++

		changes := honor.Compute(rec, res.Value.Honor, now)
		for _, w := range honor.Windows {
			if delta, ok := changes.Get(w); ok {
				candidates[w] = append(candidates[w], Entry{Username: rec.ExternalUsername, Delta: delta})
			}
		}
	}

	for _, w := range honor.Windows {
		board.rankings[w] = Rank(candidates[w], b.size)
	}
	return board
}
