// Package tracker implements the bot's user operations: registration,
// profile reports, honor refreshes, username overwrites and leaderboards.
package tracker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/osse101/HonorBot_Go/internal/concurrency"
	"github.com/osse101/HonorBot_Go/internal/domain"
	"github.com/osse101/HonorBot_Go/internal/honor"
	"github.com/osse101/HonorBot_Go/internal/leaderboard"
	"github.com/osse101/HonorBot_Go/internal/logger"
	"github.com/osse101/HonorBot_Go/internal/repository"
)

// ProfileFetcher fetches a user's current Codewars profile.
type ProfileFetcher interface {
	Fetch(ctx context.Context, username string) (*domain.Profile, error)
}

// ProfileReport is a user's record next to their live profile. Nothing is
// persisted when it is produced.
type ProfileReport struct {
	Record  domain.UserRecord
	Profile domain.Profile
	Changes honor.Changes
}

// UpdateReport describes a completed honor refresh.
type UpdateReport struct {
	Record   domain.UserRecord
	Previous int
	Current  int
	Change   int
}

// Service defines the tracker operations
type Service interface {
	// Register links platformID to a Codewars username that must exist.
	Register(ctx context.Context, platformID int64, username string) (*domain.UserRecord, error)

	// Profile reports honor changes since the last refresh without writing.
	Profile(ctx context.Context, platformID int64) (*ProfileReport, error)

	// Update stores the current honor as the new baseline.
	Update(ctx context.Context, platformID int64) (*UpdateReport, error)

	// Overwrite replaces the linked Codewars username with one that must exist.
	Overwrite(ctx context.Context, platformID int64, username string) (*domain.UserRecord, error)

	// Leaderboard ranks every registered user for each window.
	Leaderboard(ctx context.Context) (*leaderboard.Board, error)

	// Ping reports whether the user store is reachable.
	Ping(ctx context.Context) error
}

// CacheConfig sizes the record cache.
type CacheConfig struct {
	Size int
	TTL  time.Duration
}

// DefaultCacheConfig returns the default record cache settings.
func DefaultCacheConfig() CacheConfig {
	return CacheConfig{Size: DefaultCacheSize, TTL: DefaultCacheTTL}
}

type service struct {
	store   repository.UserStore
	fetcher ProfileFetcher
	board   *leaderboard.Builder
	locks   *concurrency.LockManager[int64]
	cache   *recordCache
	now     func() time.Time
}

// NewService creates the tracker service. A nil clock means time.Now.
func NewService(store repository.UserStore, fetcher ProfileFetcher, board *leaderboard.Builder, cacheConfig CacheConfig, now func() time.Time) Service {
	if now == nil {
		now = time.Now
	}
	if board == nil {
		board = leaderboard.NewBuilder(fetcher, nil, leaderboard.DefaultSize)
	}
	return &service{
		store:   store,
		fetcher: fetcher,
		board:   board,
		locks:   concurrency.NewLockManager[int64](),
		cache:   newRecordCache(cacheConfig.Size, cacheConfig.TTL),
		now:     now,
	}
}

func (s *service) Register(ctx context.Context, platformID int64, username string) (*domain.UserRecord, error) {
	log := logger.FromContext(ctx)

	username, err := normalizeUsername(username)
	if err != nil {
		return nil, err
	}

	unlock := s.locks.Lock(platformID)
	defer unlock()

	exists, err := s.store.Exists(ctx, platformID)
	if err != nil {
		return nil, err
	}
	if exists {
		log.Info(LogMsgRegisterRejected, "platform_id", platformID, "reason", domain.ErrMsgDuplicateIdentity)
		return nil, fmt.Errorf("%w: platform id %d", domain.ErrDuplicateIdentity, platformID)
	}

	profile, err := s.fetcher.Fetch(ctx, username)
	if err != nil {
		return nil, err
	}

	rec, err := s.store.Create(ctx, platformID, username, profile.Honor)
	if err != nil {
		return nil, err
	}
	s.cache.Set(rec)

	log.Info(LogMsgUserRegistered, "platform_id", platformID, "username", username, "honor", profile.Honor)
	return rec, nil
}

func (s *service) Profile(ctx context.Context, platformID int64) (*ProfileReport, error) {
	rec, err := s.find(ctx, platformID)
	if err != nil {
		return nil, err
	}

	profile, err := s.fetcher.Fetch(ctx, rec.ExternalUsername)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgProfileFetchFailed, "platform_id", platformID, "error", err)
		return nil, err
	}

	return &ProfileReport{
		Record:  *rec,
		Profile: *profile,
		Changes: honor.Compute(*rec, profile.Honor, s.now()),
	}, nil
}

func (s *service) Update(ctx context.Context, platformID int64) (*UpdateReport, error) {
	unlock := s.locks.Lock(platformID)
	defer unlock()

	rec, err := s.find(ctx, platformID)
	if err != nil {
		return nil, err
	}

	profile, err := s.fetcher.Fetch(ctx, rec.ExternalUsername)
	if err != nil {
		return nil, err
	}

	updated, err := s.store.RefreshHonor(ctx, platformID, profile.Honor)
	if err != nil {
		s.cache.Invalidate(platformID)
		return nil, err
	}
	s.cache.Set(updated)

	report := &UpdateReport{
		Record:   *updated,
		Previous: rec.LastHonor,
		Current:  profile.Honor,
		Change:   honor.Delta(rec.LastHonor, profile.Honor),
	}
	logger.FromContext(ctx).Info(LogMsgHonorRefreshed,
		"platform_id", platformID, "previous", report.Previous, "current", report.Current)
	return report, nil
}

func (s *service) Overwrite(ctx context.Context, platformID int64, username string) (*domain.UserRecord, error) {
	username, err := normalizeUsername(username)
	if err != nil {
		return nil, err
	}

	unlock := s.locks.Lock(platformID)
	defer unlock()

	rec, err := s.find(ctx, platformID)
	if err != nil {
		return nil, err
	}

	if _, err := s.fetcher.Fetch(ctx, username); err != nil {
		return nil, err
	}

	updated, err := s.store.OverwriteUsername(ctx, platformID, username)
	if err != nil {
		s.cache.Invalidate(platformID)
		return nil, err
	}
	s.cache.Set(updated)

	logger.FromContext(ctx).Info(LogMsgUsernameOverwrite,
		"platform_id", platformID, "from", rec.ExternalUsername, "to", username)
	return updated, nil
}

func (s *service) Leaderboard(ctx context.Context) (*leaderboard.Board, error) {
	records, err := s.store.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	board := s.board.Build(ctx, records, s.now())
	logger.FromContext(ctx).Debug(LogMsgLeaderboardBuilt,
		"considered", board.Considered, "skipped", board.Skipped)
	return &board, nil
}

func (s *service) Ping(ctx context.Context) error {
	return s.store.Ping(ctx)
}

// find reads through the record cache. Not-found results are not cached.
func (s *service) find(ctx context.Context, platformID int64) (*domain.UserRecord, error) {
	if rec, ok := s.cache.Get(platformID); ok {
		return rec, nil
	}

	rec, err := s.store.Find(ctx, platformID)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("failed to find user: %w", err)
		}
		return nil, err
	}
	s.cache.Set(rec)
	return rec, nil
}
