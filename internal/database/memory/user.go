// Package memory is an in-process user store. It keeps the same uniqueness
// and atomicity guarantees as the Postgres store and loses everything on exit.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/osse101/HonorBot_Go/internal/domain"
)

// UserStore implements repository.UserStore in memory.
type UserStore struct {
	mu         sync.RWMutex
	nextID     int64
	byPlatform map[int64]*domain.UserRecord
	byUsername map[string]int64 // username -> platform ID
	now        func() time.Time
}

// NewUserStore creates an empty store. A nil clock means time.Now.
func NewUserStore(now func() time.Time) *UserStore {
	if now == nil {
		now = time.Now
	}
	return &UserStore{
		byPlatform: make(map[int64]*domain.UserRecord),
		byUsername: make(map[string]int64),
		now:        now,
	}
}

func (s *UserStore) Initialize(ctx context.Context) error {
	return nil
}

func (s *UserStore) Ping(ctx context.Context) error {
	return nil
}

func (s *UserStore) Create(ctx context.Context, platformID int64, username string, honor int) (*domain.UserRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byPlatform[platformID]; ok {
		return nil, fmt.Errorf("%w: platform id %d", domain.ErrDuplicateIdentity, platformID)
	}
	if _, ok := s.byUsername[username]; ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrDuplicateUsername, username)
	}

	now := s.timestamp()
	s.nextID++
	rec := &domain.UserRecord{
		ID:                s.nextID,
		ExternalUsername:  username,
		PlatformID:        platformID,
		RegistrationHonor: honor,
		LastUpdated:       now,
		LastHonor:         honor,
		RegistrationDate:  now,
	}
	s.byPlatform[platformID] = rec
	s.byUsername[username] = platformID

	out := *rec
	return &out, nil
}

func (s *UserStore) Exists(ctx context.Context, platformID int64) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.byPlatform[platformID]
	return ok, nil
}

func (s *UserStore) Find(ctx context.Context, platformID int64) (*domain.UserRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.byPlatform[platformID]
	if !ok {
		return nil, fmt.Errorf("%w: platform id %d", domain.ErrNotFound, platformID)
	}
	out := *rec
	return &out, nil
}

func (s *UserStore) ListAll(ctx context.Context) ([]domain.UserRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := make([]domain.UserRecord, 0, len(s.byPlatform))
	for _, rec := range s.byPlatform {
		records = append(records, *rec)
	}
	sort.Slice(records, func(i, j int) bool { return records[i].ID < records[j].ID })
	return records, nil
}

func (s *UserStore) RefreshHonor(ctx context.Context, platformID int64, honor int) (*domain.UserRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.byPlatform[platformID]
	if !ok {
		return nil, fmt.Errorf("%w: platform id %d", domain.ErrNotFound, platformID)
	}
	rec.LastHonor = honor
	rec.LastUpdated = s.timestamp()

	out := *rec
	return &out, nil
}

func (s *UserStore) OverwriteUsername(ctx context.Context, platformID int64, username string) (*domain.UserRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.byPlatform[platformID]
	if !ok {
		return nil, fmt.Errorf("%w: platform id %d", domain.ErrNotFound, platformID)
	}
	if owner, taken := s.byUsername[username]; taken && owner != platformID {
		return nil, fmt.Errorf("%w: %s", domain.ErrDuplicateUsername, username)
	}

	delete(s.byUsername, rec.ExternalUsername)
	rec.ExternalUsername = username
	s.byUsername[username] = platformID

	out := *rec
	return &out, nil
}

// timestamp matches Postgres TIMESTAMPTZ precision so both engines round-trip identically.
func (s *UserStore) timestamp() time.Time {
	return s.now().UTC().Truncate(time.Microsecond)
}
