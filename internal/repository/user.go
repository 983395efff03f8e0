package repository

import (
	"context"

	"github.com/osse101/HonorBot_Go/internal/domain"
)

// UserStore is the only data-access boundary for user records.
// Implementations own the record lifecycle: create, refresh, overwrite.
// Records are never deleted.
type UserStore interface {
	// Initialize ensures the backing schema exists. Safe to call on every startup.
	Initialize(ctx context.Context) error

	// Create inserts a record with RegistrationHonor = LastHonor = honor and
	// RegistrationDate = LastUpdated = now. Returns domain.ErrDuplicateIdentity
	// or domain.ErrDuplicateUsername on a uniqueness conflict.
	Create(ctx context.Context, platformID int64, username string, honor int) (*domain.UserRecord, error)

	Exists(ctx context.Context, platformID int64) (bool, error)

	// Find returns domain.ErrNotFound when no record exists.
	Find(ctx context.Context, platformID int64) (*domain.UserRecord, error)

	// ListAll returns every record in registration order.
	ListAll(ctx context.Context) ([]domain.UserRecord, error)

	// RefreshHonor sets LastHonor and LastUpdated together.
	RefreshHonor(ctx context.Context, platformID int64, honor int) (*domain.UserRecord, error)

	// OverwriteUsername changes only the Codewars username.
	OverwriteUsername(ctx context.Context, platformID int64, username string) (*domain.UserRecord, error)

	// Ping reports whether the backing engine is reachable.
	Ping(ctx context.Context) error
}
