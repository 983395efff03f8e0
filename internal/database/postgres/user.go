// Package postgres is the PostgreSQL user store.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/HonorBot_Go/internal/database"
	"github.com/osse101/HonorBot_Go/internal/domain"
)

const userColumns = `id, codewars_username, platform_id, registration_honor, last_updated, last_honor, registration_date`

// UserStore implements repository.UserStore for PostgreSQL
type UserStore struct {
	db  *pgxpool.Pool
	now func() time.Time
}

// NewUserStore creates a new UserStore. A nil clock means time.Now.
func NewUserStore(db *pgxpool.Pool, now func() time.Time) *UserStore {
	if now == nil {
		now = time.Now
	}
	return &UserStore{db: db, now: now}
}

// Initialize applies pending schema migrations.
func (s *UserStore) Initialize(ctx context.Context) error {
	if err := database.Migrate(ctx, s.db); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToInitializeStore, err)
	}
	return nil
}

func (s *UserStore) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}

func (s *UserStore) Create(ctx context.Context, platformID int64, username string, honor int) (*domain.UserRecord, error) {
	query := `
		INSERT INTO users (codewars_username, platform_id, registration_honor, last_updated, last_honor, registration_date)
		VALUES ($1, $2, $3, $4, $3, $4)
		RETURNING ` + userColumns

	now := s.now().UTC()
	rec, err := scanUser(s.db.QueryRow(ctx, query, username, platformID, honor, now))
	if err != nil {
		if mapped := mapUniqueViolation(err, platformID, username); mapped != nil {
			return nil, mapped
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToInsertUser, err)
	}
	return rec, nil
}

func (s *UserStore) Exists(ctx context.Context, platformID int64) (bool, error) {
	var exists bool
	err := s.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE platform_id = $1)`, platformID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("%s: %w", ErrMsgFailedToCheckUser, err)
	}
	return exists, nil
}

func (s *UserStore) Find(ctx context.Context, platformID int64) (*domain.UserRecord, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE platform_id = $1`

	rec, err := scanUser(s.db.QueryRow(ctx, query, platformID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: platform id %d", domain.ErrNotFound, platformID)
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetUser, err)
	}
	return rec, nil
}

func (s *UserStore) ListAll(ctx context.Context) ([]domain.UserRecord, error) {
	rows, err := s.db.Query(ctx, `SELECT `+userColumns+` FROM users ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListUsers, err)
	}
	defer rows.Close()

	var records []domain.UserRecord
	for rows.Next() {
		rec, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToScanUser, err)
		}
		records = append(records, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToIterateUsers, err)
	}
	return records, nil
}

// RefreshHonor writes last_honor and last_updated in one statement.
func (s *UserStore) RefreshHonor(ctx context.Context, platformID int64, honor int) (*domain.UserRecord, error) {
	query := `
		UPDATE users
		SET last_honor = $2, last_updated = $3
		WHERE platform_id = $1
		RETURNING ` + userColumns

	rec, err := scanUser(s.db.QueryRow(ctx, query, platformID, honor, s.now().UTC()))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: platform id %d", domain.ErrNotFound, platformID)
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToRefreshHonor, err)
	}
	return rec, nil
}

func (s *UserStore) OverwriteUsername(ctx context.Context, platformID int64, username string) (*domain.UserRecord, error) {
	query := `
		UPDATE users
		SET codewars_username = $2
		WHERE platform_id = $1
		RETURNING ` + userColumns

	rec, err := scanUser(s.db.QueryRow(ctx, query, platformID, username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: platform id %d", domain.ErrNotFound, platformID)
		}
		if mapped := mapUniqueViolation(err, platformID, username); mapped != nil {
			return nil, mapped
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToUpdateUsername, err)
	}
	return rec, nil
}

func scanUser(row pgx.Row) (*domain.UserRecord, error) {
	var rec domain.UserRecord
	err := row.Scan(
		&rec.ID,
		&rec.ExternalUsername,
		&rec.PlatformID,
		&rec.RegistrationHonor,
		&rec.LastUpdated,
		&rec.LastHonor,
		&rec.RegistrationDate,
	)
	if err != nil {
		return nil, err
	}
	rec.LastUpdated = rec.LastUpdated.UTC()
	rec.RegistrationDate = rec.RegistrationDate.UTC()
	return &rec, nil
}

// mapUniqueViolation translates a unique constraint failure into a domain error.
// It returns nil for any other error.
func mapUniqueViolation(err error, platformID int64, username string) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != PgErrorCodeUniqueViolation {
		return nil
	}
	switch pgErr.ConstraintName {
	case ConstraintPlatformIDUnique:
		return fmt.Errorf("%w: platform id %d", domain.ErrDuplicateIdentity, platformID)
	case ConstraintUsernameUnique:
		return fmt.Errorf("%w: %s", domain.ErrDuplicateUsername, username)
	default:
		return fmt.Errorf("%w: %s", domain.ErrDuplicateIdentity, pgErr.ConstraintName)
	}
}
