package postgres

// PostgreSQL Error Codes
const (
	// PgErrorCodeUniqueViolation is the PostgreSQL error code for unique constraint violations
	PgErrorCodeUniqueViolation = "23505"
)

// Constraint names from migrations/00001_create_users.sql
const (
	ConstraintUsernameUnique   = "users_codewars_username_key"
	ConstraintPlatformIDUnique = "users_platform_id_key"
)

// Error Messages - User Operations
const (
	ErrMsgFailedToInsertUser      = "failed to insert user"
	ErrMsgFailedToCheckUser       = "failed to check user existence"
	ErrMsgFailedToGetUser         = "failed to get user"
	ErrMsgFailedToListUsers       = "failed to list users"
	ErrMsgFailedToScanUser        = "failed to scan user row"
	ErrMsgFailedToIterateUsers    = "failed to iterate user rows"
	ErrMsgFailedToRefreshHonor    = "failed to refresh honor"
	ErrMsgFailedToUpdateUsername  = "failed to update codewars username"
	ErrMsgFailedToInitializeStore = "failed to initialize user store"
)
