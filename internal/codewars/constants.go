package codewars

// DefaultBaseURL is the public Codewars site.
const DefaultBaseURL = "https://www.codewars.com"

// UsersPath is the profile endpoint prefix; the escaped username is appended.
const UsersPath = "/api/v1/users/"

// MaxResponseBytes caps how much of a profile response is read.
const MaxResponseBytes = 1 << 20

// UserAgent identifies the bot to the Codewars API.
const UserAgent = "HonorBot/1.0"

// Error Messages
const (
	ErrMsgEmptyUsername    = "username is required"
	ErrMsgBuildRequest     = "failed to build request"
	ErrMsgRequestFailed    = "request failed"
	ErrMsgUserNotFound     = "user not found on codewars"
	ErrMsgUnexpectedStatus = "unexpected status"
	ErrMsgDecodeResponse   = "failed to decode response"
)

// Log Messages
const (
	LogMsgFetchFailed    = "Codewars fetch failed"
	LogMsgFetchSucceeded = "Fetched Codewars profile"
)
