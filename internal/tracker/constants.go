package tracker

import "time"

// Cache defaults
const (
	DefaultCacheSize = 256
	DefaultCacheTTL  = 5 * time.Minute
)

// Log Messages
const (
	LogMsgUserRegistered     = "User registered"
	LogMsgHonorRefreshed     = "Honor refreshed"
	LogMsgUsernameOverwrite  = "Codewars username overwritten"
	LogMsgLeaderboardBuilt   = "Leaderboard built"
	LogMsgRegisterRejected   = "Registration rejected"
	LogMsgProfileFetchFailed = "Profile fetch failed"
)
