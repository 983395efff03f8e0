package config

import "time"

// Store drivers
const (
	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"
)

// Defaults
const (
	DefaultStoreDriver            = StoreDriverPostgres
	DefaultDBMaxConns             = 10
	DefaultCodewarsBaseURL        = "https://www.codewars.com"
	DefaultCodewarsTimeout        = 10 * time.Second
	DefaultLeaderboardSize        = 3
	DefaultLeaderboardConcurrency = 4
	DefaultUserCacheSize          = 256
	DefaultUserCacheTTL           = 5 * time.Minute
	DefaultOpsPort                = 8082
	DefaultServiceName            = "honor-bot"
)
