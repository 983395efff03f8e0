package bootstrap

// Log messages for startup
const (
	LogMsgStartingHonorBot = "Starting HonorBot"
	LogMsgStoreSelected    = "User store selected"
	LogMsgMemoryStoreWarn  = "Using in-memory user store; records are lost on restart"
)

// Shutdown messages
const (
	LogMsgShuttingDown         = "Shutting down..."
	LogMsgServerForcedShutdown = "Ops server forced to shutdown"
	LogMsgStopped              = "HonorBot stopped"
)
