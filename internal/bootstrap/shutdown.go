package bootstrap

import (
	"context"
	"log/slog"
)

// Stopper is a component with a context-bounded shutdown.
type Stopper interface {
	Stop(ctx context.Context) error
}

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server     Stopper
	CloseStore func()
}

// GracefulShutdown stops the ops server and then releases the store.
// Errors are logged and do not stop the sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDown)

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	// Store last: in-flight handlers may still be writing.
	if components.CloseStore != nil {
		components.CloseStore()
	}

	slog.Info(LogMsgStopped)
}
