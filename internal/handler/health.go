package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"
)

// ReadinessTimeout bounds a single store ping.
const ReadinessTimeout = 2 * time.Second

// HealthResponse represents the response for health endpoints
type HealthResponse struct {
	Status  string     `json:"status"`
	Message string     `json:"message,omitempty"`
	Bot     *BotStatus `json:"bot,omitempty"`
}

// BotStatus is a snapshot of the chat connection.
type BotStatus struct {
	Connected        bool      `json:"connected"`
	Uptime           string    `json:"uptime"`
	CommandsReceived int64     `json:"commands_received"`
	LastCommandTime  time.Time `json:"last_command_time,omitempty"`
}

// StatusProvider reports the bot's connection state.
type StatusProvider interface {
	Status() BotStatus
}

// Pinger is anything whose backing engine can be probed.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HandleHealthz provides a liveness check. It reports degraded when the bot
// has lost its gateway connection.
func HandleHealthz(bot StatusProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if bot == nil {
			respondJSON(w, http.StatusOK, HealthResponse{Status: StatusOK})
			return
		}

		status := bot.Status()
		if !status.Connected {
			respondJSON(w, http.StatusServiceUnavailable, HealthResponse{
				Status:  StatusDegraded,
				Message: MsgBotDisconnected,
				Bot:     &status,
			})
			return
		}
		respondJSON(w, http.StatusOK, HealthResponse{Status: StatusOK, Bot: &status})
	}
}

// HandleReadyz provides a readiness check that validates store connectivity
func HandleReadyz(store Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), ReadinessTimeout)
		defer cancel()

		if err := store.Ping(ctx); err != nil {
			slog.Error("Readiness check failed", "error", err)
			respondJSON(w, http.StatusServiceUnavailable, HealthResponse{
				Status:  StatusUnavailable,
				Message: MsgStoreUnavailable,
			})
			return
		}
		respondJSON(w, http.StatusOK, HealthResponse{Status: StatusOK})
	}
}
