package discord

import (
	"sync/atomic"
	"time"

	"github.com/osse101/HonorBot_Go/internal/handler"
)

// CommandStats counts handled commands for the health endpoint.
type CommandStats struct {
	count    atomic.Int64
	lastNano atomic.Int64
}

// Record notes one handled command at t.
func (c *CommandStats) Record(t time.Time) {
	c.count.Add(1)
	c.lastNano.Store(t.UnixNano())
}

// Count returns the number of commands handled so far.
func (c *CommandStats) Count() int64 {
	return c.count.Load()
}

// LastCommandTime returns when the latest command arrived, or the zero time.
func (c *CommandStats) LastCommandTime() time.Time {
	n := c.lastNano.Load()
	if n == 0 {
		return time.Time{}
	}
	return time.Unix(0, n).UTC()
}

// Status reports the bot's session state for /healthz.
func (b *Bot) Status() handler.BotStatus {
	return handler.BotStatus{
		Connected:        b.Session != nil && b.Session.DataReady,
		Uptime:           time.Since(b.startTime).Round(time.Second).String(),
		CommandsReceived: b.Registry.Stats.Count(),
		LastCommandTime:  b.Registry.Stats.LastCommandTime(),
	}
}
