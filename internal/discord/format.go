package discord

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/osse101/HonorBot_Go/internal/honor"
	"github.com/osse101/HonorBot_Go/internal/leaderboard"
)

// TimeLayout is how dates appear in embeds.
const TimeLayout = "2006-01-02 15:04 MST"

// formatNumber groups thousands: 12345 -> "12,345".
func formatNumber(n int) string {
	return message.NewPrinter(language.English).Sprintf("%d", n)
}

// formatDelta always shows the sign of a non-zero change.
func formatDelta(n int) string {
	switch {
	case n > 0:
		return "+" + formatNumber(n)
	case n < 0:
		return "-" + formatNumber(-n)
	default:
		return "0"
	}
}

func formatTime(t time.Time) string {
	return t.UTC().Format(TimeLayout)
}

// formatRank turns "3 kyu" into "3 Kyu".
func formatRank(rank string) string {
	if rank == "" {
		return "-"
	}
	// Casers carry state, so each call gets its own.
	return cases.Title(language.English).String(rank)
}

// leaderboardOrder lists windows longest first, the order the board is shown in.
var leaderboardOrder = []honor.Window{honor.Month, honor.Week, honor.Day}

// formatLeaderboardSection renders one window's ranking.
func formatLeaderboardSection(w honor.Window, size int, entries []leaderboard.Entry) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "**"+TitleLeaderboardOf+"**\n", w.Days(), size)
	if len(entries) == 0 {
		sb.WriteString("   " + MsgNoDataAvailable + "\n")
		return sb.String()
	}
	for idx, e := range entries {
		fmt.Fprintf(&sb, "   %d. `%s` - %s honor\n", idx+1, e.Username, formatDelta(e.Delta))
	}
	return sb.String()
}

// formatLeaderboard renders every window, longest first.
func formatLeaderboard(board *leaderboard.Board) string {
	sections := make([]string, 0, len(leaderboardOrder))
	for _, w := range leaderboardOrder {
		sections = append(sections, formatLeaderboardSection(w, board.Size, board.Top(w)))
	}
	return strings.Join(sections, "\n")
}
