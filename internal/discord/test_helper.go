package discord

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/HonorBot_Go/internal/codewars"
	"github.com/osse101/HonorBot_Go/internal/database/memory"
	"github.com/osse101/HonorBot_Go/internal/leaderboard"
	"github.com/osse101/HonorBot_Go/internal/tracker"
	"github.com/osse101/HonorBot_Go/internal/worker"
)

// MockRoundTripper implements http.RoundTripper for intercepting requests
type MockRoundTripper struct {
	RoundTripFunc func(req *http.Request) (*http.Response, error)
}

func (m *MockRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	return m.RoundTripFunc(req)
}

type testClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

// TestContext wires a real tracker service to a fake Codewars API and a
// Discord session whose HTTP calls are captured instead of sent.
type TestContext struct {
	Codewars     *httptest.Server
	Clock        *testClock
	Store        *memory.UserStore
	Service      tracker.Service
	Session      *discordgo.Session
	DiscordMocks *MockRoundTripper

	mu        sync.Mutex
	honor     map[string]int
	edits     []discordgo.WebhookEdit
	responses []discordgo.InteractionResponse
}

func SetupTestContext(t *testing.T) *TestContext {
	t.Helper()

	ctx := &TestContext{
		Clock: &testClock{t: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)},
		honor: make(map[string]int),
	}

	// Fake Codewars API
	ctx.Codewars = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := strings.TrimPrefix(r.URL.Path, codewars.UsersPath)
		ctx.mu.Lock()
		h, ok := ctx.honor[name]
		ctx.mu.Unlock()
		if !ok {
			http.Error(w, `{"success":false,"reason":"not found"}`, http.StatusNotFound)
			return
		}
		WriteJSON(w, map[string]any{
			"username": name,
			"honor":    h,
			"ranks":    map[string]any{"overall": map[string]any{"name": "4 kyu"}},
		})
	}))
	t.Cleanup(ctx.Codewars.Close)

	client := codewars.NewClientWithHTTP(ctx.Codewars.URL, ctx.Codewars.Client())
	ctx.Store = memory.NewUserStore(ctx.Clock.Now)
	board := leaderboard.NewBuilder(client, worker.NewPool(2), leaderboard.DefaultSize)
	ctx.Service = tracker.NewService(ctx.Store, client, board, tracker.DefaultCacheConfig(), ctx.Clock.Now)

	session, err := discordgo.New("Bot test-token")
	if err != nil {
		t.Fatalf("Failed to create mock session: %v", err)
	}
	ctx.Session = session

	// Capture Discord calls
	ctx.DiscordMocks = &MockRoundTripper{
		RoundTripFunc: func(req *http.Request) (*http.Response, error) {
			ctx.capture(t, req)
			return &http.Response{
				StatusCode: http.StatusOK,
				Body:       io.NopCloser(bytes.NewBufferString("{}")),
				Header:     make(http.Header),
			}, nil
		},
	}
	session.Client = &http.Client{Transport: ctx.DiscordMocks}

	return ctx
}

func (c *TestContext) capture(t *testing.T, req *http.Request) {
	if req.Body == nil {
		return
	}
	body, err := io.ReadAll(req.Body)
	if err != nil {
		t.Errorf("failed to read Discord request body: %v", err)
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	switch {
	case req.Method == http.MethodPatch:
		var edit discordgo.WebhookEdit
		if err := json.Unmarshal(body, &edit); err != nil {
			t.Errorf("failed to decode webhook edit: %v", err)
			return
		}
		c.edits = append(c.edits, edit)
	case req.Method == http.MethodPost && strings.HasSuffix(req.URL.Path, "/callback"):
		var resp discordgo.InteractionResponse
		if err := json.Unmarshal(body, &resp); err != nil {
			t.Errorf("failed to decode interaction response: %v", err)
			return
		}
		c.responses = append(c.responses, resp)
	}
}

// SetHonor makes the fake Codewars API know username with the given honor.
func (c *TestContext) SetHonor(username string, honor int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.honor[username] = honor
}

// Run dispatches an interaction through a registry holding only factory's command.
func (c *TestContext) Run(factory CommandFactory, i *discordgo.InteractionCreate) {
	registry := NewCommandRegistry()
	registry.Register(factory())
	registry.Handle(c.Session, i, c.Service)
}

// LastContent returns the text of the latest response edit.
func (c *TestContext) LastContent() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	for idx := len(c.edits) - 1; idx >= 0; idx-- {
		if c.edits[idx].Content != nil {
			return *c.edits[idx].Content
		}
	}
	return ""
}

// LastEmbed returns the embed of the latest response edit, or nil.
func (c *TestContext) LastEmbed() *discordgo.MessageEmbed {
	c.mu.Lock()
	defer c.mu.Unlock()
	for idx := len(c.edits) - 1; idx >= 0; idx-- {
		if e := c.edits[idx].Embeds; e != nil && len(*e) > 0 {
			return (*e)[0]
		}
	}
	return nil
}

// Responses returns every initial interaction response sent.
func (c *TestContext) Responses() []discordgo.InteractionResponse {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]discordgo.InteractionResponse, len(c.responses))
	copy(out, c.responses)
	return out
}

// Reset forgets captured Discord calls.
func (c *TestContext) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.edits = nil
	c.responses = nil
}

// fieldValue returns the value of the embed field whose name contains name.
func fieldValue(embed *discordgo.MessageEmbed, name string) (string, bool) {
	if embed == nil {
		return "", false
	}
	for _, f := range embed.Fields {
		if strings.Contains(f.Name, name) {
			return f.Value, true
		}
	}
	return "", false
}

// createTestInteraction builds a guild slash-command interaction from userID.
func createTestInteraction(commandName, userID string, options ...*discordgo.ApplicationCommandInteractionDataOption) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			ID:    "interaction-1",
			Token: "token-1",
			Type:  discordgo.InteractionApplicationCommand,
			Data: discordgo.ApplicationCommandInteractionData{
				Name:    commandName,
				Options: options,
			},
			Member: &discordgo.Member{
				User: &discordgo.User{ID: userID, Username: "Tester"},
			},
		},
	}
}

func usernameOption(value string) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name:  OptionUsername,
		Type:  discordgo.ApplicationCommandOptionString,
		Value: value,
	}
}

// Helper to return JSON success
func WriteJSON(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(data); err != nil {
		panic(fmt.Sprintf("encode test response: %v", err))
	}
}
