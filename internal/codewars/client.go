// Package codewars fetches public user profiles from the Codewars API.
package codewars

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/osse101/HonorBot_Go/internal/domain"
	"github.com/osse101/HonorBot_Go/internal/logger"
	"github.com/osse101/HonorBot_Go/internal/metrics"
	"github.com/osse101/HonorBot_Go/internal/validation"
)

// Client is a Codewars profile client. One request per call, no retries.
type Client struct {
	httpClient *http.Client
	baseURL    string
	schemas    validation.SchemaValidator
}

// NewClient creates a client against baseURL (DefaultBaseURL when empty).
// The timeout bounds every request so a hung socket becomes ErrUnreachable.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return NewClientWithHTTP(baseURL, &http.Client{Timeout: timeout})
}

// NewClientWithHTTP creates a client that sends through httpClient.
func NewClientWithHTTP(baseURL string, httpClient *http.Client) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
		schemas:    validation.Default(),
	}
}

// userResponse mirrors the fields of GET /api/v1/users/{user} the bot uses.
type userResponse struct {
	Username            string  `json:"username"`
	Name                *string `json:"name"`
	Honor               *int    `json:"honor"`
	Clan                *string `json:"clan"`
	LeaderboardPosition *int    `json:"leaderboardPosition"`
	Ranks               struct {
		Overall struct {
			Name string `json:"name"`
		} `json:"overall"`
	} `json:"ranks"`
}

// Fetch returns the current profile for username. Every failure past input
// validation wraps domain.ErrUnreachable.
func (c *Client) Fetch(ctx context.Context, username string) (*domain.Profile, error) {
	if strings.TrimSpace(username) == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgEmptyUsername)
	}

	log := logger.FromContext(ctx)
	start := time.Now()
	profile, outcome, err := c.fetch(ctx, username)
	metrics.CodewarsFetchDuration.Observe(time.Since(start).Seconds())
	metrics.CodewarsFetchesTotal.WithLabelValues(outcome).Inc()

	if err != nil {
		log.Warn(LogMsgFetchFailed, "username", username, "outcome", outcome, "error", err)
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrUnreachable, username, err)
	}
	log.Debug(LogMsgFetchSucceeded, "username", username, "honor", profile.Honor)
	return profile, nil
}

func (c *Client) fetch(ctx context.Context, username string) (*domain.Profile, string, error) {
	endpoint := c.baseURL + UsersPath + url.PathEscape(username)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, metrics.FetchOutcomeTransport, fmt.Errorf("%s: %w", ErrMsgBuildRequest, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", UserAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, metrics.FetchOutcomeTransport, fmt.Errorf("%s: %w", ErrMsgRequestFailed, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, metrics.FetchOutcomeNotFound, fmt.Errorf("%s", ErrMsgUserNotFound)
	case resp.StatusCode != http.StatusOK:
		return nil, metrics.FetchOutcomeStatus, fmt.Errorf("%s %d", ErrMsgUnexpectedStatus, resp.StatusCode)
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, MaxResponseBytes))
	if err != nil {
		return nil, metrics.FetchOutcomeTransport, fmt.Errorf("%s: %w", ErrMsgRequestFailed, err)
	}
	if err := c.schemas.ValidateBytes(raw, validation.SchemaCodewarsUser); err != nil {
		return nil, metrics.FetchOutcomeDecode, fmt.Errorf("%s: %w", ErrMsgDecodeResponse, err)
	}

	var body userResponse
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, metrics.FetchOutcomeDecode, fmt.Errorf("%s: %w", ErrMsgDecodeResponse, err)
	}
	if body.Honor == nil {
		return nil, metrics.FetchOutcomeDecode, fmt.Errorf("%s: missing honor", ErrMsgDecodeResponse)
	}

	profile := &domain.Profile{
		Username:            body.Username,
		Honor:               *body.Honor,
		LeaderboardPosition: body.LeaderboardPosition,
		Rank:                body.Ranks.Overall.Name,
	}
	if body.Name != nil {
		profile.Name = *body.Name
	}
	if body.Clan != nil {
		profile.Clan = *body.Clan
	}
	if profile.Username == "" {
		profile.Username = username
	}
	return profile, metrics.FetchOutcomeOK, nil
}
