package codewars

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/HonorBot_Go/internal/domain"
	"github.com/osse101/HonorBot_Go/internal/metrics"
)

const aliceJSON = `{
	"username": "alice",
	"name": "Alice A.",
	"honor": 650,
	"clan": "gophers",
	"leaderboardPosition": 1234,
	"ranks": {"overall": {"rank": -3, "name": "3 kyu", "color": "blue", "score": 2116}}
}`

func newTestServer(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClientWithHTTP(server.URL, server.Client())
}

func TestFetch_Success(t *testing.T) {
	before := testutil.ToFloat64(metrics.CodewarsFetchesTotal.WithLabelValues(metrics.FetchOutcomeOK))

	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/v1/users/alice", r.URL.Path)
		assert.Equal(t, UserAgent, r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(aliceJSON))
	})

	profile, err := client.Fetch(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", profile.Username)
	assert.Equal(t, "Alice A.", profile.Name)
	assert.Equal(t, 650, profile.Honor)
	assert.Equal(t, "gophers", profile.Clan)
	require.NotNil(t, profile.LeaderboardPosition)
	assert.Equal(t, 1234, *profile.LeaderboardPosition)
	assert.Equal(t, "3 kyu", profile.Rank)

	assert.Equal(t, before+1, testutil.ToFloat64(metrics.CodewarsFetchesTotal.WithLabelValues(metrics.FetchOutcomeOK)))
}

func TestFetch_NullableFields(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"username":"bob","name":null,"honor":3,"clan":null,"leaderboardPosition":null,"ranks":{"overall":{"name":"8 kyu"}}}`))
	})

	profile, err := client.Fetch(context.Background(), "bob")
	require.NoError(t, err)
	assert.Equal(t, 3, profile.Honor)
	assert.Empty(t, profile.Name)
	assert.Empty(t, profile.Clan)
	assert.Nil(t, profile.LeaderboardPosition)
}

func TestFetch_EscapesUsername(t *testing.T) {
	var gotPath string
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		_, _ = w.Write([]byte(`{"username":"a b/c","honor":1}`))
	})

	_, err := client.Fetch(context.Background(), "a b/c")
	require.NoError(t, err)
	assert.Equal(t, "/api/v1/users/a%20b%2Fc", gotPath)
}

func TestFetch_Failures(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		outcome string
	}{
		{name: "not found", status: http.StatusNotFound, body: `{"success":false,"reason":"not found"}`, outcome: metrics.FetchOutcomeNotFound},
		{name: "server error", status: http.StatusInternalServerError, body: "boom", outcome: metrics.FetchOutcomeStatus},
		{name: "bad json", status: http.StatusOK, body: "{not json", outcome: metrics.FetchOutcomeDecode},
		{name: "missing honor", status: http.StatusOK, body: `{"username":"alice"}`, outcome: metrics.FetchOutcomeDecode},
		{name: "honor wrong type", status: http.StatusOK, body: `{"username":"alice","honor":"many"}`, outcome: metrics.FetchOutcomeDecode},
		{name: "truncated body", status: http.StatusOK, body: `{"honor":`, outcome: metrics.FetchOutcomeDecode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := testutil.ToFloat64(metrics.CodewarsFetchesTotal.WithLabelValues(tt.outcome))
			client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			profile, err := client.Fetch(context.Background(), "alice")
			assert.Nil(t, profile)
			assert.ErrorIs(t, err, domain.ErrUnreachable)
			assert.Equal(t, before+1, testutil.ToFloat64(metrics.CodewarsFetchesTotal.WithLabelValues(tt.outcome)))
		})
	}
}

func TestFetch_EmptyUsernameMakesNoRequest(t *testing.T) {
	var calls atomic.Int32
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	})

	_, err := client.Fetch(context.Background(), "  ")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, int32(0), calls.Load())
}

func TestFetch_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	client := NewClient(url, time.Second)
	_, err := client.Fetch(context.Background(), "alice")
	assert.ErrorIs(t, err, domain.ErrUnreachable)
}

func TestFetch_Timeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	client := NewClient(server.URL, 50*time.Millisecond)
	_, err := client.Fetch(context.Background(), "alice")
	assert.ErrorIs(t, err, domain.ErrUnreachable)
}

func TestNewClient_DefaultBaseURL(t *testing.T) {
	client := NewClient("", time.Second)
	assert.Equal(t, DefaultBaseURL, client.baseURL)

	client = NewClient("http://example.test/", time.Second)
	assert.Equal(t, "http://example.test", client.baseURL)
}
