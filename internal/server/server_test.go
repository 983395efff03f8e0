package server

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/HonorBot_Go/internal/handler"
)

type fakeBot struct{ connected bool }

func (f fakeBot) Status() handler.BotStatus {
	return handler.BotStatus{Connected: f.connected, Uptime: "1s"}
}

type fakeStore struct{ err error }

func (f fakeStore) Ping(ctx context.Context) error { return f.err }

func TestRouter_Routes(t *testing.T) {
	srv := httptest.NewServer(NewRouter("1.0.0", fakeBot{connected: true}, fakeStore{}))
	t.Cleanup(srv.Close)

	tests := []struct {
		path     string
		status   int
		contains string
	}{
		{"/healthz", http.StatusOK, `"connected":true`},
		{"/readyz", http.StatusOK, `"status":"ok"`},
		{"/version", http.StatusOK, `"version":"1.0.0"`},
		{"/metrics", http.StatusOK, "go_goroutines"},
		{"/nope", http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp, err := http.Get(srv.URL + tt.path)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tt.status, resp.StatusCode)
			assert.Equal(t, HeaderValueNoSniff, resp.Header.Get(HeaderContentType))
			if tt.contains != "" {
				body := readAll(t, resp)
				assert.Contains(t, body, tt.contains)
			}
		})
	}
}

func TestRouter_Degraded(t *testing.T) {
	router := NewRouter("dev", fakeBot{connected: false}, fakeStore{err: assert.AnError})

	for _, path := range []string{"/healthz", "/readyz"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code, path)
	}
}

func TestServer_StartStop(t *testing.T) {
	s := NewServer(0, "dev", nil, fakeStore{})
	assert.Equal(t, ":0", s.Addr())

	done := make(chan error, 1)
	go func() { done <- s.Start() }()

	require.NoError(t, s.Stop(context.Background()))
	assert.NoError(t, <-done)
}

func readAll(t *testing.T, resp *http.Response) string {
	t.Helper()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(b)
}
