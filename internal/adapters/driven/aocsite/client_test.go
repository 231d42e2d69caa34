package aocsite

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gisleburt/advent-of-code-2023/internal/core/domain"
)

func TestClient_FetchInput(t *testing.T) {
	var gotPath, gotAgent, gotCookie string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAgent = r.Header.Get("User-Agent")
		if cookie, err := r.Cookie("session"); err == nil {
			gotCookie = cookie.Value
		}
		_, _ = w.Write([]byte("1abc2\npqr3stu8vwx\n"))
	}))
	defer server.Close()

	client := NewClientWithBaseURL(server.URL)
	input, err := client.FetchInput(context.Background(), "53616c7465645f5f", 2023, 1)

	require.NoError(t, err)
	assert.Equal(t, "1abc2\npqr3stu8vwx\n", input)
	assert.Equal(t, "/2023/day/1/input", gotPath)
	assert.Equal(t, userAgent, gotAgent)
	assert.Equal(t, "53616c7465645f5f", gotCookie)
}

func TestClient_FetchInput_EmptySession(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer server.Close()

	client := NewClientWithBaseURL(server.URL)
	_, err := client.FetchInput(context.Background(), "", 2023, 1)

	require.ErrorIs(t, err, domain.ErrNoSession)
	assert.Zero(t, requests, "no request should leave the process without a session")
}

func TestClient_FetchInput_RejectedSession(t *testing.T) {
	tests := []struct {
		name   string
		status int
	}{
		{name: "bad request", status: http.StatusBadRequest},
		{name: "unauthorized", status: http.StatusUnauthorized},
		{name: "internal server error", status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer server.Close()

			client := NewClientWithBaseURL(server.URL)
			_, err := client.FetchInput(context.Background(), "expired", 2023, 1)

			require.ErrorIs(t, err, domain.ErrSessionInvalid)
		})
	}
}

func TestClient_FetchInput_PuzzleNotYetAvailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClientWithBaseURL(server.URL)
	_, err := client.FetchInput(context.Background(), "tok", 2023, 25)

	require.ErrorIs(t, err, domain.ErrPuzzleUnavailable)
	assert.ErrorContains(t, err, "day 25")
}

func TestClient_FetchInput_UnexpectedStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	defer server.Close()

	client := NewClientWithBaseURL(server.URL)
	_, err := client.FetchInput(context.Background(), "tok", 2023, 1)

	require.Error(t, err)
	assert.ErrorContains(t, err, "unexpected status")
}

func TestClient_FetchInput_CancelledContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := NewClientWithBaseURL(server.URL)
	_, err := client.FetchInput(ctx, "tok", 2023, 1)

	require.ErrorIs(t, err, context.Canceled)
}

func TestNewClient_UsesProductionSite(t *testing.T) {
	client := NewClient()

	assert.Equal(t, DefaultBaseURL, client.baseURL)
}

func TestNewClientWithBaseURL_TrimsTrailingSlash(t *testing.T) {
	client := NewClientWithBaseURL("http://localhost:8080/")

	assert.Equal(t, "http://localhost:8080", client.baseURL)
}
