package notifier

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio_api/internal/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestNotify_ContentfulColor(t *testing.T) {
	var body []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ = io.ReadAll(r.Body)
	}))
	defer srv.Close()

	slack := NewSlack(Config{ContentfulWebhookURL: srv.URL}, testLogger())

	err := slack.Notify(context.Background(), domain.NotifyContentful, domain.Notification{
		Name:    "200 Success",
		Message: "ok",
	})
	require.NoError(t, err)

	var payload struct {
		Attachments []struct {
			Color  string           `json:"color"`
			Blocks []map[string]any `json:"blocks"`
		} `json:"attachments"`
	}
	require.NoError(t, json.Unmarshal(body, &payload))
	require.Len(t, payload.Attachments, 1)
	assert.Equal(t, "#6FCBFF", payload.Attachments[0].Color)
	assert.Len(t, payload.Attachments[0].Blocks, 2)
}

func TestNotify_ServerColorAndOpContext(t *testing.T) {
	var body []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ = io.ReadAll(r.Body)
	}))
	defer srv.Close()

	slack := NewSlack(Config{ServerWebhookURL: srv.URL}, testLogger())

	err := slack.Notify(context.Background(), domain.NotifyServer, domain.Notification{
		Name:    "500 Error",
		Message: "boom",
		Op:      "blog.GetContent",
	})
	require.NoError(t, err)

	assert.Contains(t, string(body), `"#FF6D6D"`)
	assert.Contains(t, string(body), "Occurred in blog.GetContent")
}

func TestPost_RoutesByChannel(t *testing.T) {
	var sentryHits int
	sentrySrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sentryHits++
	}))
	defer sentrySrv.Close()

	slack := NewSlack(Config{SentryWebhookURL: sentrySrv.URL}, testLogger())

	err := slack.Post(context.Background(), domain.NotifySentry, map[string]any{"text": "hi"})
	require.NoError(t, err)
	assert.Equal(t, 1, sentryHits)
}

func TestPost_UnconfiguredChannel(t *testing.T) {
	slack := NewSlack(Config{}, testLogger())

	err := slack.Post(context.Background(), domain.NotifyServer, map[string]any{"text": "hi"})
	assert.Error(t, err)
}

func TestPost_NonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	slack := NewSlack(Config{ServerWebhookURL: srv.URL}, testLogger())

	err := slack.Post(context.Background(), domain.NotifyServer, map[string]any{"text": "hi"})
	assert.Error(t, err)
}
