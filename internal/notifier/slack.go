// Package notifier relays notifications to Slack incoming webhooks.
package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"portfolio_api/internal/domain"
)

// Config maps notification channels to incoming webhook URLs.
type Config struct {
	ServerWebhookURL     string
	ContentfulWebhookURL string
	SentryWebhookURL     string
}

// Slack posts Block Kit payloads to per-channel incoming webhooks. Callers
// treat delivery as best-effort: a failed send is logged, never propagated
// into a response.
type Slack struct {
	httpClient *http.Client
	cfg        Config
	logger     *slog.Logger
}

func NewSlack(cfg Config, logger *slog.Logger) *Slack {
	return &Slack{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		cfg:    cfg,
		logger: logger.With("component", "slack"),
	}
}

// Notify sends a name/message notification to the given channel, tagged with
// the originating operation when one is set.
func (s *Slack) Notify(ctx context.Context, channel domain.NotifyChannel, n domain.Notification) error {
	blocks := []map[string]any{
		{
			"type": "section",
			"fields": []map[string]any{
				{"type": "mrkdwn", "text": fmt.Sprintf("*%s*", n.Name)},
			},
		},
		{
			"type": "section",
			"fields": []map[string]any{
				{"type": "plain_text", "text": n.Message},
			},
		},
	}
	if n.Op != "" {
		blocks = append(blocks, map[string]any{
			"type": "context",
			"elements": []map[string]any{
				{"type": "mrkdwn", "text": "Occurred in " + n.Op},
			},
		})
	}

	color := "#FF6D6D"
	if channel == domain.NotifyContentful {
		color = "#6FCBFF"
	}

	payload := map[string]any{
		"attachments": []map[string]any{
			{
				"color":  color,
				"blocks": blocks,
			},
		},
	}

	return s.Post(ctx, channel, payload)
}

// Post sends an arbitrary webhook payload to the given channel.
func (s *Slack) Post(ctx context.Context, channel domain.NotifyChannel, payload any) error {
	url := s.webhookURL(channel)
	if url == "" {
		return fmt.Errorf("no webhook url configured for channel %s", channel)
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send to slack: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	s.logger.Debug("notification sent", "channel", string(channel))
	return nil
}

func (s *Slack) webhookURL(channel domain.NotifyChannel) string {
	switch channel {
	case domain.NotifyContentful:
		return s.cfg.ContentfulWebhookURL
	case domain.NotifySentry:
		return s.cfg.SentryWebhookURL
	case domain.NotifyServer:
		return s.cfg.ServerWebhookURL
	default:
		return ""
	}
}
