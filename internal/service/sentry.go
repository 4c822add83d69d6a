package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"portfolio_api/internal/domain"
)

// SentryService reshapes error-monitoring alerts into chat messages.
type SentryService struct {
	notifier Notifier
	logger   *slog.Logger
}

func NewSentryService(notifier Notifier, logger *slog.Logger) *SentryService {
	return &SentryService{
		notifier: notifier,
		logger:   logger.With("service", "sentry"),
	}
}

// Relay forwards an alert to the sentry chat channel as a Block Kit message.
func (s *SentryService) Relay(ctx context.Context, hook domain.SentryWebhook) error {
	const op = "sentry.Relay"

	event := hook.Event

	browserInfo := "unknown"
	if b := event.Contexts.Browser; b != nil {
		browserInfo = fmt.Sprintf("%s %s %s", b.Name, b.Type, b.Version)
	}
	osInfo := "unknown"
	if o := event.Contexts.OS; o != nil {
		osInfo = fmt.Sprintf("%s %s %s", o.Name, o.Type, o.Version)
	}
	deviceInfo := "unknown"
	if d := event.Contexts.Device; d != nil {
		deviceInfo = d.Family
	}
	userInfo := "unknown"
	if u := event.User; u != nil {
		userInfo = fmt.Sprintf("IP:%s address: %s %s", u.IPAddress, u.Geo.Region, u.Geo.City)
	}

	lines := []string{
		"message: " + event.Title,
		"detail: " + hook.URL,
		"browser: " + browserInfo,
		"os: " + osInfo,
		"device: " + deviceInfo,
		"user: " + userInfo,
	}

	payload := map[string]any{
		"blocks": []map[string]any{
			{
				"type": "section",
				"text": map[string]any{
					"type": "mrkdwn",
					"text": fmt.Sprintf("*%s: %s* (*%s*) ", event.Level, event.Metadata.Type, event.Environment),
				},
			},
			{
				"type": "section",
				"text": map[string]any{
					"type": "mrkdwn",
					"text": strings.Join(lines, "\n"),
				},
			},
		},
	}

	if err := s.notifier.Post(ctx, domain.NotifySentry, payload); err != nil {
		return domain.Upstream(op, err)
	}
	return nil
}
