package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"portfolio_api/internal/domain"
)

// ContentSource queries the remote content repository by content type with
// filter, sort, and pagination parameters.
type ContentSource interface {
	Query(ctx context.Context, q domain.ContentQuery) (*domain.Collection, error)
}

// LgtmStore keeps per-article vote counters.
type LgtmStore interface {
	CreateIfAbsent(ctx context.Context, id string) error
	Increment(ctx context.Context, id string, field domain.LgtmField, delta int) error
	Get(ctx context.Context, id string) (*domain.LgtmCount, error)
}

// ArchiveStore keeps the recomputed per-month and per-category aggregates.
type ArchiveStore interface {
	PutMonthly(ctx context.Context, month string, count int) error
	PutTag(ctx context.Context, categoryID string, count, percent int) error
	ListMonthly(ctx context.Context) ([]domain.MonthlyArchive, error)
	ListTags(ctx context.Context) ([]domain.TagArchive, error)
}

// Notifier relays messages to the chat side channel.
type Notifier interface {
	Notify(ctx context.Context, channel domain.NotifyChannel, n domain.Notification) error
	Post(ctx context.Context, channel domain.NotifyChannel, payload any) error
}

// EventPublisher emits content events to the message broker.
type EventPublisher interface {
	Publish(ctx context.Context, event domain.BlogEvent) error
	Close() error
}

// OgpFetcher retrieves Open Graph metadata for a page URL.
type OgpFetcher interface {
	Fetch(ctx context.Context, url string) (map[string]string, error)
}
