package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"portfolio_api/internal/domain"
)

// WebhookService reacts to content source webhook deliveries: seeding vote
// records for new articles and recomputing the archive aggregates. Deliveries
// are idempotent and may arrive out of order; each recompute reads fresh
// counts from the source rather than adjusting stored values.
type WebhookService struct {
	source    ContentSource
	lgtm      LgtmStore
	archives  ArchiveStore
	publisher EventPublisher
	notifier  Notifier
	logger    *slog.Logger
}

func NewWebhookService(
	source ContentSource,
	lgtm LgtmStore,
	archives ArchiveStore,
	publisher EventPublisher,
	notifier Notifier,
	logger *slog.Logger,
) *WebhookService {
	return &WebhookService{
		source:    source,
		lgtm:      lgtm,
		archives:  archives,
		publisher: publisher,
		notifier:  notifier,
		logger:    logger.With("service", "webhook"),
	}
}

// HandleBlogCreated seeds a zeroed vote record for a newly published
// article. Redelivery is safe: the create is a merge, not an overwrite.
func (s *WebhookService) HandleBlogCreated(ctx context.Context, entryID string) error {
	const op = "webhook.HandleBlogCreated"

	if err := s.lgtm.CreateIfAbsent(ctx, entryID); err != nil {
		return domain.Upstream(op, err)
	}

	s.publish(ctx, domain.BlogEvent{Action: "create", EntryID: entryID})
	s.notify(ctx, domain.Notification{
		Name:    "200 Success",
		Message: "Webhookを正常に実行しました\n 関数：HandleBlogCreated",
	})
	return nil
}

// ArchiveInput identifies the article a create/update/delete webhook was
// delivered for: its creation timestamp and its category entry id.
type ArchiveInput struct {
	CreatedAt  time.Time
	TagEntryID string
}

// HandleBlogUpdated recomputes the monthly and per-category aggregates from
// fresh source counts and overwrites both archive records. The two writes are
// independent; a crash in between leaves the tag record stale until the next
// redelivery.
func (s *WebhookService) HandleBlogUpdated(ctx context.Context, in ArchiveInput) error {
	const op = "webhook.HandleBlogUpdated"

	categories, err := s.source.Query(ctx, domain.ContentQuery{
		ContentType: domain.ContentTypeBlogCategory,
		SysID:       in.TagEntryID,
	})
	if err != nil {
		return domain.Upstream(op, err)
	}
	if categories.Total < 1 || len(categories.Items) == 0 {
		s.notify(ctx, domain.Notification{
			Name:    "400 Error",
			Message: "カテゴリが取得できませんでした",
			Op:      op,
		})
		return domain.Upstream(op, errors.New("category entry not found: "+in.TagEntryID))
	}
	fields, err := domain.ParseCategoryFields(categories.Items[0])
	if err != nil {
		return domain.Upstream(op, err)
	}

	month := in.CreatedAt.Format(domain.MonthLayout)
	monthStart := time.Date(in.CreatedAt.Year(), in.CreatedAt.Month(), 1, 0, 0, 0, 0, in.CreatedAt.Location())

	monthlyCount, err := s.countBlogs(ctx, domain.ContentQuery{
		ContentType:   domain.ContentTypeBlog,
		CreatedFrom:   monthStart,
		CreatedBefore: monthStart.AddDate(0, 1, 0),
	})
	if err != nil {
		return domain.Upstream(op, err)
	}

	categoryCount, err := s.countBlogs(ctx, domain.ContentQuery{
		ContentType: domain.ContentTypeBlog,
		FieldEquals: map[string]string{"fields.category.sys.id": in.TagEntryID},
	})
	if err != nil {
		return domain.Upstream(op, err)
	}

	totalCount, err := s.countBlogs(ctx, domain.ContentQuery{
		ContentType: domain.ContentTypeBlog,
	})
	if err != nil {
		return domain.Upstream(op, err)
	}

	percent := 0
	if totalCount > 0 {
		percent = categoryCount * 100 / totalCount
	}

	if err := s.archives.PutMonthly(ctx, month, monthlyCount); err != nil {
		return domain.Upstream(op, err)
	}
	if err := s.archives.PutTag(ctx, fields.CategoryID, categoryCount, percent); err != nil {
		return domain.Upstream(op, err)
	}

	s.publish(ctx, domain.BlogEvent{
		Action:     "archive",
		EntryID:    in.TagEntryID,
		Month:      month,
		CategoryID: fields.CategoryID,
	})
	s.notify(ctx, domain.Notification{
		Name:    "200 Success",
		Message: "Webhookを正常に実行しました\n 関数：HandleBlogUpdated",
	})
	return nil
}

func (s *WebhookService) countBlogs(ctx context.Context, q domain.ContentQuery) (int, error) {
	// Only the total matters; keep the page as small as the API allows.
	q.Limit = 1
	col, err := s.source.Query(ctx, q)
	if err != nil {
		return 0, err
	}
	return col.Total, nil
}

// notify reports to the chat channel without ever failing the webhook.
func (s *WebhookService) notify(ctx context.Context, n domain.Notification) {
	if err := s.notifier.Notify(ctx, domain.NotifyContentful, n); err != nil {
		s.logger.Warn("chat notification failed", "error", err)
	}
}

// publish emits the broker event without ever failing the webhook.
func (s *WebhookService) publish(ctx context.Context, event domain.BlogEvent) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Warn("event publish failed", "action", event.Action, "error", err)
	}
}
