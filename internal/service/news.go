package service

import (
	"context"
	"log/slog"

	"portfolio_api/internal/domain"
)

// NewsService lists news feed items from the content source.
type NewsService struct {
	source ContentSource
	logger *slog.Logger
}

func NewNewsService(source ContentSource, logger *slog.Logger) *NewsService {
	return &NewsService{
		source: source,
		logger: logger.With("service", "news"),
	}
}

// List returns one page of news items, newest first.
func (s *NewsService) List(ctx context.Context, offset, limit int) ([]domain.NewsItem, error) {
	const op = "news.List"

	if limit <= 0 {
		return nil, domain.Validation(op, "limit must be positive, got %d", limit)
	}

	col, err := s.source.Query(ctx, domain.ContentQuery{
		ContentType: domain.ContentTypeNews,
		Order:       "-sys.createdAt",
		Skip:        offset,
		Limit:       limit,
	})
	if err != nil {
		return nil, domain.Upstream(op, err)
	}

	items := make([]domain.NewsItem, 0, len(col.Items))
	for _, e := range col.Items {
		item, err := domain.ShapeNewsItem(e, col.Includes)
		if err != nil {
			return nil, domain.Wrap(op, err)
		}
		items = append(items, *item)
	}
	return items, nil
}
