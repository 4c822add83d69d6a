package service

import (
	"context"
	"log/slog"

	"portfolio_api/internal/domain"
)

// Entry id of the portfolio type entry that work items link to. The value is
// a stable content source id, not a secret.
const portfolioWorkTypeEntryID = "4L2MYmx7zKMOc8OIjd4TL8"

// PortfolioService lists portfolio works from the content source.
type PortfolioService struct {
	source ContentSource
	logger *slog.Logger
}

func NewPortfolioService(source ContentSource, logger *slog.Logger) *PortfolioService {
	return &PortfolioService{
		source: source,
		logger: logger.With("service", "portfolio"),
	}
}

// ListWorks returns one page of portfolio works, newest year first.
func (s *PortfolioService) ListWorks(ctx context.Context, offset, limit int) ([]domain.PortfolioWork, error) {
	const op = "portfolio.ListWorks"

	if limit <= 0 {
		return nil, domain.Validation(op, "limit must be positive, got %d", limit)
	}

	col, err := s.source.Query(ctx, domain.ContentQuery{
		ContentType:  domain.ContentTypePortfolio,
		Order:        "-fields.created_year",
		Skip:         offset,
		Limit:        limit,
		LinksToEntry: portfolioWorkTypeEntryID,
	})
	if err != nil {
		return nil, domain.Upstream(op, err)
	}

	works := make([]domain.PortfolioWork, 0, len(col.Items))
	for _, e := range col.Items {
		work, err := domain.ShapePortfolioWork(e, col.Includes)
		if err != nil {
			return nil, domain.Wrap(op, err)
		}
		works = append(works, *work)
	}
	return works, nil
}
