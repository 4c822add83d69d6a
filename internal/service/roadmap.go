package service

import (
	"context"
	"log/slog"

	"portfolio_api/internal/domain"
)

// RoadmapService returns the development roadmap grouped by state.
type RoadmapService struct {
	source ContentSource
	logger *slog.Logger
}

func NewRoadmapService(source ContentSource, logger *slog.Logger) *RoadmapService {
	return &RoadmapService{
		source: source,
		logger: logger.With("service", "roadmap"),
	}
}

func (s *RoadmapService) Get(ctx context.Context) (*domain.Roadmap, error) {
	const op = "roadmap.Get"

	col, err := s.source.Query(ctx, domain.ContentQuery{
		ContentType: domain.ContentTypeRoadmap,
	})
	if err != nil {
		return nil, domain.Upstream(op, err)
	}

	roadmap, err := domain.ShapeRoadmap(col.Items)
	if err != nil {
		return nil, domain.Upstream(op, err)
	}
	return roadmap, nil
}
