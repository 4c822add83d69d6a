package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"portfolio_api/internal/domain"
)

// ArchiveStore keeps the precomputed per-month and per-category article
// aggregates. Writers recompute the values from fresh source queries and
// overwrite whole records; nothing here is incremental.
type ArchiveStore struct {
	db *sqlx.DB
}

func NewArchiveStore(db *sqlx.DB) *ArchiveStore {
	return &ArchiveStore{db: db}
}

// PutMonthly overwrites the article count for a yyyy-MM month.
func (s *ArchiveStore) PutMonthly(ctx context.Context, month string, count int) error {
	query := `
		INSERT INTO blog_monthly_archive (month, count)
		VALUES ($1, $2)
		ON CONFLICT (month) DO UPDATE SET
			count = EXCLUDED.count`

	_, err := s.db.ExecContext(ctx, query, month, count)
	return err
}

// PutTag overwrites the count and share for a category, keyed by the stable
// external category id.
func (s *ArchiveStore) PutTag(ctx context.Context, categoryID string, count, percent int) error {
	query := `
		INSERT INTO blog_tag_archive (category_id, count, percent)
		VALUES ($1, $2, $3)
		ON CONFLICT (category_id) DO UPDATE SET
			count = EXCLUDED.count,
			percent = EXCLUDED.percent`

	_, err := s.db.ExecContext(ctx, query, categoryID, count, percent)
	return err
}

// ListMonthly returns every monthly aggregate, newest month first.
func (s *ArchiveStore) ListMonthly(ctx context.Context) ([]domain.MonthlyArchive, error) {
	archives := make([]domain.MonthlyArchive, 0)
	query := `SELECT month, count FROM blog_monthly_archive ORDER BY month DESC`

	if err := s.db.SelectContext(ctx, &archives, query); err != nil {
		return nil, err
	}
	return archives, nil
}

// ListTags returns every category aggregate, largest count first.
func (s *ArchiveStore) ListTags(ctx context.Context) ([]domain.TagArchive, error) {
	archives := make([]domain.TagArchive, 0)
	query := `SELECT category_id, count, percent FROM blog_tag_archive ORDER BY count DESC, category_id`

	if err := s.db.SelectContext(ctx, &archives, query); err != nil {
		return nil, err
	}
	return archives, nil
}
