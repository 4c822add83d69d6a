package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"portfolio_api/internal/domain"
)

// LgtmStore keeps the per-article like/dislike counters.
type LgtmStore struct {
	db *sqlx.DB
}

func NewLgtmStore(db *sqlx.DB) *LgtmStore {
	return &LgtmStore{db: db}
}

// CreateIfAbsent seeds a zeroed record for the article. Calling it again for
// an existing article is a no-op: counts that have already moved are never
// reset.
func (s *LgtmStore) CreateIfAbsent(ctx context.Context, id string) error {
	query := `
		INSERT INTO blog_lgtm (id, good, bad)
		VALUES ($1, 0, 0)
		ON CONFLICT (id) DO NOTHING`

	_, err := s.db.ExecContext(ctx, query, id)
	return err
}

// Increment applies a signed delta to one counter field as a single
// server-side add, so concurrent votes for the same article all land. It
// fails with a not-found error when the record does not exist yet; it never
// creates one.
func (s *LgtmStore) Increment(ctx context.Context, id string, field domain.LgtmField, delta int) error {
	if !field.Valid() {
		return fmt.Errorf("unknown lgtm field %q", field)
	}
	// field is restricted to the good/bad constants, safe to interpolate.
	query := fmt.Sprintf(`UPDATE blog_lgtm SET %s = %s + $2 WHERE id = $1`, field, field)

	res, err := s.db.ExecContext(ctx, query, id, delta)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.NotFound("lgtm.Increment", id)
	}
	return nil
}

// Get returns the counter record for an article.
func (s *LgtmStore) Get(ctx context.Context, id string) (*domain.LgtmCount, error) {
	var count domain.LgtmCount
	query := `SELECT good, bad FROM blog_lgtm WHERE id = $1`

	err := s.db.GetContext(ctx, &count, query, id)
	if err == sql.ErrNoRows {
		return nil, domain.NotFound("lgtm.Get", id)
	}
	if err != nil {
		return nil, err
	}
	return &count, nil
}
