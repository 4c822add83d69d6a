package service

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"portfolio_api/internal/domain"
)

// BlogService aggregates blog content from the content source with the vote
// and archive aggregates kept in the store.
type BlogService struct {
	source   ContentSource
	lgtm     LgtmStore
	archives ArchiveStore
	ogp      OgpFetcher
	logger   *slog.Logger
}

func NewBlogService(
	source ContentSource,
	lgtm LgtmStore,
	archives ArchiveStore,
	ogp OgpFetcher,
	logger *slog.Logger,
) *BlogService {
	return &BlogService{
		source:   source,
		lgtm:     lgtm,
		archives: archives,
		ogp:      ogp,
		logger:   logger.With("service", "blog"),
	}
}

// Summary returns the category badges plus the precomputed monthly and
// per-category aggregates for the blog landing page.
func (s *BlogService) Summary(ctx context.Context) (*domain.BlogSummary, error) {
	const op = "blog.Summary"

	col, err := s.source.Query(ctx, domain.ContentQuery{
		ContentType: domain.ContentTypeBlogCategory,
		Order:       "fields.priority",
	})
	if err != nil {
		return nil, domain.Upstream(op, err)
	}

	tags := make([]domain.Tag, 0, len(col.Items))
	for _, e := range col.Items {
		tag, err := domain.ShapeTag(e)
		if err != nil {
			return nil, domain.Wrap(op, err)
		}
		tags = append(tags, *tag)
	}

	monthly, err := s.archives.ListMonthly(ctx)
	if err != nil {
		return nil, domain.Upstream(op, err)
	}
	archive, err := s.archives.ListTags(ctx)
	if err != nil {
		return nil, domain.Upstream(op, err)
	}

	return &domain.BlogSummary{
		Tags:    tags,
		Monthly: monthly,
		Archive: archive,
	}, nil
}

// ListContentsInput filters the blog card listing. Tag is a category entry
// id; Month, when nonzero, restricts creation timestamps to that calendar
// month as a half-open range.
type ListContentsInput struct {
	SearchWord string
	Tag        string
	Month      time.Time
	Offset     int
	Limit      int
}

// ListContents returns one page of blog cards with pagination metadata.
func (s *BlogService) ListContents(ctx context.Context, in ListContentsInput) (*domain.BlogContents, error) {
	const op = "blog.ListContents"

	if in.Limit <= 0 {
		return nil, domain.Validation(op, "limit must be positive, got %d", in.Limit)
	}

	q := domain.ContentQuery{
		ContentType: domain.ContentTypeBlog,
		Order:       "-sys.createdAt",
		Skip:        in.Offset,
		Limit:       in.Limit,
		SearchWord:  in.SearchWord,
	}
	if in.Tag != "" {
		q.FieldEquals = map[string]string{"fields.category.sys.id": in.Tag}
	}
	if !in.Month.IsZero() {
		start := time.Date(in.Month.Year(), in.Month.Month(), 1, 0, 0, 0, 0, in.Month.Location())
		q.CreatedFrom = start
		q.CreatedBefore = start.AddDate(0, 1, 0)
	}

	col, err := s.source.Query(ctx, q)
	if err != nil {
		return nil, domain.Upstream(op, err)
	}

	cards := make([]domain.BlogCard, 0, len(col.Items))
	for _, e := range col.Items {
		card, err := domain.ShapeBlogCard(e, col.Includes)
		if err != nil {
			return nil, domain.Wrap(op, err)
		}
		cards = append(cards, *card)
	}

	return &domain.BlogContents{
		Contents: cards,
		Page:     domain.Paginate(col.Total, in.Offset, in.Limit),
	}, nil
}

// GetContent returns the full detail view of one article: resolved tag,
// thumbnail, and author, vote counts, table of contents, and the rich text
// body with Open Graph metadata attached to its hyperlinks.
func (s *BlogService) GetContent(ctx context.Context, id string) (*domain.BlogDetail, error) {
	const op = "blog.GetContent"

	col, err := s.source.Query(ctx, domain.ContentQuery{
		ContentType: domain.ContentTypeBlog,
		SysID:       id,
		Limit:       1,
	})
	if err != nil {
		return nil, domain.Upstream(op, err)
	}
	if col.Total < 1 || len(col.Items) == 0 {
		return nil, domain.NotFound(op, id)
	}

	entry := col.Items[0]
	fields, err := domain.ParseBlogFields(entry)
	if err != nil {
		return nil, domain.Upstream(op, err)
	}

	card, err := domain.ShapeBlogCard(entry, col.Includes)
	if err != nil {
		return nil, domain.Wrap(op, err)
	}
	author, err := domain.ShapeAuthor(fields.Author, col.Includes)
	if err != nil {
		return nil, domain.Wrap(op, err)
	}

	counts := domain.LgtmCount{}
	if got, err := s.lgtm.Get(ctx, id); err == nil {
		counts = *got
	} else if domain.KindOf(err) != domain.KindNotFound {
		return nil, domain.Upstream(op, err)
	}

	s.attachOgp(ctx, fields.Body)

	return &domain.BlogDetail{
		BlogCard:  *card,
		UpdatedAt: entry.Sys.UpdatedAt.Format(domain.DateLayout),
		Body:      fields.Body,
		Author:    author,
		Good:      counts.Good,
		Bad:       counts.Bad,
		Index:     domain.BlogIndexFromDocument(fields.Body),
	}, nil
}

// attachOgp fetches Open Graph metadata for every hyperlink in the document
// concurrently and waits for all fetches to settle. One link's failure only
// costs that link its metadata; the document build never aborts over it.
func (s *BlogService) attachOgp(ctx context.Context, body *domain.RichTextNode) {
	links := domain.Hyperlinks(body)
	if len(links) == 0 {
		return
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, link := range links {
		g.Go(func() error {
			meta, err := s.ogp.Fetch(gctx, link.Data.URI)
			if err != nil {
				s.logger.Warn("ogp fetch failed", "url", link.Data.URI, "error", err)
				return nil
			}
			link.Data.OGP = meta
			return nil
		})
	}
	_ = g.Wait()
}

// ListSeries returns every blog series with its member cards. The per-series
// content fetches run concurrently and are all awaited before the result is
// composed; a failed fetch degrades that one series to an empty list.
func (s *BlogService) ListSeries(ctx context.Context) ([]domain.Series, error) {
	const op = "blog.ListSeries"

	col, err := s.source.Query(ctx, domain.ContentQuery{
		ContentType: domain.ContentTypeBlogSeries,
		Order:       "-sys.createdAt",
	})
	if err != nil {
		return nil, domain.Upstream(op, err)
	}

	series := make([]domain.Series, len(col.Items))
	g, gctx := errgroup.WithContext(ctx)
	for i, e := range col.Items {
		fields, err := domain.ParseSeriesFields(e)
		if err != nil {
			return nil, domain.Upstream(op, err)
		}
		series[i] = domain.Series{
			ID:          e.Sys.ID,
			Title:       fields.Title,
			Description: fields.Description,
			Contents:    make([]domain.BlogCard, 0),
		}

		g.Go(func() error {
			contents, err := s.seriesContents(gctx, e.Sys.ID)
			if err != nil {
				s.logger.Warn("series contents fetch failed", "series_id", e.Sys.ID, "error", err)
				return nil
			}
			series[i].Contents = contents
			return nil
		})
	}
	_ = g.Wait()

	return series, nil
}

func (s *BlogService) seriesContents(ctx context.Context, seriesID string) ([]domain.BlogCard, error) {
	col, err := s.source.Query(ctx, domain.ContentQuery{
		ContentType: domain.ContentTypeBlog,
		Order:       "-sys.createdAt",
		FieldEquals: map[string]string{"fields.series.sys.id": seriesID},
	})
	if err != nil {
		return nil, err
	}

	cards := make([]domain.BlogCard, 0, len(col.Items))
	for _, e := range col.Items {
		card, err := domain.ShapeBlogCard(e, col.Includes)
		if err != nil {
			return nil, err
		}
		cards = append(cards, *card)
	}
	return cards, nil
}

// GetLgtm returns the vote record for an article.
func (s *BlogService) GetLgtm(ctx context.Context, id string) (*domain.LgtmCount, error) {
	counts, err := s.lgtm.Get(ctx, id)
	if err != nil {
		return nil, domain.Wrap("blog.GetLgtm", err)
	}
	return counts, nil
}

// LGTM vote actions.
const (
	LgtmActionIncrement = "increment"
	LgtmActionDecrement = "decrement"
)

// PostLgtm applies a single up or down vote to one counter field of an
// existing record.
func (s *BlogService) PostLgtm(ctx context.Context, id string, field domain.LgtmField, action string) error {
	const op = "blog.PostLgtm"

	var delta int
	switch action {
	case LgtmActionIncrement:
		delta = 1
	case LgtmActionDecrement:
		delta = -1
	default:
		return domain.Validation(op, "unknown action %q", action)
	}
	if !field.Valid() {
		return domain.Validation(op, "unknown field %q", field)
	}

	if err := s.lgtm.Increment(ctx, id, field, delta); err != nil {
		return domain.Wrap(op, err)
	}
	return nil
}
