package server

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"portfolio_api/internal/domain"
	"portfolio_api/internal/service"
)

func (s *Server) handleBlogSummary(c echo.Context) error {
	summary, err := s.blog.Summary(c.Request().Context())
	if err != nil {
		return s.respondError(c, err)
	}
	return respondSuccess(c, summary)
}

func (s *Server) handleBlogContents(c echo.Context) error {
	offset, limit, ok := pageParams(c)
	if !ok {
		return respondBadRequest(c, msgMissingParams)
	}

	in := service.ListContentsInput{
		SearchWord: c.QueryParam("search_word"),
		Tag:        c.QueryParam("tag"),
		Offset:     offset,
		Limit:      limit,
	}
	if raw := c.QueryParam("time"); raw != "" {
		month, err := parseISODate(raw)
		if err != nil {
			return respondBadRequest(c, msgMissingParams)
		}
		in.Month = month
	}

	contents, err := s.blog.ListContents(c.Request().Context(), in)
	if err != nil {
		return s.respondError(c, err)
	}
	return respondSuccess(c, contents)
}

func (s *Server) handleBlogContent(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return respondBadRequest(c, msgMissingParams)
	}

	detail, err := s.blog.GetContent(c.Request().Context(), id)
	if err != nil {
		return s.respondError(c, err)
	}
	return respondSuccess(c, detail)
}

func (s *Server) handleBlogSeries(c echo.Context) error {
	series, err := s.blog.ListSeries(c.Request().Context())
	if err != nil {
		return s.respondError(c, err)
	}
	return respondSuccess(c, series)
}

func (s *Server) handleGetLgtm(c echo.Context) error {
	id := c.QueryParam("id")
	if id == "" {
		return respondBadRequest(c, msgMissingParams)
	}

	counts, err := s.blog.GetLgtm(c.Request().Context(), id)
	if err != nil {
		return s.respondError(c, err)
	}
	return respondSuccess(c, counts)
}

type postLgtmRequest struct {
	ID     string `json:"id"`
	Type   string `json:"type"`
	Action string `json:"action"`
}

func (s *Server) handlePostLgtm(c echo.Context) error {
	var req postLgtmRequest
	if err := c.Bind(&req); err != nil {
		return respondBadRequest(c, msgMissingParams)
	}
	field := domain.LgtmField(req.Type)
	if req.ID == "" || !field.Valid() {
		return respondBadRequest(c, msgMissingParams)
	}
	if req.Action != service.LgtmActionIncrement && req.Action != service.LgtmActionDecrement {
		return respondBadRequest(c, msgMissingParams)
	}

	if err := s.blog.PostLgtm(c.Request().Context(), req.ID, field, req.Action); err != nil {
		if domain.KindOf(err) == domain.KindNotFound {
			return respondBadRequest(c, msgUpdateFailed)
		}
		return s.respondError(c, err)
	}
	return respondSuccess(c, nil)
}

func (s *Server) handlePortfolioWorks(c echo.Context) error {
	offset, limit, ok := pageParams(c)
	if !ok {
		return respondBadRequest(c, msgMissingParams)
	}

	works, err := s.portfolio.ListWorks(c.Request().Context(), offset, limit)
	if err != nil {
		return s.respondError(c, err)
	}
	return respondSuccess(c, works)
}

func (s *Server) handleNews(c echo.Context) error {
	offset, limit, ok := pageParams(c)
	if !ok {
		return respondBadRequest(c, msgMissingParams)
	}

	items, err := s.news.List(c.Request().Context(), offset, limit)
	if err != nil {
		return s.respondError(c, err)
	}
	return respondSuccess(c, map[string]any{"contents": items})
}

func (s *Server) handleRoadmap(c echo.Context) error {
	roadmap, err := s.roadmap.Get(c.Request().Context())
	if err != nil {
		return s.respondError(c, err)
	}
	return respondSuccess(c, roadmap)
}

// localizedID is how the content source webhook delivers field values:
// keyed by locale.
type localizedID map[string]string

type webhookCreatePayload struct {
	ID localizedID `json:"id"`
}

func (s *Server) handleWebhookBlogCreated(c echo.Context) error {
	var payload webhookCreatePayload
	if err := c.Bind(&payload); err != nil {
		return respondBadRequest(c, msgMissingParams)
	}
	id := payload.ID["en-US"]
	if id == "" {
		return respondBadRequest(c, msgMissingParams)
	}

	if err := s.webhook.HandleBlogCreated(c.Request().Context(), id); err != nil {
		return s.respondError(c, err)
	}
	return respondSuccess(c, "success")
}

type webhookArchivePayload struct {
	CreatedAt string `json:"createdAt"`
	TagID     map[string]struct {
		Sys struct {
			ID string `json:"id"`
		} `json:"sys"`
	} `json:"tagId"`
}

func (s *Server) handleWebhookBlogArchive(c echo.Context) error {
	var payload webhookArchivePayload
	if err := c.Bind(&payload); err != nil {
		return respondBadRequest(c, msgMissingParams)
	}
	tagID := payload.TagID["en-US"].Sys.ID
	if tagID == "" || payload.CreatedAt == "" {
		return respondBadRequest(c, msgMissingParams)
	}
	createdAt, err := parseISODate(payload.CreatedAt)
	if err != nil {
		return respondBadRequest(c, msgMissingParams)
	}

	err = s.webhook.HandleBlogUpdated(c.Request().Context(), service.ArchiveInput{
		CreatedAt:  createdAt,
		TagEntryID: tagID,
	})
	if err != nil {
		return s.respondError(c, err)
	}
	return respondSuccess(c, "success")
}

func (s *Server) handleSentryWebhook(c echo.Context) error {
	var hook domain.SentryWebhook
	if err := c.Bind(&hook); err != nil {
		return respondBadRequest(c, msgMissingParams)
	}

	if err := s.sentry.Relay(c.Request().Context(), hook); err != nil {
		return s.respondError(c, err)
	}
	return respondSuccess(c, "success")
}

// pageParams reads the required offset and limit query parameters. Limit
// must be positive: page math divides by it.
func pageParams(c echo.Context) (offset, limit int, ok bool) {
	rawOffset := c.QueryParam("offset")
	rawLimit := c.QueryParam("limit")
	if rawOffset == "" || rawLimit == "" {
		return 0, 0, false
	}
	offset, err := strconv.Atoi(rawOffset)
	if err != nil || offset < 0 {
		return 0, 0, false
	}
	limit, err = strconv.Atoi(rawLimit)
	if err != nil || limit <= 0 {
		return 0, 0, false
	}
	return offset, limit, true
}

// parseISODate accepts a full timestamp or a bare date.
func parseISODate(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse(domain.DateLayout, raw)
}
