package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"portfolio_api/internal/domain"
	"portfolio_api/internal/service"
	"portfolio_api/internal/service/mocks"
)

type ServerTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	source   *mocks.MockContentSource
	lgtm     *mocks.MockLgtmStore
	archives *mocks.MockArchiveStore
	ogp      *mocks.MockOgpFetcher
	notifier *mocks.MockNotifier

	server *Server
}

func (s *ServerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.source = mocks.NewMockContentSource(s.ctrl)
	s.lgtm = mocks.NewMockLgtmStore(s.ctrl)
	s.archives = mocks.NewMockArchiveStore(s.ctrl)
	s.ogp = mocks.NewMockOgpFetcher(s.ctrl)
	s.notifier = mocks.NewMockNotifier(s.ctrl)

	// Error relays run in the background; exact delivery is covered by the
	// service tests.
	s.notifier.EXPECT().
		Notify(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	s.server = New(Deps{
		Blog:      service.NewBlogService(s.source, s.lgtm, s.archives, s.ogp, logger),
		Portfolio: service.NewPortfolioService(s.source, logger),
		News:      service.NewNewsService(s.source, logger),
		Roadmap:   service.NewRoadmapService(s.source, logger),
		Webhook:   service.NewWebhookService(s.source, s.lgtm, s.archives, nil, s.notifier, logger),
		Sentry:    service.NewSentryService(s.notifier, logger),
		Notifier:  s.notifier,
		Logger:    logger,
	})
}

func (s *ServerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestServerTestSuite(t *testing.T) {
	suite.Run(t, new(ServerTestSuite))
}

func (s *ServerTestSuite) do(method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	s.server.Handler().ServeHTTP(rec, req)
	return rec
}

func (s *ServerTestSuite) TestHealth() {
	rec := s.do(http.MethodGet, "/", "")

	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"success":true,"data":"success"}`, rec.Body.String())
}

func (s *ServerTestSuite) TestGetLgtm() {
	s.lgtm.EXPECT().Get(gomock.Any(), "b1").Return(&domain.LgtmCount{Good: 3, Bad: 1}, nil)

	rec := s.do(http.MethodGet, "/blog/contents/lgtm?id=b1", "")

	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"success":true,"data":{"good":3,"bad":1}}`, rec.Body.String())
}

func (s *ServerTestSuite) TestGetLgtm_NoRecord() {
	s.lgtm.EXPECT().Get(gomock.Any(), "missing").Return(nil, domain.NotFound("lgtm.Get", "missing"))

	rec := s.do(http.MethodGet, "/blog/contents/lgtm?id=missing", "")

	s.Equal(http.StatusBadRequest, rec.Code)
	s.JSONEq(`{"success":false,"message":"データの取得に失敗しました"}`, rec.Body.String())
}

func (s *ServerTestSuite) TestGetLgtm_MissingID() {
	rec := s.do(http.MethodGet, "/blog/contents/lgtm", "")

	s.Equal(http.StatusBadRequest, rec.Code)
	s.JSONEq(`{"success":false,"message":"パラメータが不足しています"}`, rec.Body.String())
}

func (s *ServerTestSuite) TestPostLgtm_Decrement() {
	s.lgtm.EXPECT().Increment(gomock.Any(), "b1", domain.LgtmBad, -1).Return(nil)

	rec := s.do(http.MethodPost, "/blog/contents/lgtm", `{"id":"b1","type":"bad","action":"decrement"}`)

	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"success":true}`, rec.Body.String())
}

func (s *ServerTestSuite) TestPostLgtm_InvalidType() {
	rec := s.do(http.MethodPost, "/blog/contents/lgtm", `{"id":"b1","type":"meh","action":"increment"}`)

	s.Equal(http.StatusBadRequest, rec.Code)
	s.JSONEq(`{"success":false,"message":"パラメータが不足しています"}`, rec.Body.String())
}

func (s *ServerTestSuite) TestPostLgtm_InvalidAction() {
	rec := s.do(http.MethodPost, "/blog/contents/lgtm", `{"id":"b1","type":"good","action":"toggle"}`)

	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *ServerTestSuite) TestPostLgtm_UnknownRecord() {
	s.lgtm.EXPECT().
		Increment(gomock.Any(), "missing", domain.LgtmGood, 1).
		Return(domain.NotFound("lgtm.Increment", "missing"))

	rec := s.do(http.MethodPost, "/blog/contents/lgtm", `{"id":"missing","type":"good","action":"increment"}`)

	s.Equal(http.StatusBadRequest, rec.Code)
	s.JSONEq(`{"success":false,"message":"データの更新に失敗しました"}`, rec.Body.String())
}

func (s *ServerTestSuite) TestBlogContents() {
	created := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)
	fields, _ := json.Marshal(map[string]any{"title": "Hello"})
	s.source.EXPECT().
		Query(gomock.Any(), gomock.Any()).
		Return(&domain.Collection{
			Total: 23,
			Items: []domain.Entry{{Sys: domain.Sys{ID: "b1", CreatedAt: created}, Fields: fields}},
		}, nil)

	rec := s.do(http.MethodGet, "/blog/contents?offset=20&limit=10", "")

	s.Equal(http.StatusOK, rec.Code)

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			Contents []domain.BlogCard `json:"contents"`
			Page     domain.Page       `json:"page"`
		} `json:"data"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.True(resp.Success)
	s.Require().Len(resp.Data.Contents, 1)
	s.Equal("2024-03-10", resp.Data.Contents[0].CreatedAt)
	s.Equal(domain.Page{Current: 3, TotalCount: 3}, resp.Data.Page)
}

func (s *ServerTestSuite) TestBlogContents_MissingPaging() {
	rec := s.do(http.MethodGet, "/blog/contents?offset=0", "")

	s.Equal(http.StatusBadRequest, rec.Code)
	s.JSONEq(`{"success":false,"message":"パラメータが不足しています"}`, rec.Body.String())
}

func (s *ServerTestSuite) TestBlogContents_NonNumericPaging() {
	rec := s.do(http.MethodGet, "/blog/contents?offset=a&limit=10", "")

	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *ServerTestSuite) TestWebhookBlogCreated() {
	s.lgtm.EXPECT().CreateIfAbsent(gomock.Any(), "entry1").Return(nil)

	rec := s.do(http.MethodPost, "/contentful/lgtm", `{"id":{"en-US":"entry1"}}`)

	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"success":true,"data":"success"}`, rec.Body.String())
}

func (s *ServerTestSuite) TestWebhookBlogCreated_MissingID() {
	rec := s.do(http.MethodPost, "/contentful/lgtm", `{"id":{}}`)

	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *ServerTestSuite) TestWebhookBlogArchive_MalformedDate() {
	rec := s.do(http.MethodPut, "/contentful/archive",
		`{"createdAt":"not-a-date","tagId":{"en-US":{"sys":{"id":"cat1"}}}}`)

	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *ServerTestSuite) TestSentryWebhook() {
	s.notifier.EXPECT().
		Post(gomock.Any(), domain.NotifySentry, gomock.Any()).
		Return(nil)

	body := `{
		"url": "https://sentry.example.com/issue/1",
		"event": {
			"title": "TypeError: x is undefined",
			"level": "error",
			"environment": "production",
			"metadata": {"type": "TypeError"}
		}
	}`
	rec := s.do(http.MethodPost, "/sentry/webhook", body)

	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"success":true,"data":"success"}`, rec.Body.String())
}

func (s *ServerTestSuite) TestRoadmap() {
	fields, _ := json.Marshal(map[string]any{
		"content":   "dark mode",
		"state":     []string{"develop"},
		"completed": false,
	})
	s.source.EXPECT().
		Query(gomock.Any(), gomock.Any()).
		Return(&domain.Collection{
			Total: 1,
			Items: []domain.Entry{{Sys: domain.Sys{ID: "r1"}, Fields: fields}},
		}, nil)

	rec := s.do(http.MethodGet, "/roadmap", "")

	s.Equal(http.StatusOK, rec.Code)

	var resp struct {
		Data domain.Roadmap `json:"data"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Require().Len(resp.Data.Develop, 1)
	s.Equal("dark mode", resp.Data.Develop[0].Label)
}
