// Package server exposes the aggregated site content over HTTP.
package server

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"portfolio_api/internal/service"
)

// Deps are the services a Server routes requests to.
type Deps struct {
	Blog      *service.BlogService
	Portfolio *service.PortfolioService
	News      *service.NewsService
	Roadmap   *service.RoadmapService
	Webhook   *service.WebhookService
	Sentry    *service.SentryService
	Notifier  service.Notifier
	Logger    *slog.Logger
}

// Server wires the HTTP routes to the services.
type Server struct {
	echo      *echo.Echo
	blog      *service.BlogService
	portfolio *service.PortfolioService
	news      *service.NewsService
	roadmap   *service.RoadmapService
	webhook   *service.WebhookService
	sentry    *service.SentryService
	notifier  service.Notifier
	logger    *slog.Logger
}

func New(deps Deps) *Server {
	s := &Server{
		echo:      echo.New(),
		blog:      deps.Blog,
		portfolio: deps.Portfolio,
		news:      deps.News,
		roadmap:   deps.Roadmap,
		webhook:   deps.Webhook,
		sentry:    deps.Sentry,
		notifier:  deps.Notifier,
		logger:    deps.Logger.With("component", "http"),
	}

	s.echo.HideBanner = true
	s.echo.Use(middleware.Recover())
	s.echo.Use(middleware.CORS())
	s.echo.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:  true,
		LogURI:     true,
		LogMethod:  true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			s.logger.Info("request",
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
			)
			return nil
		},
	}))

	s.routes()
	return s
}

func (s *Server) routes() {
	s.echo.GET("/", s.handleHealth)

	s.echo.GET("/blog", s.handleBlogSummary)
	s.echo.GET("/blog/contents", s.handleBlogContents)
	s.echo.GET("/blog/contents/lgtm", s.handleGetLgtm)
	s.echo.POST("/blog/contents/lgtm", s.handlePostLgtm)
	s.echo.GET("/blog/contents/:id", s.handleBlogContent)
	s.echo.GET("/blog/series", s.handleBlogSeries)

	s.echo.GET("/portfolio/works", s.handlePortfolioWorks)
	s.echo.GET("/news", s.handleNews)
	s.echo.GET("/roadmap", s.handleRoadmap)

	s.echo.POST("/contentful/lgtm", s.handleWebhookBlogCreated)
	s.echo.PUT("/contentful/archive", s.handleWebhookBlogArchive)
	s.echo.POST("/sentry/webhook", s.handleSentryWebhook)
}

// Handler exposes the routing tree, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.echo
}

func (s *Server) Start(addr string) error {
	return s.echo.Start(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

func (s *Server) handleHealth(c echo.Context) error {
	return respondSuccess(c, "success")
}
