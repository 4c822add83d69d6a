package server

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"portfolio_api/internal/domain"
)

// Client-facing messages, kept in Japanese as the site's frontend expects.
const (
	msgMissingParams = "パラメータが不足しています"
	msgFetchFailed   = "データの取得に失敗しました"
	msgUpdateFailed  = "データの更新に失敗しました"
)

type envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

func respondSuccess(c echo.Context, data any) error {
	return c.JSON(http.StatusOK, envelope{Success: true, Data: data})
}

func respondBadRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, envelope{Success: false, Message: message})
}

func respondServerError(c echo.Context, message string) error {
	return c.JSON(http.StatusInternalServerError, envelope{Success: false, Message: message})
}

// respondError maps a service error onto the response envelope. Domain
// not-found keeps the historical contract of a 400 with a fetch-failure
// message rather than a 404. Non-validation errors are also relayed to the
// chat side channel, in the background so a slow webhook never delays or
// fails the response.
func (s *Server) respondError(c echo.Context, err error) error {
	switch domain.KindOf(err) {
	case domain.KindValidation:
		return respondBadRequest(c, msgMissingParams)
	case domain.KindNotFound:
		return respondBadRequest(c, msgFetchFailed)
	default:
		s.notifyError(err)
		return respondServerError(c, err.Error())
	}
}

func (s *Server) notifyError(err error) {
	go func() {
		n := domain.Notification{
			Name:    "500 Error",
			Message: err.Error(),
			Op:      domain.OpOf(err),
		}
		if nerr := s.notifier.Notify(context.Background(), domain.NotifyServer, n); nerr != nil {
			s.logger.Warn("error notification failed", "error", nerr)
		}
	}()
}
