package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/santiago-morfe/TaskGeniusApi/internal/domain"
	"github.com/santiago-morfe/TaskGeniusApi/internal/infrastructure/genius"
)

// Response is the envelope of every JSON body the API writes.
type Response struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Code    int         `json:"code,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func sendJSONResponse(c echo.Context, statusCode int, data interface{}) error {
	return c.JSON(statusCode, Response{
		Status: "success",
		Code:   statusCode,
		Data:   data,
	})
}

func sendJSONError(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, Response{
		Status:  "error",
		Message: message,
		Code:    statusCode,
	})
}

// NewErrorHandler maps service errors onto status codes. Server-side
// failures are logged and answered with a generic message.
func NewErrorHandler(log *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		statusCode, message := classifyError(err)
		if statusCode >= http.StatusInternalServerError {
			log.Error("request failed",
				"method", c.Request().Method,
				"path", c.Path(),
				"request_id", c.Response().Header().Get(echo.HeaderXRequestID),
				"status", statusCode,
				"error", err)
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(statusCode)
		} else {
			err = sendJSONError(c, statusCode, message)
		}
		if err != nil {
			log.Error("cannot write error response", "error", err)
		}
	}
}

func classifyError(err error) (int, string) {
	var httpErr *echo.HTTPError
	switch {
	case errors.As(err, &httpErr):
		if message, ok := httpErr.Message.(string); ok {
			return httpErr.Code, message
		}
		return httpErr.Code, http.StatusText(httpErr.Code)
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalid credentials"
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, "invalid or expired token"
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict, err.Error()
	case errors.Is(err, domain.ErrQuotaExceeded):
		return http.StatusUnprocessableEntity, "task limit reached"
	case errors.Is(err, context.Canceled):
		return 499, "request canceled"
	case errors.Is(err, domain.ErrUpstream):
		if genius.IsTimeout(err) {
			return http.StatusGatewayTimeout, "the assistant did not answer in time"
		}
		return http.StatusBadGateway, "the assistant is unavailable"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}
