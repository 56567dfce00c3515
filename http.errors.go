package catalog

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/go-arrower/catalog/alog"
	"github.com/go-arrower/catalog/fetch"
	"github.com/go-arrower/catalog/repository"
)

// ErrorResponse is the body of every failed API call.
type ErrorResponse struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
	Error      string `json:"error"`
}

// HTTPErrorHandler maps the errors returned by controllers to a status code:
// repository.ErrNotFound becomes 404, failed validation 400 and a failing
// upstream source 502. Everything else is an internal server error.
func HTTPErrorHandler(logger alog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := statusCode(err)

		logger.DebugContext(c.Request().Context(), "request failed",
			slog.Int("status", code),
			slog.String("path", c.Path()),
			slog.String("error", err.Error()),
		)

		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}

		_ = c.JSON(code, ErrorResponse{
			StatusCode: code,
			Message:    msg,
			Error:      http.StatusText(code),
		})
	}
}

func statusCode(err error) (int, string) {
	var (
		httpErr        *echo.HTTPError
		validationErrs validator.ValidationErrors
	)

	switch {
	case errors.As(err, &httpErr):
		if msg, ok := httpErr.Message.(string); ok {
			return httpErr.Code, msg
		}

		return httpErr.Code, http.StatusText(httpErr.Code)
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound, err.Error()
	case errors.As(err, &validationErrs):
		return http.StatusBadRequest, validationErrs.Error()
	case errors.Is(err, fetch.ErrFetch):
		return http.StatusBadGateway, err.Error()
	default:
		return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
	}
}
