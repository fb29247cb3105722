package http

import (
	"errors"
	"log/slog"
	"net/http"

	"logistics/internal/generated/servers"
	"logistics/internal/pkg/errs"

	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/labstack/echo/v4"
)

const internalErrorMessage = "internal error"

// statusOf maps an application error to its HTTP status and kind. The bool is
// false for errors that carry no known kind.
func statusOf(err error) (int, servers.ErrorKind, bool) {
	switch {
	case errors.Is(err, errs.ErrUnauthenticated):
		return http.StatusUnauthorized, servers.Unauthenticated, true
	case errors.Is(err, errs.ErrForbidden):
		return http.StatusForbidden, servers.Forbidden, true
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound, servers.NotFound, true
	case errors.Is(err, errs.ErrConflict):
		return http.StatusConflict, servers.Conflict, true
	case errors.Is(err, errs.ErrInvalidStateTransition):
		return http.StatusConflict, servers.InvalidState, true
	case errs.IsInvalidInput(err):
		return http.StatusBadRequest, servers.InvalidInput, true
	default:
		return http.StatusInternalServerError, servers.Internal, false
	}
}

func kindOfStatus(status int) servers.ErrorKind {
	switch status {
	case http.StatusUnauthorized:
		return servers.Unauthenticated
	case http.StatusForbidden:
		return servers.Forbidden
	case http.StatusNotFound, http.StatusMethodNotAllowed:
		return servers.NotFound
	case http.StatusConflict:
		return servers.Conflict
	default:
		if status >= http.StatusInternalServerError {
			return servers.Internal
		}
		return servers.InvalidInput
	}
}

// NewErrorHandler renders every error as {code, kind, message}. Errors
// without a known kind are logged and answered with an opaque 500.
func NewErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	logger = logger.With("component", "http_error_handler")

	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		body := servers.Error{}

		var httpErr *echo.HTTPError
		var reqErr *openapi3filter.RequestError
		var secErr *openapi3filter.SecurityRequirementsError
		switch {
		case errors.As(err, &secErr):
			body.Code, body.Kind, body.Message = http.StatusUnauthorized, servers.Unauthenticated, "not authenticated"
			for _, inner := range secErr.Errors {
				if code, kind, ok := statusOf(inner); ok {
					body.Code, body.Kind, body.Message = code, kind, messageOf(inner)
					break
				}
			}
		case errors.As(err, &reqErr):
			body.Code, body.Kind, body.Message = http.StatusBadRequest, servers.InvalidInput, reqErr.Error()
		case errors.As(err, &httpErr):
			body.Code = httpErr.Code
			body.Kind = kindOfStatus(httpErr.Code)
			body.Message = http.StatusText(httpErr.Code)
			if msg, ok := httpErr.Message.(string); ok && msg != "" {
				body.Message = msg
			}
		default:
			code, kind, ok := statusOf(err)
			body.Code, body.Kind = code, kind
			if ok {
				body.Message = messageOf(err)
			} else {
				body.Message = internalErrorMessage
			}
		}

		if body.Code >= http.StatusInternalServerError {
			logger.ErrorContext(c.Request().Context(), "request failed",
				"method", c.Request().Method, "path", c.Path(), "error", err)
		}

		if body.Code == http.StatusUnauthorized {
			c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")
		}

		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(body.Code)
		} else {
			writeErr = c.JSON(body.Code, body)
		}
		if writeErr != nil {
			logger.ErrorContext(c.Request().Context(), "failed to write error response", "error", writeErr)
		}
	}
}

// messageOf prefers the human reason of access errors over the full chain.
func messageOf(err error) string {
	var unauth *errs.UnauthenticatedError
	if errors.As(err, &unauth) {
		return unauth.Reason
	}
	var forbidden *errs.ForbiddenError
	if errors.As(err, &forbidden) {
		return forbidden.Action
	}
	return err.Error()
}
