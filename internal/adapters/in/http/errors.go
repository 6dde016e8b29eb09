package http

import (
	"errors"
	"net/http"

	"parcels/internal/core/application/usecases/commands"
	"parcels/internal/generated/servers"
	"parcels/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// StatusFor maps the error taxonomy onto HTTP status codes.
func StatusFor(err error) int {
	var httpErr *echo.HTTPError
	switch {
	case errors.As(err, &httpErr):
		return httpErr.Code
	case errs.IsValidation(err):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrNotAuthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, errs.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrAlreadyExists):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// fail writes err as an Error body. Internal failures are logged and their
// detail is withheld from the client.
func (s *Server) fail(ctx echo.Context, err error) error {
	return ctx.JSON(StatusFor(err), s.errorBody(ctx, err))
}

func (s *Server) errorBody(ctx echo.Context, err error) servers.Error {
	code := StatusFor(err)
	body := servers.Error{Code: code, Message: err.Error()}

	var httpErr *echo.HTTPError
	switch {
	case errors.As(err, &httpErr):
		if msg, ok := httpErr.Message.(string); ok {
			body.Message = msg
		} else {
			body.Message = http.StatusText(code)
		}
	case code == http.StatusInternalServerError:
		s.logger.ErrorContext(ctx.Request().Context(), "request failed",
			"method", ctx.Request().Method,
			"path", ctx.Path(),
			"error", err,
		)
		body.Message = "Internal server error"
	case errors.Is(err, commands.ErrEmailNotVerified):
		requiresToken := true
		body.RequiresToken = &requiresToken
	}
	return body
}

// ErrorHandler renders errors that escape the handlers, such as binding
// failures raised by the generated wrapper or unknown routes.
func (s *Server) ErrorHandler(err error, ctx echo.Context) {
	if ctx.Response().Committed {
		return
	}
	if writeErr := s.fail(ctx, err); writeErr != nil {
		s.logger.ErrorContext(ctx.Request().Context(), "write error response", "error", writeErr)
	}
}
