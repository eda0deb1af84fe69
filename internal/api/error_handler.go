package api

import (
	"errors"
	"net/http"

	"github.com/gcsolar/usinas-backend/internal/domain"
	"github.com/gcsolar/usinas-backend/internal/pkg/constants"
	"github.com/gcsolar/usinas-backend/internal/pkg/logger"
	"github.com/labstack/echo/v4"
)

// httpErrorHandler maps the error taxonomy to status codes. CodedErrors keep
// their message; anything else answers 500 with the message as details only,
// never a stack trace.
func httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	msg := ""
	for walk := err; walk != nil; walk = errors.Unwrap(walk) {
		if ce, ok := walk.(*constants.CodedError); ok {
			code = ce.Code()
			msg = ce.Error()
			break
		}
		if he, ok := walk.(*echo.HTTPError); ok {
			code = he.Code
			if s, ok := he.Message.(string); ok {
				msg = s
			}
			break
		}
	}

	resp := domain.ErrorResponse{Error: msg}
	if code == http.StatusInternalServerError {
		resp.Error = "erro interno do servidor"
		resp.Details = err.Error()
		logger.Errorf(c.Request().Context(), "request failed: %s", err.Error())
	}
	if resp.Error == "" {
		resp.Error = http.StatusText(code)
	}

	_ = c.JSON(code, resp)
}
