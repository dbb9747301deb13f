package http

import (
	"errors"
	"net/http"
	"strings"

	"shippix/internal/adapters/in/http/apidocs"

	"github.com/labstack/echo/v4"
)

// handleError is the Echo error handler. API routes answer with a JSON error
// body, pages with the not-found or generic error page.
func (s *Server) handleError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := "Something went wrong. Please try again."

	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		message = http.StatusText(code)
	}

	if code >= http.StatusInternalServerError {
		s.logger.ErrorContext(c.Request().Context(), "Request failed",
			"method", c.Request().Method,
			"path", c.Request().URL.Path,
			"error", err,
		)
	}

	var renderErr error
	switch {
	case c.Request().Method == http.MethodHead:
		renderErr = c.NoContent(code)
	case isAPI(c):
		renderErr = c.JSON(code, apidocs.ErrorBody{Code: code, Message: message})
	case code == http.StatusNotFound:
		renderErr = s.render(c, code, "not-found", "Page Not Found", nil)
	default:
		renderErr = s.render(c, code, "error", "Error", message)
	}
	if renderErr != nil {
		s.logger.ErrorContext(c.Request().Context(), "Failed to render error page", "error", renderErr)
	}
}

func isAPI(c echo.Context) bool {
	return strings.HasPrefix(c.Request().URL.Path, "/api/")
}

func (s *Server) apiError(c echo.Context, code int, message string) error {
	return c.JSON(code, apidocs.ErrorBody{Code: code, Message: message})
}
