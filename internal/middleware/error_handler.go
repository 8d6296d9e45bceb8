package middleware

import (
	"net/http"

	"bassMate/pkg/logger"

	"github.com/labstack/echo/v4"
)

// ErrorHandler is the central echo HTTP error handler: echo.HTTPError passes
// through with its status, anything else becomes an opaque 500.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := "internal server error"

	if httpErr, ok := err.(*echo.HTTPError); ok {
		code = httpErr.Code
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}
	} else {
		logger.Error("unhandled error", "path", c.Request().URL.Path, "error", err)
	}

	if writeErr := c.JSON(code, authError{Message: message}); writeErr != nil {
		logger.Error("failed to write error response", "error", writeErr)
	}
}
