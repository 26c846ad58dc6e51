package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"dealswapify/internal/errors"
	"dealswapify/internal/logging"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// PanicRecovery recovers from handler panics and returns a standardized
// SYSTEM_001 response
func PanicRecovery(logger *logging.Logger) echo.MiddlewareFunc {
	logger = logger.Named("recovery")

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				r := recover()
				if r == nil {
					return
				}

				traceID := GetTraceID(c)
				if traceID == "" {
					traceID = "unknown"
				}

				logger.Error(c.Request().Context(), "panic recovered",
					zap.String("panic", fmt.Sprintf("%v", r)),
					zap.String("stack_trace", string(debug.Stack())),
					zap.String("path", c.Request().URL.Path),
					zap.String("method", c.Request().Method),
				)

				if c.Response().Committed {
					return
				}

				errorResponse := errors.NewErrorResponse(errors.SystemInternalError, traceID)
				if err := c.JSON(http.StatusInternalServerError, errorResponse); err != nil {
					logger.Error(c.Request().Context(), "failed to send panic recovery response", zap.Error(err))
				}
			}()

			return next(c)
		}
	}
}
