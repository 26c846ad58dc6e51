package middleware

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"strconv"

	"dealswapify/internal/errors"
	"dealswapify/internal/handlers"
	"dealswapify/internal/logging"
	"dealswapify/internal/validation"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
)

// ErrorHandler turns errors that escape handlers into standardized error
// responses, and logs the internal cause behind SYSTEM_001 responses that
// handlers already sent.
type ErrorHandler struct {
	logger      *logging.Logger
	errorsTotal *prometheus.CounterVec
}

// NewErrorHandler registers the api_errors_total counter on reg. A nil reg
// uses the default Prometheus registry.
func NewErrorHandler(logger *logging.Logger, reg prometheus.Registerer) *ErrorHandler {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	return &ErrorHandler{
		logger: logger.Named("http"),
		errorsTotal: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Name: "api_errors_total",
				Help: "Total number of API errors by code, endpoint, and status",
			},
			[]string{"code", "endpoint", "status"},
		),
	}
}

// HandleHTTPError implements echo.HTTPErrorHandler
func (h *ErrorHandler) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	traceID := GetTraceID(c)
	if traceID == "" {
		traceID = "unknown"
	}

	var errorResponse *errors.ErrorResponse
	var httpStatus int

	var echoErr *echo.HTTPError
	var validationErrs validator.ValidationErrors
	switch {
	case stderrors.As(err, &echoErr):
		errorResponse = errors.NewErrorResponse(
			mapHTTPStatusToErrorCode(echoErr.Code),
			traceID,
			errors.WithMessage(fmt.Sprintf("%v", echoErr.Message)),
		)
		httpStatus = echoErr.Code
	case stderrors.As(err, &validationErrs):
		errorResponse = errors.NewErrorResponse(
			errors.ValidationGeneral,
			traceID,
			errors.WithDetails(validation.FormatErrors(validationErrs)...),
		)
		httpStatus = http.StatusBadRequest
	default:
		errorResponse, _ = errors.WrapSystemError(err, traceID)
		httpStatus = errorResponse.GetHTTPStatus()
	}

	h.logError(c, err, errorResponse.Error.Code, httpStatus)

	if sendErr := c.JSON(httpStatus, errorResponse); sendErr != nil {
		h.logger.Error(c.Request().Context(), "failed to send error response", zap.Error(sendErr))
	}
}

// LogSystemErrors logs the error a handler attached with SendSystemError.
// The handler has already written the generic response, so the cause never
// reaches the client.
func (h *ErrorHandler) LogSystemErrors() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			err := next(c)

			if internalErr, ok := c.Get(handlers.InternalErrorContextKey).(error); ok && internalErr != nil {
				h.logError(c, internalErr, string(errors.SystemInternalError), c.Response().Status)
			}

			return err
		}
	}
}

func (h *ErrorHandler) logError(c echo.Context, err error, code string, status int) {
	fields := []zap.Field{
		zap.String("error_code", code),
		zap.Int("status", status),
		zap.String("path", c.Request().URL.Path),
		zap.String("method", c.Request().Method),
		zap.Error(err),
	}

	if status >= http.StatusInternalServerError {
		h.logger.Error(c.Request().Context(), "HTTP error occurred", fields...)
	} else {
		h.logger.Warn(c.Request().Context(), "HTTP error occurred", fields...)
	}

	h.errorsTotal.WithLabelValues(code, c.Path(), strconv.Itoa(status)).Inc()
}

func mapHTTPStatusToErrorCode(status int) errors.ErrorCode {
	switch status {
	case http.StatusBadRequest, http.StatusMethodNotAllowed, http.StatusUnprocessableEntity:
		return errors.ValidationGeneral
	case http.StatusUnauthorized:
		return errors.AuthMissingToken
	case http.StatusForbidden:
		return errors.AuthInsufficientPermission
	case http.StatusNotFound:
		return errors.SystemNotFound
	case http.StatusTooManyRequests:
		return errors.SystemRateLimitExceeded
	case http.StatusInternalServerError:
		return errors.SystemInternalError
	case http.StatusServiceUnavailable:
		return errors.SystemServiceUnavailable
	default:
		return errors.SystemUnexpectedError
	}
}
