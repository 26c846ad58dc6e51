package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	apierrors "dealswapify/internal/errors"
	"dealswapify/internal/logging"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap/zapcore"
)

type PanicRecoveryTestSuite struct {
	suite.Suite
	echo   *echo.Echo
	logger *logging.TestLogger
}

func (s *PanicRecoveryTestSuite) SetupTest() {
	s.echo = echo.New()
	s.logger = logging.NewTestLogger()
}

func TestPanicRecoveryTestSuite(t *testing.T) {
	suite.Run(t, new(PanicRecoveryTestSuite))
}

func (s *PanicRecoveryTestSuite) TestRecoversPanic() {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/listings", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.Set(TraceIDContextKey, "panic-trace")

	handler := PanicRecovery(s.logger.Logger)(func(c echo.Context) error {
		panic("nil map write")
	})

	s.NotPanics(func() {
		s.NoError(handler(c))
	})
	s.Equal(http.StatusInternalServerError, rec.Code)

	var resp apierrors.ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(string(apierrors.SystemInternalError), resp.Error.Code)
	s.Equal("panic-trace", resp.Error.TraceID)
	s.NotContains(rec.Body.String(), "nil map write")

	s.logger.AssertLogged(s.T(), zapcore.ErrorLevel, "panic recovered")
	s.logger.AssertField(s.T(), "panic recovered", "panic", "nil map write")
	s.logger.AssertField(s.T(), "panic recovered", "path", "/api/v1/listings")
}

func (s *PanicRecoveryTestSuite) TestRecoversErrorValue() {
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	handler := PanicRecovery(s.logger.Logger)(func(c echo.Context) error {
		panic(apierrors.ErrorCode("boom"))
	})

	s.NoError(handler(c))
	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Contains(rec.Body.String(), `"trace_id":"unknown"`)
}

func (s *PanicRecoveryTestSuite) TestPassesThroughWithoutPanic() {
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	handler := PanicRecovery(s.logger.Logger)(func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	s.NoError(handler(c))
	s.Equal(http.StatusOK, rec.Code)
	s.Empty(s.logger.All())
}

func (s *PanicRecoveryTestSuite) TestPanicAfterCommitKeepsResponse() {
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	handler := PanicRecovery(s.logger.Logger)(func(c echo.Context) error {
		_ = c.String(http.StatusAccepted, "partial")
		panic("late")
	})

	s.NoError(handler(c))
	s.Equal(http.StatusAccepted, rec.Code)
	s.logger.AssertLogged(s.T(), zapcore.ErrorLevel, "panic recovered")
}
