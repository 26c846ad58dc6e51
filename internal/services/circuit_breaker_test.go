package services

import (
	"sync"
	"testing"
	"time"

	"dealswapify/internal/config"
	"dealswapify/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type CircuitBreakerTestSuite struct {
	suite.Suite
	clock   *fakeClock
	breaker *CircuitBreaker
}

func (s *CircuitBreakerTestSuite) SetupTest() {
	s.clock = &fakeClock{now: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
	s.breaker = newCircuitBreaker(CircuitBreakerConfig{
		FailureThreshold: 3,
		SuccessThreshold: 2,
		ResetTimeout:     10 * time.Second,
	}, s.clock.Now)
}

func TestCircuitBreakerSuite(t *testing.T) {
	suite.Run(t, new(CircuitBreakerTestSuite))
}

func (s *CircuitBreakerTestSuite) openBreaker() {
	for i := 0; i < 3; i++ {
		s.breaker.RecordFailure()
	}
	s.Require().Equal(models.CircuitOpen, s.breaker.GetState())
}

func (s *CircuitBreakerTestSuite) TestStartsClosed() {
	s.Equal(models.CircuitClosed, s.breaker.GetState())
	s.False(s.breaker.IsOpen())
	s.Equal(0, s.breaker.GetFailureCount())
}

func (s *CircuitBreakerTestSuite) TestOpensAfterConsecutiveFailures() {
	s.breaker.RecordFailure()
	s.breaker.RecordFailure()
	s.False(s.breaker.IsOpen())
	s.Equal(2, s.breaker.GetFailureCount())

	s.breaker.RecordFailure()

	s.True(s.breaker.IsOpen())
	s.Equal(models.CircuitOpen, s.breaker.GetState())
}

func (s *CircuitBreakerTestSuite) TestSuccessResetsFailureCount() {
	s.breaker.RecordFailure()
	s.breaker.RecordFailure()
	s.breaker.RecordSuccess()
	s.breaker.RecordFailure()

	s.False(s.breaker.IsOpen())
	s.Equal(1, s.breaker.GetFailureCount())
}

func (s *CircuitBreakerTestSuite) TestStaysOpenBeforeResetTimeout() {
	s.openBreaker()

	s.clock.Advance(9 * time.Second)

	s.True(s.breaker.IsOpen())
}

func (s *CircuitBreakerTestSuite) TestHalfOpenAfterResetTimeout() {
	s.openBreaker()

	s.clock.Advance(10 * time.Second)

	s.False(s.breaker.IsOpen())
	s.Equal(models.CircuitHalfOpen, s.breaker.GetState())
}

func (s *CircuitBreakerTestSuite) TestHalfOpenClosesAfterSuccesses() {
	s.openBreaker()
	s.clock.Advance(10 * time.Second)
	s.Require().False(s.breaker.IsOpen())

	s.breaker.RecordSuccess()
	s.Equal(models.CircuitHalfOpen, s.breaker.GetState())

	s.breaker.RecordSuccess()
	s.Equal(models.CircuitClosed, s.breaker.GetState())
	s.Equal(0, s.breaker.GetFailureCount())
}

func (s *CircuitBreakerTestSuite) TestHalfOpenFailureReopens() {
	s.openBreaker()
	s.clock.Advance(10 * time.Second)
	s.Require().False(s.breaker.IsOpen())

	s.breaker.RecordFailure()

	s.Equal(models.CircuitOpen, s.breaker.GetState())
	s.True(s.breaker.IsOpen())

	// the reset timeout restarts from the failed probe
	s.clock.Advance(10 * time.Second)
	s.False(s.breaker.IsOpen())
}

func (s *CircuitBreakerTestSuite) TestReset() {
	s.openBreaker()

	s.breaker.Reset()

	s.Equal(models.CircuitClosed, s.breaker.GetState())
	s.False(s.breaker.IsOpen())
	s.Equal(0, s.breaker.GetFailureCount())
}

func (s *CircuitBreakerTestSuite) TestConcurrentUse() {
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i%2 == 0 {
				s.breaker.RecordFailure()
			} else {
				s.breaker.RecordSuccess()
			}
			_ = s.breaker.IsOpen()
			_ = s.breaker.GetState()
		}(i)
	}
	wg.Wait()

	s.Contains([]models.CircuitBreakerState{models.CircuitClosed, models.CircuitOpen}, s.breaker.GetState())
}

func TestCircuitBreakerConfigFromMatcher(t *testing.T) {
	t.Run("uses configured thresholds", func(t *testing.T) {
		cfg := CircuitBreakerConfigFromMatcher(config.MatcherConfig{
			BreakerFailureThreshold: 7,
			BreakerSuccessThreshold: 4,
			BreakerResetTimeout:     time.Minute,
		})

		assert.Equal(t, 7, cfg.FailureThreshold)
		assert.Equal(t, 4, cfg.SuccessThreshold)
		assert.Equal(t, time.Minute, cfg.ResetTimeout)
	})

	t.Run("falls back to defaults", func(t *testing.T) {
		cfg := CircuitBreakerConfigFromMatcher(config.MatcherConfig{})

		assert.Equal(t, DefaultCircuitBreakerConfig(), cfg)
	})
}
