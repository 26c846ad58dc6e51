package services

import (
	"errors"
	"sync"
	"time"

	"dealswapify/internal/config"
	"dealswapify/internal/models"
)

var (
	ErrCircuitBreakerOpen = errors.New("circuit breaker is open")
)

type CircuitBreakerConfig struct {
	FailureThreshold int
	SuccessThreshold int
	ResetTimeout     time.Duration
}

func DefaultCircuitBreakerConfig() CircuitBreakerConfig {
	return CircuitBreakerConfig{
		FailureThreshold: 5,
		SuccessThreshold: 2,
		ResetTimeout:     30 * time.Second,
	}
}

// CircuitBreakerConfigFromMatcher reads the breaker thresholds of the
// category lookup. Non-positive values fall back to the defaults.
func CircuitBreakerConfigFromMatcher(cfg config.MatcherConfig) CircuitBreakerConfig {
	breakerConfig := DefaultCircuitBreakerConfig()
	if cfg.BreakerFailureThreshold > 0 {
		breakerConfig.FailureThreshold = cfg.BreakerFailureThreshold
	}
	if cfg.BreakerSuccessThreshold > 0 {
		breakerConfig.SuccessThreshold = cfg.BreakerSuccessThreshold
	}
	if cfg.BreakerResetTimeout > 0 {
		breakerConfig.ResetTimeout = cfg.BreakerResetTimeout
	}
	return breakerConfig
}

type CircuitBreaker struct {
	mu                sync.RWMutex
	config            CircuitBreakerConfig
	state             models.CircuitBreakerState
	failures          int
	halfOpenSuccesses int
	openedAt          time.Time
	now               func() time.Time
}

func NewCircuitBreaker(config CircuitBreakerConfig) CircuitBreakerInterface {
	return newCircuitBreaker(config, time.Now)
}

func newCircuitBreaker(config CircuitBreakerConfig, now func() time.Time) *CircuitBreaker {
	return &CircuitBreaker{
		config: config,
		state:  models.CircuitClosed,
		now:    now,
	}
}

// IsOpen reports whether calls must be rejected. An open breaker whose reset
// timeout has elapsed moves to half-open and lets calls through again.
func (cb *CircuitBreaker) IsOpen() bool {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	if cb.state == models.CircuitOpen && cb.shouldTransitionToHalfOpen() {
		cb.state = models.CircuitHalfOpen
		cb.halfOpenSuccesses = 0
		return false
	}

	return cb.state == models.CircuitOpen
}

func (cb *CircuitBreaker) shouldTransitionToHalfOpen() bool {
	return cb.now().Sub(cb.openedAt) >= cb.config.ResetTimeout
}

func (cb *CircuitBreaker) RecordSuccess() {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	switch cb.state {
	case models.CircuitHalfOpen:
		cb.halfOpenSuccesses++
		if cb.halfOpenSuccesses >= cb.config.SuccessThreshold {
			cb.transitionToClosed()
		}
	case models.CircuitClosed:
		cb.failures = 0
	}
}

func (cb *CircuitBreaker) transitionToClosed() {
	cb.state = models.CircuitClosed
	cb.failures = 0
	cb.halfOpenSuccesses = 0
}

func (cb *CircuitBreaker) RecordFailure() {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	switch cb.state {
	case models.CircuitHalfOpen:
		cb.transitionToOpen()
	case models.CircuitClosed:
		cb.failures++
		if cb.failures >= cb.config.FailureThreshold {
			cb.transitionToOpen()
		}
	}
}

func (cb *CircuitBreaker) transitionToOpen() {
	cb.state = models.CircuitOpen
	cb.openedAt = cb.now()
	cb.halfOpenSuccesses = 0
}

func (cb *CircuitBreaker) GetState() models.CircuitBreakerState {
	cb.mu.RLock()
	defer cb.mu.RUnlock()
	return cb.state
}

func (cb *CircuitBreaker) Reset() {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	cb.transitionToClosed()
}

func (cb *CircuitBreaker) GetFailureCount() int {
	cb.mu.RLock()
	defer cb.mu.RUnlock()
	return cb.failures
}
