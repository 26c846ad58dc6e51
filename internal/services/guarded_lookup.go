package services

import (
	"context"
	"errors"
	"time"

	"dealswapify/internal/models"
	"dealswapify/internal/repositories"

	"github.com/google/uuid"
)

const categoryLookupService = "category_lookup"

// GuardedCategoryLookup bounds every lookup with a timeout and stops calling
// the underlying store while its circuit breaker is open.
type GuardedCategoryLookup struct {
	lookup  CategoryLookup
	breaker CircuitBreakerInterface
	timeout time.Duration
	metrics MetricsRecorderInterface
	events  ListingLoggerInterface
}

func NewGuardedCategoryLookup(
	lookup CategoryLookup,
	breaker CircuitBreakerInterface,
	timeout time.Duration,
	metrics MetricsRecorderInterface,
	events ListingLoggerInterface,
) CategoryLookup {
	return &GuardedCategoryLookup{
		lookup:  lookup,
		breaker: breaker,
		timeout: timeout,
		metrics: metrics,
		events:  events,
	}
}

func (g *GuardedCategoryLookup) ResolveNameByID(ctx context.Context, id uuid.UUID) (string, error) {
	var name string
	err := g.call(ctx, "resolve_name", func(ctx context.Context) error {
		var err error
		name, err = g.lookup.ResolveNameByID(ctx, id)
		return err
	})
	if err != nil {
		return "", err
	}
	return name, nil
}

func (g *GuardedCategoryLookup) ResolveIDByName(ctx context.Context, name string) (uuid.UUID, error) {
	var id uuid.UUID
	err := g.call(ctx, "resolve_id", func(ctx context.Context) error {
		var err error
		id, err = g.lookup.ResolveIDByName(ctx, name)
		return err
	})
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

func (g *GuardedCategoryLookup) call(ctx context.Context, operation string, fn func(ctx context.Context) error) error {
	before := g.breaker.GetState()
	defer g.observeState(ctx, before)

	if g.breaker.IsOpen() {
		g.metrics.IncrementCounter(MetricCategoryLookupFailed, map[string]string{"operation": operation})
		return ErrCircuitBreakerOpen
	}

	callCtx := ctx
	if g.timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	err := fn(callCtx)
	switch {
	case err == nil, errors.Is(err, repositories.ErrCategoryNotFound):
		// not-found is an answer from a healthy store
		g.breaker.RecordSuccess()
	default:
		g.breaker.RecordFailure()
		g.metrics.IncrementCounter(MetricCategoryLookupFailed, map[string]string{"operation": operation})
	}

	return err
}

func (g *GuardedCategoryLookup) observeState(ctx context.Context, before models.CircuitBreakerState) {
	after := g.breaker.GetState()
	if after == before {
		return
	}
	g.metrics.RecordGauge(MetricCircuitBreakerState, float64(after), map[string]string{"service": categoryLookupService})
	g.events.LogCircuitBreakerStateChange(ctx, categoryLookupService, before.String(), after.String())
}
