package genai

import (
	"context"
	"time"

	"golang.org/x/sync/singleflight"
	"golang.org/x/time/rate"

	"github.com/hackdash/hackdash/internal/ports"
)

// Decorators wrapping a SampleDataGenerator with cross-cutting call
// policies. They compose in any order; a typical stack is
// WithSingleflight(WithRateLimit(WithTimeout(gen, t), rpm)).

var (
	_ ports.SampleDataGenerator = (*timeoutGenerator)(nil)
	_ ports.SampleDataGenerator = (*rateLimitedGenerator)(nil)
	_ ports.SampleDataGenerator = (*singleflightGenerator)(nil)
)

// WithTimeout bounds every generation call to the given duration.
// A non-positive timeout returns the generator unwrapped.
func WithTimeout(next ports.SampleDataGenerator, timeout time.Duration) ports.SampleDataGenerator {
	if timeout <= 0 {
		return next
	}
	return &timeoutGenerator{next: next, timeout: timeout}
}

type timeoutGenerator struct {
	next    ports.SampleDataGenerator
	timeout time.Duration
}

func (g *timeoutGenerator) Generate(ctx context.Context, topic string) (ports.SampleData, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()
	return g.next.Generate(ctx, topic)
}

// WithRateLimit throttles generation to the given number of requests per
// minute, waiting (subject to ctx) when the budget is exhausted. A
// non-positive limit returns the generator unwrapped.
func WithRateLimit(next ports.SampleDataGenerator, requestsPerMinute int) ports.SampleDataGenerator {
	if requestsPerMinute <= 0 {
		return next
	}
	limiter := rate.NewLimiter(rate.Limit(float64(requestsPerMinute)/60.0), 1)
	return &rateLimitedGenerator{next: next, limiter: limiter}
}

type rateLimitedGenerator struct {
	next    ports.SampleDataGenerator
	limiter *rate.Limiter
}

func (g *rateLimitedGenerator) Generate(ctx context.Context, topic string) (ports.SampleData, error) {
	if err := g.limiter.Wait(ctx); err != nil {
		return ports.SampleData{}, err
	}
	return g.next.Generate(ctx, topic)
}

// WithSingleflight collapses concurrent generation calls for the same
// topic into one upstream request; every caller receives the shared
// result.
func WithSingleflight(next ports.SampleDataGenerator) ports.SampleDataGenerator {
	return &singleflightGenerator{next: next}
}

type singleflightGenerator struct {
	next  ports.SampleDataGenerator
	group singleflight.Group
}

func (g *singleflightGenerator) Generate(ctx context.Context, topic string) (ports.SampleData, error) {
	result, err, _ := g.group.Do(topic, func() (any, error) {
		return g.next.Generate(ctx, topic)
	})
	if err != nil {
		return ports.SampleData{}, err
	}
	return result.(ports.SampleData), nil
}
