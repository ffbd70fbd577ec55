package genai

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hackdash/hackdash/internal/domain"
	"github.com/hackdash/hackdash/internal/ports"
)

// fakeGenerator records calls and optionally blocks until released.
type fakeGenerator struct {
	calls   atomic.Int64
	block   chan struct{}
	sample  ports.SampleData
	err     error
	sawCtx  context.Context
	sawOnce sync.Once
}

func (g *fakeGenerator) Generate(ctx context.Context, topic string) (ports.SampleData, error) {
	g.calls.Add(1)
	g.sawOnce.Do(func() { g.sawCtx = ctx })
	if g.block != nil {
		select {
		case <-g.block:
		case <-ctx.Done():
			return ports.SampleData{}, ctx.Err()
		}
	}
	return g.sample, g.err
}

func sampleFixture(t *testing.T) ports.SampleData {
	t.Helper()
	group, err := domain.NewGroup("Alpha")
	require.NoError(t, err)
	criterion, err := domain.NewCriterion("Innovation", 10)
	require.NoError(t, err)
	return ports.SampleData{Groups: []domain.Group{group}, Criteria: []domain.Criterion{criterion}}
}

func TestWithTimeout(t *testing.T) {
	t.Run("sets a deadline on the call context", func(t *testing.T) {
		fake := &fakeGenerator{sample: sampleFixture(t)}
		gen := WithTimeout(fake, time.Minute)

		_, err := gen.Generate(context.Background(), "topic")
		require.NoError(t, err)

		deadline, ok := fake.sawCtx.Deadline()
		require.True(t, ok, "wrapped call should carry a deadline")
		assert.WithinDuration(t, time.Now().Add(time.Minute), deadline, 5*time.Second)
	})

	t.Run("cancels a call that overruns", func(t *testing.T) {
		fake := &fakeGenerator{block: make(chan struct{})}
		gen := WithTimeout(fake, 10*time.Millisecond)

		_, err := gen.Generate(context.Background(), "topic")
		require.ErrorIs(t, err, context.DeadlineExceeded)
	})

	t.Run("non-positive timeout is a no-op", func(t *testing.T) {
		fake := &fakeGenerator{}
		assert.Same(t, ports.SampleDataGenerator(fake), WithTimeout(fake, 0))
	})
}

func TestWithRateLimit(t *testing.T) {
	t.Run("first call passes through immediately", func(t *testing.T) {
		fake := &fakeGenerator{sample: sampleFixture(t)}
		gen := WithRateLimit(fake, 60)

		sample, err := gen.Generate(context.Background(), "topic")
		require.NoError(t, err)
		assert.Len(t, sample.Groups, 1)
		assert.EqualValues(t, 1, fake.calls.Load())
	})

	t.Run("exhausted budget respects context cancellation", func(t *testing.T) {
		fake := &fakeGenerator{sample: sampleFixture(t)}
		gen := WithRateLimit(fake, 1)

		_, err := gen.Generate(context.Background(), "topic")
		require.NoError(t, err)

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()
		_, err = gen.Generate(ctx, "topic")
		require.Error(t, err)
		assert.EqualValues(t, 1, fake.calls.Load(), "second call should never reach upstream")
	})

	t.Run("non-positive limit is a no-op", func(t *testing.T) {
		fake := &fakeGenerator{}
		assert.Same(t, ports.SampleDataGenerator(fake), WithRateLimit(fake, 0))
	})
}

func TestWithSingleflight(t *testing.T) {
	t.Run("concurrent calls for one topic share a single upstream request", func(t *testing.T) {
		fake := &fakeGenerator{sample: sampleFixture(t), block: make(chan struct{})}
		gen := WithSingleflight(fake)

		const callers = 5
		var wg sync.WaitGroup
		results := make([]ports.SampleData, callers)
		errs := make([]error, callers)
		for i := 0; i < callers; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				results[i], errs[i] = gen.Generate(context.Background(), "topic")
			}(i)
		}

		// Let the callers pile up behind the in-flight request.
		time.Sleep(50 * time.Millisecond)
		close(fake.block)
		wg.Wait()

		for i := 0; i < callers; i++ {
			require.NoError(t, errs[i])
			assert.Equal(t, results[0], results[i])
		}
		assert.LessOrEqual(t, fake.calls.Load(), int64(2),
			"almost all callers should coalesce onto the shared request")
	})

	t.Run("distinct topics do not coalesce", func(t *testing.T) {
		fake := &fakeGenerator{sample: sampleFixture(t)}
		gen := WithSingleflight(fake)

		_, err := gen.Generate(context.Background(), "ocean cleanup")
		require.NoError(t, err)
		_, err = gen.Generate(context.Background(), "space farming")
		require.NoError(t, err)
		assert.EqualValues(t, 2, fake.calls.Load())
	})
}
