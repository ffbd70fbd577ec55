// Package ports defines the core interfaces that form the contract between
// the domain/application layers and the infrastructure layer.
// These interfaces enable dependency inversion and make the system testable.
package ports

import (
	"context"
	"time"

	"github.com/hackdash/hackdash/internal/domain"
)

// StateStore persists the durable slice of the application state as a
// single serialized blob. Implementations must treat the slice as opaque:
// no partial reads or writes, last write wins.
type StateStore interface {
	// Load reads the durable slice. When no blob has been written yet,
	// implementations return an empty DurableState and no error so
	// first-run initialization can proceed.
	Load(ctx context.Context) (domain.DurableState, error)

	// Save writes the durable slice, replacing any previous blob. A Save
	// failure is non-fatal to the caller; the store keeps operating
	// in memory.
	Save(ctx context.Context, state domain.DurableState) error
}

// SampleData is a candidate event setup produced by a generator: team
// names and judging criteria ready to be applied wholesale.
type SampleData struct {
	Groups   []domain.Group
	Criteria []domain.Criterion
}

// SampleDataGenerator produces a sample event setup for a topic.
// Implementations must fail explicitly, never silently, when the backing
// service is unreachable or misconfigured; the caller leaves existing
// state untouched on failure.
type SampleDataGenerator interface {
	Generate(ctx context.Context, topic string) (SampleData, error)
}

// MetricsCollector receives store-level observability signals.
// Implementations must be safe for concurrent use and must never fail the
// operation being observed.
type MetricsCollector interface {
	// RecordDispatch counts one reducer dispatch for the given action
	// kind and outcome status.
	RecordDispatch(action, status string)

	// RecordPersistenceFailure counts one failed persistence operation.
	RecordPersistenceFailure(operation string)

	// RecordLatency records how long the given operation took.
	RecordLatency(operation string, d time.Duration)
}

// NopMetrics is a MetricsCollector that discards all signals. It is the
// default when no collector is configured.
type NopMetrics struct{}

// RecordDispatch implements MetricsCollector.
func (NopMetrics) RecordDispatch(string, string) {}

// RecordPersistenceFailure implements MetricsCollector.
func (NopMetrics) RecordPersistenceFailure(string) {}

// RecordLatency implements MetricsCollector.
func (NopMetrics) RecordLatency(string, time.Duration) {}
