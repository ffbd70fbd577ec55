package genai

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/hackdash/hackdash/internal/ports"
)

var _ ports.SampleDataGenerator = (*tracedGenerator)(nil)

// WithTracing wraps a generator so every call runs inside an OpenTelemetry
// span carrying the topic and result size.
func WithTracing(next ports.SampleDataGenerator) ports.SampleDataGenerator {
	return &tracedGenerator{
		next:   next,
		tracer: otel.Tracer("hackdash/genai"),
	}
}

type tracedGenerator struct {
	next   ports.SampleDataGenerator
	tracer trace.Tracer
}

func (g *tracedGenerator) Generate(ctx context.Context, topic string) (ports.SampleData, error) {
	ctx, span := g.tracer.Start(ctx, "sampledata.generate",
		trace.WithAttributes(attribute.String("sampledata.topic", topic)),
	)
	defer span.End()

	sample, err := g.next.Generate(ctx, topic)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return ports.SampleData{}, err
	}

	span.SetAttributes(
		attribute.Int("sampledata.groups", len(sample.Groups)),
		attribute.Int("sampledata.criteria", len(sample.Criteria)),
	)
	span.SetStatus(codes.Ok, "")
	return sample, nil
}
