package tracing

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/zjrosen/modelstore/internal/registry"
)

// Span attribute keys for provider lookups.
const (
	AttrIdentifier = "modelstore.identifier"
	AttrCacheHit   = "modelstore.cache_hit"

	SpanGetIdentifiable = "provider.get_identifiable"
)

// TracedProvider wraps an ObjectProvider with a span per lookup.
// Each GetIdentifiable call records the requested identifier and whether
// the lookup succeeded. With a nil tracer the wrapper is a pass-through.
type TracedProvider struct {
	source registry.ObjectProvider
	tracer trace.Tracer
}

var _ registry.ObjectProvider = (*TracedProvider)(nil)

// NewTracedProvider wraps source so every lookup is recorded as a span.
func NewTracedProvider(source registry.ObjectProvider, tracer trace.Tracer) *TracedProvider {
	return &TracedProvider{source: source, tracer: tracer}
}

// GetIdentifiable resolves an identifier through the wrapped provider,
// recording the outcome on a span.
func (p *TracedProvider) GetIdentifiable(identifier string) (registry.Identifiable, error) {
	if p.tracer == nil {
		return p.source.GetIdentifiable(identifier)
	}

	_, span := p.tracer.Start(context.Background(), SpanGetIdentifiable,
		trace.WithSpanKind(trace.SpanKindInternal),
	)
	defer span.End()

	span.SetAttributes(attribute.String(AttrIdentifier, identifier))

	obj, err := p.source.GetIdentifiable(identifier)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetStatus(codes.Ok, "")
	return obj, nil
}
