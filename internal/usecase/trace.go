package usecase

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var (
	readerTracer = otel.Tracer("espn-soccer-reader/internal/usecase")
	detachedSpan = trace.SpanFromContext(context.Background())
)

const (
	attrRecordID  = attribute.Key("dataset.record_id")
	attrCategory  = attribute.Key("dataset.category")
	attrTableKind = attribute.Key("dataset.table")
	attrLeague    = attribute.Key("dataset.league")
	attrSeason    = attribute.Key("dataset.season_year")
)

// startUsecaseSpan only opens child spans. Calls made outside a traced request
// (warm-up, tests) get a detached no-op span.
func startUsecaseSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	if !trace.SpanContextFromContext(ctx).IsValid() {
		return ctx, detachedSpan
	}
	return readerTracer.Start(ctx, name, trace.WithAttributes(attrs...))
}
