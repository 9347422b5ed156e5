package httpapi

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var apiTracer = otel.Tracer("espn-soccer-reader/internal/interfaces/httpapi")

var detachedSpan = trace.SpanFromContext(context.Background())

const handlerSpanPrefix = "httpapi.Handler."

// startSpan opens child spans for handlers only. Middleware and response
// helpers get a detached no-op span, so ending it never ends the request span.
func startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	if !trace.SpanContextFromContext(ctx).IsValid() || !isHandlerSpan(name) {
		return ctx, detachedSpan
	}
	return apiTracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

func isHandlerSpan(name string) bool {
	return strings.HasPrefix(name, handlerSpanPrefix)
}
