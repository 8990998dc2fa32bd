package observability

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// ErrorTagKey is the span attribute carrying a stage failure message.
const ErrorTagKey = "error"

// TagError attaches error=<msg> to the span active in ctx and marks it failed.
// It is a no-op when no recording span is present.
func TagError(ctx context.Context, msg string) {
	TagSpanError(trace.SpanFromContext(ctx), msg)
}

// TagSpanError is TagError for an explicit span.
func TagSpanError(span trace.Span, msg string) {
	if span == nil || !span.IsRecording() {
		return
	}
	span.SetAttributes(attribute.String(ErrorTagKey, msg))
	span.SetStatus(codes.Error, msg)
}

// TraceID returns the hex trace id carried by ctx, or "" when there is none.
func TraceID(ctx context.Context) string {
	spanCtx := trace.SpanContextFromContext(ctx)
	if !spanCtx.IsValid() {
		return ""
	}
	return spanCtx.TraceID().String()
}
