package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// Setup installs a global tracer provider feeding processor and returns its shutdown function.
func Setup(processor sdktrace.SpanProcessor) func(context.Context) error {
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(processor))
	otel.SetTracerProvider(tp)
	return tp.Shutdown
}
