package telemetry_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.trai.ch/extq/internal/adapters/telemetry"
	"go.trai.ch/extq/internal/core/ports"
	"go.trai.ch/extq/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestInterfaceSatisfaction(_ *testing.T) {
	var _ ports.Tracer = (*telemetry.OTelTracer)(nil)
	var _ ports.Span = (*telemetry.OTelSpan)(nil)
	var _ ports.Tracer = (*telemetry.NoOpTracer)(nil)
	var _ ports.Span = telemetry.NoOpSpan{}
	var _ sdktrace.SpanProcessor = (*telemetry.Bridge)(nil)
}

func setupRecorder(t *testing.T) *tracetest.SpanRecorder {
	t.Helper()

	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	previous := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() {
		_ = tp.Shutdown(context.Background())
		otel.SetTracerProvider(previous)
	})
	return sr
}

func TestOTelSpan_Attributes(t *testing.T) {
	sr := setupRecorder(t)

	tracer := telemetry.NewOTelTracer("test-tracer")
	_, span := tracer.Start(t.Context(), "archive.pull")
	span.SetAttribute("url", "https://example.com/a.zip")
	span.SetAttribute("assets", 3)
	span.SetAttribute("size", int64(2048))
	span.SetAttribute("ratio", 0.5)
	span.SetAttribute("regional", false)
	span.SetAttribute("flags", []string{"ext_ghostery"})
	span.SetAttribute("other", struct{ A int }{A: 1})
	span.End()

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "archive.pull", spans[0].Name())
	assert.ElementsMatch(t, []attribute.KeyValue{
		attribute.String("url", "https://example.com/a.zip"),
		attribute.Int("assets", 3),
		attribute.Int64("size", 2048),
		attribute.Float64("ratio", 0.5),
		attribute.Bool("regional", false),
		attribute.StringSlice("flags", []string{"ext_ghostery"}),
		attribute.String("other", "{1}"),
	}, spans[0].Attributes())
}

func TestOTelSpan_RecordError(t *testing.T) {
	sr := setupRecorder(t)

	_, span := telemetry.NewOTelTracer("test-tracer").Start(t.Context(), "library.resolve")
	span.RecordError(errors.New("git missing"))
	span.End()

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	assert.Equal(t, "git missing", spans[0].Status().Description)
}

func TestBridge_LogsFinishedSpans(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)

	log.EXPECT().Info(gomock.Cond(regexp.MustCompile(`^archive\.pull finished in \S+$`).MatchString))
	log.EXPECT().Warn(gomock.Cond(regexp.MustCompile(`^library\.resolve failed after \S+$`).MatchString))

	previous := otel.GetTracerProvider()
	shutdown := telemetry.Setup(telemetry.NewBridge(log))
	t.Cleanup(func() {
		_ = shutdown(context.Background())
		otel.SetTracerProvider(previous)
	})

	tracer := telemetry.NewOTelTracer("test-tracer")

	_, ok := tracer.Start(t.Context(), "archive.pull")
	ok.End()

	_, failed := tracer.Start(t.Context(), "library.resolve")
	failed.RecordError(errors.New("boom"))
	failed.End()
}

func TestNoOpTracer(t *testing.T) {
	ctx := t.Context()
	got, span := telemetry.NewNoOpTracer().Start(ctx, "anything")
	assert.Equal(t, ctx, got)
	span.SetAttribute("k", "v")
	span.RecordError(errors.New("ignored"))
	span.End()
}
