package telemetry_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.trai.ch/nuprune/internal/adapters/telemetry"
	"go.trai.ch/nuprune/internal/core/ports"
	"go.trai.ch/nuprune/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestOTelTracer_Start(t *testing.T) {
	sr := tracetest.NewSpanRecorder()
	tracer := telemetry.NewOTelTracer("test", sr)
	defer func() { _ = tracer.Shutdown(context.Background()) }()

	ctx, parent := tracer.Start(context.Background(), "analyze", ports.WithAttribute("projects", 3))
	_, child := tracer.Start(ctx, "analyze Api")
	child.SetAttribute("sources", int64(12))
	child.SetAttribute("framework", "net8.0")
	child.SetAttribute("dirs", []string{"src", "tests"})
	child.SetAttribute("unused", 1.5)
	child.SetAttribute("cpm", true)
	child.SetAttribute("other", struct{ A int }{A: 1})
	child.End()
	parent.End()

	spans := sr.Ended()
	require.Len(t, spans, 2)

	assert.Equal(t, "analyze Api", spans[0].Name())
	assert.Equal(t, spans[1].SpanContext().SpanID(), spans[0].Parent().SpanID())
	assert.ElementsMatch(t, []attribute.KeyValue{
		attribute.Int64("sources", 12),
		attribute.String("framework", "net8.0"),
		attribute.StringSlice("dirs", []string{"src", "tests"}),
		attribute.Float64("unused", 1.5),
		attribute.Bool("cpm", true),
		attribute.String("other", "{1}"),
	}, spans[0].Attributes())

	assert.Equal(t, []attribute.KeyValue{attribute.Int("projects", 3)}, spans[1].Attributes())
}

func TestOTelSpan_RecordError(t *testing.T) {
	sr := tracetest.NewSpanRecorder()
	tracer := telemetry.NewOTelTracer("test", sr)

	_, span := tracer.Start(context.Background(), "load")
	span.RecordError(nil)
	span.RecordError(errors.New("malformed xml"))
	span.End()

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	assert.Equal(t, "malformed xml", spans[0].Status().Description)
	require.Len(t, spans[0].Events(), 1)
}

func TestLogBridge(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)

	var lines []string
	log.EXPECT().Debug(gomock.Any()).Do(func(msg string) { lines = append(lines, msg) }).Times(2)

	tracer := telemetry.NewOTelTracer("test", telemetry.NewLogBridge(log))

	_, ok := tracer.Start(context.Background(), "resolve central packages")
	ok.End()

	_, failed := tracer.Start(context.Background(), "extract Api")
	failed.RecordError(errors.New("file not found"))
	failed.End()

	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "resolve central packages took "), lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "extract Api failed after "), lines[1])
	assert.True(t, strings.HasSuffix(lines[1], ": file not found"), lines[1])
}

func TestNoOpTracer(t *testing.T) {
	tracer := telemetry.NewNoOpTracer()
	ctx := context.Background()

	got, span := tracer.Start(ctx, "noop")
	assert.Equal(t, ctx, got)
	assert.NotPanics(t, func() {
		span.SetAttribute("k", "v")
		span.RecordError(errors.New("x"))
		span.End()
	})
}

func TestGlobalTracer(t *testing.T) {
	tracer := telemetry.NewGlobalTracer("test")
	_, span := tracer.Start(context.Background(), "global")
	span.End()
	assert.NoError(t, tracer.Shutdown(context.Background()))
}
