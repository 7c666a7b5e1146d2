package tracing

import (
	"context"
	"testing"

	"github.com/ncobase/relaypage/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestEnsureTraceID(t *testing.T) {
	ctx, id := EnsureTraceID(context.Background())
	require.NotEmpty(t, id)
	assert.Equal(t, id, GetTraceID(ctx))

	same, again := EnsureTraceID(ctx)
	assert.Equal(t, id, again)
	assert.Equal(t, ctx, same)
}

func TestSetTraceID(t *testing.T) {
	ctx := SetTraceID(context.Background(), "abc")
	assert.Equal(t, "abc", GetTraceID(ctx))
	assert.Equal(t, "", GetTraceID(context.Background()))
}

func TestNewTracerDisabled(t *testing.T) {
	shutdown, err := NewTracer(context.Background(), &config.Tracer{})
	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))

	shutdown, err = NewTracer(context.Background(), nil)
	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))
}

func TestStartRecordsSpan(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder)))
	t.Cleanup(func() { otel.SetTracerProvider(prev) })

	_, span := Start(context.Background(), "paging.slice", attribute.Int("total", 3))
	span.End()

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "paging.slice", spans[0].Name())
	assert.Contains(t, spans[0].Attributes(), attribute.Int("total", 3))
}
