package jalali_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/go-faster/jalali"
	"github.com/go-faster/jalali/oteljalali"
)

func TestDoSpanContext(t *testing.T) {
	t.Parallel()

	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSyncer(exporter),
	)
	t.Cleanup(func() {
		require.NoError(t, tp.Shutdown(context.Background()))
	})

	r, err := jalali.New(jalali.Options{})
	require.NoError(t, err)

	ctx, span := tp.Tracer("test").Start(context.Background(), "convert")
	res, err := r.Do(ctx, jalali.Call{
		Func: "jalali_date_to_gregorian",
		Args: []jalali.Value{jalali.StrValue("1403-01-01")},
	})
	require.NoError(t, err)
	span.SetAttributes(
		oteljalali.CallID(res.CallID),
		oteljalali.Function("jalali_date_to_gregorian"),
	)
	span.End()

	require.True(t, res.Span.IsValid())
	assert.Equal(t, span.SpanContext().TraceID(), res.Span.TraceID())
	assert.Equal(t, "2024-03-20", res.Value.Str())

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)

	var found bool
	for _, kv := range spans[0].Attributes {
		if kv.Key == oteljalali.CallIDKey {
			found = true
			assert.Equal(t, res.CallID, kv.Value.AsString())
		}
	}
	assert.True(t, found, "call id attribute not exported")
}

func TestDoNoSpan(t *testing.T) {
	t.Parallel()

	r, err := jalali.New(jalali.Options{})
	require.NoError(t, err)

	res, err := r.Do(context.Background(), jalali.Call{Func: "jalali_date_now"})
	require.NoError(t, err)
	assert.False(t, res.Span.IsValid())
}
