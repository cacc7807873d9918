package tracing_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/KasumiMercury/primind-location-remind/internal/observability/tracing"
)

func installProvider(t *testing.T) {
	t.Helper()

	provider, err := tracing.NewProvider(context.Background(), tracing.Config{ServiceName: "location-remind"})
	require.NoError(t, err)

	provider.Install()

	t.Cleanup(func() {
		_ = provider.Shutdown(context.Background())
	})
}

func TestMessageRoundTrip(t *testing.T) {
	installProvider(t)

	ctx, span := otel.Tracer("test").Start(context.Background(), "publish")
	defer span.End()

	msg := message.NewMessage("m1", []byte(`{}`))
	msg.Metadata.Set("reminder_id", "r1")

	tracing.InjectIntoMessage(ctx, msg)

	assert.Contains(t, msg.Metadata.Get("traceparent"), span.SpanContext().TraceID().String())
	assert.Equal(t, "r1", msg.Metadata.Get("reminder_id"))
	assert.Equal(t, ctx, msg.Context())

	received := message.NewMessage(msg.UUID, msg.Payload)
	received.Metadata = msg.Metadata

	sc := trace.SpanContextFromContext(tracing.ExtractFromMessage(received))

	assert.True(t, sc.IsValid())
	assert.True(t, sc.IsRemote())
	assert.Equal(t, span.SpanContext().TraceID(), sc.TraceID())
}

func TestInjectIntoMessageWithoutMetadata(t *testing.T) {
	installProvider(t)

	ctx, span := otel.Tracer("test").Start(context.Background(), "publish")
	defer span.End()

	msg := &message.Message{UUID: "m2"}

	tracing.InjectIntoMessage(ctx, msg)

	require.NotNil(t, msg.Metadata)
	assert.NotEmpty(t, msg.Metadata.Get("traceparent"))
}

func TestExtractFromMessageWithoutTrace(t *testing.T) {
	installProvider(t)

	msg := message.NewMessage("m3", nil)

	sc := trace.SpanContextFromContext(tracing.ExtractFromMessage(msg))

	assert.False(t, sc.IsValid())
}

func TestExtractFromHeader(t *testing.T) {
	installProvider(t)

	header := http.Header{}
	header.Set("traceparent", "00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01")

	sc := trace.SpanContextFromContext(tracing.ExtractFromHeader(context.Background(), header))

	require.True(t, sc.IsValid())
	assert.Equal(t, "4bf92f3577b34da6a3ce929d0e0e4736", sc.TraceID().String())
	assert.Equal(t, "00f067aa0ba902b7", sc.SpanID().String())
}
