package tracing

import (
	"context"
	"net/http"

	"github.com/ThreeDotsLabs/watermill/message"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
)

// ExtractFromHeader continues a trace started by the device or an upstream
// proxy.
func ExtractFromHeader(ctx context.Context, header http.Header) context.Context {
	return otel.GetTextMapPropagator().Extract(ctx, propagation.HeaderCarrier(header))
}

// InjectIntoMessage stores the trace context of ctx in the message metadata
// and binds ctx to the message.
func InjectIntoMessage(ctx context.Context, msg *message.Message) {
	if msg.Metadata == nil {
		msg.Metadata = make(message.Metadata)
	}

	otel.GetTextMapPropagator().Inject(ctx, propagation.MapCarrier(msg.Metadata))
	msg.SetContext(ctx)
}

// ExtractFromMessage resumes the trace carried in the message metadata on
// top of the message context.
func ExtractFromMessage(msg *message.Message) context.Context {
	return otel.GetTextMapPropagator().Extract(msg.Context(), propagation.MapCarrier(msg.Metadata))
}
