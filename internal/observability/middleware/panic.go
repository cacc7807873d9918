package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/KasumiMercury/primind-location-remind/internal/observability/logging"
)

// PanicRecoveryGin marks the request span as failed, logs the panic with the
// matched route and answers 500. It must run inside Gin so the span is still
// open. The panic is re-raised for the outer recovery.
func PanicRecoveryGin() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}

			ctx := c.Request.Context()
			route := routeLabel(c)
			err := fmt.Errorf("panic: %v", rec)

			span := trace.SpanFromContext(ctx)
			span.RecordError(err, trace.WithStackTrace(true))
			span.SetStatus(codes.Error, err.Error())
			span.SetAttributes(attribute.Bool("app.panic", true))

			attrs := []slog.Attr{
				slog.String("event", "app.panic"),
				slog.String("error", err.Error()),
				slog.String("method", c.Request.Method),
				slog.String("route", route),
				slog.String("stack", string(debug.Stack())),
			}

			if module, ok := logging.ModuleFromContext(ctx); ok {
				attrs = append(attrs, slog.String("module", string(module)))
			}

			slog.LogAttrs(ctx, slog.LevelError, "panic recovered", attrs...)

			_ = c.Error(err)
			c.AbortWithStatus(http.StatusInternalServerError)

			panic(rec)
		}()

		c.Next()
	}
}
