package middleware

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/KasumiMercury/primind-location-remind/internal/observability/logging"
	"github.com/KasumiMercury/primind-location-remind/internal/observability/metrics"
	"github.com/KasumiMercury/primind-location-remind/internal/observability/tracing"
)

// UnmatchedRoute is the route label for requests no handler matched.
const UnmatchedRoute = "unmatched"

type GinConfig struct {
	// SkipPaths are paths that skip observability
	SkipPaths []string
	Module    logging.Module
	// ModuleResolver returns a module for the request when module depends on path
	ModuleResolver func(*gin.Context) logging.Module
	TracerName     string
	HTTPMetrics    *metrics.HTTPMetrics
}

func Gin(cfg GinConfig) gin.HandlerFunc {
	skipSet := make(map[string]struct{}, len(cfg.SkipPaths))
	for _, p := range cfg.SkipPaths {
		skipSet[p] = struct{}{}
	}

	return func(c *gin.Context) {
		if _, skip := skipSet[c.Request.URL.Path]; skip {
			c.Next()

			return
		}

		start := time.Now()

		requestID := logging.ValidateAndExtractRequestID(c.Request.Header.Get("x-request-id"))
		ctx := logging.WithRequestID(c.Request.Context(), requestID)

		module := cfg.Module
		if cfg.ModuleResolver != nil {
			module = cfg.ModuleResolver(c)
		}

		if module != "" {
			ctx = logging.WithModule(ctx, module)
		}

		ctx = tracing.ExtractFromHeader(ctx, c.Request.Header)

		path := routeLabel(c)

		ctx, span := otel.Tracer(cfg.TracerName).Start(ctx, fmt.Sprintf("%s %s", c.Request.Method, path))

		c.Request = c.Request.WithContext(ctx)

		c.Header("x-request-id", requestID)
		c.Request.Header.Set("x-request-id", requestID)

		// Runs for panicking handlers too.
		defer func() {
			duration := time.Since(start)
			status := c.Writer.Status()

			span.SetAttributes(
				attribute.String("http.request.method", c.Request.Method),
				attribute.String("http.route", path),
				attribute.Int("http.response.status_code", status),
			)

			if status >= 500 {
				description := fmt.Sprintf("status %d", status)
				if last := c.Errors.Last(); last != nil {
					description = last.Error()
				}

				span.SetStatus(codes.Error, description)
			}

			span.End()

			if cfg.HTTPMetrics != nil {
				cfg.HTTPMetrics.Record(ctx, c.Request.Method, path, status, duration)
			}

			slog.LogAttrs(ctx, slog.LevelInfo, "request completed",
				slog.String("event", "http.request.finish"),
				slog.String("method", c.Request.Method),
				slog.String("path", c.Request.URL.Path),
				slog.String("route", path),
				slog.String("remote_addr", c.ClientIP()),
				slog.Int("status", status),
				slog.Duration("duration", duration),
			)
		}()

		c.Next()
	}
}

// routeLabel keeps label cardinality bounded: requests that match no route
// share a single value instead of carrying their raw path.
func routeLabel(c *gin.Context) string {
	if route := c.FullPath(); route != "" {
		return route
	}

	return UnmatchedRoute
}

// ModuleByPath maps the first path segment after the API prefix to a module.
func ModuleByPath(prefix string) func(*gin.Context) logging.Module {
	return func(c *gin.Context) logging.Module {
		rest := strings.TrimPrefix(c.Request.URL.Path, prefix)
		segment, _, _ := strings.Cut(strings.TrimPrefix(rest, "/"), "/")

		switch segment {
		case "reminders":
			return logging.ModuleReminder
		case "geofence":
			return logging.ModuleGeofence
		case "location":
			return logging.ModuleLocation
		case "device":
			return logging.ModuleDevice
		default:
			return ""
		}
	}
}
