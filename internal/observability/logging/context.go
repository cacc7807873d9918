package logging

import (
	"context"
	"regexp"

	"github.com/google/uuid"
)

type Module string

const (
	ModuleReminder Module = "reminder"
	ModuleGeofence Module = "geofence"
	ModuleLocation Module = "location"
	ModuleDevice   Module = "device"
)

type ctxKey int

const (
	requestIDKey ctxKey = iota
	moduleKey
)

var requestIDPattern = regexp.MustCompile(`^[A-Za-z0-9._-]{1,128}$`)

// ValidateAndExtractRequestID returns the incoming ID when it is safe to log
// and a fresh UUID otherwise.
func ValidateAndExtractRequestID(header string) string {
	if requestIDPattern.MatchString(header) {
		return header
	}

	return uuid.NewString()
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

func RequestIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(requestIDKey).(string)

	return id, ok && id != ""
}

func WithModule(ctx context.Context, module Module) context.Context {
	return context.WithValue(ctx, moduleKey, module)
}

func ModuleFromContext(ctx context.Context) (Module, bool) {
	m, ok := ctx.Value(moduleKey).(Module)

	return m, ok && m != ""
}
