package ctxutil

import (
	"context"
	"time"

	"github.com/Payphone-Digital/content-gateway/internal/constants"
)

// Re-export ContextKey type
type ContextKey = constants.ContextKey

// Re-export context keys
const (
	RequestIDKey  = constants.CtxKeyRequestID
	ClientIPKey   = constants.CtxKeyClientIP
	UserAgentKey  = constants.CtxKeyUserAgent
	StartTimeKey  = constants.CtxKeyStartTime
	ModuleKey     = constants.CtxKeyModule
	FunctionKey   = constants.CtxKeyFunction
	CollectionKey = constants.CtxKeyCollection
)

// WithRequestID adds the request ID to context
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, RequestIDKey, requestID)
}

// WithClient adds client IP and user agent to context
func WithClient(ctx context.Context, clientIP, userAgent string) context.Context {
	ctx = context.WithValue(ctx, ClientIPKey, clientIP)
	return context.WithValue(ctx, UserAgentKey, userAgent)
}

// WithCollection tags context with the content collection being served
func WithCollection(ctx context.Context, collection string) context.Context {
	return context.WithValue(ctx, CollectionKey, collection)
}

func stringValue(ctx context.Context, key ContextKey) string {
	if ctx == nil {
		return ""
	}
	if val, ok := ctx.Value(key).(string); ok {
		return val
	}
	return ""
}

// Getter functions
func GetRequestID(ctx context.Context) string  { return stringValue(ctx, RequestIDKey) }
func GetClientIP(ctx context.Context) string   { return stringValue(ctx, ClientIPKey) }
func GetUserAgent(ctx context.Context) string  { return stringValue(ctx, UserAgentKey) }
func GetModule(ctx context.Context) string     { return stringValue(ctx, ModuleKey) }
func GetFunction(ctx context.Context) string   { return stringValue(ctx, FunctionKey) }
func GetCollection(ctx context.Context) string { return stringValue(ctx, CollectionKey) }

func GetStartTime(ctx context.Context) time.Time {
	if ctx == nil {
		return time.Time{}
	}
	if val, ok := ctx.Value(StartTimeKey).(time.Time); ok {
		return val
	}
	return time.Time{}
}

// GetDuration calculates duration from start time
func GetDuration(ctx context.Context) time.Duration {
	startTime := GetStartTime(ctx)
	if !startTime.IsZero() {
		return time.Since(startTime)
	}
	return 0
}

// NewContextWithRequest tags ctx with the handler module and function and
// records a start time if none is set yet.
func NewContextWithRequest(ctx context.Context, module, function string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}

	ctx = context.WithValue(ctx, ModuleKey, module)
	ctx = context.WithValue(ctx, FunctionKey, function)

	if GetStartTime(ctx).IsZero() {
		ctx = context.WithValue(ctx, StartTimeKey, time.Now())
	}

	return ctx
}
