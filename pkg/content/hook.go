package content

import (
	"context"
	"errors"

	"go.uber.org/zap"
)

// ErrorHook observes a failed call before the error is returned to the caller.
// It must not alter or swallow the error.
type ErrorHook interface {
	OnError(ctx context.Context, collection string, err error)
}

// ErrorHookFunc adapts a function to ErrorHook.
type ErrorHookFunc func(ctx context.Context, collection string, err error)

func (f ErrorHookFunc) OnError(ctx context.Context, collection string, err error) {
	f(ctx, collection, err)
}

// NopErrorHook discards every failure.
var NopErrorHook ErrorHook = ErrorHookFunc(func(context.Context, string, error) {})

type zapErrorHook struct {
	logger *zap.Logger
}

// ZapErrorHook logs each failure at error level with the collection name,
// error kind and upstream status.
func ZapErrorHook(logger *zap.Logger) ErrorHook {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &zapErrorHook{logger: logger.With(zap.String("component", "content_client"))}
}

func (h *zapErrorHook) OnError(_ context.Context, collection string, err error) {
	fields := []zap.Field{
		zap.String("collection", collection),
		zap.Error(err),
	}
	var cerr *Error
	if errors.As(err, &cerr) {
		fields = append(fields,
			zap.String("kind", cerr.Kind.String()),
			zap.String("url", cerr.URL),
		)
		if cerr.Kind == KindRequestFailed {
			fields = append(fields,
				zap.Int("status_code", cerr.StatusCode),
				zap.String("status_text", cerr.Status),
			)
		}
	}
	h.logger.Error("Error fetching from content API", fields...)
}
