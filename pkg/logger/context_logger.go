package logger

import (
	"context"
	"time"

	ctxutil "github.com/Payphone-Digital/content-gateway/pkg/context"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ContextLogBuilder collects fields for one log entry and adds request
// tracking fields from ctx when logged.
type ContextLogBuilder struct {
	logger  *zap.Logger
	ctx     context.Context
	level   zapcore.Level
	message string
	fields  []zap.Field
}

func newContextLog(ctx context.Context, level zapcore.Level, message string) *ContextLogBuilder {
	return &ContextLogBuilder{
		logger:  GetLogger(),
		ctx:     ctx,
		level:   level,
		message: message,
		fields:  make([]zap.Field, 0, 12),
	}
}

// InfoWithContext starts an info entry.
func InfoWithContext(ctx context.Context, message string) *ContextLogBuilder {
	return newContextLog(ctx, zapcore.InfoLevel, message)
}

// WarnWithContext starts a warn entry.
func WarnWithContext(ctx context.Context, message string) *ContextLogBuilder {
	return newContextLog(ctx, zapcore.WarnLevel, message)
}

// ErrorWithContext starts an error entry.
func ErrorWithContext(ctx context.Context, message string) *ContextLogBuilder {
	return newContextLog(ctx, zapcore.ErrorLevel, message)
}

// DebugWithContext starts a debug entry.
func DebugWithContext(ctx context.Context, message string) *ContextLogBuilder {
	return newContextLog(ctx, zapcore.DebugLevel, message)
}

func (clb *ContextLogBuilder) String(key, value string) *ContextLogBuilder {
	clb.fields = append(clb.fields, zap.String(key, value))
	return clb
}

func (clb *ContextLogBuilder) Int(key string, value int) *ContextLogBuilder {
	clb.fields = append(clb.fields, zap.Int(key, value))
	return clb
}

func (clb *ContextLogBuilder) Bool(key string, value bool) *ContextLogBuilder {
	clb.fields = append(clb.fields, zap.Bool(key, value))
	return clb
}

func (clb *ContextLogBuilder) Any(key string, value interface{}) *ContextLogBuilder {
	clb.fields = append(clb.fields, zap.Any(key, value))
	return clb
}

func (clb *ContextLogBuilder) Duration(value time.Duration) *ContextLogBuilder {
	clb.fields = append(clb.fields, zap.Duration("duration", value))
	return clb
}

func (clb *ContextLogBuilder) Err(err error) *ContextLogBuilder {
	if err != nil {
		clb.fields = append(clb.fields, zap.Error(err))
	}
	return clb
}

// extractContextFields appends request tracking fields found in ctx.
func (clb *ContextLogBuilder) extractContextFields() {
	if clb.ctx == nil {
		return
	}

	if requestID := ctxutil.GetRequestID(clb.ctx); requestID != "" {
		clb.fields = append(clb.fields, zap.String("request_id", requestID))
	}
	if clientIP := ctxutil.GetClientIP(clb.ctx); clientIP != "" {
		clb.fields = append(clb.fields, zap.String("client_ip", clientIP))
	}
	if module := ctxutil.GetModule(clb.ctx); module != "" {
		clb.fields = append(clb.fields, zap.String("module", module))
	}
	if function := ctxutil.GetFunction(clb.ctx); function != "" {
		clb.fields = append(clb.fields, zap.String("function", function))
	}
	if collection := ctxutil.GetCollection(clb.ctx); collection != "" {
		clb.fields = append(clb.fields, zap.String("collection", collection))
	}
	if elapsed := ctxutil.GetDuration(clb.ctx); elapsed > 0 {
		clb.fields = append(clb.fields, zap.Duration("elapsed", elapsed))
	}
}

// Log writes the entry.
func (clb *ContextLogBuilder) Log() {
	if ce := clb.logger.Check(clb.level, clb.message); ce != nil {
		clb.extractContextFields()
		ce.Write(clb.fields...)
	}
}
