package log

import (
	"context"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

/**
 * @author: gagral.x@gmail.com
 * @time: 2024/9/16 15:21
 * @file: log_rewrite.go
 * @description: global logger shortcuts
 */

// WithContext 返回带 trace_id/span_id 字段的 logger
func WithContext(ctx context.Context) *zap.SugaredLogger {
	l := GetLogger()
	if ctx == nil {
		return l
	}
	spanCtx := trace.SpanContextFromContext(ctx)
	if !spanCtx.IsValid() {
		return l
	}
	return l.With("trace_id", spanCtx.TraceID().String(), "span_id", spanCtx.SpanID().String())
}

func Info(args ...any) {
	GetLogger().Info(args...)
}

func Infof(format string, args ...any) {
	GetLogger().Infof(format, args...)
}

func Infow(msg string, keysAndValues ...any) {
	GetLogger().Infow(msg, keysAndValues...)
}

func Debug(args ...any) {
	GetLogger().Debug(args...)
}

func Debugf(format string, args ...any) {
	GetLogger().Debugf(format, args...)
}

func Debugw(msg string, keysAndValues ...any) {
	GetLogger().Debugw(msg, keysAndValues...)
}

func Warn(args ...any) {
	GetLogger().Warn(args...)
}

func Warnf(format string, args ...any) {
	GetLogger().Warnf(format, args...)
}

func Warnw(msg string, keysAndValues ...any) {
	GetLogger().Warnw(msg, keysAndValues...)
}

func Error(args ...any) {
	GetLogger().Error(args...)
}

func Errorf(format string, args ...any) {
	GetLogger().Errorf(format, args...)
}

func Errorw(msg string, keysAndValues ...any) {
	GetLogger().Errorw(msg, keysAndValues...)
}

func Fatalf(format string, args ...any) {
	GetLogger().Fatalf(format, args...)
}
