package logger

import (
	"context"

	"github.com/gcsolar/usinas-backend/internal/pkg/constants"
	"go.uber.org/zap"
)

var global = zap.Must(zap.NewProduction()).Sugar()

// Init replaces the global logger; environment "development" switches to the
// human-readable console encoder.
func Init(environment string) {
	if environment == "development" {
		global = zap.Must(zap.NewDevelopment()).Sugar()
		return
	}
	global = zap.Must(zap.NewProduction()).Sugar()
}

func withCtx(ctx context.Context) *zap.SugaredLogger {
	if ctx == nil {
		return global
	}
	if reqID, ok := ctx.Value(constants.CtxKeyRequestID).(string); ok && reqID != "" {
		return global.With("request_id", reqID)
	}
	return global
}

func Debugf(ctx context.Context, format string, args ...any) {
	withCtx(ctx).Debugf(format, args...)
}

func Infof(ctx context.Context, format string, args ...any) {
	withCtx(ctx).Infof(format, args...)
}

func Warnf(ctx context.Context, format string, args ...any) {
	withCtx(ctx).Warnf(format, args...)
}

func Error(ctx context.Context, args ...any) {
	withCtx(ctx).Error(args...)
}

func Errorf(ctx context.Context, format string, args ...any) {
	withCtx(ctx).Errorf(format, args...)
}

func Fatal(ctx context.Context, args ...any) {
	withCtx(ctx).Fatal(args...)
}

// Sync flushes buffered entries, to be deferred from main.
func Sync() {
	_ = global.Sync()
}
