package oslg

import (
	"context"

	"go.uber.org/fx"
)

// FXModule defines the Fx module for the oslg package.
var FXModule = fx.Module("oslg",
	fx.Provide(
		New,
	),
	fx.Invoke(RegisterLoggerLifecycle),
)

// RegisterLoggerLifecycle handles cleanup (sync) of the session's Zap mirror.
func RegisterLoggerLifecycle(lc fx.Lifecycle, l *Logger) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return l.Sync() // flushes any buffered mirror output
		},
	})
}
