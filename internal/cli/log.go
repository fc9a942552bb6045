package cli

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// progress logs completion of an operation with its elapsed time.
type progress struct {
	logger *zap.Logger
	start  time.Time
}

func newProgress(l *zap.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg with the elapsed time rounded to the millisecond.
func (p *progress) done(msg string, fields ...zap.Field) time.Duration {
	elapsed := time.Since(p.start)
	p.logger.Info(msg, append(fields, zap.Duration("elapsed", elapsed.Round(time.Millisecond)))...)

	return elapsed
}

type ctxKey int

const loggerKey ctxKey = 0

func withLogger(ctx context.Context, l *zap.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext returns the context's logger, or a no-op logger.
func loggerFromContext(ctx context.Context) *zap.Logger {
	if l, ok := ctx.Value(loggerKey).(*zap.Logger); ok && l != nil {
		return l
	}

	return zap.NewNop()
}
