package stripe

import (
	"context"
	"fmt"
	"log/slog"
)

// leveledLogger routes stripe-go client logs into slog.
type leveledLogger struct {
	logger *slog.Logger
}

func (l *leveledLogger) Debugf(format string, v ...any) {
	l.log(slog.LevelDebug, format, v...)
}

func (l *leveledLogger) Infof(format string, v ...any) {
	l.log(slog.LevelDebug, format, v...)
}

func (l *leveledLogger) Warnf(format string, v ...any) {
	l.log(slog.LevelWarn, format, v...)
}

func (l *leveledLogger) Errorf(format string, v ...any) {
	l.log(slog.LevelError, format, v...)
}

func (l *leveledLogger) log(level slog.Level, format string, v ...any) {
	if l.logger == nil {
		return
	}

	l.logger.Log(context.Background(), level, "[Stripe] "+fmt.Sprintf(format, v...))
}
