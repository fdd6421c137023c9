package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	deliverycontext "vacuum/internal/delivery/context"
	"vacuum/internal/errors"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// gormSlogLogger routes GORM output through slog, preferring the
// request-scoped logger carried by the query context.
//
// Missing rows and constraint violations are ordinary outcomes here: the
// repositories turn them into NotFound and Conflict, so they are logged at
// debug level instead of as failed queries.
type gormSlogLogger struct {
	logger        *slog.Logger
	level         logger.LogLevel
	slowThreshold time.Duration
}

func newGormSlogLogger(baseLogger *slog.Logger, debug bool, slowThreshold time.Duration) logger.Interface {
	level := logger.Warn
	if debug {
		level = logger.Info
	}

	return &gormSlogLogger{
		logger:        baseLogger,
		level:         level,
		slowThreshold: slowThreshold,
	}
}

func (l *gormSlogLogger) LogMode(level logger.LogLevel) logger.Interface {
	cloned := *l
	cloned.level = level

	return &cloned
}

func (l *gormSlogLogger) Info(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Info, slog.LevelInfo, msg, args...)
}

func (l *gormSlogLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Warn, slog.LevelWarn, msg, args...)
}

func (l *gormSlogLogger) Error(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Error, slog.LevelError, msg, args...)
}

func (l *gormSlogLogger) Trace(ctx context.Context, begin time.Time, sqlAndRowsFn func() (string, int64), err error) {
	if l.logger == nil || l.level == logger.Silent {
		return
	}

	elapsed := time.Since(begin)
	query := func(extra ...slog.Attr) []slog.Attr {
		sql, rows := sqlAndRowsFn()

		return append([]slog.Attr{
			slog.Duration("elapsed", elapsed),
			slog.Int64("rows", rows),
			slog.String("sql", sql),
		}, extra...)
	}

	switch {
	case err != nil && expectedQueryError(err):
		if l.level >= logger.Info {
			l.write(ctx, slog.LevelDebug, "GORM query rejected", query(slog.String("error", err.Error())))
		}
	case err != nil && l.level >= logger.Error:
		l.write(ctx, slog.LevelError, "GORM query failed", query(slog.String("error", err.Error())))
	case l.slowThreshold > 0 && elapsed > l.slowThreshold && l.level >= logger.Warn:
		l.write(ctx, slog.LevelWarn, "GORM slow query", query(slog.Duration("slowThreshold", l.slowThreshold)))
	case l.level >= logger.Info:
		l.write(ctx, slog.LevelDebug, "GORM query", query())
	}
}

func (l *gormSlogLogger) printf(ctx context.Context, threshold logger.LogLevel, level slog.Level, msg string, args ...any) {
	if l.logger == nil || l.level < threshold {
		return
	}

	l.write(ctx, level, "GORM "+level.String(), []slog.Attr{slog.String("message", fmt.Sprintf(msg, args...))})
}

func (l *gormSlogLogger) write(ctx context.Context, level slog.Level, msg string, attrs []slog.Attr) {
	log := l.logger
	if ctx != nil {
		log = deliverycontext.GetLoggerOrDefault(ctx, l.logger)
	}

	log.LogAttrs(ctx, level, msg, attrs...)
}

func expectedQueryError(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound) ||
		isUniqueConstraintViolation(err) ||
		isForeignKeyConstraintViolation(err)
}
