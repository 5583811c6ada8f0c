package database

import (
	"context"
	"errors"
	"time"

	"github.com/go-arcade/navtree/pkg/log"
	"go.uber.org/zap"
	"gorm.io/gorm/logger"
)

/**
 * @author: gagral.x@gmail.com
 * @time: 2024/9/16 13:54
 * @file: gorm_logger.go
 * @description: gorm log
 */

type GormLoggerAdapter struct {
	Config logger.Config
	Level  logger.LogLevel
}

func NewGormLoggerAdapter(config logger.Config, logLevel logger.LogLevel) *GormLoggerAdapter {
	return &GormLoggerAdapter{
		Config: config,
		Level:  logLevel,
	}
}

// 每次取全局 logger，配置热更新后仍然生效
func (l *GormLoggerAdapter) sugar(ctx context.Context) *zap.SugaredLogger {
	return log.WithContext(ctx).Desugar().WithOptions(zap.AddCallerSkip(2)).Sugar()
}

func (l *GormLoggerAdapter) LogMode(level logger.LogLevel) logger.Interface {
	n := *l
	n.Level = level
	return &n
}

func (l *GormLoggerAdapter) Info(ctx context.Context, msg string, data ...interface{}) {
	if l.Level < logger.Info {
		return
	}
	l.sugar(ctx).Infof(msg, data...)
}

func (l *GormLoggerAdapter) Warn(ctx context.Context, msg string, data ...interface{}) {
	if l.Level < logger.Warn {
		return
	}
	l.sugar(ctx).Warnf(msg, data...)
}

func (l *GormLoggerAdapter) Error(ctx context.Context, msg string, data ...interface{}) {
	if l.Level < logger.Error {
		return
	}
	l.sugar(ctx).Errorf(msg, data...)
}

func (l *GormLoggerAdapter) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.Level <= logger.Silent {
		return
	}

	elapsed := time.Since(begin).Seconds()
	sql, rows := fc()

	if err != nil && l.Level >= logger.Error && (!errors.Is(err, logger.ErrRecordNotFound) || !l.Config.IgnoreRecordNotFoundError) {
		l.sugar(ctx).Errorw("SQL query failed", "sql", sql, "rows", rows, "elapsed", elapsed, "error", err)
		return
	}

	if l.Config.SlowThreshold != 0 && elapsed > l.Config.SlowThreshold.Seconds() && l.Level >= logger.Warn {
		l.sugar(ctx).Warnw("Slow SQL query", "sql", sql, "rows", rows, "elapsed", elapsed)
		return
	}

	if l.Level == logger.Info {
		l.sugar(ctx).Debugw("SQL query", "sql", sql, "rows", rows, "elapsed", elapsed)
	}
}
