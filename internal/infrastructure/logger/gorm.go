package logger

import (
	"time"

	"go.uber.org/zap"
	gormlogger "gorm.io/gorm/logger"
)

// NewGormLogger 将 GORM 的 SQL 日志输出到全局 zap Logger
// 只记录慢查询和错误，"record not found" 不视为错误
func NewGormLogger(level string) gormlogger.Interface {
	logLevel := gormlogger.Warn
	switch level {
	case "debug":
		logLevel = gormlogger.Info
	case "error":
		logLevel = gormlogger.Error
	}

	return gormlogger.New(
		zap.NewStdLog(zap.L().Named("gorm")),
		gormlogger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logLevel,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)
}
