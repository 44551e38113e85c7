// 日志管理器:初始化logrus实例并支持运行时热更新
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"neoconsole/internal/config"

	"github.com/sirupsen/logrus"
)

// 毫秒精度时间戳，不带时区，日期与时间用空格分隔
const timestampFormat = "2006-01-02 15:04:05.000"

// LoggerManager 日志管理器
type LoggerManager struct {
	logger *logrus.Logger
	config *config.LogConfig
}

// LoggerInstance 全局日志实例
var LoggerInstance *LoggerManager

// InitLogger 初始化日志管理器并设置全局实例
// 实际的文件输出由FileHook按日志类型分文件处理
func InitLogger(cfg *config.LogConfig) (*LoggerManager, error) {
	if cfg == nil {
		return nil, fmt.Errorf("log config cannot be nil")
	}

	logger := logrus.New()

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		// 非法级别回退到info，不中断启动
		level = logrus.InfoLevel
		logger.Warnf("Invalid log level '%s', using 'info' as default", cfg.Level)
	}
	logger.SetLevel(level)

	if err := applyFormatter(logger, cfg.Format); err != nil {
		return nil, fmt.Errorf("failed to set log formatter: %w", err)
	}
	applyOutput(logger, cfg.Level)

	// FileHook按entry的type字段把日志路由到不同文件
	logger.AddHook(NewFileHook(cfg))
	logger.SetReportCaller(cfg.Caller)

	lm := &LoggerManager{
		logger: logger,
		config: cfg,
	}
	LoggerInstance = lm

	return lm, nil
}

// applyFormatter 按配置选择格式化器
// json用于生产和日志分析，text用于开发和控制台
func applyFormatter(logger *logrus.Logger, format string) error {
	switch strings.ToLower(format) {
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: timestampFormat,
			FieldMap:        standardFieldMap(),
		})
	case "text":
		logger.SetFormatter(&logrus.TextFormatter{
			TimestampFormat: timestampFormat,
			FullTimestamp:   true,
			ForceColors:     true,
		})
	default:
		return fmt.Errorf("unsupported log format: %s", format)
	}
	return nil
}

// applyOutput 设置主输出目标
// 文件写入走FileHook，主输出只在debug级别时附带控制台
func applyOutput(logger *logrus.Logger, level string) {
	if strings.ToLower(level) == "debug" {
		logger.SetOutput(io.MultiWriter(os.Stdout, io.Discard))
		return
	}
	logger.SetOutput(io.Discard)
}

// standardFieldMap JSON输出的统一字段名
func standardFieldMap() logrus.FieldMap {
	return logrus.FieldMap{
		logrus.FieldKeyTime:  "timestamp",
		logrus.FieldKeyLevel: "level",
		logrus.FieldKeyMsg:   "message",
		logrus.FieldKeyFunc:  "function",
		logrus.FieldKeyFile:  "file",
	}
}

// GetLogger 获取底层logrus实例
func (lm *LoggerManager) GetLogger() *logrus.Logger {
	return lm.logger
}

// UpdateConfig 运行时更新日志配置
// 由配置热重载回调调用，只应用发生变化的部分
func (lm *LoggerManager) UpdateConfig(newCfg *config.LogConfig) error {
	if newCfg == nil {
		return fmt.Errorf("new config cannot be nil")
	}

	if newCfg.Level != lm.config.Level {
		level, err := logrus.ParseLevel(newCfg.Level)
		if err != nil {
			return fmt.Errorf("invalid log level: %w", err)
		}
		lm.logger.SetLevel(level)
		applyOutput(lm.logger, newCfg.Level)
		lm.logger.Infof("Log level updated from %s to %s", lm.config.Level, newCfg.Level)
	}

	if newCfg.Format != lm.config.Format {
		if err := applyFormatter(lm.logger, newCfg.Format); err != nil {
			return fmt.Errorf("failed to update log formatter: %w", err)
		}
		lm.logger.Infof("Log format updated from %s to %s", lm.config.Format, newCfg.Format)
	}

	if newCfg.Caller != lm.config.Caller {
		lm.logger.SetReportCaller(newCfg.Caller)
	}

	lm.config = newCfg
	return nil
}

// WithFields 以全局实例添加多个字段
// 全局实例未初始化时退化到logrus标准logger
func WithFields(fields logrus.Fields) *logrus.Entry {
	if LoggerInstance != nil {
		return LoggerInstance.logger.WithFields(fields)
	}
	return logrus.NewEntry(logrus.StandardLogger())
}
