// 日志分文件Hook:按entry的type字段把日志路由到独立文件
package logger

import (
	"io"
	"os"
	"path/filepath"
	"sync"

	"neoconsole/internal/config"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// typeLogFiles 每种日志类型对应的文件名
// 不在表中的类型落到默认文件
var typeLogFiles = map[string]string{
	string(AccessLog):   "access.log",
	string(BusinessLog): "business.log",
	string(ErrorLog):    "error.log",
	string(SystemLog):   "system.log",
	string(EngineLog):   "engine.log",
	string(DebugLog):    "debug.log",
}

// FileHook 按日志类型写入不同文件的logrus Hook
// writer使用lumberjack做按大小滚动和压缩
type FileHook struct {
	logConfig *config.LogConfig
	writers   map[string]io.Writer
	formatter logrus.Formatter
	mutex     sync.Mutex
}

// NewFileHook 创建FileHook
// 配置未启用文件输出时Hook空转，只保留控制台输出
func NewFileHook(logConfig *config.LogConfig) *FileHook {
	hook := &FileHook{
		logConfig: logConfig,
		writers:   make(map[string]io.Writer),
		formatter: &logrus.JSONFormatter{
			TimestampFormat: timestampFormat,
			FieldMap:        standardFieldMap(),
		},
	}

	if logConfig.Output == "file" && logConfig.FilePath != "" {
		hook.writers["default"] = hook.newRotatingWriter(logConfig.FilePath)
	}
	return hook
}

// Levels Hook处理所有级别
func (hook *FileHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

// Fire 格式化entry并写入其类型对应的文件
func (hook *FileHook) Fire(entry *logrus.Entry) error {
	writer := hook.writerFor(entryLogType(entry))
	if writer == nil {
		// 未启用文件输出
		return nil
	}

	formatted, err := hook.formatter.Format(entry)
	if err != nil {
		return err
	}

	hook.mutex.Lock()
	defer hook.mutex.Unlock()
	_, err = writer.Write(formatted)
	return err
}

// entryLogType 从entry的type字段取日志类型
func entryLogType(entry *logrus.Entry) string {
	switch t := entry.Data["type"].(type) {
	case LogType:
		return string(t)
	case string:
		return t
	}
	return "default"
}

// writerFor 获取或惰性创建指定类型的writer
// 所有分类型文件与默认文件在同一目录下
func (hook *FileHook) writerFor(logType string) io.Writer {
	hook.mutex.Lock()
	defer hook.mutex.Unlock()

	if writer, exists := hook.writers[logType]; exists {
		return writer
	}

	name, ok := typeLogFiles[logType]
	if !ok || hook.writers["default"] == nil {
		return hook.writers["default"]
	}

	logDir := filepath.Dir(hook.logConfig.FilePath)
	writer := hook.newRotatingWriter(filepath.Join(logDir, name))
	hook.writers[logType] = writer
	return writer
}

// newRotatingWriter 创建带滚动策略的文件writer
func (hook *FileHook) newRotatingWriter(filename string) io.Writer {
	_ = os.MkdirAll(filepath.Dir(filename), 0755)
	return &lumberjack.Logger{
		Filename:   filename,
		MaxSize:    hook.logConfig.MaxSize,
		MaxBackups: hook.logConfig.MaxBackups,
		MaxAge:     hook.logConfig.MaxAge,
		Compress:   hook.logConfig.Compress,
	}
}
