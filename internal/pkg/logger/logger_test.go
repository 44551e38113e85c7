// 日志管理器测试
package logger

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"neoconsole/internal/config"
)

func testLogConfig() *config.LogConfig {
	return &config.LogConfig{
		Level:  "info",
		Format: "json",
		Output: "stdout",
	}
}

func TestInitLogger(t *testing.T) {
	lm, err := InitLogger(testLogConfig())
	require.NoError(t, err)
	require.NotNil(t, lm)

	assert.Equal(t, logrus.InfoLevel, lm.logger.GetLevel())
	assert.Same(t, lm, LoggerInstance)
}

func TestInitLoggerNilConfig(t *testing.T) {
	_, err := InitLogger(nil)
	assert.Error(t, err)
}

func TestInitLoggerInvalidFormat(t *testing.T) {
	cfg := testLogConfig()
	cfg.Format = "xml"
	_, err := InitLogger(cfg)
	assert.Error(t, err)
}

// 非法级别回退到info而不是初始化失败
func TestInitLoggerInvalidLevelFallsBack(t *testing.T) {
	cfg := testLogConfig()
	cfg.Level = "chatty"
	lm, err := InitLogger(cfg)
	require.NoError(t, err)
	assert.Equal(t, logrus.InfoLevel, lm.logger.GetLevel())
}

// 配置热更新即时调整日志级别
func TestUpdateConfigChangesLevel(t *testing.T) {
	lm, err := InitLogger(testLogConfig())
	require.NoError(t, err)

	newCfg := testLogConfig()
	newCfg.Level = "debug"
	require.NoError(t, lm.UpdateConfig(newCfg))
	assert.Equal(t, logrus.DebugLevel, lm.logger.GetLevel())

	newCfg2 := testLogConfig()
	newCfg2.Level = "warn"
	require.NoError(t, lm.UpdateConfig(newCfg2))
	assert.Equal(t, logrus.WarnLevel, lm.logger.GetLevel())
}

func TestUpdateConfigRejectsInvalidLevel(t *testing.T) {
	lm, err := InitLogger(testLogConfig())
	require.NoError(t, err)

	newCfg := testLogConfig()
	newCfg.Level = "loud"
	assert.Error(t, lm.UpdateConfig(newCfg))
	// 失败的更新不改变当前级别
	assert.Equal(t, logrus.InfoLevel, lm.logger.GetLevel())
}

// entry的type字段决定日志落到哪个文件
func TestEntryLogTypeRouting(t *testing.T) {
	entry := &logrus.Entry{Data: logrus.Fields{"type": EngineLog}}
	assert.Equal(t, "engine", entryLogType(entry))

	entry = &logrus.Entry{Data: logrus.Fields{"type": "business"}}
	assert.Equal(t, "business", entryLogType(entry))

	entry = &logrus.Entry{Data: logrus.Fields{}}
	assert.Equal(t, "default", entryLogType(entry))
}
