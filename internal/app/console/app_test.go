/**
 * 测试:配置热更新回调
 * @author: sun977
 * @date: 2026.08.29
 * @description: 验证配置重载后日志器与引擎凭证的同步
 */
package console

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"neoconsole/internal/config"
	"neoconsole/internal/pkg/client"
	"neoconsole/internal/pkg/logger"
)

// 日志级别变化通过回调即时生效
func TestLoggerReloadCallbackUpdatesLevel(t *testing.T) {
	lm, err := logger.InitLogger(&config.LogConfig{Level: "info", Format: "json", Output: "stdout"})
	require.NoError(t, err)

	oldCfg := &config.Config{Log: config.LogConfig{Level: "info", Format: "json", Output: "stdout"}}
	newCfg := &config.Config{Log: config.LogConfig{Level: "debug", Format: "json", Output: "stdout"}}

	require.NoError(t, loggerReloadCallback(oldCfg, newCfg))
	assert.Equal(t, logrus.DebugLevel, lm.GetLogger().GetLevel())
}

// 引擎令牌变化推送到凭证提供者，后续请求使用新令牌
func TestEngineCredentialReloadCallbackRotatesToken(t *testing.T) {
	credentials := client.NewStaticCredentialProvider("old-token")
	callback := engineCredentialReloadCallback(credentials)

	oldCfg := &config.Config{Engine: config.EngineConfig{AuthToken: "old-token"}}
	newCfg := &config.Config{Engine: config.EngineConfig{AuthToken: "new-token"}}
	require.NoError(t, callback(oldCfg, newCfg))

	token, err := credentials.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "new-token", token)
}

// 令牌未变化时回调不触碰凭证提供者
func TestEngineCredentialReloadCallbackNoChange(t *testing.T) {
	credentials := client.NewStaticCredentialProvider("same-token")
	callback := engineCredentialReloadCallback(credentials)

	cfg := &config.Config{Engine: config.EngineConfig{AuthToken: "same-token"}}
	require.NoError(t, callback(cfg, cfg))

	token, err := credentials.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "same-token", token)
}
