/**
 * 控制台应用
 * @author: sun977
 * @date: 2026.08.29
 * @description: 控制台应用装配：配置加载、日志初始化、存储连接、路由构建与配置热更新
 * @func: NewApp / GetConfig / GetRouter / Stop
 */
package console

import (
	"fmt"

	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"

	"neoconsole/internal/app/console/router"
	"neoconsole/internal/config"
	"neoconsole/internal/pkg/client"
	"neoconsole/internal/pkg/database"
	"neoconsole/internal/pkg/logger"
)

// App 控制台应用结构体
type App struct {
	config      *config.Config
	router      *router.Router
	redisClient *redis.Client
}

// NewApp 创建控制台应用实例
// configPath为空时使用默认配置目录，env为空时从环境变量推导
func NewApp(configPath, env string) (*App, error) {
	// 加载配置
	cfg, err := config.LoadConfig(configPath, env)
	if err != nil {
		return nil, fmt.Errorf("加载配置失败: %w", err)
	}

	// 初始化日志
	if _, err := logger.InitLogger(&cfg.Log); err != nil {
		return nil, fmt.Errorf("初始化日志失败: %w", err)
	}

	// 会话存储使用redis时建立连接
	var redisClient *redis.Client
	if cfg.Session.Store == "redis" {
		redisClient, err = database.NewRedisConnection(&cfg.Redis)
		if err != nil {
			return nil, fmt.Errorf("连接Redis失败: %w", err)
		}
	}

	// 构建路由（模块目录定义错误在此处直接失败）
	r, err := router.NewRouter(cfg, redisClient)
	if err != nil {
		return nil, err
	}
	r.SetupRoutes()

	// 启动配置热更新监听
	if err := config.StartConfigWatcher(configPath, env); err != nil {
		logger.LogSystemEvent("app", "config_watcher_failed", err.Error(), logrus.WarnLevel, nil)
	} else {
		config.AddConfigReloadCallback(config.LogConfigReloadCallback)
		config.AddConfigReloadCallback(config.EngineConfigReloadCallback)
		config.AddConfigReloadCallback(config.TrackerConfigReloadCallback)
		// 应用层回调：把配置变化应用到运行中的组件
		config.AddConfigReloadCallback(loggerReloadCallback)
		config.AddConfigReloadCallback(engineCredentialReloadCallback(r.GetCredentials()))
	}

	logger.LogSystemEvent("app", "startup", "控制台应用初始化完成", logrus.InfoLevel, map[string]interface{}{
		"name":          cfg.App.Name,
		"version":       cfg.App.Version,
		"environment":   cfg.App.Environment,
		"session_store": cfg.Session.Store,
		"engine_url":    cfg.Engine.BaseURL,
	})

	return &App{
		config:      cfg,
		router:      r,
		redisClient: redisClient,
	}, nil
}

// loggerReloadCallback 配置热更新时同步日志器
// 级别、格式、caller变化即时生效，文件路径变化需要重启
func loggerReloadCallback(oldConfig, newConfig *config.Config) error {
	if logger.LoggerInstance == nil {
		return nil
	}
	return logger.LoggerInstance.UpdateConfig(&newConfig.Log)
}

// engineCredentialReloadCallback 配置热更新时轮换引擎令牌
// 部署侧改写配置文件中的auth_token后，后续引擎请求使用新令牌
func engineCredentialReloadCallback(credentials *client.StaticCredentialProvider) config.ReloadCallback {
	return func(oldConfig, newConfig *config.Config) error {
		if oldConfig != nil && oldConfig.Engine.AuthToken == newConfig.Engine.AuthToken {
			return nil
		}
		credentials.SetToken(newConfig.Engine.AuthToken)
		return nil
	}
}

// GetConfig 获取应用配置
func (a *App) GetConfig() *config.Config {
	return a.config
}

// GetRouter 获取路由器实例
func (a *App) GetRouter() *router.Router {
	return a.router
}

// Stop 停止应用，释放连接与监听器
func (a *App) Stop() error {
	if err := config.StopConfigWatcher(); err != nil {
		logger.LogSystemEvent("app", "config_watcher_stop_failed", err.Error(), logrus.WarnLevel, nil)
	}
	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			return fmt.Errorf("关闭Redis连接失败: %w", err)
		}
	}
	logger.LogSystemEvent("app", "shutdown", "控制台应用已停止", logrus.InfoLevel, nil)
	return nil
}
