/**
 * 路由:路由管理器
 * @author: sun977
 * @date: 2026.08.29
 * @description: 路由管理器，包含Router结构体、NewRouter函数和SetupRoutes主函数
 * @func:
 */
package router

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"neoconsole/internal/app/console/middleware"
	"neoconsole/internal/catalog"
	"neoconsole/internal/config"
	consoleHandler "neoconsole/internal/handler/console"
	"neoconsole/internal/pkg/client"
	"neoconsole/internal/pkg/logger"
	memoryRepo "neoconsole/internal/repo/memory"
	redisRepo "neoconsole/internal/repo/redis"
	"neoconsole/internal/service/builder"
	scanService "neoconsole/internal/service/scan"
	"neoconsole/internal/service/schema"
	sessionService "neoconsole/internal/service/session"
)

// Router 路由管理器
type Router struct {
	config            *config.Config
	engine            *gin.Engine
	credentials       *client.StaticCredentialProvider
	middlewareManager *middleware.MiddlewareManager
	catalogHandler    *consoleHandler.CatalogHandler
	sessionHandler    *consoleHandler.SessionHandler
	scanHandler       *consoleHandler.ScanHandler
	assetHandler      *consoleHandler.AssetHandler
	healthHandler     *consoleHandler.HealthHandler
}

// NewRouter 创建路由管理器实例
// 模块目录在此处构建，目录定义错误直接导致启动失败
func NewRouter(cfg *config.Config, redisClient *redis.Client) (*Router, error) {
	cat, err := catalog.New()
	if err != nil {
		return nil, fmt.Errorf("构建模块目录失败: %w", err)
	}
	schemaEngine := schema.NewEngine()

	// 根据配置选择会话存储方式
	var sessionStore sessionService.Store
	if cfg.Session.Store == "redis" {
		if redisClient == nil {
			return nil, fmt.Errorf("会话存储配置为redis但Redis连接不可用")
		}
		sessionStore = redisRepo.NewSessionRepository(redisClient, cfg.Session.KeyPrefix)
	} else {
		sessionStore = memoryRepo.NewSessionRepository()
	}

	// 初始化引擎客户端(静态Bearer凭证，配置热更新时通过SetToken轮换)
	credentials := client.NewStaticCredentialProvider(cfg.Engine.AuthToken)
	engineClient := client.NewEngineClient(&cfg.Engine, credentials)

	// 初始化服务(控制器是服务集合,先初始化服务,然后服务装填成控制器)
	sessions := sessionService.NewService(cat, schemaEngine, sessionStore, cfg.Session.TTL)
	requestBuilder := builder.New(cat, schemaEngine)
	scans := scanService.NewService(engineClient, requestBuilder, sessions)

	// 初始化中间件管理器
	middlewareManager := middleware.NewMiddlewareManager(cfg)

	// 创建Gin引擎
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()

	return &Router{
		config:            cfg,
		engine:            engine,
		credentials:       credentials,
		middlewareManager: middlewareManager,
		catalogHandler:    consoleHandler.NewCatalogHandler(cat),
		sessionHandler:    consoleHandler.NewSessionHandler(sessions),
		scanHandler:       consoleHandler.NewScanHandler(scans),
		assetHandler:      consoleHandler.NewAssetHandler(scans),
		healthHandler:     consoleHandler.NewHealthHandler(cfg.App.Version),
	}, nil
}

// SetupRoutes 设置全局中间件和路由
func (r *Router) SetupRoutes() {
	// 1) 全局中间件注册
	r.registerGlobalMiddleware()

	// 2) 路由注册
	r.registerRoutes()
}

// GetEngine 获取Gin引擎实例
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

// GetCredentials 获取引擎凭证提供者
// 应用层用它把配置热更新的新令牌推送进来
func (r *Router) GetCredentials() *client.StaticCredentialProvider {
	return r.credentials
}

// registerGlobalMiddleware 注册全局中间件
func (r *Router) registerGlobalMiddleware() {
	// 系统恢复中间件，防止panic直接导致进程崩溃
	r.engine.Use(gin.Recovery())

	// CORS 中间件
	r.engine.Use(r.middlewareManager.GinCORSMiddleware())
	// 安全响应头中间件
	r.engine.Use(r.middlewareManager.GinSecurityHeadersMiddleware())
	// 统一日志中间件
	r.engine.Use(r.middlewareManager.GinLoggingMiddleware())
}

// registerRoutes 注册路由
func (r *Router) registerRoutes() {
	logger.WithFields(map[string]interface{}{
		"path":      "router_manager.registerRoutes",
		"operation": "register_routes",
		"func_name": "router.registerRoutes",
	}).Info("开始注册路由")

	api := r.engine.Group("/api")
	v1 := api.Group("/v1")

	// 模块目录路由
	r.setupCatalogRoutes(v1)
	// 配置会话路由
	r.setupSessionRoutes(v1)
	// 扫描路由
	r.setupScanRoutes(v1)
	// 资产路由
	r.setupAssetRoutes(v1)
	// 健康检查路由
	r.engine.GET("/health", r.healthHandler.Health)

	logger.WithFields(map[string]interface{}{
		"path":      "router_manager.registerRoutes",
		"operation": "register_routes",
		"func_name": "router.registerRoutes",
	}).Info("路由注册完成")
}
