/**
 * 路由:控制台各模块路由
 * @author: sun977
 * @date: 2026.08.29
 * @description: 模块目录、配置会话、扫描与资产的路由注册
 * @func:
 */
package router

import (
	"github.com/gin-gonic/gin"
)

// setupCatalogRoutes 模块目录路由（只读）
func (r *Router) setupCatalogRoutes(v1 *gin.RouterGroup) {
	catalogGroup := v1.Group("/catalog")
	{
		catalogGroup.GET("/modules", r.catalogHandler.ListModules)       // 模块目录(支持?category=过滤)
		catalogGroup.GET("/categories", r.catalogHandler.ListCategories) // 分类列表
		catalogGroup.GET("/presets", r.catalogHandler.ListPresets)       // 预设列表
	}
}

// setupSessionRoutes 配置会话路由
func (r *Router) setupSessionRoutes(v1 *gin.RouterGroup) {
	sessionGroup := v1.Group("/sessions")
	{
		sessionGroup.POST("", r.sessionHandler.CreateSession)                          // 创建会话
		sessionGroup.GET("/:id", r.sessionHandler.GetSession)                          // 查询会话
		sessionGroup.POST("/:id/toggle", r.sessionHandler.ToggleModule)                // 切换模块启用状态
		sessionGroup.POST("/:id/preset", r.sessionHandler.ApplyPreset)                 // 应用预设
		sessionGroup.PUT("/:id/modules/:key/config", r.sessionHandler.UpdateModuleConfig) // 更新模块参数
		sessionGroup.DELETE("/:id", r.sessionHandler.CancelSession)                    // 取消会话
	}
}

// setupScanRoutes 扫描路由
func (r *Router) setupScanRoutes(v1 *gin.RouterGroup) {
	scanGroup := v1.Group("/scans")
	{
		scanGroup.POST("", r.scanHandler.SubmitScan)            // 从会话组装并提交扫描
		scanGroup.GET("", r.scanHandler.ListScans)              // 扫描列表
		scanGroup.GET("/:id", r.scanHandler.GetScan)            // 扫描详情
		scanGroup.POST("/:id/cancel", r.scanHandler.CancelScan) // 取消扫描
	}
}

// setupAssetRoutes 资产路由（只读）
func (r *Router) setupAssetRoutes(v1 *gin.RouterGroup) {
	assetGroup := v1.Group("/assets")
	{
		assetGroup.GET("", r.assetHandler.ListAssets)    // 资产列表
		assetGroup.GET("/:id", r.assetHandler.GetAsset) // 资产详情
	}
}
