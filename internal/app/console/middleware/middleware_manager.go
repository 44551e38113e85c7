/**
 * 中间件:中间件管理器
 * @author: sun977
 * @date: 2026.08.29
 * @description: 控制台全局中间件的集中管理
 * @func: NewMiddlewareManager / GinCORSMiddleware / GinSecurityHeadersMiddleware
 */
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"neoconsole/internal/config"
)

// MiddlewareManager 中间件管理器
type MiddlewareManager struct {
	config *config.Config
}

// NewMiddlewareManager 创建中间件管理器
func NewMiddlewareManager(cfg *config.Config) *MiddlewareManager {
	return &MiddlewareManager{config: cfg}
}

// GinCORSMiddleware CORS中间件
// 控制台前端与API可能不同源，放行跨域请求
func (m *MiddlewareManager) GinCORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Request-ID")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// GinSecurityHeadersMiddleware 安全响应头中间件
func (m *MiddlewareManager) GinSecurityHeadersMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")
		c.Header("Cache-Control", "no-store")
		c.Next()
	}
}
