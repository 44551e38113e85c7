/**
 * 中间件:日志相关中间件
 * @author: sun977
 * @date: 2026.08.29
 * @description: 访问日志中间件[同时把客户端IP和请求ID存储到Gin上下文和标准上下文,供后续使用]
 * @func: GinLoggingMiddleware
 */
package middleware

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"neoconsole/internal/pkg/logger"
	"neoconsole/internal/pkg/utils"
)

// GinLoggingMiddleware Gin访问日志中间件
// 记录所有HTTP请求的访问日志，并标准化客户端IP与请求ID
// 使用方式: router.Use(middlewareManager.GinLoggingMiddleware())
func (m *MiddlewareManager) GinLoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		clientIP := utils.NormalizeIP(c.ClientIP())
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			// 客户端未携带请求ID时生成一个，便于全链路追踪
			// 生成失败时留空，不中断请求处理
			if id, err := utils.GenerateUUID(); err == nil {
				requestID = id
			}
		}
		c.Header("X-Request-ID", requestID)

		// 存储到Gin上下文
		c.Set("client_ip", clientIP)
		c.Set("request_id", requestID)

		// 存储到标准上下文，service层只使用标准上下文
		ctx := c.Request.Context()
		ctx = context.WithValue(ctx, utils.ContextKeyClientIP, clientIP)
		ctx = context.WithValue(ctx, utils.ContextKeyRequestID, requestID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()

		// 记录访问日志
		logger.LogAccessRequest(c, c.Writer.Status(), time.Since(start), int64(c.Writer.Size()))
	}
}
