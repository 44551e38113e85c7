/**
 * 测试:访问日志中间件
 * @author: sun977
 * @date: 2026.08.29
 * @description: 验证请求ID的生成与透传、客户端IP与请求ID在上下文中的存储
 */
package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"neoconsole/internal/config"
	"neoconsole/internal/pkg/utils"
)

func newLoggingTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	m := NewMiddlewareManager(&config.Config{})
	engine := gin.New()
	engine.Use(m.GinLoggingMiddleware())
	return engine
}

// 客户端未携带 X-Request-ID 时中间件生成一个，并写入响应头和上下文
func TestLoggingMiddlewareGeneratesRequestID(t *testing.T) {
	engine := newLoggingTestRouter(t)

	var ctxRequestID, ginRequestID string
	engine.GET("/ping", func(c *gin.Context) {
		ginRequestID = c.GetString("request_id")
		ctxRequestID = utils.GetRequestIDFromContext(c.Request.Context())
		c.String(http.StatusOK, "pong")
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	headerID := w.Header().Get("X-Request-ID")
	assert.NotEmpty(t, headerID)
	assert.Equal(t, headerID, ginRequestID)
	assert.Equal(t, headerID, ctxRequestID)
}

// 客户端已携带 X-Request-ID 时原样透传
func TestLoggingMiddlewarePropagatesRequestID(t *testing.T) {
	engine := newLoggingTestRouter(t)

	engine.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Request-ID", "req-12345")
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "req-12345", w.Header().Get("X-Request-ID"))
}

// 客户端IP经过标准化后写入标准上下文
func TestLoggingMiddlewareStoresClientIP(t *testing.T) {
	engine := newLoggingTestRouter(t)

	var ctxClientIP string
	engine.GET("/ping", func(c *gin.Context) {
		ctxClientIP = utils.GetClientIPFromContext(c.Request.Context())
		c.String(http.StatusOK, "pong")
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = "192.168.1.10:51234"
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "192.168.1.10", ctxClientIP)
}
