/**
 * 配置会话处理器
 * @author: sun977
 * @date: 2026.08.29
 * @description: 配置会话的创建、查询、模块开关、预设应用、参数配置与取消
 * @func: CreateSession / GetSession / ToggleModule / ApplyPreset / UpdateModuleConfig / CancelSession
 */
package console

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"neoconsole/internal/model"
	"neoconsole/internal/pkg/logger"
	"neoconsole/internal/service/session"
)

// SessionHandler 配置会话处理器
type SessionHandler struct {
	sessionService *session.Service
}

// NewSessionHandler 创建配置会话处理器
func NewSessionHandler(sessionService *session.Service) *SessionHandler {
	return &SessionHandler{sessionService: sessionService}
}

func sessionResponse(sess *model.ConfigureSession) model.SessionResponse {
	return model.SessionResponse{
		Session:      sess,
		EnabledCount: sess.EnabledCount(),
	}
}

// CreateSession 创建配置会话，初始为默认模块选择
// POST /api/v1/sessions
func (h *SessionHandler) CreateSession(c *gin.Context) {
	sess, err := h.sessionService.CreateSession(c.Request.Context())
	if err != nil {
		logger.LogError(err, "session", "create_session", c.ClientIP(), c.GetHeader("X-Request-ID"), nil)
		c.JSON(http.StatusInternalServerError, model.NewErrorResponse("创建配置会话失败", err))
		return
	}

	c.JSON(http.StatusOK, model.NewSuccessResponse("创建配置会话成功", sessionResponse(sess)))
}

// GetSession 获取配置会话
// GET /api/v1/sessions/:id
func (h *SessionHandler) GetSession(c *gin.Context) {
	sess, err := h.sessionService.GetSession(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, model.ErrSessionNotFound) {
			c.JSON(http.StatusNotFound, model.NewErrorResponse("配置会话不存在或已过期", err))
			return
		}
		logger.LogError(err, "session", "get_session", c.ClientIP(), c.GetHeader("X-Request-ID"), nil)
		c.JSON(http.StatusInternalServerError, model.NewErrorResponse("获取配置会话失败", err))
		return
	}

	c.JSON(http.StatusOK, model.NewSuccessResponse("获取配置会话成功", sessionResponse(sess)))
}

// ToggleModule 切换模块启用状态
// POST /api/v1/sessions/:id/toggle
func (h *SessionHandler) ToggleModule(c *gin.Context) {
	var req model.ToggleModuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse("请求参数格式错误", err))
		return
	}

	sess, err := h.sessionService.ToggleModule(c.Request.Context(), c.Param("id"), req.ModuleKey)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrSessionNotFound):
			c.JSON(http.StatusNotFound, model.NewErrorResponse("配置会话不存在或已过期", err))
		case errors.Is(err, model.ErrModuleNotFound):
			c.JSON(http.StatusNotFound, model.NewErrorResponse("扫描模块不存在", err))
		default:
			logger.LogError(err, "session", "toggle_module", c.ClientIP(), c.GetHeader("X-Request-ID"), map[string]interface{}{
				"module_key": req.ModuleKey,
			})
			c.JSON(http.StatusInternalServerError, model.NewErrorResponse("切换模块状态失败", err))
		}
		return
	}

	c.JSON(http.StatusOK, model.NewSuccessResponse("切换模块状态成功", sessionResponse(sess)))
}

// ApplyPreset 应用模块选择预设（原子操作：预设校验失败时会话保持不变）
// POST /api/v1/sessions/:id/preset
func (h *SessionHandler) ApplyPreset(c *gin.Context) {
	var req model.ApplyPresetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse("请求参数格式错误", err))
		return
	}

	sess, err := h.sessionService.ApplyPreset(c.Request.Context(), c.Param("id"), req.PresetName)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrSessionNotFound):
			c.JSON(http.StatusNotFound, model.NewErrorResponse("配置会话不存在或已过期", err))
		case errors.Is(err, model.ErrPresetNotFound):
			c.JSON(http.StatusNotFound, model.NewErrorResponse("预设不存在", err))
		default:
			logger.LogError(err, "session", "apply_preset", c.ClientIP(), c.GetHeader("X-Request-ID"), map[string]interface{}{
				"preset_name": req.PresetName,
			})
			c.JSON(http.StatusInternalServerError, model.NewErrorResponse("应用预设失败", err))
		}
		return
	}

	c.JSON(http.StatusOK, model.NewSuccessResponse("应用预设成功", sessionResponse(sess)))
}

// UpdateModuleConfig 更新模块参数配置
// 参数经过模式引擎校验，任一字段错误则整体拒绝并返回全部字段错误
// PUT /api/v1/sessions/:id/modules/:key/config
func (h *SessionHandler) UpdateModuleConfig(c *gin.Context) {
	var req model.UpdateModuleConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse("请求参数格式错误", err))
		return
	}

	sess, validationErrs, err := h.sessionService.SetModuleConfig(c.Request.Context(), c.Param("id"), c.Param("key"), req.Values)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrSessionNotFound):
			c.JSON(http.StatusNotFound, model.NewErrorResponse("配置会话不存在或已过期", err))
		case errors.Is(err, model.ErrModuleNotFound):
			c.JSON(http.StatusNotFound, model.NewErrorResponse("扫描模块不存在", err))
		default:
			logger.LogError(err, "session", "update_module_config", c.ClientIP(), c.GetHeader("X-Request-ID"), map[string]interface{}{
				"module_key": c.Param("key"),
			})
			c.JSON(http.StatusInternalServerError, model.NewErrorResponse("更新模块配置失败", err))
		}
		return
	}
	if validationErrs.HasErrors() {
		c.JSON(http.StatusBadRequest, model.NewValidationResponse("模块参数校验失败", validationErrs))
		return
	}

	c.JSON(http.StatusOK, model.NewSuccessResponse("更新模块配置成功", sessionResponse(sess)))
}

// CancelSession 取消配置会话，丢弃全部配置状态
// DELETE /api/v1/sessions/:id
func (h *SessionHandler) CancelSession(c *gin.Context) {
	if err := h.sessionService.CancelSession(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, model.ErrSessionNotFound) {
			c.JSON(http.StatusNotFound, model.NewErrorResponse("配置会话不存在或已过期", err))
			return
		}
		logger.LogError(err, "session", "cancel_session", c.ClientIP(), c.GetHeader("X-Request-ID"), nil)
		c.JSON(http.StatusInternalServerError, model.NewErrorResponse("取消配置会话失败", err))
		return
	}

	c.JSON(http.StatusOK, model.NewSuccessResponse("配置会话已取消", nil))
}
