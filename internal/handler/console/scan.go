/**
 * 扫描处理器
 * @author: sun977
 * @date: 2026.08.29
 * @description: 扫描的提交、列表、详情与取消接口
 * @func: SubmitScan / ListScans / GetScan / CancelScan
 */
package console

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"neoconsole/internal/model"
	"neoconsole/internal/pkg/logger"
	"neoconsole/internal/service/scan"
)

// ScanHandler 扫描处理器
type ScanHandler struct {
	scanService *scan.Service
}

// NewScanHandler 创建扫描处理器
func NewScanHandler(scanService *scan.Service) *ScanHandler {
	return &ScanHandler{scanService: scanService}
}

// SubmitScan 从配置会话组装并提交扫描
// 组装失败返回全部字段错误且不触网；提交失败会话保持不变
// POST /api/v1/scans
func (h *ScanHandler) SubmitScan(c *gin.Context) {
	var req model.SubmitScanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse("请求参数格式错误", err))
		return
	}

	result, validationErrs, err := h.scanService.Submit(c.Request.Context(), &req, c.ClientIP())
	if err != nil {
		switch {
		case errors.Is(err, model.ErrSessionNotFound):
			c.JSON(http.StatusNotFound, model.NewErrorResponse("配置会话不存在或已过期", err))
		case errors.Is(err, model.ErrAssetNotFound):
			c.JSON(http.StatusNotFound, model.NewErrorResponse("资产不存在", err))
		case errors.Is(err, model.ErrEngineUnavailable):
			c.JSON(http.StatusBadGateway, model.NewErrorResponse("扫描引擎不可用", err))
		default:
			logger.LogError(err, "scan", "submit_scan", c.ClientIP(), c.GetHeader("X-Request-ID"), map[string]interface{}{
				"session_id": req.SessionID,
				"asset_id":   req.AssetID,
			})
			c.JSON(http.StatusInternalServerError, model.NewErrorResponse("提交扫描失败", err))
		}
		return
	}
	if validationErrs.HasErrors() {
		c.JSON(http.StatusBadRequest, model.NewValidationResponse("扫描请求校验失败", validationErrs))
		return
	}

	c.JSON(http.StatusOK, model.NewSuccessResponse("提交扫描成功", model.SubmitScanResponse{
		ScanID:  result.ScanID,
		Message: "扫描已提交，配置会话已重置",
	}))
}

// ListScans 获取扫描列表（关联资产名称）
// GET /api/v1/scans
func (h *ScanHandler) ListScans(c *gin.Context) {
	summaries, err := h.scanService.ListScans(c.Request.Context())
	if err != nil {
		logger.LogError(err, "scan", "list_scans", c.ClientIP(), c.GetHeader("X-Request-ID"), nil)
		c.JSON(http.StatusBadGateway, model.NewErrorResponse("获取扫描列表失败", err))
		return
	}

	c.JSON(http.StatusOK, model.NewSuccessResponse("获取扫描列表成功", model.ScanListResponse{
		Scans: summaries,
		Total: len(summaries),
	}))
}

// GetScan 获取扫描详情（含进度更新，终态时含原始结果）
// GET /api/v1/scans/:id
func (h *ScanHandler) GetScan(c *gin.Context) {
	scanDetail, err := h.scanService.GetScan(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, model.ErrScanNotFound) {
			c.JSON(http.StatusNotFound, model.NewErrorResponse("扫描不存在", err))
			return
		}
		logger.LogError(err, "scan", "get_scan", c.ClientIP(), c.GetHeader("X-Request-ID"), nil)
		c.JSON(http.StatusBadGateway, model.NewErrorResponse("获取扫描详情失败", err))
		return
	}

	c.JSON(http.StatusOK, model.NewSuccessResponse("获取扫描详情成功", scanDetail))
}

// CancelScan 请求取消扫描
// 只向引擎转发取消请求，状态以引擎后续上报为准
// POST /api/v1/scans/:id/cancel
func (h *ScanHandler) CancelScan(c *gin.Context) {
	if err := h.scanService.CancelScan(c.Request.Context(), c.Param("id"), c.ClientIP()); err != nil {
		if errors.Is(err, model.ErrScanNotFound) {
			c.JSON(http.StatusNotFound, model.NewErrorResponse("扫描不存在", err))
			return
		}
		logger.LogError(err, "scan", "cancel_scan", c.ClientIP(), c.GetHeader("X-Request-ID"), nil)
		c.JSON(http.StatusBadGateway, model.NewErrorResponse("取消扫描失败", err))
		return
	}

	c.JSON(http.StatusOK, model.NewSuccessResponse("取消请求已发送", nil))
}
