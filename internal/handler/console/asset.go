/**
 * 资产处理器
 * @author: sun977
 * @date: 2026.08.29
 * @description: 资产的只读查询接口（资产数据由扫描引擎维护）
 * @func: ListAssets / GetAsset
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

// AssetHandler 资产处理器
type AssetHandler struct {
	scanService *scan.Service
}

// NewAssetHandler 创建资产处理器
func NewAssetHandler(scanService *scan.Service) *AssetHandler {
	return &AssetHandler{scanService: scanService}
}

// ListAssets 获取资产列表
// GET /api/v1/assets
func (h *AssetHandler) ListAssets(c *gin.Context) {
	assets, err := h.scanService.ListAssets(c.Request.Context())
	if err != nil {
		logger.LogError(err, "asset", "list_assets", c.ClientIP(), c.GetHeader("X-Request-ID"), nil)
		c.JSON(http.StatusBadGateway, model.NewErrorResponse("获取资产列表失败", err))
		return
	}

	c.JSON(http.StatusOK, model.NewSuccessResponse("获取资产列表成功", model.AssetListResponse{
		Assets: assets,
		Total:  len(assets),
	}))
}

// GetAsset 获取资产详情
// GET /api/v1/assets/:id
func (h *AssetHandler) GetAsset(c *gin.Context) {
	asset, err := h.scanService.GetAsset(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, model.ErrAssetNotFound) {
			c.JSON(http.StatusNotFound, model.NewErrorResponse("资产不存在", err))
			return
		}
		logger.LogError(err, "asset", "get_asset", c.ClientIP(), c.GetHeader("X-Request-ID"), nil)
		c.JSON(http.StatusBadGateway, model.NewErrorResponse("获取资产详情失败", err))
		return
	}

	c.JSON(http.StatusOK, model.NewSuccessResponse("获取资产详情成功", asset))
}
