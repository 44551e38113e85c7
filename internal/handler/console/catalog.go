/**
 * 模块目录处理器
 * @author: sun977
 * @date: 2026.08.29
 * @description: 提供扫描模块目录、分类和预设的只读查询接口
 * @func: ListModules / ListCategories / ListPresets
 */
package console

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"neoconsole/internal/catalog"
	"neoconsole/internal/model"
)

// CatalogHandler 模块目录处理器
type CatalogHandler struct {
	catalog *catalog.Catalog
}

// NewCatalogHandler 创建模块目录处理器
func NewCatalogHandler(cat *catalog.Catalog) *CatalogHandler {
	return &CatalogHandler{catalog: cat}
}

// ListModules 获取扫描模块目录
// GET /api/v1/catalog/modules?category=Network
func (h *CatalogHandler) ListModules(c *gin.Context) {
	category := c.Query("category")

	var modules []model.ScanModuleDefinition
	if category != "" {
		modules = h.catalog.GetByCategory(category)
	} else {
		modules = h.catalog.Definitions()
	}

	c.JSON(http.StatusOK, model.NewSuccessResponse("获取模块目录成功", model.ModuleListResponse{
		Modules: modules,
		Total:   len(modules),
	}))
}

// ListCategories 获取模块分类列表（按目录首次出现顺序）
// GET /api/v1/catalog/categories
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, model.NewSuccessResponse("获取模块分类成功", model.CategoryListResponse{
		Categories: h.catalog.ListCategories(),
	}))
}

// ListPresets 获取模块选择预设列表
// GET /api/v1/catalog/presets
func (h *CatalogHandler) ListPresets(c *gin.Context) {
	c.JSON(http.StatusOK, model.NewSuccessResponse("获取预设列表成功", model.PresetListResponse{
		Presets: h.catalog.ListPresets(),
	}))
}
