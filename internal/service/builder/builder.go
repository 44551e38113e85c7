/**
 * 服务:扫描请求构建器
 * @author: sun977
 * @date: 2025.09.19
 * @description: 把目标资产、模块选择和各模块参数组装为引擎线上格式的扫描请求
 * @func: Builder 结构体和 Build 方法，纯计算无I/O
 */
package builder

import (
	"strings"

	"neoconsole/internal/catalog"
	"neoconsole/internal/model"
	"neoconsole/internal/pkg/utils"
	"neoconsole/internal/service/schema"
)

// Builder 扫描请求构建器
// 纯函数式组件：不做网络和存储操作，提交是上层单独的可失败步骤
type Builder struct {
	catalog *catalog.Catalog
	engine  *schema.Engine
}

// New 创建扫描请求构建器
func New(cat *catalog.Catalog, engine *schema.Engine) *Builder {
	return &Builder{
		catalog: cat,
		engine:  engine,
	}
}

// Build 组装扫描请求
// 调用级必填检查（扫描名、资产）先于模块校验并短路返回；
// 模块参数校验失败时整个构建失败，一次性返回全部字段错误
func (b *Builder) Build(asset *model.Asset, scanName string, scanModules map[string]bool, moduleConfigs map[string]map[string]interface{}) (*model.ScanRequest, model.ValidationErrors) {
	// 必填检查独立于模块校验，先行短路
	var required model.ValidationErrors
	if strings.TrimSpace(scanName) == "" {
		required = append(required, model.NewValidationError("scan_name", "scan name is required"))
	}
	if asset == nil {
		required = append(required, model.NewValidationError("asset_id", "an asset must be selected"))
	}
	if len(required) > 0 {
		return nil, required
	}

	params := make(map[string]interface{})

	// 目标字段按资产类型解析：
	// IP -> target_ip，Domain/WebApp -> target_domain，
	// CodeRepo/CloudAccount/NetworkSegment 不设目标字段——引擎约定对这些类型
	// 仅凭 asset_id 推导上下文，这是后端契约中明确的不对称，不要擅自发明第三个目标字段
	switch asset.Type {
	case model.AssetTypeIP:
		params["target_ip"] = utils.NormalizeIP(asset.Value)
	case model.AssetTypeDomain, model.AssetTypeWebApp:
		params["target_domain"] = asset.Value
	}

	// 每个目录键都发出 enable_<key> 标志，选择状态中缺失的键按禁用处理
	for _, key := range b.catalog.Keys() {
		params["enable_"+key] = scanModules[key]
	}

	// 非空参数草稿经引擎解析后作为 <key>_params 发出
	// 没有 <key>_params 表示"使用schema默认值"
	var errs model.ValidationErrors
	for _, key := range b.catalog.Keys() {
		values, present := moduleConfigs[key]
		if !present || len(values) == 0 {
			continue
		}
		def, _ := b.catalog.GetByKey(key)
		resolved, ferrs := b.engine.Resolve(&def, values)
		if len(ferrs) > 0 {
			errs = append(errs, ferrs...)
			continue
		}
		params[key+"_params"] = resolved
	}

	// 草稿中引用未知模块属于调用方错误
	for key := range moduleConfigs {
		if _, ok := b.catalog.GetByKey(key); !ok {
			errs = append(errs, model.NewValidationError(key, "unknown module key"))
		}
	}

	if len(errs) > 0 {
		return nil, errs
	}

	return &model.ScanRequest{
		AssetID:        asset.AssetID,
		ScanName:       scanName,
		ScanParameters: params,
	}, nil
}
