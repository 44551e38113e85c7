/**
 * 模型:请求模型
 * @author: sun977
 * @date: 2025.09.15
 * @description: 控制台API请求数据模型，包含各种业务操作的请求结构体
 * @func: 各种Request结构体定义
 */
package model

// ToggleModuleRequest 切换模块启用状态请求结构
type ToggleModuleRequest struct {
	ModuleKey string `json:"module_key" binding:"required"` // 模块键，必填
}

// ApplyPresetRequest 应用预设请求结构
type ApplyPresetRequest struct {
	PresetName string `json:"preset_name" binding:"required"` // 预设名称，必填
}

// UpdateModuleConfigRequest 更新模块参数请求结构
// Values 为用户填写的参数对象，经参数引擎校验后写入会话
type UpdateModuleConfigRequest struct {
	Values map[string]interface{} `json:"values"` // 字段名 -> 用户输入值
}

// SubmitScanRequest 提交扫描请求结构
// 模块选择和参数取自指定配置会话，提交成功后会话重置为默认
type SubmitScanRequest struct {
	SessionID string `json:"session_id" binding:"required"` // 配置会话ID，必填
	AssetID   string `json:"asset_id" binding:"required"`   // 目标资产ID，必填
	ScanName  string `json:"scan_name"`                     // 扫描名称（空值由构建器报必填错误）
}
