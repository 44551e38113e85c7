/**
 * 模型:响应模型
 * @author: sun977
 * @date: 2025.09.15
 * @description: 控制台API响应数据模型，包含各种业务操作的响应结构体
 * @func: APIResponse 和各种Response结构体定义
 */
package model

// APIResponse 通用API响应结构
type APIResponse struct {
	Code    int               `json:"code,omitempty"`   // 响应状态码，可选
	Status  string            `json:"status"`           // 响应状态："success" 或 "error"
	Message string            `json:"message"`          // 响应消息
	Data    interface{}       `json:"data,omitempty"`   // 响应数据，可选
	Error   string            `json:"error,omitempty"`  // 错误信息，可选
	Errors  []ValidationError `json:"errors,omitempty"` // 字段校验错误列表，可选
}

// NewSuccessResponse 创建成功响应
func NewSuccessResponse(message string, data interface{}) APIResponse {
	return APIResponse{
		Status:  "success",
		Message: message,
		Data:    data,
	}
}

// NewErrorResponse 创建错误响应
func NewErrorResponse(message string, err error) APIResponse {
	resp := APIResponse{
		Status:  "error",
		Message: message,
	}
	if err != nil {
		resp.Error = err.Error()
	}
	return resp
}

// NewValidationResponse 创建校验失败响应，一次性返回全部字段错误
func NewValidationResponse(message string, errs []ValidationError) APIResponse {
	return APIResponse{
		Status:  "error",
		Message: message,
		Errors:  errs,
	}
}

// ModuleListResponse 模块目录列表响应结构
type ModuleListResponse struct {
	Modules []ScanModuleDefinition `json:"modules"` // 模块定义列表
	Total   int                    `json:"total"`   // 模块总数
}

// CategoryListResponse 模块分类列表响应结构
type CategoryListResponse struct {
	Categories []string `json:"categories"` // 分类名称列表（首次出现顺序）
}

// PresetListResponse 预设列表响应结构
type PresetListResponse struct {
	Presets []ModulePreset `json:"presets"` // 预设列表
}

// SessionResponse 配置会话响应结构
type SessionResponse struct {
	Session      *ConfigureSession `json:"session"`       // 会话内容
	EnabledCount int               `json:"enabled_count"` // 当前启用模块数量
}

// ScanSummary 扫描列表条目（含资产展示字段join）
type ScanSummary struct {
	Scan      *Scan  `json:"scan"`       // 扫描实体
	AssetName string `json:"asset_name"` // 资产名称（展示用，join失败时为空）
}

// ScanListResponse 扫描列表响应结构
type ScanListResponse struct {
	Scans []ScanSummary `json:"scans"` // 扫描列表
	Total int           `json:"total"` // 扫描总数
}

// AssetListResponse 资产列表响应结构
type AssetListResponse struct {
	Assets []Asset `json:"assets"` // 资产列表
	Total  int     `json:"total"`  // 资产总数
}

// SubmitScanResponse 扫描提交响应结构
type SubmitScanResponse struct {
	ScanID  string `json:"scan_id"` // 新建扫描ID
	Message string `json:"message"` // 提交结果消息
}

// HealthResponse 健康检查响应结构
type HealthResponse struct {
	Status  string `json:"status"`  // 服务状态
	Version string `json:"version"` // 版本号
	Uptime  string `json:"uptime"`  // 运行时长
}
