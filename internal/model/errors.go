/**
 * 模型:错误定义
 * @author: sun977
 * @date: 2025.09.15
 * @description: 系统错误常量和校验错误类型定义
 * @func: 各种错误常量和 ValidationError 结构体
 */
package model

import "errors"

// 目录和预设相关错误（定义错误，启动时致命）
var (
	ErrDuplicateModuleKey  = errors.New("模块键重复")
	ErrEnumWithoutOptions  = errors.New("枚举字段缺少options")
	ErrUnknownConditionRef = errors.New("条件引用了未知的兄弟字段")
	ErrConditionCycle      = errors.New("字段条件存在循环依赖")
	ErrPresetUnknownModule = errors.New("预设引用了未知的模块键")
	ErrDuplicatePresetName = errors.New("预设名称重复")
)

// 会话相关错误
var (
	ErrSessionNotFound = errors.New("配置会话不存在或已过期")
	ErrModuleNotFound  = errors.New("模块不存在")
	ErrPresetNotFound  = errors.New("预设不存在")
)

// 引擎相关错误
var (
	ErrEngineUnavailable = errors.New("扫描引擎不可用")
	ErrScanNotFound      = errors.New("扫描不存在")
	ErrAssetNotFound     = errors.New("资产不存在")
	ErrUnauthorized      = errors.New("引擎凭证无效")
)

// ValidationError 校验错误结构体
// 单个字段的校验失败，构建器和参数引擎一次性收集全部错误返回
type ValidationError struct {
	Field  string `json:"field_name"` // 字段名
	Reason string `json:"reason"`     // 失败原因
}

// NewValidationError 创建校验错误
func NewValidationError(field, reason string) ValidationError {
	return ValidationError{
		Field:  field,
		Reason: reason,
	}
}

// Error 实现error接口
func (e ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return e.Field + ": " + e.Reason
}

// ValidationErrors 校验错误列表
type ValidationErrors []ValidationError

// Error 实现error接口，拼接全部字段错误
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	msg := e[0].Error()
	for _, ve := range e[1:] {
		msg += "; " + ve.Error()
	}
	return msg
}

// HasErrors 判断是否存在校验错误
func (e ValidationErrors) HasErrors() bool {
	return len(e) > 0
}
