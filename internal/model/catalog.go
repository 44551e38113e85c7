/**
 * 模型:扫描模块目录模型
 * @author: sun977
 * @date: 2025.09.15
 * @description: 扫描模块定义和参数字段数据模型，目录在加载时构建且运行期不可变
 * @func: ScanModuleDefinition、ScanModuleConfigField、FieldCondition 结构体定义
 */
package model

// FieldType 参数字段类型枚举
type FieldType string

const (
	FieldTypeString      FieldType = "string"       // 字符串
	FieldTypeNumber      FieldType = "number"       // 数字（接受数字字符串）
	FieldTypeBoolean     FieldType = "boolean"      // 布尔值
	FieldTypeEnum        FieldType = "enum"         // 枚举（必须提供options）
	FieldTypeArrayString FieldType = "array_string" // 字符串数组（接受逗号分隔字符串）
	FieldTypeArrayEnum   FieldType = "array_enum"   // 枚举数组（必须提供options）
	FieldTypeJSONObject  FieldType = "json_object"  // JSON对象
	FieldTypeJSONArray   FieldType = "json_array"   // JSON数组
)

// FieldCondition 字段激活条件
// 指向同模块内的兄弟字段，兄弟字段的解析值等于Value时本字段才激活
type FieldCondition struct {
	Field string      `json:"field"` // 兄弟字段名
	Value interface{} `json:"value"` // 期望值
}

// ScanModuleConfigField 扫描模块的单个可配置参数
type ScanModuleConfigField struct {
	FieldName   string          `json:"field_name"`            // 参数对象内的键名
	Label       string          `json:"label"`                 // 展示名称
	Type        FieldType       `json:"type"`                  // 字段类型
	Description string          `json:"description,omitempty"` // 字段说明
	Optional    bool            `json:"optional"`              // 是否可选
	Default     interface{}     `json:"default,omitempty"`     // 默认值（类型与Type一致）
	Placeholder string          `json:"placeholder,omitempty"` // 输入提示
	Options     []string        `json:"options,omitempty"`     // 允许值列表（enum/array_enum必填）
	InputType   string          `json:"input_type,omitempty"`  // 渲染提示：text/password/textarea
	Condition   *FieldCondition `json:"condition,omitempty"`   // 激活条件（可选）
}

// ScanModuleDefinition 扫描模块定义
// 静态不可变，每个模块键唯一，加载时构建完成后不再修改
type ScanModuleDefinition struct {
	Key         string                  `json:"key"`         // 模块唯一标识，跨版本稳定
	Name        string                  `json:"name"`        // 模块名称
	Description string                  `json:"description"` // 模块说明
	Category    string                  `json:"category"`    // 分类标签（Network、OSINT等）
	Parameters  []ScanModuleConfigField `json:"parameters"`  // 有序参数字段列表
}

// GetField 按字段名查找参数定义
func (d *ScanModuleDefinition) GetField(fieldName string) (*ScanModuleConfigField, bool) {
	for i := range d.Parameters {
		if d.Parameters[i].FieldName == fieldName {
			return &d.Parameters[i], true
		}
	}
	return nil, false
}

// ModulePreset 模块预设
// 命名的静态模块集合，应用时作为allow-list整体替换选择状态
type ModulePreset struct {
	Name        string   `json:"name"`        // 预设名称
	Description string   `json:"description"` // 预设说明
	ModuleKeys  []string `json:"module_keys"` // 启用的模块键列表
}
