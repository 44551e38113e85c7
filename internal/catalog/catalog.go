/**
 * 目录:扫描模块目录
 * @author: sun977
 * @date: 2025.09.16
 * @description: 扫描模块目录，加载时构建并校验，运行期只读，可被任意数量的并发读取共享
 * @func: Catalog 结构体及查询方法，New 构造函数（含定义校验）
 */
package catalog

import (
	"fmt"

	"neoconsole/internal/model"
)

// Catalog 扫描模块目录
// 构建完成后不可变，查询方法返回副本避免调用方篡改内部状态
type Catalog struct {
	definitions []model.ScanModuleDefinition // 有序模块定义列表
	index       map[string]int               // 模块键 -> definitions下标
	categories  []string                     // 分类列表（首次出现顺序，去重）
	presets     []model.ModulePreset         // 有序预设列表
	presetIndex map[string]int               // 预设名 -> presets下标
	coreModules map[string]bool              // 默认启用的核心模块键
}

// New 构建内置扫描模块目录
// 定义错误（键重复、枚举缺options、条件引用未知字段、条件循环、预设引用未知模块）
// 在此处返回错误，调用方应拒绝启动
func New() (*Catalog, error) {
	return newCatalog(builtinModules(), builtinPresets(), coreModuleKeys)
}

// newCatalog 由给定定义集构建目录，全部定义校验在这里完成
func newCatalog(defs []model.ScanModuleDefinition, presets []model.ModulePreset, coreKeys []string) (*Catalog, error) {
	c := &Catalog{
		definitions: defs,
		index:       make(map[string]int, len(defs)),
		presets:     presets,
		presetIndex: make(map[string]int, len(presets)),
		coreModules: make(map[string]bool, len(coreKeys)),
	}

	// 构建键索引，检测重复键
	for i, def := range defs {
		if def.Key == "" {
			return nil, fmt.Errorf("module at position %d has empty key", i)
		}
		if _, exists := c.index[def.Key]; exists {
			return nil, fmt.Errorf("module %q: %w", def.Key, model.ErrDuplicateModuleKey)
		}
		c.index[def.Key] = i
	}

	// 逐模块校验参数字段定义
	for _, def := range defs {
		if err := validateDefinition(&def); err != nil {
			return nil, fmt.Errorf("module %q: %w", def.Key, err)
		}
	}

	// 分类列表按首次出现顺序收集
	seen := make(map[string]bool)
	for _, def := range defs {
		if !seen[def.Category] {
			seen[def.Category] = true
			c.categories = append(c.categories, def.Category)
		}
	}

	// 核心模块必须存在于目录中
	for _, key := range coreKeys {
		if _, exists := c.index[key]; !exists {
			return nil, fmt.Errorf("core module %q: %w", key, model.ErrModuleNotFound)
		}
		c.coreModules[key] = true
	}

	// 预设在加载时校验，引用未知模块键属于定义错误
	for i, preset := range presets {
		if _, exists := c.presetIndex[preset.Name]; exists {
			return nil, fmt.Errorf("preset %q: %w", preset.Name, model.ErrDuplicatePresetName)
		}
		c.presetIndex[preset.Name] = i
		for _, key := range preset.ModuleKeys {
			if _, exists := c.index[key]; !exists {
				return nil, fmt.Errorf("preset %q references %q: %w", preset.Name, key, model.ErrPresetUnknownModule)
			}
		}
	}

	return c, nil
}

// validateDefinition 校验单个模块的参数字段定义
func validateDefinition(def *model.ScanModuleDefinition) error {
	fieldIndex := make(map[string]*model.ScanModuleConfigField, len(def.Parameters))
	for i := range def.Parameters {
		field := &def.Parameters[i]
		if field.FieldName == "" {
			return fmt.Errorf("parameter at position %d has empty field_name", i)
		}
		if _, exists := fieldIndex[field.FieldName]; exists {
			return fmt.Errorf("field %q: %w", field.FieldName, model.ErrDuplicateModuleKey)
		}
		fieldIndex[field.FieldName] = field
	}

	for _, field := range def.Parameters {
		// enum/array_enum 必须提供允许值列表
		if (field.Type == model.FieldTypeEnum || field.Type == model.FieldTypeArrayEnum) && len(field.Options) == 0 {
			return fmt.Errorf("field %q: %w", field.FieldName, model.ErrEnumWithoutOptions)
		}
		// 条件必须指向同模块内已知的兄弟字段
		if field.Condition != nil {
			if field.Condition.Field == field.FieldName {
				return fmt.Errorf("field %q references itself: %w", field.FieldName, model.ErrConditionCycle)
			}
			if _, exists := fieldIndex[field.Condition.Field]; !exists {
				return fmt.Errorf("field %q condition references %q: %w", field.FieldName, field.Condition.Field, model.ErrUnknownConditionRef)
			}
		}
	}

	// 条件链允许，循环是定义错误
	if err := detectConditionCycle(fieldIndex); err != nil {
		return err
	}

	return nil
}

// detectConditionCycle 对条件依赖图做三色DFS检测循环
// 边方向：字段 -> 其条件引用的兄弟字段
func detectConditionCycle(fields map[string]*model.ScanModuleConfigField) error {
	const (
		white = 0 // 未访问
		gray  = 1 // 访问中
		black = 2 // 已完成
	)
	colors := make(map[string]int, len(fields))

	var visit func(name string) error
	visit = func(name string) error {
		switch colors[name] {
		case gray:
			return fmt.Errorf("field %q: %w", name, model.ErrConditionCycle)
		case black:
			return nil
		}
		colors[name] = gray
		if field := fields[name]; field != nil && field.Condition != nil {
			if err := visit(field.Condition.Field); err != nil {
				return err
			}
		}
		colors[name] = black
		return nil
	}

	for name := range fields {
		if colors[name] == white {
			if err := visit(name); err != nil {
				return err
			}
		}
	}
	return nil
}

// GetByKey 按模块键查找定义
// 未知键返回 ok=false，常规查找不产生错误，调用方自行决定缺失是否算错误
func (c *Catalog) GetByKey(key string) (model.ScanModuleDefinition, bool) {
	i, exists := c.index[key]
	if !exists {
		return model.ScanModuleDefinition{}, false
	}
	return c.definitions[i], true
}

// GetByCategory 返回指定分类下的模块定义，保持目录内顺序
func (c *Catalog) GetByCategory(category string) []model.ScanModuleDefinition {
	var result []model.ScanModuleDefinition
	for _, def := range c.definitions {
		if def.Category == category {
			result = append(result, def)
		}
	}
	return result
}

// ListCategories 返回去重后的分类名称列表，顺序为目录中首次出现顺序
func (c *Catalog) ListCategories() []string {
	result := make([]string, len(c.categories))
	copy(result, c.categories)
	return result
}

// Definitions 返回全部模块定义的副本
func (c *Catalog) Definitions() []model.ScanModuleDefinition {
	result := make([]model.ScanModuleDefinition, len(c.definitions))
	copy(result, c.definitions)
	return result
}

// Keys 返回全部模块键，保持目录顺序
func (c *Catalog) Keys() []string {
	keys := make([]string, len(c.definitions))
	for i, def := range c.definitions {
		keys[i] = def.Key
	}
	return keys
}

// Size 返回模块数量
func (c *Catalog) Size() int {
	return len(c.definitions)
}

// DefaultSelection 返回规范的默认模块选择状态
// 每个目录键都有对应条目：核心模块为true，其余为false
// 创建和重置流程共用这一份默认来源，避免两处字面量漂移
func (c *Catalog) DefaultSelection() map[string]bool {
	selection := make(map[string]bool, len(c.definitions))
	for _, def := range c.definitions {
		selection[def.Key] = c.coreModules[def.Key]
	}
	return selection
}

// GetPreset 按名称查找预设
func (c *Catalog) GetPreset(name string) (model.ModulePreset, bool) {
	i, exists := c.presetIndex[name]
	if !exists {
		return model.ModulePreset{}, false
	}
	return c.presets[i], true
}

// ListPresets 返回全部预设的副本
func (c *Catalog) ListPresets() []model.ModulePreset {
	result := make([]model.ModulePreset, len(c.presets))
	copy(result, c.presets)
	return result
}

// PresetSelection 将预设展开为完整的选择状态
// 预设是allow-list：预设未包含的目录键一律为false
func (c *Catalog) PresetSelection(name string) (map[string]bool, bool) {
	preset, exists := c.GetPreset(name)
	if !exists {
		return nil, false
	}
	selection := make(map[string]bool, len(c.definitions))
	for _, def := range c.definitions {
		selection[def.Key] = false
	}
	for _, key := range preset.ModuleKeys {
		selection[key] = true
	}
	return selection, true
}
