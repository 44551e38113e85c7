package catalog

import (
	"testing"

	"neoconsole/internal/model"

	"github.com/stretchr/testify/assert"
)

// newTestCatalog 构建内置目录，定义错误直接失败
func newTestCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := New()
	if err != nil {
		t.Fatalf("build builtin catalog failed: %v", err)
	}
	return c
}

func TestBuiltinCatalog(t *testing.T) {
	c := newTestCatalog(t)

	// 内置目录至少30个模块
	assert.GreaterOrEqual(t, c.Size(), 30)

	// 核心模块必须存在
	for _, key := range []string{"network_scan", "web_application_scan", "vulnerability_check"} {
		_, ok := c.GetByKey(key)
		assert.True(t, ok, "core module %s missing", key)
	}
}

func TestGetByKey(t *testing.T) {
	c := newTestCatalog(t)

	def, ok := c.GetByKey("network_scan")
	assert.True(t, ok)
	assert.Equal(t, "network_scan", def.Key)
	assert.Equal(t, "Network", def.Category)

	// 未知键返回 ok=false，不报错不panic
	_, ok = c.GetByKey("no_such_module")
	assert.False(t, ok)
}

func TestGetByCategory(t *testing.T) {
	c := newTestCatalog(t)

	network := c.GetByCategory("Network")
	assert.NotEmpty(t, network)
	for _, def := range network {
		assert.Equal(t, "Network", def.Category)
	}
	// 保持目录内顺序，network_scan 是第一个 Network 模块
	assert.Equal(t, "network_scan", network[0].Key)

	// 未知分类返回空列表
	assert.Empty(t, c.GetByCategory("NoSuchCategory"))
}

func TestListCategories(t *testing.T) {
	c := newTestCatalog(t)

	categories := c.ListCategories()
	// 首次出现顺序，去重
	assert.Equal(t, []string{"Network", "Web", "Vulnerability", "Credentials", "OSINT", "Identity", "Code", "Cloud"}, categories)

	seen := make(map[string]bool)
	for _, cat := range categories {
		assert.False(t, seen[cat], "duplicate category %s", cat)
		seen[cat] = true
	}
}

func TestDefaultSelection(t *testing.T) {
	c := newTestCatalog(t)

	selection := c.DefaultSelection()
	// 每个目录键都有条目，不多不少
	assert.Len(t, selection, c.Size())

	// 核心模块默认启用，其余禁用
	enabled := 0
	for key, on := range selection {
		if on {
			enabled++
			assert.Contains(t, []string{"network_scan", "web_application_scan", "vulnerability_check"}, key)
		}
	}
	assert.Equal(t, 3, enabled)
}

func TestPresetSelection(t *testing.T) {
	c := newTestCatalog(t)

	selection, ok := c.PresetSelection("Quick Security Assessment")
	assert.True(t, ok)
	// 展开后的预设覆盖全部目录键
	assert.Len(t, selection, c.Size())
	assert.True(t, selection["network_scan"])
	assert.True(t, selection["host_discovery"])
	// allow-list：预设未包含的键为false
	assert.False(t, selection["active_directory_enumeration"])

	_, ok = c.PresetSelection("No Such Preset")
	assert.False(t, ok)
}

func TestBuiltinPresetsValid(t *testing.T) {
	c := newTestCatalog(t)

	presets := c.ListPresets()
	assert.Len(t, presets, 3)
	// 每个预设引用的模块键都必须在目录中
	for _, preset := range presets {
		for _, key := range preset.ModuleKeys {
			_, ok := c.GetByKey(key)
			assert.True(t, ok, "preset %s references unknown module %s", preset.Name, key)
		}
	}
}

func TestDuplicateModuleKeyRejected(t *testing.T) {
	defs := []model.ScanModuleDefinition{
		{Key: "m1", Name: "M1", Category: "Test"},
		{Key: "m1", Name: "M1 again", Category: "Test"},
	}
	_, err := newCatalog(defs, nil, nil)
	assert.ErrorIs(t, err, model.ErrDuplicateModuleKey)
}

func TestEnumWithoutOptionsRejected(t *testing.T) {
	defs := []model.ScanModuleDefinition{
		{
			Key: "m1", Name: "M1", Category: "Test",
			Parameters: []model.ScanModuleConfigField{
				{FieldName: "mode", Type: model.FieldTypeEnum}, // 缺少options
			},
		},
	}
	_, err := newCatalog(defs, nil, nil)
	assert.ErrorIs(t, err, model.ErrEnumWithoutOptions)
}

func TestUnknownConditionSiblingRejected(t *testing.T) {
	defs := []model.ScanModuleDefinition{
		{
			Key: "m1", Name: "M1", Category: "Test",
			Parameters: []model.ScanModuleConfigField{
				{
					FieldName: "child",
					Type:      model.FieldTypeString,
					Condition: &model.FieldCondition{Field: "missing_parent", Value: true},
				},
			},
		},
	}
	_, err := newCatalog(defs, nil, nil)
	assert.ErrorIs(t, err, model.ErrUnknownConditionRef)
}

func TestConditionCycleRejected(t *testing.T) {
	// a依赖b，b依赖a，构成循环
	defs := []model.ScanModuleDefinition{
		{
			Key: "m1", Name: "M1", Category: "Test",
			Parameters: []model.ScanModuleConfigField{
				{
					FieldName: "a",
					Type:      model.FieldTypeString,
					Condition: &model.FieldCondition{Field: "b", Value: "x"},
				},
				{
					FieldName: "b",
					Type:      model.FieldTypeString,
					Condition: &model.FieldCondition{Field: "a", Value: "y"},
				},
			},
		},
	}
	_, err := newCatalog(defs, nil, nil)
	assert.ErrorIs(t, err, model.ErrConditionCycle)
}

func TestConditionChainAllowed(t *testing.T) {
	// a -> b -> c 的条件链合法，只有循环才拒绝
	defs := []model.ScanModuleDefinition{
		{
			Key: "m1", Name: "M1", Category: "Test",
			Parameters: []model.ScanModuleConfigField{
				{FieldName: "c", Type: model.FieldTypeBoolean, Optional: true, Default: true},
				{
					FieldName: "b",
					Type:      model.FieldTypeBoolean,
					Optional:  true,
					Default:   true,
					Condition: &model.FieldCondition{Field: "c", Value: true},
				},
				{
					FieldName: "a",
					Type:      model.FieldTypeString,
					Optional:  true,
					Condition: &model.FieldCondition{Field: "b", Value: true},
				},
			},
		},
	}
	_, err := newCatalog(defs, nil, nil)
	assert.NoError(t, err)
}

func TestSelfReferencingConditionRejected(t *testing.T) {
	defs := []model.ScanModuleDefinition{
		{
			Key: "m1", Name: "M1", Category: "Test",
			Parameters: []model.ScanModuleConfigField{
				{
					FieldName: "a",
					Type:      model.FieldTypeString,
					Condition: &model.FieldCondition{Field: "a", Value: "x"},
				},
			},
		},
	}
	_, err := newCatalog(defs, nil, nil)
	assert.ErrorIs(t, err, model.ErrConditionCycle)
}

func TestPresetUnknownModuleRejected(t *testing.T) {
	defs := []model.ScanModuleDefinition{
		{Key: "m1", Name: "M1", Category: "Test"},
	}
	presets := []model.ModulePreset{
		{Name: "Bad Preset", ModuleKeys: []string{"m1", "ghost_module"}},
	}
	_, err := newCatalog(defs, presets, nil)
	assert.ErrorIs(t, err, model.ErrPresetUnknownModule)
}
