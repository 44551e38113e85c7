package schema

import (
	"testing"

	"neoconsole/internal/catalog"
	"neoconsole/internal/model"

	"github.com/stretchr/testify/assert"
)

func networkScanDef(t *testing.T) model.ScanModuleDefinition {
	t.Helper()
	c, err := catalog.New()
	if err != nil {
		t.Fatalf("build catalog failed: %v", err)
	}
	def, ok := c.GetByKey("network_scan")
	if !ok {
		t.Fatal("network_scan missing from catalog")
	}
	return def
}

func TestResolveDefaultFill(t *testing.T) {
	def := networkScanDef(t)
	engine := NewEngine()

	// 空输入：激活字段的默认值全部填充
	resolved, errs := engine.Resolve(&def, map[string]interface{}{})
	assert.Empty(t, errs)
	assert.Equal(t, "SYN", resolved["scan_type"])
	assert.Equal(t, "1-65535", resolved["port_range"])
	assert.Equal(t, false, resolved["enable_script_scanning"])
	// 条件不成立（enable_script_scanning=false），script_categories不出现
	assert.NotContains(t, resolved, "script_categories")
}

func TestConditionalFieldActivation(t *testing.T) {
	def := networkScanDef(t)
	engine := NewEngine()

	// 条件成立时字段激活，逗号分隔字符串split/trim
	resolved, errs := engine.Resolve(&def, map[string]interface{}{
		"scan_type":              "SYN",
		"enable_script_scanning": true,
		"script_categories":      "vuln, default",
	})
	assert.Empty(t, errs)
	assert.Equal(t, []string{"vuln", "default"}, resolved["script_categories"])

	// 条件不成立时用户填写的值被忽略，不产生校验错误
	resolved, errs = engine.Resolve(&def, map[string]interface{}{
		"enable_script_scanning": false,
		"script_categories":      "not_even_a_valid_option",
	})
	assert.Empty(t, errs)
	assert.NotContains(t, resolved, "script_categories")
}

func TestConditionEvaluatedAgainstResolvedSibling(t *testing.T) {
	// 兄弟字段无用户值时条件针对其默认值求值
	def := model.ScanModuleDefinition{
		Key: "m1", Name: "M1", Category: "Test",
		Parameters: []model.ScanModuleConfigField{
			{FieldName: "mode", Type: model.FieldTypeEnum, Optional: true, Default: "advanced", Options: []string{"basic", "advanced"}},
			{
				FieldName: "advanced_option",
				Type:      model.FieldTypeString,
				Optional:  true,
				Default:   "tuned",
				Condition: &model.FieldCondition{Field: "mode", Value: "advanced"},
			},
		},
	}
	engine := NewEngine()

	resolved, errs := engine.Resolve(&def, map[string]interface{}{})
	assert.Empty(t, errs)
	assert.Equal(t, "tuned", resolved["advanced_option"])

	// 用户值覆盖默认值后条件不再成立
	resolved, errs = engine.Resolve(&def, map[string]interface{}{"mode": "basic"})
	assert.Empty(t, errs)
	assert.NotContains(t, resolved, "advanced_option")
}

func TestConditionChain(t *testing.T) {
	// 条件链：c激活b，b激活a；关掉链头，整条链失效
	def := model.ScanModuleDefinition{
		Key: "m1", Name: "M1", Category: "Test",
		Parameters: []model.ScanModuleConfigField{
			{FieldName: "c", Type: model.FieldTypeBoolean, Optional: true, Default: true},
			{FieldName: "b", Type: model.FieldTypeBoolean, Optional: true, Default: true,
				Condition: &model.FieldCondition{Field: "c", Value: true}},
			{FieldName: "a", Type: model.FieldTypeString, Optional: true, Default: "on",
				Condition: &model.FieldCondition{Field: "b", Value: true}},
		},
	}
	engine := NewEngine()

	resolved, errs := engine.Resolve(&def, map[string]interface{}{})
	assert.Empty(t, errs)
	assert.Equal(t, "on", resolved["a"])

	resolved, errs = engine.Resolve(&def, map[string]interface{}{"c": false})
	assert.Empty(t, errs)
	assert.NotContains(t, resolved, "b")
	assert.NotContains(t, resolved, "a")
}

func TestRequiredFieldErrors(t *testing.T) {
	// 无条件的必填字段永远必填
	def := model.ScanModuleDefinition{
		Key: "m1", Name: "M1", Category: "Test",
		Parameters: []model.ScanModuleConfigField{
			{FieldName: "target_url", Type: model.FieldTypeString, Optional: false},
			{FieldName: "depth", Type: model.FieldTypeNumber, Optional: false},
		},
	}
	engine := NewEngine()

	// 一次性收集全部错误，不止第一个
	resolved, errs := engine.Resolve(&def, map[string]interface{}{})
	assert.Nil(t, resolved)
	assert.Len(t, errs, 2)
	fields := []string{errs[0].Field, errs[1].Field}
	assert.Contains(t, fields, "target_url")
	assert.Contains(t, fields, "depth")
}

func TestConditionalRequiredField(t *testing.T) {
	// 带条件的必填字段只在条件成立时必填
	def := model.ScanModuleDefinition{
		Key: "m1", Name: "M1", Category: "Test",
		Parameters: []model.ScanModuleConfigField{
			{FieldName: "use_custom", Type: model.FieldTypeBoolean, Optional: true, Default: false},
			{
				FieldName: "custom_url",
				Type:      model.FieldTypeString,
				Optional:  false,
				Condition: &model.FieldCondition{Field: "use_custom", Value: true},
			},
		},
	}
	engine := NewEngine()

	// 条件不成立：不必填
	_, errs := engine.Resolve(&def, map[string]interface{}{})
	assert.Empty(t, errs)

	// 条件成立且无值：必填错误指名字段
	resolved, errs := engine.Resolve(&def, map[string]interface{}{"use_custom": true})
	assert.Nil(t, resolved)
	assert.Len(t, errs, 1)
	assert.Equal(t, "custom_url", errs[0].Field)
}

func TestNumberCoercion(t *testing.T) {
	def := model.ScanModuleDefinition{
		Key: "m1", Name: "M1", Category: "Test",
		Parameters: []model.ScanModuleConfigField{
			{FieldName: "depth", Type: model.FieldTypeNumber, Optional: true},
		},
	}
	engine := NewEngine()

	// 数字字符串可解析
	resolved, errs := engine.Resolve(&def, map[string]interface{}{"depth": "5"})
	assert.Empty(t, errs)
	assert.Equal(t, float64(5), resolved["depth"])

	// 非法数字是校验错误
	resolved, errs = engine.Resolve(&def, map[string]interface{}{"depth": "five"})
	assert.Nil(t, resolved)
	assert.Len(t, errs, 1)
	assert.Equal(t, "depth", errs[0].Field)
}

func TestEnumRejectsUnknownValue(t *testing.T) {
	def := networkScanDef(t)
	engine := NewEngine()

	resolved, errs := engine.Resolve(&def, map[string]interface{}{"scan_type": "XMAS"})
	assert.Nil(t, resolved)
	assert.Len(t, errs, 1)
	assert.Equal(t, "scan_type", errs[0].Field)
}

func TestArrayEnumRejectsUnknownElement(t *testing.T) {
	def := networkScanDef(t)
	engine := NewEngine()

	_, errs := engine.Resolve(&def, map[string]interface{}{
		"enable_script_scanning": true,
		"script_categories":      "vuln, bogus_category",
	})
	assert.Len(t, errs, 1)
	assert.Equal(t, "script_categories", errs[0].Field)
}

func TestJSONFieldsRejectMalformedInput(t *testing.T) {
	def := model.ScanModuleDefinition{
		Key: "m1", Name: "M1", Category: "Test",
		Parameters: []model.ScanModuleConfigField{
			{FieldName: "patterns", Type: model.FieldTypeJSONObject, Optional: true},
			{FieldName: "pocs", Type: model.FieldTypeJSONArray, Optional: true},
		},
	}
	engine := NewEngine()

	// 良构输入按形状接受
	resolved, errs := engine.Resolve(&def, map[string]interface{}{
		"patterns": `{"token": "tok_[a-z]+"}`,
		"pocs":     []interface{}{map[string]interface{}{"id": "poc-1"}},
	})
	assert.Empty(t, errs)
	assert.Equal(t, map[string]interface{}{"token": "tok_[a-z]+"}, resolved["patterns"])

	// 格式错误是校验错误，不静默回退为{}
	resolved, errs = engine.Resolve(&def, map[string]interface{}{"patterns": "{not json"})
	assert.Nil(t, resolved)
	assert.Len(t, errs, 1)

	// 形状不匹配：对象字段收到数组
	_, errs = engine.Resolve(&def, map[string]interface{}{"patterns": `[1,2]`})
	assert.Len(t, errs, 1)
}

func TestResolveIdempotent(t *testing.T) {
	def := networkScanDef(t)
	engine := NewEngine()

	first, errs := engine.Resolve(&def, map[string]interface{}{
		"scan_type":              "SYN",
		"enable_script_scanning": true,
		"script_categories":      "vuln, default",
	})
	assert.Empty(t, errs)

	// 已解析对象再次解析得到相同结果，无新错误
	second, errs := engine.Resolve(&def, first)
	assert.Empty(t, errs)
	assert.Equal(t, first, second)
}

func TestResolveDoesNotMutateInput(t *testing.T) {
	def := networkScanDef(t)
	engine := NewEngine()

	input := map[string]interface{}{"enable_script_scanning": false, "script_categories": "vuln"}
	_, errs := engine.Resolve(&def, input)
	assert.Empty(t, errs)
	// 未激活字段的用户输入保留在调用方状态中，不被删除
	assert.Equal(t, "vuln", input["script_categories"])
	assert.Len(t, input, 2)
}
