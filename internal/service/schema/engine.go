/**
 * 服务:参数引擎
 * @author: sun977
 * @date: 2025.09.17
 * @description: 模块参数的校验、默认值填充和序列化引擎，支持条件字段的延迟求值
 * @func: Engine 结构体和 Resolve 方法
 */
package schema

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"neoconsole/internal/model"
)

// Engine 参数引擎
// 无状态纯计算，无网络和存储副作用，可被任意并发调用
type Engine struct{}

// NewEngine 创建参数引擎
func NewEngine() *Engine {
	return &Engine{}
}

// resolution 单个字段的解析结果
type resolution struct {
	active   bool        // 条件是否满足
	hasValue bool        // 是否有解析值（用户值或默认值）
	failed   bool        // 值转换失败（已记录错误，不再报必填）
	value    interface{} // 解析后的值
}

// Resolve 按模块定义解析用户填写的参数对象
// 返回完整默认填充后的参数对象，或全部字段校验错误（不止第一个）
// 对已解析结果再次调用返回相同对象（幂等）
func (e *Engine) Resolve(def *model.ScanModuleDefinition, values map[string]interface{}) (map[string]interface{}, model.ValidationErrors) {
	var errs model.ValidationErrors
	resolutions := make(map[string]*resolution, len(def.Parameters))
	resolving := make(map[string]bool)

	// 字段解析按条件依赖递归进行
	// 条件针对兄弟字段的解析值（用户值优先于默认值）延迟求值，
	// 目录构建时已拒绝循环依赖，这里的递归必然终止
	var resolveField func(field *model.ScanModuleConfigField) *resolution
	resolveField = func(field *model.ScanModuleConfigField) *resolution {
		if r, done := resolutions[field.FieldName]; done {
			return r
		}
		// 未经目录校验的定义可能带循环，按未激活处理避免死递归
		if resolving[field.FieldName] {
			return &resolution{active: false}
		}
		resolving[field.FieldName] = true
		defer delete(resolving, field.FieldName)

		r := &resolution{active: true}
		if field.Condition != nil {
			sibling, ok := def.GetField(field.Condition.Field)
			if !ok {
				// 目录构建时已拒绝，防御未知引用按未激活处理
				r.active = false
			} else {
				sr := resolveField(sibling)
				// 兄弟字段未激活或无值时条件不成立
				r.active = sr.active && sr.hasValue && conditionHolds(sr.value, field.Condition.Value)
			}
		}
		if !r.active {
			resolutions[field.FieldName] = r
			return r
		}

		// 用户值优先，缺省时填默认值
		raw, userProvided := values[field.FieldName]
		if !userProvided || raw == nil {
			if field.Default != nil {
				raw = field.Default
			} else {
				resolutions[field.FieldName] = r
				return r
			}
		}

		coerced, err := coerceValue(field, raw)
		if err != nil {
			errs = append(errs, model.NewValidationError(field.FieldName, err.Error()))
			r.failed = true
			resolutions[field.FieldName] = r
			return r
		}
		r.hasValue = true
		r.value = coerced
		resolutions[field.FieldName] = r
		return r
	}

	for i := range def.Parameters {
		resolveField(&def.Parameters[i])
	}

	// 必填检查：激活且非可选的字段必须有值
	// 未激活字段不参与校验，用户为其填写的值被忽略（不从调用方状态删除）
	for i := range def.Parameters {
		field := &def.Parameters[i]
		r := resolutions[field.FieldName]
		if r.active && !r.hasValue && !r.failed && !field.Optional {
			errs = append(errs, model.NewValidationError(field.FieldName, "required field is missing"))
		}
	}

	if len(errs) > 0 {
		return nil, errs
	}

	resolved := make(map[string]interface{})
	for i := range def.Parameters {
		field := &def.Parameters[i]
		if r := resolutions[field.FieldName]; r.active && r.hasValue {
			resolved[field.FieldName] = r.value
		}
	}
	return resolved, nil
}

// conditionHolds 判断兄弟字段解析值是否等于条件期望值
// 数字比较前统一为float64，避免int与float64的类型差异
func conditionHolds(actual, expected interface{}) bool {
	if af, aok := toFloat(actual); aok {
		if ef, eok := toFloat(expected); eok {
			return af == ef
		}
		return false
	}
	return actual == expected
}

// toFloat 尝试把值转为float64
func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}
	return 0, false
}

// coerceValue 按字段类型做类型转换
// 转换失败是校验错误，绝不静默回退为空值
func coerceValue(field *model.ScanModuleConfigField, raw interface{}) (interface{}, error) {
	switch field.Type {
	case model.FieldTypeString:
		s, ok := raw.(string)
		if !ok {
			return nil, fmt.Errorf("expected a string, got %T", raw)
		}
		return s, nil

	case model.FieldTypeNumber:
		if f, ok := toFloat(raw); ok {
			return f, nil
		}
		// 数字字段接受数字字符串，非法数字是校验错误
		if s, ok := raw.(string); ok {
			f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
			if err != nil {
				return nil, fmt.Errorf("invalid number: %q", s)
			}
			return f, nil
		}
		return nil, fmt.Errorf("expected a number, got %T", raw)

	case model.FieldTypeBoolean:
		b, ok := raw.(bool)
		if !ok {
			return nil, fmt.Errorf("expected a boolean, got %T", raw)
		}
		return b, nil

	case model.FieldTypeEnum:
		s, ok := raw.(string)
		if !ok {
			return nil, fmt.Errorf("expected a string, got %T", raw)
		}
		if !containsOption(field.Options, s) {
			return nil, fmt.Errorf("value %q is not one of the allowed options", s)
		}
		return s, nil

	case model.FieldTypeArrayString:
		return coerceStringArray(raw)

	case model.FieldTypeArrayEnum:
		items, err := coerceStringArray(raw)
		if err != nil {
			return nil, err
		}
		for _, item := range items {
			if !containsOption(field.Options, item) {
				return nil, fmt.Errorf("element %q is not one of the allowed options", item)
			}
		}
		return items, nil

	case model.FieldTypeJSONObject:
		return coerceJSONShape(raw, true)

	case model.FieldTypeJSONArray:
		return coerceJSONShape(raw, false)
	}
	return nil, fmt.Errorf("unsupported field type %q", field.Type)
}

// coerceStringArray 数组字段的统一转换
// 接受字符串数组，或逗号分隔的字符串（split/trim/drop-empty）
func coerceStringArray(raw interface{}) ([]string, error) {
	switch v := raw.(type) {
	case []string:
		result := make([]string, len(v))
		copy(result, v)
		return result, nil
	case []interface{}:
		result := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("expected string elements, got %T", item)
			}
			result = append(result, s)
		}
		return result, nil
	case string:
		parts := strings.Split(v, ",")
		result := make([]string, 0, len(parts))
		for _, part := range parts {
			trimmed := strings.TrimSpace(part)
			if trimmed != "" {
				result = append(result, trimmed)
			}
		}
		return result, nil
	}
	return nil, fmt.Errorf("expected an array or a comma-delimited string, got %T", raw)
}

// coerceJSONShape JSON字段只接受形状匹配的良构结构
// 字符串输入按JSON解析，形状不匹配或解析失败是校验错误，不回退为{}或[]
func coerceJSONShape(raw interface{}, wantObject bool) (interface{}, error) {
	switch v := raw.(type) {
	case map[string]interface{}:
		if !wantObject {
			return nil, fmt.Errorf("expected a JSON array, got an object")
		}
		return v, nil
	case []interface{}:
		if wantObject {
			return nil, fmt.Errorf("expected a JSON object, got an array")
		}
		return v, nil
	case string:
		var parsed interface{}
		if err := json.Unmarshal([]byte(v), &parsed); err != nil {
			return nil, fmt.Errorf("malformed JSON: %v", err)
		}
		switch p := parsed.(type) {
		case map[string]interface{}:
			if !wantObject {
				return nil, fmt.Errorf("expected a JSON array, got an object")
			}
			return p, nil
		case []interface{}:
			if wantObject {
				return nil, fmt.Errorf("expected a JSON object, got an array")
			}
			return p, nil
		}
		return nil, fmt.Errorf("expected a JSON %s", shapeName(wantObject))
	}
	return nil, fmt.Errorf("expected a JSON %s, got %T", shapeName(wantObject), raw)
}

func shapeName(wantObject bool) string {
	if wantObject {
		return "object"
	}
	return "array"
}

// containsOption 判断值是否在允许列表中
func containsOption(options []string, value string) bool {
	for _, opt := range options {
		if opt == value {
			return true
		}
	}
	return false
}
