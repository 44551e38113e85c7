/**
 * 模型:配置会话模型
 * @author: sun977
 * @date: 2025.09.15
 * @description: 扫描配置会话数据模型，保存模块选择状态和各模块参数草稿
 * @func: ConfigureSession 结构体定义
 */
package model

import "time"

// ConfigureSession 扫描配置会话
// 一次"配置新扫描"流程的工作状态，提交成功或显式取消后重置为默认
type ConfigureSession struct {
	SessionID     string                            `json:"session_id"`     // 会话ID
	ScanModules   map[string]bool                   `json:"scan_modules"`   // 每个目录模块键 -> 启用标志
	ModuleConfigs map[string]map[string]interface{} `json:"module_configs"` // 模块键 -> 用户填写的参数对象
	CreatedAt     time.Time                         `json:"created_at"`     // 创建时间
	UpdatedAt     time.Time                         `json:"updated_at"`     // 最后修改时间
}

// EnabledCount 返回启用模块数量
func (s *ConfigureSession) EnabledCount() int {
	count := 0
	for _, enabled := range s.ScanModules {
		if enabled {
			count++
		}
	}
	return count
}

// Clone 深拷贝会话，存储层返回副本避免调用方共享内部状态
func (s *ConfigureSession) Clone() *ConfigureSession {
	if s == nil {
		return nil
	}
	clone := &ConfigureSession{
		SessionID:     s.SessionID,
		ScanModules:   make(map[string]bool, len(s.ScanModules)),
		ModuleConfigs: make(map[string]map[string]interface{}, len(s.ModuleConfigs)),
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
	for k, v := range s.ScanModules {
		clone.ScanModules[k] = v
	}
	for key, cfg := range s.ModuleConfigs {
		cfgCopy := make(map[string]interface{}, len(cfg))
		for f, v := range cfg {
			cfgCopy[f] = v
		}
		clone.ModuleConfigs[key] = cfgCopy
	}
	return clone
}
