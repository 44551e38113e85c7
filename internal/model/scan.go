/**
 * 模型:扫描模型
 * @author: sun977
 * @date: 2025.09.15
 * @description: 扫描实体和扫描请求数据模型，扫描状态由引擎驱动，本服务只观察
 * @func: Scan、ProgressUpdate、ScanRequest 结构体和 ScanStatus 枚举定义
 */
package model

import (
	"encoding/json"
	"time"
)

// ScanStatus 扫描状态枚举
// 状态集合与引擎返回值完全一致，本服务不发明中间状态
type ScanStatus string

const (
	ScanStatusPending   ScanStatus = "pending"   // 等待执行
	ScanStatusRunning   ScanStatus = "running"   // 执行中
	ScanStatusCompleted ScanStatus = "completed" // 已完成
	ScanStatusFailed    ScanStatus = "failed"    // 失败
	ScanStatusCancelled ScanStatus = "cancelled" // 已取消
)

// IsTerminal 判断是否为终态（终态后停止轮询）
func (s ScanStatus) IsTerminal() bool {
	switch s {
	case ScanStatusCompleted, ScanStatusFailed, ScanStatusCancelled:
		return true
	}
	return false
}

// IsValid 判断是否为已知状态值
func (s ScanStatus) IsValid() bool {
	switch s {
	case ScanStatusPending, ScanStatusRunning, ScanStatusCompleted, ScanStatusFailed, ScanStatusCancelled:
		return true
	}
	return false
}

// ProgressUpdate 进度更新条目
// 服务端权威的追加序列，客户端按位置渲染，不做合并和去重
type ProgressUpdate struct {
	Message   string    `json:"message"`   // 进度消息
	Timestamp time.Time `json:"timestamp"` // 消息时间
}

// Scan 扫描实体（远端实体，本服务只读）
type Scan struct {
	ScanID                string           `json:"scan_id"`                    // 扫描ID
	AssetID               string           `json:"asset_id"`                   // 目标资产ID
	ScanName              string           `json:"scan_name"`                  // 扫描名称
	Status                ScanStatus       `json:"status"`                     // 扫描状态
	Progress              int              `json:"progress"`                   // 进度百分比 0-100
	ProgressUpdates       []ProgressUpdate `json:"progress_updates,omitempty"` // 进度更新序列
	TotalFindingsCount    int              `json:"total_findings_count"`       // 发现总数
	TotalAttackPathsCount int              `json:"total_attack_paths_count"`   // 攻击路径总数
	RawResultsJSON        json.RawMessage  `json:"raw_results_json,omitempty"` // 原始结果（终态后才返回）
	CreatedAt             time.Time        `json:"created_at,omitempty"`       // 创建时间
	StartedAt             *time.Time       `json:"started_at,omitempty"`       // 开始时间
	FinishedAt            *time.Time       `json:"finished_at,omitempty"`      // 结束时间
}

// ScanRequest 扫描请求（线上实体）
// scan_parameters 是扁平对象：目标字段 + 每模块enable_<key>标志 + 可选<key>_params对象
type ScanRequest struct {
	AssetID        string                 `json:"asset_id"`        // 资产ID
	ScanName       string                 `json:"scan_name"`       // 扫描名称
	ScanParameters map[string]interface{} `json:"scan_parameters"` // 扫描参数对象
}

// SubmitScanResult 扫描提交结果
// 引擎提交成功后至少返回扫描ID用于后续跟踪
type SubmitScanResult struct {
	ScanID string `json:"scan_id"` // 新建扫描ID
}
