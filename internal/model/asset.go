/**
 * 模型:资产模型
 * @author: sun977
 * @date: 2025.09.15
 * @description: 资产数据模型，资产由外部引擎管理，本服务只读
 * @func: Asset 结构体和 AssetType 枚举定义
 */
package model

import "time"

// AssetType 资产类型枚举
// 资产类型决定扫描请求构建器填充哪个目标字段
type AssetType string

const (
	AssetTypeIP             AssetType = "IP"             // IP地址
	AssetTypeDomain         AssetType = "Domain"         // 域名
	AssetTypeWebApp         AssetType = "WebApp"         // Web应用
	AssetTypeCodeRepo       AssetType = "CodeRepo"       // 代码仓库
	AssetTypeCloudAccount   AssetType = "CloudAccount"   // 云账号
	AssetTypeNetworkSegment AssetType = "NetworkSegment" // 网段
)

// Asset 资产实体（远端实体，本服务只读）
type Asset struct {
	AssetID     string    `json:"asset_id"`              // 资产ID
	Type        AssetType `json:"type"`                  // 资产类型
	Value       string    `json:"value"`                 // 资产值（IP地址、域名、URL等）
	Name        string    `json:"name,omitempty"`        // 资产名称
	Description string    `json:"description,omitempty"` // 资产描述
	Tags        []string  `json:"tags,omitempty"`        // 资产标签
	CreatedAt   time.Time `json:"created_at,omitempty"`  // 创建时间
	UpdatedAt   time.Time `json:"updated_at,omitempty"`  // 更新时间
}
