/*
 * @author: sun977
 * @date: 2025.09.17
 * @description: 通用的工具包
 * @func:
 */

package utils

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// ContextKey 类型用于标准上下文键的定义，避免使用裸字符串造成键冲突
type ContextKey string

// ContextKeyClientIP 标准上下文中存储客户端IP的统一键
const ContextKeyClientIP ContextKey = "client_ip"

// ContextKeyRequestID 标准上下文中存储请求追踪ID的统一键
const ContextKeyRequestID ContextKey = "request_id"

// GenerateUUID 生成UUIDv4字符串
// 用于配置会话ID和请求追踪ID
func GenerateUUID() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("failed to generate uuid: %w", err)
	}
	return id.String(), nil
}

// GetClientIPFromContext 从标准上下文读取客户端IP（统一键）
// 说明：
// - 使用 ContextKeyClientIP 作为唯一键，保证读写一致，跨包可用
// - 如果不存在或类型不匹配，返回空字符串
func GetClientIPFromContext(ctx context.Context) string {
	v := ctx.Value(ContextKeyClientIP)
	if ip, ok := v.(string); ok {
		return ip
	}
	return ""
}

// GetRequestIDFromContext 从标准上下文读取请求追踪ID
func GetRequestIDFromContext(ctx context.Context) string {
	v := ctx.Value(ContextKeyRequestID)
	if id, ok := v.(string); ok {
		return id
	}
	return ""
}
