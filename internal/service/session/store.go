/**
 * 服务:会话存储接口
 * @author: sun977
 * @date: 2025.09.18
 * @description: 配置会话存储接口，内存和Redis两种实现按配置二选一
 * @func: Store 接口定义
 */
package session

import (
	"context"
	"time"

	"neoconsole/internal/model"
)

// Store 配置会话存储接口
// 内存实现(internal/repo/memory)适合单实例，Redis实现(internal/repo/redis)适合多实例部署
type Store interface {
	// Save 保存会话并设置过期时间
	Save(ctx context.Context, session *model.ConfigureSession, ttl time.Duration) error
	// Get 按ID读取会话，不存在或已过期返回 model.ErrSessionNotFound
	Get(ctx context.Context, sessionID string) (*model.ConfigureSession, error)
	// UpdateExpiry 重置会话过期时间，不存在不算错误
	UpdateExpiry(ctx context.Context, sessionID string, ttl time.Duration) error
	// Delete 删除会话，不存在不算错误
	Delete(ctx context.Context, sessionID string) error
}
