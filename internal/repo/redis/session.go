/**
 * 仓库层:配置会话数据访问
 * @author: sun977
 * @date: 2025.09.18
 * @description: 配置会话数据交互层(Redis存储,适合多实例部署)
 * @func: 单纯数据访问,不应该包含业务逻辑
 */
package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"neoconsole/internal/model"

	"github.com/go-redis/redis/v8"
)

// SessionRepository Redis配置会话存储库
// 实现 session.Store 接口，TTL由Redis过期机制承担
type SessionRepository struct {
	client    *redis.Client
	keyPrefix string
}

// NewSessionRepository 创建配置会话存储库实例
func NewSessionRepository(client *redis.Client, keyPrefix string) *SessionRepository {
	if keyPrefix == "" {
		keyPrefix = "console:session"
	}
	return &SessionRepository{
		client:    client,
		keyPrefix: keyPrefix,
	}
}

// getSessionKey 生成会话键[KEY:console:session:{sessionID}]
func (r *SessionRepository) getSessionKey(sessionID string) string {
	return fmt.Sprintf("%s:%s", r.keyPrefix, sessionID)
}

// Save 保存配置会话并设置过期时间
func (r *SessionRepository) Save(ctx context.Context, session *model.ConfigureSession, ttl time.Duration) error {
	// 序列化会话数据
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session data: %w", err)
	}

	// 生成会话键
	sessionKey := r.getSessionKey(session.SessionID)

	// 存储到Redis
	err = r.client.Set(ctx, sessionKey, data, ttl).Err()
	if err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}

	return nil
}

// Get 获取配置会话信息
func (r *SessionRepository) Get(ctx context.Context, sessionID string) (*model.ConfigureSession, error) {
	// 生成会话键
	sessionKey := r.getSessionKey(sessionID)

	// 从Redis获取数据
	data, err := r.client.Get(ctx, sessionKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, model.ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	// 反序列化会话数据
	var session model.ConfigureSession
	err = json.Unmarshal([]byte(data), &session)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal session data: %w", err)
	}

	return &session, nil
}

// Delete 删除配置会话
func (r *SessionRepository) Delete(ctx context.Context, sessionID string) error {
	// 生成会话键
	sessionKey := r.getSessionKey(sessionID)

	// 从Redis删除
	err := r.client.Del(ctx, sessionKey).Err()
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	return nil
}

// UpdateExpiry 更新会话过期时间
// 会话被读写时续期，避免配置过程中过期
func (r *SessionRepository) UpdateExpiry(ctx context.Context, sessionID string, ttl time.Duration) error {
	sessionKey := r.getSessionKey(sessionID)

	err := r.client.Expire(ctx, sessionKey, ttl).Err()
	if err != nil {
		return fmt.Errorf("failed to update session expiry: %w", err)
	}

	return nil
}
