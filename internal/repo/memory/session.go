/**
 * 仓库层:配置会话数据访问
 * @author: sun977
 * @date: 2025.09.18
 * @description: 配置会话数据交互层(内存存储,适合单实例部署)
 * @func: 单纯数据访问,不应该包含业务逻辑
 * @note: 和 internal/repo/redis/session.go 保持一致(可在配置文件中配置,二选一)
 */
package memory

import (
	"context"
	"sync"
	"time"

	"neoconsole/internal/model"
)

// SessionRepository 内存配置会话存储库
// 实现 session.Store 接口
type SessionRepository struct {
	sessions map[string]*sessionEntry
	mutex    sync.RWMutex
}

// sessionEntry 会话条目
type sessionEntry struct {
	data       *model.ConfigureSession
	expiration time.Time
}

// NewSessionRepository 创建内存配置会话存储库实例
func NewSessionRepository() *SessionRepository {
	repo := &SessionRepository{
		sessions: make(map[string]*sessionEntry),
	}

	// 启动过期清理goroutine
	go repo.cleanupExpired()

	return repo
}

// cleanupExpired 周期清理过期会话
func (r *SessionRepository) cleanupExpired() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		now := time.Now()
		r.mutex.Lock()
		for id, entry := range r.sessions {
			if now.After(entry.expiration) {
				delete(r.sessions, id)
			}
		}
		r.mutex.Unlock()
	}
}

// Save 保存配置会话并设置过期时间
// 存储副本，调用方后续修改不影响存储内容
func (r *SessionRepository) Save(ctx context.Context, session *model.ConfigureSession, ttl time.Duration) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	r.sessions[session.SessionID] = &sessionEntry{
		data:       session.Clone(),
		expiration: time.Now().Add(ttl),
	}
	return nil
}

// Get 获取配置会话信息
// 不存在或已过期返回 model.ErrSessionNotFound
func (r *SessionRepository) Get(ctx context.Context, sessionID string) (*model.ConfigureSession, error) {
	r.mutex.RLock()
	entry, exists := r.sessions[sessionID]
	r.mutex.RUnlock()

	if !exists {
		return nil, model.ErrSessionNotFound
	}
	if time.Now().After(entry.expiration) {
		// 过期条目由清理goroutine回收，这里直接按不存在处理
		return nil, model.ErrSessionNotFound
	}
	return entry.data.Clone(), nil
}

// Delete 删除配置会话
func (r *SessionRepository) Delete(ctx context.Context, sessionID string) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	delete(r.sessions, sessionID)
	return nil
}

// UpdateExpiry 更新会话过期时间
// 会话被读取时滑动续期，避免配置过程中过期
func (r *SessionRepository) UpdateExpiry(ctx context.Context, sessionID string, ttl time.Duration) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if entry, exists := r.sessions[sessionID]; exists {
		entry.expiration = time.Now().Add(ttl)
	}
	return nil
}
