/**
 * 测试:内存配置会话存储库
 * @author: sun977
 * @date: 2026.08.29
 * @description: 会话的保存、读取、过期与续期
 */
package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"neoconsole/internal/model"
)

func testSession(id string) *model.ConfigureSession {
	now := time.Now()
	return &model.ConfigureSession{
		SessionID:     id,
		ScanModules:   map[string]bool{"network_scan": true},
		ModuleConfigs: make(map[string]map[string]interface{}),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func TestSaveAndGet(t *testing.T) {
	repo := NewSessionRepository()
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, testSession("s1"), time.Minute))

	got, err := repo.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "s1", got.SessionID)
	assert.True(t, got.ScanModules["network_scan"])
}

// 存储的是副本，调用方后续修改不影响存储内容
func TestSaveStoresCopy(t *testing.T) {
	repo := NewSessionRepository()
	ctx := context.Background()

	session := testSession("s1")
	require.NoError(t, repo.Save(ctx, session, time.Minute))

	session.ScanModules["network_scan"] = false

	got, err := repo.Get(ctx, "s1")
	require.NoError(t, err)
	assert.True(t, got.ScanModules["network_scan"])
}

func TestGetNotFound(t *testing.T) {
	repo := NewSessionRepository()

	_, err := repo.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, model.ErrSessionNotFound)
}

func TestGetExpired(t *testing.T) {
	repo := NewSessionRepository()
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, testSession("s1"), 10*time.Millisecond))
	time.Sleep(30 * time.Millisecond)

	_, err := repo.Get(ctx, "s1")
	assert.ErrorIs(t, err, model.ErrSessionNotFound)
}

// 续期把过期时间重置为完整TTL，会话在原TTL过后仍可读取
func TestUpdateExpiryRenewsSession(t *testing.T) {
	repo := NewSessionRepository()
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, testSession("s1"), 30*time.Millisecond))
	require.NoError(t, repo.UpdateExpiry(ctx, "s1", time.Minute))

	time.Sleep(60 * time.Millisecond)

	got, err := repo.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "s1", got.SessionID)
}

// 续期不存在的会话不算错误
func TestUpdateExpiryMissingSession(t *testing.T) {
	repo := NewSessionRepository()
	assert.NoError(t, repo.UpdateExpiry(context.Background(), "missing", time.Minute))
}

func TestDelete(t *testing.T) {
	repo := NewSessionRepository()
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, testSession("s1"), time.Minute))
	require.NoError(t, repo.Delete(ctx, "s1"))

	_, err := repo.Get(ctx, "s1")
	assert.ErrorIs(t, err, model.ErrSessionNotFound)

	assert.NoError(t, repo.Delete(ctx, "missing"))
}
