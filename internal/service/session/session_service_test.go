package session

import (
	"context"
	"testing"
	"time"

	"neoconsole/internal/catalog"
	"neoconsole/internal/model"
	"neoconsole/internal/repo/memory"
	"neoconsole/internal/service/schema"

	"github.com/stretchr/testify/assert"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	cat, err := catalog.New()
	if err != nil {
		t.Fatalf("build catalog failed: %v", err)
	}
	return NewService(cat, schema.NewEngine(), memory.NewSessionRepository(), 30*time.Minute)
}

func TestCreateSessionDefaults(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	session, err := svc.CreateSession(ctx)
	assert.NoError(t, err)
	assert.NotEmpty(t, session.SessionID)

	// 默认状态：核心三模块启用
	assert.True(t, session.ScanModules["network_scan"])
	assert.True(t, session.ScanModules["web_application_scan"])
	assert.True(t, session.ScanModules["vulnerability_check"])
	assert.Equal(t, 3, session.EnabledCount())
	assert.Empty(t, session.ModuleConfigs)

	// 会话可回读
	loaded, err := svc.GetSession(ctx, session.SessionID)
	assert.NoError(t, err)
	assert.Equal(t, session.ScanModules, loaded.ScanModules)
}

// 读取会话时滑动续期，持续被访问的会话不会在配置过程中过期
func TestGetSessionRenewsExpiry(t *testing.T) {
	cat, err := catalog.New()
	if err != nil {
		t.Fatalf("build catalog failed: %v", err)
	}
	svc := NewService(cat, schema.NewEngine(), memory.NewSessionRepository(), 40*time.Millisecond)
	ctx := context.Background()

	session, err := svc.CreateSession(ctx)
	assert.NoError(t, err)

	// 每次读取都早于TTL，总访问时长超过单个TTL
	for i := 0; i < 5; i++ {
		time.Sleep(15 * time.Millisecond)
		_, err := svc.GetSession(ctx, session.SessionID)
		assert.NoError(t, err)
	}

	// 停止访问后会话按TTL过期
	time.Sleep(80 * time.Millisecond)
	_, err = svc.GetSession(ctx, session.SessionID)
	assert.ErrorIs(t, err, model.ErrSessionNotFound)
}

func TestGetSessionNotFound(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.GetSession(context.Background(), "no-such-session")
	assert.ErrorIs(t, err, model.ErrSessionNotFound)
}

func TestToggleModule(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	session, _ := svc.CreateSession(ctx)

	// 翻转单个标志，其余不变
	updated, err := svc.ToggleModule(ctx, session.SessionID, "subdomain_enumeration")
	assert.NoError(t, err)
	assert.True(t, updated.ScanModules["subdomain_enumeration"])
	assert.Equal(t, 4, updated.EnabledCount())
	assert.True(t, updated.ScanModules["network_scan"])

	// 再次翻转恢复
	updated, err = svc.ToggleModule(ctx, session.SessionID, "subdomain_enumeration")
	assert.NoError(t, err)
	assert.False(t, updated.ScanModules["subdomain_enumeration"])

	// 未知模块键报错，会话不变
	_, err = svc.ToggleModule(ctx, session.SessionID, "ghost_module")
	assert.ErrorIs(t, err, model.ErrModuleNotFound)
}

func TestApplyPresetAtomic(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	session, _ := svc.CreateSession(ctx)
	// 先手工打开一个预设外的模块
	_, err := svc.ToggleModule(ctx, session.SessionID, "active_directory_enumeration")
	assert.NoError(t, err)

	// 预设应用后状态整体替换：预设外的键一律false
	updated, err := svc.ApplyPreset(ctx, session.SessionID, "Quick Security Assessment")
	assert.NoError(t, err)
	assert.True(t, updated.ScanModules["host_discovery"])
	assert.False(t, updated.ScanModules["active_directory_enumeration"])

	// 连续应用两个预设等价于只应用第二个
	second, err := svc.ApplyPreset(ctx, session.SessionID, "Advanced Red Team Exercise")
	assert.NoError(t, err)
	assert.True(t, second.ScanModules["active_directory_enumeration"])
	assert.False(t, second.ScanModules["host_discovery"])

	expected, _ := newTestService(t).catalog.PresetSelection("Advanced Red Team Exercise")
	assert.Equal(t, expected, second.ScanModules)

	// 未知预设报错，会话不变
	_, err = svc.ApplyPreset(ctx, session.SessionID, "No Such Preset")
	assert.ErrorIs(t, err, model.ErrPresetNotFound)
	after, _ := svc.GetSession(ctx, session.SessionID)
	assert.Equal(t, second.ScanModules, after.ScanModules)
}

func TestSetModuleConfig(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	session, _ := svc.CreateSession(ctx)

	// 合法参数写入草稿
	updated, errs, err := svc.SetModuleConfig(ctx, session.SessionID, "network_scan", map[string]interface{}{
		"scan_type": "UDP",
	})
	assert.NoError(t, err)
	assert.Empty(t, errs)
	assert.Equal(t, "UDP", updated.ModuleConfigs["network_scan"]["scan_type"])

	// 非法参数返回字段错误，草稿不变
	_, errs, err = svc.SetModuleConfig(ctx, session.SessionID, "network_scan", map[string]interface{}{
		"scan_type": "XMAS",
	})
	assert.NoError(t, err)
	assert.Len(t, errs, 1)
	assert.Equal(t, "scan_type", errs[0].Field)
	after, _ := svc.GetSession(ctx, session.SessionID)
	assert.Equal(t, "UDP", after.ModuleConfigs["network_scan"]["scan_type"])

	// 空对象清除草稿
	updated, errs, err = svc.SetModuleConfig(ctx, session.SessionID, "network_scan", nil)
	assert.NoError(t, err)
	assert.Empty(t, errs)
	assert.NotContains(t, updated.ModuleConfigs, "network_scan")

	// 未知模块直接报错
	_, _, err = svc.SetModuleConfig(ctx, session.SessionID, "ghost_module", map[string]interface{}{"a": 1})
	assert.ErrorIs(t, err, model.ErrModuleNotFound)
}

func TestResetSession(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	session, _ := svc.CreateSession(ctx)
	_, _ = svc.ToggleModule(ctx, session.SessionID, "sast_scan")
	_, _, _ = svc.SetModuleConfig(ctx, session.SessionID, "network_scan", map[string]interface{}{"scan_type": "UDP"})

	// 重置回规范默认：核心三模块，草稿清空
	reset, err := svc.ResetSession(ctx, session.SessionID)
	assert.NoError(t, err)
	assert.Equal(t, 3, reset.EnabledCount())
	assert.False(t, reset.ScanModules["sast_scan"])
	assert.Empty(t, reset.ModuleConfigs)
}

func TestCancelSession(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	session, _ := svc.CreateSession(ctx)
	assert.NoError(t, svc.CancelSession(ctx, session.SessionID))

	_, err := svc.GetSession(ctx, session.SessionID)
	assert.ErrorIs(t, err, model.ErrSessionNotFound)
}
