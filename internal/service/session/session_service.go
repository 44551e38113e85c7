/**
 * 服务:配置会话服务
 * @author: sun977
 * @date: 2025.09.18
 * @description: 扫描配置会话业务逻辑，管理模块选择状态和各模块参数草稿
 * @func: Service 结构体及会话操作方法
 */
package session

import (
	"context"
	"fmt"
	"time"

	"neoconsole/internal/catalog"
	"neoconsole/internal/model"
	"neoconsole/internal/pkg/utils"
	"neoconsole/internal/service/schema"
)

// Service 配置会话服务
type Service struct {
	catalog *catalog.Catalog
	engine  *schema.Engine
	store   Store
	ttl     time.Duration
}

// NewService 创建配置会话服务
func NewService(cat *catalog.Catalog, engine *schema.Engine, store Store, ttl time.Duration) *Service {
	return &Service{
		catalog: cat,
		engine:  engine,
		store:   store,
		ttl:     ttl,
	}
}

// CreateSession 创建新的配置会话
// 模块选择初始化为目录派生的规范默认值（核心模块启用，其余禁用）
func (s *Service) CreateSession(ctx context.Context) (*model.ConfigureSession, error) {
	sessionID, err := utils.GenerateUUID()
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	now := time.Now()
	session := &model.ConfigureSession{
		SessionID:     sessionID,
		ScanModules:   s.catalog.DefaultSelection(),
		ModuleConfigs: make(map[string]map[string]interface{}),
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.store.Save(ctx, session, s.ttl); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}
	return session, nil
}

// GetSession 读取配置会话并滑动续期
// 配置过程中的每次读取都把过期时间重置为完整TTL，写操作经由Save续期
func (s *Service) GetSession(ctx context.Context, sessionID string) (*model.ConfigureSession, error) {
	session, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	// 续期失败不影响本次读取
	_ = s.store.UpdateExpiry(ctx, sessionID, s.ttl)
	return session, nil
}

// ToggleModule 翻转单个模块的启用标志，其余模块不变
func (s *Service) ToggleModule(ctx context.Context, sessionID, moduleKey string) (*model.ConfigureSession, error) {
	if _, ok := s.catalog.GetByKey(moduleKey); !ok {
		return nil, fmt.Errorf("toggle %q: %w", moduleKey, model.ErrModuleNotFound)
	}

	session, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	session.ScanModules[moduleKey] = !session.ScanModules[moduleKey]
	session.UpdatedAt = time.Now()

	if err := s.store.Save(ctx, session, s.ttl); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}
	return session, nil
}

// ApplyPreset 应用命名预设
// 预设是allow-list，整体替换选择状态：未包含的目录键一律变为false
// 校验先于任何修改，不允许部分生效
func (s *Service) ApplyPreset(ctx context.Context, sessionID, presetName string) (*model.ConfigureSession, error) {
	selection, ok := s.catalog.PresetSelection(presetName)
	if !ok {
		return nil, fmt.Errorf("preset %q: %w", presetName, model.ErrPresetNotFound)
	}

	session, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	session.ScanModules = selection
	session.UpdatedAt = time.Now()

	if err := s.store.Save(ctx, session, s.ttl); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}
	return session, nil
}

// SetModuleConfig 写入单个模块的参数草稿
// 参数先通过引擎校验，全部字段错误一次性返回，校验失败不修改会话
// 保存的是用户原始输入（未激活字段的值保留，用户重新激活后仍可用）
func (s *Service) SetModuleConfig(ctx context.Context, sessionID, moduleKey string, values map[string]interface{}) (*model.ConfigureSession, model.ValidationErrors, error) {
	def, ok := s.catalog.GetByKey(moduleKey)
	if !ok {
		return nil, nil, fmt.Errorf("configure %q: %w", moduleKey, model.ErrModuleNotFound)
	}

	if len(values) > 0 {
		if _, errs := s.engine.Resolve(&def, values); len(errs) > 0 {
			return nil, errs, nil
		}
	}

	session, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, nil, err
	}

	if len(values) == 0 {
		// 空对象等于清除该模块的参数草稿
		delete(session.ModuleConfigs, moduleKey)
	} else {
		session.ModuleConfigs[moduleKey] = values
	}
	session.UpdatedAt = time.Now()

	if err := s.store.Save(ctx, session, s.ttl); err != nil {
		return nil, nil, fmt.Errorf("failed to save session: %w", err)
	}
	return session, nil, nil
}

// ResetSession 把会话重置为规范默认状态
// 扫描提交成功后调用，提交失败时不调用（保留用户输入便于修正重交）
func (s *Service) ResetSession(ctx context.Context, sessionID string) (*model.ConfigureSession, error) {
	session, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	session.ScanModules = s.catalog.DefaultSelection()
	session.ModuleConfigs = make(map[string]map[string]interface{})
	session.UpdatedAt = time.Now()

	if err := s.store.Save(ctx, session, s.ttl); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}
	return session, nil
}

// CancelSession 显式取消配置会话，状态整体丢弃
func (s *Service) CancelSession(ctx context.Context, sessionID string) error {
	return s.store.Delete(ctx, sessionID)
}
