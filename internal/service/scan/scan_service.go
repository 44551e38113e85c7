/**
 * 扫描编排服务
 * @author: sun977
 * @date: 2026.08.29
 * @description: 将配置会话组装为扫描请求提交引擎，并提供扫描查询与取消
 * @func: 提交扫描 / 扫描列表(资产名关联) / 扫描详情 / 取消扫描
 */
package scan

import (
	"context"
	"fmt"

	"neoconsole/internal/model"
	"neoconsole/internal/pkg/client"
	"neoconsole/internal/pkg/logger"
	"neoconsole/internal/service/builder"
	"neoconsole/internal/service/session"

	"github.com/sirupsen/logrus"
)

// Service 扫描编排服务
type Service struct {
	engine   client.EngineClient
	builder  *builder.Builder
	sessions *session.Service
}

// NewService 创建扫描编排服务
func NewService(engine client.EngineClient, reqBuilder *builder.Builder, sessions *session.Service) *Service {
	return &Service{
		engine:   engine,
		builder:  reqBuilder,
		sessions: sessions,
	}
}

// Submit 提交扫描
// 从配置会话组装扫描请求：组装失败返回字段级校验错误，会话保持不变；
// 提交成功后会话重置为默认选择，提交失败会话原样保留供用户重试。
func (s *Service) Submit(ctx context.Context, req *model.SubmitScanRequest, clientIP string) (*model.SubmitScanResult, model.ValidationErrors, error) {
	sess, err := s.sessions.GetSession(ctx, req.SessionID)
	if err != nil {
		return nil, nil, err
	}

	asset, err := s.engine.GetAsset(ctx, req.AssetID)
	if err != nil {
		return nil, nil, fmt.Errorf("获取资产信息失败: %w", err)
	}

	scanReq, validationErrs := s.builder.Build(asset, req.ScanName, sess.ScanModules, sess.ModuleConfigs)
	if validationErrs.HasErrors() {
		return nil, validationErrs, nil
	}

	result, err := s.engine.SubmitScan(ctx, scanReq)
	if err != nil {
		logger.LogBusinessOperation("submit_scan", req.SessionID, "", req.AssetID, clientIP, "failed", map[string]interface{}{
			"scan_name": req.ScanName,
			"error":     err.Error(),
		})
		return nil, nil, fmt.Errorf("提交扫描失败: %w", err)
	}

	// 提交成功后才重置会话，重置失败不影响已提交的扫描
	if _, resetErr := s.sessions.ResetSession(ctx, req.SessionID); resetErr != nil {
		logger.LogSystemEvent("scan", "session_reset_failed", resetErr.Error(), logrus.WarnLevel, map[string]interface{}{
			"session_id": req.SessionID,
		})
	}

	logger.LogBusinessOperation("submit_scan", req.SessionID, result.ScanID, req.AssetID, clientIP, "success", map[string]interface{}{
		"scan_name":     req.ScanName,
		"enabled_count": sess.EnabledCount(),
	})
	return result, nil, nil
}

// ListScans 获取扫描列表，并关联资产名称
// 资产列表获取失败时列表照常返回，资产名留空
func (s *Service) ListScans(ctx context.Context) ([]model.ScanSummary, error) {
	scans, err := s.engine.ListScans(ctx)
	if err != nil {
		return nil, fmt.Errorf("获取扫描列表失败: %w", err)
	}

	assetNames := make(map[string]string)
	if assets, err := s.engine.ListAssets(ctx); err != nil {
		logger.LogSystemEvent("scan", "asset_join_failed", err.Error(), logrus.WarnLevel, nil)
	} else {
		for _, asset := range assets {
			name := asset.Name
			if name == "" {
				name = asset.Value
			}
			assetNames[asset.AssetID] = name
		}
	}

	summaries := make([]model.ScanSummary, 0, len(scans))
	for i := range scans {
		summaries = append(summaries, model.ScanSummary{
			Scan:      &scans[i],
			AssetName: assetNames[scans[i].AssetID],
		})
	}
	return summaries, nil
}

// GetScan 获取扫描详情
func (s *Service) GetScan(ctx context.Context, scanID string) (*model.Scan, error) {
	scan, err := s.engine.GetScan(ctx, scanID)
	if err != nil {
		return nil, err
	}
	return scan, nil
}

// CancelScan 请求取消扫描
// 只向引擎发送取消请求，本地状态不强制置为cancelled，
// 实际状态以后续轮询到的引擎状态为准。
func (s *Service) CancelScan(ctx context.Context, scanID string, clientIP string) error {
	if err := s.engine.CancelScan(ctx, scanID); err != nil {
		logger.LogBusinessOperation("cancel_scan", "", scanID, "", clientIP, "failed", map[string]interface{}{
			"error": err.Error(),
		})
		return fmt.Errorf("取消扫描失败: %w", err)
	}

	logger.LogBusinessOperation("cancel_scan", "", scanID, "", clientIP, "requested", nil)
	return nil
}

// ListAssets 获取资产列表
func (s *Service) ListAssets(ctx context.Context) ([]model.Asset, error) {
	assets, err := s.engine.ListAssets(ctx)
	if err != nil {
		return nil, fmt.Errorf("获取资产列表失败: %w", err)
	}
	return assets, nil
}

// GetAsset 获取资产详情
func (s *Service) GetAsset(ctx context.Context, assetID string) (*model.Asset, error) {
	asset, err := s.engine.GetAsset(ctx, assetID)
	if err != nil {
		return nil, err
	}
	return asset, nil
}
