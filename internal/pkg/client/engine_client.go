/**
 * 扫描引擎通信客户端
 * @author: sun977
 * @date: 2025.09.19
 * @description: 控制台与外部扫描引擎的HTTP通信客户端，扫描和资产均为引擎侧实体
 * @func: EngineClient 接口及HTTP实现，doRequest 含5xx重试和401刷新重试
 */
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"neoconsole/internal/config"
	"neoconsole/internal/model"
	"neoconsole/internal/pkg/logger"
)

// EngineClient 扫描引擎客户端接口
type EngineClient interface {
	// SubmitScan 提交扫描请求，成功时返回扫描ID
	SubmitScan(ctx context.Context, req *model.ScanRequest) (*model.SubmitScanResult, error)

	// ListScans 获取扫描列表
	ListScans(ctx context.Context) ([]model.Scan, error)

	// GetScan 获取扫描详情，含progress_updates，终态后含raw_results_json
	GetScan(ctx context.Context, scanID string) (*model.Scan, error)

	// CancelScan 请求取消扫描，仅确认受理，本地状态不变
	CancelScan(ctx context.Context, scanID string) error

	// ListAssets 获取资产列表
	ListAssets(ctx context.Context) ([]model.Asset, error)

	// GetAsset 获取资产详情
	GetAsset(ctx context.Context, assetID string) (*model.Asset, error)
}

// engineClient 引擎客户端HTTP实现
type engineClient struct {
	client      *http.Client
	baseURL     string
	userAgent   string
	credentials CredentialProvider
	maxRetries  int
	retryDelay  time.Duration
}

// NewEngineClient 创建引擎客户端实例
func NewEngineClient(cfg *config.EngineConfig, credentials CredentialProvider) EngineClient {
	return &engineClient{
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL:     cfg.BaseURL,
		userAgent:   "NeoConsole/1.0",
		credentials: credentials,
		maxRetries:  cfg.MaxRetries,
		retryDelay:  cfg.RetryDelay,
	}
}

// engineEnvelope 引擎响应信封
type engineEnvelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

// SubmitScan 提交扫描请求
func (c *engineClient) SubmitScan(ctx context.Context, req *model.ScanRequest) (*model.SubmitScanResult, error) {
	var result model.SubmitScanResult
	if err := c.doJSON(ctx, "POST", "/api/v1/scans", req, &result); err != nil {
		return nil, fmt.Errorf("submit scan request: %w", err)
	}
	if result.ScanID == "" {
		return nil, fmt.Errorf("submit scan response missing scan_id")
	}
	return &result, nil
}

// ListScans 获取扫描列表
func (c *engineClient) ListScans(ctx context.Context) ([]model.Scan, error) {
	var result []model.Scan
	if err := c.doJSON(ctx, "GET", "/api/v1/scans", nil, &result); err != nil {
		return nil, fmt.Errorf("list scans request: %w", err)
	}
	return result, nil
}

// GetScan 获取扫描详情
func (c *engineClient) GetScan(ctx context.Context, scanID string) (*model.Scan, error) {
	var result model.Scan
	url := fmt.Sprintf("/api/v1/scans/%s", scanID)
	if err := c.doJSON(ctx, "GET", url, nil, &result); err != nil {
		return nil, fmt.Errorf("get scan request: %w", err)
	}
	return &result, nil
}

// CancelScan 请求取消扫描
// fire-and-forget：只确认引擎受理，状态变化由后续轮询观察
func (c *engineClient) CancelScan(ctx context.Context, scanID string) error {
	url := fmt.Sprintf("/api/v1/scans/%s/cancel", scanID)
	if err := c.doJSON(ctx, "POST", url, nil, nil); err != nil {
		return fmt.Errorf("cancel scan request: %w", err)
	}
	return nil
}

// ListAssets 获取资产列表
func (c *engineClient) ListAssets(ctx context.Context) ([]model.Asset, error) {
	var result []model.Asset
	if err := c.doJSON(ctx, "GET", "/api/v1/assets", nil, &result); err != nil {
		return nil, fmt.Errorf("list assets request: %w", err)
	}
	return result, nil
}

// GetAsset 获取资产详情
func (c *engineClient) GetAsset(ctx context.Context, assetID string) (*model.Asset, error) {
	var result model.Asset
	url := fmt.Sprintf("/api/v1/assets/%s", assetID)
	if err := c.doJSON(ctx, "GET", url, nil, &result); err != nil {
		return nil, fmt.Errorf("get asset request: %w", err)
	}
	return &result, nil
}

// doJSON 执行请求并解析引擎响应信封中的data字段
// out为nil时只检查状态不解析数据
func (c *engineClient) doJSON(ctx context.Context, method, url string, data interface{}, out interface{}) error {
	resp, err := c.doRequest(ctx, method, url, data)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var envelope engineEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	if envelope.Status == "error" {
		if envelope.Error != "" {
			return fmt.Errorf("engine error: %s", envelope.Error)
		}
		return fmt.Errorf("engine error: %s", envelope.Message)
	}
	if out != nil {
		if err := json.Unmarshal(envelope.Data, out); err != nil {
			return fmt.Errorf("decode response data: %w", err)
		}
	}
	return nil
}

// doRequest 执行HTTP请求
// 瞬态5xx按固定间隔有限重试；401触发凭证Refresh后重试一次，再失败按错误返回
func (c *engineClient) doRequest(ctx context.Context, method, url string, data interface{}) (*http.Response, error) {
	var payload []byte
	if data != nil {
		jsonData, err := json.Marshal(data)
		if err != nil {
			return nil, fmt.Errorf("marshal request data: %w", err)
		}
		payload = jsonData
	}

	token, err := c.credentials.Token(ctx)
	if err != nil {
		// 本地预检失败（未配置或已过期）直接走刷新
		token, err = c.credentials.Refresh(ctx)
		if err != nil {
			return nil, fmt.Errorf("acquire engine credential: %w", err)
		}
	}

	start := time.Now()
	resp, retries, err := c.attempt(ctx, method, url, payload, token)

	// 401触发外部刷新流程后重试一次，不属于扫描级错误
	if err == nil && resp.StatusCode == http.StatusUnauthorized {
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()

		token, rerr := c.credentials.Refresh(ctx)
		if rerr != nil {
			logger.LogEngineRequest(method, url, http.StatusUnauthorized, time.Since(start), retries, rerr)
			return nil, fmt.Errorf("refresh engine credential: %w", rerr)
		}
		resp, retries, err = c.attempt(ctx, method, url, payload, token)
	}

	if err != nil {
		logger.LogEngineRequest(method, url, 0, time.Since(start), retries, err)
		return nil, err
	}

	if resp.StatusCode >= 400 {
		bodyBytes, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		reqErr := fmt.Errorf("engine request failed with status %d: %s", resp.StatusCode, string(bodyBytes))
		logger.LogEngineRequest(method, url, resp.StatusCode, time.Since(start), retries, reqErr)
		if resp.StatusCode == http.StatusNotFound {
			return nil, fmt.Errorf("%w: %s %s", notFoundError(url), method, url)
		}
		return nil, reqErr
	}

	logger.LogEngineRequest(method, url, resp.StatusCode, time.Since(start), retries, nil)
	return resp, nil
}

// attempt 单轮请求，网络错误和5xx按固定间隔重试
func (c *engineClient) attempt(ctx context.Context, method, url string, payload []byte, token string) (*http.Response, int, error) {
	var resp *http.Response
	var err error
	retries := 0

	for i := 0; i <= c.maxRetries; i++ {
		var body io.Reader
		if payload != nil {
			body = bytes.NewReader(payload)
		}
		req, rerr := http.NewRequestWithContext(ctx, method, c.baseURL+url, body)
		if rerr != nil {
			return nil, retries, fmt.Errorf("create request: %w", rerr)
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("User-Agent", c.userAgent)
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}

		resp, err = c.client.Do(req)
		if err == nil && resp.StatusCode < 500 {
			return resp, retries, nil
		}
		if err == nil {
			io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
		}
		if i < c.maxRetries {
			retries++
			select {
			case <-ctx.Done():
				return nil, retries, ctx.Err()
			case <-time.After(c.retryDelay):
			}
		}
	}

	if err != nil {
		return nil, retries, err
	}
	return nil, retries, fmt.Errorf("engine request failed with status %d after %d retries", resp.StatusCode, retries)
}

// notFoundError 按路径归类404错误
func notFoundError(url string) error {
	if strings.HasPrefix(url, "/api/v1/assets") {
		return model.ErrAssetNotFound
	}
	return model.ErrScanNotFound
}
