package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"neoconsole/internal/config"
	"neoconsole/internal/model"

	"github.com/stretchr/testify/assert"
)

func newTestClient(t *testing.T, handler http.Handler, token string) (EngineClient, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.EngineConfig{
		BaseURL:    server.URL,
		Timeout:    5 * time.Second,
		MaxRetries: 2,
		RetryDelay: 10 * time.Millisecond,
	}
	return NewEngineClient(cfg, NewStaticCredentialProvider(token)), server
}

func writeEnvelope(w http.ResponseWriter, data interface{}) {
	payload, _ := json.Marshal(data)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status": "success",
		"data":   json.RawMessage(payload),
	})
}

func TestSubmitScan(t *testing.T) {
	var gotAuth string
	var gotBody model.ScanRequest
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/api/v1/scans", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		json.NewDecoder(r.Body).Decode(&gotBody)
		writeEnvelope(w, model.SubmitScanResult{ScanID: "scan-42"})
	})
	c, _ := newTestClient(t, handler, "test-token")

	req := &model.ScanRequest{
		AssetID:  "asset-1",
		ScanName: "t1",
		ScanParameters: map[string]interface{}{
			"target_ip":           "10.0.0.5",
			"enable_network_scan": true,
		},
	}
	result, err := c.SubmitScan(context.Background(), req)
	assert.NoError(t, err)
	assert.Equal(t, "scan-42", result.ScanID)
	// Bearer凭证随请求携带
	assert.Equal(t, "Bearer test-token", gotAuth)
	assert.Equal(t, "asset-1", gotBody.AssetID)
	assert.Equal(t, "10.0.0.5", gotBody.ScanParameters["target_ip"])
}

func TestSubmitScanMissingScanID(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, map[string]interface{}{})
	})
	c, _ := newTestClient(t, handler, "test-token")

	_, err := c.SubmitScan(context.Background(), &model.ScanRequest{AssetID: "a", ScanName: "t"})
	assert.Error(t, err)
}

func TestGetScan(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/scans/scan-42", r.URL.Path)
		writeEnvelope(w, model.Scan{
			ScanID: "scan-42",
			Status: model.ScanStatusRunning,
			ProgressUpdates: []model.ProgressUpdate{
				{Message: "port scan started"},
			},
		})
	})
	c, _ := newTestClient(t, handler, "test-token")

	scan, err := c.GetScan(context.Background(), "scan-42")
	assert.NoError(t, err)
	assert.Equal(t, model.ScanStatusRunning, scan.Status)
	assert.Len(t, scan.ProgressUpdates, 1)
}

func TestTransient5xxRetried(t *testing.T) {
	var calls int32
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// 前两次5xx，第三次成功
		if atomic.AddInt32(&calls, 1) <= 2 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		writeEnvelope(w, []model.Scan{})
	})
	c, _ := newTestClient(t, handler, "test-token")

	_, err := c.ListScans(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func Test5xxExhaustsRetries(t *testing.T) {
	var calls int32
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusInternalServerError)
	})
	c, _ := newTestClient(t, handler, "test-token")

	_, err := c.ListScans(context.Background())
	assert.Error(t, err)
	// 初始请求 + MaxRetries次重试
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestUnauthorizedTriggersRefreshAndSingleRetry(t *testing.T) {
	var calls int32
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		writeEnvelope(w, []model.Asset{{AssetID: "a1", Type: model.AssetTypeIP, Value: "10.0.0.5"}})
	})
	c, _ := newTestClient(t, handler, "test-token")

	// 401后Refresh并重试一次
	assets, err := c.ListAssets(context.Background())
	assert.NoError(t, err)
	assert.Len(t, assets, 1)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestUnauthorizedAfterRefreshFails(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	c, _ := newTestClient(t, handler, "test-token")

	// 刷新后仍401，只重试一次后按错误返回
	_, err := c.ListAssets(context.Background())
	assert.Error(t, err)
}

func TestNotFoundMapsToTypedErrors(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	c, _ := newTestClient(t, handler, "test-token")

	_, err := c.GetScan(context.Background(), "gone")
	assert.ErrorIs(t, err, model.ErrScanNotFound)

	_, err = c.GetAsset(context.Background(), "gone")
	assert.ErrorIs(t, err, model.ErrAssetNotFound)
}

func TestEngineErrorEnvelope(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status": "error",
			"error":  "scan queue is full",
		})
	})
	c, _ := newTestClient(t, handler, "test-token")

	_, err := c.SubmitScan(context.Background(), &model.ScanRequest{AssetID: "a", ScanName: "t"})
	assert.ErrorContains(t, err, "scan queue is full")
}

func TestCancelScanAckOnly(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/scans/scan-42/cancel", r.URL.Path)
		assert.Equal(t, "POST", r.Method)
		json.NewEncoder(w).Encode(map[string]interface{}{"status": "success", "message": "accepted"})
	})
	c, _ := newTestClient(t, handler, "test-token")

	assert.NoError(t, c.CancelScan(context.Background(), "scan-42"))
}
