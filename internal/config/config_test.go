package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

const testConfigContent = `
server:
  host: "localhost"
  port: 8080
  mode: "test"
  read_timeout: 30s
  write_timeout: 30s
  idle_timeout: 60s
  max_header_bytes: 1048576

engine:
  base_url: "http://localhost:9000"
  timeout: 30s
  max_retries: 3
  retry_delay: 5s
  auth_token: "test-engine-token"

redis:
  host: "localhost"
  port: 6379
  password: ""
  database: 0
  pool_size: 10
  min_idle_conns: 5
  dial_timeout: 5s
  read_timeout: 3s
  write_timeout: 3s

log:
  level: "info"
  format: "json"
  output: "stdout"
  file_path: "logs/console.log"
  max_size: 100
  max_backups: 5
  max_age: 30
  compress: true
  caller: true

session:
  store: "memory"
  key_prefix: "console:session"
  ttl: 30m

tracker:
  detail_poll_interval: 5s
  list_poll_interval: 15s

app:
  name: "NeoConsole Test"
  version: "1.0.0"
  environment: "test"
  debug: true
  timezone: "Asia/Shanghai"
`

// TestLoadConfig 测试配置加载功能
func TestLoadConfig(t *testing.T) {
	// 创建临时配置文件
	tempDir := t.TempDir()
	configFile := filepath.Join(tempDir, "config.yaml")
	if err := os.WriteFile(configFile, []byte(testConfigContent), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	// 测试加载配置
	config, err := LoadConfig(tempDir, "test")
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	// 验证配置值
	if config.Server.Host != "localhost" {
		t.Errorf("Expected server host 'localhost', got '%s'", config.Server.Host)
	}

	if config.Server.Port != 8080 {
		t.Errorf("Expected server port 8080, got %d", config.Server.Port)
	}

	if config.Engine.BaseURL != "http://localhost:9000" {
		t.Errorf("Expected engine base_url 'http://localhost:9000', got '%s'", config.Engine.BaseURL)
	}

	if config.Engine.Timeout != 30*time.Second {
		t.Errorf("Expected engine timeout 30s, got %v", config.Engine.Timeout)
	}

	if config.Session.Store != "memory" {
		t.Errorf("Expected session store 'memory', got '%s'", config.Session.Store)
	}

	if config.Tracker.DetailPollInterval != 5*time.Second {
		t.Errorf("Expected detail poll interval 5s, got %v", config.Tracker.DetailPollInterval)
	}

	if config.App.Environment != "test" {
		t.Errorf("Expected environment 'test', got '%s'", config.App.Environment)
	}
}

// TestLoadConfigWithEnvVars 测试环境变量覆盖配置
func TestLoadConfigWithEnvVars(t *testing.T) {
	// 设置环境变量
	os.Setenv("NEOCONSOLE_SERVER_PORT", "9090")
	os.Setenv("NEOCONSOLE_ENGINE_BASE_URL", "http://engine.internal:9000")
	defer func() {
		os.Unsetenv("NEOCONSOLE_SERVER_PORT")
		os.Unsetenv("NEOCONSOLE_ENGINE_BASE_URL")
	}()

	tempDir := t.TempDir()
	configFile := filepath.Join(tempDir, "config.yaml")
	if err := os.WriteFile(configFile, []byte(testConfigContent), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	config, err := LoadConfig(tempDir, "test")
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	// 环境变量应覆盖配置文件中的值
	if config.Server.Port != 9090 {
		t.Errorf("Expected server port 9090 from env, got %d", config.Server.Port)
	}

	if config.Engine.BaseURL != "http://engine.internal:9000" {
		t.Errorf("Expected engine base_url from env, got '%s'", config.Engine.BaseURL)
	}
}

// TestValidateConfig 测试配置验证
func TestValidateConfig(t *testing.T) {
	tempDir := t.TempDir()

	// 缺少引擎地址的配置应该加载失败
	badConfig := strings.Replace(testConfigContent, `base_url: "http://localhost:9000"`, `base_url: ""`, 1)
	configFile := filepath.Join(tempDir, "config.yaml")
	if err := os.WriteFile(configFile, []byte(badConfig), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	if _, err := LoadConfig(tempDir, "test"); err == nil {
		t.Error("Expected validation error for empty engine base_url, got nil")
	}
}

// TestApplyDefaults 测试缺省值填充
func TestApplyDefaults(t *testing.T) {
	config := &Config{}
	applyDefaults(config)

	if config.Engine.MaxRetries != 3 {
		t.Errorf("Expected default max_retries 3, got %d", config.Engine.MaxRetries)
	}

	if config.Session.Store != "memory" {
		t.Errorf("Expected default session store 'memory', got '%s'", config.Session.Store)
	}

	if config.Tracker.DetailPollInterval != 5*time.Second {
		t.Errorf("Expected default detail poll interval 5s, got %v", config.Tracker.DetailPollInterval)
	}
}
