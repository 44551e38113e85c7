package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

var (
	// GlobalConfig 全局配置实例
	GlobalConfig *Config
)

// LoadConfig 加载配置文件
// configPath: 配置文件路径，如果为空则使用默认路径
// env: 环境标识，支持 development, test, production
func LoadConfig(configPath, env string) (*Config, error) {
	// 设置默认环境
	if env == "" {
		env = getEnvFromEnvironment()
	}

	// 创建viper实例
	v := viper.New()

	// 设置配置文件类型
	v.SetConfigType("yaml")

	// 设置配置文件路径
	if configPath == "" {
		configPath = getDefaultConfigPath()
	}

	// 根据环境选择配置文件
	configFile := getConfigFileName(configPath, env)
	v.SetConfigFile(configFile)

	// 设置环境变量前缀
	v.SetEnvPrefix("NEOCONSOLE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 绑定环境变量
	bindEnvironmentVariables(v)

	// 读取配置文件
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
	}

	// 解析配置到结构体
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyDefaults(&config)

	// 验证配置
	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	// 设置全局配置
	GlobalConfig = &config

	return &config, nil
}

// getEnvFromEnvironment 从环境变量获取环境标识
func getEnvFromEnvironment() string {
	env := GetEnvString("env", "")
	if env == "" {
		env = os.Getenv("GO_ENV")
	}
	if env == "" {
		env = "development" // 默认开发环境
	}
	return env
}

// getDefaultConfigPath 获取默认配置文件路径
func getDefaultConfigPath() string {
	// 尝试从环境变量获取配置路径
	return GetEnvString("config_path", "configs")
}

// getConfigFileName 根据环境获取配置文件名
func getConfigFileName(configPath, env string) string {
	var configFile string

	switch env {
	case "production", "prod":
		configFile = filepath.Join(configPath, "config.prod.yaml")
	case "test", "testing":
		configFile = filepath.Join(configPath, "config.test.yaml")
	default:
		configFile = filepath.Join(configPath, "config.yaml")
	}

	// 检查文件是否存在，如果不存在则使用默认配置文件
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		defaultConfig := filepath.Join(configPath, "config.yaml")
		if _, err := os.Stat(defaultConfig); err == nil {
			return defaultConfig
		}
	}

	return configFile
}

// bindEnvironmentVariables 绑定环境变量
func bindEnvironmentVariables(v *viper.Viper) {
	// 服务器配置
	v.BindEnv("server.host", "NEOCONSOLE_SERVER_HOST")
	v.BindEnv("server.port", "NEOCONSOLE_SERVER_PORT")
	v.BindEnv("server.mode", "NEOCONSOLE_SERVER_MODE")

	// 扫描引擎配置
	v.BindEnv("engine.base_url", "NEOCONSOLE_ENGINE_BASE_URL")
	v.BindEnv("engine.timeout", "NEOCONSOLE_ENGINE_TIMEOUT")
	v.BindEnv("engine.auth_token", "NEOCONSOLE_ENGINE_AUTH_TOKEN")

	// Redis配置
	v.BindEnv("redis.host", "NEOCONSOLE_REDIS_HOST")
	v.BindEnv("redis.port", "NEOCONSOLE_REDIS_PORT")
	v.BindEnv("redis.password", "NEOCONSOLE_REDIS_PASSWORD")
	v.BindEnv("redis.database", "NEOCONSOLE_REDIS_DATABASE")

	// 会话配置
	v.BindEnv("session.store", "NEOCONSOLE_SESSION_STORE")
	v.BindEnv("session.ttl", "NEOCONSOLE_SESSION_TTL")

	// 应用配置
	v.BindEnv("app.environment", "NEOCONSOLE_APP_ENVIRONMENT")
	v.BindEnv("app.debug", "NEOCONSOLE_APP_DEBUG")
}

// applyDefaults 填充缺省配置
func applyDefaults(config *Config) {
	if config == nil {
		return
	}

	if config.Engine.MaxRetries <= 0 {
		config.Engine.MaxRetries = 3
	}
	if config.Engine.RetryDelay <= 0 {
		config.Engine.RetryDelay = 5 * time.Second
	}
	if config.Engine.Timeout <= 0 {
		config.Engine.Timeout = 30 * time.Second
	}
	if strings.TrimSpace(config.Session.Store) == "" {
		config.Session.Store = "memory"
	}
	if strings.TrimSpace(config.Session.KeyPrefix) == "" {
		config.Session.KeyPrefix = "console:session"
	}
	if config.Session.TTL <= 0 {
		config.Session.TTL = 30 * time.Minute
	}
	if config.Tracker.DetailPollInterval <= 0 {
		config.Tracker.DetailPollInterval = 5 * time.Second
	}
	if config.Tracker.ListPollInterval <= 0 {
		config.Tracker.ListPollInterval = 15 * time.Second
	}
}

// validateConfig 验证配置
func validateConfig(config *Config) error {
	// 验证服务器配置
	if config.Server.Port <= 0 || config.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", config.Server.Port)
	}

	if config.Server.Mode != "debug" && config.Server.Mode != "release" && config.Server.Mode != "test" {
		return fmt.Errorf("invalid server mode: %s", config.Server.Mode)
	}

	// 验证引擎配置
	if strings.TrimSpace(config.Engine.BaseURL) == "" {
		return fmt.Errorf("engine base_url is required")
	}

	// 验证日志配置
	validLogLevels := []string{"debug", "info", "warn", "error", "fatal", "panic"}
	if !contains(validLogLevels, config.Log.Level) {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	validLogFormats := []string{"json", "text"}
	if !contains(validLogFormats, config.Log.Format) {
		return fmt.Errorf("invalid log format: %s", config.Log.Format)
	}

	validLogOutputs := []string{"stdout", "stderr", "file"}
	if !contains(validLogOutputs, config.Log.Output) {
		return fmt.Errorf("invalid log output: %s", config.Log.Output)
	}

	// 如果日志输出到文件，验证文件路径
	if config.Log.Output == "file" && config.Log.FilePath == "" {
		return fmt.Errorf("log file path is required when output is file")
	}

	// 验证会话配置
	validSessionStores := []string{"memory", "redis"}
	if !contains(validSessionStores, config.Session.Store) {
		return fmt.Errorf("invalid session store: %s", config.Session.Store)
	}

	// 会话使用Redis存储时必须提供Redis地址
	if config.Session.Store == "redis" && config.Redis.Host == "" {
		return fmt.Errorf("redis host is required when session store is redis")
	}

	return nil
}

// contains 检查切片是否包含指定元素
func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}

// GetConfig 获取全局配置
func GetConfig() *Config {
	return GlobalConfig
}

// MustLoadConfig 加载配置，如果失败则panic
func MustLoadConfig(configPath, env string) *Config {
	config, err := LoadConfig(configPath, env)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}
	return config
}

// ReloadConfig 重新加载配置
func ReloadConfig() error {
	if GlobalConfig == nil {
		return fmt.Errorf("global config is not initialized")
	}

	// 重新加载配置
	config, err := LoadConfig("", "")
	if err != nil {
		return err
	}

	GlobalConfig = config
	return nil
}

// GetEnv 获取当前环境
func GetEnv() string {
	if GlobalConfig != nil {
		return GlobalConfig.App.Environment
	}
	return getEnvFromEnvironment()
}
