package config

import (
	"fmt"
	"time"
)

// Config 应用配置结构体 [这里的字段和配置文件中一级字段保持一致，否则会没有值]
type Config struct {
	Server  ServerConfig  `yaml:"server" mapstructure:"server"`   // 服务器配置
	Engine  EngineConfig  `yaml:"engine" mapstructure:"engine"`   // 扫描引擎配置
	Redis   RedisConfig   `yaml:"redis" mapstructure:"redis"`     // Redis配置
	Log     LogConfig     `yaml:"log" mapstructure:"log"`         // 日志配置
	Session SessionConfig `yaml:"session" mapstructure:"session"` // 配置会话配置
	Tracker TrackerConfig `yaml:"tracker" mapstructure:"tracker"` // 扫描状态追踪配置
	App     AppConfig     `yaml:"app" mapstructure:"app"`         // 应用配置
}

// ServerConfig 服务器配置
type ServerConfig struct {
	Host           string        `yaml:"host" mapstructure:"host"`                         // 服务器主机地址
	Port           int           `yaml:"port" mapstructure:"port"`                         // 服务器端口
	Mode           string        `yaml:"mode" mapstructure:"mode"`                         // 运行模式: debug, release, test
	ReadTimeout    time.Duration `yaml:"read_timeout" mapstructure:"read_timeout"`         // 读取超时时间
	WriteTimeout   time.Duration `yaml:"write_timeout" mapstructure:"write_timeout"`       // 写入超时时间
	IdleTimeout    time.Duration `yaml:"idle_timeout" mapstructure:"idle_timeout"`         // 空闲超时时间
	MaxHeaderBytes int           `yaml:"max_header_bytes" mapstructure:"max_header_bytes"` // 最大请求头字节数
}

// EngineConfig 后端扫描引擎配置
// 控制台不执行扫描，所有扫描请求通过HTTP提交到引擎端
type EngineConfig struct {
	BaseURL    string        `yaml:"base_url" mapstructure:"base_url"`       // 引擎API基础地址
	Timeout    time.Duration `yaml:"timeout" mapstructure:"timeout"`         // 单次请求超时时间
	MaxRetries int           `yaml:"max_retries" mapstructure:"max_retries"` // 5xx错误最大重试次数
	RetryDelay time.Duration `yaml:"retry_delay" mapstructure:"retry_delay"` // 重试间隔
	AuthToken  string        `yaml:"auth_token" mapstructure:"auth_token"`   // 静态Bearer令牌(令牌生命周期由外部系统管理)
}

// RedisConfig Redis配置
type RedisConfig struct {
	Host         string        `yaml:"host" mapstructure:"host"`                     // Redis主机
	Port         int           `yaml:"port" mapstructure:"port"`                     // Redis端口
	Password     string        `yaml:"password" mapstructure:"password"`             // Redis密码
	Database     int           `yaml:"database" mapstructure:"database"`             // Redis数据库索引
	PoolSize     int           `yaml:"pool_size" mapstructure:"pool_size"`           // 连接池大小
	MinIdleConns int           `yaml:"min_idle_conns" mapstructure:"min_idle_conns"` // 最小空闲连接数
	DialTimeout  time.Duration `yaml:"dial_timeout" mapstructure:"dial_timeout"`     // 连接超时
	ReadTimeout  time.Duration `yaml:"read_timeout" mapstructure:"read_timeout"`     // 读取超时
	WriteTimeout time.Duration `yaml:"write_timeout" mapstructure:"write_timeout"`   // 写入超时
}

// LogConfig 日志配置
type LogConfig struct {
	Level      string `yaml:"level" mapstructure:"level"`             // 日志级别
	Format     string `yaml:"format" mapstructure:"format"`           // 日志格式: json, text
	Output     string `yaml:"output" mapstructure:"output"`           // 输出方式: stdout, stderr, file
	FilePath   string `yaml:"file_path" mapstructure:"file_path"`     // 日志文件路径
	MaxSize    int    `yaml:"max_size" mapstructure:"max_size"`       // 单个日志文件最大大小(MB)
	MaxBackups int    `yaml:"max_backups" mapstructure:"max_backups"` // 保留的日志文件数量
	MaxAge     int    `yaml:"max_age" mapstructure:"max_age"`         // 日志文件保留天数
	Compress   bool   `yaml:"compress" mapstructure:"compress"`       // 是否压缩日志文件
	Caller     bool   `yaml:"caller" mapstructure:"caller"`           // 是否显示调用者信息
}

// SessionConfig 扫描配置会话配置
// 会话仅保存"新建扫描"过程中的模块勾选与参数草稿，不落地任何远端实体
type SessionConfig struct {
	Store     string        `yaml:"store" mapstructure:"store"`           // 存储方式: memory, redis
	KeyPrefix string        `yaml:"key_prefix" mapstructure:"key_prefix"` // Redis键前缀
	TTL       time.Duration `yaml:"ttl" mapstructure:"ttl"`               // 会话过期时间
}

// TrackerConfig 扫描生命周期追踪配置
type TrackerConfig struct {
	DetailPollInterval time.Duration `yaml:"detail_poll_interval" mapstructure:"detail_poll_interval"` // 详情视图轮询间隔
	ListPollInterval   time.Duration `yaml:"list_poll_interval" mapstructure:"list_poll_interval"`     // 列表视图轮询间隔
}

// AppConfig 应用配置
type AppConfig struct {
	Name        string `yaml:"name" mapstructure:"name"`               // 应用名称
	Version     string `yaml:"version" mapstructure:"version"`         // 应用版本
	Environment string `yaml:"environment" mapstructure:"environment"` // 运行环境
	Debug       bool   `yaml:"debug" mapstructure:"debug"`             // 是否调试模式
	Timezone    string `yaml:"timezone" mapstructure:"timezone"`       // 时区
}

// GetAddress 获取服务器完整地址
func (s *ServerConfig) GetAddress() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// GetRedisAddress 获取Redis地址
func (r *RedisConfig) GetRedisAddress() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// IsDevelopment 判断是否为开发环境
func (a *AppConfig) IsDevelopment() bool {
	return a.Environment == "development"
}

// IsProduction 判断是否为生产环境
func (a *AppConfig) IsProduction() bool {
	return a.Environment == "production"
}

// IsTest 判断是否为测试环境
func (a *AppConfig) IsTest() bool {
	return a.Environment == "test"
}
