// 自定义日志格式化器
package logger

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// FormatTimestamp 格式化时间戳为统一的毫秒精度格式
// 返回格式："2006-01-02 15:04:05.000"
func FormatTimestamp(t time.Time) string {
	// 除了日志管理器之外的其他模块使用的时间戳格式
	return t.Format("2006-01-02 15:04:05.000")
}

// NowFormatted 返回当前时间的格式化字符串
// 返回格式："2006-01-02 15:04:05.000"
func NowFormatted() string {
	return FormatTimestamp(time.Now())
}

// LogType 日志类型枚举
type LogType string

const (
	// AccessLog 访问日志 - 记录HTTP请求和API调用
	AccessLog LogType = "access"
	// BusinessLog 业务日志 - 记录业务操作（扫描提交、会话变更等）
	BusinessLog LogType = "business"
	// ErrorLog 错误日志 - 记录系统错误和异常
	ErrorLog LogType = "error"
	// SystemLog 系统日志 - 记录系统运行状态
	SystemLog LogType = "system"
	// DebugLog 调试日志 - 记录开发调试信息
	DebugLog LogType = "debug"
	// EngineLog 引擎日志 - 记录对扫描引擎的出站请求
	EngineLog LogType = "engine"
)

// AccessLogEntry 访问日志条目结构
type AccessLogEntry struct {
	Timestamp    time.Time `json:"timestamp"`     // 请求时间
	Method       string    `json:"method"`        // HTTP方法
	Path         string    `json:"path"`          // 请求路径
	Query        string    `json:"query"`         // 查询参数
	StatusCode   int       `json:"status_code"`   // 响应状态码
	ResponseTime int64     `json:"response_time"` // 响应时间(毫秒)
	ClientIP     string    `json:"client_ip"`     // 客户端IP
	UserAgent    string    `json:"user_agent"`    // 用户代理
	RequestID    string    `json:"request_id"`    // 请求追踪ID
	RequestSize  int64     `json:"request_size"`  // 请求大小
	ResponseSize int64     `json:"response_size"` // 响应大小
}

// BusinessLogEntry 业务日志条目结构
type BusinessLogEntry struct {
	Timestamp time.Time              `json:"timestamp"` // 操作时间
	Operation string                 `json:"operation"` // 操作类型（submit_scan、cancel_scan、apply_preset等）
	SessionID string                 `json:"session_id"`// 会话ID
	ScanID    string                 `json:"scan_id"`   // 扫描ID（如果有）
	AssetID   string                 `json:"asset_id"`  // 资产ID（如果有）
	Result    string                 `json:"result"`    // 操作结果（success/failure）
	Details   map[string]interface{} `json:"details"`   // 操作详情
	ClientIP  string                 `json:"client_ip"` // 客户端IP
}

// ErrorLogEntry 错误日志条目结构
type ErrorLogEntry struct {
	Timestamp  time.Time              `json:"timestamp"`  // 错误时间
	Error      string                 `json:"error"`      // 错误信息
	Stack      string                 `json:"stack"`      // 错误堆栈
	Module     string                 `json:"module"`     // 发生错误的模块
	Function   string                 `json:"function"`   // 发生错误的函数
	Context    map[string]interface{} `json:"context"`    // 错误上下文
	ClientIP   string                 `json:"client_ip"`  // 客户端IP（如果有）
	RequestID  string                 `json:"request_id"` // 请求追踪ID（如果有）
}

// SystemLogEntry 系统日志条目结构
type SystemLogEntry struct {
	Timestamp time.Time              `json:"timestamp"` // 事件时间
	Event     string                 `json:"event"`     // 事件类型（startup、shutdown、config_reload等）
	Component string                 `json:"component"` // 组件名称
	Message   string                 `json:"message"`   // 事件消息
	Details   map[string]interface{} `json:"details"`   // 事件详情
}

// EngineLogEntry 引擎请求日志条目结构
type EngineLogEntry struct {
	Timestamp    time.Time `json:"timestamp"`     // 请求时间
	Method       string    `json:"method"`        // HTTP方法
	Endpoint     string    `json:"endpoint"`      // 引擎端点
	StatusCode   int       `json:"status_code"`   // 引擎响应状态码
	ResponseTime int64     `json:"response_time"` // 响应时间(毫秒)
	Retries      int       `json:"retries"`       // 重试次数
	Error        string    `json:"error"`         // 错误信息（如果有）
}

// LogAccessRequest 记录HTTP访问日志
// 在gin中间件中调用，记录每个进入控制台的请求
func LogAccessRequest(c *gin.Context, statusCode int, responseTime time.Duration, responseSize int64) {
	if LoggerInstance == nil {
		return
	}

	entry := AccessLogEntry{
		Timestamp:    time.Now(),
		Method:       c.Request.Method,
		Path:         c.Request.URL.Path,
		Query:        c.Request.URL.RawQuery,
		StatusCode:   statusCode,
		ResponseTime: responseTime.Milliseconds(),
		ClientIP:     c.ClientIP(),
		UserAgent:    c.Request.UserAgent(),
		RequestID:    c.GetString("request_id"),
		RequestSize:  c.Request.ContentLength,
		ResponseSize: responseSize,
	}

	LoggerInstance.logger.WithFields(logrus.Fields{
		"type":          AccessLog,
		"method":        entry.Method,
		"path":          entry.Path,
		"query":         entry.Query,
		"status_code":   entry.StatusCode,
		"response_time": entry.ResponseTime,
		"client_ip":     entry.ClientIP,
		"user_agent":    entry.UserAgent,
		"request_id":    entry.RequestID,
		"request_size":  entry.RequestSize,
		"response_size": entry.ResponseSize,
	}).Info("HTTP request processed")
}

// LogBusinessOperation 记录业务操作日志
// 用于扫描提交、取消、会话修改等关键业务流程
func LogBusinessOperation(operation string, sessionID, scanID, assetID, clientIP, result string, details map[string]interface{}) {
	if LoggerInstance == nil {
		return
	}

	fields := logrus.Fields{
		"type":       BusinessLog,
		"operation":  operation,
		"session_id": sessionID,
		"result":     result,
		"client_ip":  clientIP,
		"timestamp":  FormatTimestamp(time.Now()),
	}
	if scanID != "" {
		fields["scan_id"] = scanID
	}
	if assetID != "" {
		fields["asset_id"] = assetID
	}
	for k, v := range details {
		fields[k] = v
	}

	logEntry := LoggerInstance.logger.WithFields(fields)
	if result == "success" {
		logEntry.Info(fmt.Sprintf("Business operation: %s", operation))
	} else {
		logEntry.Warn(fmt.Sprintf("Business operation failed: %s", operation))
	}
}

// LogError 记录错误日志
// module和function标识错误来源，context携带必要的排查信息
func LogError(err error, module, function, clientIP, requestID string, context map[string]interface{}) {
	if LoggerInstance == nil || err == nil {
		return
	}

	fields := logrus.Fields{
		"type":      ErrorLog,
		"error":     err.Error(),
		"module":    module,
		"function":  function,
		"timestamp": FormatTimestamp(time.Now()),
	}
	if clientIP != "" {
		fields["client_ip"] = clientIP
	}
	if requestID != "" {
		fields["request_id"] = requestID
	}
	for k, v := range context {
		fields[k] = v
	}

	LoggerInstance.logger.WithFields(fields).Error(fmt.Sprintf("Error in %s.%s: %v", module, function, err))
}

// LogSystemEvent 记录系统事件日志
// 用于启动、关闭、配置热更新、轮询器状态变化等系统级事件
func LogSystemEvent(component, event, message string, level logrus.Level, details map[string]interface{}) {
	if LoggerInstance == nil {
		return
	}

	fields := logrus.Fields{
		"type":      SystemLog,
		"event":     event,
		"component": component,
		"timestamp": FormatTimestamp(time.Now()),
	}
	for k, v := range details {
		fields[k] = v
	}

	logEntry := LoggerInstance.logger.WithFields(fields)
	switch level {
	case logrus.DebugLevel:
		logEntry.Debug(message)
	case logrus.InfoLevel:
		logEntry.Info(message)
	case logrus.WarnLevel:
		logEntry.Warn(message)
	case logrus.ErrorLevel:
		logEntry.Error(message)
	default:
		logEntry.Info(message)
	}
}

// LogEngineRequest 记录对扫描引擎的出站请求日志
// 每次引擎HTTP调用完成后记录，包含重试次数便于排查引擎侧波动
func LogEngineRequest(method, endpoint string, statusCode int, responseTime time.Duration, retries int, err error) {
	if LoggerInstance == nil {
		return
	}

	fields := logrus.Fields{
		"type":          EngineLog,
		"method":        method,
		"endpoint":      endpoint,
		"status_code":   statusCode,
		"response_time": responseTime.Milliseconds(),
		"retries":       retries,
		"timestamp":     FormatTimestamp(time.Now()),
	}

	logEntry := LoggerInstance.logger.WithFields(fields)
	if err != nil {
		logEntry.WithField("error", err.Error()).Warn(fmt.Sprintf("Engine request failed: %s %s", method, endpoint))
		return
	}
	logEntry.Info(fmt.Sprintf("Engine request: %s %s", method, endpoint))
}

// LogDebug 记录调试日志
func LogDebug(module, function, message string, details map[string]interface{}) {
	if LoggerInstance == nil {
		return
	}

	fields := logrus.Fields{
		"type":      DebugLog,
		"module":    module,
		"function":  function,
		"timestamp": FormatTimestamp(time.Now()),
	}
	for k, v := range details {
		fields[k] = v
	}

	LoggerInstance.logger.WithFields(fields).Debug(message)
}
