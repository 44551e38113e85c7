/**
 * 引擎凭证提供者
 * @author: sun977
 * @date: 2025.09.19
 * @description: 引擎Bearer凭证的注入式能力接口，令牌的获取和存储由外部生命周期负责
 * @func: CredentialProvider 接口和 StaticCredentialProvider 实现
 */
package client

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// CredentialProvider 引擎凭证提供能力
// 作为依赖注入给请求方，绝不做成隐式全局，核心的可测试性与外部认证子系统隔离
type CredentialProvider interface {
	// Token 返回当前Bearer凭证
	Token(ctx context.Context) (string, error)
	// Refresh 在收到401后由客户端调用，换取新凭证
	// 刷新流程本身属于外部令牌生命周期，实现方只需要返回刷新后的凭证
	Refresh(ctx context.Context) (string, error)
}

// StaticCredentialProvider 静态凭证提供者
// 持有配置注入的固定令牌，Refresh返回同一令牌（刷新由部署侧轮换配置完成）
type StaticCredentialProvider struct {
	mu    sync.RWMutex
	token string
}

// NewStaticCredentialProvider 创建静态凭证提供者
func NewStaticCredentialProvider(token string) *StaticCredentialProvider {
	return &StaticCredentialProvider{token: token}
}

// Token 返回当前令牌
// 如令牌是JWT且已过期，提前报错避免一次注定失败的请求
func (p *StaticCredentialProvider) Token(ctx context.Context) (string, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.token == "" {
		return "", fmt.Errorf("engine credential is not configured")
	}
	if expired, err := tokenExpired(p.token); err == nil && expired {
		return "", fmt.Errorf("engine credential has expired")
	}
	return p.token, nil
}

// Refresh 静态提供者无刷新渠道，原样返回当前令牌
func (p *StaticCredentialProvider) Refresh(ctx context.Context) (string, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.token, nil
}

// SetToken 运行时更新令牌（配置热更新回调使用）
func (p *StaticCredentialProvider) SetToken(token string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.token = token
}

// tokenExpired 检查JWT的exp声明是否已过期
// 只做本地预检，不验证签名（签名由引擎侧验证）；非JWT令牌视为不过期
func tokenExpired(token string) (bool, error) {
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return false, err
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false, err
	}
	return exp.Before(time.Now()), nil
}
