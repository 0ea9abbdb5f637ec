// Package service 提供业务逻辑层
// 本文件实现 Service 层的依赖注入和聚合
package service

import (
	"context"
	"time"

	myredis "api_contatos/internal/dao/redis"
	"api_contatos/internal/service/contact"
)

// Store 数据库句柄需要满足的能力
type Store interface {
	contact.SessionStore
	Ping(ctx context.Context) error
}

// Services 聚合所有 Service 实例
// 作为依赖注入的入口，Handler 层通过此结构访问各个 Service
type Services struct {
	Contact ContactService
	Health  HealthService
}

// NewServices 创建并注入所有 Service 实例
// store: 数据库句柄，cache: 联系人缓存，events: 事件分发器
func NewServices(store Store, cache myredis.CacheService, events contact.EventDispatcher, cacheTTL time.Duration) *Services {
	return &Services{
		Contact: contact.NewContactService(store, cache, events, cacheTTL),
		Health:  store,
	}
}
