// Package redis 定义缓存服务接口
// Service 层依赖此接口而非具体 Redis 实现
package redis

import (
	"context"
	"time"
)

// CacheService 缓存服务接口
type CacheService interface {
	// Set 设置键值对并指定过期时间
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
	// Get 获取键对应的值（键不存在返回空字符串和 nil）
	Get(ctx context.Context, key string) (string, error)
	// Delete 删除键（如果存在）
	Delete(ctx context.Context, key string) error
	// Close 释放连接
	Close() error
}

// noopCache 未启用缓存时使用，所有读取都视为未命中
type noopCache struct{}

// NewNoopCache 创建空缓存实现
func NewNoopCache() CacheService {
	return noopCache{}
}

func (noopCache) Set(context.Context, string, string, time.Duration) error { return nil }
func (noopCache) Get(context.Context, string) (string, error)              { return "", nil }
func (noopCache) Delete(context.Context, string) error                     { return nil }
func (noopCache) Close() error                                             { return nil }
