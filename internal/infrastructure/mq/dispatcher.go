package mq

import (
	"context"
	"time"

	"api_contatos/internal/infrastructure/worker"

	"go.uber.org/zap"
)

// Dispatcher 通过 Worker Pool 异步发布事件
// 发布失败只记录日志，不影响已经提交的数据库事务
type Dispatcher struct {
	publisher EventPublisher
	pool      *worker.Pool
	timeout   time.Duration
}

// NewDispatcher 创建异步事件分发器
func NewDispatcher(publisher EventPublisher, pool *worker.Pool, timeout time.Duration) *Dispatcher {
	return &Dispatcher{publisher: publisher, pool: pool, timeout: timeout}
}

// Dispatch 提交事件，立即返回
func (d *Dispatcher) Dispatch(event ContactEvent) {
	d.pool.Submit(func() {
		ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
		defer cancel()
		if err := d.publisher.Publish(ctx, event); err != nil {
			zap.L().Error("publish contact event failed",
				zap.String("type", event.Type),
				zap.Int64("id", event.Id),
				zap.Error(err),
			)
		}
	})
}

// Close 等待已提交的事件发送完毕后关闭发布器
func (d *Dispatcher) Close() error {
	d.pool.Close()
	return d.publisher.Close()
}
