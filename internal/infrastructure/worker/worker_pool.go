// Package worker 提供固定数量协程的异步任务池
// 用于把不影响响应结果的操作（如事件发布）移出请求路径
package worker

import (
	"sync"

	"go.uber.org/zap"
)

// Pool 异步任务池
type Pool struct {
	tasks chan func()
	wg    sync.WaitGroup
	once  sync.Once
}

// NewPool 启动 workerNum 个 Worker，通道缓冲区大小为 bufferSize
func NewPool(workerNum int, bufferSize int) *Pool {
	p := &Pool{tasks: make(chan func(), bufferSize)}
	for i := 0; i < workerNum; i++ {
		p.wg.Add(1)
		go p.startWorker()
	}
	zap.L().Info("worker pool started", zap.Int("workers", workerNum), zap.Int("buffer", bufferSize))
	return p
}

// Submit 提交异步任务
// 通道已满时降级为同步执行，任务不会被丢弃
func (p *Pool) Submit(action func()) {
	select {
	case p.tasks <- action:
	default:
		zap.L().Warn("worker task channel full, executing synchronously")
		runTask(action)
	}
}

// Close 停止接收任务并等待已提交的任务执行完毕
// Close 之后不能再调用 Submit
func (p *Pool) Close() {
	p.once.Do(func() {
		close(p.tasks)
	})
	p.wg.Wait()
}

// startWorker 单个 Worker 消费循环
func (p *Pool) startWorker() {
	defer p.wg.Done()
	for task := range p.tasks {
		runTask(task)
	}
}

// runTask 执行任务，panic 只记录日志不影响 Worker
func runTask(action func()) {
	if action == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			zap.L().Error("worker task panic", zap.Any("recover", r))
		}
	}()
	action()
}
