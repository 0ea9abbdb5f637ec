// Package mq 提供联系人变更事件的发布
// Service 层只依赖 EventPublisher 接口，不感知 Kafka
package mq

import (
	"context"
	"time"

	"api_contatos/internal/dto/respond"
)

// 事件类型
const (
	EventContactCreated = "contact.created"
	EventContactUpdated = "contact.updated"
	EventContactDeleted = "contact.deleted"
)

// ContactEvent 联系人变更事件
// 删除事件不携带 Contact
type ContactEvent struct {
	Type       string                  `json:"type"`
	Id         int64                   `json:"id"`
	Contact    *respond.ContactRespond `json:"contact,omitempty"`
	OccurredAt time.Time               `json:"occurredAt"`
}

// EventPublisher 事件发布接口
type EventPublisher interface {
	// Publish 同步发布一个事件
	Publish(ctx context.Context, event ContactEvent) error
	// Close 释放底层连接
	Close() error
}

// noopPublisher kafkaConfig.mode = "none" 时使用
type noopPublisher struct{}

// NewNoopPublisher 创建不发送任何消息的发布器
func NewNoopPublisher() EventPublisher {
	return noopPublisher{}
}

func (noopPublisher) Publish(context.Context, ContactEvent) error { return nil }
func (noopPublisher) Close() error                                { return nil }
