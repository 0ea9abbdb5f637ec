package mq

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"api_contatos/internal/config"
	"api_contatos/pkg/errorx"

	"github.com/segmentio/kafka-go"
)

// messageWriter kafka.Writer 中用到的方法，测试时可替换
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher 将联系人事件写入 Kafka
// 消息 key 为联系人 id，同一联系人的事件落在同一分区，保证顺序
type KafkaPublisher struct {
	writer messageWriter
	topic  string
}

// NewKafkaPublisher 按配置创建 Kafka 发布器
func NewKafkaPublisher(conf *config.KafkaConfig) *KafkaPublisher {
	writer := &kafka.Writer{
		Addr:                   kafka.TCP(conf.HostPort),
		Topic:                  conf.Topic,
		Balancer:               &kafka.Hash{},
		WriteTimeout:           time.Duration(conf.Timeout) * time.Second,
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
	}
	return &KafkaPublisher{writer: writer, topic: conf.Topic}
}

// Publish 序列化事件并写入 Kafka
func (k *KafkaPublisher) Publish(ctx context.Context, event ContactEvent) error {
	value, err := json.Marshal(event)
	if err != nil {
		return errorx.Wrapf(err, errorx.CodeMQError, "marshal %s event id=%d", event.Type, event.Id)
	}
	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(event.Id, 10)),
		Value: value,
		Headers: []kafka.Header{
			{Key: "type", Value: []byte(event.Type)},
		},
	}
	if err := k.writer.WriteMessages(ctx, msg); err != nil {
		return errorx.Wrapf(err, errorx.CodeMQError, "kafka write topic %s", k.topic)
	}
	return nil
}

// Close 关闭 Writer，等待缓冲中的消息写完
func (k *KafkaPublisher) Close() error {
	return k.writer.Close()
}
