package mq

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"api_contatos/internal/dto/respond"
	"api_contatos/internal/infrastructure/worker"
	"api_contatos/pkg/errorx"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	mu     sync.Mutex
	msgs   []kafka.Message
	err    error
	closed bool
}

func (f *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.msgs = append(f.msgs, msgs...)
	return nil
}

func (f *fakeWriter) Close() error {
	f.closed = true
	return nil
}

func TestKafkaPublisherPublish(t *testing.T) {
	w := &fakeWriter{}
	p := &KafkaPublisher{writer: w, topic: "contatos"}
	at := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

	err := p.Publish(context.Background(), ContactEvent{
		Type:       EventContactCreated,
		Id:         12,
		Contact:    &respond.ContactRespond{Id: 12, Name: "Ana", Phone: "123"},
		OccurredAt: at,
	})
	require.NoError(t, err)
	require.Len(t, w.msgs, 1)

	msg := w.msgs[0]
	assert.Equal(t, "12", string(msg.Key))
	assert.Equal(t, []kafka.Header{{Key: "type", Value: []byte(EventContactCreated)}}, msg.Headers)

	var got ContactEvent
	require.NoError(t, json.Unmarshal(msg.Value, &got))
	assert.Equal(t, "Ana", got.Contact.Name)
	assert.True(t, at.Equal(got.OccurredAt))

	require.NoError(t, p.Close())
	assert.True(t, w.closed)
}

func TestDeletedEventOmitsContact(t *testing.T) {
	w := &fakeWriter{}
	p := &KafkaPublisher{writer: w, topic: "contatos"}

	require.NoError(t, p.Publish(context.Background(), ContactEvent{Type: EventContactDeleted, Id: 3}))
	assert.NotContains(t, string(w.msgs[0].Value), `"contact"`)
}

func TestKafkaPublisherWrapsWriteError(t *testing.T) {
	p := &KafkaPublisher{writer: &fakeWriter{err: errors.New("no brokers")}, topic: "contatos"}

	err := p.Publish(context.Background(), ContactEvent{Type: EventContactUpdated, Id: 1})
	require.Error(t, err)
	assert.Equal(t, errorx.CodeMQError, errorx.GetCode(err))
}

func TestDispatcherDeliversBeforeClose(t *testing.T) {
	w := &fakeWriter{}
	d := NewDispatcher(&KafkaPublisher{writer: w, topic: "contatos"}, worker.NewPool(2, 8), time.Second)

	for i := int64(1); i <= 5; i++ {
		d.Dispatch(ContactEvent{Type: EventContactCreated, Id: i})
	}
	require.NoError(t, d.Close())

	assert.Len(t, w.msgs, 5)
	assert.True(t, w.closed)
}

func TestDispatcherSwallowsPublishError(t *testing.T) {
	d := NewDispatcher(&KafkaPublisher{writer: &fakeWriter{err: errors.New("down")}}, worker.NewPool(1, 1), time.Second)

	assert.NotPanics(t, func() { d.Dispatch(ContactEvent{Type: EventContactDeleted, Id: 1}) })
	assert.NoError(t, d.Close())
}
