package contact

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"api_contatos/internal/config"
	"api_contatos/internal/dao/database"
	"api_contatos/internal/dao/database/repository"
	"api_contatos/internal/dto/request"
	"api_contatos/internal/infrastructure/mq"
	"api_contatos/pkg/errorx"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memCache struct {
	mu     sync.Mutex
	values map[string]string
	err    error
}

func newMemCache() *memCache {
	return &memCache{values: map[string]string{}}
}

func (m *memCache) Set(_ context.Context, key string, value string, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.values[key] = value
	return nil
}

func (m *memCache) Get(_ context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return "", m.err
	}
	return m.values[key], nil
}

func (m *memCache) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return m.err
}

func (m *memCache) Close() error { return nil }

type recordingDispatcher struct {
	events []mq.ContactEvent
}

func (r *recordingDispatcher) Dispatch(event mq.ContactEvent) {
	r.events = append(r.events, event)
}

type failingStore struct{ err error }

func (f failingStore) Session(context.Context, func(*repository.Repositories) error) error {
	return f.err
}

func newTestService(t *testing.T) (*contactService, *memCache, *recordingDispatcher) {
	t.Helper()
	store, err := database.Open(&config.DatabaseConfig{
		Driver: "sqlite",
		Path:   filepath.Join(t.TempDir(), "db.sqlite3"),
	}, "error")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	cache := newMemCache()
	events := &recordingDispatcher{}
	return NewContactService(store, cache, events, time.Minute), cache, events
}

func TestCreateAssignsID(t *testing.T) {
	svc, _, events := newTestService(t)
	ctx := context.Background()

	rsp, err := svc.Create(ctx, request.NewContactRequest("Ana", "123"))
	require.NoError(t, err)
	assert.Positive(t, rsp.Id)
	assert.Equal(t, "Ana", rsp.Name)
	assert.Equal(t, "123", rsp.Phone)

	require.Len(t, events.events, 1)
	assert.Equal(t, mq.EventContactCreated, events.events[0].Type)
	assert.Equal(t, rsp.Id, events.events[0].Id)
}

func TestGetMissingReturnsNotFound(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.Get(context.Background(), 99)
	assert.True(t, errorx.IsNotFound(err))
}

func TestGetPopulatesCache(t *testing.T) {
	svc, cache, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, request.NewContactRequest("Ana", "123"))
	require.NoError(t, err)

	got, err := svc.Get(ctx, created.Id)
	require.NoError(t, err)
	assert.Equal(t, created, got)
	assert.JSONEq(t, `{"id":1,"name":"Ana","phone":"123"}`, cache.values[cacheKey(created.Id)])

	// 命中缓存
	cache.values[cacheKey(created.Id)] = `{"id":1,"name":"Cached","phone":"123"}`
	got, err = svc.Get(ctx, created.Id)
	require.NoError(t, err)
	assert.Equal(t, "Cached", got.Name)
}

func TestGetIgnoresCacheFailures(t *testing.T) {
	svc, cache, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, request.NewContactRequest("Ana", "123"))
	require.NoError(t, err)

	cache.err = errors.New("redis down")
	got, err := svc.Get(ctx, created.Id)
	require.NoError(t, err)
	assert.Equal(t, "Ana", got.Name)

	cache.err = nil
	cache.values[cacheKey(created.Id)] = "not json"
	got, err = svc.Get(ctx, created.Id)
	require.NoError(t, err)
	assert.Equal(t, "Ana", got.Name)
}

func TestUpdateReplacesContentAndInvalidatesCache(t *testing.T) {
	svc, cache, events := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, request.NewContactRequest("Ana", "123"))
	require.NoError(t, err)
	_, err = svc.Get(ctx, created.Id)
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.Id, request.NewContactRequest("Ana Maria", "999"))
	require.NoError(t, err)
	assert.Equal(t, created.Id, updated.Id)
	assert.NotContains(t, cache.values, cacheKey(created.Id))

	got, err := svc.Get(ctx, created.Id)
	require.NoError(t, err)
	assert.Equal(t, updated, got)

	require.Len(t, events.events, 2)
	assert.Equal(t, mq.EventContactUpdated, events.events[1].Type)
}

func TestUpdateMissingReturnsNotFound(t *testing.T) {
	svc, _, events := newTestService(t)

	_, err := svc.Update(context.Background(), 5, request.NewContactRequest("X", "1"))
	assert.True(t, errorx.IsNotFound(err))
	assert.Empty(t, events.events)

	list, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestDelete(t *testing.T) {
	svc, _, events := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, request.NewContactRequest("Ana", "123"))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.Id))
	_, err = svc.Get(ctx, created.Id)
	assert.True(t, errorx.IsNotFound(err))

	err = svc.Delete(ctx, created.Id)
	assert.True(t, errorx.IsNotFound(err))

	require.Len(t, events.events, 2)
	assert.Equal(t, mq.EventContactDeleted, events.events[1].Type)
	assert.Nil(t, events.events[1].Contact)
}

func TestList(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	list, err := svc.List(ctx)
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)

	for _, name := range []string{"Ana", "Bia", "Caio"} {
		_, err := svc.Create(ctx, request.NewContactRequest(name, "1"))
		require.NoError(t, err)
	}

	list, err = svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 3)
}

func TestStorageFaultPropagates(t *testing.T) {
	fault := errorx.New(errorx.CodeDBError, "database is locked")
	svc := NewContactService(failingStore{err: fault}, newMemCache(), &recordingDispatcher{}, time.Minute)
	ctx := context.Background()

	_, err := svc.Create(ctx, request.NewContactRequest("Ana", "1"))
	assert.ErrorIs(t, err, fault)
	_, err = svc.Get(ctx, 1)
	assert.ErrorIs(t, err, fault)
	_, err = svc.List(ctx)
	assert.ErrorIs(t, err, fault)
	assert.ErrorIs(t, svc.Delete(ctx, 1), fault)
}

// interleavingStore 在下一次会话结束后、调用方拿到结果前执行 after
// 用于模拟"读已完成、缓存尚未写入"时并发提交的写操作
type interleavingStore struct {
	SessionStore
	after func()
}

func (s *interleavingStore) Session(ctx context.Context, fn func(*repository.Repositories) error) error {
	err := s.SessionStore.Session(ctx, fn)
	if after := s.after; after != nil {
		s.after = nil
		after()
	}
	return err
}

func newInterleavedService(t *testing.T) (*contactService, *interleavingStore, *memCache) {
	t.Helper()
	store, err := database.Open(&config.DatabaseConfig{
		Driver: "sqlite",
		Path:   filepath.Join(t.TempDir(), "db.sqlite3"),
	}, "error")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	wrapped := &interleavingStore{SessionStore: store}
	cache := newMemCache()
	return NewContactService(wrapped, cache, &recordingDispatcher{}, time.Minute), wrapped, cache
}

func TestGetDoesNotRefillCacheAfterConcurrentUpdate(t *testing.T) {
	svc, store, cache := newInterleavedService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, request.NewContactRequest("Ana", "1"))
	require.NoError(t, err)

	store.after = func() {
		_, err := svc.Update(ctx, created.Id, request.NewContactRequest("Bia", "2"))
		require.NoError(t, err)
	}
	// 这次读取在更新提交前完成，返回旧值是允许的，但不能把旧值写进缓存
	_, err = svc.Get(ctx, created.Id)
	require.NoError(t, err)
	assert.NotContains(t, cache.values, cacheKey(created.Id))

	got, err := svc.Get(ctx, created.Id)
	require.NoError(t, err)
	assert.Equal(t, "Bia", got.Name)
	assert.Equal(t, "2", got.Phone)

	// 没有并发写入时正常填充
	assert.Contains(t, cache.values, cacheKey(created.Id))
}

func TestGetDoesNotRefillCacheAfterConcurrentDelete(t *testing.T) {
	svc, store, cache := newInterleavedService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, request.NewContactRequest("Caio", "3"))
	require.NoError(t, err)

	store.after = func() {
		require.NoError(t, svc.Delete(ctx, created.Id))
	}
	_, err = svc.Get(ctx, created.Id)
	require.NoError(t, err)
	assert.NotContains(t, cache.values, cacheKey(created.Id))

	_, err = svc.Get(ctx, created.Id)
	assert.True(t, errorx.IsNotFound(err))
}

func TestCreateAcceptsEmptyStrings(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, request.NewContactRequest("", ""))
	require.NoError(t, err)

	got, err := svc.Get(ctx, created.Id)
	require.NoError(t, err)
	assert.Empty(t, got.Name)
	assert.Empty(t, got.Phone)
}
