package contact

import (
	"context"
	"encoding/json"
	"strconv"
	"sync"
	"time"

	"api_contatos/internal/dao/database/repository"
	myredis "api_contatos/internal/dao/redis"
	"api_contatos/internal/dto/request"
	"api_contatos/internal/dto/respond"
	"api_contatos/internal/infrastructure/mq"
	"api_contatos/internal/model"
	"api_contatos/pkg/constants"
	"api_contatos/pkg/errorx"

	"go.uber.org/zap"
)

// SessionStore 提供按请求划分的数据库会话
type SessionStore interface {
	Session(ctx context.Context, fn func(repos *repository.Repositories) error) error
}

// EventDispatcher 异步发布联系人变更事件
type EventDispatcher interface {
	Dispatch(event mq.ContactEvent)
}

// contactService 联系人业务逻辑实现
type contactService struct {
	store    SessionStore
	cache    myredis.CacheService
	events   EventDispatcher
	cacheTTL time.Duration

	// invalidations 每次写后失效加一；读填充只在加载期间没有发生失效时写入
	// 用全局计数而不是按 id 计数，代价是写入频繁时少量填充被跳过
	fillMu        sync.Mutex
	invalidations uint64
}

// NewContactService 构造函数
func NewContactService(store SessionStore, cache myredis.CacheService, events EventDispatcher, cacheTTL time.Duration) *contactService {
	return &contactService{
		store:    store,
		cache:    cache,
		events:   events,
		cacheTTL: cacheTTL,
	}
}

// Create 新增联系人，id 由数据库分配
func (s *contactService) Create(ctx context.Context, req request.ContactRequest) (*respond.ContactRespond, error) {
	contact := &model.Contact{Name: req.GetName(), Phone: req.GetPhone()}
	err := s.store.Session(ctx, func(repos *repository.Repositories) error {
		return repos.Contact.Save(contact)
	})
	if err != nil {
		return nil, err
	}

	rsp := respond.NewContactRespond(contact)
	s.publish(mq.EventContactCreated, contact.ID, &rsp)
	return &rsp, nil
}

// Get 按 id 查询联系人，优先读缓存
func (s *contactService) Get(ctx context.Context, id int64) (*respond.ContactRespond, error) {
	if rsp, ok := s.getCached(ctx, id); ok {
		return rsp, nil
	}

	// 必须在读库之前取代数，否则读到旧行后发生的失效会被漏掉
	gen := s.generation()
	var contact *model.Contact
	err := s.store.Session(ctx, func(repos *repository.Repositories) error {
		var err error
		contact, err = repos.Contact.GetByID(id)
		return err
	})
	if err != nil {
		return nil, err
	}
	if contact == nil {
		return nil, errorx.ErrContactNotFound
	}

	rsp := respond.NewContactRespond(contact)
	s.fillCache(ctx, gen, &rsp)
	return &rsp, nil
}

// Update 整体替换 name/phone，id 保持不变
// 存在性检查与写入在同一事务内
func (s *contactService) Update(ctx context.Context, id int64, req request.ContactRequest) (*respond.ContactRespond, error) {
	contact := &model.Contact{ID: id, Name: req.GetName(), Phone: req.GetPhone()}
	err := s.store.Session(ctx, func(repos *repository.Repositories) error {
		exists, err := repos.Contact.ExistsByID(id)
		if err != nil {
			return err
		}
		if !exists {
			return errorx.ErrContactNotFound
		}
		return repos.Contact.Save(contact)
	})
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, id)
	rsp := respond.NewContactRespond(contact)
	s.publish(mq.EventContactUpdated, id, &rsp)
	return &rsp, nil
}

// Delete 删除联系人，不存在时返回 NotFound
func (s *contactService) Delete(ctx context.Context, id int64) error {
	err := s.store.Session(ctx, func(repos *repository.Repositories) error {
		exists, err := repos.Contact.ExistsByID(id)
		if err != nil {
			return err
		}
		if !exists {
			return errorx.ErrContactNotFound
		}
		return repos.Contact.Delete(id)
	})
	if err != nil {
		return err
	}

	s.invalidate(ctx, id)
	s.publish(mq.EventContactDeleted, id, nil)
	return nil
}

// List 返回全部联系人，没有数据时返回空切片
func (s *contactService) List(ctx context.Context) ([]respond.ContactRespond, error) {
	var contacts []model.Contact
	err := s.store.Session(ctx, func(repos *repository.Repositories) error {
		var err error
		contacts, err = repos.Contact.GetAll()
		return err
	})
	if err != nil {
		return nil, err
	}

	rspList := make([]respond.ContactRespond, 0, len(contacts))
	for i := range contacts {
		rspList = append(rspList, respond.NewContactRespond(&contacts[i]))
	}
	return rspList, nil
}

// ==================== 缓存 ====================

func cacheKey(id int64) string {
	return constants.CONTACT_CACHE_PREFIX + strconv.FormatInt(id, 10)
}

// getCached 缓存故障或数据损坏都按未命中处理
func (s *contactService) getCached(ctx context.Context, id int64) (*respond.ContactRespond, bool) {
	value, err := s.cache.Get(ctx, cacheKey(id))
	if err != nil {
		zap.L().Warn("contact cache get failed", zap.Int64("id", id), zap.Error(err))
		return nil, false
	}
	if value == "" {
		return nil, false
	}
	var rsp respond.ContactRespond
	if err := json.Unmarshal([]byte(value), &rsp); err != nil {
		zap.L().Warn("contact cache entry corrupted", zap.Int64("id", id), zap.Error(err))
		return nil, false
	}
	return &rsp, true
}

func (s *contactService) generation() uint64 {
	s.fillMu.Lock()
	defer s.fillMu.Unlock()
	return s.invalidations
}

// fillCache 加载期间发生过失效时放弃写入，避免旧数据在失效之后被写回
// 检查与写入在同一把锁内，失效只能排在整个写入之前或之后
func (s *contactService) fillCache(ctx context.Context, gen uint64, rsp *respond.ContactRespond) {
	value, err := json.Marshal(rsp)
	if err != nil {
		return
	}

	s.fillMu.Lock()
	defer s.fillMu.Unlock()
	if s.invalidations != gen {
		zap.L().Debug("contact cache fill skipped", zap.Int64("id", rsp.Id))
		return
	}
	if err := s.cache.Set(ctx, cacheKey(rsp.Id), string(value), s.cacheTTL); err != nil {
		zap.L().Warn("contact cache set failed", zap.Int64("id", rsp.Id), zap.Error(err))
	}
}

// invalidate 在事务提交后同步删除缓存，保证后续读取拿到新值
func (s *contactService) invalidate(ctx context.Context, id int64) {
	s.fillMu.Lock()
	s.invalidations++
	s.fillMu.Unlock()

	if err := s.cache.Delete(ctx, cacheKey(id)); err != nil {
		zap.L().Warn("contact cache delete failed", zap.Int64("id", id), zap.Error(err))
	}
}

func (s *contactService) publish(eventType string, id int64, rsp *respond.ContactRespond) {
	s.events.Dispatch(mq.ContactEvent{
		Type:       eventType,
		Id:         id,
		Contact:    rsp,
		OccurredAt: time.Now().UTC(),
	})
}
