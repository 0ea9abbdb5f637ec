// Package service 定义业务层接口
// 本文件定义所有 Service 接口，供 Handler 层调用
package service

import (
	"context"

	"api_contatos/internal/dto/request"
	"api_contatos/internal/dto/respond"
)

// ContactService 联系人业务接口
type ContactService interface {
	// Create 新增联系人
	Create(ctx context.Context, req request.ContactRequest) (*respond.ContactRespond, error)
	// Get 按 id 查询，不存在返回 errorx.ErrContactNotFound
	Get(ctx context.Context, id int64) (*respond.ContactRespond, error)
	// Update 整体更新，不存在返回 errorx.ErrContactNotFound
	Update(ctx context.Context, id int64, req request.ContactRequest) (*respond.ContactRespond, error)
	// Delete 删除，不存在返回 errorx.ErrContactNotFound
	Delete(ctx context.Context, id int64) error
	// List 查询全部联系人
	List(ctx context.Context) ([]respond.ContactRespond, error)
}

// HealthService 健康检查接口
type HealthService interface {
	// Ping 检查数据库是否可用
	Ping(ctx context.Context) error
}
