package repository

import (
	"gorm.io/gorm"
)

// Repositories 聚合所有 Repository 实例
// 作为依赖注入的入口，Service 层通过此结构访问数据层
type Repositories struct {
	db      *gorm.DB
	Contact ContactRepository
}

// NewRepositories 创建绑定到 db 的 Repository 集合
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		db:      db,
		Contact: NewContactRepository(db),
	}
}

// Transaction 在数据库事务中执行函数
// fn 返回错误或 panic 时回滚，否则提交
func (r *Repositories) Transaction(fn func(txRepos *Repositories) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(NewRepositories(tx))
	})
}
