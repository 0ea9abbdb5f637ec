// Package repository 定义数据访问层接口和聚合结构
// 采用 Repository 模式将数据访问逻辑与业务逻辑分离
package repository

import (
	"api_contatos/internal/model"
)

// ContactRepository 联系人数据访问接口
// 所有方法都作用于构造时绑定的 *gorm.DB（通常是一个事务）
type ContactRepository interface {
	// Save id 为 0 时插入并回写分配的 id；否则覆盖同 id 记录的 name/phone
	// 记录不存在时不报错也不插入，调用方需先用 ExistsByID 检查
	Save(contact *model.Contact) error
	// GetByID 按 id 查找，不存在时返回 nil, nil
	GetByID(id int64) (*model.Contact, error)
	// ExistsByID 判断 id 是否存在
	ExistsByID(id int64) (bool, error)
	// Delete 按 id 删除，不存在时静默返回
	Delete(id int64) error
	// GetAll 返回全部联系人，按主键顺序
	GetAll() ([]model.Contact, error)
}
