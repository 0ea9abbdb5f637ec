// Package model 定义数据库实体模型
// 本文件定义联系人模型，对应 contatos 表
package model

// Contact 联系人模型
// ID 由数据库自增分配，写入后不可修改
type Contact struct {
	ID    int64  `gorm:"column:id;primaryKey;autoIncrement"`
	Name  string `gorm:"column:name;type:varchar(255);not null;comment:姓名"`
	Phone string `gorm:"column:phone;type:varchar(64);not null;comment:电话"`
}

func (Contact) TableName() string {
	return "contatos"
}
