package repository

import (
	"api_contatos/internal/model"

	"gorm.io/gorm"
)

type contactRepository struct {
	db *gorm.DB
}

// NewContactRepository 创建联系人 Repository
func NewContactRepository(db *gorm.DB) ContactRepository {
	return &contactRepository{db: db}
}

// Save 插入或覆盖联系人
func (r *contactRepository) Save(contact *model.Contact) error {
	if contact.ID == 0 {
		if err := r.db.Create(contact).Error; err != nil {
			return wrapDBError(err, "创建联系人")
		}
		return nil
	}
	// 使用 map 保证空字符串也会被写入
	err := r.db.Model(&model.Contact{}).
		Where("id = ?", contact.ID).
		Updates(map[string]any{"name": contact.Name, "phone": contact.Phone}).Error
	if err != nil {
		return wrapDBErrorf(err, "更新联系人 id=%d", contact.ID)
	}
	return nil
}

// GetByID 按 id 查找联系人
func (r *contactRepository) GetByID(id int64) (*model.Contact, error) {
	var contact model.Contact
	result := r.db.Where("id = ?", id).Limit(1).Find(&contact)
	if result.Error != nil {
		return nil, wrapDBErrorf(result.Error, "查询联系人 id=%d", id)
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return &contact, nil
}

// ExistsByID 判断联系人是否存在
func (r *contactRepository) ExistsByID(id int64) (bool, error) {
	var count int64
	if err := r.db.Model(&model.Contact{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, wrapDBErrorf(err, "检查联系人 id=%d", id)
	}
	return count > 0, nil
}

// Delete 按 id 删除联系人
func (r *contactRepository) Delete(id int64) error {
	if err := r.db.Where("id = ?", id).Delete(&model.Contact{}).Error; err != nil {
		return wrapDBErrorf(err, "删除联系人 id=%d", id)
	}
	return nil
}

// GetAll 查询全部联系人
func (r *contactRepository) GetAll() ([]model.Contact, error) {
	contacts := make([]model.Contact, 0)
	if err := r.db.Order("id").Find(&contacts).Error; err != nil {
		return nil, wrapDBError(err, "查询联系人列表")
	}
	return contacts, nil
}
