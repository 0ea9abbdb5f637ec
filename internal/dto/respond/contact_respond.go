package respond

import "api_contatos/internal/model"

// ContactRespond 联系人响应，包含全部字段
type ContactRespond struct {
	Id    int64  `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// NewContactRespond 由模型构造响应
func NewContactRespond(c *model.Contact) ContactRespond {
	return ContactRespond{
		Id:    c.ID,
		Name:  c.Name,
		Phone: c.Phone,
	}
}

// RootRespond GET / 响应
type RootRespond struct {
	Mensagem string `json:"mensagem"`
}

// HealthRespond GET /health 响应
type HealthRespond struct {
	Status string `json:"status"`
}
