package request

// ContactRequest 创建/更新联系人请求
// 不包含 id：id 由存储层分配（创建）或取自路径参数（更新）
// 字段用指针区分"缺失"与"空字符串"：缺失或 null 校验失败，"" 合法
type ContactRequest struct {
	Name  *string `json:"name" binding:"required"`
	Phone *string `json:"phone" binding:"required"`
}

// NewContactRequest 由字符串值构造请求
func NewContactRequest(name, phone string) ContactRequest {
	return ContactRequest{Name: &name, Phone: &phone}
}

// GetName 未设置时返回空字符串
func (r ContactRequest) GetName() string {
	if r.Name == nil {
		return ""
	}
	return *r.Name
}

// GetPhone 未设置时返回空字符串
func (r ContactRequest) GetPhone() string {
	if r.Phone == nil {
		return ""
	}
	return *r.Phone
}

// ContactIdRequest 路径参数 /api/contatos/:id
type ContactIdRequest struct {
	Id int64 `uri:"id"`
}
