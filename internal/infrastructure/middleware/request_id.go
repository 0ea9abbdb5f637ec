package middleware

import (
	"api_contatos/pkg/constants"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestID 为每个请求分配 ID 并写入响应头
// 客户端已携带 X-Request-ID 时沿用
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(constants.REQUEST_ID_HEADER)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Header(constants.REQUEST_ID_HEADER, id)
		c.Next()
	}
}
