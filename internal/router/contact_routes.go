package router

import (
	"api_contatos/pkg/constants"

	"github.com/gin-gonic/gin"
)

// RegisterContactRoutes 注册联系人相关路由
func (rt *Router) RegisterContactRoutes(r *gin.Engine) {
	h := rt.handlers.Contact
	contatos := r.Group(constants.API_PREFIX)
	{
		contatos.POST("", h.Create)
		contatos.GET("", h.List)
		contatos.GET("/:id", h.GetByID)
		contatos.PUT("/:id", h.Update)
		contatos.DELETE("/:id", h.Delete)
	}
}
