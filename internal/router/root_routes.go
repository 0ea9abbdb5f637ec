package router

import (
	"github.com/gin-gonic/gin"
)

// RegisterRootRoutes 注册根路径与健康检查
func (rt *Router) RegisterRootRoutes(r *gin.Engine) {
	r.GET("/", rt.handlers.Root.Root)
	r.GET("/health", rt.handlers.Root.Health)
}
