// Package router 提供 HTTP 路由注册
// 本文件是路由注册的入口，聚合所有子模块的路由
package router

import (
	"api_contatos/internal/handler"

	"github.com/gin-gonic/gin"
)

// Router 持有 Handler 聚合，负责把处理器挂到 gin 引擎上
type Router struct {
	handlers *handler.Handlers
}

// NewRouter 创建路由管理器
func NewRouter(handlers *handler.Handlers) *Router {
	return &Router{handlers: handlers}
}

// RegisterRoutes 注册所有路由
// 在 https_server.Init() 中调用
func (rt *Router) RegisterRoutes(r *gin.Engine) {
	rt.RegisterRootRoutes(r)    // 根路径与健康检查
	rt.RegisterContactRoutes(r) // 联系人路由
}
