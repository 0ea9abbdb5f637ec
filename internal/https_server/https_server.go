// Package https_server 提供 HTTP/HTTPS 服务器的初始化和配置
// 负责创建 Gin 引擎实例并配置中间件和路由
package https_server

import (
	"net/http"

	"api_contatos/internal/config"
	"api_contatos/internal/handler"
	"api_contatos/internal/infrastructure/logger"
	"api_contatos/internal/infrastructure/middleware"
	"api_contatos/internal/router"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Init 初始化 Gin 引擎
// handlers: 通过依赖注入传入的 handler 聚合对象
// 中间件顺序：请求 ID -> 日志 -> panic 恢复 -> 安全头 -> CORS -> 路由
func Init(conf *config.Config, handlers *handler.Handlers) *gin.Engine {
	if conf.MainConfig.Mode != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}

	// 不使用 gin.Default() 以便完全控制中间件
	engine := gin.New()

	engine.Use(middleware.RequestID())
	engine.Use(logger.GinLogger())
	engine.Use(logger.GinRecovery(true))
	engine.Use(middleware.SecureHandler(&conf.SecureConfig, conf.MainConfig.Mode == "dev"))

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = conf.AllowOrigins
	corsConfig.AllowMethods = []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	engine.Use(cors.New(corsConfig))

	rt := router.NewRouter(handlers)
	rt.RegisterRoutes(engine)

	return engine
}
