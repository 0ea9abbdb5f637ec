package middleware

import (
	"api_contatos/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/unrolled/secure"
	"go.uber.org/zap"
)

// SecureHandler 添加安全响应头，按配置把 HTTP 请求重定向到 HTTPS
// dev 为 true 时 unrolled/secure 跳过 SSL 重定向
func SecureHandler(conf *config.SecureConfig, dev bool) gin.HandlerFunc {
	// 在返回函数之前初始化，避免每次请求都重复创建对象
	secureMiddleware := secure.New(secure.Options{
		SSLRedirect:        conf.SSLRedirect,
		SSLHost:            conf.SSLHost,
		FrameDeny:          true,
		ContentTypeNosniff: true,
		ReferrerPolicy:     "same-origin",
		IsDevelopment:      dev,
	})

	return func(c *gin.Context) {
		// 发生重定向时 Process 返回错误，响应已经写出
		if err := secureMiddleware.Process(c.Writer, c.Request); err != nil {
			zap.L().Debug("secure middleware stopped request", zap.Error(err))
			c.Abort()
			return
		}
		c.Next()
	}
}
