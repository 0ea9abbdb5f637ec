package handler

import (
	"net/http"

	"api_contatos/internal/dto/respond"
	"api_contatos/internal/service"
	"api_contatos/pkg/constants"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RootHandler 根路径与健康检查
type RootHandler struct {
	health service.HealthService
}

// NewRootHandler 构造函数
func NewRootHandler(health service.HealthService) *RootHandler {
	return &RootHandler{health: health}
}

// Root GET /
func (h *RootHandler) Root(c *gin.Context) {
	HandleSuccess(c, http.StatusOK, respond.RootRespond{Mensagem: constants.ROOT_MESSAGE})
}

// Health GET /health
// 数据库不可用时返回 503
func (h *RootHandler) Health(c *gin.Context) {
	if err := h.health.Ping(c.Request.Context()); err != nil {
		zap.L().Warn("health check failed", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, respond.HealthRespond{Status: "unavailable"})
		return
	}
	HandleSuccess(c, http.StatusOK, respond.HealthRespond{Status: "ok"})
}
