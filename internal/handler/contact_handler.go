// Package handler 提供 HTTP 请求处理器
// 本文件处理联系人相关的 API 请求
package handler

import (
	"net/http"

	"api_contatos/internal/dto/request"
	"api_contatos/internal/service"

	"github.com/gin-gonic/gin"
)

// ContactHandler 联系人处理器
type ContactHandler struct {
	svc service.ContactService
}

// NewContactHandler 构造函数
func NewContactHandler(svc service.ContactService) *ContactHandler {
	return &ContactHandler{svc: svc}
}

// Create 新增联系人
// POST /api/contatos
// 请求体: request.ContactRequest
// 响应: 201 respond.ContactRespond
func (h *ContactHandler) Create(c *gin.Context) {
	var req request.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, http.StatusCreated, data)
}

// GetByID 按 id 查询联系人
// GET /api/contatos/:id
// 响应: 200 respond.ContactRespond / 404
func (h *ContactHandler) GetByID(c *gin.Context) {
	var uri request.ContactIdRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.svc.Get(c.Request.Context(), uri.Id)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, http.StatusOK, data)
}

// Update 更新联系人
// PUT /api/contatos/:id
// 请求体: request.ContactRequest
// 响应: 200 respond.ContactRespond / 404
func (h *ContactHandler) Update(c *gin.Context) {
	var uri request.ContactIdRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		HandleParamError(c, err)
		return
	}
	var req request.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.svc.Update(c.Request.Context(), uri.Id, req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, http.StatusOK, data)
}

// Delete 删除联系人
// DELETE /api/contatos/:id
// 响应: 204 空响应体 / 404
func (h *ContactHandler) Delete(c *gin.Context) {
	var uri request.ContactIdRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := h.svc.Delete(c.Request.Context(), uri.Id); err != nil {
		HandleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// List 查询全部联系人
// GET /api/contatos
// 响应: 200 []respond.ContactRespond
func (h *ContactHandler) List(c *gin.Context) {
	data, err := h.svc.List(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, http.StatusOK, data)
}
