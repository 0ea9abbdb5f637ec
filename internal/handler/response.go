package handler

import (
	"errors"
	"net/http"

	"api_contatos/pkg/errorx"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// ErrorData 错误响应结构体
// detail 为字符串，或参数校验失败时的 {字段: 提示} 映射
type ErrorData struct {
	Detail any `json:"detail"`
}

// HandleSuccess 返回成功响应
func HandleSuccess(c *gin.Context, status int, data any) {
	c.JSON(status, data)
}

// HandleError 通用错误处理方法
// CodeNotFound 返回 404，其他错误记录日志后返回 500
func HandleError(c *gin.Context, err error) {
	if errorx.IsNotFound(err) {
		c.JSON(http.StatusNotFound, ErrorData{Detail: errorx.ErrContactNotFound.Msg})
		return
	}

	zap.L().Error("system error",
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method),
		zap.Int("code", errorx.GetCode(err)),
		zap.Error(err),
	)
	_ = c.Error(err)
	c.JSON(http.StatusInternalServerError, ErrorData{Detail: errorx.ErrServerBusy.Msg})
}

// HandleParamError 处理参数绑定错误，返回 422
// validator.ValidationErrors 会按 json 字段名翻译
func HandleParamError(c *gin.Context, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) && Trans != nil {
		c.JSON(http.StatusUnprocessableEntity, ErrorData{
			Detail: RemoveTopStruct(validationErrs.Translate(Trans)),
		})
		return
	}

	// 非 validator 错误（如 JSON 格式错误、路径 id 不是整数）
	zap.L().Debug("param bind error", zap.Error(err))
	c.JSON(http.StatusUnprocessableEntity, ErrorData{Detail: errorx.ErrInvalidParam.Msg})
}
