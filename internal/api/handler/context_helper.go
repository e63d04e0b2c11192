package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/tf267183/ecamp3/pkg/response"
)

// MustGetUUIDParam 读取并校验路径中的 UUID 参数。
// 校验失败时写入 400 响应并返回 false，调用方应直接 return。
func MustGetUUIDParam(c *gin.Context, name, label string) (string, bool) {
	id := c.Param(name)
	if id == "" {
		response.BadRequest(c, 10001, label+"不能为空")
		return "", false
	}
	if _, err := uuid.Parse(id); err != nil {
		response.BadRequest(c, 10001, label+"格式无效")
		return "", false
	}
	return id, true
}
