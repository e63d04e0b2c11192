package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/tf267183/ecamp3/internal/dto"
	"github.com/tf267183/ecamp3/internal/service"
	"github.com/tf267183/ecamp3/pkg/response"
)

// PicassoHandler picasso 视图 HTTP 处理器
type PicassoHandler struct {
	picassoSvc service.PicassoService
}

// NewPicassoHandler 创建 PicassoHandler
func NewPicassoHandler(picassoSvc service.PicassoService) *PicassoHandler {
	return &PicassoHandler{picassoSvc: picassoSvc}
}

// GetPicasso 计算阶段的 picasso 布局
// GET /api/v1/periods/:id/picasso?max_days_per_page=&time_bucket_hours=
func (h *PicassoHandler) GetPicasso(c *gin.Context) {
	periodID, ok := MustGetUUIDParam(c, "id", "阶段ID")
	if !ok {
		return
	}

	var query dto.PicassoQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.picassoSvc.Render(c.Request.Context(), periodID, &query)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.OK(c, result)
}
