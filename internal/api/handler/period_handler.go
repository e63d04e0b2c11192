package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/tf267183/ecamp3/internal/dto"
	"github.com/tf267183/ecamp3/internal/service"
	"github.com/tf267183/ecamp3/pkg/response"
)

// PeriodHandler 阶段模块 HTTP 处理器
type PeriodHandler struct {
	periodSvc service.PeriodService
}

// NewPeriodHandler 创建 PeriodHandler
func NewPeriodHandler(periodSvc service.PeriodService) *PeriodHandler {
	return &PeriodHandler{periodSvc: periodSvc}
}

// CreatePeriod 创建阶段
// POST /api/v1/periods
func (h *PeriodHandler) CreatePeriod(c *gin.Context) {
	var req dto.CreatePeriodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	period, err := h.periodSvc.Create(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Created(c, period)
}

// GetPeriod 获取阶段详情
// GET /api/v1/periods/:id
func (h *PeriodHandler) GetPeriod(c *gin.Context) {
	id, ok := MustGetUUIDParam(c, "id", "阶段ID")
	if !ok {
		return
	}

	period, err := h.periodSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.OK(c, period)
}

// UpdatePeriod 更新阶段
// PUT /api/v1/periods/:id
func (h *PeriodHandler) UpdatePeriod(c *gin.Context) {
	id, ok := MustGetUUIDParam(c, "id", "阶段ID")
	if !ok {
		return
	}

	var req dto.UpdatePeriodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	period, err := h.periodSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.OK(c, period)
}
