package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/tf267183/ecamp3/internal/dto"
	"github.com/tf267183/ecamp3/internal/service"
	"github.com/tf267183/ecamp3/pkg/response"
)

// ScheduleEntryHandler 日程条目模块 HTTP 处理器
type ScheduleEntryHandler struct {
	entrySvc service.ScheduleEntryService
}

// NewScheduleEntryHandler 创建 ScheduleEntryHandler
func NewScheduleEntryHandler(entrySvc service.ScheduleEntryService) *ScheduleEntryHandler {
	return &ScheduleEntryHandler{entrySvc: entrySvc}
}

// ListByPeriod 列出阶段内的日程条目（含编号）
// GET /api/v1/periods/:id/schedule-entries
func (h *ScheduleEntryHandler) ListByPeriod(c *gin.Context) {
	periodID, ok := MustGetUUIDParam(c, "id", "阶段ID")
	if !ok {
		return
	}

	entries, err := h.entrySvc.ListByPeriod(c.Request.Context(), periodID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.OK(c, gin.H{"list": entries})
}

// GetScheduleEntry 获取单个日程条目
// GET /api/v1/schedule-entries/:id
func (h *ScheduleEntryHandler) GetScheduleEntry(c *gin.Context) {
	id, ok := MustGetUUIDParam(c, "id", "日程条目ID")
	if !ok {
		return
	}

	entry, err := h.entrySvc.GetByID(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.OK(c, entry)
}

// CreateScheduleEntry 创建日程条目
// POST /api/v1/schedule-entries
func (h *ScheduleEntryHandler) CreateScheduleEntry(c *gin.Context) {
	var req dto.CreateScheduleEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	entry, err := h.entrySvc.Create(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Created(c, entry)
}

// UpdateScheduleEntry 更新日程条目
// PUT /api/v1/schedule-entries/:id
func (h *ScheduleEntryHandler) UpdateScheduleEntry(c *gin.Context) {
	id, ok := MustGetUUIDParam(c, "id", "日程条目ID")
	if !ok {
		return
	}

	var req dto.UpdateScheduleEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	entry, err := h.entrySvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.OK(c, entry)
}

// DeleteScheduleEntry 删除日程条目
// DELETE /api/v1/schedule-entries/:id
func (h *ScheduleEntryHandler) DeleteScheduleEntry(c *gin.Context) {
	id, ok := MustGetUUIDParam(c, "id", "日程条目ID")
	if !ok {
		return
	}

	if err := h.entrySvc.Delete(c.Request.Context(), id); err != nil {
		handleServiceError(c, err)
		return
	}

	response.OK(c, nil)
}
