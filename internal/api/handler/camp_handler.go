package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/tf267183/ecamp3/internal/dto"
	"github.com/tf267183/ecamp3/internal/service"
	"github.com/tf267183/ecamp3/pkg/response"
)

// CampHandler 营地模块 HTTP 处理器
type CampHandler struct {
	campSvc service.CampService
}

// NewCampHandler 创建 CampHandler
func NewCampHandler(campSvc service.CampService) *CampHandler {
	return &CampHandler{campSvc: campSvc}
}

// CreateCamp 创建营地
// POST /api/v1/camps
func (h *CampHandler) CreateCamp(c *gin.Context) {
	var req dto.CreateCampRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	camp, err := h.campSvc.Create(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Created(c, camp)
}

// GetCamp 获取营地详情（含阶段）
// GET /api/v1/camps/:id
func (h *CampHandler) GetCamp(c *gin.Context) {
	id, ok := MustGetUUIDParam(c, "id", "营地ID")
	if !ok {
		return
	}

	camp, err := h.campSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.OK(c, camp)
}

// CreateCategory 创建活动类别
// POST /api/v1/camps/:id/categories
func (h *CampHandler) CreateCategory(c *gin.Context) {
	id, ok := MustGetUUIDParam(c, "id", "营地ID")
	if !ok {
		return
	}

	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	category, err := h.campSvc.CreateCategory(c.Request.Context(), id, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Created(c, category)
}

// CreateActivity 创建活动
// POST /api/v1/camps/:id/activities
func (h *CampHandler) CreateActivity(c *gin.Context) {
	id, ok := MustGetUUIDParam(c, "id", "营地ID")
	if !ok {
		return
	}

	var req dto.CreateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	activity, err := h.campSvc.CreateActivity(c.Request.Context(), id, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Created(c, activity)
}
