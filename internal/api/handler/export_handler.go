package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/tf267183/ecamp3/internal/service"
	"github.com/tf267183/ecamp3/pkg/response"
)

const (
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	contentTypeICS  = "text/calendar; charset=utf-8"
)

// ExportHandler 导出模块 HTTP 处理器
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler 创建 ExportHandler
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// ExportPicasso 导出 picasso 为 Excel
// GET /api/v1/export/periods/:id/picasso.xlsx
func (h *ExportHandler) ExportPicasso(c *gin.Context) {
	periodID, ok := MustGetUUIDParam(c, "id", "阶段ID")
	if !ok {
		return
	}

	buf, filename, err := h.exportSvc.ExportPicasso(c.Request.Context(), periodID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Attachment(c, contentTypeXLSX, filename, buf.Bytes())
}

// ExportCalendar 导出日程为 iCalendar
// GET /api/v1/export/periods/:id/schedule.ics
func (h *ExportHandler) ExportCalendar(c *gin.Context) {
	periodID, ok := MustGetUUIDParam(c, "id", "阶段ID")
	if !ok {
		return
	}

	buf, filename, err := h.exportSvc.ExportCalendar(c.Request.Context(), periodID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Attachment(c, contentTypeICS, filename, buf.Bytes())
}
