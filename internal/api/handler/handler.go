package handler

import "github.com/tf267183/ecamp3/internal/service"

// Handler 所有 Handler 的聚合入口
type Handler struct {
	Camp          *CampHandler
	Period        *PeriodHandler
	ScheduleEntry *ScheduleEntryHandler
	Picasso       *PicassoHandler
	Export        *ExportHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Camp:          NewCampHandler(svc.Camp),
		Period:        NewPeriodHandler(svc.Period),
		ScheduleEntry: NewScheduleEntryHandler(svc.ScheduleEntry),
		Picasso:       NewPicassoHandler(svc.Picasso),
		Export:        NewExportHandler(svc.Export),
	}
}
