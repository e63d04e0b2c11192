package service

import (
	"go.uber.org/zap"

	"github.com/tf267183/ecamp3/config"
	"github.com/tf267183/ecamp3/internal/repository"
)

// Service 所有 Service 的聚合入口
type Service struct {
	Camp          CampService
	Period        PeriodService
	ScheduleEntry ScheduleEntryService
	Picasso       PicassoService
	Export        ExportService
}

// NewService 创建 Service 聚合
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	logger *zap.Logger,
) *Service {
	return &Service{
		Camp:          NewCampService(repo, logger),
		Period:        NewPeriodService(repo, logger),
		ScheduleEntry: NewScheduleEntryService(repo, logger),
		Picasso:       NewPicassoService(&cfg.Picasso, repo, logger),
		Export:        NewExportService(&cfg.Picasso, repo, logger),
	}
}
