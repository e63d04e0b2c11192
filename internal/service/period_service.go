package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/tf267183/ecamp3/internal/dto"
	"github.com/tf267183/ecamp3/internal/model"
	"github.com/tf267183/ecamp3/internal/picasso"
	"github.com/tf267183/ecamp3/internal/repository"
)

// ── 阶段模块业务错误 ──

var (
	ErrPeriodNotFound    = errors.New("阶段不存在")
	ErrPeriodDateInvalid = errors.New("阶段日期无效")
	ErrPeriodOverlap     = errors.New("阶段日期与同营地已有阶段重叠")
)

// maxPeriodDays 单个阶段最多天数
const maxPeriodDays = 366

// PeriodService 阶段业务接口
type PeriodService interface {
	Create(ctx context.Context, req *dto.CreatePeriodRequest) (*dto.PeriodResponse, error)
	GetByID(ctx context.Context, id string) (*dto.PeriodResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdatePeriodRequest) (*dto.PeriodResponse, error)
}

type periodService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewPeriodService 创建 PeriodService 实例
func NewPeriodService(repo *repository.Repository, logger *zap.Logger) PeriodService {
	return &periodService{repo: repo, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *periodService) Create(ctx context.Context, req *dto.CreatePeriodRequest) (*dto.PeriodResponse, error) {
	startDate, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		return nil, ErrPeriodDateInvalid
	}
	endDate, err := time.Parse(dateLayout, req.EndDate)
	if err != nil {
		return nil, ErrPeriodDateInvalid
	}
	if err := validatePeriodRange(startDate, endDate); err != nil {
		return nil, err
	}

	if _, err := s.repo.Camp.GetByID(ctx, req.CampID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCampNotFound
		}
		s.logger.Error("查询营地失败", zap.String("camp_id", req.CampID), zap.Error(err))
		return nil, err
	}

	period := &model.Period{
		CampID:      req.CampID,
		Description: req.Description,
		StartDate:   startDate,
		EndDate:     endDate,
	}
	if err := s.checkOverlap(ctx, period); err != nil {
		return nil, err
	}

	if err := s.repo.Period.Create(ctx, period); err != nil {
		s.logger.Error("创建阶段失败", zap.Error(err))
		return nil, err
	}

	s.logger.Info("阶段已创建",
		zap.String("period_id", period.PeriodID),
		zap.Int("days", period.DurationInDays()),
	)
	return s.GetByID(ctx, period.PeriodID)
}

// ────────────────────── GetByID ──────────────────────

func (s *periodService) GetByID(ctx context.Context, id string) (*dto.PeriodResponse, error) {
	period, err := s.repo.Period.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPeriodNotFound
		}
		s.logger.Error("查询阶段失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	first, err := firstDayNumber(ctx, s.repo, period)
	if err != nil {
		s.logger.Error("计算首日编号失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return toPeriodResponse(period, first), nil
}

// ────────────────────── Update ──────────────────────

// Update 更新阶段
// 开始日期移动且 MoveScheduleEntries=false 时，条目偏移反向平移，保持绝对时间不变
func (s *periodService) Update(ctx context.Context, id string, req *dto.UpdatePeriodRequest) (*dto.PeriodResponse, error) {
	period, err := s.repo.Period.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPeriodNotFound
		}
		s.logger.Error("查询阶段失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	oldStart := period.StartDate
	if req.Description != nil {
		period.Description = *req.Description
	}
	if req.StartDate != nil {
		startDate, err := time.Parse(dateLayout, *req.StartDate)
		if err != nil {
			return nil, ErrPeriodDateInvalid
		}
		period.StartDate = startDate
	}
	if req.EndDate != nil {
		endDate, err := time.Parse(dateLayout, *req.EndDate)
		if err != nil {
			return nil, ErrPeriodDateInvalid
		}
		period.EndDate = endDate
	}
	if err := validatePeriodRange(period.StartDate, period.EndDate); err != nil {
		return nil, err
	}
	if err := s.checkOverlap(ctx, period); err != nil {
		return nil, err
	}

	shift := 0
	if !req.MoveScheduleEntries {
		shift = -int(period.StartDate.Sub(oldStart).Minutes())
	}
	if err := s.checkEntriesFit(ctx, period, shift); err != nil {
		return nil, err
	}

	if err := s.repo.Period.Update(ctx, period, shift); err != nil {
		s.logger.Error("更新阶段失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	if shift != 0 {
		s.logger.Info("条目偏移已平移", zap.String("period_id", id), zap.Int("minutes", shift))
	}
	return s.GetByID(ctx, id)
}

// checkEntriesFit 平移后的条目必须仍落在新的阶段范围内
func (s *periodService) checkEntriesFit(ctx context.Context, period *model.Period, shift int) error {
	entries, err := s.repo.ScheduleEntry.ListByPeriod(ctx, period.PeriodID)
	if err != nil {
		s.logger.Error("列出阶段条目失败", zap.String("period_id", period.PeriodID), zap.Error(err))
		return err
	}
	for i := range entries {
		e := &entries[i]
		if err := validateEntryTimes(period, e.StartOffset+shift, e.EndOffset+shift); err != nil {
			s.logger.Info("阶段更新会使条目超出范围",
				zap.String("period_id", period.PeriodID),
				zap.String("entry_id", e.ScheduleEntryID),
				zap.Int("shift", shift),
			)
			return ErrScheduleEntryOutOfPeriod
		}
	}
	return nil
}

// validatePeriodRange 结束日期不早于开始日期，且总天数不超过 maxPeriodDays
func validatePeriodRange(start, end time.Time) error {
	if end.Before(start) {
		return ErrPeriodDateInvalid
	}
	if int(end.Sub(start).Hours()/24)+1 > maxPeriodDays {
		return ErrPeriodDateInvalid
	}
	return nil
}

// checkOverlap 同营地的阶段日期不能重叠（首尾日期均包含在内）
func (s *periodService) checkOverlap(ctx context.Context, period *model.Period) error {
	periods, err := s.repo.Period.ListByCamp(ctx, period.CampID)
	if err != nil {
		s.logger.Error("列出营地阶段失败", zap.String("camp_id", period.CampID), zap.Error(err))
		return err
	}
	for i := range periods {
		other := &periods[i]
		if other.PeriodID == period.PeriodID {
			continue
		}
		if !other.StartDate.After(period.EndDate) && !other.EndDate.Before(period.StartDate) {
			return ErrPeriodOverlap
		}
	}
	return nil
}

// ── 辅助函数 ──

func toPeriodResponse(p *model.Period, firstDayNumber int) *dto.PeriodResponse {
	ep := toEnginePeriod(p, firstDayNumber)
	resp := &dto.PeriodResponse{
		ID:             p.PeriodID,
		CampID:         p.CampID,
		Description:    p.Description,
		StartDate:      p.StartDate.Format(dateLayout),
		EndDate:        p.EndDate.Format(dateLayout),
		DurationInDays: ep.DurationInDays,
		FirstDayNumber: firstDayNumber,
		Version:        p.Version,
	}

	dayIDs := make(map[int]string, len(p.Days))
	for _, d := range p.Days {
		dayIDs[d.DayOffset] = d.DayID
	}
	for _, d := range ep.Days() {
		resp.Days = append(resp.Days, toDayResponse(ep, d, dayIDs[d.DayOffset]))
	}
	return resp
}

func toDayResponse(p picasso.Period, d picasso.Day, id string) dto.DayResponse {
	return dto.DayResponse{
		ID:        id,
		DayOffset: d.DayOffset,
		DayNumber: p.DayNumber(d.DayOffset),
		Date:      d.Start.Format(dateLayout),
	}
}
