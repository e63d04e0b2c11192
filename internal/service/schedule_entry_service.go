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

// ── 日程条目模块业务错误 ──

var (
	ErrScheduleEntryNotFound    = errors.New("日程条目不存在")
	ErrScheduleEntryTimeInvalid = errors.New("日程条目结束时间必须晚于开始时间")
	ErrScheduleEntryOutOfPeriod = errors.New("日程条目超出阶段范围")
)

// ScheduleEntryService 日程条目业务接口
type ScheduleEntryService interface {
	Create(ctx context.Context, req *dto.CreateScheduleEntryRequest) (*dto.ScheduleEntryResponse, error)
	GetByID(ctx context.Context, id string) (*dto.ScheduleEntryResponse, error)
	ListByPeriod(ctx context.Context, periodID string) ([]dto.ScheduleEntryResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateScheduleEntryRequest) (*dto.ScheduleEntryResponse, error)
	Delete(ctx context.Context, id string) error
}

type scheduleEntryService struct {
	repo   *repository.Repository
	styles picasso.StyleRegistry
	logger *zap.Logger
}

// NewScheduleEntryService 创建 ScheduleEntryService 实例
func NewScheduleEntryService(repo *repository.Repository, logger *zap.Logger) ScheduleEntryService {
	return &scheduleEntryService{repo: repo, styles: picasso.DefaultStyles(), logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *scheduleEntryService) Create(ctx context.Context, req *dto.CreateScheduleEntryRequest) (*dto.ScheduleEntryResponse, error) {
	period, err := s.repo.Period.GetByID(ctx, req.PeriodID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPeriodNotFound
		}
		s.logger.Error("查询阶段失败", zap.String("id", req.PeriodID), zap.Error(err))
		return nil, err
	}

	if err := s.checkActivity(ctx, period, req.ActivityID); err != nil {
		return nil, err
	}

	entry := &model.ScheduleEntry{
		PeriodID:    period.PeriodID,
		ActivityID:  req.ActivityID,
		StartOffset: *req.StartOffset,
		EndOffset:   *req.EndOffset,
		Left:        0,
		Width:       1,
	}
	if req.Left != nil {
		entry.Left = *req.Left
	}
	if req.Width != nil {
		entry.Width = *req.Width
	}
	if err := validateEntryTimes(period, entry.StartOffset, entry.EndOffset); err != nil {
		return nil, err
	}

	if err := s.repo.ScheduleEntry.Create(ctx, entry); err != nil {
		s.logger.Error("创建日程条目失败", zap.Error(err))
		return nil, err
	}

	return s.describe(ctx, period.PeriodID, entry.ScheduleEntryID)
}

// ────────────────────── GetByID ──────────────────────

func (s *scheduleEntryService) GetByID(ctx context.Context, id string) (*dto.ScheduleEntryResponse, error) {
	entry, err := s.repo.ScheduleEntry.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrScheduleEntryNotFound
		}
		s.logger.Error("查询日程条目失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return s.describe(ctx, entry.PeriodID, entry.ScheduleEntryID)
}

// ────────────────────── ListByPeriod ──────────────────────

func (s *scheduleEntryService) ListByPeriod(ctx context.Context, periodID string) ([]dto.ScheduleEntryResponse, error) {
	ps, err := loadPeriodSchedule(ctx, s.repo, periodID)
	if err != nil {
		if !errors.Is(err, ErrPeriodNotFound) {
			s.logger.Error("读取阶段日程失败", zap.String("period_id", periodID), zap.Error(err))
		}
		return nil, err
	}

	snap := ps.snapshot()
	numbers, err := picasso.NumberAll(snap.Period, snap.Entries, s.styles)
	if err != nil {
		s.logger.Error("条目编号失败", zap.String("period_id", periodID), zap.Error(err))
		return nil, ErrScheduleEntryOutOfPeriod
	}

	result := make([]dto.ScheduleEntryResponse, 0, len(ps.entries))
	for i := range ps.entries {
		e := snap.Entries[i]
		resp := toScheduleEntryResponse(&ps.entries[i], snap.Period)
		resp.DayNumber = snap.Period.DayNumber(e.DayOffset())
		resp.ScheduleEntryNumber = picasso.ScheduleEntryNumber(e, snap.Entries)
		resp.Number = numbers[e.ID]
		result = append(result, resp)
	}
	return result, nil
}

// ────────────────────── Update ──────────────────────

func (s *scheduleEntryService) Update(ctx context.Context, id string, req *dto.UpdateScheduleEntryRequest) (*dto.ScheduleEntryResponse, error) {
	entry, err := s.repo.ScheduleEntry.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrScheduleEntryNotFound
		}
		s.logger.Error("查询日程条目失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	period, err := s.repo.Period.GetByID(ctx, entry.PeriodID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPeriodNotFound
		}
		s.logger.Error("查询阶段失败", zap.String("id", entry.PeriodID), zap.Error(err))
		return nil, err
	}

	if req.ActivityID != nil && *req.ActivityID != entry.ActivityID {
		if err := s.checkActivity(ctx, period, *req.ActivityID); err != nil {
			return nil, err
		}
		entry.ActivityID = *req.ActivityID
		entry.Activity = nil
	}
	if req.StartOffset != nil {
		entry.StartOffset = *req.StartOffset
	}
	if req.EndOffset != nil {
		entry.EndOffset = *req.EndOffset
	}
	if req.Left != nil {
		entry.Left = *req.Left
	}
	if req.Width != nil {
		entry.Width = *req.Width
	}
	if err := validateEntryTimes(period, entry.StartOffset, entry.EndOffset); err != nil {
		return nil, err
	}

	if err := s.repo.ScheduleEntry.Update(ctx, entry); err != nil {
		s.logger.Error("更新日程条目失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return s.describe(ctx, entry.PeriodID, entry.ScheduleEntryID)
}

// ────────────────────── Delete ──────────────────────

func (s *scheduleEntryService) Delete(ctx context.Context, id string) error {
	if err := s.repo.ScheduleEntry.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrScheduleEntryNotFound
		}
		s.logger.Error("删除日程条目失败", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}

// ── 辅助函数 ──

// describe 基于整个阶段的快照计算单个条目的编号
func (s *scheduleEntryService) describe(ctx context.Context, periodID, entryID string) (*dto.ScheduleEntryResponse, error) {
	ps, err := loadPeriodSchedule(ctx, s.repo, periodID)
	if err != nil {
		if !errors.Is(err, ErrPeriodNotFound) {
			s.logger.Error("读取阶段日程失败", zap.String("period_id", periodID), zap.Error(err))
		}
		return nil, err
	}

	entry, ok := ps.entryIndex()[entryID]
	if !ok {
		return nil, ErrScheduleEntryNotFound
	}

	snap := ps.snapshot()
	target := toEngineEntry(entry)
	dayNumber, err := picasso.DayNumber(snap.Period, target)
	if err != nil {
		s.logger.Error("条目不在阶段范围内", zap.String("id", entryID), zap.Error(err))
		return nil, ErrScheduleEntryOutOfPeriod
	}
	number, err := picasso.Number(snap.Period, target, snap.Entries, s.styles)
	if err != nil {
		s.logger.Error("条目编号失败", zap.String("id", entryID), zap.Error(err))
		return nil, ErrScheduleEntryOutOfPeriod
	}

	resp := toScheduleEntryResponse(entry, snap.Period)
	resp.DayNumber = dayNumber
	resp.ScheduleEntryNumber = picasso.ScheduleEntryNumber(target, snap.Entries)
	resp.Number = number
	return &resp, nil
}

// checkActivity 活动必须存在且属于阶段所在营地
func (s *scheduleEntryService) checkActivity(ctx context.Context, period *model.Period, activityID string) error {
	activity, err := s.repo.Activity.GetByID(ctx, activityID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrActivityNotFound
		}
		s.logger.Error("查询活动失败", zap.String("id", activityID), zap.Error(err))
		return err
	}
	if activity.CampID != period.CampID {
		return ErrActivityNotFound
	}
	return nil
}

// validateEntryTimes end > start，且条目完全落在阶段内
func validateEntryTimes(period *model.Period, start, end int) error {
	if end <= start {
		return ErrScheduleEntryTimeInvalid
	}
	if start < 0 || end > period.DurationInDays()*picasso.MinutesPerDay {
		return ErrScheduleEntryOutOfPeriod
	}
	return nil
}

func toScheduleEntryResponse(e *model.ScheduleEntry, p picasso.Period) dto.ScheduleEntryResponse {
	ee := toEngineEntry(e)
	resp := dto.ScheduleEntryResponse{
		ID:          e.ScheduleEntryID,
		PeriodID:    e.PeriodID,
		ActivityID:  e.ActivityID,
		Title:       ee.Title,
		Color:       entryColor(e),
		StartOffset: e.StartOffset,
		EndOffset:   e.EndOffset,
		Left:        e.Left,
		Width:       e.Width,
		Start:       ee.StartAt(p.Start).Format(time.RFC3339),
		End:         ee.EndAt(p.Start).Format(time.RFC3339),
		Version:     e.Version,
	}
	if e.Activity != nil && e.Activity.Category != nil {
		resp.CategoryShort = e.Activity.Category.Short
	}
	return resp
}
