package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/tf267183/ecamp3/internal/model"
	pkgerrors "github.com/tf267183/ecamp3/pkg/errors"
)

// ScheduleEntryRepository 日程条目数据访问接口
type ScheduleEntryRepository interface {
	Create(ctx context.Context, entry *model.ScheduleEntry) error
	GetByID(ctx context.Context, id string) (*model.ScheduleEntry, error)
	// ListByPeriod 列出阶段内所有条目（含活动与类别），按开始时间升序
	ListByPeriod(ctx context.Context, periodID string) ([]model.ScheduleEntry, error)
	Update(ctx context.Context, entry *model.ScheduleEntry) error
	Delete(ctx context.Context, id string) error
}

type scheduleEntryRepo struct {
	db *gorm.DB
}

func NewScheduleEntryRepo(db *gorm.DB) ScheduleEntryRepository {
	return &scheduleEntryRepo{db: db}
}

func (r *scheduleEntryRepo) Create(ctx context.Context, entry *model.ScheduleEntry) error {
	return r.db.WithContext(ctx).Omit("Activity").Create(entry).Error
}

func (r *scheduleEntryRepo) GetByID(ctx context.Context, id string) (*model.ScheduleEntry, error) {
	var entry model.ScheduleEntry
	err := r.db.WithContext(ctx).
		Preload("Activity.Category").
		Where("schedule_entry_id = ?", id).
		First(&entry).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *scheduleEntryRepo) ListByPeriod(ctx context.Context, periodID string) ([]model.ScheduleEntry, error) {
	var entries []model.ScheduleEntry
	err := r.db.WithContext(ctx).
		Preload("Activity.Category").
		Where("period_id = ?", periodID).
		Order("start_offset ASC, schedule_entry_id ASC").
		Find(&entries).Error
	return entries, err
}

func (r *scheduleEntryRepo) Update(ctx context.Context, entry *model.ScheduleEntry) error {
	oldVersion := entry.Version
	result := r.db.WithContext(ctx).
		Model(&model.ScheduleEntry{}).
		Where("schedule_entry_id = ? AND version = ?", entry.ScheduleEntryID, oldVersion).
		Updates(map[string]interface{}{
			"activity_id":  entry.ActivityID,
			"start_offset": entry.StartOffset,
			"end_offset":   entry.EndOffset,
			"left":         entry.Left,
			"width":        entry.Width,
			"version":      oldVersion + 1,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return pkgerrors.ErrOptimisticLock
	}
	entry.Version = oldVersion + 1
	return nil
}

func (r *scheduleEntryRepo) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).
		Where("schedule_entry_id = ?", id).
		Delete(&model.ScheduleEntry{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
