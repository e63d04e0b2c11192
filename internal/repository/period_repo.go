package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/tf267183/ecamp3/internal/model"
	pkgerrors "github.com/tf267183/ecamp3/pkg/errors"
)

// PeriodRepository 营地阶段数据访问接口
type PeriodRepository interface {
	// Create 创建阶段并生成对应的 days
	Create(ctx context.Context, period *model.Period) error
	GetByID(ctx context.Context, id string) (*model.Period, error)
	// ListByCamp 按开始日期升序列出营地的所有阶段
	ListByCamp(ctx context.Context, campID string) ([]model.Period, error)
	// Update 乐观锁更新阶段，同步 days，并将所有条目偏移 shiftMinutes 分钟
	Update(ctx context.Context, period *model.Period, shiftMinutes int) error
}

type periodRepo struct {
	db *gorm.DB
}

func NewPeriodRepo(db *gorm.DB) PeriodRepository {
	return &periodRepo{db: db}
}

func (r *periodRepo) Create(ctx context.Context, period *model.Period) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Days", "Camp").Create(period).Error; err != nil {
			return err
		}
		return syncDays(tx, period.PeriodID, period.DurationInDays())
	})
}

func (r *periodRepo) GetByID(ctx context.Context, id string) (*model.Period, error) {
	var period model.Period
	err := r.db.WithContext(ctx).
		Preload("Camp").
		Preload("Days", func(db *gorm.DB) *gorm.DB {
			return db.Order("day_offset ASC")
		}).
		Where("period_id = ?", id).
		First(&period).Error
	if err != nil {
		return nil, err
	}
	return &period, nil
}

func (r *periodRepo) ListByCamp(ctx context.Context, campID string) ([]model.Period, error) {
	var periods []model.Period
	err := r.db.WithContext(ctx).
		Where("camp_id = ?", campID).
		Order("start_date ASC").
		Find(&periods).Error
	return periods, err
}

func (r *periodRepo) Update(ctx context.Context, period *model.Period, shiftMinutes int) error {
	oldVersion := period.Version
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.Period{}).
			Where("period_id = ? AND version = ?", period.PeriodID, oldVersion).
			Updates(map[string]interface{}{
				"description": period.Description,
				"start_date":  period.StartDate,
				"end_date":    period.EndDate,
				"version":     oldVersion + 1,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return pkgerrors.ErrOptimisticLock
		}

		if err := syncDays(tx, period.PeriodID, period.DurationInDays()); err != nil {
			return err
		}

		if shiftMinutes == 0 {
			return nil
		}
		return tx.Model(&model.ScheduleEntry{}).
			Where("period_id = ?", period.PeriodID).
			Updates(map[string]interface{}{
				"start_offset": gorm.Expr("start_offset + ?", shiftMinutes),
				"end_offset":   gorm.Expr("end_offset + ?", shiftMinutes),
			}).Error
	})
	if err != nil {
		return err
	}
	period.Version = oldVersion + 1
	return nil
}
