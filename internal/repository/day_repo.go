package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/tf267183/ecamp3/internal/model"
)

// DayRepository 阶段日数据访问接口
type DayRepository interface {
	ListByPeriod(ctx context.Context, periodID string) ([]model.Day, error)
}

type dayRepo struct {
	db *gorm.DB
}

func NewDayRepo(db *gorm.DB) DayRepository {
	return &dayRepo{db: db}
}

func (r *dayRepo) ListByPeriod(ctx context.Context, periodID string) ([]model.Day, error) {
	var days []model.Day
	err := r.db.WithContext(ctx).
		Where("period_id = ?", periodID).
		Order("day_offset ASC").
		Find(&days).Error
	return days, err
}

// syncDays 使阶段的 days 与天数一致：删除越界的日，补齐缺失的日
// 必须在事务内调用
func syncDays(tx *gorm.DB, periodID string, duration int) error {
	if err := tx.Where("period_id = ? AND day_offset >= ?", periodID, duration).
		Delete(&model.Day{}).Error; err != nil {
		return err
	}

	var existing []int
	if err := tx.Model(&model.Day{}).
		Where("period_id = ?", periodID).
		Pluck("day_offset", &existing).Error; err != nil {
		return err
	}
	have := make(map[int]bool, len(existing))
	for _, off := range existing {
		have[off] = true
	}

	var missing []model.Day
	for off := 0; off < duration; off++ {
		if !have[off] {
			missing = append(missing, model.Day{PeriodID: periodID, DayOffset: off})
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return tx.Create(&missing).Error
}
