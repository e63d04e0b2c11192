package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/tf267183/ecamp3/internal/model"
)

// ActivityRepository 活动数据访问接口
type ActivityRepository interface {
	Create(ctx context.Context, activity *model.Activity) error
	GetByID(ctx context.Context, id string) (*model.Activity, error)
}

type activityRepo struct {
	db *gorm.DB
}

func NewActivityRepo(db *gorm.DB) ActivityRepository {
	return &activityRepo{db: db}
}

func (r *activityRepo) Create(ctx context.Context, activity *model.Activity) error {
	return r.db.WithContext(ctx).Create(activity).Error
}

func (r *activityRepo) GetByID(ctx context.Context, id string) (*model.Activity, error) {
	var activity model.Activity
	err := r.db.WithContext(ctx).
		Preload("Category").
		Where("activity_id = ?", id).
		First(&activity).Error
	if err != nil {
		return nil, err
	}
	return &activity, nil
}
