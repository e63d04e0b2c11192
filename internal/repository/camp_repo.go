package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/tf267183/ecamp3/internal/model"
)

// CampRepository 营地数据访问接口
type CampRepository interface {
	Create(ctx context.Context, camp *model.Camp) error
	GetByID(ctx context.Context, id string) (*model.Camp, error)
}

type campRepo struct {
	db *gorm.DB
}

func NewCampRepo(db *gorm.DB) CampRepository {
	return &campRepo{db: db}
}

func (r *campRepo) Create(ctx context.Context, camp *model.Camp) error {
	return r.db.WithContext(ctx).Create(camp).Error
}

func (r *campRepo) GetByID(ctx context.Context, id string) (*model.Camp, error) {
	var camp model.Camp
	err := r.db.WithContext(ctx).
		Preload("Periods", func(db *gorm.DB) *gorm.DB {
			return db.Order("start_date ASC")
		}).
		Where("camp_id = ?", id).
		First(&camp).Error
	if err != nil {
		return nil, err
	}
	return &camp, nil
}
