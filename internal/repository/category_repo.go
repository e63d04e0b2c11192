package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/tf267183/ecamp3/internal/model"
)

// CategoryRepository 活动类别数据访问接口
type CategoryRepository interface {
	Create(ctx context.Context, category *model.Category) error
	GetByID(ctx context.Context, id string) (*model.Category, error)
	ListByCamp(ctx context.Context, campID string) ([]model.Category, error)
}

type categoryRepo struct {
	db *gorm.DB
}

func NewCategoryRepo(db *gorm.DB) CategoryRepository {
	return &categoryRepo{db: db}
}

func (r *categoryRepo) Create(ctx context.Context, category *model.Category) error {
	return r.db.WithContext(ctx).Create(category).Error
}

func (r *categoryRepo) GetByID(ctx context.Context, id string) (*model.Category, error) {
	var category model.Category
	if err := r.db.WithContext(ctx).Where("category_id = ?", id).First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepo) ListByCamp(ctx context.Context, campID string) ([]model.Category, error) {
	var categories []model.Category
	err := r.db.WithContext(ctx).
		Where("camp_id = ?", campID).
		Order("short ASC").
		Find(&categories).Error
	return categories, err
}
