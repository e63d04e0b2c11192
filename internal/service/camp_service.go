package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/tf267183/ecamp3/internal/dto"
	"github.com/tf267183/ecamp3/internal/model"
	"github.com/tf267183/ecamp3/internal/picasso"
	"github.com/tf267183/ecamp3/internal/repository"
)

// ── 营地模块业务错误 ──

var (
	ErrCampNotFound     = errors.New("营地不存在")
	ErrCategoryNotFound = errors.New("活动类别不存在")
	ErrActivityNotFound = errors.New("活动不存在")
)

const defaultCategoryColor = "#1fa2df"

// CampService 营地、类别与活动业务接口
type CampService interface {
	Create(ctx context.Context, req *dto.CreateCampRequest) (*dto.CampResponse, error)
	GetByID(ctx context.Context, id string) (*dto.CampResponse, error)
	CreateCategory(ctx context.Context, campID string, req *dto.CreateCategoryRequest) (*dto.CategoryResponse, error)
	CreateActivity(ctx context.Context, campID string, req *dto.CreateActivityRequest) (*dto.ActivityResponse, error)
}

type campService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewCampService 创建 CampService 实例
func NewCampService(repo *repository.Repository, logger *zap.Logger) CampService {
	return &campService{repo: repo, logger: logger}
}

func (s *campService) Create(ctx context.Context, req *dto.CreateCampRequest) (*dto.CampResponse, error) {
	camp := &model.Camp{Name: req.Name, Title: req.Title}
	if err := s.repo.Camp.Create(ctx, camp); err != nil {
		s.logger.Error("创建营地失败", zap.Error(err))
		return nil, err
	}
	return &dto.CampResponse{ID: camp.CampID, Name: camp.Name, Title: camp.Title}, nil
}

// GetByID 营地详情，阶段按开始日期排列，天数连续编号
func (s *campService) GetByID(ctx context.Context, id string) (*dto.CampResponse, error) {
	camp, err := s.repo.Camp.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCampNotFound
		}
		s.logger.Error("查询营地失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	resp := &dto.CampResponse{ID: camp.CampID, Name: camp.Name, Title: camp.Title}
	first := 1
	for i := range camp.Periods {
		p := &camp.Periods[i]
		pr := toPeriodResponse(p, first)
		pr.Days = nil
		resp.Periods = append(resp.Periods, *pr)
		first += p.DurationInDays()
	}
	return resp, nil
}

func (s *campService) CreateCategory(ctx context.Context, campID string, req *dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	if _, err := s.repo.Camp.GetByID(ctx, campID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCampNotFound
		}
		s.logger.Error("查询营地失败", zap.String("id", campID), zap.Error(err))
		return nil, err
	}

	category := &model.Category{
		CampID:         campID,
		Short:          req.Short,
		Name:           req.Name,
		Color:          req.Color,
		NumberingStyle: req.NumberingStyle,
	}
	if category.Color == "" {
		category.Color = defaultCategoryColor
	}
	if category.NumberingStyle == "" {
		category.NumberingStyle = picasso.StyleArabic
	}

	if err := s.repo.Category.Create(ctx, category); err != nil {
		s.logger.Error("创建类别失败", zap.Error(err))
		return nil, err
	}
	return toCategoryResponse(category), nil
}

func (s *campService) CreateActivity(ctx context.Context, campID string, req *dto.CreateActivityRequest) (*dto.ActivityResponse, error) {
	category, err := s.repo.Category.GetByID(ctx, req.CategoryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		s.logger.Error("查询类别失败", zap.String("id", req.CategoryID), zap.Error(err))
		return nil, err
	}
	if category.CampID != campID {
		return nil, ErrCategoryNotFound
	}

	activity := &model.Activity{
		CampID:     campID,
		CategoryID: category.CategoryID,
		Title:      req.Title,
		Location:   req.Location,
	}
	if err := s.repo.Activity.Create(ctx, activity); err != nil {
		s.logger.Error("创建活动失败", zap.Error(err))
		return nil, err
	}

	return &dto.ActivityResponse{
		ID:       activity.ActivityID,
		CampID:   activity.CampID,
		Title:    activity.Title,
		Location: activity.Location,
		Category: toCategoryResponse(category),
	}, nil
}

func toCategoryResponse(c *model.Category) *dto.CategoryResponse {
	return &dto.CategoryResponse{
		ID:             c.CategoryID,
		CampID:         c.CampID,
		Short:          c.Short,
		Name:           c.Name,
		Color:          c.Color,
		NumberingStyle: c.NumberingStyle,
	}
}
