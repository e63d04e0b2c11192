package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/tf267183/ecamp3/config"
	"github.com/tf267183/ecamp3/internal/dto"
	"github.com/tf267183/ecamp3/internal/picasso"
	"github.com/tf267183/ecamp3/internal/repository"
)

// PicassoService picasso 视图业务接口
type PicassoService interface {
	// Render 计算阶段的 picasso 布局；查询参数为空时使用配置默认值
	Render(ctx context.Context, periodID string, query *dto.PicassoQuery) (*dto.PicassoResponse, error)
}

type picassoService struct {
	cfg    *config.PicassoConfig
	repo   *repository.Repository
	styles picasso.StyleRegistry
	logger *zap.Logger
}

// NewPicassoService 创建 PicassoService 实例
func NewPicassoService(cfg *config.PicassoConfig, repo *repository.Repository, logger *zap.Logger) PicassoService {
	return &picassoService{cfg: cfg, repo: repo, styles: picasso.DefaultStyles(), logger: logger}
}

func (s *picassoService) Render(ctx context.Context, periodID string, query *dto.PicassoQuery) (*dto.PicassoResponse, error) {
	opts := resolveOptions(s.cfg, query)

	ps, layout, err := renderPeriod(ctx, s.repo, s.styles, s.logger, periodID, opts)
	if err != nil {
		return nil, err
	}

	return toPicassoResponse(ps, layout, opts), nil
}

// resolveOptions 查询参数覆盖配置默认值
func resolveOptions(cfg *config.PicassoConfig, query *dto.PicassoQuery) picasso.Options {
	opts := picasso.Options{
		MaxDaysPerPage:  cfg.MaxDaysPerPage,
		TimeBucketHours: cfg.TimeBucketHours,
	}
	if query != nil {
		if query.MaxDaysPerPage != nil {
			opts.MaxDaysPerPage = *query.MaxDaysPerPage
		}
		if query.TimeBucketHours != nil {
			opts.TimeBucketHours = *query.TimeBucketHours
		}
	}
	return opts
}

// renderPeriod 读取阶段快照并计算布局，供 picasso 视图与导出共用
func renderPeriod(
	ctx context.Context,
	repo *repository.Repository,
	styles picasso.StyleRegistry,
	logger *zap.Logger,
	periodID string,
	opts picasso.Options,
) (*periodSchedule, picasso.Layout, error) {
	ps, err := loadPeriodSchedule(ctx, repo, periodID)
	if err != nil {
		if !errors.Is(err, ErrPeriodNotFound) {
			logger.Error("读取阶段日程失败", zap.String("period_id", periodID), zap.Error(err))
		}
		return nil, picasso.Layout{}, err
	}

	layout, err := picasso.Render(ps.snapshot(), styles, opts)
	if err != nil {
		if errors.Is(err, picasso.ErrUnresolvableDay) {
			logger.Error("条目超出阶段范围", zap.String("period_id", periodID), zap.Error(err))
			return nil, picasso.Layout{}, ErrScheduleEntryOutOfPeriod
		}
		return nil, picasso.Layout{}, err
	}

	for i, page := range layout.Pages {
		if page.Overlapping > 0 && !page.NightCollapsed {
			logger.Debug("未找到可折叠的夜间窗口，使用全天",
				zap.String("period_id", periodID),
				zap.Int("page", i+1),
			)
		}
	}
	return ps, layout, nil
}

func toPicassoResponse(ps *periodSchedule, layout picasso.Layout, opts picasso.Options) *dto.PicassoResponse {
	resp := &dto.PicassoResponse{
		PeriodID:        ps.period.PeriodID,
		MaxDaysPerPage:  opts.MaxDaysPerPage,
		TimeBucketHours: opts.TimeBucketHours,
		Pages:           make([]dto.PicassoPageResponse, 0, len(layout.Pages)),
	}
	if ps.period.Camp != nil {
		resp.CampName = ps.period.Camp.Name
	}

	entries := ps.entryIndex()
	for _, page := range layout.Pages {
		pr := dto.PicassoPageResponse{
			Bedtime:        page.Window.Bedtime,
			GetUpTime:      page.Window.GetUpTime,
			NightCollapsed: page.NightCollapsed,
			TimeBuckets:    make([]dto.TimeBucketResponse, 0, len(page.Buckets)),
			Days:           make([]dto.DayColumnResponse, 0, len(page.Days)),
		}
		for _, b := range page.Buckets {
			pr.TimeBuckets = append(pr.TimeBuckets, dto.TimeBucketResponse{Hour: b.Hour, Weight: b.Weight})
		}
		for _, col := range page.Days {
			dc := dto.DayColumnResponse{
				DayOffset: col.Day.DayOffset,
				DayNumber: col.DayNumber,
				Date:      col.Day.Start.Format(dateLayout),
				Entries:   make([]dto.PlacedEntryResponse, 0, len(col.Entries)),
			}
			for _, pe := range col.Entries {
				placed := dto.PlacedEntryResponse{
					ID:     pe.Entry.ID,
					Number: pe.Number,
					Title:  pe.Entry.Title,
					Top:    pe.Geometry.Top,
					Bottom: pe.Geometry.Bottom,
					Left:   pe.Geometry.Left,
					Right:  pe.Geometry.Right,
				}
				if e, ok := entries[pe.Entry.ID]; ok {
					placed.Color = entryColor(e)
					placed.Location = entryLocation(e)
				}
				dc.Entries = append(dc.Entries, placed)
			}
			pr.Days = append(pr.Days, dc)
		}
		resp.Pages = append(resp.Pages, pr)
	}
	return resp
}
