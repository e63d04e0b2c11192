package service

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/tf267183/ecamp3/internal/model"
	"github.com/tf267183/ecamp3/internal/picasso"
	"github.com/tf267183/ecamp3/internal/repository"
)

const dateLayout = "2006-01-02"

// periodSchedule 一次读取得到的阶段与其全部条目
type periodSchedule struct {
	period         *model.Period
	firstDayNumber int
	entries        []model.ScheduleEntry
}

// loadPeriodSchedule 读取阶段、其前序阶段天数与全部条目
func loadPeriodSchedule(ctx context.Context, repo *repository.Repository, periodID string) (*periodSchedule, error) {
	period, err := repo.Period.GetByID(ctx, periodID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPeriodNotFound
		}
		return nil, err
	}

	first, err := firstDayNumber(ctx, repo, period)
	if err != nil {
		return nil, err
	}

	entries, err := repo.ScheduleEntry.ListByPeriod(ctx, periodID)
	if err != nil {
		return nil, err
	}

	return &periodSchedule{period: period, firstDayNumber: first, entries: entries}, nil
}

// firstDayNumber 阶段第一天的编号 = 1 + 同营地更早阶段的总天数
func firstDayNumber(ctx context.Context, repo *repository.Repository, period *model.Period) (int, error) {
	periods, err := repo.Period.ListByCamp(ctx, period.CampID)
	if err != nil {
		return 0, err
	}
	n := 1
	for i := range periods {
		p := &periods[i]
		if p.PeriodID != period.PeriodID && p.StartDate.Before(period.StartDate) {
			n += p.DurationInDays()
		}
	}
	return n, nil
}

// enginePeriod 转换为引擎使用的阶段快照
func (ps *periodSchedule) enginePeriod() picasso.Period {
	return toEnginePeriod(ps.period, ps.firstDayNumber)
}

// snapshot 转换为引擎快照
func (ps *periodSchedule) snapshot() picasso.Snapshot {
	entries := make([]picasso.ScheduleEntry, 0, len(ps.entries))
	for i := range ps.entries {
		entries = append(entries, toEngineEntry(&ps.entries[i]))
	}
	return picasso.Snapshot{Period: ps.enginePeriod(), Entries: entries}
}

// entryIndex 条目 ID → 条目
func (ps *periodSchedule) entryIndex() map[string]*model.ScheduleEntry {
	idx := make(map[string]*model.ScheduleEntry, len(ps.entries))
	for i := range ps.entries {
		idx[ps.entries[i].ScheduleEntryID] = &ps.entries[i]
	}
	return idx
}

func toEnginePeriod(p *model.Period, firstDayNumber int) picasso.Period {
	start := p.StartDate.UTC()
	return picasso.Period{
		Start:          time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC),
		FirstDayNumber: firstDayNumber,
		DurationInDays: p.DurationInDays(),
	}
}

func toEngineEntry(e *model.ScheduleEntry) picasso.ScheduleEntry {
	out := picasso.ScheduleEntry{
		ID:             e.ScheduleEntryID,
		StartOffset:    e.StartOffset,
		EndOffset:      e.EndOffset,
		Left:           e.Left,
		Width:          e.Width,
		NumberingStyle: picasso.StyleArabic,
		ActivityID:     e.ActivityID,
	}
	if e.Activity != nil {
		out.Title = e.Activity.Title
		if e.Activity.Category != nil && e.Activity.Category.NumberingStyle != "" {
			out.NumberingStyle = e.Activity.Category.NumberingStyle
		}
	}
	return out
}

// entryColor 条目所属类别的颜色
func entryColor(e *model.ScheduleEntry) string {
	if e.Activity != nil && e.Activity.Category != nil {
		return e.Activity.Category.Color
	}
	return ""
}

func entryLocation(e *model.ScheduleEntry) string {
	if e.Activity != nil {
		return e.Activity.Location
	}
	return ""
}
