package service

import (
	"context"
	"testing"
	"time"

	"github.com/tf267183/ecamp3/config"
	"github.com/tf267183/ecamp3/internal/model"
)

func testPicassoConfig() *config.PicassoConfig {
	return &config.PicassoConfig{
		MaxDaysPerPage:  8,
		TimeBucketHours: 1,
		ExportTimezone:  "Europe/Zurich",
	}
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(dateLayout, s)
	if err != nil {
		t.Fatalf("日期格式错误 %q: %v", s, err)
	}
	return d
}

// seedCamp 创建营地、编号样式为 style 的类别和一个活动
func (e *testEnv) seedCamp(t *testing.T, name, style string) (*model.Camp, *model.Activity) {
	t.Helper()
	ctx := context.Background()

	camp := &model.Camp{Name: name}
	_ = e.camps.Create(ctx, camp)

	category := &model.Category{CampID: camp.CampID, Short: "LS", Name: "Lagersport", Color: "#4caf50", NumberingStyle: style}
	_ = e.categories.Create(ctx, category)

	activity := &model.Activity{CampID: camp.CampID, CategoryID: category.CategoryID, Title: "Geländespiel", Location: "Wald"}
	_ = e.activities.Create(ctx, activity)

	return camp, activity
}

func (e *testEnv) seedPeriod(t *testing.T, campID, start, end string) *model.Period {
	t.Helper()
	period := &model.Period{
		CampID:    campID,
		StartDate: mustDate(t, start),
		EndDate:   mustDate(t, end),
	}
	_ = e.periods.Create(context.Background(), period)
	return period
}

func (e *testEnv) seedEntry(t *testing.T, periodID, activityID string, start, end int) *model.ScheduleEntry {
	t.Helper()
	entry := &model.ScheduleEntry{
		PeriodID:    periodID,
		ActivityID:  activityID,
		StartOffset: start,
		EndOffset:   end,
		Width:       1,
	}
	_ = e.entries.Create(context.Background(), entry)
	return entry
}

func intPtr(v int) *int           { return &v }
func strPtr(v string) *string     { return &v }
func floatPtr(v float64) *float64 { return &v }
