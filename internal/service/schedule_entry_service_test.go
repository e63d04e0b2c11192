package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/tf267183/ecamp3/internal/dto"
	"github.com/tf267183/ecamp3/internal/model"
	pkgerrors "github.com/tf267183/ecamp3/pkg/errors"
)

// ── 测试辅助 ──

func setupTestScheduleEntryService(t *testing.T, style string) (ScheduleEntryService, *testEnv, *model.Period, *model.Activity) {
	env := newTestEnv()
	camp, activity := env.seedCamp(t, "Sola", style)
	period := env.seedPeriod(t, camp.CampID, "2024-07-13", "2024-07-19")
	return NewScheduleEntryService(env.repo, zap.NewNop()), env, period, activity
}

// ── Create 测试 ──

func TestScheduleEntryService_Create_Success(t *testing.T) {
	svc, _, period, activity := setupTestScheduleEntryService(t, "a")

	result, err := svc.Create(context.Background(), &dto.CreateScheduleEntryRequest{
		PeriodID:    period.PeriodID,
		ActivityID:  activity.ActivityID,
		StartOffset: intPtr(600),
		EndOffset:   intPtr(660),
	})
	if err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}
	if result.Number != "1.a" {
		t.Errorf("期望编号 1.a，实际 %s", result.Number)
	}
	if result.DayNumber != 1 || result.ScheduleEntryNumber != 1 {
		t.Errorf("期望第 1 天第 1 个，实际 %d/%d", result.DayNumber, result.ScheduleEntryNumber)
	}
	if result.Left != 0 || result.Width != 1 {
		t.Errorf("期望默认 left=0 width=1，实际 %v/%v", result.Left, result.Width)
	}
	if result.Start != "2024-07-13T10:00:00Z" || result.End != "2024-07-13T11:00:00Z" {
		t.Errorf("绝对时间不符: %s ~ %s", result.Start, result.End)
	}
	if result.Title != "Geländespiel" || result.CategoryShort != "LS" {
		t.Errorf("活动信息不符: %+v", result)
	}
}

func TestScheduleEntryService_Create_TimeInvalid(t *testing.T) {
	svc, _, period, activity := setupTestScheduleEntryService(t, "1")

	_, err := svc.Create(context.Background(), &dto.CreateScheduleEntryRequest{
		PeriodID:    period.PeriodID,
		ActivityID:  activity.ActivityID,
		StartOffset: intPtr(600),
		EndOffset:   intPtr(600),
	})
	if !errors.Is(err, ErrScheduleEntryTimeInvalid) {
		t.Errorf("期望 ErrScheduleEntryTimeInvalid，实际: %v", err)
	}
}

func TestScheduleEntryService_Create_OutOfPeriod(t *testing.T) {
	svc, _, period, activity := setupTestScheduleEntryService(t, "1")

	// 开始早于阶段、结束晚于最后一天
	cases := [][2]int{
		{-60, 60},
		{7*1440 - 60, 7*1440 + 1},
	}
	for _, c := range cases {
		_, err := svc.Create(context.Background(), &dto.CreateScheduleEntryRequest{
			PeriodID:    period.PeriodID,
			ActivityID:  activity.ActivityID,
			StartOffset: intPtr(c[0]),
			EndOffset:   intPtr(c[1]),
		})
		if !errors.Is(err, ErrScheduleEntryOutOfPeriod) {
			t.Errorf("%v: 期望 ErrScheduleEntryOutOfPeriod，实际: %v", c, err)
		}
	}

	// 恰好在最后一天结束是合法的
	if _, err := svc.Create(context.Background(), &dto.CreateScheduleEntryRequest{
		PeriodID:    period.PeriodID,
		ActivityID:  activity.ActivityID,
		StartOffset: intPtr(7*1440 - 60),
		EndOffset:   intPtr(7 * 1440),
	}); err != nil {
		t.Errorf("结束于阶段末尾应合法: %v", err)
	}
}

func TestScheduleEntryService_Create_ActivityOfOtherCamp(t *testing.T) {
	svc, env, period, _ := setupTestScheduleEntryService(t, "1")
	_, foreign := env.seedCamp(t, "HeLa", "1")

	_, err := svc.Create(context.Background(), &dto.CreateScheduleEntryRequest{
		PeriodID:    period.PeriodID,
		ActivityID:  foreign.ActivityID,
		StartOffset: intPtr(600),
		EndOffset:   intPtr(660),
	})
	if !errors.Is(err, ErrActivityNotFound) {
		t.Errorf("期望 ErrActivityNotFound，实际: %v", err)
	}
}

func TestScheduleEntryService_Create_PeriodNotFound(t *testing.T) {
	svc, _, _, activity := setupTestScheduleEntryService(t, "1")

	_, err := svc.Create(context.Background(), &dto.CreateScheduleEntryRequest{
		PeriodID:    "nonexistent",
		ActivityID:  activity.ActivityID,
		StartOffset: intPtr(600),
		EndOffset:   intPtr(660),
	})
	if !errors.Is(err, ErrPeriodNotFound) {
		t.Errorf("期望 ErrPeriodNotFound，实际: %v", err)
	}
}

// ── ListByPeriod 测试 ──

func TestScheduleEntryService_ListByPeriod_Numbering(t *testing.T) {
	svc, env, period, activity := setupTestScheduleEntryService(t, "a")
	late := env.seedEntry(t, period.PeriodID, activity.ActivityID, 900, 960)
	early := env.seedEntry(t, period.PeriodID, activity.ActivityID, 480, 540)
	nextDay := env.seedEntry(t, period.PeriodID, activity.ActivityID, 1440+480, 1440+540)

	list, err := svc.ListByPeriod(context.Background(), period.PeriodID)
	if err != nil {
		t.Fatalf("ListByPeriod 应成功: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("期望 3 条，实际 %d", len(list))
	}

	byID := make(map[string]dto.ScheduleEntryResponse)
	for _, r := range list {
		byID[r.ID] = r
	}
	expect := map[string]string{
		early.ScheduleEntryID:   "1.a",
		late.ScheduleEntryID:    "1.b",
		nextDay.ScheduleEntryID: "2.a",
	}
	for id, want := range expect {
		if got := byID[id].Number; got != want {
			t.Errorf("条目 %s 期望 %s，实际 %s", id, want, got)
		}
	}
	if byID[late.ScheduleEntryID].ScheduleEntryNumber != 2 {
		t.Errorf("期望 ScheduleEntryNumber=2，实际 %d", byID[late.ScheduleEntryID].ScheduleEntryNumber)
	}
}

func TestScheduleEntryService_ListByPeriod_NotFound(t *testing.T) {
	svc, _, _, _ := setupTestScheduleEntryService(t, "1")

	_, err := svc.ListByPeriod(context.Background(), "nonexistent")
	if !errors.Is(err, ErrPeriodNotFound) {
		t.Errorf("期望 ErrPeriodNotFound，实际: %v", err)
	}
}

// ── GetByID 测试 ──

func TestScheduleEntryService_GetByID(t *testing.T) {
	svc, env, period, activity := setupTestScheduleEntryService(t, "i")
	env.seedEntry(t, period.PeriodID, activity.ActivityID, 480, 540)
	second := env.seedEntry(t, period.PeriodID, activity.ActivityID, 600, 660)

	got, err := svc.GetByID(context.Background(), second.ScheduleEntryID)
	if err != nil {
		t.Fatalf("GetByID 应成功: %v", err)
	}
	if got.Number != "1.ii" {
		t.Errorf("期望 1.ii，实际 %s", got.Number)
	}

	if _, err := svc.GetByID(context.Background(), "nonexistent"); !errors.Is(err, ErrScheduleEntryNotFound) {
		t.Errorf("期望 ErrScheduleEntryNotFound，实际: %v", err)
	}
}

func TestScheduleEntryService_GetByID_OutsidePeriod(t *testing.T) {
	svc, env, period, activity := setupTestScheduleEntryService(t, "1")
	// 绕过校验直接写入第 8 天的条目（阶段只有 7 天）
	stray := env.seedEntry(t, period.PeriodID, activity.ActivityID, 7*1440+60, 7*1440+120)

	got, err := svc.GetByID(context.Background(), stray.ScheduleEntryID)
	if !errors.Is(err, ErrScheduleEntryOutOfPeriod) {
		t.Errorf("期望 ErrScheduleEntryOutOfPeriod，实际: %v (%+v)", err, got)
	}
}

// ── Update 测试 ──

func TestScheduleEntryService_Update_Success(t *testing.T) {
	svc, env, period, activity := setupTestScheduleEntryService(t, "1")
	entry := env.seedEntry(t, period.PeriodID, activity.ActivityID, 480, 540)

	got, err := svc.Update(context.Background(), entry.ScheduleEntryID, &dto.UpdateScheduleEntryRequest{
		StartOffset: intPtr(1440 + 480),
		EndOffset:   intPtr(1440 + 600),
		Left:        floatPtr(0.5),
		Width:       floatPtr(0.5),
	})
	if err != nil {
		t.Fatalf("Update 应成功: %v", err)
	}
	if got.Number != "2.1" {
		t.Errorf("期望 2.1，实际 %s", got.Number)
	}
	if got.Version != 2 {
		t.Errorf("期望 Version=2，实际 %d", got.Version)
	}
	if got.Left != 0.5 || got.Width != 0.5 {
		t.Errorf("left/width 未更新: %v/%v", got.Left, got.Width)
	}
}

func TestScheduleEntryService_Update_InvalidKeepsStored(t *testing.T) {
	svc, env, period, activity := setupTestScheduleEntryService(t, "1")
	entry := env.seedEntry(t, period.PeriodID, activity.ActivityID, 480, 540)

	_, err := svc.Update(context.Background(), entry.ScheduleEntryID, &dto.UpdateScheduleEntryRequest{
		EndOffset: intPtr(400),
	})
	if !errors.Is(err, ErrScheduleEntryTimeInvalid) {
		t.Errorf("期望 ErrScheduleEntryTimeInvalid，实际: %v", err)
	}
	if env.entries.entries[entry.ScheduleEntryID].EndOffset != 540 {
		t.Error("校验失败时不应修改已存储的条目")
	}
}

func TestScheduleEntryService_Update_OptimisticLock(t *testing.T) {
	svc, env, period, activity := setupTestScheduleEntryService(t, "1")
	entry := env.seedEntry(t, period.PeriodID, activity.ActivityID, 480, 540)

	// 模拟并发修改：存储版本已前进
	env.entries.entries[entry.ScheduleEntryID].Version = 4

	conflicting := &model.ScheduleEntry{ScheduleEntryID: entry.ScheduleEntryID, VersionedModel: model.VersionedModel{Version: 3}}
	if err := env.entries.Update(context.Background(), conflicting); !errors.Is(err, pkgerrors.ErrOptimisticLock) {
		t.Errorf("期望 ErrOptimisticLock，实际: %v", err)
	}

	if _, err := svc.Update(context.Background(), entry.ScheduleEntryID, &dto.UpdateScheduleEntryRequest{
		EndOffset: intPtr(600),
	}); err != nil {
		t.Errorf("读取最新版本后更新应成功: %v", err)
	}
}

// ── Delete 测试 ──

func TestScheduleEntryService_Delete(t *testing.T) {
	svc, env, period, activity := setupTestScheduleEntryService(t, "1")
	entry := env.seedEntry(t, period.PeriodID, activity.ActivityID, 480, 540)

	if err := svc.Delete(context.Background(), entry.ScheduleEntryID); err != nil {
		t.Fatalf("Delete 应成功: %v", err)
	}
	if err := svc.Delete(context.Background(), entry.ScheduleEntryID); !errors.Is(err, ErrScheduleEntryNotFound) {
		t.Errorf("期望 ErrScheduleEntryNotFound，实际: %v", err)
	}
}
