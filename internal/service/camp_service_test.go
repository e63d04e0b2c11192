package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/tf267183/ecamp3/internal/dto"
)

func setupTestCampService() (CampService, *testEnv) {
	env := newTestEnv()
	return NewCampService(env.repo, zap.NewNop()), env
}

func TestCampService_CreateAndGet(t *testing.T) {
	svc, env := setupTestCampService()
	ctx := context.Background()

	camp, err := svc.Create(ctx, &dto.CreateCampRequest{Name: "Sola", Title: "Sommerlager 2024"})
	if err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}
	env.seedPeriod(t, camp.ID, "2024-08-01", "2024-08-02")
	env.seedPeriod(t, camp.ID, "2024-07-13", "2024-07-19")

	got, err := svc.GetByID(ctx, camp.ID)
	if err != nil {
		t.Fatalf("GetByID 应成功: %v", err)
	}
	if got.Title != "Sommerlager 2024" {
		t.Errorf("标题不符: %s", got.Title)
	}
	// mock 不预加载 Periods
	if len(got.Periods) != 0 {
		t.Errorf("期望无预加载阶段，实际 %d", len(got.Periods))
	}
}

func TestCampService_GetByID_NotFound(t *testing.T) {
	svc, _ := setupTestCampService()

	_, err := svc.GetByID(context.Background(), "nonexistent")
	if !errors.Is(err, ErrCampNotFound) {
		t.Errorf("期望 ErrCampNotFound，实际: %v", err)
	}
}

func TestCampService_CreateCategory_Defaults(t *testing.T) {
	svc, env := setupTestCampService()
	camp, _ := env.seedCamp(t, "Sola", "1")

	cat, err := svc.CreateCategory(context.Background(), camp.CampID, &dto.CreateCategoryRequest{
		Short: "ES",
		Name:  "Essen",
	})
	if err != nil {
		t.Fatalf("CreateCategory 应成功: %v", err)
	}
	if cat.Color != defaultCategoryColor {
		t.Errorf("期望默认颜色，实际 %s", cat.Color)
	}
	if cat.NumberingStyle != "1" {
		t.Errorf("期望默认编号样式 1，实际 %s", cat.NumberingStyle)
	}
}

func TestCampService_CreateCategory_CampNotFound(t *testing.T) {
	svc, _ := setupTestCampService()

	_, err := svc.CreateCategory(context.Background(), "nonexistent", &dto.CreateCategoryRequest{Short: "ES", Name: "Essen"})
	if !errors.Is(err, ErrCampNotFound) {
		t.Errorf("期望 ErrCampNotFound，实际: %v", err)
	}
}

func TestCampService_CreateActivity(t *testing.T) {
	svc, env := setupTestCampService()
	ctx := context.Background()
	camp, _ := env.seedCamp(t, "Sola", "1")

	cat, _ := svc.CreateCategory(ctx, camp.CampID, &dto.CreateCategoryRequest{Short: "LP", Name: "Lagerprogramm", NumberingStyle: "A"})
	act, err := svc.CreateActivity(ctx, camp.CampID, &dto.CreateActivityRequest{
		CategoryID: cat.ID,
		Title:      "Lagerfeuer",
		Location:   "Feuerstelle",
	})
	if err != nil {
		t.Fatalf("CreateActivity 应成功: %v", err)
	}
	if act.Category == nil || act.Category.NumberingStyle != "A" {
		t.Errorf("活动类别不符: %+v", act.Category)
	}

	// 其他营地的类别不可用
	other, _ := env.seedCamp(t, "HeLa", "1")
	_, err = svc.CreateActivity(ctx, other.CampID, &dto.CreateActivityRequest{CategoryID: cat.ID, Title: "x"})
	if !errors.Is(err, ErrCategoryNotFound) {
		t.Errorf("期望 ErrCategoryNotFound，实际: %v", err)
	}
}
