package service

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tf267183/ecamp3/internal/model"
	"github.com/tf267183/ecamp3/internal/repository"
	pkgerrors "github.com/tf267183/ecamp3/pkg/errors"
)

// 所有 mock 的 GetByID/List 返回副本，模拟数据库读取

// ── Mock CampRepository ──

type mockCampRepo struct {
	camps map[string]*model.Camp
}

func newMockCampRepo() *mockCampRepo {
	return &mockCampRepo{camps: make(map[string]*model.Camp)}
}

func (m *mockCampRepo) Create(_ context.Context, camp *model.Camp) error {
	if camp.CampID == "" {
		camp.CampID = uuid.NewString()
	}
	c := *camp
	m.camps[camp.CampID] = &c
	return nil
}

func (m *mockCampRepo) GetByID(_ context.Context, id string) (*model.Camp, error) {
	if c, ok := m.camps[id]; ok {
		cp := *c
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

// ── Mock PeriodRepository ──

type mockPeriodRepo struct {
	periods map[string]*model.Period
	camps   *mockCampRepo
	entries *mockScheduleEntryRepo
}

func newMockPeriodRepo(camps *mockCampRepo, entries *mockScheduleEntryRepo) *mockPeriodRepo {
	return &mockPeriodRepo{periods: make(map[string]*model.Period), camps: camps, entries: entries}
}

func (m *mockPeriodRepo) Create(_ context.Context, period *model.Period) error {
	if period.PeriodID == "" {
		period.PeriodID = uuid.NewString()
	}
	period.Version = 1
	p := *period
	p.Days = mockDays(p.PeriodID, p.DurationInDays())
	m.periods[p.PeriodID] = &p
	return nil
}

func (m *mockPeriodRepo) GetByID(_ context.Context, id string) (*model.Period, error) {
	p, ok := m.periods[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *p
	cp.Days = append([]model.Day(nil), p.Days...)
	if c, ok := m.camps.camps[p.CampID]; ok {
		camp := *c
		cp.Camp = &camp
	}
	return &cp, nil
}

func (m *mockPeriodRepo) ListByCamp(_ context.Context, campID string) ([]model.Period, error) {
	var result []model.Period
	for _, p := range m.periods {
		if p.CampID == campID {
			result = append(result, *p)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].StartDate.Before(result[j].StartDate) })
	return result, nil
}

func (m *mockPeriodRepo) Update(_ context.Context, period *model.Period, shiftMinutes int) error {
	stored, ok := m.periods[period.PeriodID]
	if !ok || stored.Version != period.Version {
		return pkgerrors.ErrOptimisticLock
	}
	period.Version++
	p := *period
	p.Camp = nil
	p.Days = mockDays(p.PeriodID, p.DurationInDays())
	m.periods[p.PeriodID] = &p

	if shiftMinutes != 0 {
		for _, e := range m.entries.entries {
			if e.PeriodID == p.PeriodID {
				e.StartOffset += shiftMinutes
				e.EndOffset += shiftMinutes
			}
		}
	}
	return nil
}

func mockDays(periodID string, n int) []model.Day {
	days := make([]model.Day, 0, n)
	for i := 0; i < n; i++ {
		days = append(days, model.Day{DayID: uuid.NewString(), PeriodID: periodID, DayOffset: i})
	}
	return days
}

// ── Mock DayRepository ──

type mockDayRepo struct {
	periods *mockPeriodRepo
}

func (m *mockDayRepo) ListByPeriod(_ context.Context, periodID string) ([]model.Day, error) {
	if p, ok := m.periods.periods[periodID]; ok {
		return append([]model.Day(nil), p.Days...), nil
	}
	return nil, nil
}

// ── Mock CategoryRepository ──

type mockCategoryRepo struct {
	categories map[string]*model.Category
}

func newMockCategoryRepo() *mockCategoryRepo {
	return &mockCategoryRepo{categories: make(map[string]*model.Category)}
}

func (m *mockCategoryRepo) Create(_ context.Context, category *model.Category) error {
	if category.CategoryID == "" {
		category.CategoryID = uuid.NewString()
	}
	c := *category
	m.categories[c.CategoryID] = &c
	return nil
}

func (m *mockCategoryRepo) GetByID(_ context.Context, id string) (*model.Category, error) {
	if c, ok := m.categories[id]; ok {
		cp := *c
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCategoryRepo) ListByCamp(_ context.Context, campID string) ([]model.Category, error) {
	var result []model.Category
	for _, c := range m.categories {
		if c.CampID == campID {
			result = append(result, *c)
		}
	}
	return result, nil
}

// ── Mock ActivityRepository ──

type mockActivityRepo struct {
	activities map[string]*model.Activity
	categories *mockCategoryRepo
}

func newMockActivityRepo(categories *mockCategoryRepo) *mockActivityRepo {
	return &mockActivityRepo{activities: make(map[string]*model.Activity), categories: categories}
}

func (m *mockActivityRepo) Create(_ context.Context, activity *model.Activity) error {
	if activity.ActivityID == "" {
		activity.ActivityID = uuid.NewString()
	}
	a := *activity
	a.Category = nil
	m.activities[a.ActivityID] = &a
	return nil
}

func (m *mockActivityRepo) GetByID(_ context.Context, id string) (*model.Activity, error) {
	a, ok := m.activities[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *a
	if c, ok := m.categories.categories[a.CategoryID]; ok {
		cat := *c
		cp.Category = &cat
	}
	return &cp, nil
}

// ── Mock ScheduleEntryRepository ──

type mockScheduleEntryRepo struct {
	entries    map[string]*model.ScheduleEntry
	activities *mockActivityRepo
}

func newMockScheduleEntryRepo() *mockScheduleEntryRepo {
	return &mockScheduleEntryRepo{entries: make(map[string]*model.ScheduleEntry)}
}

func (m *mockScheduleEntryRepo) Create(_ context.Context, entry *model.ScheduleEntry) error {
	if entry.ScheduleEntryID == "" {
		entry.ScheduleEntryID = uuid.NewString()
	}
	entry.Version = 1
	e := *entry
	e.Activity = nil
	m.entries[e.ScheduleEntryID] = &e
	return nil
}

func (m *mockScheduleEntryRepo) withActivity(e *model.ScheduleEntry) model.ScheduleEntry {
	cp := *e
	if m.activities != nil {
		if a, err := m.activities.GetByID(context.Background(), e.ActivityID); err == nil {
			cp.Activity = a
		}
	}
	return cp
}

func (m *mockScheduleEntryRepo) GetByID(_ context.Context, id string) (*model.ScheduleEntry, error) {
	e, ok := m.entries[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := m.withActivity(e)
	return &cp, nil
}

func (m *mockScheduleEntryRepo) ListByPeriod(_ context.Context, periodID string) ([]model.ScheduleEntry, error) {
	var result []model.ScheduleEntry
	for _, e := range m.entries {
		if e.PeriodID == periodID {
			result = append(result, m.withActivity(e))
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].StartOffset != result[j].StartOffset {
			return result[i].StartOffset < result[j].StartOffset
		}
		return result[i].ScheduleEntryID < result[j].ScheduleEntryID
	})
	return result, nil
}

func (m *mockScheduleEntryRepo) Update(_ context.Context, entry *model.ScheduleEntry) error {
	stored, ok := m.entries[entry.ScheduleEntryID]
	if !ok || stored.Version != entry.Version {
		return pkgerrors.ErrOptimisticLock
	}
	entry.Version++
	e := *entry
	e.Activity = nil
	m.entries[e.ScheduleEntryID] = &e
	return nil
}

func (m *mockScheduleEntryRepo) Delete(_ context.Context, id string) error {
	if _, ok := m.entries[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.entries, id)
	return nil
}

// ── 测试环境 ──

type testEnv struct {
	repo       *repository.Repository
	camps      *mockCampRepo
	periods    *mockPeriodRepo
	categories *mockCategoryRepo
	activities *mockActivityRepo
	entries    *mockScheduleEntryRepo
}

func newTestEnv() *testEnv {
	camps := newMockCampRepo()
	categories := newMockCategoryRepo()
	activities := newMockActivityRepo(categories)
	entries := newMockScheduleEntryRepo()
	entries.activities = activities
	periods := newMockPeriodRepo(camps, entries)

	return &testEnv{
		repo: &repository.Repository{
			Camp:          camps,
			Period:        periods,
			Day:           &mockDayRepo{periods: periods},
			Category:      categories,
			Activity:      activities,
			ScheduleEntry: entries,
		},
		camps:      camps,
		periods:    periods,
		categories: categories,
		activities: activities,
		entries:    entries,
	}
}
