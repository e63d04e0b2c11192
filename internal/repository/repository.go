package repository

import "gorm.io/gorm"

// Repository 所有 Repository 的聚合入口
type Repository struct {
	Camp          CampRepository
	Period        PeriodRepository
	Day           DayRepository
	Category      CategoryRepository
	Activity      ActivityRepository
	ScheduleEntry ScheduleEntryRepository
}

// NewRepository 创建 Repository 聚合
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		Camp:          NewCampRepo(db),
		Period:        NewPeriodRepo(db),
		Day:           NewDayRepo(db),
		Category:      NewCategoryRepo(db),
		Activity:      NewActivityRepo(db),
		ScheduleEntry: NewScheduleEntryRepo(db),
	}
}
