package model

// Day 阶段中的某一天 — 对应 days
type Day struct {
	DayID     string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"day_id"`
	PeriodID  string `gorm:"type:uuid;not null"                             json:"period_id"`
	DayOffset int    `gorm:"not null"                                       json:"day_offset"`
	BaseModel
}

func (Day) TableName() string { return "days" }
