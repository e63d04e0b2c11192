package model

import "time"

// Period 营地阶段 — 对应 periods
// StartDate / EndDate 为 UTC 零点的日期（含首尾两天）
type Period struct {
	PeriodID    string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"period_id"`
	CampID      string    `gorm:"type:uuid;not null"                             json:"camp_id"`
	Description string    `gorm:"type:varchar(200);not null;default:''"          json:"description"`
	StartDate   time.Time `gorm:"type:date;not null"                             json:"start_date"`
	EndDate     time.Time `gorm:"type:date;not null"                             json:"end_date"`
	VersionedModel

	// 关联
	Camp *Camp `gorm:"foreignKey:CampID;references:CampID" json:"camp,omitempty"`
	Days []Day `gorm:"foreignKey:PeriodID"                 json:"days,omitempty"`
}

func (Period) TableName() string { return "periods" }

// DurationInDays 阶段天数（含首尾）
func (p *Period) DurationInDays() int {
	return int(p.EndDate.Sub(p.StartDate).Hours()/24) + 1
}
