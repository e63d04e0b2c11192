package model

// ScheduleEntry 日程条目 — 对应 schedule_entries
// StartOffset / EndOffset 为相对阶段开始的分钟数
// Left / Width 为所在日列中的水平位置（0~1）
type ScheduleEntry struct {
	ScheduleEntryID string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"schedule_entry_id"`
	PeriodID        string  `gorm:"type:uuid;not null"                             json:"period_id"`
	ActivityID      string  `gorm:"type:uuid;not null"                             json:"activity_id"`
	StartOffset     int     `gorm:"not null;default:0"                             json:"start_offset"`
	EndOffset       int     `gorm:"not null;default:60"                            json:"end_offset"`
	Left            float64 `gorm:"column:left;not null;default:0"                 json:"left"`
	Width           float64 `gorm:"not null;default:1"                             json:"width"`
	VersionedModel

	// 关联
	Activity *Activity `gorm:"foreignKey:ActivityID;references:ActivityID" json:"activity,omitempty"`
}

func (ScheduleEntry) TableName() string { return "schedule_entries" }
