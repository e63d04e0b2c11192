package dto

// ── 阶段模块 DTO ──

// CreatePeriodRequest 创建阶段请求
type CreatePeriodRequest struct {
	CampID      string `json:"camp_id"     binding:"required,uuid"`
	Description string `json:"description" binding:"omitempty,max=200"`
	StartDate   string `json:"start_date"  binding:"required"` // "2024-07-13"
	EndDate     string `json:"end_date"    binding:"required"` // "2024-07-19"
}

// UpdatePeriodRequest 更新阶段请求
// MoveScheduleEntries=true 时条目随开始日期一起移动（相对偏移不变），
// 否则条目保持原来的绝对时间
type UpdatePeriodRequest struct {
	Description         *string `json:"description" binding:"omitempty,max=200"`
	StartDate           *string `json:"start_date"`
	EndDate             *string `json:"end_date"`
	MoveScheduleEntries bool    `json:"move_schedule_entries"`
}

// DayResponse 阶段中某一天
type DayResponse struct {
	ID        string `json:"id"`
	DayOffset int    `json:"day_offset"`
	DayNumber int    `json:"day_number"`
	Date      string `json:"date"`
}

// PeriodResponse 阶段信息响应
type PeriodResponse struct {
	ID             string        `json:"id"`
	CampID         string        `json:"camp_id"`
	Description    string        `json:"description"`
	StartDate      string        `json:"start_date"`
	EndDate        string        `json:"end_date"`
	DurationInDays int           `json:"duration_in_days"`
	FirstDayNumber int           `json:"first_day_number"`
	Version        int           `json:"version"`
	Days           []DayResponse `json:"days,omitempty"`
}
