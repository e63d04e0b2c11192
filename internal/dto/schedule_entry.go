package dto

// ── 日程条目模块 DTO ──

// CreateScheduleEntryRequest 创建日程条目请求
// 偏移量单位为分钟，相对阶段开始
type CreateScheduleEntryRequest struct {
	PeriodID    string   `json:"period_id"    binding:"required,uuid"`
	ActivityID  string   `json:"activity_id"  binding:"required,uuid"`
	StartOffset *int     `json:"start_offset" binding:"required"`
	EndOffset   *int     `json:"end_offset"   binding:"required"`
	Left        *float64 `json:"left"`
	Width       *float64 `json:"width"`
}

// UpdateScheduleEntryRequest 更新日程条目请求
type UpdateScheduleEntryRequest struct {
	ActivityID  *string  `json:"activity_id" binding:"omitempty,uuid"`
	StartOffset *int     `json:"start_offset"`
	EndOffset   *int     `json:"end_offset"`
	Left        *float64 `json:"left"`
	Width       *float64 `json:"width"`
}

// ScheduleEntryResponse 日程条目响应
type ScheduleEntryResponse struct {
	ID                  string  `json:"id"`
	PeriodID            string  `json:"period_id"`
	ActivityID          string  `json:"activity_id"`
	Title               string  `json:"title"`
	CategoryShort       string  `json:"category_short,omitempty"`
	Color               string  `json:"color,omitempty"`
	StartOffset         int     `json:"start_offset"`
	EndOffset           int     `json:"end_offset"`
	Left                float64 `json:"left"`
	Width               float64 `json:"width"`
	Start               string  `json:"start"`
	End                 string  `json:"end"`
	DayNumber           int     `json:"day_number"`
	ScheduleEntryNumber int     `json:"schedule_entry_number"`
	Number              string  `json:"number"`
	Version             int     `json:"version"`
}
