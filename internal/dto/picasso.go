package dto

// ── picasso 模块 DTO ──

// PicassoQuery picasso 查询参数，缺省时使用配置值
type PicassoQuery struct {
	MaxDaysPerPage  *int     `form:"max_days_per_page"  binding:"omitempty,min=1,max=31"`
	TimeBucketHours *float64 `form:"time_bucket_hours"  binding:"omitempty,gt=0,lte=24"`
}

// TimeBucketResponse 纵轴刻度
type TimeBucketResponse struct {
	Hour   float64 `json:"hour"`
	Weight float64 `json:"weight"`
}

// PlacedEntryResponse 放置在日列中的条目
// 几何值均为百分比
type PlacedEntryResponse struct {
	ID       string  `json:"id"`
	Number   string  `json:"number"`
	Title    string  `json:"title"`
	Color    string  `json:"color,omitempty"`
	Location string  `json:"location,omitempty"`
	Top      float64 `json:"top"`
	Bottom   float64 `json:"bottom"`
	Left     float64 `json:"left"`
	Right    float64 `json:"right"`
}

// DayColumnResponse picasso 中的一天
type DayColumnResponse struct {
	DayOffset int                   `json:"day_offset"`
	DayNumber int                   `json:"day_number"`
	Date      string                `json:"date"`
	Entries   []PlacedEntryResponse `json:"entries"`
}

// PicassoPageResponse picasso 的一页
type PicassoPageResponse struct {
	Bedtime        float64              `json:"bedtime"`
	GetUpTime      float64              `json:"get_up_time"`
	NightCollapsed bool                 `json:"night_collapsed"`
	TimeBuckets    []TimeBucketResponse `json:"time_buckets"`
	Days           []DayColumnResponse  `json:"days"`
}

// PicassoResponse 整个阶段的 picasso
type PicassoResponse struct {
	PeriodID        string                `json:"period_id"`
	CampName        string                `json:"camp_name"`
	MaxDaysPerPage  int                   `json:"max_days_per_page"`
	TimeBucketHours float64               `json:"time_bucket_hours"`
	Pages           []PicassoPageResponse `json:"pages"`
}
