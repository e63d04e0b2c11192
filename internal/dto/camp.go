package dto

// ── 营地模块 DTO ──

// CreateCampRequest 创建营地请求
type CreateCampRequest struct {
	Name  string `json:"name"  binding:"required,min=1,max=100"`
	Title string `json:"title" binding:"omitempty,max=200"`
}

// CampResponse 营地信息响应
type CampResponse struct {
	ID      string           `json:"id"`
	Name    string           `json:"name"`
	Title   string           `json:"title"`
	Periods []PeriodResponse `json:"periods,omitempty"`
}

// CreateCategoryRequest 创建活动类别请求
type CreateCategoryRequest struct {
	Short          string `json:"short"           binding:"required,max=16"`
	Name           string `json:"name"            binding:"required,max=100"`
	Color          string `json:"color"           binding:"omitempty,hexcolor"`
	NumberingStyle string `json:"numbering_style" binding:"omitempty,oneof=1 a A i I"`
}

// CategoryResponse 活动类别响应
type CategoryResponse struct {
	ID             string `json:"id"`
	CampID         string `json:"camp_id"`
	Short          string `json:"short"`
	Name           string `json:"name"`
	Color          string `json:"color"`
	NumberingStyle string `json:"numbering_style"`
}

// CreateActivityRequest 创建活动请求
type CreateActivityRequest struct {
	CategoryID string `json:"category_id" binding:"required,uuid"`
	Title      string `json:"title"       binding:"required,max=200"`
	Location   string `json:"location"    binding:"omitempty,max=200"`
}

// ActivityResponse 活动响应
type ActivityResponse struct {
	ID       string            `json:"id"`
	CampID   string            `json:"camp_id"`
	Title    string            `json:"title"`
	Location string            `json:"location"`
	Category *CategoryResponse `json:"category,omitempty"`
}
