package model

// Category 活动类别 — 对应 categories
// NumberingStyle 决定该类别下日程编号的书写方式：1 | a | A | i | I
type Category struct {
	CategoryID     string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"category_id"`
	CampID         string `gorm:"type:uuid;not null"                             json:"camp_id"`
	Short          string `gorm:"type:varchar(16);not null"                      json:"short"`
	Name           string `gorm:"type:varchar(100);not null"                     json:"name"`
	Color          string `gorm:"type:varchar(8);not null;default:'#1fa2df'"     json:"color"`
	NumberingStyle string `gorm:"type:varchar(1);not null;default:'1'"           json:"numbering_style"`
	BaseModel
}

func (Category) TableName() string { return "categories" }
