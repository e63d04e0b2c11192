package model

// Activity 活动 — 对应 activities
type Activity struct {
	ActivityID string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"activity_id"`
	CampID     string `gorm:"type:uuid;not null"                             json:"camp_id"`
	CategoryID string `gorm:"type:uuid;not null"                             json:"category_id"`
	Title      string `gorm:"type:varchar(200);not null"                     json:"title"`
	Location   string `gorm:"type:varchar(200);not null;default:''"          json:"location"`
	BaseModel

	// 关联
	Category *Category `gorm:"foreignKey:CategoryID;references:CategoryID" json:"category,omitempty"`
}

func (Activity) TableName() string { return "activities" }
