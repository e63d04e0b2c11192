package model

// Camp 营地 — 对应 camps
type Camp struct {
	CampID string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"camp_id"`
	Name   string `gorm:"type:varchar(100);not null"                     json:"name"`
	Title  string `gorm:"type:varchar(200);not null;default:''"          json:"title"`
	BaseModel

	// 关联
	Periods []Period `gorm:"foreignKey:CampID" json:"periods,omitempty"`
}

func (Camp) TableName() string { return "camps" }
