package model

import "time"

// PromotionalEvent 对应于数据库中的 'promotional_events' 表。
// IsUpcoming 是派生标志：开始时间早于当前时间后在每次列表查询前被惰性置为 false。
type PromotionalEvent struct {
	ID               uint       `gorm:"primaryKey" json:"id"`
	EventName        string     `gorm:"type:varchar(100);not null" json:"event_name"`
	EventDescription string     `gorm:"type:text" json:"event_description"`
	EventStartDate   *time.Time `json:"event_start_date"`
	EventEndDate     *time.Time `json:"event_end_date"`
	Location         string     `gorm:"type:varchar(100)" json:"location"`
	ImageURL         string     `gorm:"type:varchar(255)" json:"image_url"`
	IsUpcoming       bool       `gorm:"default:true" json:"is_upcoming"`
}

// TableName 指定了此模型在数据库中对应的表名。
func (PromotionalEvent) TableName() string {
	return "promotional_events"
}
