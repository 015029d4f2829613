package model

import "time"

// CustomerFeedback 对应于数据库中的 'customer_feedbacks' 表。
// Rating 允许缺省；存在时取值范围为 [1,5]，由服务层校验。
type CustomerFeedback struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	CustomerID   uint      `gorm:"not null" json:"customer_id"`
	FeedbackText string    `gorm:"type:text" json:"feedback_text"`
	Rating       *int      `json:"rating"`
	FeedbackDate time.Time `gorm:"autoCreateTime" json:"feedback_date"`
}

// TableName 指定了此模型在数据库中对应的表名。
func (CustomerFeedback) TableName() string {
	return "customer_feedbacks"
}
