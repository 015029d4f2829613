package model

import "time"

// Solution 对应于数据库中的 'solutions' 表。
// CustomerID 指向 users 表，关系通过显式查询解析而非对象图遍历。
type Solution struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	CustomerID  uint      `gorm:"not null" json:"customer_id"`
	Title       string    `gorm:"type:varchar(100);not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Industry    string    `gorm:"type:varchar(50)" json:"industry"`
	KeyFeatures string    `gorm:"type:text" json:"key_features"`
	ImageURL    string    `gorm:"type:varchar(255)" json:"image_url"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// TableName 指定了此模型在数据库中对应的表名。
func (Solution) TableName() string {
	return "solutions"
}
