package model

import "time"

// 联系咨询的初始状态。
const ContactStatusPending = "Pending"

// ContactInquiry 对应于数据库中的 'contact_inquiries' 表。
// 它是客户从官网联系表单提交的咨询记录，不关联任何用户。
type ContactInquiry struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	FullName          string    `gorm:"type:varchar(100);not null" json:"full_name"`
	Email             string    `gorm:"type:varchar(120);not null" json:"email"`
	PhoneNumber       string    `gorm:"type:varchar(20)" json:"phone_number"`
	CompanyName       string    `gorm:"type:varchar(100)" json:"company_name"`
	Country           string    `gorm:"type:varchar(50)" json:"country"`
	JobTitle          string    `gorm:"type:varchar(50)" json:"job_title"`
	JobDetails        string    `gorm:"type:text" json:"job_details"`
	CompanyLocation   string    `gorm:"type:varchar(50)" json:"company_location"`
	InterestedProduct string    `gorm:"type:varchar(50)" json:"interested_product"`
	CurrentSolution   string    `gorm:"type:text" json:"current_solution"`
	InquiryReason     string    `gorm:"type:text" json:"inquiry_reason"`
	SubmissionDate    time.Time `gorm:"autoCreateTime" json:"submission_date"`
	Status            string    `gorm:"type:varchar(20);default:Pending" json:"status"`
}

// TableName 指定了此模型在数据库中对应的表名。
func (ContactInquiry) TableName() string {
	return "contact_inquiries"
}
