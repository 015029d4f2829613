// Package model 包含了应用的数据模型定义。
package model

import "time"

// 角色枚举，数据库中以字符串存储。
const (
	RoleAdmin    = "admin"
	RoleUser     = "user"
	RoleCustomer = "customer"
)

// ValidRole 校验角色是否属于固定枚举 {admin, user, customer}。
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleUser || role == RoleCustomer
}

// User 对应于数据库中的 'users' 表。
// PasswordHash 永远不会被序列化返回。
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"type:varchar(256);uniqueIndex;not null" json:"username"`
	Email        string    `gorm:"type:varchar(256);uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"type:varchar(256)" json:"-"`
	Role         string    `gorm:"type:varchar(20);not null;default:customer" json:"role"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	IsActive     bool      `gorm:"default:true" json:"is_active"`
}

// IsAdmin 判断用户是否为管理员。
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// TableName 指定了此模型在数据库中对应的表名。
func (User) TableName() string {
	return "users"
}
