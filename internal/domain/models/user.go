package models

import "time"

// 用户角色
const (
	RoleStudent = "student"
	RoleTeacher = "teacher"
	RoleAdmin   = "admin"
)

// IsValidRole 判断角色是否在允许的枚举内
func IsValidRole(role string) bool {
	return role == RoleStudent || role == RoleTeacher || role == RoleAdmin
}

// User 账户表，保存认证身份信息。角色创建后不可变更
type User struct {
	UserID           uint       `gorm:"primaryKey" json:"UserID"`
	Username         string     `gorm:"type:varchar(50);uniqueIndex;not null" json:"Username"`
	Password         string     `gorm:"type:varchar(100);not null" json:"-"` // 密码不在JSON中暴露
	Email            string     `gorm:"type:varchar(100);uniqueIndex;not null" json:"Email"`
	Phone            string     `gorm:"type:varchar(20)" json:"Phone"`
	Role             string     `gorm:"type:varchar(20);not null" json:"Role"`
	LastLogin        *time.Time `json:"LastLogin"`
	ResetToken       *string    `gorm:"type:varchar(64);index" json:"-"`
	ResetTokenExpiry *time.Time `json:"-"`
	CreatedAt        time.Time  `json:"CreatedAt"`
	UpdatedAt        time.Time  `json:"UpdatedAt"`
}

// TableName 指定表名
func (User) TableName() string {
	return "users"
}
