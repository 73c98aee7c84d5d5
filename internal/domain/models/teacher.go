package models

import (
	"fmt"
	"time"
)

// Teacher 教师扩展表，与User一对一
type Teacher struct {
	TeacherID     uint      `gorm:"primaryKey" json:"TeacherID"`
	TeacherNumber string    `gorm:"type:varchar(10);uniqueIndex;not null" json:"TeacherNumber"`
	Name          string    `gorm:"type:varchar(50);not null" json:"Name"`
	Gender        *string   `gorm:"type:varchar(10)" json:"Gender"`
	Title         *string   `gorm:"type:varchar(50)" json:"Title"`
	Department    *string   `gorm:"type:varchar(100)" json:"Department"`
	UserID        uint      `gorm:"uniqueIndex;not null" json:"UserID"`
	CreatedAt     time.Time `json:"CreatedAt"`
	UpdatedAt     time.Time `json:"UpdatedAt"`
}

// TableName 指定表名
func (Teacher) TableName() string {
	return "teachers"
}

// FormatTeacherNumber 根据用户ID生成工号：T + 6位补零
func FormatTeacherNumber(userID uint) string {
	return fmt.Sprintf("T%06d", userID)
}
