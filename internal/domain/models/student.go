package models

import (
	"fmt"
	"time"
)

// Student 学生扩展表，与User一对一，注册时随账户一起创建
type Student struct {
	StudentID     uint      `gorm:"primaryKey" json:"StudentID"`
	StudentNumber string    `gorm:"type:varchar(10);uniqueIndex;not null" json:"StudentNumber"`
	Name          string    `gorm:"type:varchar(50);not null" json:"Name"`
	Gender        *string   `gorm:"type:varchar(10)" json:"Gender"`
	Age           *int      `json:"Age"`
	ClassID       *uint     `gorm:"index" json:"ClassID"`
	Address       *string   `gorm:"type:varchar(200)" json:"Address"`
	UserID        uint      `gorm:"uniqueIndex;not null" json:"UserID"`
	CreatedAt     time.Time `json:"CreatedAt"`
	UpdatedAt     time.Time `json:"UpdatedAt"`

	// Relations
	Class *Class `gorm:"foreignKey:ClassID" json:"Class,omitempty"`
}

// TableName 指定表名
func (Student) TableName() string {
	return "students"
}

// FormatStudentNumber 根据用户ID生成学号：S + 6位补零
func FormatStudentNumber(userID uint) string {
	return fmt.Sprintf("S%06d", userID)
}
