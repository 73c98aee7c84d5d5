package models

import "time"

// Class 班级表，Advisor为班主任的教师ID
type Class struct {
	ClassID    uint      `gorm:"primaryKey" json:"ClassID"`
	ClassName  string    `gorm:"type:varchar(50);not null" json:"ClassName"`
	Department string    `gorm:"type:varchar(100)" json:"Department"`
	Advisor    *uint     `gorm:"index" json:"Advisor"`
	CreatedAt  time.Time `json:"CreatedAt"`
	UpdatedAt  time.Time `json:"UpdatedAt"`
}

// TableName 指定表名
func (Class) TableName() string {
	return "classes"
}
