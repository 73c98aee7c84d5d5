package models

import "time"

// Attendance 考勤/课程活动表，教师发布活动时为每个选课学生各插入一条
type Attendance struct {
	AttendanceID   uint      `gorm:"primaryKey" json:"AttendanceID"`
	StudentID      uint      `gorm:"index;not null" json:"StudentID"`
	CourseID       uint      `gorm:"index;not null" json:"CourseID"`
	AttendanceDate time.Time `json:"AttendanceDate"`
	Status         string    `gorm:"type:varchar(50);not null" json:"Status"`
	Comments       *string   `gorm:"type:varchar(200)" json:"Comments"`
	RecordedBy     uint      `json:"RecordedBy"`
	CreatedAt      time.Time `json:"CreatedAt"`
}

// TableName 指定表名
func (Attendance) TableName() string {
	return "attendances"
}
