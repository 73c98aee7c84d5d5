package models

import "time"

// Course 课程表
type Course struct {
	CourseID    uint      `gorm:"primaryKey" json:"CourseID"`
	CourseCode  string    `gorm:"type:varchar(20);uniqueIndex;not null" json:"CourseCode"`
	CourseName  string    `gorm:"type:varchar(100);not null" json:"CourseName"`
	Credits     int       `json:"Credits"`
	TeacherID   *uint     `gorm:"index" json:"TeacherID"`
	Semester    string    `gorm:"type:varchar(20)" json:"Semester"`
	Description string    `gorm:"type:varchar(500)" json:"Description"`
	CreatedAt   time.Time `json:"CreatedAt"`
	UpdatedAt   time.Time `json:"UpdatedAt"`
}

// TableName 指定表名
func (Course) TableName() string {
	return "courses"
}

// StudentCourse 选课关系表
type StudentCourse struct {
	ID        uint      `gorm:"primaryKey" json:"ID"`
	StudentID uint      `gorm:"uniqueIndex:uk_student_course;not null" json:"StudentID"`
	CourseID  uint      `gorm:"uniqueIndex:uk_student_course;not null" json:"CourseID"`
	CreatedAt time.Time `json:"CreatedAt"`
}

// TableName 指定表名
func (StudentCourse) TableName() string {
	return "student_courses"
}
