package models

import "time"

// Grade 成绩表，每个学生每门课程至多一条
type Grade struct {
	GradeID   uint      `gorm:"primaryKey" json:"GradeID"`
	StudentID uint      `gorm:"uniqueIndex:uk_grade_student_course;not null" json:"StudentID"`
	CourseID  uint      `gorm:"uniqueIndex:uk_grade_student_course;not null" json:"CourseID"`
	Score     float64   `gorm:"not null" json:"Score"`
	GradeDate time.Time `json:"GradeDate"`
	Comments  *string   `gorm:"type:varchar(200)" json:"Comments"`
	CreatedBy *uint     `json:"CreatedBy"`
	CreatedAt time.Time `json:"CreatedAt"`
	UpdatedAt time.Time `json:"UpdatedAt"`
}

// TableName 指定表名
func (Grade) TableName() string {
	return "grades"
}
