package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/woyaochigaga/SQL-server/internal/domain/models"
)

func seedGrade(t *testing.T, db *gorm.DB, studentID, courseID uint, score float64) {
	t.Helper()
	require.NoError(t, db.Create(&models.Grade{
		StudentID: studentID,
		CourseID:  courseID,
		Score:     score,
		GradeDate: time.Now(),
	}).Error)
}

func TestGetStatisticsCountsAndDistribution(t *testing.T) {
	db := newTestDB(t)
	svc := NewStatisticsService(db, nil, newTestConfig())

	student, course := seedStudentAndCourse(t, db)
	class := models.Class{ClassName: "软件2101", Department: "计算机学院"}
	require.NoError(t, db.Create(&class).Error)

	// 五档各一条记录
	scores := []float64{95, 85, 75, 65, 40}
	for i, score := range scores {
		extra := models.Course{
			CourseCode: "EX" + string(rune('0'+i)),
			CourseName: "课程",
			Credits:    2,
			Semester:   "2026春",
		}
		require.NoError(t, db.Create(&extra).Error)
		seedGrade(t, db, student.StudentID, extra.CourseID, score)
	}
	_ = course

	stats, err := svc.GetStatistics()
	require.NoError(t, err)

	assert.Equal(t, 1, stats.StudentCount)
	assert.Equal(t, 1, stats.ClassCount)
	assert.Equal(t, 6, stats.CourseCount)
	assert.InDelta(t, 72.0, stats.AverageScore, 0.01)
	assert.Equal(t, ScoreDistribution{A: 1, B: 1, C: 1, D: 1, F: 1}, stats.ScoreDistribution)
}

func TestGetStatisticsEmptyDatabase(t *testing.T) {
	db := newTestDB(t)
	svc := NewStatisticsService(db, nil, newTestConfig())

	stats, err := svc.GetStatistics()
	require.NoError(t, err)
	assert.Zero(t, stats.StudentCount)
	assert.Zero(t, stats.AverageScore)
	assert.Equal(t, ScoreDistribution{}, stats.ScoreDistribution)
}

func TestGetStudentDashboardGPA(t *testing.T) {
	db := newTestDB(t)
	svc := NewStatisticsService(db, nil, newTestConfig())

	student, _ := seedStudentAndCourse(t, db)

	// 4学分95分(4.0)、3学分82分(3.0)、2学分55分(0.0，挂科)
	courses := []struct {
		credits int
		score   float64
	}{
		{4, 95},
		{3, 82},
		{2, 55},
	}
	for i, c := range courses {
		course := models.Course{
			CourseCode: "GP" + string(rune('0'+i)),
			CourseName: "课程",
			Credits:    c.credits,
			Semester:   "2026春",
		}
		require.NoError(t, db.Create(&course).Error)
		seedGrade(t, db, student.StudentID, course.CourseID, c.score)
	}

	dashboard, err := svc.GetStudentDashboard(student.StudentID)
	require.NoError(t, err)

	// GPA = (4*4.0 + 3*3.0 + 2*0.0) / 9 = 2.78
	assert.InDelta(t, 2.78, dashboard.GPA, 0.01)
	assert.Equal(t, 7, dashboard.PassedCredits)
	assert.Equal(t, 1, dashboard.FailedCount)
}

func TestGetStudentDashboardClassAndAdvisor(t *testing.T) {
	db := newTestDB(t)
	svc := NewStatisticsService(db, nil, newTestConfig())

	// 班主任教师及其账户
	teacherUser := models.User{Username: "advisor", Password: "pw", Email: "adv@example.com", Phone: "13800002222", Role: models.RoleTeacher}
	require.NoError(t, db.Create(&teacherUser).Error)
	title := "教授"
	teacher := models.Teacher{
		TeacherNumber: models.FormatTeacherNumber(teacherUser.UserID),
		Name:          "王老师",
		Title:         &title,
		UserID:        teacherUser.UserID,
	}
	require.NoError(t, db.Create(&teacher).Error)

	class := models.Class{ClassName: "软件2101", Department: "计算机学院", Advisor: &teacher.TeacherID}
	require.NoError(t, db.Create(&class).Error)

	student, _ := seedStudentAndCourse(t, db)
	require.NoError(t, db.Model(&models.Student{}).
		Where("student_id = ?", student.StudentID).
		Update("class_id", class.ClassID).Error)

	dashboard, err := svc.GetStudentDashboard(student.StudentID)
	require.NoError(t, err)

	assert.Equal(t, "软件2101", dashboard.ClassName)
	assert.Equal(t, "计算机学院", dashboard.Department)
	assert.Equal(t, "王老师", dashboard.TeacherName)
	assert.Equal(t, "adv@example.com", dashboard.TeacherEmail)
	assert.Equal(t, "13800002222", dashboard.TeacherPhone)
	assert.Equal(t, "教授", dashboard.TeacherTitle)

	// 无成绩时学业数据为零值
	assert.Zero(t, dashboard.GPA)
	assert.Zero(t, dashboard.PassedCredits)
	assert.Zero(t, dashboard.FailedCount)
}
