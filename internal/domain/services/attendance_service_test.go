package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/woyaochigaga/SQL-server/internal/domain/models"
)

func seedEnrolledCourse(t *testing.T, db *gorm.DB, studentCount int) (models.Course, []models.Student) {
	t.Helper()

	course := models.Course{CourseCode: "CS102", CourseName: "数据结构", Credits: 3, Semester: "2026秋"}
	require.NoError(t, db.Create(&course).Error)

	students := make([]models.Student, 0, studentCount)
	for i := 0; i < studentCount; i++ {
		user := models.User{
			Username: "stu" + string(rune('a'+i)),
			Password: "pw",
			Email:    "stu" + string(rune('a'+i)) + "@example.com",
			Role:     models.RoleStudent,
		}
		require.NoError(t, db.Create(&user).Error)
		student := models.Student{
			StudentNumber: models.FormatStudentNumber(user.UserID),
			Name:          user.Username,
			UserID:        user.UserID,
		}
		require.NoError(t, db.Create(&student).Error)
		require.NoError(t, db.Create(&models.StudentCourse{
			StudentID: student.StudentID,
			CourseID:  course.CourseID,
		}).Error)
		students = append(students, student)
	}

	return course, students
}

func TestPublishCourseActivityFanOut(t *testing.T) {
	db := newTestDB(t)
	svc := NewAttendanceService(db, newTestConfig())
	course, students := seedEnrolledCourse(t, db, 3)

	date := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	comments := "第一周签到"
	err := svc.PublishCourseActivity(course.CourseID, "签到", date, &comments, 1)
	require.NoError(t, err)

	// 每个选课学生各有一条记录
	var records []models.Attendance
	require.NoError(t, db.Order("student_id").Find(&records).Error)
	require.Len(t, records, len(students))
	for i, record := range records {
		assert.Equal(t, students[i].StudentID, record.StudentID)
		assert.Equal(t, course.CourseID, record.CourseID)
		assert.Equal(t, "签到", record.Status)
		require.NotNil(t, record.Comments)
		assert.Equal(t, comments, *record.Comments)
	}
}

func TestPublishCourseActivityRequiresStudents(t *testing.T) {
	db := newTestDB(t)
	svc := NewAttendanceService(db, newTestConfig())

	course := models.Course{CourseCode: "CS199", CourseName: "空课程", Credits: 1, Semester: "2026秋"}
	require.NoError(t, db.Create(&course).Error)

	err := svc.PublishCourseActivity(course.CourseID, "考试", time.Now(), nil, 1)
	assert.ErrorIs(t, err, ErrCourseNoStudents)

	var count int64
	db.Model(&models.Attendance{}).Count(&count)
	assert.Zero(t, count)
}

func TestGetActivitiesByStudentOrdersByDateDesc(t *testing.T) {
	db := newTestDB(t)
	svc := NewAttendanceService(db, newTestConfig())
	course, students := seedEnrolledCourse(t, db, 1)

	early := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	late := time.Date(2026, 3, 9, 8, 0, 0, 0, time.UTC)
	require.NoError(t, svc.PublishCourseActivity(course.CourseID, "签到", early, nil, 1))
	require.NoError(t, svc.PublishCourseActivity(course.CourseID, "考试", late, nil, 1))

	activities, err := svc.GetActivitiesByStudent(students[0].StudentID)
	require.NoError(t, err)
	require.Len(t, activities, 2)
	assert.Equal(t, "考试", activities[0].Status)
	assert.Equal(t, "签到", activities[1].Status)
	assert.Equal(t, course.CourseID, activities[0].CourseID)
	assert.Equal(t, "CS102", activities[0].CourseCode)
}
