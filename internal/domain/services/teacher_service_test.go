package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/woyaochigaga/SQL-server/internal/domain/models"
)

func seedTeacher(t *testing.T, db *gorm.DB, username string) models.Teacher {
	t.Helper()
	user := models.User{Username: username, Password: "pw", Email: username + "@example.com", Role: models.RoleTeacher}
	require.NoError(t, db.Create(&user).Error)
	teacher := models.Teacher{TeacherNumber: models.FormatTeacherNumber(user.UserID), Name: username, UserID: user.UserID}
	require.NoError(t, db.Create(&teacher).Error)
	return teacher
}

func TestGetCoursesByTeacher(t *testing.T) {
	db := newTestDB(t)
	svc := NewTeacherService(db, newTestConfig())

	teacher := seedTeacher(t, db, "t_li")
	other := seedTeacher(t, db, "t_zhang")

	require.NoError(t, db.Create(&models.Course{CourseCode: "MA101", CourseName: "高等数学", Credits: 5, TeacherID: &teacher.TeacherID, Semester: "2026春"}).Error)
	require.NoError(t, db.Create(&models.Course{CourseCode: "MA102", CourseName: "线性代数", Credits: 3, TeacherID: &teacher.TeacherID, Semester: "2026秋"}).Error)
	require.NoError(t, db.Create(&models.Course{CourseCode: "PH101", CourseName: "大学物理", Credits: 4, TeacherID: &other.TeacherID, Semester: "2026春"}).Error)

	courses, err := svc.GetCoursesByTeacher(teacher.TeacherID)
	require.NoError(t, err)
	require.Len(t, courses, 2)
	for _, course := range courses {
		require.NotNil(t, course.TeacherID)
		assert.Equal(t, teacher.TeacherID, *course.TeacherID)
	}

	courses, err = svc.GetCoursesByTeacher(9999)
	require.NoError(t, err)
	assert.Empty(t, courses)
}

func TestGetClassesByAdvisor(t *testing.T) {
	db := newTestDB(t)
	svc := NewTeacherService(db, newTestConfig())

	teacher := seedTeacher(t, db, "t_wang")
	require.NoError(t, db.Create(&models.Class{ClassName: "物理2601", Department: "物理学院", Advisor: &teacher.TeacherID}).Error)
	require.NoError(t, db.Create(&models.Class{ClassName: "物理2602", Department: "物理学院"}).Error)

	classes, err := svc.GetClassesByAdvisor(teacher.TeacherID)
	require.NoError(t, err)
	require.Len(t, classes, 1)
	assert.Equal(t, "物理2601", classes[0].ClassName)
}

func TestGetClassByID(t *testing.T) {
	db := newTestDB(t)
	svc := NewClassService(db, newTestConfig())

	class := seedClass(t, db, "电信2605")

	found, err := svc.GetClassByID(class.ClassID)
	require.NoError(t, err)
	assert.Equal(t, "电信2605", found.ClassName)

	_, err = svc.GetClassByID(9999)
	assert.ErrorIs(t, err, ErrClassNotFound)
}
