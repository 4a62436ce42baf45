package usecase

import (
	"path/filepath"
	"testing"

	authdomain "learning-buddy-backend/internal/auth/domain"
	coursedomain "learning-buddy-backend/internal/course/domain"
	courserepo "learning-buddy-backend/internal/course/repository"
	enrollmentdomain "learning-buddy-backend/internal/enrollment/domain"
	"learning-buddy-backend/internal/enrollment/repository"
	"learning-buddy-backend/pkg/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type enrollmentFixture struct {
	uc      EnrollmentUsecase
	course  *coursedomain.Course
	modules []*coursedomain.Module
}

func newEnrollmentFixture(t *testing.T) *enrollmentFixture {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&authdomain.User{}, &coursedomain.Course{}, &coursedomain.Module{}, &enrollmentdomain.Enrollment{}))

	courseRepo := courserepo.NewCourseRepository(db)
	moduleRepo := courserepo.NewModuleRepository(db)

	mentor := &authdomain.User{ID: "mentor-1", Name: "Mia Mentor", Email: "mia@example.com", Password: "x", Role: authdomain.RoleMentor}
	require.NoError(t, db.Create(mentor).Error)

	course := &coursedomain.Course{Title: "Databases", Price: 20, Domain: "engineering", MentorID: mentor.ID}
	require.NoError(t, courseRepo.Create(course))

	var modules []*coursedomain.Module
	for i, title := range []string{"Storage engines", "Indexes", "Transactions"} {
		module := &coursedomain.Module{CourseID: course.ID, Position: i, Title: title, Description: title}
		require.NoError(t, moduleRepo.Create(module))
		modules = append(modules, module)
	}

	return &enrollmentFixture{
		uc:      NewEnrollmentUsecase(repository.NewEnrollmentRepository(db), courseRepo, moduleRepo),
		course:  course,
		modules: modules,
	}
}

func TestEnroll(t *testing.T) {
	f := newEnrollmentFixture(t)

	assert.ErrorIs(t, f.uc.Enroll("student-1", "missing-course"), apperr.ErrNotFound)

	require.NoError(t, f.uc.Enroll("student-1", f.course.ID))

	// A second enrollment for the same pair is rejected.
	assert.ErrorIs(t, f.uc.Enroll("student-1", f.course.ID), apperr.ErrConflict)

	enrolled, err := f.uc.ListEnrollments("student-1")
	require.NoError(t, err)
	require.Len(t, enrolled, 1)
	require.NotNil(t, enrolled[0].Course)
	assert.Equal(t, f.course.ID, enrolled[0].Course.ID)
	assert.Equal(t, "Databases", enrolled[0].Course.Title)
	assert.Empty(t, enrolled[0].CompletedModules)
}

func TestUnenroll(t *testing.T) {
	f := newEnrollmentFixture(t)

	assert.ErrorIs(t, f.uc.Unenroll("student-1", f.course.ID), apperr.ErrNotFound)

	require.NoError(t, f.uc.Enroll("student-1", f.course.ID))
	require.NoError(t, f.uc.Unenroll("student-1", f.course.ID))

	enrolled, err := f.uc.ListEnrollments("student-1")
	require.NoError(t, err)
	assert.Empty(t, enrolled)

	// Re-enrolling starts with a clean completion set.
	require.NoError(t, f.uc.Enroll("student-1", f.course.ID))
	enrolled, err = f.uc.ListEnrollments("student-1")
	require.NoError(t, err)
	require.Len(t, enrolled, 1)
	assert.Empty(t, enrolled[0].CompletedModules)
}

func TestToggleModuleCompletion(t *testing.T) {
	f := newEnrollmentFixture(t)
	moduleID := f.modules[0].ID

	_, err := f.uc.ToggleModuleCompletion("student-1", f.course.ID, moduleID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	require.NoError(t, f.uc.Enroll("student-1", f.course.ID))

	completed, err := f.uc.ToggleModuleCompletion("student-1", f.course.ID, moduleID)
	require.NoError(t, err)
	assert.Equal(t, []string{moduleID}, completed)

	// Toggling twice returns to the original set.
	completed, err = f.uc.ToggleModuleCompletion("student-1", f.course.ID, moduleID)
	require.NoError(t, err)
	assert.Empty(t, completed)

	_, err = f.uc.ToggleModuleCompletion("student-1", f.course.ID, "not-a-module")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestListModulesWithCompletion(t *testing.T) {
	f := newEnrollmentFixture(t)

	// Not enrolled: every module reads incomplete.
	modules, err := f.uc.ListModulesWithCompletion("student-1", f.course.ID)
	require.NoError(t, err)
	require.Len(t, modules, 3)
	for _, module := range modules {
		assert.False(t, module.Completed)
	}

	require.NoError(t, f.uc.Enroll("student-1", f.course.ID))
	_, err = f.uc.ToggleModuleCompletion("student-1", f.course.ID, f.modules[1].ID)
	require.NoError(t, err)

	modules, err = f.uc.ListModulesWithCompletion("student-1", f.course.ID)
	require.NoError(t, err)
	require.Len(t, modules, 3)
	assert.False(t, modules[0].Completed)
	assert.True(t, modules[1].Completed)
	assert.False(t, modules[2].Completed)

	_, err = f.uc.ListModulesWithCompletion("student-1", "missing-course")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}
