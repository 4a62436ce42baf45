package usecase

import (
	"context"
	"path/filepath"
	"testing"

	authdomain "learning-buddy-backend/internal/auth/domain"
	coursedomain "learning-buddy-backend/internal/course/domain"
	coursedto "learning-buddy-backend/internal/course/dto"
	courserepo "learning-buddy-backend/internal/course/repository"
	enrollmentdomain "learning-buddy-backend/internal/enrollment/domain"
	enrollmentrepo "learning-buddy-backend/internal/enrollment/repository"
	"learning-buddy-backend/pkg/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type catalogFixture struct {
	uc             CourseUsecase
	db             *gorm.DB
	enrollmentRepo enrollmentrepo.EnrollmentRepository
	mentor         *authdomain.User
	student        *authdomain.User
}

func newCatalogFixture(t *testing.T) *catalogFixture {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&authdomain.User{}, &coursedomain.Course{}, &coursedomain.Module{}, &enrollmentdomain.Enrollment{}))

	mentor := &authdomain.User{ID: "mentor-1", Name: "Mia Mentor", Email: "mia@example.com", Password: "x", Role: authdomain.RoleMentor}
	student := &authdomain.User{ID: "student-1", Name: "Sam Student", Email: "sam@example.com", Password: "x", Role: authdomain.RoleStudent}
	require.NoError(t, db.Create(mentor).Error)
	require.NoError(t, db.Create(student).Error)

	courseRepo := courserepo.NewCourseRepository(db)
	moduleRepo := courserepo.NewModuleRepository(db)

	return &catalogFixture{
		uc:             NewCourseUsecase(courseRepo, moduleRepo, nil),
		db:             db,
		enrollmentRepo: enrollmentrepo.NewEnrollmentRepository(db),
		mentor:         mentor,
		student:        student,
	}
}

func (f *catalogFixture) createCourse(t *testing.T) *coursedto.CourseWithMentor {
	t.Helper()
	course, err := f.uc.CreateCourse(context.Background(), f.mentor, &coursedto.CreateCourseRequest{
		Title:  "Distributed Systems",
		Price:  49.99,
		Domain: "engineering",
	}, nil)
	require.NoError(t, err)
	return course
}

func TestCreateCourse(t *testing.T) {
	f := newCatalogFixture(t)

	course := f.createCourse(t)
	assert.NotEmpty(t, course.ID)
	assert.Equal(t, f.mentor.ID, course.MentorID)
	assert.Equal(t, "Mia Mentor", course.Mentor.Name)

	// Students cannot author courses.
	_, err := f.uc.CreateCourse(context.Background(), f.student, &coursedto.CreateCourseRequest{
		Title:  "Sneaky Course",
		Price:  1,
		Domain: "misc",
	}, nil)
	assert.ErrorIs(t, err, apperr.ErrForbidden)
}

func TestUpdateCourseOwnership(t *testing.T) {
	f := newCatalogFixture(t)
	course := f.createCourse(t)

	_, err := f.uc.UpdateCourse(context.Background(), f.student.ID, course.ID, &coursedto.UpdateCourseRequest{Title: "Hijacked"}, nil)
	assert.ErrorIs(t, err, apperr.ErrForbidden)

	// Partial update: untouched fields survive.
	updated, err := f.uc.UpdateCourse(context.Background(), f.mentor.ID, course.ID, &coursedto.UpdateCourseRequest{Price: 59.99}, nil)
	require.NoError(t, err)
	assert.Equal(t, "Distributed Systems", updated.Title)
	assert.Equal(t, 59.99, updated.Price)

	_, err = f.uc.UpdateCourse(context.Background(), f.mentor.ID, "missing", &coursedto.UpdateCourseRequest{Title: "x"}, nil)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestAddModule(t *testing.T) {
	f := newCatalogFixture(t)
	course := f.createCourse(t)

	_, err := f.uc.AddModule(context.Background(), f.student.ID, &coursedto.CreateModuleRequest{
		CourseID:    course.ID,
		Title:       "Intro",
		Description: "The basics",
	}, nil)
	assert.ErrorIs(t, err, apperr.ErrForbidden)

	first, err := f.uc.AddModule(context.Background(), f.mentor.ID, &coursedto.CreateModuleRequest{
		CourseID:    course.ID,
		Title:       "Intro",
		Description: "The basics",
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, first.Position)

	second, err := f.uc.AddModule(context.Background(), f.mentor.ID, &coursedto.CreateModuleRequest{
		CourseID:    course.ID,
		Title:       "Consensus",
		Description: "Raft and friends",
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, second.Position)

	detail, err := f.uc.GetCourse(course.ID)
	require.NoError(t, err)
	require.Len(t, detail.Modules, 2)
	assert.Equal(t, first.ID, detail.Modules[0].ID)
	assert.Equal(t, second.ID, detail.Modules[1].ID)
}

func TestDeleteModule(t *testing.T) {
	f := newCatalogFixture(t)
	course := f.createCourse(t)

	module, err := f.uc.AddModule(context.Background(), f.mentor.ID, &coursedto.CreateModuleRequest{
		CourseID:    course.ID,
		Title:       "Intro",
		Description: "The basics",
	}, nil)
	require.NoError(t, err)

	// An enrollment that already completed the module gets pruned with it.
	enrollment := &enrollmentdomain.Enrollment{UserID: f.student.ID, CourseID: course.ID, CompletedModules: []string{module.ID}}
	require.NoError(t, f.enrollmentRepo.Create(enrollment))

	require.NoError(t, f.uc.DeleteModule(f.mentor.ID, module.ID))

	detail, err := f.uc.GetCourse(course.ID)
	require.NoError(t, err)
	assert.Empty(t, detail.Modules)

	pruned, err := f.enrollmentRepo.FindByUserAndCourse(f.student.ID, course.ID)
	require.NoError(t, err)
	require.NotNil(t, pruned)
	assert.Empty(t, pruned.CompletedModules)

	err = f.uc.DeleteModule(f.mentor.ID, module.ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestDeleteCourseCascades(t *testing.T) {
	f := newCatalogFixture(t)
	course := f.createCourse(t)

	_, err := f.uc.AddModule(context.Background(), f.mentor.ID, &coursedto.CreateModuleRequest{
		CourseID:    course.ID,
		Title:       "Intro",
		Description: "The basics",
	}, nil)
	require.NoError(t, err)

	enrollment := &enrollmentdomain.Enrollment{UserID: f.student.ID, CourseID: course.ID}
	require.NoError(t, f.enrollmentRepo.Create(enrollment))

	assert.ErrorIs(t, f.uc.DeleteCourse(f.student.ID, course.ID), apperr.ErrForbidden)
	require.NoError(t, f.uc.DeleteCourse(f.mentor.ID, course.ID))

	_, err = f.uc.GetCourse(course.ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	// No dangling module or enrollment rows survive the delete.
	var moduleCount, enrollmentCount int64
	require.NoError(t, f.db.Model(&coursedomain.Module{}).Where("course_id = ?", course.ID).Count(&moduleCount).Error)
	require.NoError(t, f.db.Model(&enrollmentdomain.Enrollment{}).Where("course_id = ?", course.ID).Count(&enrollmentCount).Error)
	assert.Zero(t, moduleCount)
	assert.Zero(t, enrollmentCount)
}

func TestListCourses(t *testing.T) {
	f := newCatalogFixture(t)
	f.createCourse(t)

	courses, err := f.uc.ListCourses()
	require.NoError(t, err)
	require.Len(t, courses, 1)
	assert.Equal(t, f.mentor.ID, courses[0].Mentor.ID)
	assert.Equal(t, "mia@example.com", courses[0].Mentor.Email)
}
