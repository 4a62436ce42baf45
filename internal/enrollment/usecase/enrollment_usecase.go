package usecase

import (
	courserepo "learning-buddy-backend/internal/course/repository"
	enrollmentdomain "learning-buddy-backend/internal/enrollment/domain"
	enrollmentdto "learning-buddy-backend/internal/enrollment/dto"
	"learning-buddy-backend/internal/enrollment/repository"
	"learning-buddy-backend/pkg/apperr"
)

// enrollmentUsecase implements EnrollmentUsecase interface
type enrollmentUsecase struct {
	enrollmentRepo repository.EnrollmentRepository
	courseRepo     courserepo.CourseRepository
	moduleRepo     courserepo.ModuleRepository
}

// NewEnrollmentUsecase creates a new instance of enrollmentUsecase
func NewEnrollmentUsecase(enrollmentRepo repository.EnrollmentRepository, courseRepo courserepo.CourseRepository, moduleRepo courserepo.ModuleRepository) EnrollmentUsecase {
	return &enrollmentUsecase{
		enrollmentRepo: enrollmentRepo,
		courseRepo:     courseRepo,
		moduleRepo:     moduleRepo,
	}
}

func (u *enrollmentUsecase) Enroll(userID, courseID string) error {
	course, err := u.courseRepo.FindByID(courseID)
	if err != nil {
		return err
	}
	if course == nil {
		return apperr.NotFound("course not found")
	}

	existing, err := u.enrollmentRepo.FindByUserAndCourse(userID, courseID)
	if err != nil {
		return err
	}
	if existing != nil {
		return apperr.Conflict("already enrolled")
	}

	return u.enrollmentRepo.Create(&enrollmentdomain.Enrollment{
		UserID:           userID,
		CourseID:         courseID,
		CompletedModules: []string{},
	})
}

func (u *enrollmentUsecase) Unenroll(userID, courseID string) error {
	enrollment, err := u.enrollmentRepo.FindByUserAndCourse(userID, courseID)
	if err != nil {
		return err
	}
	if enrollment == nil {
		return apperr.NotFound("not enrolled")
	}

	// Completion history goes with the enrollment; no soft delete.
	return u.enrollmentRepo.Delete(enrollment.ID)
}

func (u *enrollmentUsecase) ListEnrollments(userID string) ([]*enrollmentdto.EnrolledCourse, error) {
	enrollments, err := u.enrollmentRepo.FindByUser(userID)
	if err != nil {
		return nil, err
	}

	result := make([]*enrollmentdto.EnrolledCourse, 0, len(enrollments))
	for _, enrollment := range enrollments {
		course, err := u.courseRepo.FindByIDWithModules(enrollment.CourseID)
		if err != nil {
			return nil, err
		}
		result = append(result, &enrollmentdto.EnrolledCourse{
			ID:               enrollment.ID,
			CompletedModules: enrollment.CompletedModules,
			Course:           course,
		})
	}
	return result, nil
}

func (u *enrollmentUsecase) ToggleModuleCompletion(userID, courseID, moduleID string) ([]string, error) {
	enrollment, err := u.enrollmentRepo.FindByUserAndCourse(userID, courseID)
	if err != nil {
		return nil, err
	}
	if enrollment == nil {
		return nil, apperr.NotFound("not enrolled in this course")
	}

	module, err := u.moduleRepo.FindByID(moduleID)
	if err != nil {
		return nil, err
	}
	if module == nil || module.CourseID != courseID {
		return nil, apperr.NotFound("module not found in this course")
	}

	enrollment.ToggleCompleted(moduleID)
	if err := u.enrollmentRepo.Update(enrollment); err != nil {
		return nil, err
	}
	return enrollment.CompletedModules, nil
}

func (u *enrollmentUsecase) ListModulesWithCompletion(userID, courseID string) ([]*enrollmentdto.ModuleCompletion, error) {
	course, err := u.courseRepo.FindByID(courseID)
	if err != nil {
		return nil, err
	}
	if course == nil {
		return nil, apperr.NotFound("course not found")
	}

	modules, err := u.moduleRepo.FindByCourse(courseID)
	if err != nil {
		return nil, err
	}

	// Not being enrolled is not an error here; everything reads incomplete.
	enrollment, err := u.enrollmentRepo.FindByUserAndCourse(userID, courseID)
	if err != nil {
		return nil, err
	}

	result := make([]*enrollmentdto.ModuleCompletion, 0, len(modules))
	for _, module := range modules {
		completed := enrollment != nil && enrollment.HasCompleted(module.ID)
		result = append(result, &enrollmentdto.ModuleCompletion{
			Module:    *module,
			Completed: completed,
		})
	}
	return result, nil
}
