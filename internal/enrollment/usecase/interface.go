package usecase

import enrollmentdto "learning-buddy-backend/internal/enrollment/dto"

// EnrollmentUsecase manages course membership and per-module completion.
type EnrollmentUsecase interface {
	Enroll(userID, courseID string) error
	Unenroll(userID, courseID string) error
	ListEnrollments(userID string) ([]*enrollmentdto.EnrolledCourse, error)
	ToggleModuleCompletion(userID, courseID, moduleID string) ([]string, error)
	ListModulesWithCompletion(userID, courseID string) ([]*enrollmentdto.ModuleCompletion, error)
}
