package usecase

import (
	"context"
	"io"

	authdomain "learning-buddy-backend/internal/auth/domain"
	coursedomain "learning-buddy-backend/internal/course/domain"
	coursedto "learning-buddy-backend/internal/course/dto"
)

// CourseUsecase authors and serves catalog content. Every mutation is
// gated on the owning mentor.
type CourseUsecase interface {
	CreateCourse(ctx context.Context, mentor *authdomain.User, req *coursedto.CreateCourseRequest, image io.Reader) (*coursedto.CourseWithMentor, error)
	ListCourses() ([]*coursedto.CourseWithMentor, error)
	GetCourse(courseID string) (*coursedto.CourseWithMentor, error)
	UpdateCourse(ctx context.Context, userID, courseID string, req *coursedto.UpdateCourseRequest, image io.Reader) (*coursedomain.Course, error)
	DeleteCourse(userID, courseID string) error

	AddModule(ctx context.Context, userID string, req *coursedto.CreateModuleRequest, image io.Reader) (*coursedomain.Module, error)
	GetModule(moduleID string) (*coursedomain.Module, error)
	UpdateModule(ctx context.Context, userID, moduleID string, req *coursedto.UpdateModuleRequest, image io.Reader) (*coursedomain.Module, error)
	DeleteModule(userID, moduleID string) error
}
