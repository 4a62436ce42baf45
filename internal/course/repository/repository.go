package repository

import (
	coursedomain "learning-buddy-backend/internal/course/domain"
	coursedto "learning-buddy-backend/internal/course/dto"
)

// CourseRepository persists courses and serves the composed catalog views.
type CourseRepository interface {
	Create(course *coursedomain.Course) error
	FindByID(id string) (*coursedomain.Course, error)
	FindByIDWithModules(id string) (*coursedomain.Course, error)
	FindAllWithMentor() ([]*coursedto.CourseWithMentor, error)
	FindByIDWithMentor(id string) (*coursedto.CourseWithMentor, error)
	Update(course *coursedomain.Course) error
	DeleteCascade(courseID string) error
}

// ModuleRepository persists modules within their owning course.
type ModuleRepository interface {
	Create(module *coursedomain.Module) error
	FindByID(id string) (*coursedomain.Module, error)
	FindByCourse(courseID string) ([]*coursedomain.Module, error)
	NextPosition(courseID string) (int, error)
	Update(module *coursedomain.Module) error
	DeleteCascade(module *coursedomain.Module) error
}
