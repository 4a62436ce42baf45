package repository

import enrollmentdomain "learning-buddy-backend/internal/enrollment/domain"

// EnrollmentRepository persists the account/course enrollment records.
type EnrollmentRepository interface {
	Create(enrollment *enrollmentdomain.Enrollment) error
	FindByUserAndCourse(userID, courseID string) (*enrollmentdomain.Enrollment, error)
	FindByUser(userID string) ([]*enrollmentdomain.Enrollment, error)
	Update(enrollment *enrollmentdomain.Enrollment) error
	Delete(id string) error
}
