package repository

import (
	"errors"
	"time"

	enrollmentdomain "learning-buddy-backend/internal/enrollment/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// enrollmentRepository implements EnrollmentRepository interface
type enrollmentRepository struct {
	db *gorm.DB
}

// NewEnrollmentRepository creates a new instance of enrollmentRepository
func NewEnrollmentRepository(db *gorm.DB) EnrollmentRepository {
	return &enrollmentRepository{
		db: db,
	}
}

func (r *enrollmentRepository) Create(enrollment *enrollmentdomain.Enrollment) error {
	enrollment.ID = uuid.New().String()
	if enrollment.CompletedModules == nil {
		enrollment.CompletedModules = []string{}
	}
	enrollment.CreatedAt = time.Now()
	enrollment.UpdatedAt = time.Now()
	return r.db.Create(enrollment).Error
}

func (r *enrollmentRepository) FindByUserAndCourse(userID, courseID string) (*enrollmentdomain.Enrollment, error) {
	var enrollment enrollmentdomain.Enrollment
	err := r.db.Where("user_id = ? AND course_id = ?", userID, courseID).First(&enrollment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &enrollment, nil
}

func (r *enrollmentRepository) FindByUser(userID string) ([]*enrollmentdomain.Enrollment, error) {
	var enrollments []*enrollmentdomain.Enrollment
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&enrollments).Error
	return enrollments, err
}

func (r *enrollmentRepository) Update(enrollment *enrollmentdomain.Enrollment) error {
	enrollment.UpdatedAt = time.Now()
	return r.db.Save(enrollment).Error
}

func (r *enrollmentRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&enrollmentdomain.Enrollment{}).Error
}
