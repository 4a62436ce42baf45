package repository

import (
	"errors"
	"time"

	coursedomain "learning-buddy-backend/internal/course/domain"
	enrollmentdomain "learning-buddy-backend/internal/enrollment/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// moduleRepository implements ModuleRepository interface
type moduleRepository struct {
	db *gorm.DB
}

// NewModuleRepository creates a new instance of moduleRepository
func NewModuleRepository(db *gorm.DB) ModuleRepository {
	return &moduleRepository{
		db: db,
	}
}

func (r *moduleRepository) Create(module *coursedomain.Module) error {
	module.ID = uuid.New().String()
	module.CreatedAt = time.Now()
	module.UpdatedAt = time.Now()
	return r.db.Create(module).Error
}

func (r *moduleRepository) FindByID(id string) (*coursedomain.Module, error) {
	var module coursedomain.Module
	err := r.db.Where("id = ?", id).First(&module).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &module, nil
}

func (r *moduleRepository) FindByCourse(courseID string) ([]*coursedomain.Module, error) {
	var modules []*coursedomain.Module
	err := r.db.Where("course_id = ?", courseID).Order("position ASC").Find(&modules).Error
	return modules, err
}

// NextPosition returns the position for a module appended at the end of
// the course's module order.
func (r *moduleRepository) NextPosition(courseID string) (int, error) {
	var count int64
	err := r.db.Model(&coursedomain.Module{}).Where("course_id = ?", courseID).Count(&count).Error
	return int(count), err
}

func (r *moduleRepository) Update(module *coursedomain.Module) error {
	module.UpdatedAt = time.Now()
	return r.db.Save(module).Error
}

// DeleteCascade removes the module and prunes its id from the completed
// set of every enrollment of the owning course, keeping the completed
// set a subset of the course's modules.
func (r *moduleRepository) DeleteCascade(module *coursedomain.Module) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", module.ID).Delete(&coursedomain.Module{}).Error; err != nil {
			return err
		}

		var enrollments []*enrollmentdomain.Enrollment
		if err := tx.Where("course_id = ?", module.CourseID).Find(&enrollments).Error; err != nil {
			return err
		}
		for _, enrollment := range enrollments {
			if !enrollment.HasCompleted(module.ID) {
				continue
			}
			enrollment.ToggleCompleted(module.ID)
			enrollment.UpdatedAt = time.Now()
			if err := tx.Save(enrollment).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
