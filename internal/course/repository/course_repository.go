package repository

import (
	"errors"
	"time"

	authdomain "learning-buddy-backend/internal/auth/domain"
	coursedomain "learning-buddy-backend/internal/course/domain"
	coursedto "learning-buddy-backend/internal/course/dto"
	enrollmentdomain "learning-buddy-backend/internal/enrollment/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// courseRepository implements CourseRepository interface
type courseRepository struct {
	db *gorm.DB
}

// NewCourseRepository creates a new instance of courseRepository
func NewCourseRepository(db *gorm.DB) CourseRepository {
	return &courseRepository{
		db: db,
	}
}

func (r *courseRepository) Create(course *coursedomain.Course) error {
	course.ID = uuid.New().String()
	course.CreatedAt = time.Now()
	course.UpdatedAt = time.Now()
	return r.db.Create(course).Error
}

func (r *courseRepository) FindByID(id string) (*coursedomain.Course, error) {
	var course coursedomain.Course
	err := r.db.Where("id = ?", id).First(&course).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &course, nil
}

func (r *courseRepository) FindByIDWithModules(id string) (*coursedomain.Course, error) {
	var course coursedomain.Course
	err := r.db.Preload("Modules", func(db *gorm.DB) *gorm.DB {
		return db.Order("position ASC")
	}).Where("id = ?", id).First(&course).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &course, nil
}

func (r *courseRepository) FindAllWithMentor() ([]*coursedto.CourseWithMentor, error) {
	var courses []*coursedomain.Course
	if err := r.db.Order("created_at DESC").Find(&courses).Error; err != nil {
		return nil, err
	}

	mentors, err := r.mentorProfiles(courses)
	if err != nil {
		return nil, err
	}

	result := make([]*coursedto.CourseWithMentor, 0, len(courses))
	for _, course := range courses {
		result = append(result, &coursedto.CourseWithMentor{
			Course: *course,
			Mentor: mentors[course.MentorID],
		})
	}
	return result, nil
}

func (r *courseRepository) FindByIDWithMentor(id string) (*coursedto.CourseWithMentor, error) {
	course, err := r.FindByIDWithModules(id)
	if err != nil || course == nil {
		return nil, err
	}

	mentors, err := r.mentorProfiles([]*coursedomain.Course{course})
	if err != nil {
		return nil, err
	}

	return &coursedto.CourseWithMentor{
		Course: *course,
		Mentor: mentors[course.MentorID],
	}, nil
}

func (r *courseRepository) Update(course *coursedomain.Course) error {
	course.UpdatedAt = time.Now()
	return r.db.Save(course).Error
}

// DeleteCascade removes the course together with its modules and
// enrollments so no dangling references survive the delete.
func (r *courseRepository) DeleteCascade(courseID string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("course_id = ?", courseID).Delete(&enrollmentdomain.Enrollment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("course_id = ?", courseID).Delete(&coursedomain.Module{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", courseID).Delete(&coursedomain.Course{}).Error
	})
}

// mentorProfiles loads the public profile for every distinct mentor id.
func (r *courseRepository) mentorProfiles(courses []*coursedomain.Course) (map[string]authdomain.PublicProfile, error) {
	ids := make([]string, 0, len(courses))
	seen := make(map[string]bool, len(courses))
	for _, course := range courses {
		if !seen[course.MentorID] {
			ids = append(ids, course.MentorID)
			seen[course.MentorID] = true
		}
	}

	profiles := make(map[string]authdomain.PublicProfile, len(ids))
	if len(ids) == 0 {
		return profiles, nil
	}

	var mentors []*authdomain.User
	if err := r.db.Where("id IN ?", ids).Find(&mentors).Error; err != nil {
		return nil, err
	}
	for _, mentor := range mentors {
		profiles[mentor.ID] = mentor.Public()
	}
	return profiles, nil
}
