package usecase

import (
	"context"
	"io"

	authdomain "learning-buddy-backend/internal/auth/domain"
	coursedomain "learning-buddy-backend/internal/course/domain"
	coursedto "learning-buddy-backend/internal/course/dto"
	"learning-buddy-backend/internal/course/repository"
	"learning-buddy-backend/pkg/apperr"
	"learning-buddy-backend/pkg/media"
)

// courseUsecase implements CourseUsecase interface
type courseUsecase struct {
	courseRepo repository.CourseRepository
	moduleRepo repository.ModuleRepository
	uploader   media.Uploader
}

// NewCourseUsecase creates a new instance of courseUsecase. uploader may
// be nil when no media host is configured; cover images are then skipped.
func NewCourseUsecase(courseRepo repository.CourseRepository, moduleRepo repository.ModuleRepository, uploader media.Uploader) CourseUsecase {
	return &courseUsecase{
		courseRepo: courseRepo,
		moduleRepo: moduleRepo,
		uploader:   uploader,
	}
}

func (u *courseUsecase) CreateCourse(ctx context.Context, mentor *authdomain.User, req *coursedto.CreateCourseRequest, image io.Reader) (*coursedto.CourseWithMentor, error) {
	if mentor.Role != authdomain.RoleMentor && mentor.Role != authdomain.RoleAdmin {
		return nil, apperr.Forbidden("only mentors can create courses")
	}

	imageURL, err := u.uploadImage(ctx, image, "learning-buddy/courses")
	if err != nil {
		return nil, err
	}

	course := &coursedomain.Course{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Domain:      req.Domain,
		Image:       imageURL,
		MentorID:    mentor.ID,
	}

	if err := u.courseRepo.Create(course); err != nil {
		return nil, err
	}

	return &coursedto.CourseWithMentor{
		Course: *course,
		Mentor: mentor.Public(),
	}, nil
}

func (u *courseUsecase) ListCourses() ([]*coursedto.CourseWithMentor, error) {
	return u.courseRepo.FindAllWithMentor()
}

func (u *courseUsecase) GetCourse(courseID string) (*coursedto.CourseWithMentor, error) {
	course, err := u.courseRepo.FindByIDWithMentor(courseID)
	if err != nil {
		return nil, err
	}
	if course == nil {
		return nil, apperr.NotFound("course not found")
	}
	return course, nil
}

func (u *courseUsecase) UpdateCourse(ctx context.Context, userID, courseID string, req *coursedto.UpdateCourseRequest, image io.Reader) (*coursedomain.Course, error) {
	course, err := u.ownedCourse(userID, courseID)
	if err != nil {
		return nil, err
	}

	// Partial update: only supplied fields overwrite.
	if req.Title != "" {
		course.Title = req.Title
	}
	if req.Description != "" {
		course.Description = req.Description
	}
	if req.Price != 0 {
		course.Price = req.Price
	}
	if req.Domain != "" {
		course.Domain = req.Domain
	}
	if image != nil {
		imageURL, err := u.uploadImage(ctx, image, "learning-buddy/courses")
		if err != nil {
			return nil, err
		}
		if imageURL != "" {
			course.Image = imageURL
		}
	}

	if err := u.courseRepo.Update(course); err != nil {
		return nil, err
	}
	return course, nil
}

func (u *courseUsecase) DeleteCourse(userID, courseID string) error {
	if _, err := u.ownedCourse(userID, courseID); err != nil {
		return err
	}
	return u.courseRepo.DeleteCascade(courseID)
}

func (u *courseUsecase) AddModule(ctx context.Context, userID string, req *coursedto.CreateModuleRequest, image io.Reader) (*coursedomain.Module, error) {
	if _, err := u.ownedCourse(userID, req.CourseID); err != nil {
		return nil, err
	}

	imageURL, err := u.uploadImage(ctx, image, "learning-buddy/modules")
	if err != nil {
		return nil, err
	}

	position, err := u.moduleRepo.NextPosition(req.CourseID)
	if err != nil {
		return nil, err
	}

	module := &coursedomain.Module{
		CourseID:    req.CourseID,
		Position:    position,
		Title:       req.Title,
		Description: req.Description,
		Image:       imageURL,
	}

	if err := u.moduleRepo.Create(module); err != nil {
		return nil, err
	}
	return module, nil
}

func (u *courseUsecase) GetModule(moduleID string) (*coursedomain.Module, error) {
	module, err := u.moduleRepo.FindByID(moduleID)
	if err != nil {
		return nil, err
	}
	if module == nil {
		return nil, apperr.NotFound("module not found")
	}
	return module, nil
}

func (u *courseUsecase) UpdateModule(ctx context.Context, userID, moduleID string, req *coursedto.UpdateModuleRequest, image io.Reader) (*coursedomain.Module, error) {
	module, err := u.ownedModule(userID, moduleID)
	if err != nil {
		return nil, err
	}

	if req.Title != "" {
		module.Title = req.Title
	}
	if req.Description != "" {
		module.Description = req.Description
	}
	if image != nil {
		imageURL, err := u.uploadImage(ctx, image, "learning-buddy/modules")
		if err != nil {
			return nil, err
		}
		if imageURL != "" {
			module.Image = imageURL
		}
	}

	if err := u.moduleRepo.Update(module); err != nil {
		return nil, err
	}
	return module, nil
}

func (u *courseUsecase) DeleteModule(userID, moduleID string) error {
	module, err := u.ownedModule(userID, moduleID)
	if err != nil {
		return err
	}
	return u.moduleRepo.DeleteCascade(module)
}

// ownedCourse loads a course and verifies the caller is its mentor.
func (u *courseUsecase) ownedCourse(userID, courseID string) (*coursedomain.Course, error) {
	course, err := u.courseRepo.FindByID(courseID)
	if err != nil {
		return nil, err
	}
	if course == nil {
		return nil, apperr.NotFound("course not found")
	}
	if course.MentorID != userID {
		return nil, apperr.Forbidden("you are not authorized to modify this course")
	}
	return course, nil
}

// ownedModule resolves a module's owning course and applies the same
// ownership check as direct course mutation.
func (u *courseUsecase) ownedModule(userID, moduleID string) (*coursedomain.Module, error) {
	module, err := u.moduleRepo.FindByID(moduleID)
	if err != nil {
		return nil, err
	}
	if module == nil {
		return nil, apperr.NotFound("module not found")
	}
	if _, err := u.ownedCourse(userID, module.CourseID); err != nil {
		return nil, err
	}
	return module, nil
}

func (u *courseUsecase) uploadImage(ctx context.Context, image io.Reader, folder string) (string, error) {
	if image == nil || u.uploader == nil {
		return "", nil
	}
	return u.uploader.Upload(ctx, image, folder)
}
