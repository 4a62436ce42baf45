package dto

import coursedomain "learning-buddy-backend/internal/course/domain"

type ToggleCompletionRequest struct {
	CourseID string `json:"courseId" binding:"required"`
	ModuleID string `json:"moduleId" binding:"required"`
}

// EnrolledCourse expands an enrollment with the current catalog data of
// its course.
type EnrolledCourse struct {
	ID               string               `json:"id"`
	CompletedModules []string             `json:"completedModules"`
	Course           *coursedomain.Course `json:"course"`
}

// ModuleCompletion annotates one course module with the caller's
// completion state.
type ModuleCompletion struct {
	coursedomain.Module
	Completed bool `json:"completed"`
}
