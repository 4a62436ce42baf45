package dto

import (
	authdomain "learning-buddy-backend/internal/auth/domain"
	coursedomain "learning-buddy-backend/internal/course/domain"
)

type CreateCourseRequest struct {
	Title       string  `form:"title" json:"title" binding:"required"`
	Description string  `form:"description" json:"description"`
	Price       float64 `form:"price" json:"price" binding:"required"`
	Domain      string  `form:"domain" json:"domain" binding:"required"`
}

type UpdateCourseRequest struct {
	Title       string  `form:"title" json:"title"`
	Description string  `form:"description" json:"description"`
	Price       float64 `form:"price" json:"price"`
	Domain      string  `form:"domain" json:"domain"`
}

type CreateModuleRequest struct {
	CourseID    string `form:"courseId" json:"courseId" binding:"required"`
	Title       string `form:"title" json:"title" binding:"required"`
	Description string `form:"description" json:"description" binding:"required"`
}

type UpdateModuleRequest struct {
	Title       string `form:"title" json:"title"`
	Description string `form:"description" json:"description"`
}

// CourseWithMentor expands the owning mentor's public profile alongside
// the course record for catalog reads.
type CourseWithMentor struct {
	coursedomain.Course
	Mentor authdomain.PublicProfile `json:"mentor"`
}
