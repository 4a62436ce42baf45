package dto

import authdomain "learning-buddy-backend/internal/auth/domain"

type RegisterRequest struct {
	Name           string `form:"name" json:"name" binding:"required"`
	Age            int    `form:"age" json:"age"`
	Gender         string `form:"gender" json:"gender"`
	EducationLevel string `form:"educationLevel" json:"educationLevel"`
	Email          string `form:"email" json:"email" binding:"required,email"`
	Contact        string `form:"contact" json:"contact"`
	Role           string `form:"userType" json:"userType" binding:"required"`
	Password       string `form:"password" json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"userType" binding:"required"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=6"`
}

type UpdateProfileRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type AddAreasRequest struct {
	Areas []string `json:"areas" binding:"required,min=1"`
}

type AddExperiencesRequest struct {
	Experiences []string `json:"experiences" binding:"required,min=1"`
}

type TokenResponse struct {
	AccessToken  string           `json:"accessToken"`
	RefreshToken string           `json:"refreshToken"`
	User         *authdomain.User `json:"user"`
}
