package usecase

import (
	"context"
	"io"

	authdomain "learning-buddy-backend/internal/auth/domain"
	authdto "learning-buddy-backend/internal/auth/dto"
)

// AuthUsecase issues and rotates the session token pair and owns account state.
type AuthUsecase interface {
	Register(ctx context.Context, req *authdto.RegisterRequest, profilePicture io.Reader) (*authdomain.User, error)
	Login(req *authdto.LoginRequest) (*authdto.TokenResponse, error)
	RefreshTokens(presentedToken string) (*authdto.TokenResponse, error)
	Logout(userID string) error
	ChangePassword(userID string, req *authdto.ChangePasswordRequest) error
	UpdateProfile(userID string, req *authdto.UpdateProfileRequest) (*authdomain.User, error)
	AddInterestedAreas(userID string, areas []string) (*authdomain.User, error)
	AddExperienceFields(userID string, experiences []string) (*authdomain.User, error)
	GetByID(userID string) (*authdomain.User, error)
	ValidateAccessToken(token string) (*authdomain.User, error)
}
