package usecase

import (
	"context"
	"io"
	"time"

	authdomain "learning-buddy-backend/internal/auth/domain"
	authdto "learning-buddy-backend/internal/auth/dto"
	"learning-buddy-backend/internal/auth/repository"
	"learning-buddy-backend/pkg/apperr"
	"learning-buddy-backend/pkg/config"
	"learning-buddy-backend/pkg/media"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// authUsecase implements AuthUsecase interface
type authUsecase struct {
	userRepo repository.UserRepository
	uploader media.Uploader
	config   *config.Config
}

// NewAuthUsecase creates a new instance of authUsecase. uploader may be nil
// when no media host is configured; profile pictures are then skipped.
func NewAuthUsecase(userRepo repository.UserRepository, uploader media.Uploader, cfg *config.Config) AuthUsecase {
	return &authUsecase{
		userRepo: userRepo,
		uploader: uploader,
		config:   cfg,
	}
}

func (u *authUsecase) Register(ctx context.Context, req *authdto.RegisterRequest, profilePicture io.Reader) (*authdomain.User, error) {
	role := authdomain.Role(req.Role)
	if !role.Valid() {
		return nil, apperr.BadRequest("userType must be Student, Mentor or Admin")
	}

	existing, err := u.userRepo.FindByEmail(req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.Conflict("email already in use")
	}

	var pictureURL string
	if profilePicture != nil && u.uploader != nil {
		pictureURL, err = u.uploader.Upload(ctx, profilePicture, "learning-buddy/profiles")
		if err != nil {
			return nil, err
		}
	}

	hashedPassword, err := repository.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &authdomain.User{
		Name:           req.Name,
		Age:            req.Age,
		Gender:         req.Gender,
		EducationLevel: req.EducationLevel,
		Email:          req.Email,
		Contact:        req.Contact,
		ProfilePicture: pictureURL,
		Password:       hashedPassword,
		Role:           role,
	}

	if err := u.userRepo.Create(user); err != nil {
		return nil, err
	}

	return user, nil
}

func (u *authUsecase) Login(req *authdto.LoginRequest) (*authdto.TokenResponse, error) {
	user, err := u.userRepo.FindByEmailAndRole(req.Email, authdomain.Role(req.Role))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.NotFound("user not found")
	}

	if !repository.CheckPasswordHash(req.Password, user.Password) {
		return nil, apperr.Unauthorized("invalid credentials")
	}

	return u.generateTokens(user)
}

func (u *authUsecase) RefreshTokens(presentedToken string) (*authdto.TokenResponse, error) {
	if presentedToken == "" {
		return nil, apperr.Unauthorized("refresh token missing")
	}

	token, err := jwt.Parse(presentedToken, func(token *jwt.Token) (interface{}, error) {
		return []byte(u.config.JWTRefreshSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, apperr.Unauthorized("invalid refresh token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, apperr.Unauthorized("invalid token claims")
	}

	userID, ok := claims["user_id"].(string)
	if !ok {
		return nil, apperr.Unauthorized("invalid token claims")
	}

	user, err := u.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.Unauthorized("invalid refresh token")
	}

	// A rotated-out token no longer matches the stored value. Reject it
	// rather than escalating to all-session revocation.
	if user.RefreshToken == nil || *user.RefreshToken != presentedToken {
		return nil, apperr.Unauthorized("invalid refresh token")
	}

	return u.generateTokens(user)
}

func (u *authUsecase) Logout(userID string) error {
	return u.userRepo.UpdateRefreshToken(userID, nil)
}

func (u *authUsecase) ChangePassword(userID string, req *authdto.ChangePasswordRequest) error {
	user, err := u.userRepo.FindByID(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return apperr.Unauthorized("user not found")
	}

	if !repository.CheckPasswordHash(req.OldPassword, user.Password) {
		return apperr.Unauthorized("incorrect old password")
	}

	hashedPassword, err := repository.HashPassword(req.NewPassword)
	if err != nil {
		return err
	}

	// Changing the password revokes the outstanding refresh token, so every
	// session has to log in again with the new credentials.
	user.Password = hashedPassword
	user.RefreshToken = nil
	return u.userRepo.Update(user)
}

func (u *authUsecase) UpdateProfile(userID string, req *authdto.UpdateProfileRequest) (*authdomain.User, error) {
	if req.Name == "" && req.Email == "" {
		return nil, apperr.BadRequest("no updates provided")
	}

	user, err := u.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.NotFound("user not found")
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Email != "" {
		user.Email = req.Email
	}

	if err := u.userRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (u *authUsecase) AddInterestedAreas(userID string, areas []string) (*authdomain.User, error) {
	return u.appendTags(userID, areas, func(user *authdomain.User, merged []string) {
		user.InterestedAreas = merged
	}, func(user *authdomain.User) []string {
		return user.InterestedAreas
	})
}

func (u *authUsecase) AddExperienceFields(userID string, experiences []string) (*authdomain.User, error) {
	return u.appendTags(userID, experiences, func(user *authdomain.User, merged []string) {
		user.ExperienceFields = merged
	}, func(user *authdomain.User) []string {
		return user.ExperienceFields
	})
}

// appendTags merges new tags into an existing list without duplicates.
func (u *authUsecase) appendTags(userID string, tags []string, set func(*authdomain.User, []string), get func(*authdomain.User) []string) (*authdomain.User, error) {
	if len(tags) == 0 {
		return nil, apperr.BadRequest("provide at least one value")
	}

	user, err := u.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.NotFound("user not found")
	}

	existing := get(user)
	seen := make(map[string]bool, len(existing))
	for _, tag := range existing {
		seen[tag] = true
	}
	merged := existing
	for _, tag := range tags {
		if tag != "" && !seen[tag] {
			merged = append(merged, tag)
			seen[tag] = true
		}
	}

	set(user, merged)
	if err := u.userRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (u *authUsecase) GetByID(userID string) (*authdomain.User, error) {
	user, err := u.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.NotFound("user not found")
	}
	return user, nil
}

func (u *authUsecase) ValidateAccessToken(tokenString string) (*authdomain.User, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte(u.config.JWTAccessSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, apperr.Unauthorized("invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, apperr.Unauthorized("invalid token claims")
	}

	userID, ok := claims["user_id"].(string)
	if !ok {
		return nil, apperr.Unauthorized("invalid token claims")
	}

	user, err := u.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.Unauthorized("user not found")
	}

	return user, nil
}

func (u *authUsecase) generateTokens(user *authdomain.User) (*authdto.TokenResponse, error) {
	accessToken, err := u.generateAccessToken(user)
	if err != nil {
		return nil, err
	}

	refreshToken, err := u.generateRefreshToken(user)
	if err != nil {
		return nil, err
	}

	if err := u.userRepo.UpdateRefreshToken(user.ID, &refreshToken); err != nil {
		return nil, err
	}
	user.RefreshToken = &refreshToken

	return &authdto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
	}, nil
}

func (u *authUsecase) generateAccessToken(user *authdomain.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"name":    user.Name,
		"exp":     time.Now().Add(u.config.JWTAccessExpiry).Unix(),
		"iat":     time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(u.config.JWTAccessSecret))
}

func (u *authUsecase) generateRefreshToken(user *authdomain.User) (string, error) {
	// token_id makes back-to-back rotations produce distinct tokens.
	claims := jwt.MapClaims{
		"user_id":  user.ID,
		"token_id": uuid.New().String(),
		"exp":      time.Now().Add(u.config.JWTRefreshExpiry).Unix(),
		"iat":      time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(u.config.JWTRefreshSecret))
}
