package delivery

import (
	"io"
	"mime/multipart"
	"net/http"

	authdomain "learning-buddy-backend/internal/auth/domain"
	authdto "learning-buddy-backend/internal/auth/dto"
	"learning-buddy-backend/internal/auth/usecase"
	"learning-buddy-backend/pkg/apperr"
	"learning-buddy-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUsecase usecase.AuthUsecase
}

func NewAuthHandler(authUsecase usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
	}
}

// RespondError maps a usecase error onto the response envelope.
func RespondError(c *gin.Context, err error) {
	status := apperr.Status(err)
	c.JSON(status, response.Error(status, err.Error()))
}

// CurrentUser returns the account the middleware resolved for this request.
func CurrentUser(c *gin.Context) *authdomain.User {
	if value, exists := c.Get(ContextUserKey); exists {
		if user, ok := value.(*authdomain.User); ok {
			return user
		}
	}
	return nil
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req authdto.RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	picture, closer := openFormFile(c, "profilePicture")
	if closer != nil {
		defer closer.Close()
	}

	user, err := h.authUsecase.Register(c.Request.Context(), &req, picture)
	if err != nil {
		RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, user, "User registered successfully"))
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req authdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	tokens, err := h.authUsecase.Login(&req)
	if err != nil {
		RespondError(c, err)
		return
	}

	setSessionCookies(c, tokens.AccessToken, tokens.RefreshToken)
	c.JSON(http.StatusOK, response.Success(http.StatusOK, tokens, "Login successful"))
}

func (h *AuthHandler) RefreshToken(c *gin.Context) {
	presented, _ := c.Cookie("refreshToken")
	if presented == "" {
		var body struct {
			RefreshToken string `json:"refreshToken"`
		}
		_ = c.ShouldBindJSON(&body)
		presented = body.RefreshToken
	}

	tokens, err := h.authUsecase.RefreshTokens(presented)
	if err != nil {
		RespondError(c, err)
		return
	}

	setSessionCookies(c, tokens.AccessToken, tokens.RefreshToken)
	c.JSON(http.StatusOK, response.Success(http.StatusOK, tokens, "Token refreshed"))
}

func (h *AuthHandler) Logout(c *gin.Context) {
	userID := c.GetString(ContextUserIDKey)
	if err := h.authUsecase.Logout(userID); err != nil {
		RespondError(c, err)
		return
	}

	clearSessionCookies(c)
	c.JSON(http.StatusOK, response.Success(http.StatusOK, nil, "Logged out successfully"))
}

func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var req authdto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	userID := c.GetString(ContextUserIDKey)
	if err := h.authUsecase.ChangePassword(userID, &req); err != nil {
		RespondError(c, err)
		return
	}

	// Revoked refresh token means the session cookies are dead weight.
	clearSessionCookies(c)
	c.JSON(http.StatusOK, response.Success(http.StatusOK, nil, "Password updated"))
}

func (h *AuthHandler) Me(c *gin.Context) {
	user := CurrentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, response.Error(http.StatusUnauthorized, "unauthorized"))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"user": user}, "User details fetched"))
}

func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	var req authdto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	userID := c.GetString(ContextUserIDKey)
	user, err := h.authUsecase.UpdateProfile(userID, &req)
	if err != nil {
		RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, user, "User updated"))
}

func (h *AuthHandler) AddInterestedAreas(c *gin.Context) {
	var req authdto.AddAreasRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	userID := c.GetString(ContextUserIDKey)
	user, err := h.authUsecase.AddInterestedAreas(userID, req.Areas)
	if err != nil {
		RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, user, "Interests updated"))
}

func (h *AuthHandler) AddExperienceFields(c *gin.Context) {
	var req authdto.AddExperiencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	userID := c.GetString(ContextUserIDKey)
	user, err := h.authUsecase.AddExperienceFields(userID, req.Experiences)
	if err != nil {
		RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, user, "Experience updated"))
}

func setSessionCookies(c *gin.Context, accessToken, refreshToken string) {
	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie("accessToken", accessToken, 0, "/", "", true, true)
	c.SetCookie("refreshToken", refreshToken, 0, "/", "", true, true)
}

func clearSessionCookies(c *gin.Context) {
	c.SetCookie("accessToken", "", -1, "/", "", true, true)
	c.SetCookie("refreshToken", "", -1, "/", "", true, true)
}

// openFormFile returns the named multipart file when the client sent one.
func openFormFile(c *gin.Context, field string) (io.Reader, multipart.File) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		return nil, nil
	}
	file, err := fileHeader.Open()
	if err != nil {
		return nil, nil
	}
	return file, file
}
