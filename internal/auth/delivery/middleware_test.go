package delivery

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	authdomain "learning-buddy-backend/internal/auth/domain"
	authdto "learning-buddy-backend/internal/auth/dto"
	"learning-buddy-backend/internal/auth/repository"
	"learning-buddy-backend/internal/auth/usecase"
	"learning-buddy-backend/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestRouter(t *testing.T) (*gin.Engine, usecase.AuthUsecase) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&authdomain.User{}))

	cfg := &config.Config{
		JWTAccessSecret:  "test-access-secret",
		JWTRefreshSecret: "test-refresh-secret",
		JWTAccessExpiry:  time.Minute,
		JWTRefreshExpiry: time.Hour,
	}
	authUc := usecase.NewAuthUsecase(repository.NewUserRepository(db), nil, cfg)

	r := gin.New()
	r.GET("/protected", AuthMiddleware(authUc), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userID": c.GetString(ContextUserIDKey)})
	})
	return r, authUc
}

func loginTestUser(t *testing.T, authUc usecase.AuthUsecase) *authdto.TokenResponse {
	t.Helper()
	_, err := authUc.Register(context.Background(), &authdto.RegisterRequest{
		Name:     "Alex Student",
		Email:    "alex@example.com",
		Role:     "Student",
		Password: "secret123",
	}, nil)
	require.NoError(t, err)

	tokens, err := authUc.Login(&authdto.LoginRequest{
		Email:    "alex@example.com",
		Password: "secret123",
		Role:     "Student",
	})
	require.NoError(t, err)
	return tokens
}

func TestAuthMiddlewareRejectsMissingToken(t *testing.T) {
	r, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareRejectsGarbageToken(t *testing.T) {
	r, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareAcceptsBearerToken(t *testing.T) {
	r, authUc := newTestRouter(t)
	tokens := loginTestUser(t, authUc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+tokens.AccessToken)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), tokens.User.ID)
}

func TestAuthMiddlewareAcceptsCookie(t *testing.T) {
	r, authUc := newTestRouter(t)
	tokens := loginTestUser(t, authUc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.AddCookie(&http.Cookie{Name: "accessToken", Value: tokens.AccessToken})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), tokens.User.ID)
}
