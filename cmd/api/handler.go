package api

import (
	authUsecase "learning-buddy-backend/internal/auth/usecase"
	courseUsecase "learning-buddy-backend/internal/course/usecase"
	enrollmentUsecase "learning-buddy-backend/internal/enrollment/usecase"
	recommendUsecase "learning-buddy-backend/internal/recommend/usecase"
	"learning-buddy-backend/pkg/config"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	authUsecase       authUsecase.AuthUsecase
	courseUsecase     courseUsecase.CourseUsecase
	enrollmentUsecase enrollmentUsecase.EnrollmentUsecase
	recommendUsecase  recommendUsecase.RecommendUsecase
	config            *config.Config
}

func NewHandler(authUc authUsecase.AuthUsecase, courseUc courseUsecase.CourseUsecase, enrollmentUc enrollmentUsecase.EnrollmentUsecase, recommendUc recommendUsecase.RecommendUsecase, cfg *config.Config) *Handler {
	return &Handler{
		authUsecase:       authUc,
		courseUsecase:     courseUc,
		enrollmentUsecase: enrollmentUc,
		recommendUsecase:  recommendUc,
		config:            cfg,
	}
}

func (h *Handler) Start(addr string) error {
	r := gin.Default()

	// CORS middleware
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" && (h.config.CORSOrigin == "*" || h.config.CORSOrigin == origin) {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			c.Writer.Header().Set("Access-Control-Allow-Origin", h.config.CORSOrigin)
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	SetupRoutes(r, h.authUsecase, h.courseUsecase, h.enrollmentUsecase, h.recommendUsecase)

	return r.Run(addr)
}
