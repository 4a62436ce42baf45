package api

import (
	"net/http"

	authdelivery "learning-buddy-backend/internal/auth/delivery"
	authUsecase "learning-buddy-backend/internal/auth/usecase"
	coursedelivery "learning-buddy-backend/internal/course/delivery"
	courseUsecase "learning-buddy-backend/internal/course/usecase"
	enrollmentdelivery "learning-buddy-backend/internal/enrollment/delivery"
	enrollmentUsecase "learning-buddy-backend/internal/enrollment/usecase"
	recommenddelivery "learning-buddy-backend/internal/recommend/delivery"
	recommendUsecase "learning-buddy-backend/internal/recommend/usecase"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, authUc authUsecase.AuthUsecase, courseUc courseUsecase.CourseUsecase, enrollmentUc enrollmentUsecase.EnrollmentUsecase, recommendUc recommendUsecase.RecommendUsecase) {
	authHandler := authdelivery.NewAuthHandler(authUc)
	courseHandler := coursedelivery.NewCourseHandler(courseUc)
	moduleHandler := coursedelivery.NewModuleHandler(courseUc)
	enrollmentHandler := enrollmentdelivery.NewEnrollmentHandler(enrollmentUc)
	recommendHandler := recommenddelivery.NewRecommendHandler(recommendUc)

	requireAuth := authdelivery.AuthMiddleware(authUc)

	api := r.Group("/api/v1")
	{
		// Health check (no auth required)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		// User routes
		user := api.Group("/user")
		{
			user.POST("/register", authHandler.Register)
			user.POST("/login", authHandler.Login)
			user.POST("/logout", requireAuth, authHandler.Logout)
			user.PATCH("/refresh-token", authHandler.RefreshToken)
			user.PATCH("/change-password", requireAuth, authHandler.ChangePassword)
			user.GET("/current-user", requireAuth, authHandler.Me)
			user.PATCH("/change-user-details", requireAuth, authHandler.UpdateProfile)
			user.PATCH("/add-interested-areas", requireAuth, authHandler.AddInterestedAreas)
			user.PATCH("/add-experience-fields", requireAuth, authHandler.AddExperienceFields)
			user.GET("/recommend", requireAuth, recommendHandler.GetRecommendations)
		}

		// Course routes
		course := api.Group("/course")
		{
			course.POST("/create", requireAuth, courseHandler.CreateCourse)
			course.GET("/all", courseHandler.ListCourses)
			course.GET("/:courseId", courseHandler.GetCourse)
			course.GET("/:courseId/modules", requireAuth, enrollmentHandler.CourseProgress)
			course.PATCH("/update/:courseId", requireAuth, courseHandler.UpdateCourse)
			course.DELETE("/delete/:courseId", requireAuth, courseHandler.DeleteCourse)
			course.POST("/enroll/:courseId", requireAuth, enrollmentHandler.Enroll)
			course.DELETE("/unenroll/:courseId", requireAuth, enrollmentHandler.Unenroll)
			course.POST("/my-courses", requireAuth, enrollmentHandler.MyCourses)
		}

		// Module routes
		module := api.Group("/module")
		module.Use(requireAuth)
		{
			module.POST("/", moduleHandler.CreateModule)
			module.GET("/:id", moduleHandler.GetModule)
			module.PUT("/:id", moduleHandler.UpdateModule)
			module.DELETE("/:id", moduleHandler.DeleteModule)
			module.POST("/toggle-completion", enrollmentHandler.ToggleCompletion)
		}
	}
}
