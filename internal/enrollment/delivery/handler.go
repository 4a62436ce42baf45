package delivery

import (
	"net/http"

	authdelivery "learning-buddy-backend/internal/auth/delivery"
	enrollmentdto "learning-buddy-backend/internal/enrollment/dto"
	"learning-buddy-backend/internal/enrollment/usecase"
	"learning-buddy-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type EnrollmentHandler struct {
	enrollmentUsecase usecase.EnrollmentUsecase
}

func NewEnrollmentHandler(enrollmentUsecase usecase.EnrollmentUsecase) *EnrollmentHandler {
	return &EnrollmentHandler{
		enrollmentUsecase: enrollmentUsecase,
	}
}

func (h *EnrollmentHandler) Enroll(c *gin.Context) {
	userID := c.GetString(authdelivery.ContextUserIDKey)
	if err := h.enrollmentUsecase.Enroll(userID, c.Param("courseId")); err != nil {
		authdelivery.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, nil, "Enrolled successfully"))
}

func (h *EnrollmentHandler) Unenroll(c *gin.Context) {
	userID := c.GetString(authdelivery.ContextUserIDKey)
	if err := h.enrollmentUsecase.Unenroll(userID, c.Param("courseId")); err != nil {
		authdelivery.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, nil, "Unenrolled successfully"))
}

func (h *EnrollmentHandler) MyCourses(c *gin.Context) {
	userID := c.GetString(authdelivery.ContextUserIDKey)
	enrolled, err := h.enrollmentUsecase.ListEnrollments(userID)
	if err != nil {
		authdelivery.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, enrolled, "Enrolled courses fetched"))
}

func (h *EnrollmentHandler) ToggleCompletion(c *gin.Context) {
	var req enrollmentdto.ToggleCompletionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	userID := c.GetString(authdelivery.ContextUserIDKey)
	completed, err := h.enrollmentUsecase.ToggleModuleCompletion(userID, req.CourseID, req.ModuleID)
	if err != nil {
		authdelivery.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"completedModules": completed}, "Completion toggled"))
}

func (h *EnrollmentHandler) CourseProgress(c *gin.Context) {
	userID := c.GetString(authdelivery.ContextUserIDKey)
	modules, err := h.enrollmentUsecase.ListModulesWithCompletion(userID, c.Param("courseId"))
	if err != nil {
		authdelivery.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, modules, "Modules fetched with completion"))
}
