package delivery

import (
	"net/http"

	authdelivery "learning-buddy-backend/internal/auth/delivery"
	coursedto "learning-buddy-backend/internal/course/dto"
	"learning-buddy-backend/internal/course/usecase"
	"learning-buddy-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type CourseHandler struct {
	courseUsecase usecase.CourseUsecase
}

func NewCourseHandler(courseUsecase usecase.CourseUsecase) *CourseHandler {
	return &CourseHandler{
		courseUsecase: courseUsecase,
	}
}

func (h *CourseHandler) CreateCourse(c *gin.Context) {
	var req coursedto.CreateCourseRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "please provide all required fields"))
		return
	}

	mentor := authdelivery.CurrentUser(c)
	image, closer := OpenFormImage(c)
	if closer != nil {
		defer closer.Close()
	}

	course, err := h.courseUsecase.CreateCourse(c.Request.Context(), mentor, &req, image)
	if err != nil {
		authdelivery.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, course, "Course created successfully"))
}

func (h *CourseHandler) ListCourses(c *gin.Context) {
	courses, err := h.courseUsecase.ListCourses()
	if err != nil {
		authdelivery.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, courses, "Courses fetched successfully"))
}

func (h *CourseHandler) GetCourse(c *gin.Context) {
	course, err := h.courseUsecase.GetCourse(c.Param("courseId"))
	if err != nil {
		authdelivery.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, course, "Course fetched successfully"))
}

func (h *CourseHandler) UpdateCourse(c *gin.Context) {
	var req coursedto.UpdateCourseRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	userID := c.GetString(authdelivery.ContextUserIDKey)
	image, closer := OpenFormImage(c)
	if closer != nil {
		defer closer.Close()
	}

	course, err := h.courseUsecase.UpdateCourse(c.Request.Context(), userID, c.Param("courseId"), &req, image)
	if err != nil {
		authdelivery.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, course, "Course updated"))
}

func (h *CourseHandler) DeleteCourse(c *gin.Context) {
	userID := c.GetString(authdelivery.ContextUserIDKey)
	if err := h.courseUsecase.DeleteCourse(userID, c.Param("courseId")); err != nil {
		authdelivery.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, nil, "Course deleted"))
}
