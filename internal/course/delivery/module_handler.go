package delivery

import (
	"io"
	"mime/multipart"
	"net/http"

	authdelivery "learning-buddy-backend/internal/auth/delivery"
	coursedto "learning-buddy-backend/internal/course/dto"
	"learning-buddy-backend/internal/course/usecase"
	"learning-buddy-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type ModuleHandler struct {
	courseUsecase usecase.CourseUsecase
}

func NewModuleHandler(courseUsecase usecase.CourseUsecase) *ModuleHandler {
	return &ModuleHandler{
		courseUsecase: courseUsecase,
	}
}

func (h *ModuleHandler) CreateModule(c *gin.Context) {
	var req coursedto.CreateModuleRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "please provide all required fields"))
		return
	}

	userID := c.GetString(authdelivery.ContextUserIDKey)
	image, closer := OpenFormImage(c)
	if closer != nil {
		defer closer.Close()
	}

	module, err := h.courseUsecase.AddModule(c.Request.Context(), userID, &req, image)
	if err != nil {
		authdelivery.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, module, "Module created successfully"))
}

func (h *ModuleHandler) GetModule(c *gin.Context) {
	module, err := h.courseUsecase.GetModule(c.Param("id"))
	if err != nil {
		authdelivery.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, module, "Module fetched successfully"))
}

func (h *ModuleHandler) UpdateModule(c *gin.Context) {
	var req coursedto.UpdateModuleRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	userID := c.GetString(authdelivery.ContextUserIDKey)
	image, closer := OpenFormImage(c)
	if closer != nil {
		defer closer.Close()
	}

	module, err := h.courseUsecase.UpdateModule(c.Request.Context(), userID, c.Param("id"), &req, image)
	if err != nil {
		authdelivery.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, module, "Module updated"))
}

func (h *ModuleHandler) DeleteModule(c *gin.Context) {
	userID := c.GetString(authdelivery.ContextUserIDKey)
	if err := h.courseUsecase.DeleteModule(userID, c.Param("id")); err != nil {
		authdelivery.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, nil, "Module deleted"))
}

// OpenFormImage returns the uploaded "image" multipart file when present.
func OpenFormImage(c *gin.Context) (io.Reader, multipart.File) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return nil, nil
	}
	file, err := fileHeader.Open()
	if err != nil {
		return nil, nil
	}
	return file, file
}
