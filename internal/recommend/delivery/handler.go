package delivery

import (
	"net/http"

	authdelivery "learning-buddy-backend/internal/auth/delivery"
	"learning-buddy-backend/internal/recommend/usecase"
	"learning-buddy-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type RecommendHandler struct {
	recommendUsecase usecase.RecommendUsecase
}

func NewRecommendHandler(recommendUsecase usecase.RecommendUsecase) *RecommendHandler {
	return &RecommendHandler{
		recommendUsecase: recommendUsecase,
	}
}

func (h *RecommendHandler) GetRecommendations(c *gin.Context) {
	user := authdelivery.CurrentUser(c)
	result, err := h.recommendUsecase.GetRecommendations(c.Request.Context(), user)
	if err != nil {
		authdelivery.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, result, "Recommended courses fetched successfully"))
}
