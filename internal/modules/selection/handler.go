package selection

import (
	"errors"
	"net/http"
	"strconv"

	"familykitchen/internal/middleware"
	"familykitchen/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(protected *gin.RouterGroup) {
	protected.POST("/dishes/:id/selections", h.Toggle)
}

// Toggle marks or unmarks a dish for the caller's next meal.
// @Summary		Toggle selection
// @Tags		Selections
// @Param		id	path	int	true	"dish ID"
// @Success		200	{object}	map[string]interface{}	"selected flag after the toggle"
// @Failure		404	{object}	map[string]interface{}	"dish not found"
// @Router		/dishes/:id/selections [POST]
func (h *Handler) Toggle(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized")
		return
	}

	dishID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || dishID <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid dish ID")
		return
	}

	res, err := h.svc.Toggle(c.Request.Context(), user, dishID)
	if err != nil {
		if errors.Is(err, ErrDishNotFound) {
			response.Error(c, http.StatusNotFound, "DISH_NOT_FOUND", "Dish not found")
			return
		}
		response.Internal(c, err, "Failed to toggle selection")
		return
	}
	response.Success(c, http.StatusOK, res)
}
