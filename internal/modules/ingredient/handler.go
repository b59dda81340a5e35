package ingredient

import (
	"errors"
	"net/http"
	"strconv"

	"familykitchen/internal/pkg/response"
	"familykitchen/internal/pkg/validator"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(protected *gin.RouterGroup) {
	g := protected.Group("/ingredients")
	{
		g.GET("", h.List)
		g.POST("", h.Create)
		g.DELETE("/:id", h.Delete)
	}
}

func (h *Handler) List(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context())
	if err != nil {
		response.Internal(c, err, "Failed to load ingredients")
		return
	}
	response.Success(c, http.StatusOK, items)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateIngredientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if errs := validator.Validate(req); errs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Ingredient name is required (max 100 characters)", errs)
		return
	}

	ing, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidName):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		case errors.Is(err, ErrIngredientExists):
			response.Error(c, http.StatusConflict, "INGREDIENT_EXISTS", "Ingredient already exists")
		default:
			response.Internal(c, err, "Failed to create ingredient")
		}
		return
	}
	response.Success(c, http.StatusCreated, ing)
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid ingredient ID")
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrIngredientNotFound) {
			response.Error(c, http.StatusNotFound, "INGREDIENT_NOT_FOUND", "Ingredient not found")
			return
		}
		response.Internal(c, err, "Failed to delete ingredient")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"id": id, "deleted": true})
}
