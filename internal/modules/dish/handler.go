package dish

import (
	"errors"
	"net/http"
	"strconv"

	"familykitchen/internal/middleware"
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

// RegisterRoutes mounts the dish routes on an authenticated group. Creating
// and deleting dishes is reserved for members.
func (h *Handler) RegisterRoutes(protected *gin.RouterGroup) {
	protected.GET("/dishes", h.List)
	protected.GET("/dishes/:id", h.Get)
	protected.PUT("/dishes/:id", h.Update)

	members := protected.Group("")
	members.Use(middleware.RequireMember())
	{
		members.POST("/dishes", h.Create)
		members.DELETE("/dishes/:id", h.Delete)
	}
}

// List returns the whole menu.
// @Summary		List dishes
// @Tags		Dishes
// @Success		200	{object}	map[string]interface{}	"dishes with comments and selections, newest first"
// @Failure		401	{object}	map[string]interface{}	"not signed in"
// @Router		/dishes [GET]
func (h *Handler) List(c *gin.Context) {
	dishes, err := h.svc.List(c.Request.Context())
	if err != nil {
		response.Internal(c, err, "Failed to load dishes")
		return
	}
	response.Success(c, http.StatusOK, dishes)
}

func (h *Handler) Get(c *gin.Context) {
	id, ok := dishID(c)
	if !ok {
		return
	}

	d, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err, "Failed to load dish")
		return
	}
	response.Success(c, http.StatusOK, d)
}

// Create adds a dish to the menu.
// @Summary		Add dish
// @Tags		Dishes
// @Param		request	body	CreateDishRequest	true	"name, category, ingredients, optional image and available"
// @Success		201	{object}	map[string]interface{}	"created dish"
// @Failure		400	{object}	map[string]interface{}	"validation error"
// @Failure		403	{object}	map[string]interface{}	"guests cannot add dishes"
// @Router		/dishes [POST]
func (h *Handler) Create(c *gin.Context) {
	var req CreateDishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if errs := validator.Validate(req); errs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid dish", errs)
		return
	}

	d, err := h.svc.Create(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		h.fail(c, err, "Failed to create dish")
		return
	}
	response.Success(c, http.StatusCreated, d)
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := dishID(c)
	if !ok {
		return
	}

	var req UpdateDishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if errs := validator.Validate(req); errs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid dish", errs)
		return
	}

	d, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		h.fail(c, err, "Failed to update dish")
		return
	}
	response.Success(c, http.StatusOK, d)
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := dishID(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		h.fail(c, err, "Failed to delete dish")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"id": id, "deleted": true})
}

func (h *Handler) fail(c *gin.Context, err error, msg string) {
	switch {
	case errors.Is(err, ErrDishNotFound):
		response.Error(c, http.StatusNotFound, "DISH_NOT_FOUND", "Dish not found")
	case errors.Is(err, ErrInvalidName),
		errors.Is(err, ErrInvalidCategory),
		errors.Is(err, ErrEmptyIngredients):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	default:
		response.Internal(c, err, msg)
	}
}

func dishID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid dish ID")
		return 0, false
	}
	return id, true
}
