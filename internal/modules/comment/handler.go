package comment

import (
	"errors"
	"net/http"
	"strconv"

	"familykitchen/internal/domain"
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

func (h *Handler) RegisterRoutes(protected *gin.RouterGroup) {
	comments := protected.Group("/dishes/:id/comments")
	{
		comments.POST("", h.Create)
		comments.PUT("/:commentId", h.Update)
		comments.DELETE("/:commentId", h.Delete)
		comments.POST("/:commentId/like", h.ToggleLike)
	}
}

// Create posts a comment on a dish.
// @Summary		Comment on dish
// @Tags		Comments
// @Param		id		path	int				true	"dish ID"
// @Param		request	body	CommentRequest	true	"comment text"
// @Success		201	{object}	map[string]interface{}	"created comment with likes 0"
// @Failure		400	{object}	map[string]interface{}	"empty or too long text"
// @Failure		404	{object}	map[string]interface{}	"dish not found"
// @Router		/dishes/:id/comments [POST]
func (h *Handler) Create(c *gin.Context) {
	user, dishID, ok := h.prelude(c)
	if !ok {
		return
	}

	var req CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if errs := validator.Validate(req); errs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Comment text is required (max 1000 characters)", errs)
		return
	}

	cm, err := h.svc.Create(c.Request.Context(), user, dishID, req)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusCreated, cm)
}

func (h *Handler) Update(c *gin.Context) {
	user, dishID, ok := h.prelude(c)
	if !ok {
		return
	}
	commentID, ok := commentID(c)
	if !ok {
		return
	}

	var req CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if errs := validator.Validate(req); errs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Comment text is required (max 1000 characters)", errs)
		return
	}

	cm, err := h.svc.Update(c.Request.Context(), user, dishID, commentID, req)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, cm)
}

func (h *Handler) Delete(c *gin.Context) {
	user, dishID, ok := h.prelude(c)
	if !ok {
		return
	}
	commentID, ok := commentID(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), user, dishID, commentID); err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"id": commentID, "deleted": true})
}

// ToggleLike likes or unlikes a comment for the caller.
// @Summary		Toggle like
// @Tags		Comments
// @Success		200	{object}	map[string]interface{}	"liked flag and recounted likes"
// @Failure		404	{object}	map[string]interface{}	"comment not found on this dish"
// @Router		/dishes/:id/comments/:commentId/like [POST]
func (h *Handler) ToggleLike(c *gin.Context) {
	user, dishID, ok := h.prelude(c)
	if !ok {
		return
	}
	commentID, ok := commentID(c)
	if !ok {
		return
	}

	res, err := h.svc.ToggleLike(c.Request.Context(), user, dishID, commentID)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, res)
}

func (h *Handler) prelude(c *gin.Context) (*domain.User, int64, bool) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized")
		return nil, 0, false
	}

	dishID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || dishID <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid dish ID")
		return nil, 0, false
	}
	return user, dishID, true
}

func commentID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("commentId"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid comment ID")
		return 0, false
	}
	return id, true
}

func (h *Handler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidText):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	case errors.Is(err, ErrDishNotFound):
		response.Error(c, http.StatusNotFound, "DISH_NOT_FOUND", "Dish not found")
	case errors.Is(err, ErrCommentNotFound):
		response.Error(c, http.StatusNotFound, "COMMENT_NOT_FOUND", "Comment not found")
	case errors.Is(err, ErrForbidden):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "You can only change your own comments")
	default:
		response.Internal(c, err, "Failed to process comment")
	}
}
