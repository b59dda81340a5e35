package auth

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"familykitchen/internal/middleware"
	"familykitchen/internal/pkg/response"
	"familykitchen/internal/pkg/validator"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
	cookie  CookieOptions
}

func NewHandler(service *Service, cookie CookieOptions) *Handler {
	if cookie.Path == "" {
		cookie.Path = "/"
	}
	if cookie.SameSite == 0 {
		cookie.SameSite = http.SameSiteLaxMode
	}
	return &Handler{
		service: service,
		cookie:  cookie,
	}
}

func (h *Handler) RegisterPublicRoutes(v1 *gin.RouterGroup) {
	authGroup := v1.Group("/auth")
	{
		authGroup.POST("/login", h.Login)
		authGroup.POST("/guest", h.Guest)
		authGroup.POST("/logout", h.Logout)
	}
}

func (h *Handler) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	protected.GET("/auth/me", h.GetMe)
	protected.PUT("/users/me", h.UpdateMe)
}

// Login signs a family member in.
// @Summary		Log in
// @Tags		Auth
// @Param		request	body	LoginRequest	true	"username and password"
// @Success		200	{object}	map[string]interface{}	"user; session cookie set"
// @Failure		400	{object}	map[string]interface{}	"missing username or password"
// @Failure		401	{object}	map[string]interface{}	"invalid credentials"
// @Router		/auth/login [POST]
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	req.Username = strings.TrimSpace(req.Username)
	if errs := validator.Validate(req); errs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Username and password are required", errs)
		return
	}

	user, token, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			response.Error(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid username or password")
			return
		}
		response.Internal(c, err, "Failed to log in")
		return
	}

	h.setSession(c, token)
	response.Success(c, http.StatusOK, gin.H{"user": user})
}

// Guest creates a guest session.
// @Summary		Continue as guest
// @Tags		Auth
// @Param		request	body	GuestRequest	false	"optional display_name"
// @Success		200	{object}	map[string]interface{}	"guest user; session cookie set"
// @Failure		400	{object}	map[string]interface{}	"display name too long"
// @Router		/auth/guest [POST]
func (h *Handler) Guest(c *gin.Context) {
	var req GuestRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	user, token, err := h.service.GuestLogin(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrInvalidDisplayName) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
			return
		}
		response.Internal(c, err, "Failed to create guest session")
		return
	}

	h.setSession(c, token)
	response.Success(c, http.StatusOK, gin.H{"user": user})
}

func (h *Handler) Logout(c *gin.Context) {
	c.SetSameSite(h.cookie.SameSite)
	c.SetCookie(middleware.SessionCookie, "", -1, h.cookie.Path, "", h.cookie.Secure, true)
	c.Status(http.StatusNoContent)
}

func (h *Handler) GetMe(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized")
		return
	}

	fresh, err := h.service.Me(c.Request.Context(), user.ID)
	if err != nil {
		if errors.Is(err, ErrUnauthorized) {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized")
			return
		}
		response.Internal(c, err, "Failed to load user")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"user": fresh})
}

func (h *Handler) UpdateMe(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized")
		return
	}

	var req UpdateMeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	req.DisplayName = strings.TrimSpace(req.DisplayName)
	if errs := validator.Validate(req); errs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Display name is required (max 50 characters)", errs)
		return
	}

	updated, err := h.service.UpdateDisplayName(c.Request.Context(), user.ID, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidDisplayName):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		case errors.Is(err, ErrUnauthorized):
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized")
		default:
			response.Internal(c, err, "Failed to update profile")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"user": updated})
}

func (h *Handler) setSession(c *gin.Context, token string) {
	c.SetSameSite(h.cookie.SameSite)
	c.SetCookie(
		middleware.SessionCookie,
		token,
		int(h.service.SessionTTL().Seconds()),
		h.cookie.Path,
		"",
		h.cookie.Secure,
		true,
	)
}
