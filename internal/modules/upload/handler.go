package upload

import (
	"errors"
	"net/http"

	"familykitchen/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// multipart framing on top of the file itself
const formOverhead = 1 << 20

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(protected *gin.RouterGroup) {
	protected.POST("/upload", h.Upload)
	protected.GET("/upload/:id", h.GetByID)
}

// Upload stores a dish image.
// @Summary Upload an image
// @Tags Uploads
// @Accept multipart/form-data
// @Param file formData file true "jpeg, png, gif or webp image"
// @Success 201 {object} map[string]interface{}
// @Failure 400,401,413,500 {object} map[string]interface{}
// @Router /upload [post]
func (h *Handler) Upload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.service.MaxFileSize()+formOverhead)

	fh, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			response.Error(c, http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", ErrFileTooLarge.Error())
			return
		}
		response.Error(c, http.StatusBadRequest, "NO_FILE", "No file uploaded")
		return
	}

	up, err := h.service.Upload(c.Request.Context(), c.GetInt64("user_id"), fh)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmptyFile):
			response.Error(c, http.StatusBadRequest, "EMPTY_FILE", err.Error())
		case errors.Is(err, ErrFileTooLarge):
			response.Error(c, http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", err.Error())
		case errors.Is(err, ErrInvalidMimeType):
			response.Error(c, http.StatusBadRequest, "INVALID_FILE_TYPE", err.Error())
		default:
			response.Internal(c, err, "Upload failed")
		}
		return
	}

	response.Success(c, http.StatusCreated, toResponse(up))
}

func (h *Handler) GetByID(c *gin.Context) {
	up, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrUploadNotFound) {
			response.Error(c, http.StatusNotFound, "UPLOAD_NOT_FOUND", "Upload not found")
			return
		}
		response.Internal(c, err, "Failed to load upload")
		return
	}
	response.Success(c, http.StatusOK, toResponse(up))
}
