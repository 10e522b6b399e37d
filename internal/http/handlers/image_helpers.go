package handlers

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/phambaophuc/image-trim/internal/models"
	"github.com/phambaophuc/image-trim/internal/services/processor"
	"go.uber.org/zap"
)

// === FILE OPERATIONS ===

// readUpload validates the multipart file under paramKey and reads it fully.
// On failure it has already responded and ok is false.
func (h *ImageHandler) readUpload(c *gin.Context, paramKey string) (data []byte, header *multipart.FileHeader, ok bool) {
	file, header, err := c.Request.FormFile(paramKey)
	if err != nil {
		h.respondError(c, http.StatusBadRequest, "No image file provided")
		return nil, nil, false
	}
	defer file.Close()

	if err := h.processor.ValidateImage(file, h.config.Storage.MaxFileSize, h.config.Storage.AllowedTypes); err != nil {
		h.respondError(c, statusForError(err), fmt.Sprintf("Invalid image: %v", err))
		return nil, nil, false
	}

	data, err = io.ReadAll(file)
	if err != nil {
		h.logger.Error("Failed to read upload", zap.Error(err))
		h.respondError(c, http.StatusInternalServerError, "Internal file error")
		return nil, nil, false
	}

	return data, header, true
}

// === RESPONSE HANDLING ===

func (h *ImageHandler) respondError(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, models.APIResponse{
		Success: false,
		Error:   message,
	})
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, processor.ErrFileTooLarge):
		return http.StatusRequestEntityTooLarge
	default:
		return http.StatusBadRequest
	}
}

func (h *ImageHandler) buildTrimmedImage(originalName, url string, fileSize int64, res processor.Result) models.TrimmedImage {
	return models.TrimmedImage{
		ID:           uuid.New().String(),
		OriginalName: originalName,
		URL:          url,
		Box: models.BoundingBox{
			Left:   res.Box.Min.X,
			Top:    res.Box.Min.Y,
			Right:  res.Box.Max.X,
			Bottom: res.Box.Max.Y,
		},
		Width:          res.Cropped.X,
		Height:         res.Cropped.Y,
		OriginalWidth:  res.Original.X,
		OriginalHeight: res.Original.Y,
		FileSize:       fileSize,
		ProcessedAt:    time.Now(),
	}
}

// === UTILITY METHODS ===

func (h *ImageHandler) calculateOverallHealth(services map[string]string) string {
	for _, status := range services {
		if status != "healthy" && status != "not configured" {
			return "unhealthy"
		}
	}
	return "healthy"
}

func pngFilename(originalFilename string) string {
	return strings.TrimSuffix(originalFilename, filepath.Ext(originalFilename)) + ".png"
}
