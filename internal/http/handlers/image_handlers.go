package handlers

import (
	"bytes"
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/phambaophuc/image-trim/internal/config"
	"github.com/phambaophuc/image-trim/internal/http/middleware"
	"github.com/phambaophuc/image-trim/internal/models"
	"github.com/phambaophuc/image-trim/internal/services/processor"
	"github.com/phambaophuc/image-trim/pkg/utils"
	"go.uber.org/zap"
)

const (
	imageParamKey  = "image"
	bannerParamKey = "file"
	bannerURLKey   = "url"
	trimBoxHeader  = "X-Trim-Box"
)

// BannerStore is where trimmed banners end up. *storage.StorageService
// satisfies it.
type BannerStore interface {
	Upload(ctx context.Context, buffer *bytes.Buffer, filename, contentType string) (string, error)
	Delete(ctx context.Context, path string) error
	HealthCheck(ctx context.Context) map[string]string
}

type ImageHandler struct {
	processor *processor.ImageProcessor
	storage   BannerStore
	logger    *zap.Logger
	config    *config.Config
}

// NewImageHandler wires the handler. storage may be nil, in which case banner
// endpoints answer 503.
func NewImageHandler(
	processor *processor.ImageProcessor,
	storage BannerStore,
	logger *zap.Logger,
	config *config.Config,
) *ImageHandler {
	return &ImageHandler{
		processor: processor,
		storage:   storage,
		logger:    logger,
		config:    config,
	}
}

// === MAIN API ENDPOINTS ===

// TrimImage answers with the trimmed PNG, or 204 when the image is empty.
func (h *ImageHandler) TrimImage(c *gin.Context) {
	data, _, ok := h.readUpload(c, imageParamKey)
	if !ok {
		return
	}

	output, res, err := h.processor.TrimBytes(data)
	if err != nil {
		h.logger.Error("Trim failed", zap.Error(err))
		h.respondError(c, http.StatusBadRequest, "Failed to process image")
		return
	}

	if res.Empty {
		h.logger.Info("Image is empty", zap.Int("width", res.Original.X), zap.Int("height", res.Original.Y))
		c.Status(http.StatusNoContent)
		return
	}

	box := utils.FormatBox(res.Box)
	c.Set(middleware.TrimBoxKey, box)
	c.Header(trimBoxHeader, box)
	c.Data(http.StatusOK, "image/png", output)
}

// UploadBanner trims the uploaded file and stores it as a banner.
func (h *ImageHandler) UploadBanner(c *gin.Context) {
	if h.storage == nil {
		h.respondError(c, http.StatusServiceUnavailable, "Storage is not configured")
		return
	}

	data, header, ok := h.readUpload(c, bannerParamKey)
	if !ok {
		return
	}

	output, res, err := h.processor.TrimBytes(data)
	if err != nil {
		h.logger.Error("Trim failed", zap.Error(err))
		h.respondError(c, http.StatusBadRequest, "Failed to process image")
		return
	}

	if res.Empty {
		h.respondError(c, http.StatusUnprocessableEntity, "Image is empty or transparent.")
		return
	}

	url, err := h.storage.Upload(c.Request.Context(), bytes.NewBuffer(output), pngFilename(header.Filename), "image/png")
	if err != nil {
		h.logger.Error("Banner upload failed", zap.String("filename", header.Filename), zap.Error(err))
		h.respondError(c, http.StatusBadGateway, "Failed to upload banner")
		return
	}

	c.Set(middleware.TrimBoxKey, utils.FormatBox(res.Box))
	h.logger.Info("Banner uploaded",
		zap.String("filename", header.Filename),
		zap.String("url", url),
		zap.Stringer("box", res.Box))

	c.JSON(http.StatusOK, models.APIResponse{
		Success: true,
		Data:    h.buildTrimmedImage(header.Filename, url, int64(len(output)), res),
	})
}

// DeleteBanner removes a previously uploaded banner by key or public URL.
func (h *ImageHandler) DeleteBanner(c *gin.Context) {
	if h.storage == nil {
		h.respondError(c, http.StatusServiceUnavailable, "Storage is not configured")
		return
	}

	path := c.Query(bannerURLKey)
	if path == "" {
		h.respondError(c, http.StatusBadRequest, "url is required")
		return
	}

	if err := h.storage.Delete(c.Request.Context(), path); err != nil {
		h.logger.Error("Banner delete failed", zap.String("path", path), zap.Error(err))
		h.respondError(c, http.StatusBadGateway, "Failed to delete banner")
		return
	}

	c.JSON(http.StatusOK, models.APIResponse{Success: true})
}

// HealthCheck reports storage status and the active upload limits.
func (h *ImageHandler) HealthCheck(c *gin.Context) {
	storageStatus := map[string]string{"supabase": "not configured"}
	bucket := ""
	if h.storage != nil {
		storageStatus = h.storage.HealthCheck(c.Request.Context())
		bucket = h.config.Supabase.BUCKET
	}
	overall := h.calculateOverallHealth(storageStatus)

	statusCode := http.StatusOK
	if overall == "unhealthy" {
		statusCode = http.StatusServiceUnavailable
	}

	c.JSON(statusCode, models.APIResponse{
		Success: overall == "healthy",
		Data: models.HealthCheck{
			Status:         overall,
			Timestamp:      time.Now(),
			Services:       storageStatus,
			Bucket:         bucket,
			MaxUploadBytes: h.config.Storage.MaxFileSize,
			AllowedTypes:   h.config.Storage.AllowedTypes,
		},
	})
}
