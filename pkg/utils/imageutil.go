package utils

import (
	"fmt"
	"image"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultImageTypes lists the content types accepted when no allow list is configured.
var DefaultImageTypes = []string{
	"image/jpeg",
	"image/jpg",
	"image/png",
	"image/gif",
	"image/webp",
	"image/bmp",
	"image/tiff",
}

// IsAllowedType reports whether contentType matches an entry of allowed.
// An empty allow list falls back to DefaultImageTypes.
func IsAllowedType(contentType string, allowed []string) bool {
	if len(allowed) == 0 {
		allowed = DefaultImageTypes
	}

	ct := strings.ToLower(contentType)
	for _, validType := range allowed {
		if strings.Contains(ct, strings.ToLower(validType)) {
			return true
		}
	}
	return false
}

// GenerateStorageKey names an uploaded object as <unix-millis>_<short-id>.<ext>.
func GenerateStorageKey(format string, now time.Time) string {
	if format == "" {
		format = "png"
	}
	return fmt.Sprintf("%d_%s.%s", now.UnixMilli(), uuid.New().String()[:8], format)
}

// FormatBox renders a rectangle as "left,top,right,bottom".
func FormatBox(r image.Rectangle) string {
	return fmt.Sprintf("%d,%d,%d,%d", r.Min.X, r.Min.Y, r.Max.X, r.Max.Y)
}
