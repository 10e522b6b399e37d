package processor

import (
	"errors"
	"fmt"
	"image"
	"io"
	"net/http"

	"github.com/phambaophuc/image-trim/pkg/utils"
)

var (
	ErrFileTooLarge    = errors.New("file too large")
	ErrUnsupportedType = errors.New("unsupported image type")
)

// ValidateImage checks the size limit, sniffs the content type against
// allowedTypes and makes sure the header decodes. An empty allowedTypes uses
// utils.DefaultImageTypes. The reader is rewound before returning.
func (p *ImageProcessor) ValidateImage(file io.ReadSeeker, maxSize int64, allowedTypes []string) error {
	size, err := file.Seek(0, io.SeekEnd)
	if err != nil {
		return fmt.Errorf("failed to read file size: %w", err)
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("failed to rewind file: %w", err)
	}

	if size > maxSize {
		return fmt.Errorf("%w: %d bytes exceeds maximum allowed size %d", ErrFileTooLarge, size, maxSize)
	}

	head := make([]byte, 512)
	n, err := io.ReadFull(file, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("failed to read file: %w", err)
	}
	if contentType := http.DetectContentType(head[:n]); !utils.IsAllowedType(contentType, allowedTypes) {
		return fmt.Errorf("%w: %s", ErrUnsupportedType, contentType)
	}

	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("failed to rewind file: %w", err)
	}
	if _, _, err := image.DecodeConfig(file); err != nil {
		return fmt.Errorf("invalid image format: %w", err)
	}

	_, err = file.Seek(0, io.SeekStart)
	return err
}
