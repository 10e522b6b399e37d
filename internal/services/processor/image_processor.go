// Package processor trims empty borders from images and re-encodes them as PNG.
package processor

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
)

type ImageProcessor struct {
	compression     png.CompressionLevel
	autoOrientation bool
}

type Option func(*ImageProcessor)

// WithCompression sets the zlib level used for PNG output.
func WithCompression(level png.CompressionLevel) Option {
	return func(p *ImageProcessor) {
		p.compression = level
	}
}

// WithAutoOrientation applies the EXIF orientation tag of JPEG input on decode.
// Off by default: pixels are trimmed as stored.
func WithAutoOrientation(enabled bool) Option {
	return func(p *ImageProcessor) {
		p.autoOrientation = enabled
	}
}

func NewImageProcessor(opts ...Option) *ImageProcessor {
	p := &ImageProcessor{
		compression: png.DefaultCompression,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Result describes the outcome of a trim.
type Result struct {
	Box      image.Rectangle
	Empty    bool
	Original image.Point
	Cropped  image.Point
}

// TrimFile trims inputPath and writes the result to outputPath as PNG. When
// the image has no content, Result.Empty is set and nothing is written.
func (p *ImageProcessor) TrimFile(inputPath, outputPath string) (Result, error) {
	img, err := p.Open(inputPath)
	if err != nil {
		return Result{}, err
	}

	cropped, res := p.Trim(img)
	if res.Empty {
		return res, nil
	}

	if err := writeFile(outputPath, cropped, p.EncodePNG); err != nil {
		return Result{}, err
	}

	return res, nil
}

// TrimBytes trims an encoded image held in memory and returns the PNG bytes.
// The returned slice is nil when the image is empty.
func (p *ImageProcessor) TrimBytes(data []byte) ([]byte, Result, error) {
	if len(data) == 0 {
		return nil, Result{}, fmt.Errorf("empty image data")
	}

	img, err := p.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, Result{}, err
	}

	cropped, res := p.Trim(img)
	if res.Empty {
		return nil, res, nil
	}

	buffer := &bytes.Buffer{}
	if err := p.EncodePNG(buffer, cropped); err != nil {
		return nil, Result{}, fmt.Errorf("failed to encode image: %w", err)
	}

	return buffer.Bytes(), res, nil
}

// writeFile creates path and runs encode into it, removing the file again if
// encoding fails part way.
func writeFile(path string, img image.Image, encode func(io.Writer, image.Image) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := encode(f, img); err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("failed to encode image: %w", err)
	}

	if err := f.Close(); err != nil {
		os.Remove(path)
		return err
	}

	return nil
}
