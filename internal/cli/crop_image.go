// Package cli implements the crop_image command: trim the empty border of one
// image and save the result as PNG.
package cli

import (
	"fmt"
	"io"

	"github.com/phambaophuc/image-trim/internal/services/processor"
	"go.uber.org/zap"
)

// Usage is printed when the argument count is wrong.
const Usage = "Usage: crop_image <input_path> <output_path>"

type Cropper struct {
	processor *processor.ImageProcessor
	logger    *zap.Logger
	out       io.Writer
}

func NewCropper(processor *processor.ImageProcessor, logger *zap.Logger, out io.Writer) *Cropper {
	return &Cropper{
		processor: processor,
		logger:    logger,
		out:       out,
	}
}

// Run checks that exactly two positional arguments were given and crops.
// Nothing is returned: every outcome is reported on the output writer.
func (c *Cropper) Run(args []string) {
	if len(args) != 2 {
		fmt.Fprintln(c.out, Usage)
		return
	}
	c.CropImage(args[0], args[1])
}

// CropImage trims inputPath and writes the PNG to outputPath. Errors are
// printed, never returned.
func (c *Cropper) CropImage(inputPath, outputPath string) {
	res, err := c.processor.TrimFile(inputPath, outputPath)
	if err != nil {
		c.logger.Warn("Crop failed",
			zap.String("input", inputPath),
			zap.String("output", outputPath),
			zap.Error(err))
		fmt.Fprintf(c.out, "Error: %v\n", err)
		return
	}

	if res.Empty {
		c.logger.Info("Nothing to crop", zap.String("input", inputPath))
		fmt.Fprintln(c.out, "Image is empty or transparent.")
		return
	}

	c.logger.Info("Image cropped",
		zap.String("input", inputPath),
		zap.String("output", outputPath),
		zap.Stringer("box", res.Box),
		zap.Int("width", res.Cropped.X),
		zap.Int("height", res.Cropped.Y))
	fmt.Fprintf(c.out, "Successfully cropped image. Saved to %s\n", outputPath)
}
