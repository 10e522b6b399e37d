package processor

import (
	"fmt"
	"image"
	"io"

	"github.com/disintegration/imaging"

	// imaging registers png, jpeg, gif, bmp and tiff; add webp on top.
	_ "golang.org/x/image/webp"
)

// Open decodes the image stored at path.
func (p *ImageProcessor) Open(path string) (image.Image, error) {
	return imaging.Open(path, imaging.AutoOrientation(p.autoOrientation))
}

// Decode reads an image in any registered format from r.
func (p *ImageProcessor) Decode(r io.Reader) (image.Image, error) {
	img, err := imaging.Decode(r, imaging.AutoOrientation(p.autoOrientation))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return img, nil
}

// EncodePNG writes img to w as PNG. Output is always PNG, whatever the source.
func (p *ImageProcessor) EncodePNG(w io.Writer, img image.Image) error {
	return imaging.Encode(w, img, imaging.PNG, imaging.PNGCompressionLevel(p.compression))
}
