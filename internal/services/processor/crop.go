package processor

import (
	"image"

	"github.com/disintegration/imaging"
)

// ToRGBA normalizes img to a straight-alpha RGBA raster anchored at (0, 0).
// Sources without an alpha channel come out fully opaque.
func (p *ImageProcessor) ToRGBA(img image.Image) *image.NRGBA {
	return imaging.Clone(img)
}

// BoundingBox returns the smallest rectangle holding every pixel with a
// non-zero alpha. Fully transparent pixels are background whatever their
// color; opaque black is content. ok is false when no pixel qualifies.
func (p *ImageProcessor) BoundingBox(img *image.NRGBA) (box image.Rectangle, ok bool) {
	b := img.Bounds()
	left, top := b.Max.X, b.Max.Y
	right, bottom := b.Min.X, b.Min.Y

	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := img.Pix[(y-b.Min.Y)*img.Stride:]
		for x := b.Min.X; x < b.Max.X; x++ {
			if row[(x-b.Min.X)*4+3] == 0 {
				continue
			}
			if x < left {
				left = x
			}
			if x >= right {
				right = x + 1
			}
			if y < top {
				top = y
			}
			bottom = y + 1
		}
	}

	if left >= right || top >= bottom {
		return image.Rectangle{}, false
	}
	return image.Rect(left, top, right, bottom), true
}

// Trim crops img to its bounding box. The returned raster is nil when the
// image has no content.
func (p *ImageProcessor) Trim(img image.Image) (*image.NRGBA, Result) {
	rgba := p.ToRGBA(img)
	size := rgba.Bounds().Size()

	box, ok := p.BoundingBox(rgba)
	if !ok {
		return nil, Result{Empty: true, Original: size}
	}

	cropped := imaging.Crop(rgba, box)
	return cropped, Result{
		Box:      box,
		Original: size,
		Cropped:  cropped.Bounds().Size(),
	}
}
