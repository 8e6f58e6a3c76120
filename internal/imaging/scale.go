package imaging

import (
	"fmt"
	"image"
	"math"

	xdraw "golang.org/x/image/draw"

	"github.com/fwd1990man/GMapImageCollect/internal/system"
)

// Scale resizes img by factor, preserving aspect ratio. A factor of 1 returns
// the input untouched so full-quality runs stay lossless; smaller factors
// downsample with a Catmull-Rom kernel. Target dimensions are rounded to the
// nearest pixel and never drop below 1.
func Scale(img image.Image, factor float64) (image.Image, error) {
	if factor <= 0 || factor > 1 {
		return nil, fmt.Errorf("scale factor must be in (0,1], got %g", factor)
	}
	if factor == 1 {
		return img, nil
	}

	b := img.Bounds()
	w := int(math.Round(float64(b.Dx()) * factor))
	h := int(math.Round(float64(b.Dy()) * factor))
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	dst := system.GetImage(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
	return dst, nil
}
