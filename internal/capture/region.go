package capture

import (
	"errors"
	"fmt"
	"image"
)

// ErrDegenerateBox reports a crop box with no area. A capture from such a box
// can never succeed, so it is refused up front instead of producing an empty
// image later.
var ErrDegenerateBox = errors.New("degenerate capture region")

// Offsets are the fractions of each screen edge excluded from a capture.
// They account for everything on screen that is not map: taskbars, window
// chrome, the Maps search box, minimap and zoom controls. Each value lives in
// [0,1), and opposing edges must leave some screen between them.
type Offsets struct {
	Left   float64 `yaml:"left"`
	Top    float64 `yaml:"top"`
	Right  float64 `yaml:"right"`
	Bottom float64 `yaml:"bottom"`
}

// Validate enforces the offset invariants: every value in [0,1) and
// Left+Right < 1, Top+Bottom < 1.
func (o Offsets) Validate() error {
	edges := []struct {
		name string
		val  float64
	}{
		{"left", o.Left},
		{"top", o.Top},
		{"right", o.Right},
		{"bottom", o.Bottom},
	}
	for _, e := range edges {
		if e.val < 0 || e.val >= 1 {
			return fmt.Errorf("offset %s must be in [0,1), got %g", e.name, e.val)
		}
	}
	if o.Left+o.Right >= 1 {
		return fmt.Errorf("offsets left+right must stay below 1, got %g", o.Left+o.Right)
	}
	if o.Top+o.Bottom >= 1 {
		return fmt.Errorf("offsets top+bottom must stay below 1, got %g", o.Top+o.Bottom)
	}
	return nil
}

// HiddenHorizontal returns the total fraction of the screen width excluded
// from captures.
func (o Offsets) HiddenHorizontal() float64 { return o.Left + o.Right }

// HiddenVertical returns the total fraction of the screen height excluded
// from captures.
func (o Offsets) HiddenVertical() float64 { return o.Top + o.Bottom }

// CropBox converts edge offsets on a screen of the given size into the pixel
// rectangle to capture. Fractional pixel positions are truncated. Offsets
// that leave no area return ErrDegenerateBox rather than an empty rectangle.
func CropBox(screenW, screenH int, off Offsets) (image.Rectangle, error) {
	x1 := int(off.Left * float64(screenW))
	y1 := int(off.Top * float64(screenH))
	x2 := int(float64(screenW) - off.Right*float64(screenW))
	y2 := int(float64(screenH) - off.Bottom*float64(screenH))
	if x1 >= x2 || y1 >= y2 {
		return image.Rectangle{}, fmt.Errorf("%w: offsets %+v on a %dx%d screen leave (%d,%d)-(%d,%d)",
			ErrDegenerateBox, off, screenW, screenH, x1, y1, x2, y2)
	}
	return image.Rect(x1, y1, x2, y2), nil
}
