package capture

import (
	"fmt"
	"image"

	"github.com/kbinani/screenshot"
)

// Screen abstracts the physical display so the grid can run against a fake in
// tests.
type Screen interface {
	// Resolution returns the display size in pixels.
	Resolution() (width, height int, err error)
	// Capture grabs the pixels inside box.
	Capture(box image.Rectangle) (image.Image, error)
}

// DisplayScreen captures from the primary display.
type DisplayScreen struct{}

func (DisplayScreen) Resolution() (int, int, error) {
	if screenshot.NumActiveDisplays() == 0 {
		return 0, 0, fmt.Errorf("no active displays")
	}
	b := screenshot.GetDisplayBounds(0)
	return b.Dx(), b.Dy(), nil
}

func (DisplayScreen) Capture(box image.Rectangle) (image.Image, error) {
	img, err := screenshot.CaptureRect(box)
	if err != nil {
		return nil, fmt.Errorf("screen capture %v: %w", box, err)
	}
	return img, nil
}
