package system

import (
	"image"
	"testing"
)

func TestImagePool(t *testing.T) {
	rect := image.Rect(0, 0, 64, 32)

	img := GetImage(rect)
	if img.Bounds() != rect {
		t.Fatalf("GetImage bounds = %v, want %v", img.Bounds(), rect)
	}

	PutImage(img)

	again := GetImage(rect)
	if again.Bounds() != rect {
		t.Errorf("Reused image bounds = %v, want %v", again.Bounds(), rect)
	}

	// Putting nil must be a no-op.
	PutImage(nil)

	// A different size gets its own pool.
	other := GetImage(image.Rect(0, 0, 10, 10))
	if other.Bounds().Dx() != 10 {
		t.Errorf("Unexpected bounds for a fresh size: %v", other.Bounds())
	}
}
