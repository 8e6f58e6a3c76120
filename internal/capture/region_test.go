package capture

import (
	"errors"
	"image"
	"testing"
)

func TestCropBox(t *testing.T) {
	// Power-of-two fractions keep the pixel math exact.
	off := Offsets{Left: 0.25, Top: 0.25, Right: 0.125, Bottom: 0.125}
	box, err := CropBox(1920, 1080, off)
	if err != nil {
		t.Fatalf("CropBox failed: %v", err)
	}

	want := image.Rect(480, 270, 1680, 945)
	if box != want {
		t.Errorf("CropBox = %v, want %v", box, want)
	}
}

func TestCropBoxFullScreen(t *testing.T) {
	box, err := CropBox(1920, 1080, Offsets{})
	if err != nil {
		t.Fatalf("CropBox failed: %v", err)
	}
	if box != image.Rect(0, 0, 1920, 1080) {
		t.Errorf("Zero offsets should capture the full screen, got %v", box)
	}
}

func TestCropBoxDegenerate(t *testing.T) {
	// Left+Right >= 1 leaves no horizontal area. CropBox must refuse rather
	// than hand back an inverted rectangle.
	_, err := CropBox(1920, 1080, Offsets{Left: 0.5, Right: 0.5})
	if err == nil {
		t.Fatalf("Expected an error for offsets that leave no area")
	}
	if !errors.Is(err, ErrDegenerateBox) {
		t.Errorf("Expected ErrDegenerateBox, got %v", err)
	}

	_, err = CropBox(1920, 1080, Offsets{Top: 0.75, Bottom: 0.5})
	if !errors.Is(err, ErrDegenerateBox) {
		t.Errorf("Expected ErrDegenerateBox for vertical overlap, got %v", err)
	}
}

func TestOffsetsValidate(t *testing.T) {
	cases := []struct {
		name    string
		off     Offsets
		wantErr bool
	}{
		{"zero", Offsets{}, false},
		{"typical", Offsets{Left: 0.1, Top: 0.05, Right: 0.05, Bottom: 0.1}, false},
		{"negative", Offsets{Left: -0.1}, true},
		{"at one", Offsets{Top: 1.0}, true},
		{"horizontal sum", Offsets{Left: 0.6, Right: 0.4}, true},
		{"vertical sum", Offsets{Top: 0.5, Bottom: 0.5}, true},
		{"large but valid", Offsets{Left: 0.6, Right: 0.39, Top: 0.6, Bottom: 0.39}, false},
	}

	for _, tc := range cases {
		err := tc.off.Validate()
		if tc.wantErr && err == nil {
			t.Errorf("%s: expected an error for %+v", tc.name, tc.off)
		}
		if !tc.wantErr && err != nil {
			t.Errorf("%s: unexpected error for %+v: %v", tc.name, tc.off, err)
		}
	}
}
