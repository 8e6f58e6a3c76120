package geo

import (
	"math"
	"testing"
)

func TestCalibrationFor(t *testing.T) {
	cal, err := CalibrationFor(18)
	if err != nil {
		t.Fatalf("CalibrationFor(18) failed: %v", err)
	}
	if cal.LatDegPerPixel >= 0 {
		t.Errorf("LatDegPerPixel must be negative, got %g", cal.LatDegPerPixel)
	}
	if cal.LongDegPerPixel <= 0 {
		t.Errorf("LongDegPerPixel must be positive, got %g", cal.LongDegPerPixel)
	}

	if _, err := CalibrationFor(12); err == nil {
		t.Errorf("Expected an error for uncalibrated zoom 12")
	}
}

func TestLatitudeShiftSignAndMonotonicity(t *testing.T) {
	cal := Calibrations[18]
	heights := []int{600, 768, 1080, 1440, 2160}

	prev := 0.0
	for i, h := range heights {
		shift := LatitudeShift(cal, h, 0.2)
		if shift >= 0 {
			t.Errorf("LatitudeShift(h=%d) = %g, want negative", h, shift)
		}
		if i > 0 && shift >= prev {
			t.Errorf("Shift magnitude should grow with screen height: %g then %g", prev, shift)
		}
		prev = shift
	}
}

func TestLongitudeShiftSignAndMonotonicity(t *testing.T) {
	cal := Calibrations[18]
	widths := []int{800, 1024, 1920, 2560, 3840}

	prev := 0.0
	for i, w := range widths {
		shift := LongitudeShift(cal, w, 0.2)
		if shift <= 0 {
			t.Errorf("LongitudeShift(w=%d) = %g, want positive", w, shift)
		}
		if i > 0 && shift <= prev {
			t.Errorf("Shift should grow with screen width: %g then %g", prev, shift)
		}
		prev = shift
	}
}

func TestShiftValues(t *testing.T) {
	cal := Calibrations[18]

	wantLat := -0.000002051 * 2.1 * 1080
	if got := LatitudeShift(cal, 1080, 0); math.Abs(got-wantLat) > 1e-12 {
		t.Errorf("LatitudeShift(1080, 0) = %g, want %g", got, wantLat)
	}

	wantLong := 0.00000268 * 2 * 1920
	if got := LongitudeShift(cal, 1920, 0); math.Abs(got-wantLong) > 1e-12 {
		t.Errorf("LongitudeShift(1920, 0) = %g, want %g", got, wantLong)
	}
}

func TestHiddenFractionShrinksShift(t *testing.T) {
	cal := Calibrations[18]

	full := LongitudeShift(cal, 1920, 0)
	half := LongitudeShift(cal, 1920, 0.5)
	if math.Abs(half*2-full) > 1e-12 {
		t.Errorf("Hiding half the width should halve the shift: full=%g half=%g", full, half)
	}

	fullLat := LatitudeShift(cal, 1080, 0)
	quarterHidden := LatitudeShift(cal, 1080, 0.25)
	if math.Abs(quarterHidden) >= math.Abs(fullLat) {
		t.Errorf("Hidden fraction should shrink the shift magnitude: %g vs %g", quarterHidden, fullLat)
	}
}
