package geo

import "fmt"

// Coordinate is a geographic position in decimal degrees.
type Coordinate struct {
	Lat  float64
	Long float64
}

// ZoomCalibration holds the empirically measured degree-per-pixel factors for
// one Google Maps zoom level. Multiplying a factor by the visible screen
// extent yields the lat/long delta that pans the map by exactly one screen.
type ZoomCalibration struct {
	Zoom int
	// LatDegPerPixel is negative: advancing one grid row moves the viewport
	// south, and latitude decreases southward.
	LatDegPerPixel float64
	// LongDegPerPixel is positive: advancing one grid column moves east.
	LongDegPerPixel float64
}

// Calibrations is the table of measured zoom levels. The zoom 18 entry was
// tuned by hand against a maximized browser on a 1920x1080 display. A zoom
// level absent from the table has simply not been measured yet; add a row
// here rather than scaling an existing one.
var Calibrations = map[int]ZoomCalibration{
	18: {
		Zoom:            18,
		LatDegPerPixel:  -0.000002051 * 2.1,
		LongDegPerPixel: 0.00000268 * 2,
	},
}

// CalibrationFor returns the calibration for a zoom level, or an error when
// the level has no measured entry.
func CalibrationFor(zoom int) (ZoomCalibration, error) {
	cal, ok := Calibrations[zoom]
	if !ok {
		return ZoomCalibration{}, fmt.Errorf("no shift calibration for zoom level %d (calibrated levels: 18)", zoom)
	}
	return cal, nil
}

// LatitudeShift returns the latitude delta for one grid row. hiddenFraction
// is the total fraction of the screen height excluded from captures; the
// shift shrinks with it so consecutive rows still meet edge to edge.
// hiddenFraction must be below 1, which the offsets validation guarantees.
func LatitudeShift(cal ZoomCalibration, screenHeight int, hiddenFraction float64) float64 {
	return cal.LatDegPerPixel * float64(screenHeight) * (1 - hiddenFraction)
}

// LongitudeShift returns the longitude delta for one grid column.
func LongitudeShift(cal ZoomCalibration, screenWidth int, hiddenFraction float64) float64 {
	return cal.LongDegPerPixel * float64(screenWidth) * (1 - hiddenFraction)
}
