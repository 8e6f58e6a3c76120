// Package browser provides the browser automation seam for the capture grid.
package browser

import (
	"context"
	"fmt"
	"strconv"

	"github.com/fwd1990man/GMapImageCollect/internal/geo"
)

// Driver abstracts browser automation so the grid can run against a fake in
// tests. The capture session owns the driver for its whole lifetime; no other
// component touches the browser directly.
type Driver interface {
	// Start launches the browser maximized.
	Start(ctx context.Context) error
	// Navigate loads url in the running browser.
	Navigate(ctx context.Context, url string) error
	// Stop closes the browser and releases its resources.
	Stop() error
}

// MapURL builds the Google Maps URL for one grid cell. The data suffix
// switches the page into satellite imagery.
func MapURL(host string, c geo.Coordinate, zoom int) string {
	return fmt.Sprintf("https://%s/maps/@%s,%s,%dz/data=!3m1!1e3",
		host,
		strconv.FormatFloat(c.Lat, 'f', -1, 64),
		strconv.FormatFloat(c.Long, 'f', -1, 64),
		zoom)
}
