// Package grid iterates the capture grid and collects one tile per cell.
package grid

import (
	"context"
	"fmt"
	"image"
	"log"
	"time"

	"github.com/fwd1990man/GMapImageCollect/internal/browser"
	"github.com/fwd1990man/GMapImageCollect/internal/capture"
	"github.com/fwd1990man/GMapImageCollect/internal/geo"
	"github.com/fwd1990man/GMapImageCollect/internal/imaging"
)

// Cell is one position in the capture grid together with the coordinate the
// map must be centered on for it.
type Cell struct {
	Row, Col int
	Coord    geo.Coordinate
}

// Iterator walks the grid row-major: every column of row 0, then row 1, and
// so on. It starts idle and is exhausted after rows*cols cells.
type Iterator struct {
	rows, cols int
	origin     geo.Coordinate
	latShift   float64
	longShift  float64
	next       int
}

func NewIterator(rows, cols int, origin geo.Coordinate, latShift, longShift float64) *Iterator {
	return &Iterator{
		rows:      rows,
		cols:      cols,
		origin:    origin,
		latShift:  latShift,
		longShift: longShift,
	}
}

// Next returns the next cell, or ok=false once the grid is exhausted.
func (it *Iterator) Next() (Cell, bool) {
	if it.next >= it.rows*it.cols {
		return Cell{}, false
	}
	row := it.next / it.cols
	col := it.next % it.cols
	it.next++
	return Cell{
		Row: row,
		Col: col,
		Coord: geo.Coordinate{
			Lat:  it.origin.Lat + it.latShift*float64(row),
			Long: it.origin.Long + it.longShift*float64(col),
		},
	}, true
}

func (it *Iterator) Rows() int { return it.rows }
func (it *Iterator) Cols() int { return it.cols }

// Collector drives one browser and one screen across the grid, accumulating
// scaled tiles. Everything is strictly sequential: there is exactly one
// browser window and one physical screen to photograph, so concurrent cells
// would race over them.
type Collector struct {
	Browser     browser.Driver
	Screen      capture.Screen
	Box         image.Rectangle
	Host        string
	Zoom        int
	ScaleFactor float64
	Sleep       time.Duration
}

// Collect visits every cell and returns the full tile grid. The first failed
// cell aborts the run with an error naming it; no partial grid is ever
// returned.
func (c *Collector) Collect(ctx context.Context, it *Iterator) ([][]image.Image, error) {
	tiles := make([][]image.Image, it.Rows())
	for r := range tiles {
		tiles[r] = make([]image.Image, it.Cols())
	}

	for cell, ok := it.Next(); ok; cell, ok = it.Next() {
		url := browser.MapURL(c.Host, cell.Coord, c.Zoom)
		log.Printf("[*] Cell (%d,%d): %s", cell.Row, cell.Col, url)

		if err := c.Browser.Navigate(ctx, url); err != nil {
			return nil, fmt.Errorf("cell (%d,%d): %w", cell.Row, cell.Col, err)
		}

		// Maps keeps loading imagery after navigation reports complete; give
		// the asynchronous tile requests time to settle.
		if c.Sleep > 0 {
			time.Sleep(c.Sleep)
		}

		img, err := c.Screen.Capture(c.Box)
		if err != nil {
			return nil, fmt.Errorf("cell (%d,%d): capture: %w", cell.Row, cell.Col, err)
		}
		if img == nil || img.Bounds().Dx() != c.Box.Dx() || img.Bounds().Dy() != c.Box.Dy() {
			return nil, fmt.Errorf("cell (%d,%d): capture returned an empty or undersized image", cell.Row, cell.Col)
		}

		tile, err := imaging.Scale(img, c.ScaleFactor)
		if err != nil {
			return nil, fmt.Errorf("cell (%d,%d): %w", cell.Row, cell.Col, err)
		}
		tiles[cell.Row][cell.Col] = tile
	}

	return tiles, nil
}
