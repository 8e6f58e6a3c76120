package imaging

import (
	"errors"
	"fmt"
	"image"
	"image/draw"

	"github.com/fwd1990man/GMapImageCollect/internal/system"
)

// ErrDimensionMismatch reports a tile whose size differs from tile (0,0).
// Mismatched tiles would corrupt the paste, so stitching refuses them.
var ErrDimensionMismatch = errors.New("tile dimensions differ")

// Stitch places a 2D grid of identically sized tiles onto one canvas. Tile
// (row,col) lands at pixel (col*w, row*h); exact tiling, no overlap, no
// blending, no resampling. The grid must be fully populated and every tile
// must match the size of tile (0,0).
func Stitch(tiles [][]image.Image) (*image.RGBA, error) {
	if len(tiles) == 0 || len(tiles[0]) == 0 {
		return nil, fmt.Errorf("empty tile grid")
	}
	rows := len(tiles)
	cols := len(tiles[0])

	if tiles[0][0] == nil {
		return nil, fmt.Errorf("tile (0,0) is missing")
	}
	w := tiles[0][0].Bounds().Dx()
	h := tiles[0][0].Bounds().Dy()

	for r, rowTiles := range tiles {
		if len(rowTiles) != cols {
			return nil, fmt.Errorf("row %d has %d tiles, want %d", r, len(rowTiles), cols)
		}
		for c, t := range rowTiles {
			if t == nil {
				return nil, fmt.Errorf("tile (%d,%d) is missing", r, c)
			}
			if t.Bounds().Dx() != w || t.Bounds().Dy() != h {
				return nil, fmt.Errorf("tile (%d,%d) is %dx%d, tile (0,0) is %dx%d: %w",
					r, c, t.Bounds().Dx(), t.Bounds().Dy(), w, h, ErrDimensionMismatch)
			}
		}
	}

	canvas := image.NewRGBA(image.Rect(0, 0, cols*w, rows*h))
	for r, rowTiles := range tiles {
		for c, t := range rowTiles {
			target := image.Rect(c*w, r*h, (c+1)*w, (r+1)*h)
			draw.Draw(canvas, target, t, t.Bounds().Min, draw.Src)
		}
	}
	return canvas, nil
}

// ReleaseTiles hands RGBA tiles back to the image pool. Call it only after
// stitching; the tiles must not be used afterwards.
func ReleaseTiles(tiles [][]image.Image) {
	for _, row := range tiles {
		for _, t := range row {
			if rgba, ok := t.(*image.RGBA); ok {
				system.PutImage(rgba)
			}
		}
	}
}
