// Package session runs the full map capture workflow end to end.
package session

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fwd1990man/GMapImageCollect/internal/browser"
	"github.com/fwd1990man/GMapImageCollect/internal/capture"
	"github.com/fwd1990man/GMapImageCollect/internal/config"
	"github.com/fwd1990man/GMapImageCollect/internal/geo"
	"github.com/fwd1990man/GMapImageCollect/internal/grid"
	"github.com/fwd1990man/GMapImageCollect/internal/imaging"
	"github.com/fwd1990man/GMapImageCollect/internal/system"
)

// ErrInvalidOutputPath reports an output target that already exists, is not
// writable, or is not a PNG.
var ErrInvalidOutputPath = errors.New("invalid output path")

// Session owns one capture run: one browser, one screen, one output file.
// The browser and screen are used by nothing else while it runs.
type Session struct {
	Config  *config.Config
	Browser browser.Driver
	Screen  capture.Screen
}

func New(cfg *config.Config, drv browser.Driver, scr capture.Screen) *Session {
	return &Session{Config: cfg, Browser: drv, Screen: scr}
}

// Run executes the whole workflow: validate the target, launch the browser,
// collect the grid, stitch, save. Any failure aborts the run; no partial
// output is ever written, and the browser is released on every exit path.
func (s *Session) Run(ctx context.Context) error {
	cfg := s.Config
	if err := cfg.Validate(); err != nil {
		return err
	}

	outfile := cfg.OutputPath
	if outfile == "" {
		outfile = fmt.Sprintf("testimg-%s.png", time.Now().Format("2006-01-02T15-04-05"))
	}
	// The target is checked before anything expensive happens: a doomed run
	// must not get as far as launching a browser.
	if err := ValidateOutputTarget(outfile); err != nil {
		return err
	}

	screenW, screenH, err := s.Screen.Resolution()
	if err != nil {
		return fmt.Errorf("screen resolution: %w", err)
	}

	box, err := capture.CropBox(screenW, screenH, cfg.Offsets)
	if err != nil {
		return err
	}

	cal, err := geo.CalibrationFor(cfg.Zoom)
	if err != nil {
		return err
	}
	latShift := geo.LatitudeShift(cal, screenH, cfg.Offsets.HiddenVertical())
	longShift := geo.LongitudeShift(cal, screenW, cfg.Offsets.HiddenHorizontal())

	if err := s.Browser.Start(ctx); err != nil {
		return err
	}
	defer s.Browser.Stop()

	fmt.Printf("[*] Grid: %dx%d at zoom %d | Screen: %dx%d | Capture box: %v\n",
		cfg.Rows, cfg.Cols, cfg.Zoom, screenW, screenH, box)

	it := grid.NewIterator(cfg.Rows, cfg.Cols,
		geo.Coordinate{Lat: cfg.StartLat, Long: cfg.StartLong}, latShift, longShift)
	collector := &grid.Collector{
		Browser:     s.Browser,
		Screen:      s.Screen,
		Box:         box,
		Host:        cfg.MapsHost,
		Zoom:        cfg.Zoom,
		ScaleFactor: cfg.Scale,
		Sleep:       time.Duration(cfg.SleepSeconds * float64(time.Second)),
	}

	tiles, err := collector.Collect(ctx, it)
	if err != nil {
		return err
	}

	tileW := tiles[0][0].Bounds().Dx()
	tileH := tiles[0][0].Bounds().Dy()
	estimated := uint64(tileW*cfg.Cols) * uint64(tileH*cfg.Rows) * 4
	if err := system.CheckMemoryBudget(estimated); err != nil {
		log.Printf("[!] %v", err)
	}

	fmt.Println("[*] Stitching tiles...")
	final, err := imaging.Stitch(tiles)
	if err != nil {
		return err
	}
	imaging.ReleaseTiles(tiles)

	if err := savePNG(final, outfile); err != nil {
		return err
	}

	fmt.Printf("[+++] Saved %dx%d map to %s\n", final.Bounds().Dx(), final.Bounds().Dy(), outfile)
	return nil
}

// ValidateOutputTarget rejects bad targets before any browser work starts:
// the file must not exist, its directory must be writable, and only PNG
// output is supported.
func ValidateOutputTarget(path string) error {
	if !strings.EqualFold(filepath.Ext(path), ".png") {
		return fmt.Errorf("%w: %s must have a .png extension", ErrInvalidOutputPath, path)
	}
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%w: %s already exists", ErrInvalidOutputPath, path)
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%w: %s: %v", ErrInvalidOutputPath, path, err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidOutputPath, path, err)
	}
	dir := filepath.Dir(abs)
	probe, err := os.CreateTemp(dir, ".gmapcollect-*")
	if err != nil {
		return fmt.Errorf("%w: directory %s is not writable: %v", ErrInvalidOutputPath, dir, err)
	}
	probe.Close()
	os.Remove(probe.Name())
	return nil
}

func savePNG(img image.Image, path string) error {
	// O_EXCL closes the window between the early existence check and this
	// write at the end of a long run.
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidOutputPath, path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
