package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/fwd1990man/GMapImageCollect/internal/browser"
	"github.com/fwd1990man/GMapImageCollect/internal/capture"
	"github.com/fwd1990man/GMapImageCollect/internal/config"
	"github.com/fwd1990man/GMapImageCollect/internal/session"
	"github.com/fwd1990man/GMapImageCollect/internal/system"
)

func main() {
	// Chrome burns through file descriptors; raise the limit first.
	system.InitResourceLimits()

	configPtr := flag.String("config", "", "Path to a YAML run configuration (replaces the other flags)")
	latPtr := flag.Float64("lat", 0, "Latitude of the top-left grid cell")
	longPtr := flag.Float64("long", 0, "Longitude of the top-left grid cell")
	rowsPtr := flag.Int("rows", 1, "Number of screenshot rows")
	colsPtr := flag.Int("cols", 1, "Number of screenshot columns")
	zoomPtr := flag.Int("zoom", 18, "Google Maps zoom level (must have a calibration entry)")
	scalePtr := flag.Float64("scale", 1, "Factor in (0,1] to scale each tile down; 1 keeps full resolution")
	sleepPtr := flag.Float64("sleep", 0, "Seconds to wait after navigation before capturing (3-5 recommended for production)")
	offLeftPtr := flag.Float64("offset-left", 0, "Fraction of the screen's left edge to crop away")
	offTopPtr := flag.Float64("offset-top", 0, "Fraction of the screen's top edge to crop away")
	offRightPtr := flag.Float64("offset-right", 0, "Fraction of the screen's right edge to crop away")
	offBottomPtr := flag.Float64("offset-bottom", 0, "Fraction of the screen's bottom edge to crop away")
	hostPtr := flag.String("host", "www.google.com", "Maps host to navigate to")
	outputPtr := flag.String("output", "", "Output PNG path (default: testimg-<timestamp>.png in the current directory)")

	flag.Parse()

	var cfg *config.Config
	if *configPtr != "" {
		loaded, err := config.Load(*configPtr)
		if err != nil {
			log.Fatalf("[-] Config error: %v", err)
		}
		cfg = loaded
		fmt.Printf("[*] Using config: %s\n", *configPtr)
	} else {
		cfg = &config.Config{
			StartLat:     *latPtr,
			StartLong:    *longPtr,
			Rows:         *rowsPtr,
			Cols:         *colsPtr,
			Zoom:         *zoomPtr,
			Scale:        *scalePtr,
			SleepSeconds: *sleepPtr,
			Offsets: capture.Offsets{
				Left:   *offLeftPtr,
				Top:    *offTopPtr,
				Right:  *offRightPtr,
				Bottom: *offBottomPtr,
			},
			MapsHost:   *hostPtr,
			OutputPath: *outputPtr,
		}
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("[-] Config error: %v", err)
	}

	sess := session.New(cfg, browser.NewChromeDriver(), capture.DisplayScreen{})
	if err := sess.Run(context.Background()); err != nil {
		log.Fatalf("[-] Capture failed: %v", err)
	}
}
