package browser

import (
	"context"
	"fmt"

	"github.com/chromedp/chromedp"
)

// ChromeDriver drives a visible Chrome window over the DevTools protocol.
// Headless is deliberately off: the capture path photographs the physical
// screen, so the window has to actually be on it.
type ChromeDriver struct {
	ctx         context.Context
	ctxCancel   context.CancelFunc
	allocCancel context.CancelFunc
}

func NewChromeDriver() *ChromeDriver {
	return &ChromeDriver{}
}

func (d *ChromeDriver) Start(ctx context.Context) error {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", false),
		chromedp.Flag("start-maximized", true),
	)
	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, opts...)
	browserCtx, ctxCancel := chromedp.NewContext(allocCtx)

	// Run an empty task list so the browser process starts now and a launch
	// failure surfaces here instead of on the first navigation.
	if err := chromedp.Run(browserCtx); err != nil {
		ctxCancel()
		allocCancel()
		return fmt.Errorf("browser launch: %w", err)
	}

	d.ctx = browserCtx
	d.ctxCancel = ctxCancel
	d.allocCancel = allocCancel
	return nil
}

func (d *ChromeDriver) Navigate(ctx context.Context, url string) error {
	if d.ctx == nil {
		return fmt.Errorf("browser not started")
	}
	if err := chromedp.Run(d.ctx, chromedp.Navigate(url)); err != nil {
		return fmt.Errorf("navigate %s: %w", url, err)
	}
	return nil
}

func (d *ChromeDriver) Stop() error {
	if d.ctxCancel != nil {
		d.ctxCancel()
		d.ctxCancel = nil
	}
	if d.allocCancel != nil {
		d.allocCancel()
		d.allocCancel = nil
	}
	d.ctx = nil
	return nil
}
