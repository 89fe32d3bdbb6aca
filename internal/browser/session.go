// Package browser owns the Playwright session lifecycle for the suite:
// driver startup, per-viewport pages, console capture, and screenshots.
package browser

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/playwright-community/playwright-go"

	"github.com/cmblandon/creai/internal/obs"
)

// LaunchOptions configures a browser session.
type LaunchOptions struct {
	Headless      bool
	SlowMo        time.Duration // delay between driver operations, 0 disables
	NavTimeout    time.Duration // default navigation timeout for new pages
	ActionTimeout time.Duration // default action timeout for new pages
}

// Session owns one Playwright driver and one Chromium browser. Pages are
// opened in fresh contexts so tests never share cookies or storage.
type Session struct {
	opts    LaunchOptions
	pw      *playwright.Playwright
	browser playwright.Browser
	log     *slog.Logger

	mu     sync.Mutex
	closed bool
}

// Launch starts the Playwright driver and launches Chromium.
func Launch(opts LaunchOptions) (*Session, error) {
	log := obs.Pkg("browser")

	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("failed to start playwright: %w", err)
	}

	launchOpts := playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(opts.Headless),
	}
	if opts.SlowMo > 0 {
		launchOpts.SlowMo = playwright.Float(float64(opts.SlowMo.Milliseconds()))
	}

	b, err := pw.Chromium.Launch(launchOpts)
	if err != nil {
		_ = pw.Stop()
		return nil, fmt.Errorf("failed to launch chromium: %w", err)
	}

	log.Info("browser session started", "headless", opts.Headless)
	return &Session{opts: opts, pw: pw, browser: b, log: log}, nil
}

// NewPage opens a fresh browser context sized to the viewport and returns its
// page with the session's default timeouts applied.
func (s *Session) NewPage(v Viewport) (playwright.Page, error) {
	ctx, err := s.browser.NewContext(playwright.BrowserNewContextOptions{
		Viewport: &playwright.Size{Width: v.Width, Height: v.Height},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create browser context: %w", err)
	}

	page, err := ctx.NewPage()
	if err != nil {
		_ = ctx.Close()
		return nil, fmt.Errorf("failed to create page: %w", err)
	}

	if s.opts.ActionTimeout > 0 {
		page.SetDefaultTimeout(float64(s.opts.ActionTimeout.Milliseconds()))
	}
	if s.opts.NavTimeout > 0 {
		page.SetDefaultNavigationTimeout(float64(s.opts.NavTimeout.Milliseconds()))
	}

	s.log.Debug("page opened", "viewport", v.String())
	return page, nil
}

// ClosePage closes the context that owns the page.
func ClosePage(page playwright.Page) error {
	if page == nil {
		return nil
	}
	if err := page.Context().Close(); err != nil {
		return fmt.Errorf("failed to close page context: %w", err)
	}
	return nil
}

// Close shuts down the browser and stops the driver. Safe to call twice.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true

	var firstErr error
	if s.browser != nil {
		if err := s.browser.Close(); err != nil {
			firstErr = fmt.Errorf("failed to close browser: %w", err)
		}
	}
	if s.pw != nil {
		if err := s.pw.Stop(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("failed to stop playwright: %w", err)
		}
	}

	s.log.Info("browser session closed")
	return firstErr
}
