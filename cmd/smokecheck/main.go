// CreAI marketing site smoke check - manual entry point.
// Runs the core page-object probes against the configured target without
// the go test harness. Useful for quick checks from a shell or a cron job.
//
// Configuration comes from the same CREAI_* environment variables as the
// smoke suite; CREAI_BASE_URL selects the target site.
package main

import (
	"fmt"
	"os"

	"github.com/cmblandon/creai/internal/browser"
	"github.com/cmblandon/creai/internal/config"
	"github.com/cmblandon/creai/internal/obs"
	"github.com/cmblandon/creai/internal/pages"
)

func main() {
	obs.Init()
	cfg := config.MustLoad()

	fmt.Println("CreAI marketing site smoke check")
	fmt.Println("================================")
	fmt.Printf("Target: %s\n\n", cfg.BaseURL)

	session, err := browser.Launch(cfg.LaunchOptions())
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to launch browser: %v\n", err)
		fmt.Fprintln(os.Stderr, "hint: run 'go run ./scripts' to install Chromium")
		os.Exit(1)
	}
	defer session.Close()

	failures := 0
	for _, vp := range cfg.Viewports {
		fmt.Printf("--- %s ---\n", vp)
		failures += checkViewport(session, cfg, vp)
		fmt.Println()
	}

	if failures > 0 {
		fmt.Printf("✗ %d check(s) failed\n", failures)
		os.Exit(1)
	}
	fmt.Println("✓ all checks passed")
}

// checkViewport opens the home page at one viewport, probes the core
// elements, and walks the menu to the stories page. Returns the number of
// failed checks.
func checkViewport(session *browser.Session, cfg *config.Config, vp browser.Viewport) int {
	page, err := session.NewPage(vp)
	if err != nil {
		fmt.Printf("  ⚠ could not open page: %v\n", err)
		return 1
	}
	defer func() { _ = browser.ClosePage(page) }()

	failures := 0

	home := pages.NewHomePage(page, cfg.BaseURL)
	if err := home.Goto(); err != nil {
		fmt.Printf("  ⚠ home page: %v\n", err)
		return failures + 1
	}

	if title, err := home.Title(); err != nil {
		fmt.Printf("  ⚠ title: %v\n", err)
		failures++
	} else {
		fmt.Printf("  ✓ title: %s\n", title)
	}

	probes := []struct {
		label string
		probe func() (bool, error)
	}{
		{"logo", home.IsLogoVisible},
		{"contact button", home.IsContactButtonVisible},
		{"hero heading", home.IsHeroHeadingVisible},
	}
	for _, p := range probes {
		visible, err := p.probe()
		switch {
		case err != nil:
			fmt.Printf("  ⚠ %s: %v\n", p.label, err)
			failures++
		case visible:
			fmt.Printf("  ✓ %s visible\n", p.label)
		default:
			fmt.Printf("  ✗ %s not visible\n", p.label)
			failures++
		}
	}

	// Informational: tells desktop and drawer layouts apart.
	if toggleVisible, err := home.Header.MenuToggleVisible(); err != nil {
		fmt.Printf("  ⚠ menu toggle: %v\n", err)
		failures++
	} else {
		fmt.Printf("  · drawer layout: %v\n", toggleVisible)
	}

	if err := home.Header.ClickMenuItem(pages.MenuText("Success stories")); err != nil {
		fmt.Printf("  ⚠ menu navigation: %v\n", err)
		failures++
	} else if err := page.WaitForURL("**/success-stories**"); err != nil {
		fmt.Printf("  ✗ menu navigation landed on %s\n", page.URL())
		failures++
	} else {
		fmt.Printf("  ✓ menu navigation: %s\n", page.URL())
	}

	if failures > 0 && cfg.ScreenshotDir != "" {
		if path, err := browser.CaptureScreenshot(page, cfg.ScreenshotDir, "smokecheck-"+vp.Name); err == nil {
			fmt.Printf("  · screenshot: %s\n", path)
		}
	}

	return failures
}
