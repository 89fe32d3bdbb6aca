// Header navigation smoke specs: menu clicks by text and by index.
package smoke

import (
	"strings"
	"testing"

	"github.com/playwright-community/playwright-go"

	"github.com/cmblandon/creai/internal/browser"
	"github.com/cmblandon/creai/internal/pages"
)

// =============================================================================
// Menu Navigation by Text
// =============================================================================

// TestSmoke_Navigation_SuccessStoriesAcrossViewports verifies clicking the
// 'Success stories' menu entry lands on the stories page at every configured
// viewport, with the drawer handled automatically on narrow layouts.
func TestSmoke_Navigation_SuccessStoriesAcrossViewports(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping browser test in short mode")
	}

	env := SetupSmokeTestEnv(t)
	env.InitBrowser(t)

	for _, vp := range env.Viewports() {
		page := env.NewPage(t, vp)

		home := pages.NewHomePage(page, env.BaseURL)
		if err := home.Goto(); err != nil {
			t.Fatalf("[%s] Failed to open home page: %v", vp, err)
		}

		if err := home.Header.ClickMenuItem(pages.MenuText("Success stories")); err != nil {
			t.Fatalf("[%s] Failed to click 'Success stories': %v", vp, err)
		}

		WaitForURLContains(t, page, "success-stories")

		if err := home.WaitForLoadState(playwright.LoadStateNetworkidle); err != nil {
			t.Fatalf("[%s] Stories page did not finish loading: %v", vp, err)
		}

		WaitForDescriptor(t, page, pages.StoriesElements()[pages.ElemStoriesHeading])

		stories := pages.NewSuccessStoriesPage(page, env.BaseURL)
		visible, err := stories.IsHeadingVisible()
		if err != nil {
			t.Fatalf("[%s] Failed to probe the stories heading: %v", vp, err)
		}
		if !visible {
			t.Errorf("[%s] Expected the 'Success stories' heading to be visible", vp)
		}
	}
}

// TestSmoke_Navigation_AboutUs verifies the 'About us' menu entry navigates
// to the about page.
func TestSmoke_Navigation_AboutUs(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping browser test in short mode")
	}

	env := SetupSmokeTestEnv(t)
	env.InitBrowser(t)

	page := env.NewPage(t, browser.DesktopViewport())

	home := pages.NewHomePage(page, env.BaseURL)
	if err := home.Goto(); err != nil {
		t.Fatalf("Failed to open home page: %v", err)
	}

	if err := home.Header.ClickMenuItem(pages.MenuText("About us")); err != nil {
		t.Fatalf("Failed to click 'About us': %v", err)
	}

	WaitForURLContains(t, page, "about-us")
}

// TestSmoke_Navigation_MenuTextIsCaseSensitive verifies text matching is
// case-sensitive: a lowercase variant of a real entry matches nothing and
// the click fails once the visibility wait times out.
func TestSmoke_Navigation_MenuTextIsCaseSensitive(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping browser test in short mode")
	}

	env := SetupSmokeTestEnv(t)
	skipUnlessHermetic(t, env)
	env.InitBrowser(t)

	page := env.NewPage(t, browser.DesktopViewport())

	home := pages.NewHomePage(page, env.BaseURL)
	if err := home.Goto(); err != nil {
		t.Fatalf("Failed to open home page: %v", err)
	}

	err := home.Header.ClickMenuItem(pages.MenuText("success stories"))
	if err == nil {
		t.Fatal("Expected the lowercase menu text to match nothing")
	}
	if !strings.Contains(err.Error(), "never became visible") {
		t.Errorf("Expected a visibility wait error, got: %v", err)
	}
}

// =============================================================================
// Menu Navigation by Index
// =============================================================================

// TestSmoke_Navigation_FirstMenuItemByIndex verifies index 0 clicks the first
// menu entry regardless of its text, on desktop and mobile layouts.
func TestSmoke_Navigation_FirstMenuItemByIndex(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping browser test in short mode")
	}

	env := SetupSmokeTestEnv(t)
	skipUnlessHermetic(t, env)
	env.InitBrowser(t)

	for _, vp := range env.Viewports() {
		page := env.NewPage(t, vp)

		home := pages.NewHomePage(page, env.BaseURL)
		if err := home.Goto(); err != nil {
			t.Fatalf("[%s] Failed to open home page: %v", vp, err)
		}

		if err := home.Header.ClickMenuItem(pages.MenuIndex(0)); err != nil {
			t.Fatalf("[%s] Failed to click menu item #0: %v", vp, err)
		}

		WaitForURLContains(t, page, strings.TrimPrefix(fixtureFirstMenuHref, "/"))
	}
}

// TestSmoke_Navigation_NegativeIndexIsRejected verifies a negative menu index
// fails before any browser interaction happens.
func TestSmoke_Navigation_NegativeIndexIsRejected(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping browser test in short mode")
	}

	env := SetupSmokeTestEnv(t)
	env.InitBrowser(t)

	page := env.NewPage(t, browser.DesktopViewport())

	home := pages.NewHomePage(page, env.BaseURL)
	if err := home.Goto(); err != nil {
		t.Fatalf("Failed to open home page: %v", err)
	}

	err := home.Header.ClickMenuItem(pages.MenuIndex(-1))
	if err == nil {
		t.Fatal("Expected a negative menu index to be rejected")
	}
	if !strings.Contains(err.Error(), "must be non-negative") {
		t.Errorf("Expected a non-negative index error, got: %v", err)
	}
}
