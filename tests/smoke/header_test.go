// Responsive header smoke specs: menu toggle visibility per viewport.
package smoke

import (
	"testing"

	"github.com/cmblandon/creai/internal/browser"
	"github.com/cmblandon/creai/internal/pages"
)

// TestSmoke_Header_MenuToggleFollowsViewport verifies the hamburger toggle
// is visible on the mobile layout and hidden on desktop.
func TestSmoke_Header_MenuToggleFollowsViewport(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping browser test in short mode")
	}

	env := SetupSmokeTestEnv(t)
	env.InitBrowser(t)

	cases := []struct {
		viewport   browser.Viewport
		wantToggle bool
	}{
		{browser.DesktopViewport(), false},
		{browser.MobileViewport(), true},
	}

	for _, tc := range cases {
		page := env.NewPage(t, tc.viewport)

		home := pages.NewHomePage(page, env.BaseURL)
		if err := home.Goto(); err != nil {
			t.Fatalf("[%s] Failed to open home page: %v", tc.viewport, err)
		}

		visible, err := home.Header.MenuToggleVisible()
		if err != nil {
			t.Fatalf("[%s] Failed to probe the menu toggle: %v", tc.viewport, err)
		}
		if visible != tc.wantToggle {
			t.Errorf("[%s] Expected menu toggle visibility %v, got %v", tc.viewport, tc.wantToggle, visible)
		}
	}
}

// TestSmoke_Header_DrawerOpensForMobileNavigation verifies a text click on
// the narrow layout opens the drawer on its own and still navigates.
func TestSmoke_Header_DrawerOpensForMobileNavigation(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping browser test in short mode")
	}

	env := SetupSmokeTestEnv(t)
	env.InitBrowser(t)

	page := env.NewPage(t, browser.MobileViewport())

	home := pages.NewHomePage(page, env.BaseURL)
	if err := home.Goto(); err != nil {
		t.Fatalf("Failed to open home page: %v", err)
	}

	visible, err := home.Header.MenuToggleVisible()
	if err != nil {
		t.Fatalf("Failed to probe the menu toggle: %v", err)
	}
	if !visible {
		t.Fatal("Expected the menu toggle to be visible on the mobile layout")
	}

	// No manual drawer handling here; the click itself must open it.
	if err := home.Header.ClickMenuItem(pages.MenuText("Contact us")); err != nil {
		t.Fatalf("Failed to click 'Contact us': %v", err)
	}

	WaitForURLContains(t, page, "contact")
}
