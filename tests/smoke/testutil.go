// Package smoke contains the Playwright smoke suite for the marketing site.
//
// Every spec runs against one shared environment. By default the suite is
// hermetic: it serves the embedded fixture site from an httptest server.
// Setting CREAI_BASE_URL points the same specs at a live deployment.
package smoke

import (
	"log/slog"
	"net/http/httptest"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/playwright-community/playwright-go"

	"github.com/cmblandon/creai/internal/browser"
	"github.com/cmblandon/creai/internal/config"
	"github.com/cmblandon/creai/internal/logutil"
	"github.com/cmblandon/creai/internal/obs"
	"github.com/cmblandon/creai/internal/pages"
)

// smokeMaxTimeout caps navigation and action waits for hermetic runs, where
// everything is served from localhost. Live runs keep the configured values.
const smokeMaxTimeout = 5 * time.Second

var smokeFixtureMu sync.Mutex
var smokeSharedFixture *SmokeTestEnv

// SmokeTestEnv is the shared environment for all smoke tests. Hermetic runs
// own the httptest server behind BaseURL; live runs only hold the target URL.
type SmokeTestEnv struct {
	Config   *config.Config
	BaseURL  string
	Hermetic bool

	server *httptest.Server

	session   *browser.Session
	sessionMu sync.Mutex

	log *slog.Logger
}

// SetupSmokeTestEnv returns the shared suite environment, creating it on
// first use.
func SetupSmokeTestEnv(t *testing.T) *SmokeTestEnv {
	t.Helper()

	smokeFixtureMu.Lock()
	defer smokeFixtureMu.Unlock()

	if smokeSharedFixture != nil {
		return smokeSharedFixture
	}

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Failed to load suite configuration: %v", err)
	}

	env := &SmokeTestEnv{
		Config:  cfg,
		BaseURL: cfg.BaseURL,
		log:     obs.Pkg("smoke").With("run_id", obs.NewRunID()),
	}

	if os.Getenv("CREAI_BASE_URL") == "" {
		env.server = httptest.NewServer(obs.AccessLogMiddleware("fixture", newFixtureHandler()))
		env.BaseURL = env.server.URL
		env.Hermetic = true
		if cfg.NavTimeout > smokeMaxTimeout {
			cfg.NavTimeout = smokeMaxTimeout
		}
		if cfg.ActionTimeout > smokeMaxTimeout {
			cfg.ActionTimeout = smokeMaxTimeout
		}
	}

	env.log.Info("smoke environment ready", "base_url", env.BaseURL, "hermetic", env.Hermetic)

	smokeSharedFixture = env
	return env
}

// =============================================================================
// Browser lifecycle helpers
// =============================================================================

// InitBrowser launches Chromium through the shared session. Skips the test
// when Playwright is not available on the host.
func (env *SmokeTestEnv) InitBrowser(t *testing.T) {
	t.Helper()

	env.sessionMu.Lock()
	defer env.sessionMu.Unlock()

	if env.session != nil {
		return
	}

	session, err := browser.Launch(env.Config.LaunchOptions())
	if err != nil {
		t.Skip("Playwright not available:", err)
	}
	env.session = session
}

// NewPage opens a page in a fresh browser context sized to the viewport.
// The context is closed when the test finishes.
func (env *SmokeTestEnv) NewPage(t *testing.T, v browser.Viewport) playwright.Page {
	t.Helper()

	page, err := env.session.NewPage(v)
	if err != nil {
		t.Fatalf("could not create page: %v", err)
	}
	t.Cleanup(func() {
		if err := browser.ClosePage(page); err != nil {
			t.Logf("failed to close page context: %v", err)
		}
	})
	return page
}

// Viewports returns the configured viewport matrix for spec loops.
func (env *SmokeTestEnv) Viewports() []browser.Viewport {
	return env.Config.Viewports
}

// skipUnlessHermetic skips specs whose assertions depend on fixture content.
func skipUnlessHermetic(t *testing.T, env *SmokeTestEnv) {
	t.Helper()

	if !env.Hermetic {
		t.Skip("assertion depends on the fixture site; skipped for live targets")
	}
}

// =============================================================================
// Navigation and wait helpers
// =============================================================================

// WaitForURLContains waits until the page URL matches **/<fragment>** and
// fails the test with diagnostics otherwise.
func WaitForURLContains(t *testing.T, page playwright.Page, fragment string) {
	t.Helper()

	if err := page.WaitForURL("**/" + fragment + "**"); err != nil {
		t.Logf("Current URL: %s", page.URL())
		t.Fatalf("Failed to wait for URL containing %q: %v", fragment, err)
	}
	if !strings.Contains(page.URL(), fragment) {
		t.Fatalf("Expected URL to contain %q, got: %s", fragment, page.URL())
	}
}

// WaitForDescriptor waits for the element to become visible and returns its
// first-match locator.
func WaitForDescriptor(t *testing.T, page playwright.Page, d pages.Descriptor) playwright.Locator {
	t.Helper()

	first := d.Locator(page).First()
	err := first.WaitFor(playwright.LocatorWaitForOptions{
		State: playwright.WaitForSelectorStateVisible,
	})
	if err != nil {
		title, _ := page.Title()
		content, _ := page.Content()
		t.Logf("Current URL: %s", page.URL())
		t.Logf("Current title: %s", title)
		t.Logf("Content preview: %s", logutil.TruncateForLog(content, 500))
		t.Fatalf("Failed to wait for %s: %v", d, err)
	}
	return first
}

// =============================================================================
// Suite lifecycle
// =============================================================================

func cleanupSharedSmokeEnv() {
	smokeFixtureMu.Lock()
	defer smokeFixtureMu.Unlock()

	if smokeSharedFixture == nil {
		return
	}
	if smokeSharedFixture.session != nil {
		_ = smokeSharedFixture.session.Close()
	}
	if smokeSharedFixture.server != nil {
		smokeSharedFixture.server.Close()
	}
	smokeSharedFixture = nil
}

func TestMain(m *testing.M) {
	code := m.Run()
	cleanupSharedSmokeEnv()
	os.Exit(code)
}
