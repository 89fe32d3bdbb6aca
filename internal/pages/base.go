package pages

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/playwright-community/playwright-go"

	"github.com/cmblandon/creai/internal/obs"
)

// ConsentOutcome reports what consent dismissal did during navigation.
type ConsentOutcome int

const (
	// ConsentAccepted means the accept control was visible and got clicked.
	ConsentAccepted ConsentOutcome = iota
	// ConsentAbsent means no banner was present, typically a returning session.
	ConsentAbsent
	// ConsentFailed means the probe or click failed and was swallowed.
	ConsentFailed
)

func (o ConsentOutcome) String() string {
	switch o {
	case ConsentAccepted:
		return "accepted"
	case ConsentAbsent:
		return "absent"
	case ConsentFailed:
		return "failed"
	default:
		return fmt.Sprintf("unknown(%d)", int(o))
	}
}

// Base wraps a page handle with navigation, consent dismissal, load-state
// waiting, and visibility probing. Page objects compose a Base rather than
// extending it; the page handle is shared, never owned.
type Base struct {
	page    playwright.Page
	baseURL string
	path    string
	consent Descriptor
	log     *slog.Logger
}

// NewBase binds a route path to a live page handle. Empty path means "/".
func NewBase(page playwright.Page, baseURL, path string) *Base {
	if path == "" {
		path = "/"
	}
	return &Base{
		page:    page,
		baseURL: baseURL,
		path:    path,
		consent: ConsentAccept(),
		log:     obs.Pkg("pages"),
	}
}

// Page returns the underlying driver handle.
func (b *Base) Page() playwright.Page { return b.page }

// Path returns the route path the page was constructed with.
func (b *Base) Path() string { return b.path }

// URL returns the page's current URL.
func (b *Base) URL() string { return b.page.URL() }

// Goto navigates to the page's path, waits for DOM readiness, then makes a
// best-effort attempt to dismiss the consent banner. Navigation failures
// propagate; consent failures never do.
func (b *Base) Goto() error {
	target := joinURL(b.baseURL, b.path)
	if _, err := b.page.Goto(target, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateDomcontentloaded,
	}); err != nil {
		return fmt.Errorf("failed to navigate to %s: %w", target, err)
	}

	outcome := b.DismissConsent()
	b.log.Debug("page opened", "url", target, "consent", outcome.String())
	return nil
}

// DismissConsent probes for the consent accept control and clicks it when
// visible. Best effort: every failure is logged and swallowed, including
// driver errors.
func (b *Base) DismissConsent() ConsentOutcome {
	accept := b.consent.Locator(b.page).First()

	visible, err := accept.IsVisible()
	if err != nil {
		b.log.Warn("consent probe failed", "path", b.path, "error", err)
		return ConsentFailed
	}
	if !visible {
		return ConsentAbsent
	}
	if err := accept.Click(); err != nil {
		b.log.Warn("consent click failed", "path", b.path, "error", err)
		return ConsentFailed
	}
	b.log.Debug("consent banner accepted", "path", b.path)
	return ConsentAccepted
}

// Title returns the current document title.
func (b *Base) Title() (string, error) {
	title, err := b.page.Title()
	if err != nil {
		return "", fmt.Errorf("failed to read title: %w", err)
	}
	return title, nil
}

// WaitForLoadState suspends until the page reaches the given milestone.
// Defaults to "load" when no state is passed; pass-through to the driver.
func (b *Base) WaitForLoadState(state ...*playwright.LoadState) error {
	opts := playwright.PageWaitForLoadStateOptions{State: playwright.LoadStateLoad}
	if len(state) > 0 {
		opts.State = state[0]
	}
	if err := b.page.WaitForLoadState(opts); err != nil {
		return fmt.Errorf("failed to wait for load state: %w", err)
	}
	return nil
}

// IsVisible reports whether the descriptor's first matching element is
// present and visible. Absence is false, not an error; driver-level failures
// propagate.
func (b *Base) IsVisible(d Descriptor) (bool, error) {
	visible, err := d.Locator(b.page).First().IsVisible()
	if err != nil {
		return false, fmt.Errorf("failed to probe %s: %w", d, err)
	}
	return visible, nil
}

// joinURL joins a base origin and a path with exactly one slash between them.
func joinURL(baseURL, path string) string {
	return strings.TrimRight(baseURL, "/") + "/" + strings.TrimLeft(path, "/")
}
