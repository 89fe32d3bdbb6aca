package pages

import (
	"fmt"
	"log/slog"
	"regexp"

	"github.com/playwright-community/playwright-go"

	"github.com/cmblandon/creai/internal/obs"
)

// MenuItem identifies a navigation menu entry either by visible text or by
// zero-based position in the menu-items collection.
type MenuItem struct {
	text    string
	index   int
	byIndex bool
}

// MenuText addresses a menu item by case-sensitive substring of its
// accessible name.
func MenuText(text string) MenuItem {
	return MenuItem{text: text}
}

// MenuIndex addresses a menu item by zero-based position.
func MenuIndex(index int) MenuItem {
	return MenuItem{index: index, byIndex: true}
}

// ByIndex reports whether the item addresses by position.
func (m MenuItem) ByIndex() bool { return m.byIndex }

// Text returns the text payload; empty for index items.
func (m MenuItem) Text() string { return m.text }

// Index returns the position payload; zero for text items.
func (m MenuItem) Index() int { return m.index }

func (m MenuItem) String() string {
	if m.byIndex {
		return fmt.Sprintf("#%d", m.index)
	}
	return fmt.Sprintf("%q", m.text)
}

// Header drives the responsive navigation menu: inline links on desktop, a
// drawer behind a hamburger toggle on mobile. Viewport mode is derived by
// probing the toggle on every call, never stored.
type Header struct {
	page playwright.Page
	sel  HeaderSelectors
	log  *slog.Logger
}

// NewHeader binds the header component to a live page handle.
func NewHeader(page playwright.Page, sel HeaderSelectors) *Header {
	return &Header{
		page: page,
		sel:  sel,
		log:  obs.Pkg("pages"),
	}
}

// MenuToggleVisible reports whether the mobile menu toggle is currently
// visible. Absence is false, not an error.
func (h *Header) MenuToggleVisible() (bool, error) {
	visible, err := h.sel.MenuToggle.Locator(h.page).First().IsVisible()
	if err != nil {
		return false, fmt.Errorf("failed to probe menu toggle: %w", err)
	}
	return visible, nil
}

// ClickMenuItem opens the mobile drawer when a menu toggle is visible, then
// clicks the addressed menu item. Text addressing finds the first link in
// the navigation region whose accessible name contains the text and waits
// until it is visible; index addressing clicks the Nth collection element
// directly. A wait that exceeds the page's action timeout propagates.
func (h *Header) ClickMenuItem(item MenuItem) error {
	if err := h.openDrawerIfCollapsed(); err != nil {
		return err
	}

	if item.ByIndex() {
		if item.Index() < 0 {
			return fmt.Errorf("menu index must be non-negative, got %d", item.Index())
		}
		target := h.sel.MenuItems.Locator(h.page).Nth(item.Index())
		if err := target.Click(); err != nil {
			return fmt.Errorf("failed to click menu item %s: %w", item, err)
		}
		h.log.Debug("menu item clicked", "item", item.String())
		return nil
	}

	// Case-sensitive substring on the accessible name. The quoted pattern
	// keeps user text literal; plain string names would match
	// case-insensitively.
	pattern := regexp.MustCompile(regexp.QuoteMeta(item.Text()))
	target := h.page.GetByRole(*playwright.AriaRoleNavigation).
		GetByRole(*playwright.AriaRoleLink, playwright.LocatorGetByRoleOptions{Name: pattern}).
		First()

	if err := target.WaitFor(playwright.LocatorWaitForOptions{
		State: playwright.WaitForSelectorStateVisible,
	}); err != nil {
		return fmt.Errorf("menu item %s never became visible: %w", item, err)
	}
	if err := target.Click(); err != nil {
		return fmt.Errorf("failed to click menu item %s: %w", item, err)
	}
	h.log.Debug("menu item clicked", "item", item.String())
	return nil
}

// openDrawerIfCollapsed probes the menu toggle and clicks it when visible.
// Runs on every ClickMenuItem regardless of addressing mode.
func (h *Header) openDrawerIfCollapsed() error {
	toggle := h.sel.MenuToggle.Locator(h.page).First()

	visible, err := toggle.IsVisible()
	if err != nil {
		return fmt.Errorf("failed to probe menu toggle: %w", err)
	}
	if !visible {
		return nil
	}
	if err := toggle.Click(); err != nil {
		return fmt.Errorf("failed to open navigation drawer: %w", err)
	}
	h.log.Debug("navigation drawer opened")
	return nil
}
