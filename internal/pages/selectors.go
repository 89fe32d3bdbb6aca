// Package pages implements the page-object layer for the creai marketing
// site: locator descriptors, a navigable base page with consent dismissal,
// the responsive header component, and per-route page objects with boolean
// visibility probes.
package pages

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/playwright-community/playwright-go"
)

// Semantic element names shared by the page catalogues.
const (
	ElemLogo           = "logo"
	ElemContactButton  = "contact-button"
	ElemHeroHeading    = "hero-heading"
	ElemStoriesHeading = "stories-heading"
	ElemStoryCard      = "story-card"
)

// consentAcceptID targets the accept control of the CookieScript consent
// banner used by the production site.
const consentAcceptID = "#cookiescript_accept"

// Descriptor declares how to find an element: a raw CSS selector or a
// role/accessible-name pair. Exactly one addressing scheme must be set.
// Descriptors are plain data resolved against the live page on every query,
// never cached element handles.
type Descriptor struct {
	CSS   string
	Role  playwright.AriaRole
	Name  string // accessible name; substring match unless Exact
	Exact bool
}

// BySelector returns a descriptor addressing elements by CSS selector.
func BySelector(css string) Descriptor {
	return Descriptor{CSS: css}
}

// ByRole returns a descriptor addressing elements by ARIA role and
// accessible name.
func ByRole(role playwright.AriaRole, name string, exact bool) Descriptor {
	return Descriptor{Role: role, Name: name, Exact: exact}
}

// Validate enforces the one-addressing-scheme invariant.
func (d Descriptor) Validate() error {
	hasCSS := strings.TrimSpace(d.CSS) != ""
	hasRole := d.Role != ""

	switch {
	case hasCSS && hasRole:
		return fmt.Errorf("descriptor sets both a CSS selector (%q) and a role (%q)", d.CSS, d.Role)
	case !hasCSS && !hasRole:
		return errors.New("descriptor sets neither a CSS selector nor a role")
	case hasCSS && (d.Name != "" || d.Exact):
		return fmt.Errorf("descriptor %q mixes name matching into the CSS scheme", d.CSS)
	}
	return nil
}

// Locator resolves the descriptor against the page. Resolution happens at
// query time; the returned locator may match zero or more elements.
func (d Descriptor) Locator(page playwright.Page) playwright.Locator {
	if d.CSS != "" {
		return page.Locator(d.CSS)
	}
	opts := playwright.PageGetByRoleOptions{}
	if d.Name != "" {
		opts.Name = d.Name
		opts.Exact = playwright.Bool(d.Exact)
	}
	return page.GetByRole(d.Role, opts)
}

func (d Descriptor) String() string {
	if d.CSS != "" {
		return fmt.Sprintf("css=%s", d.CSS)
	}
	if d.Name == "" {
		return fmt.Sprintf("role=%s", d.Role)
	}
	return fmt.Sprintf("role=%s name=%q exact=%t", d.Role, d.Name, d.Exact)
}

// ValidateElements checks every descriptor in a catalogue, reporting the
// first offending element by name.
func ValidateElements(elements map[string]Descriptor) error {
	names := make([]string, 0, len(elements))
	for name := range elements {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if err := elements[name].Validate(); err != nil {
			return fmt.Errorf("element %q: %w", name, err)
		}
	}
	return nil
}

// HeaderSelectors binds the header component to its two controls.
type HeaderSelectors struct {
	MenuToggle Descriptor // hamburger control, rendered only on narrow layouts
	MenuItems  Descriptor // full menu-items collection, scoped to the header nav
}

// DefaultHeaderSelectors returns the header catalogue for the marketing site.
func DefaultHeaderSelectors() HeaderSelectors {
	return HeaderSelectors{
		MenuToggle: BySelector("header .menu-toggle"),
		MenuItems:  BySelector("header nav a"),
	}
}

// ConsentAccept returns the descriptor for the consent accept control.
func ConsentAccept() Descriptor {
	return BySelector(consentAcceptID)
}

// HomeElements returns the named element catalogue for the landing page.
func HomeElements() map[string]Descriptor {
	return map[string]Descriptor{
		ElemLogo:          BySelector("header .site-logo"),
		ElemContactButton: ByRole(*playwright.AriaRoleLink, "Get in touch", false),
		ElemHeroHeading:   BySelector(".hero h1"),
	}
}

// StoriesElements returns the named element catalogue for the success-stories page.
func StoriesElements() map[string]Descriptor {
	return map[string]Descriptor{
		ElemStoriesHeading: ByRole(*playwright.AriaRoleHeading, "Success stories", true),
		ElemStoryCard:      BySelector(".story-card"),
	}
}
