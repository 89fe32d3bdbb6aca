package pages

import "github.com/playwright-community/playwright-go"

// HomePage is the page object for the marketing site's landing page. It is a
// read/observe facade: visibility probes plus navigation through the Header.
type HomePage struct {
	*Base
	Header   *Header
	elements map[string]Descriptor
}

// NewHomePage binds a home page object to a live page handle.
func NewHomePage(page playwright.Page, baseURL string) *HomePage {
	return &HomePage{
		Base:     NewBase(page, baseURL, "/"),
		Header:   NewHeader(page, DefaultHeaderSelectors()),
		elements: HomeElements(),
	}
}

// IsLogoVisible reports whether the header logo is visible.
func (p *HomePage) IsLogoVisible() (bool, error) {
	return p.IsVisible(p.elements[ElemLogo])
}

// IsContactButtonVisible reports whether the contact call-to-action is visible.
func (p *HomePage) IsContactButtonVisible() (bool, error) {
	return p.IsVisible(p.elements[ElemContactButton])
}

// IsHeroHeadingVisible reports whether the hero heading is visible.
func (p *HomePage) IsHeroHeadingVisible() (bool, error) {
	return p.IsVisible(p.elements[ElemHeroHeading])
}
