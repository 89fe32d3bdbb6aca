package pages

import (
	"fmt"

	"github.com/playwright-community/playwright-go"
)

// SuccessStoriesPage is the page object for the case-studies listing page.
type SuccessStoriesPage struct {
	*Base
	Header   *Header
	elements map[string]Descriptor
}

// NewSuccessStoriesPage binds a success-stories page object to a live page handle.
func NewSuccessStoriesPage(page playwright.Page, baseURL string) *SuccessStoriesPage {
	return &SuccessStoriesPage{
		Base:     NewBase(page, baseURL, "/success-stories"),
		Header:   NewHeader(page, DefaultHeaderSelectors()),
		elements: StoriesElements(),
	}
}

// IsHeadingVisible reports whether the page heading is visible.
func (p *SuccessStoriesPage) IsHeadingVisible() (bool, error) {
	return p.IsVisible(p.elements[ElemStoriesHeading])
}

// StoryCardCount returns the number of story cards currently in the DOM.
func (p *SuccessStoriesPage) StoryCardCount() (int, error) {
	count, err := p.elements[ElemStoryCard].Locator(p.Page()).Count()
	if err != nil {
		return 0, fmt.Errorf("failed to count story cards: %w", err)
	}
	return count, nil
}
