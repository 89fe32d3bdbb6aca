package pages

import (
	"strings"
	"testing"

	"github.com/playwright-community/playwright-go"
	"pgregory.net/rapid"
)

func TestCatalogues_AllDescriptorsValid(t *testing.T) {
	t.Parallel()

	catalogues := map[string]map[string]Descriptor{
		"home":    HomeElements(),
		"stories": StoriesElements(),
	}
	for name, elements := range catalogues {
		if err := ValidateElements(elements); err != nil {
			t.Fatalf("catalogue %q invalid: %v", name, err)
		}
	}

	header := DefaultHeaderSelectors()
	if err := header.MenuToggle.Validate(); err != nil {
		t.Fatalf("menu toggle descriptor invalid: %v", err)
	}
	if err := header.MenuItems.Validate(); err != nil {
		t.Fatalf("menu items descriptor invalid: %v", err)
	}
	if err := ConsentAccept().Validate(); err != nil {
		t.Fatalf("consent descriptor invalid: %v", err)
	}
}

func TestCatalogues_ExpectedElementNames(t *testing.T) {
	t.Parallel()

	home := HomeElements()
	for _, name := range []string{ElemLogo, ElemContactButton, ElemHeroHeading} {
		if _, ok := home[name]; !ok {
			t.Fatalf("home catalogue missing element %q", name)
		}
	}

	stories := StoriesElements()
	for _, name := range []string{ElemStoriesHeading, ElemStoryCard} {
		if _, ok := stories[name]; !ok {
			t.Fatalf("stories catalogue missing element %q", name)
		}
	}
}

func TestConsentAccept_TargetsVendorControl(t *testing.T) {
	t.Parallel()

	d := ConsentAccept()
	if d.CSS != "#cookiescript_accept" {
		t.Fatalf("consent descriptor mismatch: got=%q", d.CSS)
	}
}

func TestDescriptorValidate_RejectsBothSchemes(t *testing.T) {
	t.Parallel()

	d := Descriptor{CSS: "header nav a", Role: *playwright.AriaRoleLink}
	if err := d.Validate(); err == nil {
		t.Fatal("expected validation error for descriptor with both schemes")
	}
}

func TestDescriptorValidate_RejectsNeitherScheme(t *testing.T) {
	t.Parallel()

	if err := (Descriptor{}).Validate(); err == nil {
		t.Fatal("expected validation error for empty descriptor")
	}
	if err := (Descriptor{CSS: "   "}).Validate(); err == nil {
		t.Fatal("expected validation error for blank CSS descriptor")
	}
}

func TestDescriptorValidate_RejectsNameOnCSSScheme(t *testing.T) {
	t.Parallel()

	d := Descriptor{CSS: ".hero h1", Name: "hero"}
	if err := d.Validate(); err == nil {
		t.Fatal("expected validation error for CSS descriptor with name matching")
	}
}

func TestConstructors_Properties(t *testing.T) {
	t.Parallel()
	rapid.Check(t, func(t *rapid.T) {
		css := rapid.StringMatching(`[.#]?[a-z][a-z0-9 .#>-]{0,30}`).Draw(t, "css")
		if err := BySelector(css).Validate(); err != nil {
			t.Fatalf("BySelector(%q) invalid: %v", css, err)
		}

		name := rapid.StringMatching(`[A-Za-z][A-Za-z ]{0,20}`).Draw(t, "name")
		exact := rapid.Bool().Draw(t, "exact")
		d := ByRole(*playwright.AriaRoleLink, name, exact)
		if err := d.Validate(); err != nil {
			t.Fatalf("ByRole(link, %q, %t) invalid: %v", name, exact, err)
		}
		if d.Name != name || d.Exact != exact {
			t.Fatalf("ByRole payload mismatch: got=%+v", d)
		}
	})
}

func TestDescriptorString_Formats(t *testing.T) {
	t.Parallel()

	cases := []struct {
		d    Descriptor
		want string
	}{
		{BySelector("header .site-logo"), "css=header .site-logo"},
		{ByRole(*playwright.AriaRoleNavigation, "", false), "role=navigation"},
		{ByRole(*playwright.AriaRoleHeading, "Success stories", true), `role=heading name="Success stories" exact=true`},
	}
	for _, tc := range cases {
		if got := tc.d.String(); got != tc.want {
			t.Fatalf("String mismatch: got=%q want=%q", got, tc.want)
		}
	}
}

func TestValidateElements_ReportsOffendingName(t *testing.T) {
	t.Parallel()

	elements := map[string]Descriptor{
		"good": BySelector("header"),
		"bad":  {},
	}
	err := ValidateElements(elements)
	if err == nil || !strings.Contains(err.Error(), `"bad"`) {
		t.Fatalf("expected error naming the offending element, got: %v", err)
	}
}
