// Fixture site served for hermetic smoke runs.
//
// When CREAI_BASE_URL is not set, the suite starts an httptest server with
// this self-contained replica of the marketing site. The markup mirrors the
// selectors the page objects bind to: the header logo and nav links, the
// responsive menu toggle with its drawer, the CookieScript consent banner,
// and the content the visibility probes target.
package smoke

import (
	"bytes"
	"fmt"
	"html/template"
	"net/http"
)

// fixturePage is the per-route content rendered into the shared page shell.
type fixturePage struct {
	Title string
	Body  template.HTML
}

// fixtureFirstMenuHref is where the first header nav entry points. Index
// based menu clicks assert against it.
const fixtureFirstMenuHref = "/about-us"

var fixtureRoutes = map[string]fixturePage{
	"/": {
		Title: "CreAI | Applied AI Solutions",
		Body: `<section class="hero">
	<h1>AI that moves your business forward</h1>
	<p>We design and ship applied AI products for enterprises across Latin America.</p>
	<a class="btn-contact" href="/contact">Get in touch</a>
</section>
<section class="intro">
	<p>From first pilot to production rollout, browse our <a href="/success-stories">Success stories</a> to see the outcomes.</p>
</section>`,
	},
	"/about-us": {
		Title: "About us | CreAI",
		Body: `<h1>About us</h1>
<p>CreAI pairs senior engineers with industry experts to take AI initiatives from idea to production.</p>`,
	},
	"/services": {
		Title: "Services | CreAI",
		Body: `<h1>Services</h1>
<ul>
	<li>Machine learning strategy</li>
	<li>Generative AI integrations</li>
	<li>Data platform engineering</li>
</ul>`,
	},
	"/success-stories": {
		Title: "Success stories | CreAI",
		Body: `<h1>Success stories</h1>
<div class="story-card">
	<h2>Retail demand forecasting</h2>
	<p>A regional retailer cut stockouts by 31% with our forecasting platform.</p>
</div>
<div class="story-card">
	<h2>Document intelligence for banking</h2>
	<p>Loan document processing time dropped from days to minutes.</p>
</div>
<div class="story-card">
	<h2>Conversational support at scale</h2>
	<p>An airline now resolves most support chats without a human agent.</p>
</div>`,
	},
	"/blog": {
		Title: "Blog | CreAI",
		Body: `<h1>Blog</h1>
<p>Engineering notes and case write-ups from the CreAI team.</p>`,
	},
	"/contact": {
		Title: "Contact us | CreAI",
		Body: `<h1>Contact us</h1>
<p>Tell us about your project and we will get back to you within two business days.</p>`,
	},
	// Fixture-only route. Emits a console error on load so the recorder
	// tests have something to capture.
	"/diagnostics": {
		Title: "Diagnostics | CreAI",
		Body: `<h1>Diagnostics</h1>
<p>This route exists only on the fixture site.</p>
<script>console.error('fixture diagnostic failure');</script>`,
	},
}

// fixtureShell is the shared document shell. The media query collapses the
// header nav into a drawer below 769px CSS pixels, which is what makes the
// menu toggle probe meaningful across the viewport matrix. The [hidden]
// rule must win over .consent-banner's display:flex or the banner would
// never hide.
const fixtureShell = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
<style>
	* { box-sizing: border-box; }
	body { margin: 0; font-family: system-ui, sans-serif; color: #1a1a2e; }
	[hidden] { display: none !important; }
	header { display: flex; align-items: center; justify-content: space-between; padding: 0.75rem 1.5rem; border-bottom: 1px solid #e5e5ef; }
	.site-logo { font-weight: 700; font-size: 1.25rem; color: inherit; text-decoration: none; }
	header nav { display: flex; gap: 1.25rem; }
	header nav a { color: inherit; text-decoration: none; }
	.menu-toggle { display: none; font-size: 1.25rem; background: none; border: 1px solid #1a1a2e; border-radius: 4px; padding: 0.35rem 0.6rem; }
	@media (max-width: 768px) {
		.menu-toggle { display: block; }
		header nav { display: none; }
		header nav.open { display: flex; flex-direction: column; gap: 0.75rem; position: absolute; top: 3.25rem; right: 1rem; background: #fff; border: 1px solid #e5e5ef; border-radius: 4px; padding: 1rem; }
	}
	main { padding: 2rem 1.5rem; }
	.hero h1 { font-size: 2rem; margin: 0 0 0.75rem; }
	.btn-contact { display: inline-block; margin-top: 1rem; padding: 0.6rem 1.2rem; border: 1px solid #1a1a2e; border-radius: 4px; color: inherit; text-decoration: none; }
	.story-card { border: 1px solid #e5e5ef; border-radius: 4px; padding: 1rem 1.25rem; margin: 0.75rem 0; }
	.consent-banner { position: fixed; bottom: 0; left: 0; right: 0; display: flex; align-items: center; justify-content: space-between; gap: 1rem; padding: 0.9rem 1.5rem; background: #1a1a2e; color: #fff; }
	.consent-banner button { padding: 0.5rem 1rem; border: none; border-radius: 4px; }
</style>
</head>
<body>
<header>
	<a class="site-logo" href="/">CreAI</a>
	<nav aria-label="Main">
		<a href="/about-us">About us</a>
		<a href="/services">Services</a>
		<a href="/success-stories">Success stories</a>
		<a href="/blog">Blog</a>
		<a href="/contact">Contact us</a>
	</nav>
	<button class="menu-toggle" type="button" aria-label="Open menu">&#9776;</button>
</header>
<main>
{{.Body}}
</main>
<div id="cookiescript_injected" class="consent-banner" hidden>
	<span>We use cookies to analyze traffic and improve your experience.</span>
	<button id="cookiescript_accept" type="button">Accept all</button>
</div>
<script>
(function () {
	var toggle = document.querySelector('.menu-toggle');
	var nav = document.querySelector('header nav');
	toggle.addEventListener('click', function () {
		nav.classList.toggle('open');
	});

	var banner = document.getElementById('cookiescript_injected');
	if (document.cookie.indexOf('CookieScriptConsent=') === -1) {
		banner.hidden = false;
	}
	document.getElementById('cookiescript_accept').addEventListener('click', function () {
		document.cookie = 'CookieScriptConsent=accept; path=/; max-age=31536000';
		banner.hidden = true;
	});
})();
</script>
</body>
</html>
`

var fixtureTmpl = template.Must(template.New("fixture").Parse(fixtureShell))

// newFixtureHandler serves the fixture routes. Unknown paths 404 like a
// static marketing host would.
func newFixtureHandler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		page, ok := fixtureRoutes[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := fixtureTmpl.Execute(w, page); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
	return mux
}

// renderFixturePage renders a route to a string for static markup checks.
func renderFixturePage(path string) (string, error) {
	page, ok := fixtureRoutes[path]
	if !ok {
		return "", fmt.Errorf("no fixture route for %s", path)
	}
	var buf bytes.Buffer
	if err := fixtureTmpl.Execute(&buf, page); err != nil {
		return "", fmt.Errorf("failed to render fixture page %s: %w", path, err)
	}
	return buf.String(), nil
}
