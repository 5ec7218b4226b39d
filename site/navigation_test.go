package site

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/liangshaojie/portfolio/dom"
	"github.com/liangshaojie/portfolio/i18n"
	"github.com/liangshaojie/portfolio/web"
)

func TestScrollToSection_EverySection(t *testing.T) {
	for i, s := range Sections {
		t.Run(string(s), func(t *testing.T) {
			f := newFixture(t, Options{})
			f.doc.ByID("mobileMenu").RemoveClass("hidden")

			f.site.ScrollToSection(string(s))

			assert.Equal(t, s, f.site.CurrentSection())
			require.Len(t, f.viewport.scrolled, 1)
			assert.Equal(t, float64(i)*800-NavbarHeight, f.viewport.scrolled[0])

			desktop := activeLinks(f.doc, "nav-link")
			mobile := activeLinks(f.doc, "mobile-nav-link")
			require.Len(t, desktop, 1)
			require.Len(t, mobile, 1)
			assert.Equal(t, "#"+string(s), desktop[0].Attr("href"))
			assert.Equal(t, "#"+string(s), mobile[0].Attr("href"))

			assert.Equal(t, i18n.PageTitle(i18n.ZH, string(s)), f.doc.Title())
			assert.True(t, f.doc.ByID("mobileMenu").HasClass("hidden"))
		})
	}
}

func TestScrollToSection_UnknownNameIsNoop(t *testing.T) {
	f := newFixture(t, Options{})
	f.site.ScrollToSection("projects")

	f.site.ScrollToSection("blog")
	f.site.ScrollToSection("contactForm")

	assert.Equal(t, Projects, f.site.CurrentSection())
	assert.Len(t, f.viewport.scrolled, 1)
}

func TestScrollToSection_MissingElementIsNoop(t *testing.T) {
	markup := strings.Replace(string(web.Index), `id="projects"`, `id="gone"`, 1)
	f := newFixtureFromMarkup(t, []byte(markup), Options{})

	f.site.ScrollToSection("projects")

	assert.Equal(t, Home, f.site.CurrentSection())
	assert.Empty(t, f.viewport.scrolled)
}

func TestUpdateNavigationOnScroll_PicksSectionUnderCentre(t *testing.T) {
	f := newFixture(t, Options{})

	for _, tc := range []struct {
		scrollTop float64
		want      Section
	}{
		{0, Home},          // centre 300
		{499, Home},        // centre 799
		{500, Education},   // centre 800 starts the next section
		{1350, Experience}, // centre 1650
		{2300, Projects},   // centre 2600
		{2900, Contact},    // centre 3200
		{10000, Home},      // past every section
	} {
		f.viewport.top = tc.scrollTop
		f.site.UpdateNavigationOnScroll()
		assert.Equal(t, tc.want, f.site.CurrentSection(), "scrollTop=%v", tc.scrollTop)

		require.Len(t, activeLinks(f.doc, "nav-link"), 1)
	}
	assert.Empty(t, f.viewport.scrolled, "tracking must not scroll")
}

func TestUpdateNavigationOnScroll_WithoutViewport(t *testing.T) {
	doc, err := dom.ParseBytes(web.Index)
	require.NoError(t, err)
	w := New(doc, Options{Layout: stackedSections(800)})
	w.Init()

	assert.NotPanics(t, func() {
		w.UpdateNavigationOnScroll()
		w.HandleScroll()
	})
	assert.Equal(t, Home, w.CurrentSection())
}

func TestHandleScroll_MarksNavbarScrolled(t *testing.T) {
	f := newFixture(t, Options{})
	nav := f.doc.First(dom.Tag("nav"))

	f.viewport.top = 100
	f.site.HandleScroll()
	assert.False(t, nav.HasClass("scrolled"))

	f.viewport.top = 101
	f.site.HandleScroll()
	assert.True(t, nav.HasClass("scrolled"))

	f.viewport.top = 0
	f.site.HandleScroll()
	assert.False(t, nav.HasClass("scrolled"))
}

func TestMobileMenu(t *testing.T) {
	f := newFixture(t, Options{})
	menu := f.doc.ByID("mobileMenu")

	f.site.ToggleMobileMenu()
	assert.False(t, menu.HasClass("hidden"))
	f.site.ToggleMobileMenu()
	assert.True(t, menu.HasClass("hidden"))

	f.site.ToggleMobileMenu()
	f.site.CloseMobileMenu()
	assert.True(t, menu.HasClass("hidden"))
}

func TestHandleResize_ResyncsNavigation(t *testing.T) {
	f := newFixture(t, Options{})
	f.site.ScrollToSection("contact")

	f.site.Inspect(func(doc *dom.Document) {
		for _, l := range doc.Query(navLinks) {
			l.RemoveClass("active")
		}
	})
	f.site.HandleResize()

	desktop := activeLinks(f.doc, "nav-link")
	require.Len(t, desktop, 1)
	assert.Equal(t, "#contact", desktop[0].Attr("href"))
}
