package site

import (
	"strings"

	"github.com/liangshaojie/portfolio/dom"
	"github.com/liangshaojie/portfolio/i18n"
)

var navLinks = dom.HasClass("nav-link", "mobile-nav-link")

// ScrollToSection scrolls the named section to just below the navbar and
// makes it current. Unknown names and sections missing from the page are
// ignored.
func (w *Website) ScrollToSection(name string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.scrollToSection(name)
}

func (w *Website) scrollToSection(name string) {
	idx := SectionIndex(name)
	if idx < 0 {
		return
	}
	section := w.doc.ByID(name)
	if section == nil {
		return
	}

	if w.viewport != nil && w.layout != nil {
		if ext, ok := w.layout.Extent(section); ok {
			w.viewport.ScrollTo(ext.Top-NavbarHeight, true)
		}
	}

	w.currentSection = idx
	w.updateActiveNavigation()
	w.closeMobileMenu()
}

// UpdateNavigationOnScroll makes the section under the viewport centre
// current. The first section in page order containing the centre wins; with
// no match the first section is used.
func (w *Website) UpdateNavigationOnScroll() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.updateNavigationOnScroll()
}

func (w *Website) updateNavigationOnScroll() {
	if w.viewport == nil || w.layout == nil {
		return
	}
	center := w.viewport.ScrollTop() + w.viewport.Height()/2

	idx := 0
	for i, s := range Sections {
		el := w.doc.ByID(string(s))
		if el == nil {
			continue
		}
		if ext, ok := w.layout.Extent(el); ok && ext.Contains(center) {
			idx = i
			break
		}
	}

	if idx != w.currentSection {
		w.currentSection = idx
		w.updateActiveNavigation()
	}
}

// HandleScroll reacts to the content area scrolling.
func (w *Website) HandleScroll() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.viewport == nil {
		return
	}
	w.doc.First(dom.Tag("nav")).SetClass("scrolled", w.viewport.ScrollTop() > ScrolledThreshold)
	w.updateNavigationOnScroll()
	w.revealVisible()
}

// HandleResize re-syncs the navigation after the window changes size.
func (w *Website) HandleResize() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.updateActiveNavigation()
}

func (w *Website) updateActiveNavigation() {
	current := string(Sections[w.currentSection])
	for _, link := range w.doc.Query(navLinks) {
		link.RemoveClass("active")
		if href := link.Attr("href"); strings.HasPrefix(href, "#") && href[1:] == current {
			link.AddClass("active")
		}
	}
	w.doc.SetTitle(i18n.PageTitle(w.lang, current))
}

// ToggleMobileMenu opens or closes the mobile menu. Both the menu and its
// button must be on the page.
func (w *Website) ToggleMobileMenu() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.toggleMobileMenu()
}

func (w *Website) toggleMobileMenu() {
	menu := w.doc.ByID("mobileMenu")
	if menu == nil || w.doc.ByID("mobileMenuBtn") == nil {
		return
	}
	menu.ToggleClass("hidden")
}

func (w *Website) CloseMobileMenu() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.closeMobileMenu()
}

func (w *Website) closeMobileMenu() {
	w.doc.ByID("mobileMenu").AddClass("hidden")
}
