package site

import (
	"context"
	"strings"

	"github.com/liangshaojie/portfolio/dom"
)

// EventType names the DOM events the controller listens to.
type EventType int

const (
	Click EventType = iota
	Scroll
	Resize
	Blur
	Submit
)

func (t EventType) String() string {
	switch t {
	case Click:
		return "click"
	case Scroll:
		return "scroll"
	case Resize:
		return "resize"
	case Blur:
		return "blur"
	case Submit:
		return "submit"
	default:
		return "unknown"
	}
}

// Event is a DOM event delivered to the controller. Target is the element
// the event happened on; scroll and resize events need none.
type Event struct {
	Type   EventType
	Target *dom.Element
}

// Dispatch routes an event to its handler. Scroll events are throttled and
// resize events debounced; the rest run immediately. Only submit can fail.
func (w *Website) Dispatch(ctx context.Context, ev Event) error {
	switch ev.Type {
	case Click:
		w.handleClick(ev.Target)
	case Scroll:
		w.onScroll(ev)
	case Resize:
		w.onResize(ev)
	case Blur:
		if tag := ev.Target.Tag(); tag == "input" || tag == "textarea" {
			w.ValidateField(ev.Target)
		}
	case Submit:
		return w.HandleFormSubmission(ctx)
	}
	return nil
}

func (w *Website) handleClick(target *dom.Element) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if link := target.Closest(navLinks); link != nil {
		if href := link.Attr("href"); strings.HasPrefix(href, "#") {
			w.scrollToSection(href[1:])
		}
		return
	}
	if btn := target.Closest(dom.HasAttr("data-section")); btn != nil {
		w.scrollToSection(btn.Attr("data-section"))
		return
	}

	switch {
	case target.Closest(dom.HasID("mobileMenuBtn")) != nil:
		w.toggleMobileMenu()
	case target.Closest(dom.HasID("themeToggle")) != nil:
		w.toggleTheme()
	case target.Closest(dom.HasID("langToggle")) != nil:
		w.toggleLanguage()
	}
}
