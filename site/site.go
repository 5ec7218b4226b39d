// Package site is the page controller of the portfolio. A Website owns the
// parsed page and applies navigation, theming, language, form and animation
// behaviour to it.
//
// All methods and all timer callbacks take the same lock, so the page sees
// one logical thread of control no matter which goroutine a timer fires on.
package site

import (
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/liangshaojie/portfolio/dom"
	"github.com/liangshaojie/portfolio/i18n"
	"github.com/liangshaojie/portfolio/mail"
	"github.com/liangshaojie/portfolio/prefs"
	"github.com/liangshaojie/portfolio/timing"
)

// Section is a navigable page section, identified by its element id.
type Section string

const (
	Home       Section = "home"
	Education  Section = "education"
	Experience Section = "experience"
	Projects   Section = "projects"
	Contact    Section = "contact"
)

// Sections lists every section in page order.
var Sections = []Section{Home, Education, Experience, Projects, Contact}

// SectionIndex returns the position of name in Sections, or -1.
func SectionIndex(name string) int {
	for i, s := range Sections {
		if string(s) == name {
			return i
		}
	}
	return -1
}

const (
	NavbarHeight      = 64.0
	ScrolledThreshold = 100.0

	ScrollThrottle = 16 * time.Millisecond
	ResizeDebounce = 250 * time.Millisecond
)

// Extent is a vertical span in content coordinates.
type Extent struct {
	Top    float64
	Height float64
}

// Contains reports whether y lies in [Top, Top+Height).
func (e Extent) Contains(y float64) bool {
	return y >= e.Top && y < e.Top+e.Height
}

// Viewport is the scrolling content area.
type Viewport interface {
	ScrollTop() float64
	Height() float64
	ScrollTo(top float64, smooth bool)
}

// Layout reports where elements sit inside the content area.
type Layout interface {
	Extent(el *dom.Element) (Extent, bool)
}

// Options configures a Website. Every field is optional.
type Options struct {
	Store     prefs.Store
	Sender    mail.Sender
	Scheduler timing.Scheduler
	Viewport  Viewport
	Layout    Layout
	Logger    *slog.Logger

	// PrefersDark reports the system colour scheme, used when no theme is stored.
	PrefersDark func() bool
	// Language is used when no language is stored. Defaults to i18n.Default.
	Language i18n.Lang
}

// Website is the application state of one rendered page.
type Website struct {
	mu sync.Mutex

	doc         *dom.Document
	store       prefs.Store
	sender      mail.Sender
	sched       timing.Scheduler
	viewport    Viewport
	layout      Layout
	logger      *slog.Logger
	prefersDark func() bool
	defaultLang i18n.Lang

	currentSection int
	lang           i18n.Lang
	dark           bool

	onScroll func(Event)
	onResize func(Event)
}

// New builds a controller around doc. Call Init before dispatching events.
func New(doc *dom.Document, opts Options) *Website {
	w := &Website{
		doc:         doc,
		store:       opts.Store,
		sender:      opts.Sender,
		sched:       opts.Scheduler,
		viewport:    opts.Viewport,
		layout:      opts.Layout,
		logger:      opts.Logger,
		prefersDark: opts.PrefersDark,
		defaultLang: opts.Language,
	}
	if w.store == nil {
		w.store = prefs.NewMemoryStore()
	}
	if w.sender == nil {
		w.sender = mail.NewSimulated()
	}
	if w.sched == nil {
		w.sched = timing.Real
	}
	if w.logger == nil {
		w.logger = slog.Default()
	}
	if w.prefersDark == nil {
		w.prefersDark = func() bool { return false }
	}
	if _, ok := i18n.ParseLang(string(w.defaultLang)); !ok {
		w.defaultLang = i18n.Default
	}
	w.lang = w.defaultLang

	w.onScroll = timing.Throttle(w.sched, ScrollThrottle, func(Event) { w.HandleScroll() })
	w.onResize = timing.Debounce(w.sched, ResizeDebounce, func(Event) { w.HandleResize() })
	return w
}

// Init loads stored preferences and applies them, then syncs the navigation
// highlight and title with the current section.
func (w *Website) Init() {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.loadPreferences()
	w.updateActiveNavigation()
}

// Start runs the cosmetic entrance effects.
func (w *Website) Start() {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.revealVisible()
	w.animateCounters()
}

func (w *Website) CurrentSection() Section {
	w.mu.Lock()
	defer w.mu.Unlock()
	return Sections[w.currentSection]
}

func (w *Website) Language() i18n.Lang {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.lang
}

func (w *Website) DarkMode() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.dark
}

// Render writes the current state of the page.
func (w *Website) Render(out io.Writer) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.doc.Render(out)
}

// Inspect runs f with exclusive access to the document.
func (w *Website) Inspect(f func(doc *dom.Document)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	f(w.doc)
}

// after schedules f under the controller lock. A panic in f is logged and
// does not take the page down.
func (w *Website) after(d time.Duration, f func()) {
	w.sched.AfterFunc(d, func() {
		w.mu.Lock()
		defer w.mu.Unlock()
		defer func() {
			if r := recover(); r != nil {
				w.logger.Error("timer callback panicked", "panic", r)
			}
		}()
		f()
	})
}
