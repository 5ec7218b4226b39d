package site

import (
	"bytes"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/liangshaojie/portfolio/dom"
	"github.com/liangshaojie/portfolio/timing"
	"github.com/liangshaojie/portfolio/web"
)

type fakeViewport struct {
	top      float64
	height   float64
	scrolled []float64
}

func (v *fakeViewport) ScrollTop() float64 { return v.top }
func (v *fakeViewport) Height() float64    { return v.height }
func (v *fakeViewport) ScrollTo(top float64, _ bool) {
	v.scrolled = append(v.scrolled, top)
	v.top = top
}

type layoutFunc func(*dom.Element) (Extent, bool)

func (f layoutFunc) Extent(el *dom.Element) (Extent, bool) { return f(el) }

// stackedSections lays the five sections out back to back, each height tall.
func stackedSections(height float64) layoutFunc {
	return func(el *dom.Element) (Extent, bool) {
		idx := SectionIndex(el.ID())
		if idx < 0 {
			return Extent{}, false
		}
		return Extent{Top: float64(idx) * height, Height: height}, true
	}
}

type fixture struct {
	site     *Website
	doc      *dom.Document
	sched    *timing.Manual
	viewport *fakeViewport
}

func newFixture(t *testing.T, opts Options) *fixture {
	t.Helper()
	return newFixtureFromMarkup(t, web.Index, opts)
}

func newFixtureFromMarkup(t *testing.T, markup []byte, opts Options) *fixture {
	t.Helper()
	doc, err := dom.ParseBytes(markup)
	require.NoError(t, err)

	f := &fixture{doc: doc, sched: timing.NewManual(), viewport: &fakeViewport{height: 600}}
	if opts.Scheduler == nil {
		opts.Scheduler = f.sched
	}
	if opts.Viewport == nil {
		opts.Viewport = f.viewport
	}
	if opts.Layout == nil {
		opts.Layout = stackedSections(800)
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	f.site = New(doc, opts)
	f.site.Init()
	return f
}

func (f *fixture) render(t *testing.T) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, f.site.Render(&buf))
	return buf.String()
}

func (f *fixture) field(name string) *dom.Element {
	return f.doc.ByID("contactForm").First(dom.AttrEquals("name", name))
}

func (f *fixture) fill(name, email, subject, message string) {
	f.site.Inspect(func(*dom.Document) {
		f.field("name").SetValue(name)
		f.field("email").SetValue(email)
		f.field("subject").SetValue(subject)
		f.field("message").SetValue(message)
	})
}

func (f *fixture) notifications() []*dom.Element {
	var out []*dom.Element
	f.site.Inspect(func(doc *dom.Document) {
		out = doc.Query(dom.HasClass("notification"))
	})
	return out
}

func activeLinks(doc *dom.Document, class string) []*dom.Element {
	return doc.Query(dom.And(dom.HasClass(class), dom.HasClass("active")))
}
