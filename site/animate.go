package site

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/liangshaojie/portfolio/dom"
)

const (
	CounterDuration = 2 * time.Second
	CounterFrame    = 16 * time.Millisecond

	revealThreshold    = 0.1
	revealBottomMargin = 50.0
)

var revealTargets = dom.HasClass("project-card", "timeline-item", "stats-card")

// RevealVisible marks cards that have scrolled into view with animate-in.
func (w *Website) RevealVisible() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.revealVisible()
}

func (w *Website) revealVisible() {
	if w.viewport == nil || w.layout == nil {
		return
	}
	viewTop := w.viewport.ScrollTop()
	viewBottom := viewTop + w.viewport.Height() - revealBottomMargin

	for _, el := range w.doc.Query(revealTargets) {
		ext, ok := w.layout.Extent(el)
		if !ok || ext.Height <= 0 {
			continue
		}
		visible := math.Min(ext.Top+ext.Height, viewBottom) - math.Max(ext.Top, viewTop)
		if visible > 0 && visible/ext.Height >= revealThreshold {
			el.AddClass("animate-in")
		}
	}
}

// AnimateCounters counts every [data-count] element up to its target.
func (w *Website) AnimateCounters() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.animateCounters()
}

func (w *Website) animateCounters() {
	for _, el := range w.doc.Query(dom.HasAttr("data-count")) {
		target, err := strconv.Atoi(strings.TrimSpace(el.Attr("data-count")))
		if err != nil {
			w.logger.Debug("skipping counter", "value", el.Attr("data-count"))
			continue
		}
		w.countUp(el, target)
	}
}

func (w *Website) countUp(el *dom.Element, target int) {
	increment := float64(target) / float64(CounterDuration/CounterFrame)
	current := 0.0

	var step func()
	step = func() {
		current += increment
		if current < float64(target) {
			el.SetText(strconv.Itoa(int(math.Floor(current))))
			w.after(CounterFrame, step)
			return
		}
		el.SetText(strconv.Itoa(target))
	}
	step()
}
