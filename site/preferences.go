package site

import (
	"github.com/liangshaojie/portfolio/dom"
	"github.com/liangshaojie/portfolio/i18n"
	"github.com/liangshaojie/portfolio/prefs"
)

const (
	sunIcon  = `<path d="M12 3v1m0 16v1m9-9h-1M4 12H3m15.364 6.364l-.707-.707M6.343 6.343l-.707-.707m12.728 0l-.707.707M6.343 17.657l-.707.707M16 12a4 4 0 11-8 0 4 4 0 018 0z"/>`
	moonIcon = `<path d="M17.293 13.293A8 8 0 016.707 2.707a8.001 8.001 0 1010.586 10.586z"/>`
)

func (w *Website) loadPreferences() {
	stored, err := prefs.Read(w.store)
	if err != nil {
		w.logger.Warn("reading preferences", "error", err)
	}

	if stored.Theme != "" {
		w.dark = stored.Theme == prefs.Dark
	} else {
		w.dark = w.prefersDark()
	}
	w.applyTheme()

	w.lang = w.defaultLang
	if stored.Language != "" {
		w.lang = stored.Language
	}
	w.updateLanguage()
}

// ToggleTheme switches between light and dark and persists the choice.
func (w *Website) ToggleTheme() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.toggleTheme()
}

func (w *Website) toggleTheme() {
	w.dark = !w.dark
	w.applyTheme()
	w.persist(prefs.KeyTheme, string(prefs.ThemeFor(w.dark)))
}

func (w *Website) applyTheme() {
	w.doc.Body().SetClass("dark", w.dark)

	icon := moonIcon
	if w.dark {
		icon = sunIcon
	}
	svg := w.doc.ByID("themeToggle").First(dom.Tag("svg"))
	if err := svg.SetInnerHTML(icon); err != nil {
		w.logger.Error("swapping theme icon", "error", err)
	}
}

// ToggleLanguage switches between Chinese and English, re-renders the
// translated text and persists the choice.
func (w *Website) ToggleLanguage() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.toggleLanguage()
}

func (w *Website) toggleLanguage() {
	w.lang = i18n.OtherLang(w.lang)
	w.updateLanguage()
	w.persist(prefs.KeyLanguage, string(w.lang))
}

// GetTranslation looks key up in the active language.
func (w *Website) GetTranslation(key i18n.Key) (string, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return i18n.Lookup(w.lang, key)
}

func (w *Website) updateLanguage() {
	for _, el := range w.doc.Query(dom.HasAttr("data-i18n")) {
		text, ok := i18n.Lookup(w.lang, i18n.Key(el.Attr("data-i18n")))
		if !ok {
			continue
		}
		switch {
		case el.Tag() == "input" && el.Attr("type") != "submit", el.Tag() == "textarea":
			el.SetAttr("placeholder", text)
		default:
			el.SetText(text)
		}
	}

	w.doc.ByID("langToggle").First(dom.Tag("span")).SetText(i18n.Label(w.lang))
	w.doc.Root().SetAttr("lang", i18n.Tag(w.lang).String())
	w.doc.SetTitle(i18n.PageTitle(w.lang, string(Sections[w.currentSection])))
}

func (w *Website) persist(key, value string) {
	if err := w.store.Set(key, value); err != nil {
		w.logger.Error("saving preference", "key", key, "error", err)
	}
}
