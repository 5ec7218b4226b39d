// Package i18n holds the bilingual text of the page and the helpers that pick
// a language and look strings up in it.
package i18n

import (
	"sort"
	"strings"

	"golang.org/x/text/language"
)

// Lang is a supported page language.
type Lang string

const (
	ZH Lang = "zh"
	EN Lang = "en"
)

// Key identifies a translated string, e.g. "nav.home".
type Key string

// Default is the language the page is authored in.
const Default = ZH

var matcher = language.NewMatcher([]language.Tag{language.SimplifiedChinese, language.English})

// SupportedLanguages returns all supported languages, default first.
func SupportedLanguages() []Lang {
	return []Lang{ZH, EN}
}

// ParseLang accepts a stored language code. Anything but "zh" or "en" is rejected.
func ParseLang(s string) (Lang, bool) {
	switch Lang(s) {
	case ZH, EN:
		return Lang(s), true
	default:
		return "", false
	}
}

// OtherLang returns the language the toggle switches to.
func OtherLang(lang Lang) Lang {
	if lang == ZH {
		return EN
	}
	return ZH
}

// Label is the toggle button text for a language: its code in upper case.
func Label(lang Lang) string {
	return strings.ToUpper(string(lang))
}

// Tag returns the BCP 47 tag written to <html lang>.
func Tag(lang Lang) language.Tag {
	if lang == EN {
		return language.English
	}
	return language.SimplifiedChinese
}

// Match picks a supported language from an Accept-Language header value.
// ok is false when the header names nothing usable.
func Match(acceptLanguage string) (Lang, bool) {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return "", false
	}
	_, index, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return "", false
	}
	return SupportedLanguages()[index], true
}

// Lookup returns the translation of key in lang. Missing languages and keys
// report ok=false and callers keep whatever text they already show.
func Lookup(lang Lang, key Key) (string, bool) {
	table, ok := translations[lang]
	if !ok {
		return "", false
	}
	s, ok := table[key]
	return s, ok
}

// PageTitle returns the document title for a section, falling back to the
// home title for unknown sections.
func PageTitle(lang Lang, section string) string {
	if s, ok := Lookup(lang, Key("title."+section)); ok {
		return s
	}
	s, _ := Lookup(lang, "title.home")
	return s
}

// MissingKeys lists keys defined for some language but absent from lang.
func MissingKeys(lang Lang) []Key {
	seen := make(map[Key]bool)
	for _, table := range translations {
		for k := range table {
			seen[k] = true
		}
	}
	var missing []Key
	for k := range seen {
		if _, ok := translations[lang][k]; !ok {
			missing = append(missing, k)
		}
	}
	sort.Slice(missing, func(i, j int) bool { return missing[i] < missing[j] })
	return missing
}
