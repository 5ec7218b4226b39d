package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranslations_AreSymmetric(t *testing.T) {
	for _, lang := range SupportedLanguages() {
		assert.Empty(t, MissingKeys(lang), "keys missing for %s", lang)
	}
}

func TestLookup(t *testing.T) {
	s, ok := Lookup(EN, "nav.home")
	assert.True(t, ok)
	assert.Equal(t, "Home", s)

	s, ok = Lookup(ZH, "nav.home")
	assert.True(t, ok)
	assert.Equal(t, "首页", s)

	_, ok = Lookup(EN, "does.not.exist")
	assert.False(t, ok)

	_, ok = Lookup("fr", "nav.home")
	assert.False(t, ok)
}

func TestParseLang(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want Lang
		ok   bool
	}{
		{"zh", ZH, true},
		{"en", EN, true},
		{"EN", "", false},
		{"de", "", false},
		{"", "", false},
	} {
		got, ok := ParseLang(tc.in)
		assert.Equal(t, tc.ok, ok, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
}

func TestOtherLangAndLabel(t *testing.T) {
	assert.Equal(t, EN, OtherLang(ZH))
	assert.Equal(t, ZH, OtherLang(EN))
	assert.Equal(t, "EN", Label(EN))
	assert.Equal(t, "ZH", Label(ZH))
	assert.Equal(t, "en", Tag(EN).String())
	assert.Equal(t, "zh-Hans", Tag(ZH).String())
}

func TestPageTitle(t *testing.T) {
	assert.Equal(t, "Projects - Liang Shaojie", PageTitle(EN, "projects"))
	assert.Equal(t, "联系方式 - 梁绍杰", PageTitle(ZH, "contact"))
	assert.Equal(t, PageTitle(EN, "home"), PageTitle(EN, "unknown"))
}

func TestMatch(t *testing.T) {
	lang, ok := Match("en-US,en;q=0.9")
	assert.True(t, ok)
	assert.Equal(t, EN, lang)

	lang, ok = Match("zh-CN,zh;q=0.9,en;q=0.5")
	assert.True(t, ok)
	assert.Equal(t, ZH, lang)

	_, ok = Match("")
	assert.False(t, ok)

	_, ok = Match("fr-FR")
	assert.False(t, ok)
}
