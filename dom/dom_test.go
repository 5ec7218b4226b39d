package dom

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const page = `<!DOCTYPE html>
<html lang="zh-CN">
<head><title>Old</title></head>
<body class="base">
  <nav><a href="#home" class="nav-link active">Home</a><a href="#contact" class="nav-link">Contact</a></nav>
  <button id="themeToggle"><svg viewBox="0 0 24 24"><path d="M1 1"/></svg></button>
  <form id="contactForm">
    <div><input name="name" value="Al" required><span class="error-message hidden"></span></div>
    <div><textarea name="message" required>hello</textarea></div>
  </form>
</body>
</html>`

func parse(t *testing.T) *Document {
	t.Helper()
	doc, err := Parse(strings.NewReader(page))
	require.NoError(t, err)
	return doc
}

func TestDocument_Lookups(t *testing.T) {
	doc := parse(t)

	assert.Equal(t, "button", doc.ByID("themeToggle").Tag())
	assert.Len(t, doc.Query(HasClass("nav-link")), 2)
	assert.Equal(t, "Old", doc.Title())
	assert.Equal(t, "zh-CN", doc.Root().Attr("lang"))
	assert.True(t, doc.Body().HasClass("base"))
}

func TestDocument_MissingElementsAreInert(t *testing.T) {
	doc := parse(t)
	missing := doc.ByID("nope")
	require.Nil(t, missing)

	assert.NotPanics(t, func() {
		missing.AddClass("x")
		missing.SetText("x")
		missing.SetAttr("a", "b")
		missing.Remove()
		_ = missing.SetInnerHTML("<b>x</b>")
		assert.Empty(t, missing.Text())
		assert.False(t, missing.HasClass("x"))
		assert.Nil(t, missing.First(Tag("span")))
		assert.Nil(t, missing.Parent())
	})
}

func TestElement_ClassOperations(t *testing.T) {
	doc := parse(t)
	link := doc.First(HasClass("nav-link"))

	link.RemoveClass("active")
	assert.Equal(t, []string{"nav-link"}, link.Classes())

	link.AddClass("active")
	link.AddClass("active")
	assert.Equal(t, []string{"nav-link", "active"}, link.Classes())

	assert.False(t, link.ToggleClass("active"))
	assert.True(t, link.ToggleClass("active"))

	link.SetClass("scrolled", true)
	assert.True(t, link.HasClass("scrolled"))
	link.SetClass("scrolled", false)
	assert.False(t, link.HasClass("scrolled"))
}

func TestElement_FormValues(t *testing.T) {
	doc := parse(t)
	form := doc.ByID("contactForm")

	name := form.First(AttrEquals("name", "name"))
	message := form.First(AttrEquals("name", "message"))
	assert.Equal(t, "Al", name.Value())
	assert.Equal(t, "hello", message.Value())

	name.SetValue("")
	message.SetValue("")
	assert.Empty(t, name.Value())
	assert.Empty(t, message.Value())

	required := form.Query(And(Or(Tag("input"), Tag("textarea")), HasAttr("required")))
	assert.Len(t, required, 2)

	errEl := name.Parent().First(HasClass("error-message"))
	require.NotNil(t, errEl)
	assert.True(t, errEl.HasClass("hidden"))
}

func TestElement_SetInnerHTMLKeepsSVGNamespace(t *testing.T) {
	doc := parse(t)
	svg := doc.ByID("themeToggle").First(Tag("svg"))

	require.NoError(t, svg.SetInnerHTML(`<path d="M2 2"/>`))
	path := svg.First(Tag("path"))
	require.NotNil(t, path)
	assert.Equal(t, "M2 2", path.Attr("d"))
	assert.Contains(t, doc.String(), `d="M2 2"`)
	assert.NotContains(t, doc.String(), `d="M1 1"`)
}

func TestElement_AppendRemoveAttached(t *testing.T) {
	doc := parse(t)
	el := doc.CreateElement("DIV")
	assert.Equal(t, "div", el.Tag())
	assert.False(t, el.Attached())

	doc.Body().Append(el)
	assert.True(t, el.Attached())

	el.Remove()
	assert.False(t, el.Attached())
}

func TestElement_Closest(t *testing.T) {
	doc := parse(t)
	path := doc.First(Tag("path"))

	btn := path.Closest(HasID("themeToggle"))
	require.NotNil(t, btn)
	assert.True(t, btn.Is(doc.ByID("themeToggle")))
	assert.Nil(t, path.Closest(HasID("contactForm")))
}

func TestDocument_SetTitleCreatesMissingTitle(t *testing.T) {
	doc, err := ParseBytes([]byte(`<html><head></head><body></body></html>`))
	require.NoError(t, err)

	doc.SetTitle("New")
	assert.Equal(t, "New", doc.Title())
}

func TestElement_RemovingLastClassDropsAttribute(t *testing.T) {
	doc := parse(t)
	body := doc.Body()

	body.RemoveClass("base")

	assert.False(t, body.HasAttr("class"))
	assert.Contains(t, doc.String(), "<body>")
}
