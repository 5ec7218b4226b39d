// Package dom is a small mutable document model over golang.org/x/net/html.
//
// Lookups never fail loudly: a missing element is a nil *Element and every
// method on a nil *Element is a no-op returning the zero value. Callers can
// chain lookups against incomplete markup and the affected feature simply
// does nothing.
package dom

import (
	"bytes"
	"io"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Document is a parsed HTML page.
type Document struct {
	root *html.Node
}

// Parse reads a full HTML document.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, errors.Wrap(err, "parsing html")
	}
	return &Document{root: root}, nil
}

// ParseBytes parses a full HTML document held in memory.
func ParseBytes(b []byte) (*Document, error) {
	return Parse(bytes.NewReader(b))
}

// Render writes the document as HTML.
func (d *Document) Render(w io.Writer) error {
	return errors.Wrap(html.Render(w, d.root), "rendering html")
}

func (d *Document) String() string {
	var buf bytes.Buffer
	_ = html.Render(&buf, d.root)
	return buf.String()
}

// Query returns every element matching m, in document order.
func (d *Document) Query(m Matcher) []*Element {
	return collect(d.root, m, nil)
}

// First returns the first element matching m, or nil.
func (d *Document) First(m Matcher) *Element {
	return wrap(find(d.root, m))
}

// ByID returns the element with the given id, or nil.
func (d *Document) ByID(id string) *Element {
	return d.First(HasID(id))
}

// Root returns the <html> element.
func (d *Document) Root() *Element {
	return d.First(Tag("html"))
}

// Body returns the <body> element.
func (d *Document) Body() *Element {
	return d.First(Tag("body"))
}

// Title returns the text of the <title> element.
func (d *Document) Title() string {
	return d.First(Tag("title")).Text()
}

// SetTitle replaces the document title, creating <title> in <head> when absent.
func (d *Document) SetTitle(title string) {
	el := d.First(Tag("title"))
	if el == nil {
		head := d.First(Tag("head"))
		if head == nil {
			return
		}
		el = d.CreateElement("title")
		head.Append(el)
	}
	el.SetText(title)
}

// CreateElement returns a detached element with the given tag.
func (d *Document) CreateElement(tag string) *Element {
	tag = strings.ToLower(tag)
	return wrap(&html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	})
}

func find(n *html.Node, m Matcher) *html.Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && m(wrap(c)) {
			return c
		}
		if found := find(c, m); found != nil {
			return found
		}
	}
	return nil
}

func collect(n *html.Node, m Matcher, out []*Element) []*Element {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && m(wrap(c)) {
			out = append(out, wrap(c))
		}
		out = collect(c, m, out)
	}
	return out
}
