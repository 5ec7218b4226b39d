package dom

import (
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/net/html"
)

// Element is a handle on an element node. A nil *Element is valid and inert.
type Element struct {
	n *html.Node
}

func wrap(n *html.Node) *Element {
	if n == nil {
		return nil
	}
	return &Element{n: n}
}

// Is reports whether e and other refer to the same node.
func (e *Element) Is(other *Element) bool {
	if e == nil || other == nil {
		return e == nil && other == nil
	}
	return e.n == other.n
}

func (e *Element) Tag() string {
	if e == nil {
		return ""
	}
	return e.n.Data
}

func (e *Element) ID() string {
	return e.Attr("id")
}

// LookupAttr returns the attribute value and whether it is present.
func (e *Element) LookupAttr(key string) (string, bool) {
	if e == nil {
		return "", false
	}
	for _, a := range e.n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func (e *Element) Attr(key string) string {
	v, _ := e.LookupAttr(key)
	return v
}

func (e *Element) HasAttr(key string) bool {
	_, ok := e.LookupAttr(key)
	return ok
}

func (e *Element) SetAttr(key, val string) {
	if e == nil {
		return
	}
	for i, a := range e.n.Attr {
		if a.Namespace == "" && a.Key == key {
			e.n.Attr[i].Val = val
			return
		}
	}
	e.n.Attr = append(e.n.Attr, html.Attribute{Key: key, Val: val})
}

func (e *Element) RemoveAttr(key string) {
	if e == nil {
		return
	}
	kept := e.n.Attr[:0]
	for _, a := range e.n.Attr {
		if a.Namespace == "" && a.Key == key {
			continue
		}
		kept = append(kept, a)
	}
	e.n.Attr = kept
}

// Classes returns the class list in attribute order.
func (e *Element) Classes() []string {
	return strings.Fields(e.Attr("class"))
}

func (e *Element) HasClass(class string) bool {
	for _, c := range e.Classes() {
		if c == class {
			return true
		}
	}
	return false
}

func (e *Element) AddClass(class string) {
	if e == nil || e.HasClass(class) {
		return
	}
	e.SetAttr("class", strings.Join(append(e.Classes(), class), " "))
}

func (e *Element) RemoveClass(class string) {
	if e == nil || !e.HasClass(class) {
		return
	}
	classes := e.Classes()
	kept := classes[:0]
	for _, c := range classes {
		if c != class {
			kept = append(kept, c)
		}
	}
	if len(kept) == 0 {
		e.RemoveAttr("class")
		return
	}
	e.SetAttr("class", strings.Join(kept, " "))
}

// SetClass adds the class when on is true and removes it otherwise.
func (e *Element) SetClass(class string, on bool) {
	if on {
		e.AddClass(class)
		return
	}
	e.RemoveClass(class)
}

// ToggleClass flips the class and reports whether it is now present.
func (e *Element) ToggleClass(class string) bool {
	if e == nil {
		return false
	}
	on := !e.HasClass(class)
	e.SetClass(class, on)
	return on
}

// Text returns the concatenated text of all descendant text nodes.
func (e *Element) Text() string {
	if e == nil {
		return ""
	}
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.TextNode {
				sb.WriteString(c.Data)
			}
			walk(c)
		}
	}
	walk(e.n)
	return sb.String()
}

// SetText replaces all children with a single text node.
func (e *Element) SetText(text string) {
	if e == nil {
		return
	}
	e.clear()
	e.n.AppendChild(&html.Node{Type: html.TextNode, Data: text})
}

// SetInnerHTML replaces all children with the parsed markup, using e as the
// parsing context so foreign content such as SVG paths keeps its namespace.
func (e *Element) SetInnerHTML(markup string) error {
	if e == nil {
		return nil
	}
	nodes, err := html.ParseFragment(strings.NewReader(markup), e.n)
	if err != nil {
		return errors.Wrapf(err, "parsing fragment for <%s>", e.n.Data)
	}
	e.clear()
	for _, n := range nodes {
		e.n.AppendChild(n)
	}
	return nil
}

// Value returns the current value of a form control.
func (e *Element) Value() string {
	if e.Tag() == "textarea" {
		return e.Text()
	}
	return e.Attr("value")
}

// SetValue sets the current value of a form control.
func (e *Element) SetValue(v string) {
	if e.Tag() == "textarea" {
		e.SetText(v)
		return
	}
	e.SetAttr("value", v)
}

func (e *Element) Parent() *Element {
	if e == nil || e.n.Parent == nil || e.n.Parent.Type != html.ElementNode {
		return nil
	}
	return wrap(e.n.Parent)
}

// Closest returns e or its nearest ancestor matching m.
func (e *Element) Closest(m Matcher) *Element {
	for el := e; el != nil; el = el.Parent() {
		if m(el) {
			return el
		}
	}
	return nil
}

// Query returns descendants of e matching m.
func (e *Element) Query(m Matcher) []*Element {
	if e == nil {
		return nil
	}
	return collect(e.n, m, nil)
}

// First returns the first descendant of e matching m.
func (e *Element) First(m Matcher) *Element {
	if e == nil {
		return nil
	}
	return wrap(find(e.n, m))
}

// Append adds child as the last child of e, detaching it first if needed.
func (e *Element) Append(child *Element) {
	if e == nil || child == nil {
		return
	}
	if child.n.Parent != nil {
		child.n.Parent.RemoveChild(child.n)
	}
	e.n.AppendChild(child.n)
}

// Remove detaches e from its parent.
func (e *Element) Remove() {
	if e == nil || e.n.Parent == nil {
		return
	}
	e.n.Parent.RemoveChild(e.n)
}

// Attached reports whether e is still reachable from a document root.
func (e *Element) Attached() bool {
	if e == nil {
		return false
	}
	n := e.n
	for n.Parent != nil {
		n = n.Parent
	}
	return n.Type == html.DocumentNode
}

func (e *Element) clear() {
	for c := e.n.FirstChild; c != nil; {
		next := c.NextSibling
		e.n.RemoveChild(c)
		c = next
	}
}
