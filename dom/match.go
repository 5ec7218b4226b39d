package dom

// Matcher selects elements. It stands in for the handful of CSS selectors
// the page needs.
type Matcher func(*Element) bool

func Tag(tag string) Matcher {
	return func(e *Element) bool { return e.Tag() == tag }
}

func HasID(id string) Matcher {
	return func(e *Element) bool { return e.ID() == id }
}

// HasClass matches elements carrying any of the given classes.
func HasClass(classes ...string) Matcher {
	return func(e *Element) bool {
		for _, c := range classes {
			if e.HasClass(c) {
				return true
			}
		}
		return false
	}
}

func HasAttr(key string) Matcher {
	return func(e *Element) bool { return e.HasAttr(key) }
}

func AttrEquals(key, val string) Matcher {
	return func(e *Element) bool {
		v, ok := e.LookupAttr(key)
		return ok && v == val
	}
}

func And(ms ...Matcher) Matcher {
	return func(e *Element) bool {
		for _, m := range ms {
			if !m(e) {
				return false
			}
		}
		return true
	}
}

func Or(ms ...Matcher) Matcher {
	return func(e *Element) bool {
		for _, m := range ms {
			if m(e) {
				return true
			}
		}
		return false
	}
}
