package scroll

// Element is a rendered section that can be brought into view.
type Element interface {
	ScrollIntoView(smooth bool)
}

// Document finds rendered sections by id.
type Document interface {
	Lookup(id string) (Element, bool)
}

// Navigator scrolls a Document to a section and marks it active right away,
// before the resulting scroll events arrive.
type Navigator struct {
	doc     Document
	tracker *Tracker
}

// NewNavigator binds a Navigator to a page's document and tracker.
func NewNavigator(doc Document, tracker *Tracker) *Navigator {
	return &Navigator{doc: doc, tracker: tracker}
}

// ScrollTo requests a smooth scroll to section id and sets it active. A
// section that is not on the page is ignored. It reports whether anything
// happened.
func (n *Navigator) ScrollTo(id string) bool {
	el, ok := n.doc.Lookup(id)
	if !ok {
		return false
	}
	el.ScrollIntoView(true)
	n.tracker.SetActive(id)
	return true
}
