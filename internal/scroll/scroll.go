// Package scroll derives the page's scroll progress and active navigation
// section from viewport geometry, and implements section navigation.
package scroll

import "math"

// ActivationThreshold is how far below the viewport top (in CSS pixels) a
// section's top edge may sit while still counting as reached.
const ActivationThreshold = 200.0

// Section identifiers in document order.
const (
	SectionHome       = "home"
	SectionAbout      = "about"
	SectionSkills     = "skills"
	SectionProjects   = "projects"
	SectionExperience = "experience"
	SectionEducation  = "education"
	SectionLeadership = "leadership"
	SectionInterests  = "interests"
	SectionGallery    = "gallery"
	SectionContact    = "contact"
)

// DefaultSections is the fixed navigation order of the page.
var DefaultSections = []string{
	SectionHome,
	SectionAbout,
	SectionSkills,
	SectionProjects,
	SectionExperience,
	SectionEducation,
	SectionLeadership,
	SectionInterests,
	SectionGallery,
	SectionContact,
}

// Viewport is the scroll geometry of the window at one instant.
type Viewport struct {
	Height         float64 `json:"height"`
	DocumentHeight float64 `json:"documentHeight"`
	ScrollTop      float64 `json:"scrollTop"`
}

// State is what the page renders from scrolling: the progress bar width and
// the highlighted navigation entry.
type State struct {
	Progress float64 `json:"progress"`
	Active   string  `json:"active"`
}

// BoundsLookup reports the top edge of a section relative to the viewport,
// or false when the section is not on the page.
type BoundsLookup func(id string) (top float64, ok bool)

// Progress returns how far the document has been scrolled, as a percentage
// clamped to [0, 100]. A document that fits in the viewport is at 0.
func Progress(v Viewport) float64 {
	total := v.DocumentHeight - v.Height
	if total <= 0 {
		return 0
	}
	p := v.ScrollTop / total * 100
	switch {
	case p < 0 || math.IsNaN(p):
		return 0
	case p > 100:
		return 100
	}
	return p
}

// ActiveSection walks ids in order and returns the last one whose top edge
// is at or above ActivationThreshold. The walk never stops early, so a later
// section always beats an earlier one. Sections missing from the page are
// skipped. When none qualifies, current is returned unchanged.
func ActiveSection(ids []string, lookup BoundsLookup, current string) string {
	if lookup == nil {
		return current
	}
	active := current
	for _, id := range ids {
		top, ok := lookup(id)
		if !ok {
			continue
		}
		if top <= ActivationThreshold {
			active = id
		}
	}
	return active
}

// Compute derives the next State from a scroll event.
func Compute(v Viewport, ids []string, lookup BoundsLookup, prev State) State {
	return State{
		Progress: Progress(v),
		Active:   ActiveSection(ids, lookup, prev.Active),
	}
}

// MapBounds adapts a section → top map to a BoundsLookup.
func MapBounds(tops map[string]float64) BoundsLookup {
	return func(id string) (float64, bool) {
		top, ok := tops[id]
		return top, ok
	}
}
