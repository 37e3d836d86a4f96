package live

import "github.com/ziadkadry99/folio/internal/scroll"

// Message types exchanged over /live.
const (
	TypeScroll   = "scroll"
	TypeNavigate = "navigate"
	TypeState    = "state"
	TypeScrollTo = "scrollTo"
	TypeError    = "error"
)

// SectionTop is the reported top edge of one section relative to the
// viewport.
type SectionTop struct {
	ID  string  `json:"id"`
	Top float64 `json:"top"`
}

// clientMessage is the incoming WebSocket message format.
type clientMessage struct {
	Type     string          `json:"type"` // "scroll" or "navigate"
	Viewport scroll.Viewport `json:"viewport"`
	Sections []SectionTop    `json:"sections"`
	Section  string          `json:"section"`
}

// serverMessage is the outgoing WebSocket message format.
type serverMessage struct {
	Type     string  `json:"type"`
	Progress float64 `json:"progress"`
	Active   string  `json:"active,omitempty"`
	Section  string  `json:"section,omitempty"`
	Error    string  `json:"error,omitempty"`
}

// bounds turns reported section tops into a lookup for the tracker.
func bounds(tops []SectionTop) scroll.BoundsLookup {
	m := make(map[string]float64, len(tops))
	for _, s := range tops {
		m[s.ID] = s.Top
	}
	return scroll.MapBounds(m)
}
