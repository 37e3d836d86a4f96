package assets

import "strings"

// Slots maps a named content slot (e.g. "heroPortrait") to the content key
// of the image that fills it (e.g. "profile").
type Slots map[string]string

// Well-known slot names used by the page renderer.
const (
	SlotHeroPortrait  = "heroPortrait"
	SlotAboutPortrait = "aboutPortrait"
)

// DefaultSlots binds the portrait slots to an image keyed "profile".
var DefaultSlots = Slots{
	SlotHeroPortrait:  "profile",
	SlotAboutPortrait: "profile",
}

// normalize returns a copy with lowercased slot names and keys.
func (s Slots) normalize() Slots {
	out := make(Slots, len(s))
	for slot, key := range s {
		out[strings.ToLower(strings.TrimSpace(slot))] = strings.ToLower(strings.TrimSpace(key))
	}
	return out
}
