package scroll

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgress(t *testing.T) {
	tests := []struct {
		name string
		v    Viewport
		want float64
	}{
		{"halfway", Viewport{Height: 800, DocumentHeight: 3800, ScrollTop: 1500}, 50},
		{"top", Viewport{Height: 800, DocumentHeight: 3800, ScrollTop: 0}, 0},
		{"bottom", Viewport{Height: 800, DocumentHeight: 3800, ScrollTop: 3000}, 100},
		{"overscroll clamps high", Viewport{Height: 800, DocumentHeight: 3800, ScrollTop: 3500}, 100},
		{"rubber band clamps low", Viewport{Height: 800, DocumentHeight: 3800, ScrollTop: -40}, 0},
		{"fits in viewport", Viewport{Height: 800, DocumentHeight: 800, ScrollTop: 300}, 0},
		{"shorter than viewport", Viewport{Height: 800, DocumentHeight: 500, ScrollTop: 300}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Progress(tt.v), 1e-9)
		})
	}
}

func TestActiveSection_LastQualifyingWins(t *testing.T) {
	lookup := MapBounds(map[string]float64{"home": -500, "about": 150, "skills": 600})

	got := ActiveSection([]string{"home", "about", "skills"}, lookup, "home")
	assert.Equal(t, "about", got)
}

func TestActiveSection_ThresholdInclusive(t *testing.T) {
	lookup := MapBounds(map[string]float64{"home": -900, "about": 200})
	assert.Equal(t, "about", ActiveSection([]string{"home", "about"}, lookup, "home"))

	lookup = MapBounds(map[string]float64{"home": -900, "about": 200.5})
	assert.Equal(t, "home", ActiveSection([]string{"home", "about"}, lookup, "home"))
}

func TestActiveSection_DocumentOrderNotProximity(t *testing.T) {
	// Both qualify; "skills" is further from the threshold but later in the
	// list, so it wins.
	lookup := MapBounds(map[string]float64{"about": 190, "skills": -3000})
	assert.Equal(t, "skills", ActiveSection([]string{"about", "skills"}, lookup, ""))
}

func TestActiveSection_MissingSectionsSkipped(t *testing.T) {
	lookup := MapBounds(map[string]float64{"home": -100, "contact": 50})
	assert.Equal(t, "contact", ActiveSection(DefaultSections, lookup, "home"))
}

func TestActiveSection_NoneQualifyKeepsCurrent(t *testing.T) {
	lookup := MapBounds(map[string]float64{"home": 400, "about": 900})
	assert.Equal(t, "about", ActiveSection([]string{"home", "about"}, lookup, "about"))
	assert.Equal(t, "x", ActiveSection([]string{"home"}, nil, "x"))
}

func TestCompute(t *testing.T) {
	v := Viewport{Height: 800, DocumentHeight: 3800, ScrollTop: 1500}
	lookup := MapBounds(map[string]float64{"home": -1500, "about": -700, "skills": 100, "projects": 900})

	got := Compute(v, DefaultSections, lookup, State{Active: "home"})
	assert.Equal(t, State{Progress: 50, Active: "skills"}, got)
}
