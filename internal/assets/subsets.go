package assets

// Names of the four subsets every Index carries.
const (
	SubsetHero     = "hero"
	SubsetAbout    = "about"
	SubsetProjects = "projects"
	SubsetGallery  = "gallery"
)

// SubsetNames lists the named subsets in page order.
var SubsetNames = []string{SubsetHero, SubsetAbout, SubsetProjects, SubsetGallery}

// Range is a [Start, End) window into a Sequence. End may be ToEnd.
type Range struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Ranges holds the bounds of each named subset. The bounds only make sense
// for one snapshot of the asset directory: adding or renaming a file shifts
// every later offset. Slots are the stable alternative.
type Ranges struct {
	Hero     Range `json:"hero"`
	About    Range `json:"about"`
	Projects Range `json:"projects"`
	Gallery  Range `json:"gallery"`
}

// DefaultRanges are the built-in subset bounds.
var DefaultRanges = Ranges{
	Hero:     Range{Start: 0, End: 1},
	About:    Range{Start: 1, End: 4},
	Projects: Range{Start: 4, End: 8},
	Gallery:  Range{Start: 8, End: ToEnd},
}

// Subsets are the named slices of one Sequence.
type Subsets struct {
	Hero     Sequence `json:"hero"`
	About    Sequence `json:"about"`
	Projects Sequence `json:"projects"`
	Gallery  Sequence `json:"gallery"`
}

// NamedSubsets slices seq once using r.
func NamedSubsets(seq Sequence, r Ranges) Subsets {
	return Subsets{
		Hero:     seq.Subset(r.Hero.Start, r.Hero.End),
		About:    seq.Subset(r.About.Start, r.About.End),
		Projects: seq.Subset(r.Projects.Start, r.Projects.End),
		Gallery:  seq.Subset(r.Gallery.Start, r.Gallery.End),
	}
}

// Get returns the subset with the given name.
func (s Subsets) Get(name string) (Sequence, bool) {
	switch name {
	case SubsetHero:
		return s.Hero, true
	case SubsetAbout:
		return s.About, true
	case SubsetProjects:
		return s.Projects, true
	case SubsetGallery:
		return s.Gallery, true
	default:
		return nil, false
	}
}
