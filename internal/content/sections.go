package content

// Has reports whether the named section has anything to show. Home, about
// and contact always render; the others render when they have entries.
// The gallery also renders when images exist without captions, which the
// caller decides.
func (c *Content) Has(section string) bool {
	switch section {
	case "home", "about", "contact":
		return true
	case "skills":
		return len(c.Skills) > 0 || len(c.Tools) > 0
	case "projects":
		return len(c.Projects) > 0
	case "experience":
		return len(c.Experience) > 0
	case "education":
		return len(c.Education) > 0
	case "leadership":
		return len(c.Leadership) > 0
	case "interests":
		return len(c.Interests.Cards) > 0 || len(c.Interests.Other) > 0
	case "gallery":
		return len(c.Gallery) > 0
	default:
		return false
	}
}
