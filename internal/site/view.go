package site

import (
	"html/template"

	"github.com/ziadkadry99/folio/internal/assets"
	"github.com/ziadkadry99/folio/internal/content"
	"github.com/ziadkadry99/folio/internal/scroll"
)

// image is one rendered <img>. A nil *image renders nothing.
type image struct {
	URL string
	Alt string
}

func imageOf(a assets.Asset, ok bool, alt string) *image {
	if !ok || a.IsZero() {
		return nil
	}
	return &image{URL: a.URL, Alt: alt}
}

type navItem struct {
	ID     string
	Label  string
	Active bool
}

type aboutView struct {
	Body       template.HTML
	Highlights []string
	Portrait   *image
	Images     []image
}

type projectView struct {
	Title       string
	Description template.HTML
	Tech        []string
	Features    []string
	Link        string
	Image       *image
}

type cardView struct {
	Title       string
	Subtitle    string
	Description string
	Image       *image
}

type interestsView struct {
	Cards []cardView
	Other []string
}

// galleryItem pairs a caption with a gallery image. Either side may be
// missing.
type galleryItem struct {
	Title    string
	Category string
	Image    *image
}

// pageData is the data passed to pageTemplate.
type pageData struct {
	Name         string
	Headline     string
	Summary      template.HTML
	Live         bool
	State        scroll.State
	Nav          []navItem
	Show         map[string]bool
	HeroPortrait *image
	About        aboutView
	Skills       []content.SkillGroup
	Tools        []string
	Projects     []projectView
	Experience   []content.Position
	Education    []content.Education
	Leadership   []cardView
	Interests    interestsView
	Gallery      []galleryItem
	Contact      content.Contact
}
