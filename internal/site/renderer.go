package site

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"time"

	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	"github.com/ziadkadry99/folio/internal/assets"
	"github.com/ziadkadry99/folio/internal/content"
	"github.com/ziadkadry99/folio/internal/scroll"
)

// Page cache lifetimes. Pages are keyed by index generation, so entries for
// superseded generations simply age out.
const (
	pageTTL     = 30 * time.Minute
	pageCleanup = time.Hour
)

// Renderer turns content plus an asset Index into the portfolio page.
type Renderer struct {
	content *content.Content
	md      *content.Markdown
	tmpl    *template.Template
	pages   *cache.Cache
	logger  *zap.Logger
}

// NewRenderer parses the page template for c.
func NewRenderer(c *content.Content, logger *zap.Logger) (*Renderer, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	tmpl, err := template.New("page").Parse(pageTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing page template: %w", err)
	}
	return &Renderer{
		content: c,
		md:      content.NewMarkdown(),
		tmpl:    tmpl,
		pages:   cache.New(pageTTL, pageCleanup),
		logger:  logger,
	}, nil
}

// Content returns the content the renderer was built with.
func (r *Renderer) Content() *content.Content { return r.content }

// Sections lists the ids of the sections the page renders for ix, in page
// order. It is the section list the scroll tracker walks.
func (r *Renderer) Sections(ix *assets.Index) []string {
	out := make([]string, 0, len(scroll.DefaultSections))
	for _, id := range scroll.DefaultSections {
		if r.content.Has(id) || (id == scroll.SectionGallery && ix != nil && len(ix.Subsets.Gallery) > 0) {
			out = append(out, id)
		}
	}
	return out
}

// Render writes the page for ix to w. live marks the page as driven by a
// /live session rather than the local script fallback.
func (r *Renderer) Render(w io.Writer, ix *assets.Index, live bool) error {
	page, err := r.Page(ix, live)
	if err != nil {
		return err
	}
	_, err = w.Write(page)
	return err
}

// Page returns the rendered page bytes, cached per index generation.
func (r *Renderer) Page(ix *assets.Index, live bool) ([]byte, error) {
	var gen uint64
	if ix != nil {
		gen = ix.Generation
	}
	key := fmt.Sprintf("page:%d:%t", gen, live)
	if cached, ok := r.pages.Get(key); ok {
		return cached.([]byte), nil
	}

	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, r.data(ix, live)); err != nil {
		return nil, fmt.Errorf("rendering page: %w", err)
	}
	page := buf.Bytes()
	r.pages.SetDefault(key, page)
	r.logger.Debug("page rendered",
		zap.Uint64("generation", gen),
		zap.Bool("live", live),
		zap.Int("bytes", len(page)))
	return page, nil
}

func (r *Renderer) data(ix *assets.Index, live bool) pageData {
	c := r.content
	if ix == nil {
		ix = assets.NewIndex(nil, assets.DefaultRanges, nil)
	}
	sections := r.Sections(ix)

	d := pageData{
		Name:       c.Name,
		Headline:   c.Headline,
		Summary:    r.md.Render(c.Summary),
		Live:       live,
		Show:       make(map[string]bool, len(sections)),
		Skills:     c.Skills,
		Tools:      c.Tools,
		Experience: c.Experience,
		Education:  c.Education,
		Contact:    c.Contact,
	}
	if len(sections) > 0 {
		d.State = scroll.State{Progress: 0, Active: sections[0]}
	}
	for _, id := range sections {
		d.Show[id] = true
		d.Nav = append(d.Nav, navItem{ID: id, Label: id, Active: id == d.State.Active})
	}

	d.HeroPortrait = r.heroPortrait(ix)
	d.About = aboutView{
		Body:       r.md.Render(c.About.Body),
		Highlights: c.About.Highlights,
	}
	if a, ok := ix.Resolve(assets.SlotAboutPortrait); ok {
		d.About.Portrait = imageOf(a, ok, c.Name)
	}
	for _, a := range ix.Subsets.About {
		d.About.Images = append(d.About.Images, image{URL: a.URL, Alt: c.Name})
	}

	for i, p := range c.Projects {
		d.Projects = append(d.Projects, projectView{
			Title:       p.Title,
			Description: r.md.Render(p.Description),
			Tech:        p.Tech,
			Features:    p.Features,
			Link:        p.Link,
			Image:       projectImage(ix, p, i),
		})
	}

	d.Leadership = cards(ix, c.Leadership)
	d.Interests = interestsView{Cards: cards(ix, c.Interests.Cards), Other: c.Interests.Other}
	d.Gallery = pairGallery(c.Gallery, ix.Subsets.Gallery)
	return d
}

// heroPortrait prefers the heroPortrait slot and falls back to the first
// image of the hero subset.
func (r *Renderer) heroPortrait(ix *assets.Index) *image {
	a, ok := ix.Resolve(assets.SlotHeroPortrait)
	if !ok {
		a, ok = ix.Subsets.Hero.At(0)
	}
	return imageOf(a, ok, r.content.Name)
}

// projectImage uses the project's own image key when it has one, else the
// projects subset image at the same position.
func projectImage(ix *assets.Index, p content.Project, i int) *image {
	if p.Image != "" {
		a, ok := ix.Resolve(p.Image)
		return imageOf(a, ok, p.Title)
	}
	a, ok := ix.Subsets.Projects.At(i)
	return imageOf(a, ok, p.Title)
}

func cards(ix *assets.Index, in []content.Card) []cardView {
	out := make([]cardView, 0, len(in))
	for _, c := range in {
		v := cardView{Title: c.Title, Subtitle: c.Subtitle, Description: c.Description}
		if c.Image != "" {
			a, ok := ix.Resolve(c.Image)
			v.Image = imageOf(a, ok, c.Title)
		}
		out = append(out, v)
	}
	return out
}

// pairGallery zips captions with gallery images by position. The result is
// as long as the longer of the two.
func pairGallery(captions []content.Caption, images assets.Sequence) []galleryItem {
	n := max(len(captions), len(images))
	out := make([]galleryItem, n)
	for i := range out {
		if i < len(captions) {
			out[i].Title = captions[i].Title
			out[i].Category = captions[i].Category
		}
		if a, ok := images.At(i); ok {
			out[i].Image = &image{URL: a.URL, Alt: out[i].Title}
		}
	}
	return out
}
