package portfolio

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"slices"

	"gopkg.in/yaml.v3"
)

//go:embed pages.yaml
var defaultPagesYAML []byte

// Image is one photo on a portfolio page
type Image struct {
	ID      string `json:"id" yaml:"id"`
	Src     string `json:"src" yaml:"src"`
	Alt     string `json:"alt" yaml:"alt"`
	Caption string `json:"caption,omitempty" yaml:"caption"`
	Width   int    `json:"width,omitempty" yaml:"width"`
	Height  int    `json:"height,omitempty" yaml:"height"`
}

// Layout is the gallery arrangement of a page
type Layout string

const (
	LayoutMasonry Layout = "masonry"
	LayoutGrid    Layout = "grid"
	LayoutSlider  Layout = "slider"
)

// Page is a portfolio gallery configuration
type Page struct {
	ID               string   `json:"id" yaml:"id"`
	Title            string   `json:"title" yaml:"title"`
	Subtitle         string   `json:"subtitle,omitempty" yaml:"subtitle"`
	Description      string   `json:"description" yaml:"description"`
	HeroImage        string   `json:"heroImage,omitempty" yaml:"heroImage"`
	Category         string   `json:"category" yaml:"category"`
	Date             string   `json:"date,omitempty" yaml:"date"`
	Location         string   `json:"location,omitempty" yaml:"location"`
	Equipment        []string `json:"equipment,omitempty" yaml:"equipment"`
	Images           []Image  `json:"images" yaml:"images"`
	GridLayout       Layout   `json:"gridLayout,omitempty" yaml:"gridLayout"`
	ShowImageNumbers bool     `json:"showImageNumbers" yaml:"showImageNumbers"`
	ShowCaptions     bool     `json:"showCaptions" yaml:"showCaptions"`
	BackgroundColor  string   `json:"backgroundColor,omitempty" yaml:"backgroundColor"`
}

// PageSummary is a page without its image list
type PageSummary struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Subtitle   string `json:"subtitle,omitempty"`
	Category   string `json:"category"`
	ImageCount int    `json:"imageCount"`
}

// Summary returns the listing form of p
func (p Page) Summary() PageSummary {
	return PageSummary{ID: p.ID, Title: p.Title, Subtitle: p.Subtitle, Category: p.Category, ImageCount: len(p.Images)}
}

// Catalog is the set of portfolio pages keyed by id
type Catalog struct {
	pages map[string]Page
	ids   []string
}

// LoadPages decodes a YAML map of page id to page config
func LoadPages(r io.Reader) (*Catalog, error) {
	var raw map[string]Page
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode portfolio pages: %w", err)
	}

	c := &Catalog{pages: make(map[string]Page, len(raw))}
	for id, p := range raw {
		if p.ID == "" {
			p.ID = id
		}
		if p.ID != id {
			return nil, fmt.Errorf("portfolio page %q declares id %q", id, p.ID)
		}
		if p.GridLayout == "" {
			p.GridLayout = LayoutMasonry
		}
		switch p.GridLayout {
		case LayoutMasonry, LayoutGrid, LayoutSlider:
		default:
			return nil, fmt.Errorf("portfolio page %q: unknown layout %q", id, p.GridLayout)
		}
		c.pages[id] = p
		c.ids = append(c.ids, id)
	}
	slices.Sort(c.ids)
	return c, nil
}

// DefaultPages returns the built-in page configs
func DefaultPages() *Catalog {
	c, err := LoadPages(bytes.NewReader(defaultPagesYAML))
	if err != nil {
		panic(err)
	}
	return c
}

// Get returns the page with id
func (c *Catalog) Get(id string) (Page, bool) {
	p, ok := c.pages[id]
	return p, ok
}

// Summaries lists every page in id order
func (c *Catalog) Summaries() []PageSummary {
	out := make([]PageSummary, 0, len(c.ids))
	for _, id := range c.ids {
		out = append(out, c.pages[id].Summary())
	}
	return out
}

// Len returns the number of pages
func (c *Catalog) Len() int {
	return len(c.ids)
}
