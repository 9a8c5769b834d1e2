package portfolio

import (
	"fmt"

	"github.com/lixenwraith/folio/scene"
)

// Category is a directory of numbered images under /portfolio
type Category struct {
	Name  string `json:"name" yaml:"name"`
	Count int    `json:"count" yaml:"count"`
}

// Images returns the site paths of every image in the category
func (c Category) Images() []string {
	out := make([]string, 0, c.Count)
	for i := 1; i <= c.Count; i++ {
		out = append(out, fmt.Sprintf("/portfolio/%s/image%d.jpg", c.Name, i))
	}
	return out
}

// DefaultCategories are the published photo sets
var DefaultCategories = []Category{
	{Name: "nature", Count: 21},
	{Name: "basketball", Count: 36},
	{Name: "people", Count: 18},
	{Name: "sports", Count: 16},
	{Name: "studio", Count: 15},
	{Name: "wedding", Count: 21},
}

// Fallback is the pool used when no category is configured
var Fallback = Category{Name: "lifestyle", Count: 6}

// Pool builds the shape image pool from categories plus the fallback set
func Pool(categories []Category) scene.ImagePool {
	lists := make([][]string, 0, len(categories))
	for _, c := range categories {
		lists = append(lists, c.Images())
	}
	return scene.NewImagePool(Fallback.Images(), lists...)
}
