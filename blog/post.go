package blog

import (
	"fmt"
	"strings"
	"time"

	"github.com/lixenwraith/folio/parameter"
)

// Summary is a post without its body, as listed
type Summary struct {
	Slug        string   `json:"slug"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Date        string   `json:"date"`
	Thumbnail   string   `json:"thumbnail"`
	Tags        []string `json:"tags"`
	ReadTime    string   `json:"readTime"`
}

// Post is a full blog post
type Post struct {
	Summary
	Content string `json:"content"`
}

// ReadTime estimates reading time of body, never less than a minute
func ReadTime(body string) string {
	words := len(strings.Fields(body))
	minutes := (words + parameter.BlogWordsPerMinute - 1) / parameter.BlogWordsPerMinute
	if minutes < 1 {
		minutes = 1
	}
	return fmt.Sprintf("%d min read", minutes)
}

// FromSource builds a post from raw source, filling defaults for missing fields
// today supplies the default date
func FromSource(slug, src string, today time.Time) Post {
	fm, body := Parse(src)

	p := Post{
		Summary: Summary{
			Slug:        slug,
			Title:       fm.String("title"),
			Description: fm.String("description"),
			Date:        fm.String("date"),
			Thumbnail:   fm.String("thumbnail"),
			ReadTime:    fm.String("readTime"),
		},
		Content: body,
	}
	if p.Title == "" {
		p.Title = parameter.BlogDefaultTitle
	}
	if p.Date == "" {
		p.Date = today.Format(parameter.BlogDateLayout)
	}
	if p.Thumbnail == "" {
		p.Thumbnail = parameter.BlogDefaultThumbnail
	}
	if tags, ok := fm.List("tags"); ok {
		p.Tags = tags
	} else {
		p.Tags = []string{}
	}
	if p.ReadTime == "" {
		p.ReadTime = ReadTime(body)
	}
	return p
}

var dateLayouts = []string{
	parameter.BlogDateLayout,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"January 2, 2006",
	"Jan 2, 2006",
	"2006/01/02",
}

// ParseDate reads a post date in any accepted layout, zero time when unparseable
func ParseDate(s string) time.Time {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
