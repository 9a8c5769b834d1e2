package blog

import (
	"strconv"
	"strings"

	"github.com/lixenwraith/folio/parameter"
)

// encode writes a post back into source form, readable by either header parser
func encode(p Post) string {
	var b strings.Builder
	b.WriteString(parameter.FrontmatterDelimiter + "\n")
	writeField(&b, "title", p.Title)
	writeField(&b, "description", p.Description)
	writeField(&b, "date", p.Date)
	writeField(&b, "thumbnail", p.Thumbnail)

	quoted := make([]string, len(p.Tags))
	for i, t := range p.Tags {
		quoted[i] = strconv.Quote(t)
	}
	b.WriteString("tags: [" + strings.Join(quoted, ", ") + "]\n")
	if p.ReadTime != "" {
		writeField(&b, "readTime", p.ReadTime)
	}
	b.WriteString(parameter.FrontmatterDelimiter + "\n")
	b.WriteString(p.Content)
	return b.String()
}

func writeField(b *strings.Builder, key, value string) {
	b.WriteString(key)
	b.WriteString(": ")
	b.WriteString(strconv.Quote(value))
	b.WriteByte('\n')
}
