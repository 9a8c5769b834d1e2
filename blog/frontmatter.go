package blog

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/folio/parameter"
)

// headerPattern splits a source into header block and body
var headerPattern = regexp.MustCompile(`(?s)^` + delim + `\s*\n(.*?)\n` + delim + `\s*\n(.*)$`)

var delim = regexp.QuoteMeta(parameter.FrontmatterDelimiter)

// Frontmatter is the decoded header, values are strings or string lists
type Frontmatter map[string]any

// String returns the value of key as a string, empty when absent or a list
func (f Frontmatter) String(key string) string {
	switch v := f[key].(type) {
	case string:
		return v
	case nil, []string:
		return ""
	default:
		return fmt.Sprint(v)
	}
}

// List returns the value of key when it is a list
func (f Frontmatter) List(key string) ([]string, bool) {
	v, ok := f[key].([]string)
	return v, ok
}

// Parse splits src into frontmatter and body
// Without a header block the frontmatter is empty and the body is the whole input
// The header is decoded as YAML; when that fails, or YAML would cut a value at
// a " #" comment, the tolerant line parser takes over
func Parse(src string) (Frontmatter, string) {
	m := headerPattern.FindStringSubmatch(src)
	if m == nil {
		return Frontmatter{}, src
	}
	header, body := m[1], m[2]

	if fm, err := parseYAML(header); err == nil {
		return fm, body
	}
	return parseLines(header), body
}

func parseYAML(header string) (Frontmatter, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(header), &doc); err != nil {
		return nil, err
	}
	if len(doc.Content) == 0 || doc.Content[0].Kind != yaml.MappingNode {
		return nil, fmt.Errorf("header is not a mapping")
	}
	root := doc.Content[0]
	if hasLineComment(root) {
		return nil, fmt.Errorf("header has inline comments")
	}

	var raw map[string]any
	if err := root.Decode(&raw); err != nil {
		return nil, err
	}

	fm := make(Frontmatter, len(raw))
	for k, v := range raw {
		switch val := v.(type) {
		case nil:
			fm[k] = ""
		case string:
			fm[k] = val
		case time.Time:
			// Unquoted dates decode as timestamps
			if val.Hour() == 0 && val.Minute() == 0 && val.Second() == 0 && val.Nanosecond() == 0 {
				fm[k] = val.Format(parameter.BlogDateLayout)
			} else {
				fm[k] = val.Format(time.RFC3339)
			}
		case []any:
			list := make([]string, 0, len(val))
			for _, item := range val {
				list = append(list, strings.TrimSpace(fmt.Sprint(item)))
			}
			fm[k] = list
		case map[string]any:
			return nil, fmt.Errorf("nested mapping at %q", k)
		default:
			fm[k] = fmt.Sprint(val)
		}
	}
	return fm, nil
}

// hasLineComment reports whether any node carries a trailing comment
func hasLineComment(n *yaml.Node) bool {
	if n.LineComment != "" {
		return true
	}
	for _, c := range n.Content {
		if hasLineComment(c) {
			return true
		}
	}
	return false
}

// parseLines reads key: value lines, splitting at the first colon
// Matching surrounding quotes are stripped and bracketed values become lists
func parseLines(header string) Frontmatter {
	fm := Frontmatter{}
	for _, line := range strings.Split(header, "\n") {
		i := strings.IndexByte(line, ':')
		if i < 0 {
			continue
		}
		key := strings.TrimSpace(line[:i])
		value := strings.TrimSpace(line[i+1:])

		if len(value) >= 2 && (value[0] == '"' && value[len(value)-1] == '"' ||
			value[0] == '\'' && value[len(value)-1] == '\'') {
			value = value[1 : len(value)-1]
		}

		if len(value) >= 2 && value[0] == '[' && value[len(value)-1] == ']' {
			parts := strings.Split(value[1:len(value)-1], ",")
			list := make([]string, 0, len(parts))
			for _, p := range parts {
				list = append(list, strings.NewReplacer(`"`, "", `'`, "").Replace(strings.TrimSpace(p)))
			}
			fm[key] = list
			continue
		}
		fm[key] = value
	}
	return fm
}
