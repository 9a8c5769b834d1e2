package blog

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/lixenwraith/folio/parameter"
)

var (
	// ErrNoDirectory is returned when the content directory does not exist
	ErrNoDirectory = errors.New("blog directory not found")

	// ErrNotFound is returned for an unknown or invalid slug
	ErrNotFound = errors.New("blog post not found")
)

// Store reads posts from a directory of markdown sources, one file per post
// Files are read on every call so edits show up without a restart
type Store struct {
	dir string

	// Now supplies the default date for posts without one
	Now func() time.Time
}

// NewStore creates a store over dir
func NewStore(dir string) *Store {
	return &Store{dir: dir, Now: time.Now}
}

// List returns every post summary, newest first
// Posts with equal or unparseable dates keep file name order
func (s *Store) List() ([]Summary, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNoDirectory
		}
		return nil, fmt.Errorf("read blog directory: %w", err)
	}

	today := s.Now()
	var out []Summary
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, parameter.BlogFileExt) {
			continue
		}
		slug := strings.TrimSuffix(name, parameter.BlogFileExt)

		data, err := os.ReadFile(filepath.Join(s.dir, name))
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		out = append(out, FromSource(slug, string(data), today).Summary)
	}

	SortNewestFirst(out)
	return out, nil
}

// Get returns the post for slug including its body
func (s *Store) Get(slug string) (Post, error) {
	if _, err := os.Stat(s.dir); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Post{}, ErrNoDirectory
		}
		return Post{}, fmt.Errorf("stat blog directory: %w", err)
	}
	if !ValidSlug(slug) {
		return Post{}, ErrNotFound
	}

	data, err := os.ReadFile(filepath.Join(s.dir, slug+parameter.BlogFileExt))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Post{}, ErrNotFound
		}
		return Post{}, fmt.Errorf("read %s: %w", slug, err)
	}
	return FromSource(slug, string(data), s.Now()), nil
}

// ValidSlug rejects slugs that could leave the content directory
func ValidSlug(slug string) bool {
	if slug == "" || slug == "." || slug == ".." {
		return false
	}
	if strings.ContainsAny(slug, "/\\\x00") || strings.Contains(slug, "..") {
		return false
	}
	return true
}

// SortNewestFirst orders summaries by date descending, stable on ties
func SortNewestFirst(posts []Summary) {
	sort.SliceStable(posts, func(i, j int) bool {
		return ParseDate(posts[i].Date).After(ParseDate(posts[j].Date))
	})
}
