package asset

import (
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"

	_ "golang.org/x/image/webp"
)

// ErrInvalidPath is returned for sources that escape the asset root
var ErrInvalidPath = errors.New("invalid asset path")

// DefaultCacheSize bounds decoded images kept in memory
const DefaultCacheSize = 32

// DiskLoader decodes images from a public asset directory
// Sources are site paths such as /portfolio/nature/image1.jpg
type DiskLoader struct {
	root string

	mu    sync.Mutex
	cache map[string]image.Image
	order []string
	limit int
}

// NewDiskLoader creates a loader rooted at dir
func NewDiskLoader(dir string, cacheSize int) *DiskLoader {
	if cacheSize <= 0 {
		cacheSize = DefaultCacheSize
	}
	return &DiskLoader{
		root:  dir,
		cache: make(map[string]image.Image),
		limit: cacheSize,
	}
}

// Resolve maps a site path onto the filesystem, rejecting traversal
func (l *DiskLoader) Resolve(src string) (string, error) {
	if src == "" || strings.ContainsRune(src, 0) || strings.Contains(src, "\\") {
		return "", fmt.Errorf("%w: %q", ErrInvalidPath, src)
	}
	clean := path.Clean("/" + src)
	if clean == "/" {
		return "", fmt.Errorf("%w: %q", ErrInvalidPath, src)
	}
	for _, part := range strings.Split(src, "/") {
		if part == ".." {
			return "", fmt.Errorf("%w: %q", ErrInvalidPath, src)
		}
	}
	return filepath.Join(l.root, filepath.FromSlash(clean)), nil
}

// Load decodes src, serving repeated requests from the cache
func (l *DiskLoader) Load(src string) (image.Image, error) {
	l.mu.Lock()
	if img, ok := l.cache[src]; ok {
		l.mu.Unlock()
		return img, nil
	}
	l.mu.Unlock()

	file, err := l.Resolve(src)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(file)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", src, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", src, err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.cache[src]; !ok {
		if len(l.order) >= l.limit {
			delete(l.cache, l.order[0])
			l.order = l.order[1:]
		}
		l.order = append(l.order, src)
	}
	l.cache[src] = img
	return img, nil
}

// Cached returns the number of decoded images held
func (l *DiskLoader) Cached() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.cache)
}
