package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/folio/portfolio"
)

// BasePathEnv names the repository a static deployment is published under
const BasePathEnv = "NEXT_PUBLIC_GH_PAGES_REPO"

// Config holds the settings shared by the terminal and server binaries
// Zero fields take defaults after load
type Config struct {
	// Listen is the HTTP listen address (default ":8080")
	Listen string `yaml:"listen"`

	// BasePath prefixes every route, e.g. "/folio" (default none)
	BasePath string `yaml:"base_path"`

	// PublicDir serves static assets and resolves shape images (default "public")
	PublicDir string `yaml:"public_dir"`

	// BlogDir holds the markdown post sources (default "content/blog")
	BlogDir string `yaml:"blog_dir"`

	// PagesFile overrides the built-in portfolio page configs when set
	PagesFile string `yaml:"pages_file"`

	// Categories feed the shape image pool (default the published sets)
	Categories []portfolio.Category `yaml:"categories"`

	// Viewport is the initial headless viewport in px (default 1280x800)
	Viewport Viewport `yaml:"viewport"`

	// FrameRate is the scene update rate in Hz (default 60)
	FrameRate int `yaml:"frame_rate"`

	// ImageCache bounds decoded images held in memory (default 32)
	ImageCache int `yaml:"image_cache"`

	// Seed fixes the scene random source, 0 seeds from the clock
	Seed int64 `yaml:"seed"`

	// Audio enables the spawn cue in the terminal binary (default false)
	Audio *bool `yaml:"audio"`
}

// Viewport is a pixel size
type Viewport struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Default returns a config with every default applied
func Default() Config {
	var c Config
	c.applyDefaults()
	return c
}

// AudioEnabled handles the nil-pointer case for the default (false)
func (c *Config) AudioEnabled() bool {
	return c.Audio != nil && *c.Audio
}

func (c *Config) applyDefaults() {
	if c.Listen == "" {
		c.Listen = ":8080"
	}
	if c.PublicDir == "" {
		c.PublicDir = "public"
	}
	if c.BlogDir == "" {
		c.BlogDir = "content/blog"
	}
	if len(c.Categories) == 0 {
		c.Categories = append([]portfolio.Category(nil), portfolio.DefaultCategories...)
	}
	if c.Viewport.Width <= 0 {
		c.Viewport.Width = 1280
	}
	if c.Viewport.Height <= 0 {
		c.Viewport.Height = 800
	}
	if c.FrameRate <= 0 {
		c.FrameRate = 60
	}
	if c.ImageCache <= 0 {
		c.ImageCache = 32
	}
	c.BasePath = NormalizeBasePath(c.BasePath)
}

// Load reads a YAML config file; an empty path yields the defaults
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config file: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ApplyEnv fills the base path from the environment when the file left it empty
func (c *Config) ApplyEnv(getenv func(string) string) {
	if c.BasePath == "" {
		c.BasePath = NormalizeBasePath(getenv(BasePathEnv))
	}
}

// Validate rejects settings no component can run with
func (c *Config) Validate() error {
	var errs []error
	for _, cat := range c.Categories {
		if cat.Name == "" || strings.ContainsAny(cat.Name, `/\`) || cat.Name == ".." {
			errs = append(errs, fmt.Errorf("invalid category name %q", cat.Name))
		}
		if cat.Count < 0 {
			errs = append(errs, fmt.Errorf("category %q: negative count", cat.Name))
		}
	}
	if c.FrameRate > 240 {
		errs = append(errs, fmt.Errorf("frame_rate %d above 240", c.FrameRate))
	}
	return errors.Join(errs...)
}

// NormalizeBasePath returns "" or a path with one leading and no trailing slash
func NormalizeBasePath(p string) string {
	p = strings.Trim(strings.TrimSpace(p), "/")
	if p == "" {
		return ""
	}
	return "/" + p
}
