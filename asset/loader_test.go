package asset

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func writePNG(t *testing.T, dir, rel string, w, h int) {
	t.Helper()
	full := filepath.Join(dir, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		t.Fatal(err)
	}
	f, err := os.Create(full)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
}

func TestDiskLoaderLoadAndCache(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, dir, "portfolio/nature/image1.png", 4, 3)
	l := NewDiskLoader(dir, 2)

	img, err := l.Load("/portfolio/nature/image1.png")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 4 || b.Dy() != 3 {
		t.Errorf("Expected 4x3, got %v", b)
	}

	again, _ := l.Load("/portfolio/nature/image1.png")
	if again != img {
		t.Error("Expected cached image on second load")
	}
}

func TestDiskLoaderEviction(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.png", "b.png", "c.png"} {
		writePNG(t, dir, name, 1, 1)
	}
	l := NewDiskLoader(dir, 2)
	for _, name := range []string{"/a.png", "/b.png", "/c.png"} {
		if _, err := l.Load(name); err != nil {
			t.Fatal(err)
		}
	}
	if l.Cached() != 2 {
		t.Errorf("Expected cache bounded at 2, got %d", l.Cached())
	}
}

func TestDiskLoaderErrors(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "bad.jpg"), []byte("not an image"), 0o644); err != nil {
		t.Fatal(err)
	}
	l := NewDiskLoader(dir, 0)

	tests := []struct {
		name    string
		src     string
		invalid bool
	}{
		{"missing", "/portfolio/none.jpg", false},
		{"undecodable", "/bad.jpg", false},
		{"traversal", "/../etc/passwd", true},
		{"relative traversal", "portfolio/../../secret.png", true},
		{"empty", "", true},
		{"root", "/", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := l.Load(tt.src)
			if err == nil {
				t.Fatal("Expected error")
			}
			if errors.Is(err, ErrInvalidPath) != tt.invalid {
				t.Errorf("Expected invalid=%v, got %v", tt.invalid, err)
			}
		})
	}
}
