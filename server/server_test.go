package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/lixenwraith/folio/blog"
	"github.com/lixenwraith/folio/config"
	"github.com/lixenwraith/folio/status"
)

func writePost(t *testing.T, dir, slug, date string) {
	t.Helper()
	src := "---\ntitle: \"" + slug + "\"\ndate: " + date + "\n---\nbody words here\n"
	if err := os.WriteFile(filepath.Join(dir, slug+".md"), []byte(src), 0o644); err != nil {
		t.Fatalf("Failed to write post: %v", err)
	}
}

func newTestServer(t *testing.T, mutate func(*config.Config)) (*Server, *status.Registry) {
	t.Helper()
	cfg := config.Default()
	cfg.BlogDir = filepath.Join(t.TempDir(), "blog")
	cfg.PublicDir = t.TempDir()
	if mutate != nil {
		mutate(&cfg)
	}
	reg := status.NewRegistry()
	s := NewServer(nil)
	if err := s.Init(&cfg, reg); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	return s, reg
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body errorBody
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("Failed to decode error body: %v", err)
	}
	return body.Error
}

func TestBlogListMissingDirectory(t *testing.T) {
	s, _ := newTestServer(t, nil)

	rec := get(t, s.Handler(), "/api/blog")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	if got := strings.TrimSpace(rec.Body.String()); got != "[]" {
		t.Errorf("Expected empty array, got %s", got)
	}
}

func TestBlogListNewestFirst(t *testing.T) {
	s, _ := newTestServer(t, nil)
	os.MkdirAll(s.cfg.BlogDir, 0o755)
	writePost(t, s.cfg.BlogDir, "older", "2023-01-01")
	writePost(t, s.cfg.BlogDir, "newer", "2024-05-01")

	rec := get(t, s.Handler(), "/api/blog")
	var posts []blog.Summary
	if err := json.NewDecoder(rec.Body).Decode(&posts); err != nil {
		t.Fatalf("Failed to decode: %v", err)
	}
	if len(posts) != 2 || posts[0].Slug != "newer" || posts[1].Slug != "older" {
		t.Errorf("Expected [newer older], got %+v", posts)
	}
}

func TestBlogPostErrors(t *testing.T) {
	s, _ := newTestServer(t, nil)

	rec := get(t, s.Handler(), "/api/blog/anything")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("Expected 404, got %d", rec.Code)
	}
	if msg := decodeError(t, rec); msg != "Blog directory not found" {
		t.Errorf("Expected directory message, got %q", msg)
	}

	os.MkdirAll(s.cfg.BlogDir, 0o755)
	for _, path := range []string{"/api/blog/missing", "/api/blog/.hidden"} {
		rec = get(t, s.Handler(), path)
		if rec.Code != http.StatusNotFound {
			t.Errorf("%s: expected 404, got %d", path, rec.Code)
			continue
		}
		if msg := decodeError(t, rec); msg != "Blog post not found" {
			t.Errorf("%s: expected post message, got %q", path, msg)
		}
	}
}

func TestBlogPostFound(t *testing.T) {
	s, _ := newTestServer(t, nil)
	os.MkdirAll(s.cfg.BlogDir, 0o755)
	writePost(t, s.cfg.BlogDir, "hello", "2024-02-02")

	rec := get(t, s.Handler(), "/api/blog/hello")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	var post blog.Post
	json.NewDecoder(rec.Body).Decode(&post)
	if post.Title != "hello" || post.ReadTime != "1 min read" || !strings.Contains(post.Content, "body words") {
		t.Errorf("Unexpected post %+v", post)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Expected JSON content type, got %q", ct)
	}
}

func TestPortfolioRoutes(t *testing.T) {
	s, _ := newTestServer(t, nil)

	rec := get(t, s.Handler(), "/api/portfolio")
	var index PortfolioIndex
	if err := json.NewDecoder(rec.Body).Decode(&index); err != nil {
		t.Fatalf("Failed to decode: %v", err)
	}
	if len(index.Categories) != 6 {
		t.Errorf("Expected 6 categories, got %d", len(index.Categories))
	}
	if len(index.Pages) == 0 {
		t.Fatal("Expected page summaries")
	}

	rec = get(t, s.Handler(), "/api/portfolio/"+index.Pages[0].ID)
	if rec.Code != http.StatusOK {
		t.Errorf("Expected 200 for known page, got %d", rec.Code)
	}
	rec = get(t, s.Handler(), "/api/portfolio/nope")
	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected 404 for unknown page, got %d", rec.Code)
	}
}

func TestStatusCountsRequests(t *testing.T) {
	s, reg := newTestServer(t, nil)

	get(t, s.Handler(), "/api/blog")
	get(t, s.Handler(), "/api/blog")
	rec := get(t, s.Handler(), "/api/status")

	var snap status.Snapshot
	if err := json.NewDecoder(rec.Body).Decode(&snap); err != nil {
		t.Fatalf("Failed to decode: %v", err)
	}
	// The status request itself is counted after its body is written
	if snap.Ints["http.requests"] != 2 {
		t.Errorf("Expected 2 requests in snapshot, got %d", snap.Ints["http.requests"])
	}
	if got := reg.Ints.Get("http.requests").Load(); got != 3 {
		t.Errorf("Expected 3 requests counted, got %d", got)
	}
}

func TestStaticAndBasePath(t *testing.T) {
	s, _ := newTestServer(t, func(c *config.Config) { c.BasePath = "/folio" })
	os.WriteFile(filepath.Join(s.cfg.PublicDir, "hello.txt"), []byte("hi"), 0o644)

	if rec := get(t, s.Handler(), "/folio/hello.txt"); rec.Code != http.StatusOK || rec.Body.String() != "hi" {
		t.Errorf("Expected static file under base path, got %d %q", rec.Code, rec.Body.String())
	}
	if rec := get(t, s.Handler(), "/folio/api/blog"); rec.Code != http.StatusOK {
		t.Errorf("Expected API under base path, got %d", rec.Code)
	}
	if rec := get(t, s.Handler(), "/api/blog"); rec.Code != http.StatusNotFound {
		t.Errorf("Expected 404 outside base path, got %d", rec.Code)
	}
}

func newRunningScene(t *testing.T, reg *status.Registry) *Scene {
	t.Helper()
	cfg := config.Default()
	cfg.Seed = 7
	sc := NewScene(nil)
	if err := sc.Init(&cfg, reg); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if err := sc.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	t.Cleanup(func() { sc.Stop() })
	return sc
}

func sceneVisible(sc *Scene) bool {
	var v bool
	sc.loop.Do(func() { v = sc.ctrl.Visible() })
	return v
}

func TestSceneVisibilityFollowsViewers(t *testing.T) {
	reg := status.NewRegistry()
	sc := newRunningScene(t, reg)
	visible := reg.Bools.Get("scene.visible")

	if sceneVisible(sc) || visible.Load() {
		t.Error("Expected hidden without viewers")
	}

	a := sc.Join()
	b := sc.Join()
	if !sceneVisible(sc) || !visible.Load() {
		t.Error("Expected visible with viewers")
	}

	a.SetVisible(false)
	if !sceneVisible(sc) {
		t.Error("Expected visible while one viewer still shows the page")
	}
	b.Leave()
	if sceneVisible(sc) {
		t.Error("Expected hidden once no viewer shows the page")
	}
	a.SetVisible(true)
	if !sceneVisible(sc) {
		t.Error("Expected visible again")
	}
	a.Leave()
	a.Leave()
	if sceneVisible(sc) {
		t.Error("Expected hidden after last viewer left")
	}
}

func TestSceneSnapshotAndStop(t *testing.T) {
	sc := newRunningScene(t, status.NewRegistry())

	f, ok := sc.Snapshot()
	if !ok {
		t.Fatal("Expected snapshot from running scene")
	}
	if len(f.Elements) == 0 {
		t.Error("Expected layout elements in frame")
	}

	sc.Stop()
	sc.Stop()
	if _, ok := sc.Snapshot(); ok {
		t.Error("Expected no snapshot after stop")
	}
	select {
	case <-sc.Done():
	default:
		t.Error("Expected Done closed after stop")
	}
}

func TestStreamDeliversFrames(t *testing.T) {
	reg := status.NewRegistry()
	sc := newRunningScene(t, reg)

	cfg := config.Default()
	s := NewServer(sc)
	if err := s.Init(&cfg, reg); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	ts := httptest.NewServer(s.Handler())
	defer ts.Close()

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws/scene"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("Dial failed: %v", err)
	}
	defer conn.Close()

	if err := conn.WriteJSON(ClientMessage{Type: "viewport", Width: 400, Height: 700}); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	var f Frame
	if err := conn.ReadJSON(&f); err != nil {
		t.Fatalf("Read frame failed: %v", err)
	}
	if f.T == 0 || len(f.Elements) == 0 {
		t.Errorf("Expected populated frame, got t=%d elements=%d", f.T, len(f.Elements))
	}
	if f.About.Width <= 0 || f.About.Height <= 0 {
		t.Errorf("Expected about text block in frame, got %+v", f.About)
	}
	for _, e := range f.Elements {
		if e.ID == "about-text" {
			t.Error("Expected about text outside the reactive elements")
		}
	}

	snap := reg.Snapshot()
	for _, key := range []string{"stream.encode_ms", "stream.encode_peak_ms"} {
		if v, ok := snap.Floats[key]; !ok || v < 0 {
			t.Errorf("Expected %s recorded, got %v (present %v)", key, v, ok)
		}
	}
	if peak, avg := snap.Floats["stream.encode_peak_ms"], snap.Floats["stream.encode_ms"]; peak < avg {
		t.Errorf("Expected peak %v >= average %v", peak, avg)
	}
	if got := reg.Ints.Get("stream.viewers").Load(); got != 1 {
		t.Errorf("Expected 1 viewer, got %d", got)
	}

	conn.Close()
	deadline := time.Now().Add(5 * time.Second)
	for reg.Ints.Get("stream.viewers").Load() != 0 {
		if time.Now().After(deadline) {
			t.Fatal("Expected viewer count to drop after disconnect")
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestServerReportsListening(t *testing.T) {
	s, reg := newTestServer(t, func(c *config.Config) { c.Listen = "127.0.0.1:0" })
	listening := reg.Bools.Get("http.listening")

	if listening.Load() {
		t.Error("Expected not listening before Start")
	}
	if err := s.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if !listening.Load() || s.Addr() == nil {
		t.Error("Expected listening after Start")
	}
	if err := s.Stop(); err != nil {
		t.Errorf("Stop failed: %v", err)
	}
	if listening.Load() {
		t.Error("Expected not listening after Stop")
	}
}
