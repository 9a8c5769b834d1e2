package server

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"

	"github.com/lixenwraith/folio/blog"
	"github.com/lixenwraith/folio/config"
	"github.com/lixenwraith/folio/engine"
	"github.com/lixenwraith/folio/parameter"
	"github.com/lixenwraith/folio/portfolio"
	"github.com/lixenwraith/folio/service"
	"github.com/lixenwraith/folio/status"
)

// Server is the HTTP front end: JSON API, static files and the scene stream
type Server struct {
	cfg   *config.Config
	reg   *status.Registry
	scene *Scene
	blog  *blog.Store
	pages *portfolio.Catalog

	upgrader websocket.Upgrader
	handler  http.Handler
	srv      *http.Server
	ln       net.Listener

	statRequests  *atomic.Int64
	statErrors    *atomic.Int64
	statListening *atomic.Bool
}

// NewServer creates the HTTP service streaming from sc
func NewServer(sc *Scene) *Server {
	return &Server{scene: sc}
}

// Name implements service.Service
func (s *Server) Name() string {
	return "http"
}

// Dependencies implements service.Service
func (s *Server) Dependencies() []string {
	return []string{"scene"}
}

// Init implements service.Service
// Reads *config.Config and *status.Registry from args
func (s *Server) Init(args ...any) error {
	cfg, ok := service.Arg[*config.Config](args)
	if !ok {
		def := config.Default()
		cfg = &def
	}
	reg, ok := service.Arg[*status.Registry](args)
	if !ok {
		reg = status.NewRegistry()
	}
	s.cfg, s.reg = cfg, reg

	s.blog = blog.NewStore(cfg.BlogDir)
	pages, err := loadPages(cfg.PagesFile)
	if err != nil {
		return err
	}
	s.pages = pages

	s.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 4096,
		CheckOrigin:     func(*http.Request) bool { return true },
	}
	s.statRequests = reg.Ints.Get("http.requests")
	s.statErrors = reg.Ints.Get("http.errors")
	s.statListening = reg.Bools.Get("http.listening")
	s.handler = s.routes()
	return nil
}

func loadPages(path string) (*portfolio.Catalog, error) {
	if path == "" {
		return portfolio.DefaultPages(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pages file: %w", err)
	}
	defer f.Close()
	return portfolio.LoadPages(f)
}

// Start implements service.Service
// Binds the listener synchronously so address errors surface here
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.cfg.Listen)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.cfg.Listen, err)
	}
	s.ln = ln
	s.srv = &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: parameter.ReadHeaderTimeout,
	}

	engine.Go(func() {
		if err := s.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("http: serve: %v", err)
		}
	})
	s.statListening.Store(true)
	log.Printf("http: listening on %s%s", ln.Addr(), s.cfg.BasePath)
	return nil
}

// Stop implements service.Service
func (s *Server) Stop() error {
	if s.srv == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), parameter.ShutdownTimeout)
	defer cancel()
	err := s.srv.Shutdown(ctx)
	s.srv = nil
	s.statListening.Store(false)
	return err
}

// Addr returns the bound address, nil before Start
func (s *Server) Addr() net.Addr {
	if s.ln == nil {
		return nil
	}
	return s.ln.Addr()
}

// Handler returns the full route tree including the base path prefix
func (s *Server) Handler() http.Handler {
	return s.handler
}

func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/blog", s.handleBlogList)
	mux.HandleFunc("GET /api/blog/{slug}", s.handleBlogPost)
	mux.HandleFunc("GET /api/portfolio", s.handlePortfolio)
	mux.HandleFunc("GET /api/portfolio/{id}", s.handlePortfolioPage)
	mux.HandleFunc("GET /api/status", s.handleStatus)
	mux.HandleFunc("GET /ws/scene", s.handleStream)
	mux.Handle("GET /", http.FileServer(http.Dir(s.cfg.PublicDir)))

	var h http.Handler = mux
	if base := s.cfg.BasePath; base != "" {
		outer := http.NewServeMux()
		outer.Handle(base+"/", http.StripPrefix(base, mux))
		outer.Handle(base, http.RedirectHandler(base+"/", http.StatusMovedPermanently))
		h = outer
	}
	return s.logRequests(h)
}

// statusRecorder captures the response code for the access log
type statusRecorder struct {
	http.ResponseWriter
	code int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.code = code
	r.ResponseWriter.WriteHeader(code)
}

// Hijack lets the websocket upgrade through the recorder
func (r *statusRecorder) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	h, ok := r.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, errors.New("http: response does not support hijacking")
	}
	r.code = http.StatusSwitchingProtocols
	return h.Hijack()
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, code: http.StatusOK}
		next.ServeHTTP(rec, r)

		s.statRequests.Add(1)
		if rec.code >= http.StatusInternalServerError {
			s.statErrors.Add(1)
		}
		log.Printf("http: %s %s %d %s", r.Method, r.URL.Path, rec.code, time.Since(start).Round(time.Microsecond))
	})
}
