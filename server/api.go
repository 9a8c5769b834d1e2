package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/lixenwraith/folio/blog"
	"github.com/lixenwraith/folio/parameter"
	"github.com/lixenwraith/folio/portfolio"
)

type errorBody struct {
	Error string `json:"error"`
}

// PortfolioIndex is the GET /api/portfolio body
type PortfolioIndex struct {
	Categories []portfolio.Category    `json:"categories"`
	Pages      []portfolio.PageSummary `json:"pages"`
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("http: encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, errorBody{Error: msg})
}

// handleBlogList never fails, a missing or unreadable directory lists nothing
func (s *Server) handleBlogList(w http.ResponseWriter, r *http.Request) {
	posts, err := s.blog.List()
	if err != nil {
		log.Printf("http: blog list: %v", err)
	}
	if posts == nil {
		posts = []blog.Summary{}
	}
	writeJSON(w, http.StatusOK, posts)
}

func (s *Server) handleBlogPost(w http.ResponseWriter, r *http.Request) {
	post, err := s.blog.Get(r.PathValue("slug"))
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, post)
	case errors.Is(err, blog.ErrNoDirectory):
		log.Printf("http: blog post: %v", err)
		writeError(w, http.StatusNotFound, parameter.ErrMsgBlogDirectory)
	case errors.Is(err, blog.ErrNotFound):
		writeError(w, http.StatusNotFound, parameter.ErrMsgPostNotFound)
	default:
		log.Printf("http: blog post: %v", err)
		writeError(w, http.StatusInternalServerError, parameter.ErrMsgInternal)
	}
}

func (s *Server) handlePortfolio(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, PortfolioIndex{
		Categories: s.cfg.Categories,
		Pages:      s.pages.Summaries(),
	})
}

func (s *Server) handlePortfolioPage(w http.ResponseWriter, r *http.Request) {
	page, ok := s.pages.Get(r.PathValue("id"))
	if !ok {
		writeError(w, http.StatusNotFound, parameter.ErrMsgPageNotFound)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.reg.Snapshot())
}
