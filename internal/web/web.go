// Package web serves the single feedback page. Every widget posts to its own
// route; the server rebuilds only that widget from the posted form, runs its
// action and renders the page. The other widgets are rendered fresh.
package web

import (
	"embed"
	"html/template"
	"net/http"

	customMiddleware "feedback-system/internal/middleware"
	"feedback-system/internal/widgets"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// API is everything the page needs; each widget receives only its own part.
type API interface {
	widgets.Creator
	widgets.EmailUpdater
	widgets.EmailDeleter
	widgets.Searcher
}

type page struct {
	Submit *widgets.Submit
	Update *widgets.Update
	Delete *widgets.Delete
	Search *widgets.Search
}

type Server struct {
	api API
}

func NewServer(api API) *Server {
	return &Server{api: api}
}

func (s *Server) freshPage() *page {
	return &page{
		Submit: widgets.NewSubmit(s.api),
		Update: widgets.NewUpdate(s.api),
		Delete: widgets.NewDelete(s.api),
		Search: widgets.NewSearch(s.api),
	}
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(customMiddleware.RequestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/", s.index)
	r.Post("/submit", s.submit)
	r.Post("/submit/reset", s.submitReset)
	r.Post("/update", s.update)
	r.Post("/update/reset", s.updateReset)
	r.Post("/delete", s.delete)
	r.Post("/delete/cancel", s.deleteCancel)
	r.Post("/search", s.search)
	r.Post("/search/clear", s.searchClear)
	return r
}

func (s *Server) index(w http.ResponseWriter, r *http.Request) {
	s.render(w, s.freshPage())
}

func (s *Server) submit(w http.ResponseWriter, r *http.Request) {
	p := s.freshPage()
	p.Submit.UserName = r.PostFormValue("userName")
	p.Submit.Email = r.PostFormValue("email")
	p.Submit.SetRating(r.PostFormValue("rating"))
	p.Submit.Submit(r.Context())
	s.render(w, p)
}

func (s *Server) submitReset(w http.ResponseWriter, r *http.Request) {
	p := s.freshPage()
	p.Submit.Reset()
	s.render(w, p)
}

func (s *Server) update(w http.ResponseWriter, r *http.Request) {
	p := s.freshPage()
	p.Update.Email = r.PostFormValue("email")
	p.Update.UserName = r.PostFormValue("userName")
	p.Update.SetRating(r.PostFormValue("rating"))
	p.Update.Submit(r.Context())
	s.render(w, p)
}

func (s *Server) updateReset(w http.ResponseWriter, r *http.Request) {
	p := s.freshPage()
	p.Update.Email = r.PostFormValue("email")
	p.Update.Reset()
	s.render(w, p)
}

func (s *Server) delete(w http.ResponseWriter, r *http.Request) {
	p := s.freshPage()
	p.Delete.Email = r.PostFormValue("email")
	p.Delete.Confirming = r.PostFormValue("confirm") == "true"
	p.Delete.Submit(r.Context())
	s.render(w, p)
}

func (s *Server) deleteCancel(w http.ResponseWriter, r *http.Request) {
	p := s.freshPage()
	p.Delete.Cancel()
	s.render(w, p)
}

func (s *Server) search(w http.ResponseWriter, r *http.Request) {
	p := s.freshPage()
	p.Search.Query = r.PostFormValue("query")
	p.Search.Submit(r.Context())
	s.render(w, p)
}

func (s *Server) searchClear(w http.ResponseWriter, r *http.Request) {
	p := s.freshPage()
	p.Search.Clear()
	s.render(w, p)
}

func (s *Server) render(w http.ResponseWriter, p *page) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTemplate.ExecuteTemplate(w, "page.html", p); err != nil {
		log.Error().Err(err).Msg("error rendering page")
	}
}
