package httpapi

import (
	"context"
	"encoding/json"
	"io/fs"
	"log"
	"net/http"
	"net/http/pprof"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"artistryprime-go/internal/carousel"
	"artistryprime-go/internal/model"
	"artistryprime-go/internal/services/contact"
	"artistryprime-go/internal/web"
)

type Submitter interface {
	Submit(ctx context.Context, form model.ContactForm) contact.Submission
}

type Handler struct {
	site     model.Site
	renderer *web.Renderer
	contact  Submitter
}

func NewHandler(site model.Site, renderer *web.Renderer, submitter Submitter) *Handler {
	return &Handler{site: site, renderer: renderer, contact: submitter}
}

func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()
	useMiddleware(r)

	r.Get("/", h.handlePage)
	r.Get("/projects/{position}/next", h.handleStep(true))
	r.Get("/projects/{position}/previous", h.handleStep(false))
	r.Post("/contact", h.handleContactForm)
	r.Post("/api/contact", h.handleContactJSON)
	r.Get("/healthz", h.handleHealth)

	static, err := fs.Sub(web.StaticFS, "static")
	if err != nil {
		panic(err)
	}
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(static))))

	r.Route("/debug/pprof", func(r chi.Router) {
		r.Get("/", pprof.Index)
		r.Get("/cmdline", pprof.Cmdline)
		r.Get("/profile", pprof.Profile)
		r.Get("/symbol", pprof.Symbol)
		r.Post("/symbol", pprof.Symbol)
		r.Get("/trace", pprof.Trace)
		r.Get("/allocs", pprof.Handler("allocs").ServeHTTP)
		r.Get("/block", pprof.Handler("block").ServeHTTP)
		r.Get("/goroutine", pprof.Handler("goroutine").ServeHTTP)
		r.Get("/heap", pprof.Handler("heap").ServeHTTP)
		r.Get("/mutex", pprof.Handler("mutex").ServeHTTP)
		r.Get("/threadcreate", pprof.Handler("threadcreate").ServeHTTP)
	})
	return r
}

// Recoverer must stay inside Brotli.
func useMiddleware(r chi.Router) {
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(Brotli)
	r.Use(middleware.Recoverer)
}

func (h *Handler) handlePage(w http.ResponseWriter, r *http.Request) {
	c, ok := h.carouselAt(w, carousel.ParsePosition(r.URL.Query().Get("project")))
	if !ok {
		return
	}
	h.render(w, web.PageView{Site: h.site, Carousel: c})
}

func (h *Handler) handleStep(forward bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, ok := h.carouselAt(w, carousel.ParsePosition(chi.URLParam(r, "position")))
		if !ok {
			return
		}
		if forward {
			c.Next()
		} else {
			c.Previous()
		}
		http.Redirect(w, r, "/?project="+strconv.Itoa(c.Position())+"#projects", http.StatusSeeOther)
	}
}

func (h *Handler) handleContactForm(w http.ResponseWriter, r *http.Request) {
	form, err := readForm(r)
	if err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	out := h.contact.Submit(r.Context(), form)

	c, ok := h.carouselAt(w, carousel.ParsePosition(r.URL.Query().Get("project")))
	if !ok {
		return
	}
	h.render(w, web.PageView{
		Site:     h.site,
		Carousel: c,
		Form:     out.Form,
		State:    out.State,
	})
}

func (h *Handler) handleContactJSON(w http.ResponseWriter, r *http.Request) {
	form, err := readForm(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, model.SubmissionResult{
			Type:    model.ResultError,
			Message: contact.ErrorMessage,
		})
		return
	}

	out := h.contact.Submit(r.Context(), form)
	writeJSON(w, http.StatusOK, out.State.Result)
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) carouselAt(w http.ResponseWriter, pos int) (*carousel.Carousel, bool) {
	c, err := carousel.At(h.site.Projects, pos)
	if err != nil {
		log.Printf("[http] carousel: %v", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return nil, false
	}
	return c, true
}

func (h *Handler) render(w http.ResponseWriter, view web.PageView) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.renderer.Render(w, view); err != nil {
		log.Printf("[http] %v", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

func readForm(r *http.Request) (model.ContactForm, error) {
	if err := r.ParseForm(); err != nil {
		return model.ContactForm{}, err
	}
	return model.ContactForm{
		Name:    r.PostForm.Get("user_name"),
		Email:   r.PostForm.Get("user_email"),
		Message: r.PostForm.Get("message"),
	}, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
