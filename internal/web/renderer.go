// Package web renders the single-page site from embedded templates.
package web

import (
	"bytes"
	"fmt"
	"html/template"
	"io"

	"github.com/yosssi/gohtml"

	"artistryprime-go/internal/carousel"
	"artistryprime-go/internal/model"
)

// PageView is everything the page template needs for one response.
type PageView struct {
	Site     model.Site
	Carousel *carousel.Carousel
	Form     model.ContactForm
	State    model.SubmissionState
}

type Renderer struct {
	tmpl   *template.Template
	pretty bool
}

func NewRenderer(pretty bool) (*Renderer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{tmpl: tmpl, pretty: pretty}, nil
}

// Render executes the page into a buffer first so a template error never
// leaves a half-written response.
func (r *Renderer) Render(w io.Writer, view PageView) error {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, "page", view); err != nil {
		return fmt.Errorf("render page: %w", err)
	}

	out := buf.Bytes()
	if r.pretty {
		out = gohtml.FormatBytes(out)
	}
	_, err := w.Write(out)
	return err
}
