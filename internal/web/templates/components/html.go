// Package components holds the site's HTML fragments. Fragments are swapped
// in by HTMX, so each one renders a stable element id.
package components

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// html accumulates the first write error so components can emit markup in
// sequence and check once.
type html struct {
	w   io.Writer
	err error
}

func (h *html) raw(s string) {
	if h.err == nil {
		_, h.err = io.WriteString(h.w, s)
	}
}

func (h *html) text(s string) {
	h.raw(templ.EscapeString(s))
}

func (h *html) url(s string) {
	h.text(string(templ.URL(s)))
}

func (h *html) render(c templ.Component, ctx context.Context) {
	if h.err == nil {
		h.err = c.Render(ctx, h.w)
	}
}
