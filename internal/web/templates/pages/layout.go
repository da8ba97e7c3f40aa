// Package pages holds full-page templates.
package pages

import (
	"context"
	"encoding/json"
	"io"

	"github.com/a-h/templ"

	"github.com/carlosceballos0427/mi-pagina-portafolio/internal/i18n"
)

// htmxSrc is the pinned htmx build loaded from the CDN allowed by the CSP.
const htmxSrc = "https://cdn.jsdelivr.net/npm/htmx.org@2.0.4/dist/htmx.min.js"

// LayoutProps are the page-wide values every page needs.
type LayoutProps struct {
	Title     string
	CSRFToken string
	Nonce     string
}

// Layout wraps body in the site's HTML document.
func Layout(p LayoutProps, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		loc := i18n.FromContext(ctx)

		// Every HTMX request carries the CSRF token as a header.
		headers, err := json.Marshal(map[string]string{"X-CSRF-Token": p.CSRFToken})
		if err != nil {
			return err
		}

		var werr error
		write := func(s string) {
			if werr == nil {
				_, werr = io.WriteString(w, s)
			}
		}

		write(`<!DOCTYPE html><html lang="`)
		write(templ.EscapeString(loc.Lang()))
		write(`"><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1"><title>`)
		write(templ.EscapeString(p.Title))
		write(`</title><link rel="stylesheet" href="/static/css/site.css"><link rel="icon" href="/static/favicon.svg" type="image/svg+xml">`)
		write(`<script src="` + htmxSrc + `" nonce="`)
		write(templ.EscapeString(p.Nonce))
		write(`" defer></script></head><body hx-headers='`)
		write(templ.EscapeString(string(headers)))
		write(`'>`)
		if werr != nil {
			return werr
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		write(`</body></html>`)
		return werr
	})
}
