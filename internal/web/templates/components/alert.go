package components

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// Alert kinds.
const (
	AlertError   = "error"
	AlertWarning = "warning"
	AlertSuccess = "success"
)

// Alert renders a dismissable message box. kind is one of the Alert constants.
func Alert(kind, message string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &html{w: w}
		h.raw(`<div class="alert alert-`)
		h.text(kind)
		h.raw(`" role="alert" aria-live="assertive">`)
		h.text(message)
		h.raw(`</div>`)
		return h.err
	})
}
