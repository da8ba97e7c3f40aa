package components

import (
	"context"
	"io"
	"strconv"
	"time"

	"github.com/a-h/templ"

	"github.com/carlosceballos0427/mi-pagina-portafolio/internal/i18n"
	"github.com/carlosceballos0427/mi-pagina-portafolio/internal/models"
)

// ContactModalID is the id of the element every contact fragment replaces.
const ContactModalID = "contact-modal"

// csrfFieldName matches gorilla/csrf's default form field.
const csrfFieldName = "gorilla.csrf.Token"

// sendingPoll is how often the sending view asks for the outcome.
const sendingPoll = "1s"

// ContactModalProps describes one render of the contact modal.
type ContactModalProps struct {
	Open       bool
	Status     models.Status
	Input      models.ContactInput
	Invalid    []string // form field names that failed validation
	Alert      string   // localized failure message, empty for none
	AlertKind  string
	CSRFToken  string
	ResetDelay time.Duration
}

func (p ContactModalProps) invalid(field string) bool {
	for _, f := range p.Invalid {
		if f == field {
			return true
		}
	}
	return false
}

// ContactModal renders the modal slot. A closed modal renders an empty
// slot so later swaps have a target.
func ContactModal(p ContactModalProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		loc := i18n.FromContext(ctx)
		h := &html{w: w}

		if !p.Open {
			h.raw(`<div id="` + ContactModalID + `"></div>`)
			return h.err
		}

		h.raw(`<div id="` + ContactModalID + `" class="modal-overlay">`)
		h.raw(`<div class="modal" role="dialog" aria-modal="true" aria-labelledby="contact-title">`)
		h.raw(`<form class="modal-close" method="post" action="/contact/close" hx-post="/contact/close" hx-target="#` + ContactModalID + `" hx-swap="outerHTML">`)
		csrfField(h, p.CSRFToken)
		h.raw(`<button type="submit" class="btn-icon" aria-label="`)
		h.text(loc.T(i18n.KeyContactClose))
		h.raw(`">&times;</button></form>`)

		if p.Status == models.StatusSuccess {
			contactSuccess(h, loc, p)
		} else {
			contactForm(ctx, h, loc, p)
		}

		h.raw(`</div></div>`)
		return h.err
	})
}

func contactSuccess(h *html, loc *i18n.Localizer, p ContactModalProps) {
	delay := p.ResetDelay
	if delay <= 0 {
		delay = 3000 * time.Millisecond
	}
	// The server flow owns the reset timer; the view asks for the state
	// once it is due.
	h.raw(`<div class="contact-success" hx-get="/contact" hx-trigger="load delay:`)
	h.raw(strconv.FormatInt(delay.Milliseconds(), 10))
	h.raw(`ms" hx-target="#` + ContactModalID + `" hx-swap="outerHTML">`)
	h.raw(`<div class="success-icon" aria-hidden="true">&#10003;</div><h3 id="contact-title">`)
	h.text(loc.T(i18n.KeyContactSuccessTitle))
	h.raw(`</h3><p>`)
	h.text(loc.T(i18n.KeyContactSuccessBody))
	h.raw(`</p></div>`)
}

func contactForm(ctx context.Context, h *html, loc *i18n.Localizer, p ContactModalProps) {
	sending := p.Status == models.StatusSending

	h.raw(`<h3 id="contact-title" class="modal-title">`)
	h.text(loc.T(i18n.KeyContactTitle))
	h.raw(`</h3><p class="modal-subtitle">`)
	h.text(loc.T(i18n.KeyContactSubtitle))
	h.raw(`</p>`)

	if p.Alert != "" {
		kind := p.AlertKind
		if kind == "" {
			kind = AlertError
		}
		h.render(Alert(kind, p.Alert), ctx)
	}

	if sending {
		h.raw(`<div class="contact-poll" hx-get="/contact" hx-trigger="every ` + sendingPoll + `" hx-target="#` + ContactModalID + `" hx-swap="outerHTML"></div>`)
	}
	h.raw(`<form class="contact-form" method="post" action="/contact" hx-post="/contact" hx-target="#` + ContactModalID + `" hx-swap="outerHTML" hx-disabled-elt="find button[type=submit]">`)
	csrfField(h, p.CSRFToken)

	field(h, "name", "text", loc.T(i18n.KeyContactName), loc.T(i18n.KeyContactNamePlaceholder), p.Input.Name, p.invalid("name"), sending)
	field(h, "email", "email", loc.T(i18n.KeyContactEmail), loc.T(i18n.KeyContactEmailPlaceholder), p.Input.Email, p.invalid("email"), sending)

	h.raw(`<label class="field"><span>`)
	h.text(loc.T(i18n.KeyContactMessage))
	h.raw(`</span><textarea name="message" rows="4" required placeholder="`)
	h.text(loc.T(i18n.KeyContactMessagePlaceholder))
	h.raw(`"`)
	invalidAttrs(h, p.invalid("message"), sending)
	h.raw(`>`)
	h.text(p.Input.Message)
	h.raw(`</textarea></label>`)

	h.raw(`<button type="submit" class="btn btn-primary"`)
	if sending {
		h.raw(` disabled aria-busy="true"><span class="spinner" aria-hidden="true"></span>`)
		h.text(loc.T(i18n.KeyContactSending))
	} else {
		h.raw(`>`)
		h.text(loc.T(i18n.KeyContactSend))
	}
	h.raw(`</button></form>`)
}

func field(h *html, name, typ, label, placeholder, value string, invalid, readonly bool) {
	h.raw(`<label class="field"><span>`)
	h.text(label)
	h.raw(`</span><input type="` + typ + `" name="` + name + `" required placeholder="`)
	h.text(placeholder)
	h.raw(`" value="`)
	h.text(value)
	h.raw(`"`)
	invalidAttrs(h, invalid, readonly)
	h.raw(`></label>`)
}

func invalidAttrs(h *html, invalid, readonly bool) {
	if invalid {
		h.raw(` aria-invalid="true"`)
	}
	if readonly {
		h.raw(` readonly`)
	}
}

func csrfField(h *html, token string) {
	if token == "" {
		return
	}
	h.raw(`<input type="hidden" name="` + csrfFieldName + `" value="`)
	h.text(token)
	h.raw(`">`)
}

// ContactTrigger renders a button that opens the modal. label is a message
// key.
func ContactTrigger(label, class, csrfToken string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		loc := i18n.FromContext(ctx)
		h := &html{w: w}
		h.raw(`<form class="contact-trigger" method="post" action="/contact/open" hx-post="/contact/open" hx-target="#` + ContactModalID + `" hx-swap="outerHTML">`)
		csrfField(h, csrfToken)
		h.raw(`<button type="submit" class="`)
		h.text(class)
		h.raw(`">`)
		h.text(loc.T(label))
		h.raw(`</button></form>`)
		return h.err
	})
}
