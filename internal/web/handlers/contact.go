package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/carlosceballos0427/mi-pagina-portafolio/internal/contact"
	"github.com/carlosceballos0427/mi-pagina-portafolio/internal/i18n"
	"github.com/carlosceballos0427/mi-pagina-portafolio/internal/models"
	"github.com/carlosceballos0427/mi-pagina-portafolio/internal/web/session"
	"github.com/carlosceballos0427/mi-pagina-portafolio/internal/web/templates/components"
)

var fieldLabelKeys = map[string]string{
	"name":    i18n.KeyFieldName,
	"email":   i18n.KeyFieldEmail,
	"message": i18n.KeyFieldMessage,
}

// ShowContact renders the current modal state. The success view polls it
// to pick up the reset.
func (h *Handler) ShowContact(w http.ResponseWriter, r *http.Request) {
	h.respondModal(w, r, http.StatusOK, h.modalProps(r, session.FromContext(r.Context())))
}

// OpenContact shows the modal.
func (h *Handler) OpenContact(w http.ResponseWriter, r *http.Request) {
	sess := h.getSession(w, r)
	if sess == nil {
		return
	}
	sess.Flow.Open()
	h.respondToggle(w, r, sess)
}

// CloseContact hides the modal. A submission in flight keeps going.
func (h *Handler) CloseContact(w http.ResponseWriter, r *http.Request) {
	sess := h.getSession(w, r)
	if sess == nil {
		return
	}
	sess.Flow.Close()
	h.respondToggle(w, r, sess)
}

// respondToggle answers open/close: a fragment for HTMX, a redirect home
// for plain form posts.
func (h *Handler) respondToggle(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	if isHTMX(r) {
		h.render(w, r, http.StatusOK, components.ContactModal(h.modalProps(r, sess)))
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// SubmitContact runs one submission through the visitor's flow.
//
// HTMX only swaps 2xx responses, so HTMX clients always get 200 and read
// the outcome from the fragment. Plain form posts get a status code that
// matches the outcome.
func (h *Handler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	sess := h.getSession(w, r)
	if sess == nil {
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	loc := i18n.FromContext(r.Context())
	input := models.ContactInputFromForm(r.PostForm)

	// A submit implies the modal is showing, also for plain form posts.
	sess.Flow.Open()

	// The send outlives the request: closing the tab does not abort it.
	err := sess.Flow.Submit(context.WithoutCancel(r.Context()), input)

	props := h.flowProps(r, sess)
	if err == nil {
		h.respondModal(w, r, http.StatusOK, props)
		return
	}

	props.Input = input
	status := http.StatusInternalServerError

	var verr *models.ValidationError
	switch {
	case errors.As(err, &verr):
		status = http.StatusUnprocessableEntity
		props.Invalid = invalidFields(verr)
		props.Alert = loc.T(i18n.KeyContactInvalid, fieldLabels(loc, props.Invalid))
		props.AlertKind = components.AlertWarning
	case errors.Is(err, contact.ErrSubmitInProgress):
		status = http.StatusConflict
		props.Alert = loc.T(i18n.KeyContactBusy)
		props.AlertKind = components.AlertWarning
	case errors.Is(err, contact.ErrNotIdle):
		// Success view is still up; show it again.
		status = http.StatusConflict
	case errors.Is(err, contact.ErrRejected), errors.Is(err, contact.ErrTransport):
		status = http.StatusBadGateway
		if errors.Is(err, contact.ErrTransport) {
			status = http.StatusServiceUnavailable
		}
		// A concurrent render may already have shown the notice.
		h.attachNotice(r, sess, &props)
	default:
		h.logger.Error("contact submission failed", zap.Error(err))
		props.Alert = loc.T(i18n.KeyContactConnectivity)
		props.AlertKind = components.AlertError
	}

	h.respondModal(w, r, status, props)
}

func (h *Handler) respondModal(w http.ResponseWriter, r *http.Request, status int, props components.ContactModalProps) {
	if isHTMX(r) {
		h.render(w, r, http.StatusOK, components.ContactModal(props))
		return
	}
	h.renderHome(w, r, status, props)
}

func invalidFields(verr *models.ValidationError) []string {
	out := make([]string, 0, len(verr.Fields))
	for _, f := range verr.Fields {
		out = append(out, f.Field)
	}
	return out
}

func fieldLabels(loc *i18n.Localizer, fields []string) string {
	labels := make([]string, 0, len(fields))
	for _, f := range fields {
		if key, ok := fieldLabelKeys[f]; ok {
			labels = append(labels, loc.T(key))
		} else {
			labels = append(labels, f)
		}
	}
	return strings.Join(labels, ", ")
}
