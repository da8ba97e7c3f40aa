package handlers

import (
	"net/http"

	"github.com/gorilla/csrf"

	"github.com/carlosceballos0427/mi-pagina-portafolio/internal/api/middleware"
	"github.com/carlosceballos0427/mi-pagina-portafolio/internal/i18n"
	"github.com/carlosceballos0427/mi-pagina-portafolio/internal/models"
	"github.com/carlosceballos0427/mi-pagina-portafolio/internal/web/session"
	"github.com/carlosceballos0427/mi-pagina-portafolio/internal/web/templates/components"
	"github.com/carlosceballos0427/mi-pagina-portafolio/internal/web/templates/pages"
)

// ShowHome renders the full landing page with the visitor's modal state.
// Visitors without a session see the modal closed.
func (h *Handler) ShowHome(w http.ResponseWriter, r *http.Request) {
	h.renderHome(w, r, http.StatusOK, h.modalProps(r, session.FromContext(r.Context())))
}

// ShowProjects renders the project grid, as a fragment for HTMX.
func (h *Handler) ShowProjects(w http.ResponseWriter, r *http.Request) {
	if isHTMX(r) {
		h.render(w, r, http.StatusOK, components.ProjectGrid(h.projects()))
		return
	}
	h.ShowHome(w, r)
}

func (h *Handler) renderHome(w http.ResponseWriter, r *http.Request, status int, modal components.ContactModalProps) {
	h.render(w, r, status, pages.Home(pages.HomeProps{
		Projects:  h.projects(),
		Modal:     modal,
		CSRFToken: csrf.Token(r),
		Nonce:     middleware.GetCSPNonce(r.Context()),
	}))
}

// modalProps builds the modal view from the session's flow and shows a
// pending failure notice, if any.
func (h *Handler) modalProps(r *http.Request, sess *session.Session) components.ContactModalProps {
	props := h.flowProps(r, sess)
	h.attachNotice(r, sess, &props)
	return props
}

// flowProps builds the modal view without touching the notice mailbox.
// A nil session renders a closed, idle modal.
func (h *Handler) flowProps(r *http.Request, sess *session.Session) components.ContactModalProps {
	props := components.ContactModalProps{
		Status:    models.StatusIdle,
		CSRFToken: csrf.Token(r),
	}
	if sess == nil {
		return props
	}
	snap := sess.Flow.Snapshot()
	props.Open = snap.Open
	props.Status = snap.Status
	props.ResetDelay = sess.Flow.ResetDelay()
	return props
}

// attachNotice moves the session's pending notice into an open idle form.
// A closed modal leaves it parked until the visitor opens the modal again.
func (h *Handler) attachNotice(r *http.Request, sess *session.Session, props *components.ContactModalProps) {
	if sess == nil || !props.Open || props.Status != models.StatusIdle {
		return
	}
	notice, ok := sess.TakeNotice()
	if !ok {
		return
	}
	props.Alert = i18n.FromContext(r.Context()).T(string(notice))
	props.AlertKind = components.AlertError
}
