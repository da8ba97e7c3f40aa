// Package projects serves the portfolio catalog as JSON.
package projects

import (
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/carlosceballos0427/mi-pagina-portafolio/internal/models"
)

// Response helpers (same envelope as the api package)
type errorResponse struct {
	Error errorBody `json:"error"`
}
type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
type dataResponse struct {
	Data any `json:"data"`
}

const (
	errCodeBadRequest       = "BAD_REQUEST"
	errCodeValidationFailed = "VALIDATION_FAILED"
	errCodeNotFound         = "NOT_FOUND"
)

func jsonError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(errorResponse{Error: errorBody{Code: code, Message: message}})
}

func jsonOK(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(dataResponse{Data: data})
}

// ProjectResponse is the wire form of a catalog entry.
type ProjectResponse struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Year        int      `json:"year"`
	Tech        []string `json:"tech"`
	Link        string   `json:"link"`
	Type        string   `json:"type"`
	Recent      bool     `json:"recent"`
}

// Source returns the catalog in display order.
type Source func() []models.Project

type Handler struct {
	source Source
	logger *zap.Logger
}

func NewHandler(source Source, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{source: source, logger: logger}
}

// List returns every project in catalog order, optionally filtered by type.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	typ := r.URL.Query().Get("type")
	if err := ValidateType(typ); err != nil {
		jsonError(w, http.StatusBadRequest, errCodeValidationFailed, err.Error())
		return
	}

	projects := h.source()
	resp := make([]*ProjectResponse, 0, len(projects))
	for _, p := range projects {
		if typ != "" && string(p.Type) != typ {
			continue
		}
		resp = append(resp, projectToResponse(p))
	}
	jsonOK(w, resp)
}

// GetByTitle returns one project by its title.
func (h *Handler) GetByTitle(w http.ResponseWriter, r *http.Request) {
	// chi matches on RawPath when the request has one, and the param is
	// then still escaped. Otherwise it is already decoded.
	title := chi.URLParam(r, "title")
	if r.URL.RawPath != "" {
		var err error
		title, err = url.PathUnescape(title)
		if err != nil {
			jsonError(w, http.StatusBadRequest, errCodeBadRequest, "invalid project title")
			return
		}
	}
	if err := ValidateTitle(title); err != nil {
		jsonError(w, http.StatusBadRequest, errCodeBadRequest, err.Error())
		return
	}

	for _, p := range h.source() {
		if p.Title == title {
			jsonOK(w, projectToResponse(p))
			return
		}
	}
	h.logger.Debug("project not found", zap.String("title", title))
	jsonError(w, http.StatusNotFound, errCodeNotFound, "project not found")
}

func projectToResponse(p models.Project) *ProjectResponse {
	tech := p.Tech
	if tech == nil {
		tech = []string{}
	}
	return &ProjectResponse{
		Title:       p.Title,
		Description: p.Description,
		Year:        p.Year,
		Tech:        tech,
		Link:        p.Href(),
		Type:        string(p.Type),
		Recent:      p.IsRecent(),
	}
}
