package projects

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/carlosceballos0427/mi-pagina-portafolio/internal/catalog"
	"github.com/carlosceballos0427/mi-pagina-portafolio/internal/models"
)

func newTestRouter(source Source) http.Handler {
	h := NewHandler(source, nil)
	r := chi.NewRouter()
	r.Get("/projects", h.List)
	r.Get("/projects/{title}", h.GetByTitle)
	return r
}

func decodeList(t *testing.T, rec *httptest.ResponseRecorder) []ProjectResponse {
	t.Helper()
	var body struct {
		Data []ProjectResponse `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return body.Data
}

func TestHandler_ListKeepsCatalogOrder(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestRouter(catalog.Projects).ServeHTTP(rec, httptest.NewRequest("GET", "/projects", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	got := decodeList(t, rec)
	want := catalog.Projects()
	if len(got) != len(want) {
		t.Fatalf("got %d projects, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].Title != want[i].Title {
			t.Errorf("project %d = %q, want %q", i, got[i].Title, want[i].Title)
		}
	}
	if !got[0].Recent || got[3].Recent {
		t.Error("recent flag does not follow project type")
	}
}

func TestHandler_ListFilterByType(t *testing.T) {
	tests := []struct {
		query      string
		wantStatus int
		wantCount  int
	}{
		{"?type=Recent", http.StatusOK, 2},
		{"?type=2022", http.StatusOK, 2},
		{"?type=1999", http.StatusBadRequest, 0},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			rec := httptest.NewRecorder()
			newTestRouter(catalog.Projects).ServeHTTP(rec, httptest.NewRequest("GET", "/projects"+tt.query, nil))
			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if tt.wantStatus == http.StatusOK {
				if got := decodeList(t, rec); len(got) != tt.wantCount {
					t.Errorf("got %d projects, want %d", len(got), tt.wantCount)
				}
			}
		})
	}
}

func TestHandler_ListEmptyCatalog(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestRouter(func() []models.Project { return nil }).ServeHTTP(rec, httptest.NewRequest("GET", "/projects", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if rec.Body.String() != "{\"data\":[]}\n" {
		t.Errorf("body = %q, want empty data array", rec.Body.String())
	}
}

func TestHandler_GetByTitle(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		wantStatus int
		wantLink   string
	}{
		{"found", "/projects/Mascota%20Feliz", http.StatusOK, "https://github.com/carlosceballos0427/Mascota feliz"},
		{"not found", "/projects/Nope", http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			newTestRouter(catalog.Projects).ServeHTTP(rec, httptest.NewRequest("GET", tt.path, nil))
			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if tt.wantLink == "" {
				return
			}
			var body struct {
				Data ProjectResponse `json:"data"`
			}
			if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if body.Data.Link != tt.wantLink {
				t.Errorf("link = %q, want %q", body.Data.Link, tt.wantLink)
			}
		})
	}
}

func TestHandler_GetByTitle_EscapedTitles(t *testing.T) {
	source := func() []models.Project {
		return []models.Project{
			{Title: "100% Go", Year: 2024, Type: models.ProjectTypeRecent},
			{Title: "Front/Back", Year: 2022, Type: models.ProjectType2022},
		}
	}

	tests := []struct {
		path      string
		wantTitle string
	}{
		{"/projects/100%25%20Go", "100% Go"},
		{"/projects/Front%2FBack", "Front/Back"},
	}

	for _, tt := range tests {
		t.Run(tt.wantTitle, func(t *testing.T) {
			rec := httptest.NewRecorder()
			newTestRouter(source).ServeHTTP(rec, httptest.NewRequest("GET", tt.path, nil))
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200", rec.Code)
			}
			var body struct {
				Data ProjectResponse `json:"data"`
			}
			if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if body.Data.Title != tt.wantTitle {
				t.Errorf("title = %q, want %q", body.Data.Title, tt.wantTitle)
			}
		})
	}
}

func TestProjectToResponse_PlaceholderLink(t *testing.T) {
	resp := projectToResponse(models.Project{Title: "Draft", Type: models.ProjectTypeRecent})
	if resp.Link != "#" {
		t.Errorf("Link = %q, want #", resp.Link)
	}
	if resp.Tech == nil {
		t.Error("Tech is nil, want empty slice")
	}
}

func TestValidateType(t *testing.T) {
	for _, ok := range []string{"", "Recent", "2022"} {
		if err := ValidateType(ok); err != nil {
			t.Errorf("ValidateType(%q) error = %v", ok, err)
		}
	}
	if err := ValidateType("recent"); err == nil {
		t.Error("ValidateType(recent) accepted a lowercase type")
	}
}
