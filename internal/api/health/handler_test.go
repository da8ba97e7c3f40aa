package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

type stubChecker struct {
	name string
	err  error
}

func (c stubChecker) Name() string                  { return c.name }
func (c stubChecker) Check(ctx context.Context) error { return c.err }

func TestHandler_Health(t *testing.T) {
	h := NewHandler("1.2.3", nil)
	rec := httptest.NewRecorder()
	h.Health(rec, httptest.NewRequest("GET", "/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp HealthResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Status != "ok" || resp.Version != "1.2.3" {
		t.Errorf("resp = %+v", resp)
	}
}

func TestHandler_Ready(t *testing.T) {
	tests := []struct {
		name       string
		checkers   []Checker
		wantStatus int
		wantBody   string
	}{
		{"no checkers", nil, http.StatusOK, "ready"},
		{"all healthy", []Checker{stubChecker{name: "a"}, stubChecker{name: "b"}}, http.StatusOK, "ready"},
		{"one failing", []Checker{stubChecker{name: "a"}, stubChecker{name: "b", err: errors.New("down")}}, http.StatusServiceUnavailable, "not_ready"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler("", nil)
			for _, c := range tt.checkers {
				h.RegisterChecker(c)
			}
			rec := httptest.NewRecorder()
			h.Ready(rec, httptest.NewRequest("GET", "/health/ready", nil))

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			var resp HealthResponse
			if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if resp.Status != tt.wantBody {
				t.Errorf("status field = %q, want %q", resp.Status, tt.wantBody)
			}
		})
	}
}

func TestEndpointChecker(t *testing.T) {
	endpoint := "https://formspree.io/f/x"
	validate := func(raw string) error {
		if raw == "" {
			return errors.New("endpoint URL is required")
		}
		return nil
	}
	c := NewEndpointChecker(func() string { return endpoint }, validate)

	if err := c.Check(context.Background()); err != nil {
		t.Errorf("Check() error = %v", err)
	}
	endpoint = ""
	if err := c.Check(context.Background()); err == nil {
		t.Error("Check() accepted an empty endpoint")
	}
	if err := NewEndpointChecker(nil, nil).Check(context.Background()); err == nil {
		t.Error("unconfigured checker passed")
	}
}

func TestCatalogChecker(t *testing.T) {
	c := NewCatalogChecker(func() error { return errors.New("duplicate title") })
	if c.Name() != "catalog" {
		t.Errorf("Name() = %q", c.Name())
	}
	if err := c.Check(context.Background()); err == nil {
		t.Error("Check() passed a broken catalog")
	}
}
