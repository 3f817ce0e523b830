package handler

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
)

// stubRenderer records render calls and writes the template name as the body.
type stubRenderer struct {
	lastName string
	lastData interface{}
}

func (s *stubRenderer) RenderHTTP(w http.ResponseWriter, name string, data interface{}) {
	s.lastName = name
	s.lastData = data
	w.Write([]byte("page:" + name))
}

func newPagesFixture() (*PageHandler, *stubRenderer, *http.ServeMux) {
	renderer := &stubRenderer{}
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	h := NewPageHandler(renderer, NewFlashCodec("test-secret", false), logger)

	mux := http.NewServeMux()
	h.RegisterRoutes(mux)
	return h, renderer, mux
}

func TestPages_RenderExpectedTemplates(t *testing.T) {
	_, renderer, mux := newPagesFixture()

	cases := []struct {
		path string
		page string
	}{
		{"/", "home"},
		{"/about", "about"},
		{"/services", "services"},
		{"/odc", "odc"},
		{"/value_added_services", "value_added_services"},
		{"/carrier", "carrier"},
		{"/network", "network"},
		{"/contact", "contact"},
	}

	for _, tc := range cases {
		req := httptest.NewRequest("GET", tc.path, nil)
		rec := httptest.NewRecorder()

		mux.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Errorf("%s: status = %d", tc.path, rec.Code)
		}
		if renderer.lastName != tc.page {
			t.Errorf("%s: rendered %q, want %q", tc.path, renderer.lastName, tc.page)
		}
	}
}

func TestPages_ServiceDetail(t *testing.T) {
	_, renderer, mux := newPagesFixture()

	req := httptest.NewRequest("GET", "/services/odc", nil)
	rec := httptest.NewRecorder()

	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if renderer.lastName != "service_detail" {
		t.Errorf("rendered %q, want service_detail", renderer.lastName)
	}

	data, ok := renderer.lastData.(ServiceDetailPageData)
	if !ok {
		t.Fatalf("data type = %T", renderer.lastData)
	}
	if data.Service.Slug != "odc" {
		t.Errorf("service slug = %q", data.Service.Slug)
	}
}

func TestPages_UnknownServiceSlug404(t *testing.T) {
	_, renderer, mux := newPagesFixture()

	req := httptest.NewRequest("GET", "/services/no-such-service", nil)
	rec := httptest.NewRecorder()

	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
	if renderer.lastName != "not_found" {
		t.Errorf("rendered %q, want not_found", renderer.lastName)
	}
}

func TestPages_UnknownPath404(t *testing.T) {
	_, _, mux := newPagesFixture()

	req := httptest.NewRequest("GET", "/no-such-page", nil)
	rec := httptest.NewRecorder()

	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "not_found") {
		t.Errorf("body = %q", rec.Body.String())
	}
}

func TestPages_FlashConsumedOnRender(t *testing.T) {
	renderer := &stubRenderer{}
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	codec := NewFlashCodec("test-secret", false)
	h := NewPageHandler(renderer, codec, logger)

	setRec := httptest.NewRecorder()
	codec.Set(setRec, Flash{Type: FlashSuccess, Message: "Thank you! Your enquiry has been received."})

	req := httptest.NewRequest("GET", "/contact", nil)
	for _, c := range setRec.Result().Cookies() {
		req.AddCookie(&http.Cookie{Name: c.Name, Value: c.Value})
	}
	rec := httptest.NewRecorder()

	h.Contact(rec, req)

	data, ok := renderer.lastData.(PageData)
	if !ok {
		t.Fatalf("data type = %T", renderer.lastData)
	}
	if data.Flash == nil {
		t.Fatal("expected flash in page data")
	}
	if data.Flash.Message != "Thank you! Your enquiry has been received." {
		t.Errorf("flash message = %q", data.Flash.Message)
	}
}
