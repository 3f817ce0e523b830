// Package handler contains the HTTP handlers for the AYLB Logistics site:
// static marketing pages plus the quote and contact intake forms.
package handler

import (
	"log/slog"
	"net/http"

	"github.com/shubhsinghsk/AYLB/internal/catalog"
)

// TemplateRenderer is the interface for rendering HTML templates.
// Implemented by Renderer; test doubles implement it directly.
type TemplateRenderer interface {
	RenderHTTP(w http.ResponseWriter, name string, data interface{})
}

// =============================================================================
// Template Data Types
// =============================================================================

// PageData is the payload shared by every page template.
type PageData struct {
	CurrentPath string // Current URL path, for nav highlighting
	Title       string // Page title
	Flash       *Flash // Flash message (if any)
}

// ServicesPageData contains data for the services overview page.
type ServicesPageData struct {
	PageData
	Services []catalog.Service
}

// ServiceDetailPageData contains data for one service detail page.
type ServiceDetailPageData struct {
	PageData
	Service catalog.Service
}

// NetworkPageData contains data for the network page.
type NetworkPageData struct {
	PageData
	Locations []catalog.Location
}

// =============================================================================
// Page Handler
// =============================================================================

// PageHandler serves the informational pages.
type PageHandler struct {
	renderer TemplateRenderer
	flashes  *FlashCodec
	logger   *slog.Logger
}

// NewPageHandler creates a new PageHandler.
func NewPageHandler(renderer TemplateRenderer, flashes *FlashCodec, logger *slog.Logger) *PageHandler {
	return &PageHandler{
		renderer: renderer,
		flashes:  flashes,
		logger:   logger,
	}
}

// RegisterRoutes registers the informational page routes.
//
// Routes:
//   - GET /                     -> Home (exact match, else 404)
//   - GET /about                -> About
//   - GET /services             -> Services overview
//   - GET /services/{slug}      -> Service detail
//   - GET /odc                  -> ODC page
//   - GET /value_added_services -> Value added services page
//   - GET /carrier              -> Carrier page
//   - GET /network              -> Network page
//   - GET /contact              -> Contact form
func (h *PageHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /", h.Home)
	mux.HandleFunc("GET /about", h.About)
	mux.HandleFunc("GET /services", h.Services)
	mux.HandleFunc("GET /services/{slug}", h.ServiceDetail)
	mux.HandleFunc("GET /odc", h.ODC)
	mux.HandleFunc("GET /value_added_services", h.ValueAddedServices)
	mux.HandleFunc("GET /carrier", h.Carrier)
	mux.HandleFunc("GET /network", h.Network)
	mux.HandleFunc("GET /contact", h.Contact)
}

// base builds the shared page payload, consuming any pending flash.
func (h *PageHandler) base(w http.ResponseWriter, r *http.Request, title string) PageData {
	return PageData{
		CurrentPath: r.URL.Path,
		Title:       title,
		Flash:       h.flashes.Pop(w, r),
	}
}

// Home displays the landing page with the quote form.
func (h *PageHandler) Home(w http.ResponseWriter, r *http.Request) {
	// Only handle the exact root path
	if r.URL.Path != "/" {
		h.NotFound(w, r)
		return
	}
	h.renderer.RenderHTTP(w, "home", h.base(w, r, "AYLB Logistics"))
}

// About displays the about page.
func (h *PageHandler) About(w http.ResponseWriter, r *http.Request) {
	h.renderer.RenderHTTP(w, "about", h.base(w, r, "About Us"))
}

// Services displays the services overview.
func (h *PageHandler) Services(w http.ResponseWriter, r *http.Request) {
	h.renderer.RenderHTTP(w, "services", ServicesPageData{
		PageData: h.base(w, r, "Our Services"),
		Services: catalog.All(),
	})
}

// ServiceDetail displays one service looked up by slug.
func (h *PageHandler) ServiceDetail(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")

	svc, ok := catalog.Lookup(slug)
	if !ok {
		h.logger.Info("unknown service slug", "slug", slug)
		h.NotFound(w, r)
		return
	}

	h.renderer.RenderHTTP(w, "service_detail", ServiceDetailPageData{
		PageData: h.base(w, r, svc.Title),
		Service:  svc,
	})
}

// ODC displays the over dimensional cargo page.
func (h *PageHandler) ODC(w http.ResponseWriter, r *http.Request) {
	h.renderer.RenderHTTP(w, "odc", h.base(w, r, "Over Dimensional Cargo"))
}

// ValueAddedServices displays the value added services page.
func (h *PageHandler) ValueAddedServices(w http.ResponseWriter, r *http.Request) {
	h.renderer.RenderHTTP(w, "value_added_services", h.base(w, r, "Value Added Services"))
}

// Carrier displays the carrier information page.
func (h *PageHandler) Carrier(w http.ResponseWriter, r *http.Request) {
	h.renderer.RenderHTTP(w, "carrier", h.base(w, r, "Carrier Info"))
}

// Network displays the network page with the static locations table.
func (h *PageHandler) Network(w http.ResponseWriter, r *http.Request) {
	h.renderer.RenderHTTP(w, "network", NetworkPageData{
		PageData:  h.base(w, r, "Our Network"),
		Locations: catalog.Locations(),
	})
}

// Contact displays the contact form.
func (h *PageHandler) Contact(w http.ResponseWriter, r *http.Request) {
	h.renderer.RenderHTTP(w, "contact", h.base(w, r, "Contact Us"))
}

// NotFound renders the 404 page.
func (h *PageHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	h.renderer.RenderHTTP(w, "not_found", PageData{
		CurrentPath: r.URL.Path,
		Title:       "Page Not Found",
	})
}
