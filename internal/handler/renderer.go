package handler

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"
	"sync"
)

// Renderer manages template parsing and rendering.
//
// Every page on this site uses the single public layout. Templates are
// organized as:
//   - layouts/public.html - base layout
//   - components/*.html - reusable components (nav, footer)
//   - partials/*.html - standalone fragments
//   - pages/*.html - pages, each defining a "content" block
type Renderer struct {
	templates map[string]*template.Template
	logger    *slog.Logger
	isDev     bool
	mu        sync.RWMutex

	// For dev mode hot-reload
	templatesDir string
}

// RendererConfig holds configuration for the renderer.
type RendererConfig struct {
	TemplatesDir string
	Logger       *slog.Logger
	IsDev        bool
}

// NewRenderer creates a new template renderer.
func NewRenderer(cfg RendererConfig) (*Renderer, error) {
	r := &Renderer{
		templates:    make(map[string]*template.Template),
		logger:       cfg.Logger,
		isDev:        cfg.IsDev,
		templatesDir: cfg.TemplatesDir,
	}

	if err := r.loadTemplates(); err != nil {
		return nil, err
	}

	return r, nil
}

func (r *Renderer) loadTemplates() error {
	templatesDir := r.templatesDir

	// Get component templates (shared across pages)
	componentsPattern := filepath.Join(templatesDir, "components", "*.html")
	componentFiles, err := filepath.Glob(componentsPattern)
	if err != nil {
		return fmt.Errorf("failed to glob components: %w", err)
	}

	// Get partial templates (standalone fragments)
	partialsPattern := filepath.Join(templatesDir, "partials", "*.html")
	partialFiles, err := filepath.Glob(partialsPattern)
	if err != nil {
		return fmt.Errorf("failed to glob partials: %w", err)
	}

	// Parse each partial as a standalone template
	for _, partial := range partialFiles {
		partialTmpl, err := template.New("").Funcs(TemplateFuncs()).ParseFiles(partial)
		if err != nil {
			return fmt.Errorf("failed to parse partial %s: %w", partial, err)
		}

		// Store with base name as key (e.g., "flash" for "flash.html")
		partialName := filepath.Base(partial)
		partialName = strings.TrimSuffix(partialName, filepath.Ext(partialName))
		r.templates["partial/"+partialName] = partialTmpl
	}

	// Parse public layout
	publicLayoutPath := filepath.Join(templatesDir, "layouts", "public.html")
	baseTmpl, err := template.New("public").Funcs(TemplateFuncs()).ParseFiles(publicLayoutPath)
	if err != nil {
		return fmt.Errorf("failed to parse public layout: %w", err)
	}

	// Parse components into the layout
	if len(componentFiles) > 0 {
		baseTmpl, err = baseTmpl.ParseFiles(componentFiles...)
		if err != nil {
			return fmt.Errorf("failed to parse components into layout: %w", err)
		}
	}

	// Parse partials into the layout
	if len(partialFiles) > 0 {
		baseTmpl, err = baseTmpl.ParseFiles(partialFiles...)
		if err != nil {
			return fmt.Errorf("failed to parse partials into layout: %w", err)
		}
	}

	// Parse pages (home, about, contact, etc.)
	pages, err := filepath.Glob(filepath.Join(templatesDir, "pages", "*.html"))
	if err != nil {
		return fmt.Errorf("failed to glob pages: %w", err)
	}

	for _, page := range pages {
		pageTmpl, err := baseTmpl.Clone()
		if err != nil {
			return fmt.Errorf("failed to clone layout for %s: %w", page, err)
		}

		pageTmpl, err = pageTmpl.ParseFiles(page)
		if err != nil {
			return fmt.Errorf("failed to parse page %s: %w", page, err)
		}

		// Store as "home", "contact", etc.
		pageName := filepath.Base(page)
		pageName = strings.TrimSuffix(pageName, filepath.Ext(pageName))
		r.templates[pageName] = pageTmpl
	}

	return nil
}

// Reload re-parses all templates. Used in dev mode.
func (r *Renderer) Reload() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.templates = make(map[string]*template.Template)
	return r.loadTemplates()
}

// Render renders a template to an io.Writer.
func (r *Renderer) Render(w io.Writer, name string, data interface{}) error {
	// In dev mode, reload templates on each request
	if r.isDev {
		if err := r.Reload(); err != nil {
			return fmt.Errorf("template reload failed: %w", err)
		}
	}

	r.mu.RLock()
	tmpl, ok := r.templates[name]
	r.mu.RUnlock()

	if !ok {
		return fmt.Errorf("template %q not found", name)
	}

	execName := r.getBaseTemplateName(name)

	return tmpl.ExecuteTemplate(w, execName, data)
}

// RenderHTTP renders a template directly to an http.ResponseWriter.
func (r *Renderer) RenderHTTP(w http.ResponseWriter, name string, data interface{}) {
	// In dev mode, reload templates on each request
	if r.isDev {
		if err := r.Reload(); err != nil {
			r.logger.Error("template reload failed", "error", err)
			http.Error(w, "Template reload failed", http.StatusInternalServerError)
			return
		}
	}

	r.mu.RLock()
	tmpl, ok := r.templates[name]
	r.mu.RUnlock()

	if !ok {
		r.logger.Error("template not found", "name", name)
		http.Error(w, "Template not found", http.StatusInternalServerError)
		return
	}

	execName := r.getBaseTemplateName(name)

	// Render to buffer first to catch errors before writing headers
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, execName, data); err != nil {
		r.logger.Error("template execution failed", "name", name, "error", err)
		http.Error(w, "Template execution failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	buf.WriteTo(w)
}

// getBaseTemplateName determines which base template to execute.
func (r *Renderer) getBaseTemplateName(name string) string {
	if strings.HasPrefix(name, "partial/") {
		// Partials execute the file's base template name
		return filepath.Base(name) + ".html"
	}
	return "public"
}

// ListTemplates returns a list of all loaded template names.
// Useful for debugging.
func (r *Renderer) ListTemplates() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.templates))
	for name := range r.templates {
		names = append(names, name)
	}
	return names
}
