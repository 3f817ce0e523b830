package handler

import (
	"log/slog"
	"net/http"

	"github.com/shubhsinghsk/AYLB/internal/domain"
	"github.com/shubhsinghsk/AYLB/internal/service"
)

// IntakeHandler handles the quote and contact form submissions.
//
// Both follow post/redirect/get: the outcome message travels to the next
// page in a signed flash cookie.
type IntakeHandler struct {
	intake  service.IntakeService
	flashes *FlashCodec
	logger  *slog.Logger
}

// NewIntakeHandler creates a new IntakeHandler.
func NewIntakeHandler(intake service.IntakeService, flashes *FlashCodec, logger *slog.Logger) *IntakeHandler {
	return &IntakeHandler{
		intake:  intake,
		flashes: flashes,
		logger:  logger,
	}
}

// RegisterRoutes registers the form submission routes.
//
// Routes:
//   - POST /quote   -> Quote (redirects to /)
//   - POST /contact -> Contact (redirects to /contact)
func (h *IntakeHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /quote", h.Quote)
	mux.HandleFunc("POST /contact", h.Contact)
}

// Quote handles the quote request form from the landing page.
func (h *IntakeHandler) Quote(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		ErrorResponse(w, r, h.logger, domain.Invalid("intake.quote", "Malformed form submission."))
		return
	}

	outcome := h.intake.Quote(r.Context(), domain.SubmissionFromForm(r.PostForm))
	h.flashes.Set(w, outcomeFlash(outcome))
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Contact handles the contact enquiry form.
func (h *IntakeHandler) Contact(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		ErrorResponse(w, r, h.logger, domain.Invalid("intake.contact", "Malformed form submission."))
		return
	}

	outcome, err := h.intake.Contact(r.Context(), domain.SubmissionFromForm(r.PostForm))
	if err != nil {
		// Persistence failed; the lead was not recorded and no notification
		// was attempted.
		h.logger.Error("contact intake failed", "error", err)
		h.flashes.Set(w, Flash{Type: FlashDanger, Message: domain.ErrorMessage(err)})
		http.Redirect(w, r, "/contact", http.StatusSeeOther)
		return
	}

	h.flashes.Set(w, outcomeFlash(outcome))
	http.Redirect(w, r, "/contact", http.StatusSeeOther)
}

// outcomeFlash maps an intake outcome to its flash presentation.
func outcomeFlash(outcome service.Outcome) Flash {
	var flashType string
	switch outcome.Status {
	case service.StatusRejected:
		flashType = FlashDanger
	case service.StatusNotifyFailed:
		flashType = FlashWarning
	default:
		flashType = FlashSuccess
	}
	return Flash{Type: flashType, Message: outcome.Message}
}
