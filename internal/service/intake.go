// Package service contains the lead intake workflow: validation, durable
// logging and best-effort notification for the quote and contact forms.
package service

import (
	"context"
	"fmt"
	"html"
	"log/slog"
	"strings"
	"time"

	"github.com/shubhsinghsk/AYLB/internal/domain"
	"github.com/shubhsinghsk/AYLB/internal/email"
	"github.com/shubhsinghsk/AYLB/internal/metrics"
)

// Status is the terminal state of one submission.
type Status string

const (
	// StatusRejected means required fields were missing; nothing was
	// persisted and no notification was attempted.
	StatusRejected Status = "rejected"

	// StatusAccepted means the submission validated but was acknowledged
	// without persistence (the quote path).
	StatusAccepted Status = "accepted"

	// StatusNotified means the lead was persisted and the notification
	// was delivered.
	StatusNotified Status = "notified"

	// StatusNotifyFailed means the lead was persisted but the notification
	// attempt failed. Persistence is never rolled back for this.
	StatusNotifyFailed Status = "notify_failed"
)

// Outcome carries the terminal state and the user-facing message for it.
type Outcome struct {
	Status  Status
	Message string
}

// DefaultSubjectLabel is used when a submission has no subject of its own.
const DefaultSubjectLabel = "General Contact"

// LeadAppender is the slice of the lead store the workflow needs.
type LeadAppender interface {
	Append(lead domain.Lead) error
}

// IntakeService orchestrates the two form entry points.
type IntakeService interface {
	// Quote validates a quote request. It requires name and email. Valid
	// requests are acknowledged but not persisted; see the package tests
	// for the exact contract.
	Quote(ctx context.Context, sub domain.Submission) Outcome

	// Contact validates a contact enquiry, appends it to the lead log and
	// attempts a notification. It requires name, email and phone. The
	// returned error is non-nil only when persistence fails; notification
	// failure is reported through the Outcome instead.
	Contact(ctx context.Context, sub domain.Submission) (Outcome, error)
}

// intakeService implements IntakeService.
type intakeService struct {
	store    LeadAppender
	notifier email.Notifier
	logger   *slog.Logger
	now      func() time.Time
}

// NewIntakeService creates a new IntakeService.
func NewIntakeService(store LeadAppender, notifier email.Notifier, logger *slog.Logger) IntakeService {
	return &intakeService{
		store:    store,
		notifier: notifier,
		logger:   logger,
		now:      time.Now,
	}
}

// Quote validates a quote request.
//
// The quote form is acknowledgement-only: the lead log schema has no column
// distinguishing quote rows from contact enquiries, so quote submissions are
// validated, logged and acknowledged without a store write or notification.
func (s *intakeService) Quote(ctx context.Context, sub domain.Submission) Outcome {
	if sub.Name == "" || sub.Email == "" {
		metrics.LeadsReceived.WithLabelValues("quote", string(StatusRejected)).Inc()
		return Outcome{
			Status:  StatusRejected,
			Message: "Please provide Name and Email.",
		}
	}

	s.logger.Info("quote request received", "name", sub.Name, "email", sub.Email)
	metrics.LeadsReceived.WithLabelValues("quote", string(StatusAccepted)).Inc()

	return Outcome{
		Status:  StatusAccepted,
		Message: "Thank you! Your quote request has been received.",
	}
}

// Contact runs the full intake pipeline: validate, append, notify.
//
// Ordering is fixed: the lead is appended before the notification attempt,
// and an append failure aborts the pipeline so no notification is ever sent
// for an unrecorded lead.
func (s *intakeService) Contact(ctx context.Context, sub domain.Submission) (Outcome, error) {
	const op = "intake.contact"

	if sub.Name == "" || sub.Email == "" || sub.Phone == "" {
		metrics.LeadsReceived.WithLabelValues("contact", string(StatusRejected)).Inc()
		return Outcome{
			Status:  StatusRejected,
			Message: "Please provide Name, Email, and Phone.",
		}, nil
	}

	lead := sub.Lead(s.now())

	if err := s.store.Append(lead); err != nil {
		s.logger.Error("failed to record lead", "error", err, "op", op, "email", sub.Email)
		metrics.LeadStoreAppends.WithLabelValues("error").Inc()
		metrics.LeadsReceived.WithLabelValues("contact", "persist_failed").Inc()
		return Outcome{}, err
	}
	metrics.LeadStoreAppends.WithLabelValues("ok").Inc()
	s.logger.Info("lead recorded", "name", lead.Name, "email", lead.Email, "timestamp", lead.Timestamp)

	result := s.notifier.Send(ctx, notificationSubject(sub), notificationBody(lead, sub.Subject))
	if result.Delivered {
		metrics.LeadNotifications.WithLabelValues("delivered").Inc()
		metrics.LeadsReceived.WithLabelValues("contact", string(StatusNotified)).Inc()
		return Outcome{
			Status:  StatusNotified,
			Message: "Thank you! Your enquiry has been received.",
		}, nil
	}

	metrics.LeadNotifications.WithLabelValues("failed").Inc()
	metrics.LeadsReceived.WithLabelValues("contact", string(StatusNotifyFailed)).Inc()

	// The diagnostic detail is relayed verbatim so the operator can see why
	// delivery failed.
	return Outcome{
		Status:  StatusNotifyFailed,
		Message: "Message saved, but failed to send email. Check SMTP settings. Error: " + result.Detail,
	}, nil
}

// notificationSubject builds the mail subject, preferring the submission's
// own subject over the default label.
func notificationSubject(sub domain.Submission) string {
	label := sub.Subject
	if label == "" {
		label = DefaultSubjectLabel
	}
	return fmt.Sprintf("New enquiry from %s - %s", sub.Name, label)
}

// notificationBody renders the HTML notification, enumerating every field
// with an explicit N/A for empty optionals.
func notificationBody(lead domain.Lead, subject string) string {
	var b strings.Builder

	b.WriteString("<h2>New Contact Enquiry Received</h2>\n")
	writeField(&b, "Name", lead.Name)
	writeField(&b, "Company", orNA(lead.Company))
	writeField(&b, "Email", lead.Email)
	writeField(&b, "Phone", lead.Phone)
	writeField(&b, "City", orNA(lead.City))
	writeField(&b, "Service Requested", orNA(lead.Service))
	writeField(&b, "Subject", orNA(subject))
	fmt.Fprintf(&b, "<p><b>Message:</b><br>%s</p>\n", html.EscapeString(lead.Message))
	fmt.Fprintf(&b, "<p><em>Received at UTC %s</em></p>\n", html.EscapeString(lead.Timestamp))

	return b.String()
}

func writeField(b *strings.Builder, label, value string) {
	fmt.Fprintf(b, "<p><b>%s:</b> %s</p>\n", label, html.EscapeString(value))
}

func orNA(value string) string {
	if value == "" {
		return "N/A"
	}
	return value
}
