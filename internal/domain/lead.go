// Package domain contains the core types shared across the application:
// lead records, intake submissions, and structured errors.
package domain

import (
	"net/url"
	"strings"
	"time"
)

// LeadColumns is the fixed column order of the lead log. The persisted
// header row and every appended record must match it exactly.
var LeadColumns = []string{"timestamp", "name", "company", "email", "phone", "city", "service", "message"}

// Lead is one recorded enquiry, exactly as it is persisted: eight text
// columns, optional fields stored as empty strings.
type Lead struct {
	Timestamp string // RFC 3339 UTC, generated at submission time
	Name      string
	Company   string
	Email     string
	Phone     string
	City      string
	Service   string
	Message   string
}

// Record returns the lead's fields in LeadColumns order.
func (l Lead) Record() []string {
	return []string{
		l.Timestamp,
		l.Name,
		l.Company,
		l.Email,
		l.Phone,
		l.City,
		l.Service,
		l.Message,
	}
}

// Submission carries the inbound form fields of a quote or contact request.
// All fields are opaque text, trimmed of surrounding whitespace, empty when
// absent from the form.
type Submission struct {
	Name    string
	Email   string
	Phone   string
	Company string
	City    string
	Service string
	Subject string
	Message string
}

// SubmissionFromForm builds a Submission from parsed form values.
func SubmissionFromForm(form url.Values) Submission {
	get := func(key string) string {
		return strings.TrimSpace(form.Get(key))
	}
	return Submission{
		Name:    get("name"),
		Email:   get("email"),
		Phone:   get("phone"),
		Company: get("company"),
		City:    get("city"),
		Service: get("service"),
		Subject: get("subject"),
		Message: get("message"),
	}
}

// Lead converts the submission into a persistable lead record stamped with
// the given time. The form's subject field is notification-only and is not
// part of the record.
func (s Submission) Lead(at time.Time) Lead {
	return Lead{
		Timestamp: at.UTC().Format(time.RFC3339),
		Name:      s.Name,
		Company:   s.Company,
		Email:     s.Email,
		Phone:     s.Phone,
		City:      s.City,
		Service:   s.Service,
		Message:   s.Message,
	}
}
