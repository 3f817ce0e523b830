// Package email sends lead notification messages over authenticated SMTP.
package email

import (
	"context"
	"time"
)

// Notifier sends a single notification message. Implementations make one
// best-effort attempt per call and report the result synchronously; there is
// no retry and no queue. Failure is an expected outcome here, so the result
// is a value rather than an error.
type Notifier interface {
	Send(ctx context.Context, subject, htmlBody string) SendResult
}

// SendResult reports the outcome of one send attempt.
type SendResult struct {
	Delivered bool
	Detail    string // DetailSent, DetailNotConfigured, or the transport error text
}

// SMTPConfig holds mail submission configuration.
type SMTPConfig struct {
	Host     string        // SMTP server hostname
	Port     int           // Mail submission port, typically 587
	Username string        // Authentication username
	Password string        // Authentication password
	From     string        // Envelope and header sender address
	To       string        // Envelope and header recipient address
	Timeout  time.Duration // Connection timeout; DefaultTimeout when zero
}

// Complete reports whether every option required for a send attempt is set.
func (c SMTPConfig) Complete() bool {
	return c.Host != "" &&
		c.Port != 0 &&
		c.Username != "" &&
		c.Password != "" &&
		c.From != "" &&
		c.To != ""
}

const (
	// DetailSent is the result detail for a delivered message.
	DetailSent = "sent"

	// DetailNotConfigured is the result detail when required SMTP options
	// are missing. No connection is attempted in that case.
	DetailNotConfigured = "not configured"

	// DefaultTimeout bounds the connection attempt to the SMTP server.
	DefaultTimeout = 10 * time.Second
)
