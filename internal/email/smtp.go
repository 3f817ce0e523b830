package email

import (
	"bytes"
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/smtp"
)

// =============================================================================
// SMTP Notifier Implementation
// =============================================================================

// SMTPNotifier sends notifications through an SMTP submission endpoint using
// opportunistic TLS: plaintext connect, STARTTLS upgrade, then AUTH PLAIN.
//
// Each Send is one attempt with a bounded connection timeout. smtp.SendMail
// is not used because it offers no way to bound the dial; the client is
// driven explicitly over a net.Dialer connection instead.
type SMTPNotifier struct {
	config SMTPConfig
	logger *slog.Logger
}

// NewSMTPNotifier creates a new SMTP-based notifier.
func NewSMTPNotifier(config SMTPConfig, logger *slog.Logger) *SMTPNotifier {
	if config.Timeout <= 0 {
		config.Timeout = DefaultTimeout
	}
	return &SMTPNotifier{
		config: config,
		logger: logger,
	}
}

// Send transmits one message with the given subject and HTML body to the
// configured recipient. If any required option is missing it reports
// "not configured" without touching the network. Transport, TLS and auth
// failures are reported with the underlying error text so the operator can
// diagnose them from the outcome alone.
func (n *SMTPNotifier) Send(ctx context.Context, subject, htmlBody string) SendResult {
	if !n.config.Complete() {
		n.logger.Warn("notification skipped", "reason", DetailNotConfigured)
		return SendResult{Delivered: false, Detail: DetailNotConfigured}
	}

	if err := n.send(ctx, subject, htmlBody); err != nil {
		n.logger.Error("failed to send notification",
			"to", n.config.To,
			"subject", subject,
			"error", err,
		)
		return SendResult{Delivered: false, Detail: err.Error()}
	}

	n.logger.Info("notification sent",
		"to", n.config.To,
		"subject", subject,
	)
	return SendResult{Delivered: true, Detail: DetailSent}
}

// send performs the SMTP conversation: dial, STARTTLS, auth, one envelope.
func (n *SMTPNotifier) send(ctx context.Context, subject, htmlBody string) error {
	addr := fmt.Sprintf("%s:%d", n.config.Host, n.config.Port)

	dialer := net.Dialer{Timeout: n.config.Timeout}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("connect to %s: %w", addr, err)
	}

	client, err := smtp.NewClient(conn, n.config.Host)
	if err != nil {
		conn.Close()
		return fmt.Errorf("smtp handshake: %w", err)
	}
	defer client.Close()

	if ok, _ := client.Extension("STARTTLS"); !ok {
		return errors.New("server does not support STARTTLS")
	}
	if err := client.StartTLS(&tls.Config{ServerName: n.config.Host}); err != nil {
		return fmt.Errorf("starttls: %w", err)
	}

	auth := smtp.PlainAuth("", n.config.Username, n.config.Password, n.config.Host)
	if err := client.Auth(auth); err != nil {
		return fmt.Errorf("auth: %w", err)
	}

	if err := client.Mail(n.config.From); err != nil {
		return fmt.Errorf("mail from: %w", err)
	}
	if err := client.Rcpt(n.config.To); err != nil {
		return fmt.Errorf("rcpt to: %w", err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("data: %w", err)
	}
	if _, err := w.Write(n.buildMessage(subject, htmlBody)); err != nil {
		w.Close()
		return fmt.Errorf("write message: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("close message: %w", err)
	}

	return client.Quit()
}

// buildMessage constructs the raw message with headers and an HTML body.
func (n *SMTPNotifier) buildMessage(subject, htmlBody string) []byte {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("From: %s\r\n", n.config.From))
	buf.WriteString(fmt.Sprintf("To: %s\r\n", n.config.To))
	buf.WriteString(fmt.Sprintf("Subject: %s\r\n", subject))
	buf.WriteString("MIME-Version: 1.0\r\n")
	buf.WriteString("Content-Type: text/html; charset=utf-8\r\n")
	buf.WriteString("\r\n")
	buf.WriteString(htmlBody)
	buf.WriteString("\r\n")

	return buf.Bytes()
}

// =============================================================================
// Compile-time interface check
// =============================================================================

var _ Notifier = (*SMTPNotifier)(nil)
