package providers

import (
	"fmt"
	"net/smtp"
	"strings"

	"storeapi.app/config"
	"storeapi.app/errors"
)

// SMTPEmailProvider delivers mail over plain SMTP with PLAIN auth
type SMTPEmailProvider struct {
	cfg *config.EmailConfig
}

// NewSMTPEmailProvider creates a new SMTP email provider
func NewSMTPEmailProvider(cfg *config.EmailConfig) *SMTPEmailProvider {
	return &SMTPEmailProvider{cfg: cfg}
}

// SendEmail sends a single message to one recipient
func (p *SMTPEmailProvider) SendEmail(to, subject, body string, isHTML bool) error {
	if to == "" {
		return errors.NewValidationError("recipient email cannot be empty")
	}
	if subject == "" {
		return errors.NewValidationError("email subject cannot be empty")
	}

	addr := fmt.Sprintf("%s:%d", p.cfg.SMTPHost, p.cfg.SMTPPort)
	auth := smtp.PlainAuth("", p.cfg.SMTPUsername, p.cfg.SMTPPassword, p.cfg.SMTPHost)

	msg := p.buildMessage(to, subject, body, isHTML)
	if err := smtp.SendMail(addr, auth, p.cfg.FromAddress, []string{to}, msg); err != nil {
		return errors.NewEmailError("failed to send email", err)
	}

	return nil
}

func (p *SMTPEmailProvider) buildMessage(to, subject, body string, isHTML bool) []byte {
	contentType := "text/plain"
	if isHTML {
		contentType = "text/html"
	}

	// Strip line breaks so a caller-supplied subject cannot inject headers
	subject = strings.NewReplacer("\r", "", "\n", "").Replace(subject)

	var b strings.Builder
	fmt.Fprintf(&b, "From: %s <%s>\r\n", p.cfg.FromName, p.cfg.FromAddress)
	fmt.Fprintf(&b, "To: %s\r\n", to)
	fmt.Fprintf(&b, "Subject: %s\r\n", subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	fmt.Fprintf(&b, "Content-Type: %s; charset=UTF-8\r\n", contentType)
	b.WriteString("\r\n")
	b.WriteString(body)

	return []byte(b.String())
}
