// Package providers contains adapters for external systems
package providers

// EmailProvider defines the interface for sending emails
type EmailProvider interface {
	SendEmail(to, subject, body string, isHTML bool) error
}
