package repository

import "context"

// MailerRepository defines the interface for outbound mail delivery
type MailerRepository interface {
	SendDocument(ctx context.Context, to, subject, body string) error
}
