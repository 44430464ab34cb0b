package mailer

import (
	"context"
	"encoding/base64"
	"fmt"

	"wingman-service/internal/domain/repository"
	"wingman-service/pkg/logger"

	"golang.org/x/oauth2"
	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"
)

// GmailMailer delivers rendered logbook documents by Gmail
type GmailMailer struct {
	gmailService *gmail.Service
	sender       string
	logger       logger.Logger
}

// NewGmailMailer creates a new Gmail mailer
func NewGmailMailer(ctx context.Context, tokenSource oauth2.TokenSource, sender string, logger logger.Logger) (repository.MailerRepository, error) {
	service, err := gmail.NewService(ctx, option.WithTokenSource(tokenSource))
	if err != nil {
		return nil, err
	}

	return &GmailMailer{
		gmailService: service,
		sender:       sender,
		logger:       logger,
	}, nil
}

// SendDocument sends a plain-text document to the recipient
func (m *GmailMailer) SendDocument(ctx context.Context, to, subject, body string) error {
	raw := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\nContent-Type: text/plain; charset=\"UTF-8\"\r\n\r\n%s",
		m.sender, to, subject, body)

	message := &gmail.Message{
		Raw: base64.URLEncoding.EncodeToString([]byte(raw)),
	}

	_, err := m.gmailService.Users.Messages.Send("me", message).Context(ctx).Do()
	if err != nil {
		m.logger.Error("Failed to send document", "to", to, "error", err)
		return fmt.Errorf("failed to send document: %w", err)
	}

	m.logger.Info("Document sent", "to", to, "subject", subject)
	return nil
}
