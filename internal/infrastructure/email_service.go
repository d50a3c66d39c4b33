package infrastructure

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/santiago-morfe/TaskGeniusApi/internal/config"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// EmailService sends transactional mail through SendGrid. Without an API
// key or sender it logs and does nothing.
type EmailService struct {
	client     *sendgrid.Client
	sender     string
	senderName string
	log        *slog.Logger
}

func NewEmailService(cfg config.Email, log *slog.Logger) *EmailService {
	log = log.With("component", "email")
	if cfg.SendGridAPIKey == "" || cfg.Sender == "" {
		log.Info("sendgrid not configured, welcome mail disabled")
		return &EmailService{log: log}
	}
	return &EmailService{
		client:     sendgrid.NewSendClient(cfg.SendGridAPIKey),
		sender:     cfg.Sender,
		senderName: cfg.SenderName,
		log:        log,
	}
}

func (e *EmailService) Enabled() bool {
	return e != nil && e.client != nil
}

// SendWelcome greets a newly registered user.
func (e *EmailService) SendWelcome(ctx context.Context, name, recipientEmail string) error {
	if !e.Enabled() {
		return nil
	}
	from := mail.NewEmail(e.senderName, e.sender)
	to := mail.NewEmail(name, recipientEmail)
	subject := "Welcome to TaskGenius"
	plainTextContent := fmt.Sprintf("Hi %s, your TaskGenius account is ready.", name)
	htmlContent := fmt.Sprintf("<strong>Hi %s</strong>, your TaskGenius account is ready.", name)

	message := mail.NewSingleEmail(from, subject, to, plainTextContent, htmlContent)
	response, err := e.client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("send welcome mail: %w", err)
	}
	if response.StatusCode >= 300 {
		return fmt.Errorf("send welcome mail: sendgrid status %d", response.StatusCode)
	}

	e.log.Debug("welcome mail sent", "status", response.StatusCode)
	return nil
}
