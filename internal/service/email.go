package service

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/Charan908515/book-credit-exchange/internal/logger"
)

type emailService struct {
	apiKey   string
	from     string
	fromName string
}

func NewEmailService(apiKey, from, fromName string) EmailService {
	return &emailService{
		apiKey:   apiKey,
		from:     from,
		fromName: fromName,
	}
}

func (s *emailService) SendOTP(ctx context.Context, email, username, code string) error {
	logger.ExternalServiceCall("sendgrid", "SendOTP", "email", email)

	from := mail.NewEmail(s.fromName, s.from)
	recipient := mail.NewEmail(username, email)

	subject := "Your Book Exchange verification code"
	plainText := fmt.Sprintf(
		"Hello %s,\n\nYour verification code is: %s\n\nIt expires in a few minutes. If you did not request it, ignore this email.\n\nThe Book Exchange Team",
		username, code)
	htmlContent := fmt.Sprintf(
		"<p>Hello %s,</p><p>Your verification code is: <strong>%s</strong></p><p>It expires in a few minutes. If you did not request it, ignore this email.</p><p>The Book Exchange Team</p>",
		username, code)

	message := mail.NewSingleEmail(from, subject, recipient, plainText, htmlContent)

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}
