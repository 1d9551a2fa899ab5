package service

import (
	"context"
	"fmt"
	"strings"

	"rentdesk-backoffice/internal/domain"
	"rentdesk-backoffice/internal/logger"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// OverdueContract is one line of an overdue notice
type OverdueContract struct {
	ContractID     string
	ContractNumber string
	CarID          string
	CustomerID     string
	EndDate        domain.Date
}

// MailClient is the part of the SendGrid client the email service uses
type MailClient interface {
	Send(email *mail.SGMailV3) (*rest.Response, error)
}

type emailService struct {
	client    MailClient
	fromEmail string
	fromName  string
}

func NewEmailService(apiKey, fromEmail, fromName string) EmailService {
	return NewEmailServiceWithClient(sendgrid.NewSendClient(apiKey), fromEmail, fromName)
}

func NewEmailServiceWithClient(client MailClient, fromEmail, fromName string) EmailService {
	return &emailService{
		client:    client,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (s *emailService) send(ctx context.Context, operation, to, subject, body string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	message := mail.NewSingleEmail(from, subject, mail.NewEmail("", to), body, "")

	logger.ExternalServiceCall("sendgrid", operation, "to", to)
	response, err := s.client.Send(message)
	if err == nil && response.StatusCode >= 400 {
		err = fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	logger.ExternalServiceResult("sendgrid", operation, err, "to", to)
	if err != nil {
		return fmt.Errorf("failed to send %s email: %w", operation, err)
	}
	return nil
}

func (s *emailService) SendOverdueNotice(ctx context.Context, to string, contracts []OverdueContract) error {
	if len(contracts) == 0 {
		return nil
	}
	var b strings.Builder
	fmt.Fprintf(&b, "The following %d contract(s) passed their end date and are now marked overdue:\n\n", len(contracts))
	for _, c := range contracts {
		fmt.Fprintf(&b, "  %s  car %s  ended %s\n", c.ContractNumber, c.CarID, c.EndDate)
	}
	b.WriteString("\nPlease contact the customers to arrange the return.\n")

	subject := fmt.Sprintf("%d overdue contract(s)", len(contracts))
	return s.send(ctx, "overdue_notice", to, subject, b.String())
}

func (s *emailService) SendRegistrationExpiryReminder(ctx context.Context, to string, items []domain.ExpiryItem) error {
	if len(items) == 0 {
		return nil
	}
	var b strings.Builder
	b.WriteString("Vehicle documents needing renewal:\n\n")
	for _, it := range items {
		status := fmt.Sprintf("expires in %d day(s)", it.DaysLeft)
		switch {
		case it.DaysLeft == 0:
			status = "expires today"
		case it.DaysLeft < 0:
			status = fmt.Sprintf("expired %d day(s) ago", -it.DaysLeft)
		}
		fmt.Fprintf(&b, "  %s %s: %s on %s (%s)\n", it.PlateNo, it.VehicleName, it.Document, it.ExpiresOn, status)
	}

	subject := fmt.Sprintf("%d vehicle document(s) expiring soon", len(items))
	return s.send(ctx, "registration_reminder", to, subject, b.String())
}
