package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type emailService struct {
	apiKey    string
	fromEmail string
	fromName  string
}

func NewEmailService(apiKey, fromEmail, fromName string) EmailService {
	return &emailService{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (s *emailService) send(to, toName, subject, body string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail(toName, to)
	message := mail.NewSingleEmail(from, subject, recipient, body, "")

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

func (s *emailService) SendRentalExpiryReminder(ctx context.Context, email, companyName, equipmentType string, daysLeft int) error {
	subject := "Rental contract expiring soon"
	body := fmt.Sprintf("Hello %s,\n\nYour rental contract for %s expires in %d day(s). Contact your provider to extend it.\n\nColdRent", companyName, equipmentType, daysLeft)
	return s.send(email, companyName, subject, body)
}

func (s *emailService) SendRentalTerminationNotice(ctx context.Context, email, companyName, equipmentType, reason string) error {
	subject := "Rental contract terminated"
	body := fmt.Sprintf("Hello %s,\n\nYour rental contract for %s has been terminated.", companyName, equipmentType)
	if reason != "" {
		body += fmt.Sprintf("\n\nReason: %s", reason)
	}
	body += "\n\nColdRent"
	return s.send(email, companyName, subject, body)
}

func (s *emailService) SendMaintenanceDueReminder(ctx context.Context, email, title string, scheduledDate time.Time) error {
	subject := "Maintenance due"
	body := fmt.Sprintf("Maintenance %q is scheduled for %s and has not been started.\n\nColdRent", title, scheduledDate.Format("2006-01-02"))
	return s.send(email, "", subject, body)
}

func (s *emailService) SendMaintenanceCompletedNotification(ctx context.Context, email, title string, totalCost float64) error {
	subject := "Maintenance completed"
	body := fmt.Sprintf("Maintenance %q has been completed at a total cost of %.2f.\n\nColdRent", title, totalCost)
	return s.send(email, "", subject, body)
}
