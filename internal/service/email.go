package service

import (
	"context"
	"fmt"
	"time"

	"gopkg.in/gomail.v2"
)

type emailService struct {
	host     string
	port     int
	username string
	password string
	from     string
}

func NewEmailService(host string, port int, username, password, from string) EmailService {
	return &emailService{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
	}
}

func (s *emailService) send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(s.host, s.port, s.username, s.password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email via gomail: %w", err)
	}
	return nil
}

func (s *emailService) SendBookingRequestNotification(ctx context.Context, hostEmail, guestName, propertyTitle, reference string) error {
	body := fmt.Sprintf("Hello,\n\n%s requested to book %s (reservation %s).\n\nPlease confirm or decline the request from your dashboard.\n\nBest regards,\nThe Séjour Team", guestName, propertyTitle, reference)
	return s.send(hostEmail, fmt.Sprintf("New booking request - %s", reference), body)
}

func (s *emailService) SendBookingConfirmation(ctx context.Context, guestEmail, propertyTitle, reference string) error {
	body := fmt.Sprintf("Hello,\n\nYour reservation %s for %s is confirmed.\n\nBest regards,\nThe Séjour Team", reference, propertyTitle)
	return s.send(guestEmail, fmt.Sprintf("Reservation confirmed - %s", reference), body)
}

func (s *emailService) SendBookingCancellation(ctx context.Context, email, propertyTitle, reference, reason string) error {
	body := fmt.Sprintf("Hello,\n\nReservation %s for %s has been cancelled.", reference, propertyTitle)
	if reason != "" {
		body += fmt.Sprintf("\n\nReason: %s", reason)
	}
	body += "\n\nBest regards,\nThe Séjour Team"
	return s.send(email, fmt.Sprintf("Reservation cancelled - %s", reference), body)
}

func (s *emailService) SendBookingCompletion(ctx context.Context, hostEmail, propertyTitle, reference string, earning int64) error {
	body := fmt.Sprintf("Hello,\n\nReservation %s for %s is complete. Your earning of %d has been credited to your wallet.\n\nBest regards,\nThe Séjour Team", reference, propertyTitle, earning)
	return s.send(hostEmail, fmt.Sprintf("Stay completed - %s", reference), body)
}

func (s *emailService) SendWithdrawalNotification(ctx context.Context, hostEmail string, amount int64) error {
	body := fmt.Sprintf("Hello,\n\nYour withdrawal request of %d has been received and is being processed.\n\nBest regards,\nThe Séjour Team", amount)
	return s.send(hostEmail, "Withdrawal request received", body)
}

func (s *emailService) SendCheckinReminder(ctx context.Context, guestEmail, propertyTitle string, checkIn time.Time) error {
	body := fmt.Sprintf("Hello,\n\nA reminder that your stay at %s starts on %s.\n\nBest regards,\nThe Séjour Team", propertyTitle, checkIn.Format("2006-01-02"))
	return s.send(guestEmail, "Your check-in is coming up", body)
}

func (s *emailService) SendApplicationDecision(ctx context.Context, email, name string, approved bool, reason string) error {
	var body string
	if approved {
		body = fmt.Sprintf("Hello %s,\n\nYour host application has been approved. You can now publish listings.", name)
	} else {
		body = fmt.Sprintf("Hello %s,\n\nYour host application has been rejected.", name)
		if reason != "" {
			body += fmt.Sprintf("\n\nReason: %s", reason)
		}
	}
	body += "\n\nBest regards,\nThe Séjour Team"
	return s.send(email, "Host application update", body)
}

func (s *emailService) SendPropertyModerationNotice(ctx context.Context, hostEmail, title string, approved bool, reason string) error {
	var body string
	if approved {
		body = fmt.Sprintf("Hello,\n\nYour listing '%s' has been approved and is now online.", title)
	} else {
		body = fmt.Sprintf("Hello,\n\nYour listing '%s' has been rejected.", title)
		if reason != "" {
			body += fmt.Sprintf("\n\nReason: %s", reason)
		}
	}
	body += "\n\nBest regards,\nThe Séjour Team"
	return s.send(hostEmail, fmt.Sprintf("Listing review - %s", title), body)
}

func (s *emailService) SendAccountStatusNotification(ctx context.Context, email, name, status, reason string) error {
	body := fmt.Sprintf("Hello %s,\n\nYour account status has been updated to: %s.", name, status)
	if reason != "" {
		body += fmt.Sprintf("\n\nReason: %s", reason)
	}
	body += "\n\nBest regards,\nThe Séjour Team"
	return s.send(email, "Account status update", body)
}
