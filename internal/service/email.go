package service

import (
	"context"
	"fmt"

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
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

func (s *emailService) SendBookingRequested(ctx context.Context, vendorEmail, customerName, equipmentName string) error {
	body := fmt.Sprintf("Hello,\n\n%s has requested to book your %s.\n\nLog in to accept or reject the request.\n\nThe ReelGear Team", customerName, equipmentName)
	return s.send(vendorEmail, fmt.Sprintf("New booking request for %s", equipmentName), body)
}

func (s *emailService) SendBookingConfirmed(ctx context.Context, customerEmail, equipmentName, vendorName string) error {
	body := fmt.Sprintf("Hello,\n\nYour booking for %s was confirmed by %s.\n\nThe ReelGear Team", equipmentName, vendorName)
	return s.send(customerEmail, fmt.Sprintf("Booking confirmed: %s", equipmentName), body)
}

func (s *emailService) SendBookingCancelled(ctx context.Context, email, equipmentName, reason string) error {
	body := fmt.Sprintf("Hello,\n\nThe booking for %s was cancelled.", equipmentName)
	if reason != "" {
		body += fmt.Sprintf("\n\nReason: %s", reason)
	}
	body += "\n\nThe ReelGear Team"
	return s.send(email, fmt.Sprintf("Booking cancelled: %s", equipmentName), body)
}

func (s *emailService) SendBookingCompleted(ctx context.Context, email, equipmentName string, totalAmount int64) error {
	body := fmt.Sprintf("Hello,\n\nThe booking for %s is complete (total: %d).\n\nYou can now leave a review for the other party.\n\nThe ReelGear Team", equipmentName, totalAmount)
	return s.send(email, fmt.Sprintf("Booking completed: %s", equipmentName), body)
}

func (s *emailService) SendReviewReceived(ctx context.Context, email, reviewerName, equipmentName string) error {
	body := fmt.Sprintf("Hello,\n\n%s left you a review for the booking of %s.\n\nIt becomes visible once both sides have reviewed.\n\nThe ReelGear Team", reviewerName, equipmentName)
	return s.send(email, "You received a new review", body)
}
