// File: /services/email_service.go
package services

import (
	"fmt"
	"log"

	"gopkg.in/gomail.v2"

	"friendlink-api/config"
	"friendlink-api/models"
)

// EmailService sends lifecycle notification emails. A nil service, or
// one built without SMTP settings, silently does nothing.
type EmailService struct {
	config *config.Config
	dialer *gomail.Dialer
}

func NewEmailService(cfg *config.Config) *EmailService {
	service := &EmailService{config: cfg}
	if cfg.SMTPHost != "" {
		service.dialer = gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword)
	}
	return service
}

func (es *EmailService) Enabled() bool {
	return es != nil && es.dialer != nil
}

// SendRequestNotification tells the recipient a friend request arrived.
func (es *EmailService) SendRequestNotification(recipient, sender *models.User) {
	subject := fmt.Sprintf("%s sent you a friend request", sender.Firstname)
	body := fmt.Sprintf(`
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
    <h2>Hello %s!</h2>
    <p><strong>%s %s</strong> (@%s) sent you a friend request on %s.</p>
    <p>Log in to accept or decline it.</p>
</body>
</html>`, recipient.Firstname, sender.Firstname, sender.Lastname, sender.Username, es.config.FromName)

	es.send(recipient.Email, subject, body)
}

// SendAcceptNotification tells the original sender their request was
// accepted.
func (es *EmailService) SendAcceptNotification(sender, recipient *models.User) {
	subject := fmt.Sprintf("%s accepted your friend request", recipient.Firstname)
	body := fmt.Sprintf(`
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
    <h2>Hello %s!</h2>
    <p><strong>%s %s</strong> (@%s) accepted your friend request. You are now friends on %s.</p>
</body>
</html>`, sender.Firstname, recipient.Firstname, recipient.Lastname, recipient.Username, es.config.FromName)

	es.send(sender.Email, subject, body)
}

func (es *EmailService) send(to, subject, htmlBody string) {
	if !es.Enabled() {
		return
	}

	m := gomail.NewMessage()
	m.SetHeader("From", fmt.Sprintf("%s <%s>", es.config.FromName, es.config.FromEmail))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	if err := es.dialer.DialAndSend(m); err != nil {
		// Notifications are best effort
		log.Printf("Failed to send notification email to %s: %v", to, err)
	}
}
