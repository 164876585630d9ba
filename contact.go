package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/smtp"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tonmoystark/portfolio/internal/metrics"
)

// ErrMailerDisabled is returned when SMTP credentials are not configured.
var ErrMailerDisabled = errors.New("SMTP credentials not configured")

type ContactMessage struct {
	Name    string
	Email   string
	Message string
}

// Mailer delivers contact form submissions.
type Mailer interface {
	Send(ctx context.Context, msg ContactMessage) error
}

type smtpMailer struct {
	cfg SMTPConfig
	// send is smtp.SendMail outside of tests.
	send func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

func newSMTPMailer(cfg SMTPConfig) *smtpMailer {
	return &smtpMailer{cfg: cfg, send: smtp.SendMail}
}

func (m *smtpMailer) Send(_ context.Context, msg ContactMessage) error {
	if !m.cfg.Enabled() {
		return ErrMailerDisabled
	}

	auth := smtp.PlainAuth("", m.cfg.User, m.cfg.Pass, m.cfg.Host)
	addr := m.cfg.Host + ":" + m.cfg.Port
	if err := m.send(addr, auth, m.cfg.User, []string{m.cfg.ToEmail}, m.compose(msg)); err != nil {
		return fmt.Errorf("send mail via %s: %w", addr, err)
	}
	return nil
}

func (m *smtpMailer) compose(msg ContactMessage) []byte {
	subject := fmt.Sprintf("Portfolio Contact: %s", headerSafe(msg.Name))
	body := fmt.Sprintf(`
New contact form submission from your portfolio:

Name: %s
Email: %s
Message:
%s

---
Sent from your portfolio contact form
`, headerSafe(msg.Name), headerSafe(msg.Email), msg.Message)

	return []byte("To: " + m.cfg.ToEmail + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"From: " + m.cfg.User + "\r\n" +
		"Reply-To: " + headerSafe(msg.Email) + "\r\n" +
		"\r\n" +
		body + "\r\n")
}

// headerSafe strips line breaks so form values cannot inject headers.
func headerSafe(s string) string {
	return strings.NewReplacer("\r", " ", "\n", " ").Replace(s)
}

type contactForm struct {
	FullName string `form:"fullName" binding:"required,max=100"`
	Email    string `form:"email" binding:"required,email,max=254"`
	Message  string `form:"message" binding:"required,max=5000"`
}

func (f *contactForm) normalize() bool {
	f.FullName = strings.TrimSpace(f.FullName)
	f.Email = strings.TrimSpace(f.Email)
	f.Message = strings.TrimSpace(f.Message)
	return f.FullName != "" && f.Email != "" && f.Message != ""
}

// Handle contact form submission with HTMX
func (s *server) handleContact(c *gin.Context) {
	var form contactForm
	if err := c.ShouldBind(&form); err != nil || !form.normalize() {
		s.metrics.ObserveContact(metrics.OutcomeInvalid)
		c.HTML(http.StatusUnprocessableEntity, "contact-error.html", gin.H{
			"error": "Please fill in your name, a valid email address and a message.",
		})
		return
	}

	ctx := c.Request.Context()
	id, storeErr := s.store.SaveMessage(ctx, form.FullName, form.Email, form.Message)
	if storeErr != nil {
		log.Printf("Error storing contact message: %v", storeErr)
	}

	sendErr := s.mailer.Send(ctx, ContactMessage{Name: form.FullName, Email: form.Email, Message: form.Message})
	switch {
	case sendErr == nil:
		s.metrics.ObserveContact(metrics.OutcomeSent)
		log.Printf("Contact message delivered from %s", hashIP(s.hashingSalt, c.ClientIP()))
		if storeErr == nil {
			if err := s.store.MarkDelivered(ctx, id); err != nil {
				log.Printf("Error marking message %d delivered: %v", id, err)
			}
		}
	case errors.Is(sendErr, ErrMailerDisabled):
		s.metrics.ObserveContact(metrics.OutcomeDisabled)
	default:
		s.metrics.ObserveContact(metrics.OutcomeFailed)
		log.Printf("Error sending email: %v", sendErr)
	}

	// Stored messages show up in /admin/messages, so the visitor only needs
	// to retry when neither path kept the message.
	if sendErr != nil && storeErr != nil {
		c.HTML(http.StatusOK, "contact-error.html", gin.H{
			"error": "Sorry, there was an error sending your message. Please try again later.",
		})
		return
	}

	c.HTML(http.StatusOK, "contact-success.html", gin.H{
		"success": "Thank you for your message! I'll get back to you soon.",
	})
}
