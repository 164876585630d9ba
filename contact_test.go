package main

import (
	"context"
	"errors"
	"net/http"
	"net/smtp"
	"net/url"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tonmoystark/portfolio/internal/metrics"
)

func contactValues(name, email, message string) url.Values {
	return url.Values{"fullName": {name}, "email": {email}, "message": {message}}
}

func TestContactDelivered(t *testing.T) {
	s, mailer := newTestServer(t)
	w := postForm(s.router(), "/contact", contactValues(" Ada ", "ada@example.com", "Hello there"))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Thank you for your message")
	require.Equal(t, 1, mailer.count())
	assert.Equal(t, ContactMessage{Name: "Ada", Email: "ada@example.com", Message: "Hello there"}, mailer.sent[0])

	messages, err := s.store.ListMessages(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.True(t, messages[0].Delivered)
	assert.Equal(t, 1.0, testutil.ToFloat64(s.metrics.ContactSubmissions.WithLabelValues(metrics.OutcomeSent)))
}

func TestContactRejectsInvalidForm(t *testing.T) {
	tests := []struct {
		name   string
		values url.Values
	}{
		{"missing name", contactValues("", "ada@example.com", "hi")},
		{"blank name", contactValues("   ", "ada@example.com", "hi")},
		{"bad email", contactValues("Ada", "not-an-email", "hi")},
		{"missing message", contactValues("Ada", "ada@example.com", "")},
		{"long name", contactValues(strings.Repeat("a", 101), "ada@example.com", "hi")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, mailer := newTestServer(t)
			w := postForm(s.router(), "/contact", tt.values)

			assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
			assert.Contains(t, w.Body.String(), "valid email address")
			assert.Zero(t, mailer.count())

			messages, err := s.store.ListMessages(context.Background(), 10)
			require.NoError(t, err)
			assert.Empty(t, messages)
		})
	}
}

func TestContactKeepsMessageWhenDeliveryFails(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		outcome string
	}{
		{"smtp error", errors.New("connection refused"), metrics.OutcomeFailed},
		{"not configured", ErrMailerDisabled, metrics.OutcomeDisabled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, mailer := newTestServer(t)
			mailer.err = tt.err

			w := postForm(s.router(), "/contact", contactValues("Ada", "ada@example.com", "Hello"))
			require.Equal(t, http.StatusOK, w.Code)
			assert.Contains(t, w.Body.String(), "Thank you for your message")

			messages, err := s.store.ListMessages(context.Background(), 10)
			require.NoError(t, err)
			require.Len(t, messages, 1)
			assert.False(t, messages[0].Delivered)
			assert.Equal(t, 1.0, testutil.ToFloat64(s.metrics.ContactSubmissions.WithLabelValues(tt.outcome)))
		})
	}
}

func TestContactErrorWhenNothingKept(t *testing.T) {
	s, mailer := newTestServer(t)
	mailer.err = errors.New("connection refused")
	require.NoError(t, s.store.Close())

	w := postForm(s.router(), "/contact", contactValues("Ada", "ada@example.com", "Hello"))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Please try again later")
}

func TestSMTPMailer(t *testing.T) {
	cfg := SMTPConfig{Host: "smtp.example.com", Port: "587", User: "me@example.com", Pass: "pw", ToEmail: "inbox@example.com"}

	var gotAddr, gotFrom string
	var gotTo []string
	var gotMsg []byte
	m := newSMTPMailer(cfg)
	m.send = func(addr string, _ smtp.Auth, from string, to []string, msg []byte) error {
		gotAddr, gotFrom, gotTo, gotMsg = addr, from, to, msg
		return nil
	}

	err := m.Send(context.Background(), ContactMessage{
		Name:    "Eve\r\nBcc: victim@example.com",
		Email:   "eve@example.com",
		Message: "hi",
	})
	require.NoError(t, err)

	assert.Equal(t, "smtp.example.com:587", gotAddr)
	assert.Equal(t, "me@example.com", gotFrom)
	assert.Equal(t, []string{"inbox@example.com"}, gotTo)

	msg := string(gotMsg)
	assert.Contains(t, msg, "Subject: Portfolio Contact: Eve  Bcc: victim@example.com\r\n")
	assert.Contains(t, msg, "Reply-To: eve@example.com\r\n")
	assert.NotContains(t, msg, "\r\nBcc:")
}

func TestSMTPMailerDisabled(t *testing.T) {
	m := newSMTPMailer(SMTPConfig{Host: "smtp.example.com", Port: "587"})
	m.send = func(string, smtp.Auth, string, []string, []byte) error {
		t.Fatal("send must not be called without credentials")
		return nil
	}

	err := m.Send(context.Background(), ContactMessage{Name: "Ada", Email: "ada@example.com", Message: "hi"})
	assert.ErrorIs(t, err, ErrMailerDisabled)
}
