package mail

import (
	"context"
	"fmt"

	"github.com/quanticedge/profile-portal/internal/config"
	"github.com/quanticedge/profile-portal/internal/domain"
	gomail "github.com/wneessen/go-mail"
)

// Notifier delivers registration notifications. Delivery is best-effort:
// callers log failures and never fail the request on them.
type Notifier interface {
	SendWelcome(ctx context.Context, user *domain.User) error
	SendAdminAlert(ctx context.Context, user *domain.User) error
}

// SMTPMailer sends notifications through an SMTP relay.
type SMTPMailer struct {
	cfg *config.Config
}

func NewSMTPMailer(cfg *config.Config) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

func (m *SMTPMailer) SendWelcome(ctx context.Context, user *domain.User) error {
	body, err := renderWelcome(m.cfg.ProductName, m.cfg.ProductLink, user)
	if err != nil {
		return fmt.Errorf("render welcome mail: %w", err)
	}
	return m.send(ctx, user.Email, "Welcome to "+m.cfg.ProductName, body)
}

func (m *SMTPMailer) SendAdminAlert(ctx context.Context, user *domain.User) error {
	body, err := renderAdminAlert(m.cfg.ProductName, m.cfg.ProductLink, user)
	if err != nil {
		return fmt.Errorf("render admin mail: %w", err)
	}
	return m.send(ctx, m.cfg.AdminEmail, "New registration submitted", body)
}

func (m *SMTPMailer) send(ctx context.Context, to, subject, htmlBody string) error {
	msg := gomail.NewMsg()
	if err := msg.From(m.cfg.MailFrom); err != nil {
		return fmt.Errorf("set mail from: %w", err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("set mail recipient: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextHTML, htmlBody)

	opts := []gomail.Option{
		gomail.WithPort(m.cfg.SMTPPort),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(m.cfg.SMTPUsername),
		gomail.WithPassword(m.cfg.SMTPPassword),
	}
	if m.cfg.SMTPPort == 465 {
		opts = append(opts, gomail.WithSSL())
	}

	client, err := gomail.NewClient(m.cfg.SMTPHost, opts...)
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}
	return client.DialAndSendWithContext(ctx, msg)
}
