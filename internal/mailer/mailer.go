package mailer

import (
	"context"
	"fmt"
	"log"
	"strings"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	gomail "gopkg.in/gomail.v2"

	"github.com/Samvel1-1/Electronics/internal/domain"
)

type Config struct {
	Host         string
	Port         int
	Sender       string
	ShopName     string
	ClientID     string
	ClientSecret string
	RefreshToken string
}

// Mailer composes and dispatches transactional emails through an SMTP relay,
// authenticating with a refresh-token credential. Every send is a single
// attempt; there is no retry policy.
type Mailer struct {
	cfg    Config
	tokens oauth2.TokenSource
}

func New(cfg Config) (*Mailer, error) {
	var missing []string
	for _, field := range []struct {
		name  string
		value string
	}{
		{"sender", cfg.Sender},
		{"client id", cfg.ClientID},
		{"client secret", cfg.ClientSecret},
		{"refresh token", cfg.RefreshToken},
	} {
		if strings.TrimSpace(field.value) == "" {
			missing = append(missing, field.name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("mail config incomplete: missing %s", strings.Join(missing, ", "))
	}
	if cfg.Host == "" {
		cfg.Host = "smtp.gmail.com"
	}
	if cfg.Port == 0 {
		cfg.Port = 587
	}

	oauth := &oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		Endpoint:     google.Endpoint,
	}
	tokens := oauth.TokenSource(context.Background(), &oauth2.Token{RefreshToken: cfg.RefreshToken})

	return &Mailer{cfg: cfg, tokens: tokens}, nil
}

// Verify dials the relay once so credential problems show up at startup.
// Callers log the result; a failed verification does not stop the process.
func (m *Mailer) Verify() error {
	dialer, err := m.dialer()
	if err != nil {
		return err
	}
	closer, err := dialer.Dial()
	if err != nil {
		return fmt.Errorf("mail relay verification error: %v", err)
	}
	closer.Close()
	log.Printf("Mail relay verified: %s:%d", m.cfg.Host, m.cfg.Port)
	return nil
}

func (m *Mailer) SendPurchaseConfirmation(to string, order *domain.Order) error {
	text, html := renderPurchase(m.cfg.ShopName, order)
	subject := fmt.Sprintf("Order confirmation - %s", m.cfg.ShopName)
	return m.send(to, subject, text, html)
}

func (m *Mailer) SendCancellation(to, orderID, total string, byAdmin bool) error {
	text, html := renderCancellation(m.cfg.ShopName, orderID, total, byAdmin)
	subject := fmt.Sprintf("Order cancelled - %s", m.cfg.ShopName)
	if byAdmin {
		subject = fmt.Sprintf("Order cancelled by administrator - %s", m.cfg.ShopName)
	}
	return m.send(to, subject, text, html)
}

func (m *Mailer) send(to, subject, text, html string) error {
	dialer, err := m.dialer()
	if err != nil {
		return &domain.NotificationError{Err: err}
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", msg.FormatAddress(m.cfg.Sender, m.cfg.ShopName))
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", text)
	msg.AddAlternative("text/html", html)

	if err := dialer.DialAndSend(msg); err != nil {
		return &domain.NotificationError{Err: err}
	}
	log.Printf("Mail sent: to=%s subject=%q", to, subject)
	return nil
}

func (m *Mailer) dialer() (*gomail.Dialer, error) {
	token, err := m.tokens.Token()
	if err != nil {
		return nil, fmt.Errorf("mail token refresh error: %v", err)
	}
	d := gomail.NewDialer(m.cfg.Host, m.cfg.Port, m.cfg.Sender, "")
	d.Auth = &xOAuth2{user: m.cfg.Sender, token: token.AccessToken}
	return d, nil
}
