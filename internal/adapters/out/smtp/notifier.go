// Package smtp delivers transactional emails through an SMTP relay.
package smtp

import (
	"context"
	"fmt"
	"log/slog"

	"marketplace/internal/core/domain/model/kernel"

	"gopkg.in/gomail.v2"
)

// Config holds the SMTP relay settings.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	Sender   string
}

// Notifier implements ports.Notifier over an SMTP relay using gomail.
// Sending is synchronous; callers fire it after their transaction commits
// and treat a failure as log-only.
type Notifier struct {
	dialer *gomail.Dialer
	sender string
	logger *slog.Logger
}

// NewNotifier creates an SMTP notifier. Host, port and sender are required.
func NewNotifier(cfg Config, logger *slog.Logger) (*Notifier, error) {
	if cfg.Host == "" || cfg.Port == 0 || cfg.Sender == "" {
		return nil, fmt.Errorf("smtp host, port and sender must be configured")
	}

	return &Notifier{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		sender: cfg.Sender,
		logger: logger.With("component", "smtp_notifier"),
	}, nil
}

// OrderCompleted notifies the buyer that their order was completed.
func (n *Notifier) OrderCompleted(ctx context.Context, recipient string, orderID kernel.UUID) error {
	return n.send(ctx, recipient,
		"Your order is complete",
		fmt.Sprintf("Your order %s has been completed by the seller. "+
			"You can now leave a review for this transaction.", orderID),
	)
}

// CustomOrderCompleted notifies the buyer that their custom order request
// was completed by the seller.
func (n *Notifier) CustomOrderCompleted(ctx context.Context, recipient string, customOrderID kernel.UUID) error {
	return n.send(ctx, recipient,
		"Your custom order is complete",
		fmt.Sprintf("Your custom order %s has been completed by the seller.", customOrderID),
	)
}

func (n *Notifier) send(ctx context.Context, recipient, subject, body string) error {
	if recipient == "" {
		return fmt.Errorf("no recipient provided for email")
	}

	m := gomail.NewMessage()
	m.SetHeader("From", n.sender)
	m.SetHeader("To", recipient)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	done := make(chan error, 1)
	go func() {
		done <- n.dialer.DialAndSend(m)
	}()

	select {
	case <-ctx.Done():
		return fmt.Errorf("email sending cancelled: %w", ctx.Err())
	case err := <-done:
		if err != nil {
			return fmt.Errorf("failed to send email: %w", err)
		}
	}

	n.logger.InfoContext(ctx, "email sent", "to", recipient, "subject", subject)
	return nil
}
