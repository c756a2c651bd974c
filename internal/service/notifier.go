package service

import (
	"context"
	"fmt"

	"github.com/flarewebs/flarewebs-server/internal/logger"
	"github.com/flarewebs/flarewebs-server/internal/model"
)

// Notifier renders e-mails right away and delivers them after the response.
type Notifier struct {
	scheduler model.Scheduler
	mailer    model.Mailer
	composer  model.MailComposer
	logger    *logger.Logger
}

func NewNotifier(scheduler model.Scheduler, mailer model.Mailer, composer model.MailComposer, logger *logger.Logger) *Notifier {
	return &Notifier{
		scheduler: scheduler,
		mailer:    mailer,
		composer:  composer,
		logger:    logger,
	}
}

func (n *Notifier) ResetPassword(ctx context.Context, user model.User, token string, validHours int) error {
	m, err := n.composer.ResetPassword(user, token, validHours)
	if err != nil {
		return fmt.Errorf("failed to compose reset password email: %w", err)
	}
	n.send(ctx, "send_reset_password_email", m)
	return nil
}

func (n *Notifier) NewAccount(ctx context.Context, user model.User, token string, validHours int) error {
	m, err := n.composer.NewAccount(user, token, validHours)
	if err != nil {
		return fmt.Errorf("failed to compose new account email: %w", err)
	}
	n.send(ctx, "send_new_account_email", m)
	return nil
}

func (n *Notifier) TestEmail(ctx context.Context, to string) error {
	m, err := n.composer.TestEmail(to)
	if err != nil {
		return fmt.Errorf("failed to compose test email: %w", err)
	}
	n.send(ctx, "send_test_email", m)
	return nil
}

func (n *Notifier) send(ctx context.Context, name string, m model.Mail) {
	n.logger.Debug("Notifier: scheduling email", "task", name, "to", m.To)
	n.scheduler.Defer(ctx, name, func(ctx context.Context) error {
		return n.mailer.Send(ctx, m)
	})
}
