package mailer

import (
	"context"

	"go.uber.org/zap"
)

// ConsoleMailer logs messages instead of delivering them. Used in dev and
// whenever no sendgrid key is configured.
type ConsoleMailer struct {
	log *zap.Logger
}

func NewConsoleMailer(log *zap.Logger) *ConsoleMailer {
	return &ConsoleMailer{log: log}
}

func (m *ConsoleMailer) Send(_ context.Context, msg Message) error {
	m.log.Info("mail (console)",
		zap.String("to", msg.ToEmail),
		zap.String("subject", msg.Subject),
	)
	return nil
}
