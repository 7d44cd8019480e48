// Package mailer renders and delivers the handful of transactional emails
// this module sends.
package mailer

import "context"

type Message struct {
	ToName    string
	ToEmail   string
	Subject   string
	HTML      string
	PlainText string
}

// Mailer is any service that can deliver a rendered message.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}
