package mail

import (
	"context"
	"fmt"

	gomail "gopkg.in/gomail.v2"

	"classroom/pkg/logger"
)

type Message struct {
	Subject string
	Body    string
	From    string
	To      []string
}

// Sender delivers a batch of messages over a single connection. The batch
// is all-or-nothing: an error means none of the messages can be assumed
// delivered.
type Sender interface {
	SendBatch(ctx context.Context, messages []Message) error
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
}

type SMTPSender struct {
	dialer *gomail.Dialer
	log    *logger.Logger
}

func NewSMTPSender(cfg SMTPConfig, log *logger.Logger) *SMTPSender {
	return &SMTPSender{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		log:    log,
	}
}

func (s *SMTPSender) SendBatch(ctx context.Context, messages []Message) error {
	if len(messages) == 0 {
		return nil
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	closer, err := s.dialer.Dial()
	if err != nil {
		return fmt.Errorf("failed to dial SMTP server: %w", err)
	}
	defer closer.Close()

	out := make([]*gomail.Message, 0, len(messages))
	for _, msg := range messages {
		m := gomail.NewMessage()
		m.SetHeader("From", msg.From)
		m.SetHeader("To", msg.To...)
		m.SetHeader("Subject", msg.Subject)
		m.SetBody("text/plain", msg.Body)
		out = append(out, m)
	}

	if err := gomail.Send(closer, out...); err != nil {
		return fmt.Errorf("failed to send mail batch: %w", err)
	}

	s.log.Debug("Mail batch sent", "messages", len(messages))
	return nil
}
