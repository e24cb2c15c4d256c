package email

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/smtp"
	"strings"
	"time"

	"go.uber.org/zap"
)

//go:generate mockgen -source=email.go -destination=mock/email_mock.go -package=mock
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

type Options struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

type noopMailer struct {
	logger *zap.Logger
}

func (m noopMailer) Send(_ context.Context, to, subject, _ string) error {
	m.logger.Info("smtp disabled, mail skipped", zap.String("to", to), zap.String("subject", subject))
	return nil
}

type smtpMailer struct {
	opts   Options
	logger *zap.Logger
}

// New returns an SMTP mailer, or a mailer that only logs when no host is configured.
func New(opts Options, logger ...*zap.Logger) Mailer {
	l := zap.L().Named("email")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("email")
	}
	if opts.Host == "" {
		return noopMailer{logger: l}
	}
	return &smtpMailer{opts: opts, logger: l}
}

func (s *smtpMailer) Send(ctx context.Context, to, subject, body string) error {
	if strings.TrimSpace(to) == "" {
		return nil
	}
	addr := fmt.Sprintf("%s:%d", s.opts.Host, s.opts.Port)
	msg := buildMessage(s.opts.From, to, subject, body)

	dialer := net.Dialer{Timeout: 10 * time.Second}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return err
	}
	defer conn.Close()

	client, err := smtp.NewClient(conn, s.opts.Host)
	if err != nil {
		return err
	}
	defer client.Close()

	if ok, _ := client.Extension("STARTTLS"); ok {
		if err := client.StartTLS(&tls.Config{ServerName: s.opts.Host}); err != nil {
			return err
		}
	}

	if s.opts.User != "" {
		auth := smtp.PlainAuth("", s.opts.User, s.opts.Password, s.opts.Host)
		if err := client.Auth(auth); err != nil {
			return err
		}
	}

	if err := client.Mail(envelopeAddress(s.opts.From)); err != nil {
		return err
	}
	if err := client.Rcpt(to); err != nil {
		return err
	}
	w, err := client.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write(msg); err != nil {
		_ = w.Close()
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}

	s.logger.Debug("mail sent", zap.String("to", to), zap.String("subject", subject))
	return client.Quit()
}

// envelopeAddress extracts "a@b" from "Name <a@b>".
func envelopeAddress(from string) string {
	if i := strings.LastIndex(from, "<"); i >= 0 {
		if j := strings.LastIndex(from, ">"); j > i {
			return from[i+1 : j]
		}
	}
	return strings.TrimSpace(from)
}

func buildMessage(from, to, subject, body string) []byte {
	headers := []string{
		fmt.Sprintf("From: %s", from),
		fmt.Sprintf("To: %s", to),
		fmt.Sprintf("Subject: %s", subject),
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=\"UTF-8\"",
		"",
	}
	return []byte(strings.Join(headers, "\r\n") + "\r\n" + body)
}
