package adapter

import (
	"context"
	"fmt"

	"github.com/wneessen/go-mail"

	"github.com/MKhiriev/go-expense-tracker/internal/config"
	"github.com/MKhiriev/go-expense-tracker/internal/logger"
)

// smtpMailSender sends mail over SMTP with PLAIN auth and mandatory STARTTLS.
// The authenticated username doubles as the sender address.
type smtpMailSender struct {
	cfg    config.Mail
	logger *logger.Logger
}

// NewSMTPMailSender constructs an SMTP [MailSender]. A connection is opened
// per message.
func NewSMTPMailSender(cfg config.Mail, logger *logger.Logger) MailSender {
	return &smtpMailSender{cfg: cfg, logger: logger}
}

func (s *smtpMailSender) Send(ctx context.Context, msg Message) error {
	log := logger.FromContext(ctx)

	m, err := s.buildMsg(msg)
	if err != nil {
		return err
	}

	client, err := mail.NewClient(s.cfg.Host,
		mail.WithPort(s.cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(s.cfg.Username),
		mail.WithPassword(s.cfg.Password),
		mail.WithTLSPolicy(mail.TLSMandatory),
		mail.WithTimeout(s.cfg.Timeout),
	)
	if err != nil {
		log.Err(err).Str("func", "*smtpMailSender.Send").Msg("error creating smtp client")
		return fmt.Errorf("%w: %w", ErrSendFailed, err)
	}

	if err = client.DialAndSendWithContext(ctx, m); err != nil {
		log.Err(err).Str("func", "*smtpMailSender.Send").Str("host", s.cfg.Host).Msg("error sending mail")
		return fmt.Errorf("%w: %w", ErrSendFailed, err)
	}
	log.Info().Str("func", "*smtpMailSender.Send").Msg("mail sent")

	return nil
}

func (s *smtpMailSender) buildMsg(msg Message) (*mail.Msg, error) {
	if err := msg.validate(); err != nil {
		return nil, err
	}

	m := mail.NewMsg()
	if err := m.FromFormat(s.cfg.FromName, s.cfg.Username); err != nil {
		return nil, fmt.Errorf("%w: sender: %w", ErrInvalidMessage, err)
	}
	if err := m.To(msg.To); err != nil {
		return nil, fmt.Errorf("%w: recipient: %w", ErrInvalidMessage, err)
	}
	m.Subject(msg.Subject)
	m.SetBodyString(mail.TypeTextPlain, msg.Body)

	return m, nil
}
