package adapter

import (
	"context"

	"github.com/MKhiriev/go-expense-tracker/internal/config"
	"github.com/MKhiriev/go-expense-tracker/internal/logger"
)

// NewMailSender picks the delivery channel from cfg: the HTTP relay when
// RelayURL is set, SMTP when credentials are present, and otherwise a sender
// that fails every message with [ErrMailNotConfigured].
func NewMailSender(cfg config.Mail, log *logger.Logger) (MailSender, error) {
	switch {
	case cfg.RelayURL != "":
		log.Info().Msg("mail delivery through http relay")
		return NewRelayMailSender(cfg, log)
	case cfg.Username != "" && cfg.Password != "":
		log.Info().Str("host", cfg.Host).Msg("mail delivery through smtp")
		return NewSMTPMailSender(cfg, log), nil
	default:
		log.Warn().Msg("mail delivery is not configured; password recovery emails will fail")
		return unconfiguredMailSender{}, nil
	}
}

type unconfiguredMailSender struct{}

func (unconfiguredMailSender) Send(context.Context, Message) error {
	return ErrMailNotConfigured
}
