package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-expense-tracker/internal/config"
	"github.com/MKhiriev/go-expense-tracker/internal/logger"
	"github.com/MKhiriev/go-expense-tracker/internal/utils"
)

// signatureHeader carries the hex HMAC-SHA256 of the request body keyed by
// the relay token.
const signatureHeader = "X-Signature"

// relayMailSender posts messages as JSON to an HTTP mail relay.
type relayMailSender struct {
	client   *utils.HTTPClient
	endpoint string

	from  string
	token string

	logger *logger.Logger
}

type relayRequest struct {
	From string `json:"from"`
	Message
}

// NewRelayMailSender constructs an HTTP relay [MailSender] posting to
// cfg.RelayURL. Returns an error if the URL cannot be parsed.
func NewRelayMailSender(cfg config.Mail, logger *logger.Logger) (MailSender, error) {
	endpoint, err := normalizeRelayURL(cfg.RelayURL)
	if err != nil {
		return nil, fmt.Errorf("invalid mail relay url: %w", err)
	}

	client := utils.NewHTTPClient()
	client.SetTimeout(cfg.Timeout)

	from := cfg.Username
	if cfg.FromName != "" && from != "" {
		from = fmt.Sprintf("%s <%s>", cfg.FromName, cfg.Username)
	}

	return &relayMailSender{client: client, endpoint: endpoint, from: from, token: cfg.RelayToken, logger: logger}, nil
}

func normalizeRelayURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (r *relayMailSender) Send(ctx context.Context, msg Message) error {
	if err := msg.validate(); err != nil {
		return err
	}

	body, err := json.Marshal(relayRequest{From: r.from, Message: msg})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidMessage, err)
	}

	req := r.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body)
	if r.token != "" {
		req.SetAuthToken(r.token)
		req.SetHeader(signatureHeader, utils.HashString(string(body), r.token))
	}

	resp, err := req.Post(r.endpoint)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*relayMailSender.Send").Msg("relay request failed")
		return fmt.Errorf("%w: relay request: %w", ErrSendFailed, err)
	}
	if err = mapHTTPError(resp); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*relayMailSender.Send").Int("status", resp.StatusCode()).Msg("relay refused message")
		return fmt.Errorf("%w: %w", ErrSendFailed, err)
	}

	return nil
}
