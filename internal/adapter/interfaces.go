// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter delivers outgoing email for the expense tracker.
//
// The primary abstraction is [MailSender], which decouples the recovery flow
// from the delivery channel. Two implementations ship with the package:
//   - SMTP with mandatory STARTTLS ([NewSMTPMailSender]), the default;
//   - an HTTP mail relay ([NewRelayMailSender]) for deployments that cannot
//     open outbound SMTP connections.
//
// Relay status codes are mapped onto the sentinel errors of errors.go by
// mapHTTPError so that callers can use [errors.Is].
package adapter

import (
	"context"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/mail_sender_mock.go -package=mock

// MailSender delivers one plain-text message.
type MailSender interface {
	Send(ctx context.Context, msg Message) error
}

// Message is a plain-text email addressed to a single recipient.
type Message struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}
