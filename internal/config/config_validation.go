// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

// validate checks that the final merged [StructuredConfig] can start the
// server. Mail credentials are optional: without them recovery requests fail
// with a delivery error instead of blocking startup.
func (cfg *StructuredConfig) validate() error {
	if strings.TrimSpace(cfg.Storage.DB.DSN) == "" || cfg.Storage.Files.ChartDir == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 || cfg.Server.ShutdownTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.App.SessionDuration <= 0 || cfg.App.OTPTTL <= 0 {
		return ErrInvalidAppConfigs
	}

	if cfg.Mail.Port < 0 || cfg.Mail.Port > 65535 {
		return ErrInvalidMailConfigs
	}

	return nil
}
