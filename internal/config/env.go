// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv populates cfg from environment variables using the caarlos0/env
// library. Struct fields are mapped via their `env` and `envPrefix` tags
// defined on [StructuredConfig] and its nested types.
func parseEnv(cfg any) error {
	err := env.Parse(cfg)
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}

// legacyEnv lists the variable names used by earlier deployments.
type legacyEnv struct {
	SecretKey      string `env:"SECRET_KEY"`
	MongoURL       string `env:"mongo_url"`
	SenderEmail    string `env:"sender_email"`
	SenderPassword string `env:"sender_password"`
}

func parseLegacyEnv() (*StructuredConfig, error) {
	var legacy legacyEnv
	if err := parseEnv(&legacy); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App:     App{SessionSecret: legacy.SecretKey},
		Storage: Storage{DB: DB{DSN: legacy.MongoURL}},
		Mail: Mail{
			Username: legacy.SenderEmail,
			Password: legacy.SenderPassword,
		},
	}, nil
}
