// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container for the
// expense tracker server. It is populated by merging defaults, a .env file,
// environment variables, command-line flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds session, recovery and versioning settings.
	App App `envPrefix:"APP_"`

	// Storage holds the user store DSN and the chart image directory.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the listen address and timeouts of the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Mail holds the OTP delivery settings.
	Mail Mail `envPrefix:"MAIL_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level settings.
type App struct {
	// SessionSecret signs the session cookie. When empty a random secret is
	// generated at startup and sessions do not survive a restart.
	// Env: APP_SESSION_SECRET (legacy: SECRET_KEY)
	SessionSecret string `env:"SESSION_SECRET"`

	// SessionIssuer is the "iss" claim of every session cookie.
	// Env: APP_SESSION_ISSUER
	SessionIssuer string `env:"SESSION_ISSUER"`

	// SessionDuration bounds the lifetime of a session cookie.
	// Env: APP_SESSION_DURATION
	SessionDuration time.Duration `env:"SESSION_DURATION"`

	// SecureCookie marks the session cookie Secure (HTTPS only).
	// Env: APP_SECURE_COOKIE
	SecureCookie bool `env:"SECURE_COOKIE"`

	// OTPTTL is how long a recovery code stays valid after it is sent.
	// Env: APP_OTP_TTL
	OTPTTL time.Duration `env:"OTP_TTL"`

	// Version is reported by the /version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the configuration of all persistence backends.
type Storage struct {
	DB    DB    `envPrefix:"DB_"`
	Files Files `envPrefix:"FILES_"`
}

// DB holds the user store connection settings.
type DB struct {
	// DSN selects the backend by scheme:
	//   - postgres:// or postgresql:// for PostgreSQL via pgx
	//   - mongodb:// or mongodb+srv:// for MongoDB
	//   - sqlite://<path>, file:<path>, :memory: or a bare path for SQLite
	// Env: STORAGE_DB_DATABASE_URI (legacy: mongo_url)
	DSN string `env:"DATABASE_URI"`

	// DatabaseName is the MongoDB database holding the user collection.
	// Env: STORAGE_DB_DATABASE_NAME
	DatabaseName string `env:"DATABASE_NAME"`
}

// Files holds file-system settings.
type Files struct {
	// ChartDir is where per-user chart images are written and served from.
	// Env: STORAGE_FILES_CHART_DIR
	ChartDir string `env:"CHART_DIR"`
}

// Server holds network and timeout settings for the HTTP server.
type Server struct {
	// HTTPAddress is the listen address in "host:port" form.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout caps the handling time of a single request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ShutdownTimeout caps graceful shutdown.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// Mail holds OTP delivery settings. When RelayURL is set the OTP is posted to
// an HTTP mail relay, otherwise it is sent over SMTP with STARTTLS.
type Mail struct {
	Host string `env:"HOST"`
	Port int    `env:"PORT"`

	// Username is also the sender address.
	// Env: MAIL_USERNAME (legacy: sender_email)
	Username string `env:"USERNAME"`

	// Env: MAIL_PASSWORD (legacy: sender_password)
	Password string `env:"PASSWORD"`

	FromName string `env:"FROM_NAME"`

	RelayURL   string `env:"RELAY_URL"`
	RelayToken string `env:"RELAY_TOKEN"`

	Timeout time.Duration `env:"TIMEOUT"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration. Sources in priority order (last non-zero value wins):
//  1. Built-in defaults
//  2. .env file in the working directory
//  3. Legacy environment variable names
//  4. Environment variables
//  5. Command-line flags
//  6. JSON file (path resolved from sources 4 and 5)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withDotEnv().
		withLegacyEnv().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}

// defaultConfig holds the values used when no source provides one.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			SessionIssuer:   "go-expense-tracker",
			SessionDuration: 24 * time.Hour,
			OTPTTL:          10 * time.Minute,
		},
		Storage: Storage{
			DB:    DB{DatabaseName: "ExpenseTracker"},
			Files: Files{ChartDir: "static/charts"},
		},
		Server: Server{
			HTTPAddress:     "0.0.0.0:8000",
			RequestTimeout:  30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Mail: Mail{
			Host:     "smtp.gmail.com",
			Port:     587,
			FromName: "ExpenseTracker",
			Timeout:  15 * time.Second,
		},
	}
}
