package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNetAddress_String tests the String method of NetAddress
func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{
			name:     "empty address",
			addr:     NetAddress{},
			expected: "",
		},
		{
			name:     "localhost with port",
			addr:     NetAddress{Host: "localhost", Port: 8080},
			expected: "localhost:8080",
		},
		{
			name:     "only port no host",
			addr:     NetAddress{Host: "", Port: 8000},
			expected: ":8000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

// TestNetAddress_Set tests the Set method of NetAddress
func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expectError bool
		wantHost    string
		wantPort    int
	}{
		{name: "ip and port", input: "127.0.0.1:8000", wantHost: "127.0.0.1", wantPort: 8000},
		{name: "localhost", input: "localhost:8080", wantHost: "localhost", wantPort: 8080},
		{name: "all interfaces", input: ":8000", wantHost: "", wantPort: 8000},
		{name: "missing port", input: "127.0.0.1", expectError: true},
		{name: "non numeric port", input: "127.0.0.1:http", expectError: true},
		{name: "zero port", input: "127.0.0.1:0", expectError: true},
		{name: "hostname", input: "example.com:80", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var addr NetAddress
			err := addr.Set(tt.input)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantHost, addr.Host)
			assert.Equal(t, tt.wantPort, addr.Port)
		})
	}
}

func TestParseFlags_AllFlags(t *testing.T) {
	cfg, err := parseFlags([]string{
		"-a", "127.0.0.1:9000",
		"-d", "postgres://localhost/db",
		"-chart-dir", "/tmp/charts",
		"-config", "/etc/tracker.json",
		"-session-secret", "s3cret",
		"-session-duration", "2h",
		"-secure-cookie",
		"-otp-ttl", "15m",
		"-request-timeout", "20s",
		"-mail-host", "smtp.example.com",
		"-mail-port", "465",
		"-mail-username", "bot@example.com",
		"-mail-password", "pw",
		"-mail-relay-url", "https://relay",
	})
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9000", cfg.Server.HTTPAddress)
	assert.Equal(t, "postgres://localhost/db", cfg.Storage.DB.DSN)
	assert.Equal(t, "/tmp/charts", cfg.Storage.Files.ChartDir)
	assert.Equal(t, "/etc/tracker.json", cfg.JSONFilePath)
	assert.Equal(t, "s3cret", cfg.App.SessionSecret)
	assert.Equal(t, 2*time.Hour, cfg.App.SessionDuration)
	assert.True(t, cfg.App.SecureCookie)
	assert.Equal(t, 15*time.Minute, cfg.App.OTPTTL)
	assert.Equal(t, 20*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "smtp.example.com", cfg.Mail.Host)
	assert.Equal(t, 465, cfg.Mail.Port)
	assert.Equal(t, "bot@example.com", cfg.Mail.Username)
	assert.Equal(t, "pw", cfg.Mail.Password)
	assert.Equal(t, "https://relay", cfg.Mail.RelayURL)
}

func TestParseFlags_NoArgs(t *testing.T) {
	cfg, err := parseFlags(nil)
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseFlags_UnknownFlag(t *testing.T) {
	_, err := parseFlags([]string{"-grpc-address", ":9090"})
	assert.Error(t, err)
}
