package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses command-line configuration flags from args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-chart-dir directory for chart images
//	-c/-config json file path with configs
//	-session-secret session cookie signing key
//	-session-duration session lifetime (e.g., "24h")
//	-secure-cookie mark the session cookie Secure
//	-otp-ttl recovery code lifetime (e.g., "10m")
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-mail-host, -mail-port, -mail-username, -mail-password SMTP settings
//	-mail-relay-url HTTP mail relay endpoint
func parseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var cfg StructuredConfig

	fs := flag.NewFlagSet("expense-tracker", flag.ContinueOnError)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "Database DSN")
	fs.StringVar(&cfg.Storage.Files.ChartDir, "chart-dir", "", "Chart images directory")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&cfg.App.SessionSecret, "session-secret", "", "Session signing key")
	fs.DurationVar(&cfg.App.SessionDuration, "session-duration", 0, "Session duration (e.g., 24h)")
	fs.BoolVar(&cfg.App.SecureCookie, "secure-cookie", false, "Send the session cookie over HTTPS only")
	fs.DurationVar(&cfg.App.OTPTTL, "otp-ttl", 0, "OTP lifetime (e.g., 10m)")
	fs.DurationVar(&cfg.Server.RequestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&cfg.Mail.Host, "mail-host", "", "SMTP host")
	fs.IntVar(&cfg.Mail.Port, "mail-port", 0, "SMTP port")
	fs.StringVar(&cfg.Mail.Username, "mail-username", "", "SMTP username and sender address")
	fs.StringVar(&cfg.Mail.Password, "mail-password", "", "SMTP password")
	fs.StringVar(&cfg.Mail.RelayURL, "mail-relay-url", "", "HTTP mail relay URL")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	cfg.Server.HTTPAddress = serverAddress.String()

	return &cfg, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// An empty host listens on all interfaces.
func (a *NetAddress) Set(s string) error {
	host, portStr, err := net.SplitHostPort(strings.TrimSpace(s))
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1..65535")
	}

	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}
