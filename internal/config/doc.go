// Package config provides configuration loading, merging, and validation
// facilities for the expense tracker server.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. .env file
//  3. Legacy environment variable names (SECRET_KEY, mongo_url, sender_email,
//     sender_password)
//  4. Environment variables
//  5. Command-line flags
//  6. JSON config file
//
// The main entry point is [GetStructuredConfig].
package config
