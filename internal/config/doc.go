// Package config loads and validates process configuration from the
// environment, with .env support for development.
package config
