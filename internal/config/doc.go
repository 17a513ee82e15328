// Package config handles configuration loading, parsing, and validation
// from environment variables (MESTO_ prefix) and an optional config.yaml.
// A missing or invalid setting, most importantly the token signing secret,
// is reported as an error so the process can refuse to start.
package config
