// Package config provides 12-factor configuration for the backend.
//
// Configuration is loaded from environment variables with sensible
// defaults:
//   - PORT, HOST
//   - POLICY_ADDR, POLICY_PATH, POLICY_TIMEOUT, GRAPHING_AVAILABLE
//   - SETTINGS_PATH
//   - LOG_LEVEL, LOG_DEV
//   - RATE_LIMIT_RPS, RATE_LIMIT_BURST, RATE_LIMIT_ENABLED
package config
