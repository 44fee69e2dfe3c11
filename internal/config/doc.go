// Package config provides the configuration for a datecheck run.
// It is filled from command-line flags; datecheck reads no configuration
// file and no environment variables.
package config
