// Package config provides configuration management for the smartstream
// tools. Configuration is loaded from environment variables (with the
// SMARTSTREAM prefix) layered over an optional smartstream.yaml file, and
// the Paths type centralizes the on-disk layout shared by all commands.
package config
