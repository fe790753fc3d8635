// Package config loads gridpath settings from a YAML file, a .env file and
// GRIDPATH_* environment variables, in that order of increasing precedence.
// Command-line flags are applied on top by cmd/gridpath.
package config
