// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds configuration types shared between the CLI and the
// config file.
package types

// ConvertConfig holds defaults for the convert command. Explicit flags
// always win over config-file values.
type ConvertConfig struct {
	// Force overwrites the output file when it already exists.
	Force bool `json:"force" yaml:"force"`

	// Verbose prints the external command line and diagnostic output.
	Verbose bool `json:"verbose" yaml:"verbose"`
}

// Config groups all command configuration for the anyconv CLI.
type Config struct {
	Convert ConvertConfig `json:"convert" yaml:"convert"`
}
